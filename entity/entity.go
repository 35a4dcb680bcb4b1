package entity

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/EiraChris/Mirror/snapshot"
	"github.com/EiraChris/Mirror/utils"
)

// DefaultHistorySize is the default number of applied snapshots retained for
// rewind lookups.
const DefaultHistorySize = 6

// Transform is the synchronized rigid-transform state of an entity.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// IdentityTransform returns a transform at the origin with no rotation and
// unit scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Entity is a remote entity whose transform is driven by interpolated
// snapshots.
type Entity struct {
	// mu protects all the following fields.
	mu sync.Mutex
	// transform is the current transform of the entity.
	transform Transform
	// lastTransform is the transform the entity held right before transform
	// was updated.
	lastTransform Transform
	// history holds the most recently applied snapshots, keyed by the local
	// tick they were applied on.
	history *utils.CircularQueue[AppliedSnapshot]
	// teleportTicks is the amount of local ticks that have passed since the
	// entity last teleported.
	teleportTicks uint32
}

// New creates an entity at the given initial transform with the given applied
// snapshot history capacity.
func New(initial Transform, historySize int) *Entity {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Entity{
		transform:     initial,
		lastTransform: initial,
		history:       utils.NewCircularQueue[AppliedSnapshot](historySize),
	}
}

// Transform returns the current transform of the entity.
func (e *Entity) Transform() Transform {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transform
}

// LastTransform returns the transform the entity held before the most recent
// update.
func (e *Entity) LastTransform() Transform {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastTransform
}

// ApplySnapshot moves the entity to the state of a computed snapshot and
// records it in the rewind history under the given local tick.
func (e *Entity) ApplySnapshot(s snapshot.Snapshot, tick int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastTransform = e.transform
	e.transform = Transform{
		Position: s.Position,
		Rotation: s.Rotation,
		Scale:    s.Scale,
	}
	e.teleportTicks++
	_ = e.history.Append(AppliedSnapshot{Snapshot: s, Tick: tick})
}

// Teleport moves the entity to the given transform discontinuously. The
// rewind history is discarded, since positions on the far side of a teleport
// must not be interpolated against.
func (e *Entity) Teleport(t Transform) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastTransform = t
	e.transform = t
	e.teleportTicks = 0
	e.history.Clear()
}

// TeleportationTicks returns the amount of ticks that have passed since the
// entity last teleported.
func (e *Entity) TeleportationTicks() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.teleportTicks
}
