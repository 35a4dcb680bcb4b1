// Package snapshot implements buffered snapshot interpolation for networked
// transforms: timestamped samples from a remote sender are buffered, a local
// estimate of the sender's clock is advanced every tick, and playback runs a
// configurable delay behind that estimate so jittered or reordered delivery
// still renders as continuous motion.
package snapshot

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/EiraChris/Mirror/smath"
)

// Snapshot is a timestamped sample of a rigid transform as captured on the
// sending side. It is a plain value: equality is field-wise and a snapshot is
// never mutated after construction.
type Snapshot struct {
	// Timestamp is the sender-side time the state was captured, in seconds on
	// the sender's own monotonic clock.
	Timestamp float64

	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// New creates a snapshot from a sender timestamp and transform components.
func New(timestamp float64, position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) Snapshot {
	return Snapshot{
		Timestamp: timestamp,
		Position:  position,
		Rotation:  rotation,
		Scale:     scale,
	}
}

// Interpolate computes the snapshot at ratio t between from and to, where 0
// yields from and 1 yields to. Timestamp, position and scale are interpolated
// linearly (t outside [0, 1] extrapolates along the same line), rotation is
// interpolated spherically along the shortest arc. Pure and deterministic.
func Interpolate(from, to Snapshot, t float64) Snapshot {
	return Snapshot{
		Timestamp: smath.Lerp64(from.Timestamp, to.Timestamp, t),
		Position:  smath.LerpVec3(from.Position, to.Position, float32(t)),
		Rotation:  smath.Slerp(from.Rotation, to.Rotation, float32(t)),
		Scale:     smath.LerpVec3(from.Scale, to.Scale, float32(t)),
	}
}
