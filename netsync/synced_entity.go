package netsync

import (
	"sync"

	"github.com/EiraChris/Mirror/assert"
	"github.com/EiraChris/Mirror/entity"
	"github.com/EiraChris/Mirror/snapshot"
)

// Config holds the tuning knobs of a synced entity.
type Config struct {
	// BufferTime is the intentional playback lag in seconds. It is usually
	// derived as SendInterval * BufferMultiplier.
	BufferTime float64
	// HistorySize is the applied-snapshot history capacity used for rewind
	// lookups. Zero falls back to entity.DefaultHistorySize.
	HistorySize int
	// JitterWindow is the number of arrival intervals sampled by the jitter
	// estimator. Zero falls back to DefaultJitterWindow.
	JitterWindow int
}

// channel is one independent sync direction: its own snapshot buffer and its
// own clock/interpolation state.
type channel struct {
	buf *snapshot.Buffer
	st  snapshot.State
}

// SyncedEntity binds the interpolation engine to one entity. It owns a fully
// independent channel per direction, feeds arriving snapshots into the right
// buffer, and applies whatever the stepper produces each tick.
type SyncedEntity struct {
	mu  sync.Mutex
	ent *entity.Entity
	cfg Config

	channels [directionCount]channel
	jitter   *JitterEstimator
}

// NewSyncedEntity creates a synced entity starting at the given transform.
func NewSyncedEntity(cfg Config, initial entity.Transform) *SyncedEntity {
	assert.IsTrue(cfg.BufferTime >= 0, "netsync: buffer time must not be negative, got %v", cfg.BufferTime)
	s := &SyncedEntity{
		ent:    entity.New(initial, cfg.HistorySize),
		cfg:    cfg,
		jitter: NewJitterEstimator(cfg.JitterWindow),
	}
	for i := range s.channels {
		s.channels[i].buf = snapshot.NewBuffer()
	}
	return s
}

// Entity returns the entity driven by this sync state.
func (s *SyncedEntity) Entity() *entity.Entity {
	return s.ent
}

// Jitter returns the arrival jitter estimator of this entity.
func (s *SyncedEntity) Jitter() *JitterEstimator {
	return s.jitter
}

// Feed offers an arriving snapshot to the given direction's buffer. The
// return value reports whether the buffer accepted it; a false result means
// the snapshot arrived too late to be useful and was dropped.
func (s *SyncedEntity) Feed(dir Direction, snap snapshot.Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := &s.channels[dir]
	before := ch.buf.Len()
	ch.buf.InsertIfNewEnough(snap)
	accepted := ch.buf.Len() > before
	if accepted {
		s.jitter.Observe(snap.Timestamp)
	}
	return accepted
}

// Tick drives the stepper for one direction with the elapsed frame time and,
// when a snapshot is ready, applies it to the entity under the given local
// tick. The returned snapshot is only valid when ok is true.
func (s *SyncedEntity) Tick(dir Direction, deltaTime float64, tick int64) (snapshot.Snapshot, bool) {
	s.mu.Lock()
	ch := &s.channels[dir]
	computed, ok := snapshot.Compute(s.cfg.BufferTime, deltaTime, &ch.st, ch.buf)
	s.mu.Unlock()

	if ok {
		s.ent.ApplySnapshot(computed, tick)
	}
	return computed, ok
}

// Reset returns one direction's state machine to uninitialized: its buffer is
// cleared and both of its time fields are zeroed.
func (s *SyncedEntity) Reset(dir Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := &s.channels[dir]
	snapshot.Reset(&ch.st, ch.buf)
}

// Teleport discontinuously moves the entity and resets both directions along
// with the jitter window, so stale buffered motion is never interpolated
// across the jump.
func (s *SyncedEntity) Teleport(t entity.Transform) {
	s.mu.Lock()
	for i := range s.channels {
		ch := &s.channels[i]
		snapshot.Reset(&ch.st, ch.buf)
	}
	s.jitter.Reset()
	s.mu.Unlock()

	s.ent.Teleport(t)
}

// BufferLen returns the buffered snapshot count of one direction.
func (s *SyncedEntity) BufferLen(dir Direction) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channels[dir].buf.Len()
}

// State returns a copy of one direction's clock/interpolation state.
func (s *SyncedEntity) State(dir Direction) snapshot.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channels[dir].st
}
