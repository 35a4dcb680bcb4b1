package netsync

import (
	"io"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"

	"github.com/EiraChris/Mirror/entity"
	"github.com/EiraChris/Mirror/record"
	"github.com/EiraChris/Mirror/snapshot"
	"github.com/EiraChris/Mirror/worker"
)

// Manager tracks every synced entity of a session and drives all of them once
// per local simulation tick. Entities are keyed by a 64-bit runtime ID hashed
// from their string name, and held in insertion order so a tick always visits
// them deterministically.
type Manager struct {
	mu  sync.Mutex
	log *logrus.Logger
	cfg Config

	entities *orderedmap.OrderedMap[uint64, *SyncedEntity]
	tick     int64
	recorder *record.Recorder
}

// NewManager creates a manager applying cfg to every entity it registers. A
// nil logger discards all output.
func NewManager(log *logrus.Logger, cfg Config) *Manager {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Manager{
		log:      log,
		cfg:      cfg,
		entities: orderedmap.NewOrderedMap[uint64, *SyncedEntity](),
	}
}

// SetRecorder attaches a recorder that captures every snapshot applied during
// TickAll. A nil recorder disables capturing.
func (m *Manager) SetRecorder(r *record.Recorder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorder = r
}

// RuntimeID returns the runtime ID a name registers under.
func RuntimeID(name string) uint64 {
	return xxh3.HashString(name)
}

// Register creates and tracks a synced entity for the given name, starting at
// the given transform. Registering an already known name returns the existing
// entity untouched.
func (m *Manager) Register(name string, initial entity.Transform) (uint64, *SyncedEntity) {
	rid := RuntimeID(name)

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.entities.Get(rid); ok {
		return rid, existing
	}
	se := NewSyncedEntity(m.cfg, initial)
	m.entities.Set(rid, se)
	m.log.Debugf("netsync: registered entity %q (rid=%x)", name, rid)
	return rid, se
}

// Entity returns the synced entity registered under the given runtime ID, or
// nil if it does not exist.
func (m *Manager) Entity(rid uint64) *SyncedEntity {
	m.mu.Lock()
	defer m.mu.Unlock()

	se, _ := m.entities.Get(rid)
	return se
}

// Remove stops tracking the entity registered under the given runtime ID.
func (m *Manager) Remove(rid uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entities.Delete(rid)
}

// Len returns the number of tracked entities.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entities.Len()
}

// Tick returns the current local tick counter.
func (m *Manager) Tick() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tick
}

// Feed offers an arriving snapshot to the given entity and direction. Late
// arrivals that the buffer refuses are logged at debug level.
func (m *Manager) Feed(rid uint64, dir Direction, snap snapshot.Snapshot) bool {
	se := m.Entity(rid)
	if se == nil {
		return false
	}

	accepted := se.Feed(dir, snap)
	if !accepted {
		m.log.Debugf("netsync: dropped stale %s snapshot t=%.3f for rid=%x", dir, snap.Timestamp, rid)
	}
	return accepted
}

// TickAll advances every tracked entity by deltaTime, both directions each.
// Entities carry fully independent state, so they are ticked in parallel on
// the worker pool; TickAll returns once every entity has been processed.
func (m *Manager) TickAll(deltaTime float64) {
	type pendingEntity struct {
		rid uint64
		se  *SyncedEntity
	}

	m.mu.Lock()
	m.tick++
	tick := m.tick
	recorder := m.recorder
	pending := make([]pendingEntity, 0, m.entities.Len())
	for el := m.entities.Front(); el != nil; el = el.Next() {
		pending = append(pending, pendingEntity{rid: el.Key, se: el.Value})
	}
	m.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(len(pending))
	for _, p := range pending {
		p := p
		worker.Submit(func() {
			defer wg.Done()
			for dir := Direction(0); dir < directionCount; dir++ {
				computed, ok := p.se.Tick(dir, deltaTime, tick)
				if ok && recorder != nil {
					recorder.Push(record.Entry{RuntimeID: p.rid, Tick: tick, Snapshot: computed})
				}
			}
		})
	}
	wg.Wait()
}
