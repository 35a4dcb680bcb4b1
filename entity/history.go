package entity

import "github.com/EiraChris/Mirror/snapshot"

// AppliedSnapshot is a snapshot that was applied to an entity at a certain
// local tick.
type AppliedSnapshot struct {
	Snapshot snapshot.Snapshot
	Tick     int64
}

// Rewind looks back in the applied-snapshot history of the entity and returns
// the snapshot applied at the given tick.
func (e *Entity) Rewind(tick int64) (AppliedSnapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for as := range e.history.Iter() {
		if as.Tick == tick {
			return as, true
		}
	}
	return AppliedSnapshot{}, false
}

// RewindClosest returns the historical snapshot applied closest to the given
// tick. The boolean ok is false only when the history is empty.
func (e *Entity) RewindClosest(tick int64) (AppliedSnapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.history.Len() == 0 {
		return AppliedSnapshot{}, false
	}

	var (
		result AppliedSnapshot
		delta  int64 = 1_000_000_000_000
	)
	for as := range e.history.Iter() {
		currentDelta := as.Tick - tick
		if currentDelta < 0 {
			currentDelta *= -1
		}
		if currentDelta <= delta {
			result = as
			delta = currentDelta
		}
	}
	return result, true
}

// HistoryLen returns the number of applied snapshots currently retained.
func (e *Entity) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Len()
}
