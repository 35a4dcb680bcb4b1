package snapshot

import "sort"

// Buffer is an ordered-by-timestamp sequence of snapshots with strictly
// increasing timestamps. Admission is bounded at the consumption frontier:
// anything at or before the oldest held entry is refused, so the buffer can
// never regrow history that has already begun being consumed.
//
// A Buffer is owned by a single goroutine; it performs no locking of its own.
type Buffer struct {
	entries []Snapshot
}

// NewBuffer creates an empty snapshot buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// InsertIfNewEnough inserts candidate at its sorted position unless its
// timestamp is older than or equal to the oldest entry currently held, in
// which case it is silently dropped: it arrived too late to be useful. An
// empty buffer accepts any candidate. Out-of-order arrivals landing between
// existing entries are inserted in place, which improves interpolation
// density. This operation never fails.
func (b *Buffer) InsertIfNewEnough(candidate Snapshot) {
	if len(b.entries) == 0 {
		b.entries = append(b.entries, candidate)
		return
	}
	if candidate.Timestamp <= b.entries[0].Timestamp {
		return
	}

	i := sort.Search(len(b.entries), func(n int) bool {
		return b.entries[n].Timestamp > candidate.Timestamp
	})
	b.entries = append(b.entries, Snapshot{})
	copy(b.entries[i+1:], b.entries[i:])
	b.entries[i] = candidate
}

// Len returns the number of buffered snapshots.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// At returns the snapshot at logical position i, 0 being the oldest.
func (b *Buffer) At(i int) Snapshot {
	return b.entries[i]
}

// Oldest returns the snapshot at the consumption frontier. The boolean ok is
// false if the buffer is empty.
func (b *Buffer) Oldest() (Snapshot, bool) {
	if len(b.entries) == 0 {
		return Snapshot{}, false
	}
	return b.entries[0], true
}

// Newest returns the most recently timestamped snapshot. The boolean ok is
// false if the buffer is empty.
func (b *Buffer) Newest() (Snapshot, bool) {
	if len(b.entries) == 0 {
		return Snapshot{}, false
	}
	return b.entries[len(b.entries)-1], true
}

// RemoveOldest removes the entry at the consumption frontier once it has been
// fully consumed.
func (b *Buffer) RemoveOldest() {
	if len(b.entries) == 0 {
		return
	}
	copy(b.entries, b.entries[1:])
	b.entries = b.entries[:len(b.entries)-1]
}

// Clear removes all buffered snapshots.
func (b *Buffer) Clear() {
	b.entries = b.entries[:0]
}
