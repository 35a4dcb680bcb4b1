package record

import "sync"

// Recorder accumulates applied-snapshot entries over a session.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Push appends one applied snapshot to the recording.
func (r *Recorder) Push(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Len returns the number of recorded entries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Snapshot returns a copy of the recorded entries without clearing them.
func (r *Recorder) Snapshot() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Drain encodes everything recorded so far and clears the recording.
func (r *Recorder) Drain() []byte {
	r.mu.Lock()
	entries := r.entries
	r.entries = nil
	r.mu.Unlock()
	return Encode(entries)
}
