package netsync

import (
	"sync"

	"github.com/EiraChris/Mirror/internal"
	"github.com/EiraChris/Mirror/smath"
	"github.com/EiraChris/Mirror/utils"
)

// DefaultJitterWindow is the default number of arrival intervals sampled for
// buffer time suggestions.
const DefaultJitterWindow = 32

// JitterEstimator keeps a sliding window of the intervals between
// successively accepted snapshot timestamps and derives a buffer delay
// suggestion from them. Senders rarely deliver at their nominal interval
// under load, so the suggestion is based on what is actually observed rather
// than on configuration.
type JitterEstimator struct {
	mu       sync.Mutex
	samples  *utils.CircularQueue[float64]
	lastSeen float64
}

// NewJitterEstimator creates an estimator sampling at most window intervals.
func NewJitterEstimator(window int) *JitterEstimator {
	if window <= 0 {
		window = DefaultJitterWindow
	}
	return &JitterEstimator{
		samples: utils.NewCircularQueue[float64](window),
	}
}

// Observe records the sender timestamp of an accepted snapshot. The first
// observation only seeds the interval tracking.
func (j *JitterEstimator) Observe(timestamp float64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.lastSeen != 0 && timestamp > j.lastSeen {
		_ = j.samples.Append(timestamp - j.lastSeen)
	}
	j.lastSeen = timestamp
}

// MeanInterval returns the mean observed arrival interval in seconds, or 0
// when fewer than one interval has been observed.
func (j *JitterEstimator) MeanInterval() float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.withSamples(smath.Mean)
}

// SuggestedBufferTime returns a buffer delay covering multiplier mean
// intervals plus two standard deviations of cushion. A multiplier of 3 is the
// usual empirical choice for 2-5% packet loss. Returns 0 until enough
// intervals have been observed.
func (j *JitterEstimator) SuggestedBufferTime(multiplier float64) float64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	mean := j.withSamples(smath.Mean)
	if mean == 0 {
		return 0
	}
	dev := j.withSamples(smath.StandardDeviation)
	return multiplier*mean + 2*dev
}

// Reset discards all observed intervals.
func (j *JitterEstimator) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.samples.Clear()
	j.lastSeen = 0
}

// withSamples copies the window into pooled scratch space and applies fn to
// it. The caller must hold mu.
func (j *JitterEstimator) withSamples(fn func([]float64) float64) float64 {
	scratch := internal.Float64SlicePool.Get().(*[]float64)
	defer internal.Float64SlicePool.Put(scratch)

	s := (*scratch)[:0]
	for v := range j.samples.Iter() {
		s = append(s, v)
	}
	*scratch = s
	return fn(s)
}
