package snapshot

import "github.com/EiraChris/Mirror/smath"

// State carries the clock estimate and interpolation cursor for one sync
// direction. It is owned by the caller and threaded through Compute each tick;
// the stepper itself keeps nothing, so a direction can always be restarted by
// zeroing its State and clearing its buffer.
type State struct {
	// RemoteTime is the estimated current time on the sender's clock, in
	// seconds. Zero means uninitialized: the estimate is bootstrapped from the
	// first buffered snapshot rather than assuming zero skew.
	RemoteTime float64

	// InterpolationTime is the local progress cursor between the two oldest
	// buffered snapshots, measured in seconds since the oldest entry's
	// timestamp. Zero means interpolation has not started.
	InterpolationTime float64
}

// Compute advances the remote clock estimate by deltaTime and, when the
// buffer has matured enough data, produces the interpolated snapshot for this
// tick. bufferTime is the intentional playback lag in seconds, chosen to
// absorb network jitter (typically several multiples of the send interval).
//
// The boolean result is false whenever no snapshot can be produced yet: an
// empty buffer, a single buffered entry, or a pair still more recent than
// RemoteTime - bufferTime. None of these are errors; in a lossy real-time
// feed, "no new data this tick" is a normal outcome. On a false result the
// cursor is left untouched, and RemoteTime is only touched once at least one
// snapshot has been observed.
//
// Consumed head entries are trimmed from the buffer as the cursor passes
// them, carrying the cursor remainder over to the next pair, so occupancy is
// bounded by the arrival rate.
func Compute(bufferTime, deltaTime float64, st *State, buf *Buffer) (Snapshot, bool) {
	// Without any data there is nothing to bootstrap the clock estimate from.
	if buf.Len() == 0 {
		return Snapshot{}, false
	}

	if st.RemoteTime == 0 {
		st.RemoteTime = buf.At(0).Timestamp
	}
	// Time keeps flowing on the sender whether or not we render this tick.
	st.RemoteTime += deltaTime

	if buf.Len() < 2 {
		return Snapshot{}, false
	}

	// Playback is withheld until the two oldest entries are at least
	// bufferTime behind the clock estimate. This is the backpressure that
	// builds the cushion against jitter and reordering.
	first, second := buf.At(0), buf.At(1)
	threshold := st.RemoteTime - bufferTime
	if first.Timestamp > threshold || second.Timestamp > threshold {
		return Snapshot{}, false
	}

	st.InterpolationTime += deltaTime

	// The cursor is measured from first.Timestamp, so t reaches 1 exactly
	// when it arrives at second.Timestamp.
	elapsed := second.Timestamp - first.Timestamp
	t := 1.0
	if elapsed > 0 {
		t = st.InterpolationTime / elapsed
	}

	// The produced ratio is clamped: when the cursor overruns the pair before
	// fresh data arrives, the newest state is held rather than extrapolated.
	computed := Interpolate(first, second, smath.Clamp64(t, 0, 1))

	// The unclamped cursor still drives trimming. Once it passes the second
	// entry the head is fully consumed, and the remainder carries over so the
	// cursor continues smoothly relative to the next pair.
	if st.InterpolationTime >= elapsed {
		st.InterpolationTime -= elapsed
		buf.RemoveOldest()
	}

	return computed, true
}

// Reset clears the buffer and zeroes both time fields, returning the whole
// state machine to uninitialized. Called on teleport or when the owning
// entity is disabled or re-enabled, to avoid interpolating across a
// discontinuity. Idempotent.
func Reset(st *State, buf *Buffer) {
	st.RemoteTime = 0
	st.InterpolationTime = 0
	buf.Clear()
}
