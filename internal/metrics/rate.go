package metrics

import "time"

// NetRate is the derived per-interval network throughput.
type NetRate struct {
	SentPerSec float64 // bytes/sec
	RecvPerSec float64
}

// RateComputer turns cumulative network counters into a throughput rate by
// differencing against the previous sample. The sample loop owns one
// instance for its lifetime.
type RateComputer struct {
	prevSent uint64
	prevRecv uint64
	primed   bool
}

// Compute returns the rate over the elapsed interval and stores the current
// counters for the next call. The stored counters are updated on every call,
// before any result is interpreted, so a failure later in the tick cannot
// leave a stale diff behind.
//
// The first call returns zero (no previous counters exist). A counter that
// went backwards (interface reset, wraparound) clamps to zero rather than
// producing a negative rate.
func (r *RateComputer) Compute(currSent, currRecv uint64, elapsed time.Duration) NetRate {
	prevSent, prevRecv, primed := r.prevSent, r.prevRecv, r.primed
	r.prevSent = currSent
	r.prevRecv = currRecv
	r.primed = true

	if !primed || elapsed <= 0 {
		return NetRate{}
	}

	secs := elapsed.Seconds()
	return NetRate{
		SentPerSec: counterDelta(prevSent, currSent) / secs,
		RecvPerSec: counterDelta(prevRecv, currRecv) / secs,
	}
}

func counterDelta(prev, curr uint64) float64 {
	if curr < prev {
		return 0
	}
	return float64(curr - prev)
}
