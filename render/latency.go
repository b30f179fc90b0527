package render

import "time"

// LatencyWindow is the number of samples kept by LatencyRing, a power of two
const LatencyWindow = 8

const latencyMask = LatencyWindow - 1

// LatencyRing keeps the most recent frame fill durations in a fixed circular window
// Slots start at zero so averages before the first wrap are defined but biased low
type LatencyRing struct {
	samples [LatencyWindow]time.Duration
	cursor  int
	count   uint64
}

// Record stores d at the cursor and advances it
func (r *LatencyRing) Record(d time.Duration) {
	r.samples[r.cursor] = d
	r.cursor = (r.cursor + 1) & latencyMask
	r.count++
}

// HasWrapped reports whether the last Record completed a full window
func (r LatencyRing) HasWrapped() bool {
	return r.count > 0 && r.cursor == 0
}

// Average returns the truncated mean of all slots
func (r LatencyRing) Average() time.Duration {
	var sum time.Duration
	for _, s := range r.samples {
		sum += s
	}
	return sum / LatencyWindow
}

// Cursor returns the slot the next Record will write
func (r LatencyRing) Cursor() int {
	return r.cursor
}

// Count returns the total number of recorded samples
func (r LatencyRing) Count() uint64 {
	return r.count
}

// Samples returns a copy of the window in slot order
func (r LatencyRing) Samples() [LatencyWindow]time.Duration {
	return r.samples
}
