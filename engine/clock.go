package engine

import "time"

// Timestamp is a monotonic clock reading split into seconds and nanoseconds within the second
type Timestamp struct {
	Sec  int64
	Nsec int64
}

// Clock supplies monotonic timestamps for frame timing
type Clock interface {
	Now() Timestamp
}

// SubsecondElapsed returns the time between two sub-second readings
// If after is below before, the clock crossed a whole second and the interval is
// (1s - before) + after; longer intervals are not representable
func SubsecondElapsed(before, after int64) time.Duration {
	if after < before {
		return time.Duration(int64(time.Second)-before) + time.Duration(after)
	}
	return time.Duration(after - before)
}
