//go:build unix

package engine

import (
	"time"

	"golang.org/x/sys/unix"
)

type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a Clock reading CLOCK_MONOTONIC
func NewMonotonicClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() Timestamp {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// Fall back to the runtime monotonic reading
		d := time.Since(c.start)
		return Timestamp{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}
	}
	return Timestamp{Sec: int64(ts.Sec), Nsec: int64(ts.Nsec)}
}
