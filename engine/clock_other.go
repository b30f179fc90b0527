//go:build !unix

package engine

import "time"

type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a Clock derived from the runtime monotonic time
func NewMonotonicClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() Timestamp {
	d := time.Since(c.start)
	return Timestamp{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}
}
