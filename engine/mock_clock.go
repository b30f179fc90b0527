package engine

import (
	"sync"
	"time"
)

// MockClock provides controllable timestamps for testing
// Queued readings are returned first; afterwards each Now advances by Step
type MockClock struct {
	mu      sync.Mutex
	current Timestamp
	queue   []Timestamp
	Step    time.Duration
}

// NewMockClock creates a mock clock starting at start
func NewMockClock(start Timestamp, step time.Duration) *MockClock {
	return &MockClock{current: start, Step: step}
}

// Queue appends readings to be returned by the next Now calls
func (m *MockClock) Queue(ts ...Timestamp) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, ts...)
}

// Now returns the next queued reading or the stepped current time
func (m *MockClock) Now() Timestamp {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.queue) > 0 {
		ts := m.queue[0]
		m.queue = m.queue[1:]
		m.current = ts
		return ts
	}

	ts := m.current
	total := time.Duration(ts.Sec)*time.Second + time.Duration(ts.Nsec) + m.Step
	m.current = Timestamp{Sec: int64(total / time.Second), Nsec: int64(total % time.Second)}
	return ts
}
