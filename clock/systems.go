package clock

import (
	"sync"
	"time"
)

// Ticker is anything advanced by elapsed time, such as a game's gravity.
type Ticker interface {
	Tick(dt time.Duration) bool
}

// TickSystem forwards each frame's delta to Target.
type TickSystem struct {
	Target Ticker
	Steps  int64
}

func (s *TickSystem) Execute(frame *Frame) {
	if s.Target.Tick(frame.DeltaTime) {
		s.Steps++
	}
}

// ManualClock is a controllable time source for tests and simulations.
type ManualClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{currentTime: start}
}

// Now returns the current time.
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the clock forward by d and returns the new time.
func (m *ManualClock) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	return m.currentTime
}
