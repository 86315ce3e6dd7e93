// Package clock drives frame systems from a time source. It owns the only
// wall-clock reads in a game; systems receive elapsed time as Frame.DeltaTime.
package clock

import (
	"context"
	"reflect"
	"time"
)

// Frame carries per-frame data to each system.
type Frame struct {
	DeltaTime time.Duration
	Index     uint64
}

// System is run once per frame, in registration order.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a function to System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      uint64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems in order and turns timestamps into
// frame deltas.
type Scheduler struct {
	systems     []System
	systemStats []*systemStatsInternal

	now      func() time.Time
	hold     func() bool
	lastTime time.Time
	frames   uint64
}

// NewScheduler creates a scheduler reading time.Now.
func NewScheduler() *Scheduler {
	return &Scheduler{
		systems: make([]System, 0),
		now:     time.Now,
	}
}

// SetTimeSource replaces the clock used by Run.
func (s *Scheduler) SetTimeSource(now func() time.Time) {
	s.now = now
}

// SetHold installs a predicate checked on every Step. While it returns true
// frames run with a zero delta and the last timestamp is forgotten, so time
// spent held is never reported once it returns false again.
func (s *Scheduler) SetHold(hold func() bool) {
	s.hold = hold
}

// Register adds a system under its type name.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.RegisterNamed(systemType.Name(), system)
}

// RegisterNamed adds a system under an explicit name, which is useful for
// SystemFunc values.
func (s *Scheduler) RegisterNamed(name string, system System) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time.
func (s *Scheduler) Once(dt time.Duration) {
	frame := &Frame{
		DeltaTime: max(dt, 0),
		Index:     s.frames,
	}
	s.frames++

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// Step runs one frame whose delta is the time since the previous Step. The
// first Step after construction, Reset or a hold reports a zero delta.
func (s *Scheduler) Step(now time.Time) {
	var dt time.Duration

	switch {
	case s.hold != nil && s.hold():
		s.lastTime = time.Time{}
	case s.lastTime.IsZero():
		s.lastTime = now
	default:
		dt = now.Sub(s.lastTime)
		s.lastTime = now
	}

	s.Once(dt)
}

// Reset forgets the last timestamp.
func (s *Scheduler) Reset() {
	s.lastTime = time.Time{}
}

// Run executes all systems at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Reset()
	s.Step(s.now())

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step(s.now())
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
