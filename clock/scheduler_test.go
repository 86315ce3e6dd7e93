package clock_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	deltas []time.Duration
	order  *[]string
	name   string
}

func (s *recordingSystem) Execute(frame *clock.Frame) {
	s.deltas = append(s.deltas, frame.DeltaTime)
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		var order []string
		scheduler := clock.NewScheduler()
		scheduler.Register(&recordingSystem{order: &order, name: "gravity"})
		scheduler.Register(&recordingSystem{order: &order, name: "render"})

		scheduler.Once(time.Second)
		scheduler.Once(time.Second)

		assert.Equal(t, []string{"gravity", "render", "gravity", "render"}, order)
	})

	t.Run("step computes deltas", func(t *testing.T) {
		mc := clock.NewManualClock(time.Unix(0, 0))
		rec := &recordingSystem{}
		scheduler := clock.NewScheduler()
		scheduler.Register(rec)

		scheduler.Step(mc.Now())
		scheduler.Step(mc.Advance(16 * time.Millisecond))
		scheduler.Step(mc.Advance(20 * time.Millisecond))

		assert.Equal(t, []time.Duration{0, 16 * time.Millisecond, 20 * time.Millisecond}, rec.deltas)
	})

	t.Run("negative deltas are clamped", func(t *testing.T) {
		rec := &recordingSystem{}
		scheduler := clock.NewScheduler()
		scheduler.Register(rec)

		scheduler.Once(-time.Second)
		assert.Equal(t, []time.Duration{0}, rec.deltas)
	})

	t.Run("held time is never reported", func(t *testing.T) {
		mc := clock.NewManualClock(time.Unix(0, 0))
		rec := &recordingSystem{}
		held := false

		scheduler := clock.NewScheduler()
		scheduler.SetHold(func() bool { return held })
		scheduler.Register(rec)

		scheduler.Step(mc.Now())
		scheduler.Step(mc.Advance(10 * time.Millisecond))

		held = true
		scheduler.Step(mc.Advance(10 * time.Millisecond))
		scheduler.Step(mc.Advance(time.Minute))

		held = false
		scheduler.Step(mc.Advance(time.Minute))
		scheduler.Step(mc.Advance(10 * time.Millisecond))

		assert.Equal(t, []time.Duration{
			0, 10 * time.Millisecond,
			0, 0,
			0, 10 * time.Millisecond,
		}, rec.deltas)
	})

	t.Run("reset", func(t *testing.T) {
		mc := clock.NewManualClock(time.Unix(0, 0))
		rec := &recordingSystem{}
		scheduler := clock.NewScheduler()
		scheduler.Register(rec)

		scheduler.Step(mc.Now())
		scheduler.Reset()
		scheduler.Step(mc.Advance(time.Hour))

		assert.Equal(t, []time.Duration{0, 0}, rec.deltas)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		var frames atomic.Int64
		scheduler := clock.NewScheduler()
		scheduler.RegisterNamed("counter", clock.SystemFunc(func(*clock.Frame) {
			frames.Add(1)
		}))

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Positive(t, frames.Load())
	})

	t.Run("stats", func(t *testing.T) {
		scheduler := clock.NewScheduler()
		scheduler.Register(&recordingSystem{})
		scheduler.RegisterNamed("noop", clock.SystemFunc(func(*clock.Frame) {}))

		empty := scheduler.GetStats()
		assert.Zero(t, empty.Systems[0].MinDuration)

		for range 3 {
			scheduler.Once(time.Millisecond)
		}

		stats := scheduler.GetStats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, uint64(3), stats.Frames)
		require.Len(t, stats.Systems, 2)
		assert.Equal(t, "recordingSystem", stats.Systems[0].Name)
		assert.Equal(t, "noop", stats.Systems[1].Name)
		assert.Equal(t, int64(3), stats.Systems[1].ExecutionCount)
		assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
	})
}

func TestTickSystemDrivesGravity(t *testing.T) {
	game := engine.New(engine.Config{Random: engine.NewSequence(engine.O)})
	game.Start()

	mc := clock.NewManualClock(time.Unix(0, 0))
	gravity := &clock.TickSystem{Target: game}

	scheduler := clock.NewScheduler()
	scheduler.SetHold(game.Paused)
	scheduler.Register(gravity)

	scheduler.Step(mc.Now())
	// sixty 60Hz frames fall a few nanoseconds short of one second
	for range 61 {
		scheduler.Step(mc.Advance(time.Second / 60))
	}
	active, _ := game.Active()
	assert.Equal(t, 1, active.Y)
	assert.Equal(t, int64(1), gravity.Steps)

	game.TogglePause()
	scheduler.Step(mc.Advance(time.Second))
	scheduler.Step(mc.Advance(time.Hour))
	game.TogglePause()

	// the first frame after resuming carries no time
	scheduler.Step(mc.Advance(time.Hour))
	active, _ = game.Active()
	assert.Equal(t, 1, active.Y)

	scheduler.Step(mc.Advance(time.Second))
	active, _ = game.Active()
	assert.Equal(t, 2, active.Y)
}
