package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration the benchmark should run for.")
	seed := flag.Uint64("seed", 1, "Seed for both the piece randomizer and the bot.")
	kicks := flag.String("kicks", "rlu", "Rotation kick table: rlu (right-left-up) or horizontal.")
	tick := flag.Duration("tick", 16*time.Millisecond, "Simulated time per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	policy, err := engine.ParseRotationPolicy(*kicks)
	if err != nil {
		log.Fatalf("Invalid -kicks: %v", err)
	}

	log.Println("Starting blockfall benchmark...")

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Kicks:          policy.String(),
		Tick:           *tick,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	sim := NewSimulation(policy, *seed)

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	sim.Run(ctx, *tick, &report.UpdateTime)
	report.TotalTime = time.Since(startTime)

	report.Collect(sim)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// Simulation runs a bot-driven game on a manual clock.
type Simulation struct {
	Game      *engine.Game
	Bot       *Bot
	Clock     *clock.ManualClock
	Scheduler *clock.Scheduler
	Gravity   *clock.TickSystem
	Frames    int64
}

func NewSimulation(rotation engine.RotationPolicy, seed uint64) *Simulation {
	game := engine.New(engine.Config{
		Rotation: rotation,
		Random:   engine.NewSeededRandom(seed),
	})
	bot := NewBot(game, seed)
	game.SetListener(bot)

	gravity := &clock.TickSystem{Target: game}
	scheduler := clock.NewScheduler()
	scheduler.SetHold(game.Paused)
	scheduler.Register(bot)
	scheduler.Register(gravity)

	game.Start()

	mc := clock.NewManualClock(time.Unix(0, 0))
	scheduler.Step(mc.Now())

	return &Simulation{
		Game:      game,
		Bot:       bot,
		Clock:     mc,
		Scheduler: scheduler,
		Gravity:   gravity,
	}
}

// Step advances simulated time by one frame.
func (s *Simulation) Step(tick time.Duration) {
	s.Scheduler.Step(s.Clock.Advance(tick))
	s.Frames++
}

// Run steps frames as fast as possible until ctx is done, recording the
// wall-clock cost of each frame.
func (s *Simulation) Run(ctx context.Context, tick time.Duration, updates *Stats) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			updateStart := time.Now()
			s.Step(tick)
			updates.Samples = append(updates.Samples, time.Since(updateStart))
		}
	}
}
