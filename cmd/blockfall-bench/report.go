package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Kicks    string
	Tick     time.Duration

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	GravitySteps   int64
	Actions        int64
	Games          int
	BestScore      int
	Locks          int
	Lines          int
	Clears         []ClearCount
	Spawned        []SpawnCount
	Systems        []clock.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type ClearCount struct {
	Name  string
	Count int
}

type SpawnCount struct {
	Piece engine.PieceType
	Count int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

var clearNames = [...]string{"", "Single", "Double", "Triple", "Tetris"}

// Collect copies the simulation's counters into the report. Spawn counts
// cover the game in progress only since the engine resets them on restart.
func (r *Report) Collect(sim *Simulation) {
	r.TotalUpdates = sim.Frames
	r.SimulatedTime = time.Duration(sim.Frames) * r.Tick
	r.GravitySteps = sim.Gravity.Steps
	r.Actions = sim.Bot.Actions
	r.Games = sim.Bot.Games
	r.BestScore = max(sim.Bot.BestScore, sim.Game.Score())
	r.Locks = sim.Bot.Locks
	r.Lines = sim.Bot.Lines

	r.Clears = r.Clears[:0]
	for n := 1; n < len(sim.Bot.Clears); n++ {
		r.Clears = append(r.Clears, ClearCount{Name: clearNames[n], Count: sim.Bot.Clears[n]})
	}

	stats := sim.Game.Stats()
	r.Spawned = r.Spawned[:0]
	for _, t := range engine.PieceTypes {
		r.Spawned = append(r.Spawned, SpawnCount{Piece: t, Count: stats.Spawned[t]})
	}

	r.Systems = sim.Scheduler.GetStats().Systems
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Kick Table:** {{.Kicks}}
- **Frame Tick:** {{.Tick}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Time:** {{.SimulatedTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}
- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}

## Gameplay
- **Bot Actions:** {{.Actions}}
- **Gravity Steps:** {{.GravitySteps}}
- **Games Finished:** {{.Games}}
- **Best Score:** {{.BestScore}}
- **Pieces Locked:** {{.Locks}}
- **Lines Cleared:** {{.Lines}}
{{range .Clears}}
- {{.Name}}: {{.Count}}
{{- end}}

## Current Game Spawns
{{range .Spawned}}
- {{.Piece}}: {{.Count}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
