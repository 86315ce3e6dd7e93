package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
)

const (
	ScreenWidth  = 520
	ScreenHeight = 640
	DebugWidth   = 1280
	DebugHeight  = 720
)

func main() {
	kicks := flag.String("kicks", "rlu", "Rotation kick table: rlu (right-left-up) or horizontal.")
	seed := flag.Uint64("seed", 0, "Seed for the piece randomizer; 0 picks a random seed.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	sound := flag.Bool("sound", false, "Play sound effects.")
	flag.Parse()

	cfg, err := buildConfig(*kicks, *seed)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var listeners engine.Listeners
	if *sound {
		board := audio.NewSoundBoard()
		if err := board.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer board.Close()
			listeners = append(listeners, board)
		}
	}
	cfg.Listener = listeners

	game := engine.New(cfg)
	scheduler := clock.NewScheduler()
	scheduler.SetHold(game.Paused)

	frontend := &Game{
		Engine:    game,
		Scheduler: scheduler,
		Input:     &InputSystem{Game: game},
	}

	scheduler.Register(frontend.Input)
	scheduler.Register(&clock.TickSystem{Target: game})

	if *debug {
		frontend.Imgui = debugui_ebiten.NewImguiBackend("Blockfall (debug)", DebugWidth, DebugHeight)
		frontend.Overlay = debugui.NewOverlay(game, scheduler)
		frontend.Input.Overlay = frontend.Overlay
		scheduler.Register(frontend.Overlay)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Starting with %s kicks", cfg.Rotation)
	game.Start()

	if err := ebiten.RunGame(frontend); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
	log.Printf("Final score %d, %d lines, level %d", game.Score(), game.Lines(), game.Level())
}

func buildConfig(kicks string, seed uint64) (engine.Config, error) {
	cfg := engine.DefaultConfig()

	policy, err := engine.ParseRotationPolicy(kicks)
	if err != nil {
		return cfg, fmt.Errorf("kicks flag: %w", err)
	}
	cfg.Rotation = policy

	if seed != 0 {
		cfg.Random = engine.NewSeededRandom(seed)
	}
	return cfg, nil
}
