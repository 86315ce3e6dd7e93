package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/engine"
)

func main() {
	kicks := flag.String("kicks", "rlu", "Rotation kick table: rlu (right-left-up) or horizontal.")
	seed := flag.Uint64("seed", 0, "Seed for the piece randomizer; 0 picks a random seed.")
	sound := flag.Bool("sound", false, "Play sound effects.")
	tick := flag.Duration("tick", 16*time.Millisecond, "Frame interval.")
	logFile := flag.String("log", "", "Write log output to this file instead of discarding it.")
	flag.Parse()

	// the terminal belongs to tcell while the game runs
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := engine.DefaultConfig()
	policy, err := engine.ParseRotationPolicy(*kicks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kicks flag: %v\n", err)
		os.Exit(2)
	}
	cfg.Rotation = policy
	if *seed != 0 {
		cfg.Random = engine.NewSeededRandom(*seed)
	}

	if *sound {
		board := audio.NewSoundBoard()
		if err := board.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer board.Close()
			cfg.Listener = board
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}

	tui, err := NewTUI(screen, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	log.Printf("Starting with %s kicks", policy)
	tui.Run(*tick)
	tui.Close()

	fmt.Printf("Final score %d, %d lines, level %d\n", tui.Game.Score(), tui.Game.Lines(), tui.Game.Level())
}
