package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
)

// Intent is a player action decoded from a key.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentSoftDrop
	IntentRotate
	IntentHardDrop
	IntentPause
	IntentReset
	IntentQuit
)

// intentFor decodes a key event.
func intentFor(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyLeft:
		return IntentLeft
	case tcell.KeyRight:
		return IntentRight
	case tcell.KeyDown:
		return IntentSoftDrop
	case tcell.KeyUp:
		return IntentRotate
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return IntentHardDrop
		case 'x', 'X':
			return IntentRotate
		case 'p', 'P':
			return IntentPause
		case 'r', 'R':
			return IntentReset
		case 'q', 'Q':
			return IntentQuit
		case 'h':
			return IntentLeft
		case 'l':
			return IntentRight
		case 'j':
			return IntentSoftDrop
		case 'k':
			return IntentRotate
		}
	}
	return IntentNone
}

// Apply performs an intent on the game. It reports false for IntentQuit.
func Apply(game *engine.Game, intent Intent) bool {
	switch intent {
	case IntentLeft:
		game.MoveLeft()
	case IntentRight:
		game.MoveRight()
	case IntentSoftDrop:
		game.SoftDrop()
	case IntentRotate:
		game.Rotate()
	case IntentHardDrop:
		game.HardDrop()
	case IntentPause:
		game.TogglePause()
	case IntentReset:
		game.Reset()
	case IntentQuit:
		return false
	}
	return true
}

// TUI runs a game on a tcell screen.
type TUI struct {
	Screen    tcell.Screen
	Game      *engine.Game
	Scheduler *clock.Scheduler
}

// NewTUI initializes the screen and starts a game.
func NewTUI(screen tcell.Screen, cfg engine.Config) (*TUI, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	game := engine.New(cfg)
	scheduler := clock.NewScheduler()
	scheduler.SetHold(game.Paused)

	t := &TUI{
		Screen:    screen,
		Game:      game,
		Scheduler: scheduler,
	}

	scheduler.Register(&clock.TickSystem{Target: game})
	scheduler.RegisterNamed("render", clock.SystemFunc(func(*clock.Frame) {
		snap := game.Snapshot()
		Draw(screen, &snap)
		screen.Show()
	}))

	game.Start()
	return t, nil
}

// Run processes input and frames until the player quits.
func (t *TUI) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.Screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	t.Scheduler.Step(time.Now())

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !Apply(t.Game, intentFor(ev)) {
					return
				}
			case *tcell.EventResize:
				t.Screen.Sync()
			}

		case <-ticker.C:
			t.Scheduler.Step(time.Now())
		}
	}
}

// Close restores the terminal.
func (t *TUI) Close() {
	t.Screen.Fini()
}
