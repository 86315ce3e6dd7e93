package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/engine"
)

// Auto-repeat timing in update ticks (60 per second).
const (
	RepeatDelay = 10
	RepeatRate  = 3
)

// shouldRepeat reports whether a key held for the given number of ticks
// fires this tick: once on press, then every RepeatRate ticks after
// RepeatDelay.
func shouldRepeat(ticks int) bool {
	if ticks == 1 {
		return true
	}
	return ticks >= RepeatDelay && (ticks-RepeatDelay)%RepeatRate == 0
}

// InputSystem maps keyboard state to engine intents.
type InputSystem struct {
	Game    *engine.Game
	Overlay *debugui.Overlay
	Quit    bool
}

func (s *InputSystem) Execute(frame *clock.Frame) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Quit = true
		return
	}

	if s.Overlay != nil && s.Overlay.Input.WantCaptureKeyboard {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Game.Reset()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.Game.TogglePause()
	}

	if shouldRepeat(inpututil.KeyPressDuration(ebiten.KeyLeft)) {
		s.Game.MoveLeft()
	}
	if shouldRepeat(inpututil.KeyPressDuration(ebiten.KeyRight)) {
		s.Game.MoveRight()
	}
	if shouldRepeat(inpututil.KeyPressDuration(ebiten.KeyDown)) {
		s.Game.SoftDrop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.Game.Rotate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Game.HardDrop()
	}
}
