// Package debugui provides Dear ImGui debug panels for a running game.
// Panels read engine snapshots and scheduler statistics; the overlay runs as
// a clock.System between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
)

// GameView is the part of a game the panels read and control.
type GameView interface {
	Snapshot() engine.Snapshot
	TogglePause() bool
	Reset()
}

// Panel renders one ImGui window.
type Panel interface {
	Render(frame *clock.Frame, snap *engine.Snapshot)
}

// InputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders its panels once per frame.
type Overlay struct {
	Game   GameView
	Panels []Panel
	Input  InputState
}

// NewOverlay creates an overlay with the standard panel set.
func NewOverlay(game GameView, scheduler *clock.Scheduler) *Overlay {
	return &Overlay{
		Game: game,
		Panels: []Panel{
			&StatePanel{Game: game},
			&StatsPanel{},
			&BoardPanel{},
			NewPerformancePanel(scheduler, 120),
		},
	}
}

// Execute updates input state and renders every panel.
func (o *Overlay) Execute(frame *clock.Frame) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	snap := o.Game.Snapshot()
	for _, panel := range o.Panels {
		panel.Render(frame, &snap)
	}
}
