package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
)

// Game implements ebiten.Game on top of the engine and the frame scheduler.
type Game struct {
	Engine    *engine.Game
	Scheduler *clock.Scheduler
	Input     *InputSystem

	// Imgui and Overlay are nil unless the debug overlay is enabled.
	Imgui   *debugui_ebiten.ImguiBackend
	Overlay *debugui.Overlay
}

func (g *Game) Update() error {
	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}

	g.Scheduler.Step(time.Now())

	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}

	if g.Input.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.Engine.Snapshot()
	drawGame(screen, &snap)

	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}
