package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
)

// StatePanel shows scoring state and offers pause and reset buttons.
type StatePanel struct {
	Game GameView
}

func (sp *StatePanel) Render(_ *clock.Frame, snap *engine.Snapshot) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Phase: %s", snap.Phase))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d", snap.Level))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	imgui.Text(fmt.Sprintf("Drop Interval: %s", snap.DropInterval))

	imgui.Separator()
	if snap.Active != nil {
		imgui.Text(fmt.Sprintf("Active: %s at (%d, %d)", snap.Active.Type, snap.Active.X, snap.Active.Y))
		imgui.Text(fmt.Sprintf("Ghost Row: %d", snap.Ghost.Y))
		imgui.Text(fmt.Sprintf("Next: %s", snap.Next.Type))
	} else {
		imgui.Text("No active piece")
	}

	imgui.Separator()
	label := "Pause"
	if snap.Paused {
		label = "Resume"
	}
	if imgui.Button(label) {
		sp.Game.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		sp.Game.Reset()
	}

	imgui.End()
}
