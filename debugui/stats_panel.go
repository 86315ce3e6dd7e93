package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
)

var clearNames = [...]string{"", "Single", "Double", "Triple", "Tetris"}

// StatsPanel tabulates spawned pieces and line clears.
type StatsPanel struct{}

func (StatsPanel) Render(_ *clock.Frame, snap *engine.Snapshot) {
	if !imgui.BeginV("Piece Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := snap.Stats
	imgui.Text(fmt.Sprintf("Locked Pieces: %d", stats.Locks))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Piece")
		imgui.TableSetupColumn("Spawned")
		imgui.TableHeadersRow()

		for _, t := range engine.PieceTypes {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(t.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stats.Spawned[t]))
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Line Clears") {
		for n := 1; n < len(stats.Clears); n++ {
			imgui.BulletText(fmt.Sprintf("%s: %d", clearNames[n], stats.Clears[n]))
		}
		imgui.TreePop()
	}

	imgui.End()
}
