package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
)

// BoardPanel dumps the composed board as text.
type BoardPanel struct{}

func (BoardPanel) Render(_ *clock.Frame, snap *engine.Snapshot) {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range BoardLines(snap) {
		imgui.Text(line)
	}

	imgui.End()
}

// BoardLines renders a snapshot one string per row. Settled and active cells
// show their piece letter, ghost cells ':' and empty cells '.'.
func BoardLines(snap *engine.Snapshot) []string {
	lines := make([]string, engine.Rows)
	row := make([]byte, engine.Cols)
	for r := range engine.Rows {
		for c := range engine.Cols {
			t, ghost := snap.Cell(r, c)
			switch {
			case t == engine.Empty:
				row[c] = '.'
			case ghost:
				row[c] = ':'
			default:
				row[c] = t.String()[0]
			}
		}
		lines[r] = string(row)
	}
	return lines
}
