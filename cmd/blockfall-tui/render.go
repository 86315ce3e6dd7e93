package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
)

// Layout in terminal cells. Each board cell is two columns wide.
const (
	BoardLeft  = 1
	BoardTop   = 1
	CellWidth  = 2
	PanelLeft  = BoardLeft + engine.Cols*CellWidth + 4
	PreviewBox = 4
)

var pieceColors = [...]tcell.Color{
	engine.I: tcell.NewHexColor(0x00f0f0),
	engine.J: tcell.NewHexColor(0x0000f0),
	engine.L: tcell.NewHexColor(0xf0a000),
	engine.O: tcell.NewHexColor(0xf0f000),
	engine.S: tcell.NewHexColor(0x00f000),
	engine.T: tcell.NewHexColor(0xa000f0),
	engine.Z: tcell.NewHexColor(0xf00000),
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// Draw renders a snapshot: board with border, next preview and score panel.
func Draw(screen tcell.Screen, snap *engine.Snapshot) {
	screen.Clear()

	right := BoardLeft + engine.Cols*CellWidth + 1
	bottom := BoardTop + engine.Rows + 1
	for y := BoardTop; y < bottom; y++ {
		screen.SetContent(BoardLeft, y, '│', nil, borderStyle)
		screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := BoardLeft; x <= right; x++ {
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	screen.SetContent(BoardLeft, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)

	for row := range engine.Rows {
		for col := range engine.Cols {
			x := BoardLeft + 1 + col*CellWidth
			y := BoardTop + row

			t, ghost := snap.Cell(row, col)
			switch {
			case t == engine.Empty:
				drawCell(screen, x, y, " .", emptyStyle)
			case ghost:
				drawCell(screen, x, y, "::", tcell.StyleDefault.Foreground(pieceColors[t]))
			default:
				drawCell(screen, x, y, "  ", tcell.StyleDefault.Background(pieceColors[t]))
			}
		}
	}

	drawText(screen, PanelLeft, BoardTop, "NEXT", textStyle)
	if snap.Next != nil {
		dx, dy := engine.PreviewOffset(snap.Next.Shape, PreviewBox)
		style := tcell.StyleDefault.Background(pieceColors[snap.Next.Type])
		for r, c := range snap.Next.Shape.Cells() {
			drawCell(screen, PanelLeft+(c+dx)*CellWidth, BoardTop+1+r+dy, "  ", style)
		}
	}

	y := BoardTop + PreviewBox + 2
	for _, line := range []string{
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("LEVEL %d", snap.Level),
		fmt.Sprintf("LINES %d", snap.Lines),
		"",
		"←/→ move   ↓ soft drop",
		"↑/x rotate  space drop",
		"p pause  r restart  q quit",
	} {
		drawText(screen, PanelLeft, y, line, textStyle)
		y++
	}

	switch {
	case snap.GameOver:
		drawText(screen, BoardLeft+3, BoardTop+engine.Rows/2-1, " GAME OVER ", bannerStyle)
		drawText(screen, BoardLeft+3, BoardTop+engine.Rows/2, fmt.Sprintf(" Score: %d ", snap.Score), bannerStyle)
		drawText(screen, BoardLeft+3, BoardTop+engine.Rows/2+1, " r: restart ", bannerStyle)
	case snap.Paused:
		drawText(screen, BoardLeft+6, BoardTop+engine.Rows/2, " PAUSED ", bannerStyle)
	}
}

func drawCell(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
