package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
)

const (
	CellSize    = 30
	BoardX      = 20
	BoardY      = 20
	PanelX      = BoardX + engine.Cols*CellSize + 20
	PreviewBox  = 4
	PreviewCell = 24
)

var (
	background = color.RGBA{0x11, 0x11, 0x11, 0xff}
	gridLine   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	border     = color.RGBA{0x80, 0x80, 0x80, 0xff}
	shade      = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

var pieceColors = [...]color.RGBA{
	engine.I: {0x00, 0xf0, 0xf0, 0xff},
	engine.J: {0x00, 0x00, 0xf0, 0xff},
	engine.L: {0xf0, 0xa0, 0x00, 0xff},
	engine.O: {0xf0, 0xf0, 0x00, 0xff},
	engine.S: {0x00, 0xf0, 0x00, 0xff},
	engine.T: {0xa0, 0x00, 0xf0, 0xff},
	engine.Z: {0xf0, 0x00, 0x00, 0xff},
}

// ghostColor is the piece color at reduced alpha.
func ghostColor(t engine.PieceType) color.RGBA {
	c := pieceColors[t]
	return color.RGBA{c.R / 4, c.G / 4, c.B / 4, 0x40}
}

func drawGame(screen *ebiten.Image, snap *engine.Snapshot) {
	screen.Fill(background)

	w, h := float32(engine.Cols*CellSize), float32(engine.Rows*CellSize)
	vector.StrokeRect(screen, BoardX-2, BoardY-2, w+4, h+4, 2, border, false)

	for row := range engine.Rows {
		for col := range engine.Cols {
			x := float32(BoardX + col*CellSize)
			y := float32(BoardY + row*CellSize)

			t, ghost := snap.Cell(row, col)
			switch {
			case t == engine.Empty:
				vector.StrokeRect(screen, x, y, CellSize, CellSize, 1, gridLine, false)
			case ghost:
				vector.DrawFilledRect(screen, x, y, CellSize, CellSize, ghostColor(t), false)
			default:
				vector.DrawFilledRect(screen, x, y, CellSize, CellSize, pieceColors[t], false)
				vector.StrokeRect(screen, x, y, CellSize, CellSize, 1, color.Black, false)
			}
		}
	}

	drawPanel(screen, snap)

	switch {
	case snap.GameOver:
		drawBanner(screen, fmt.Sprintf("GAME OVER\n\nScore: %d\n\nPress R to restart", snap.Score))
	case snap.Paused:
		drawBanner(screen, "PAUSED\n\nPress P to resume")
	}
}

func drawPanel(screen *ebiten.Image, snap *engine.Snapshot) {
	ebitenutil.DebugPrintAt(screen, "NEXT", PanelX, BoardY)

	boxY := BoardY + 20
	size := float32(PreviewBox * PreviewCell)
	vector.StrokeRect(screen, PanelX, float32(boxY), size, size, 1, border, false)

	if snap.Next != nil {
		dx, dy := engine.PreviewOffset(snap.Next.Shape, PreviewBox)
		for r, c := range snap.Next.Shape.Cells() {
			x := float32(PanelX + (c+dx)*PreviewCell)
			y := float32(boxY + (r+dy)*PreviewCell)
			vector.DrawFilledRect(screen, x, y, PreviewCell, PreviewCell, pieceColors[snap.Next.Type], false)
			vector.StrokeRect(screen, x, y, PreviewCell, PreviewCell, 1, color.Black, false)
		}
	}

	textY := boxY + PreviewBox*PreviewCell + 20
	stats := fmt.Sprintf("SCORE\n%d\n\nLEVEL\n%d\n\nLINES\n%d", snap.Score, snap.Level, snap.Lines)
	ebitenutil.DebugPrintAt(screen, stats, PanelX, textY)

	help := "Left/Right  move\nDown        soft drop\nUp/X        rotate\nSpace       hard drop\nP           pause\nR           restart\nQ/Esc       quit"
	ebitenutil.DebugPrintAt(screen, help, PanelX, textY+150)
}

func drawBanner(screen *ebiten.Image, text string) {
	w := float32(engine.Cols * CellSize)
	vector.DrawFilledRect(screen, BoardX, BoardY+220, w, 120, shade, false)
	ebitenutil.DebugPrintAt(screen, text, BoardX+80, BoardY+240)
}
