package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	var empty Board

	t.Run("spawn on empty board", func(t *testing.T) {
		for _, pt := range PieceTypes {
			assert.False(t, Collides(&empty, SpawnPiece(pt), 0, 0), "%s", pt)
		}
	})

	t.Run("walls and floor", func(t *testing.T) {
		o := Piece{Type: O, Shape: O.Shape(), X: 0, Y: Rows - 2}
		assert.False(t, Collides(&empty, o, 0, 0))
		assert.True(t, Collides(&empty, o, -1, 0))
		assert.True(t, Collides(&empty, o, 0, 1))

		o.X = Cols - 2
		assert.False(t, Collides(&empty, o, 0, 0))
		assert.True(t, Collides(&empty, o, 1, 0))
	})

	t.Run("rows above the board are ignored", func(t *testing.T) {
		i := Piece{Type: I, Shape: I.Shape().Rotate(), X: 0, Y: -3}
		assert.False(t, Collides(&empty, i, 0, 0))
		assert.False(t, Collides(&empty, i, 0, -10))
		// the empty leading columns of the shape may hang past the wall
		i.X = -2
		assert.False(t, Collides(&empty, i, 0, 0))
		assert.True(t, Collides(&empty, i, -1, 0))
	})

	t.Run("occupied cells", func(t *testing.T) {
		b := mustParseBoard(t, `
			....Z.....
		`)
		o := Piece{Type: O, Shape: O.Shape(), X: 3, Y: Rows - 3}
		assert.False(t, Collides(b, o, 0, 0))
		assert.True(t, Collides(b, o, 0, 1))
		assert.False(t, Collides(b, o, 2, 1))
	})
}

func referenceCollides(b *Board, p Piece, dx, dy int) bool {
	for row := range p.Shape {
		for col := range p.Shape[row] {
			if !p.Shape[row][col] {
				continue
			}
			x, y := p.X+col+dx, p.Y+row+dy
			if x < 0 || x >= Cols || y >= Rows {
				return true
			}
			if y >= 0 && b.At(y, x) != Empty {
				return true
			}
		}
	}
	return false
}

func TestCollidesMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 2000 {
		var b Board
		for row := range Rows {
			for col := range Cols {
				if rng.IntN(10) < 3 {
					b.Set(row, col, PieceTypes[rng.IntN(len(PieceTypes))])
				}
			}
		}

		pt := PieceTypes[rng.IntN(len(PieceTypes))]
		shape := pt.Shape()
		for range rng.IntN(4) {
			shape = shape.Rotate()
		}
		p := Piece{Type: pt, Shape: shape, X: rng.IntN(Cols+6) - 4, Y: rng.IntN(Rows+6) - 4}
		dx, dy := rng.IntN(3)-1, rng.IntN(3)-1

		assert.Equal(t, referenceCollides(&b, p, dx, dy), Collides(&b, p, dx, dy),
			"piece %s at (%d,%d) offset (%d,%d)\n%s", pt, p.X, p.Y, dx, dy, b.String())
	}
}
