package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	defs := Catalog()
	require.Len(t, defs, 7)

	sizes := map[PieceType]int{I: 4, O: 2, J: 3, L: 3, S: 3, T: 3, Z: 3}

	for _, def := range defs {
		t.Run(def.Type.String(), func(t *testing.T) {
			assert.Equal(t, sizes[def.Type], def.Shape.Size())
			for _, row := range def.Shape {
				assert.Len(t, row, def.Shape.Size(), "shape must be square")
			}

			cells := 0
			for range def.Shape.Cells() {
				cells++
			}
			assert.Equal(t, 4, cells)
		})
	}

	t.Run("shapes are copies", func(t *testing.T) {
		shape := T.Shape()
		shape[0][0] = true
		assert.False(t, T.Shape()[0][0])
	})

	t.Run("empty has no shape", func(t *testing.T) {
		assert.Nil(t, Empty.Shape())
		assert.False(t, Empty.Valid())
		assert.False(t, PieceType(42).Valid())
	})
}

func TestShapeRotate(t *testing.T) {
	t.Run("four turns are the identity", func(t *testing.T) {
		for _, pt := range PieceTypes {
			original := pt.Shape()
			shape := original
			for range 4 {
				shape = shape.Rotate()
			}
			assert.True(t, original.Equal(shape), "%s after four rotations", pt)
		}
	})

	t.Run("clockwise", func(t *testing.T) {
		assert.Equal(t, parseShape(
			".#.",
			".##",
			".#.",
		), T.Shape().Rotate())

		assert.Equal(t, parseShape(
			"..#.",
			"..#.",
			"..#.",
			"..#.",
		), I.Shape().Rotate())

		assert.Equal(t, parseShape(
			".##",
			".#.",
			".#.",
		), J.Shape().Rotate())
	})

	t.Run("does not modify receiver", func(t *testing.T) {
		shape := S.Shape()
		shape.Rotate()
		assert.True(t, S.Shape().Equal(shape))
	})
}

func TestSpawnPiece(t *testing.T) {
	tests := []struct {
		pt    PieceType
		wantX int
	}{
		{I, 3},
		{O, 4},
		{T, 4},
		{Z, 4},
	}

	for _, tt := range tests {
		p := SpawnPiece(tt.pt)
		assert.Equal(t, tt.wantX, p.X, "%s spawn column", tt.pt)
		assert.Equal(t, 0, p.Y)
		assert.Equal(t, tt.pt, p.Type)
	}
}

func TestPreviewOffset(t *testing.T) {
	dx, dy := PreviewOffset(I.Shape(), 4)
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)

	dx, dy = PreviewOffset(O.Shape(), 4)
	assert.Equal(t, 1, dx)
	assert.Equal(t, 1, dy)

	dx, dy = PreviewOffset(L.Shape(), 4)
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)

	dx, dy = PreviewOffset(nil, 4)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestPieceClone(t *testing.T) {
	p := SpawnPiece(L)
	c := p.Clone()
	c.Shape[2][2] = true
	assert.False(t, p.Shape[2][2])

	moved := p.Moved(2, 3)
	assert.Equal(t, p.X+2, moved.X)
	assert.Equal(t, p.Y+3, moved.Y)
}
