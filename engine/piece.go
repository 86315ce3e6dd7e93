package engine

import (
	"iter"
	"slices"
)

// PieceType identifies one of the seven tetrominoes. The zero value, Empty,
// marks an unoccupied board cell.
type PieceType uint8

const (
	Empty PieceType = iota
	I
	J
	L
	O
	S
	T
	Z
)

// PieceTypes lists every playable piece type in catalog order.
var PieceTypes = [...]PieceType{I, J, L, O, S, T, Z}

var pieceNames = [...]string{"Empty", "I", "J", "L", "O", "S", "T", "Z"}

func (p PieceType) String() string {
	if int(p) < len(pieceNames) {
		return pieceNames[p]
	}
	return "PieceType(?)"
}

// Valid reports whether p is one of the seven playable piece types.
func (p PieceType) Valid() bool {
	return p >= I && p <= Z
}

// Shape is a square occupancy matrix indexed as shape[row][col].
type Shape [][]bool

// Size returns the side length of the matrix.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	for i := range s {
		clone[i] = slices.Clone(s[i])
	}
	return clone
}

// Rotate returns the shape turned 90 degrees clockwise:
// rotated[i][j] = s[n-1-j][i].
func (s Shape) Rotate() Shape {
	size := len(s)
	rotated := make(Shape, size)
	for i := range rotated {
		rotated[i] = make([]bool, size)
	}

	for i := range size {
		for j := range size {
			rotated[i][j] = s[size-1-j][i]
		}
	}

	return rotated
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	return slices.EqualFunc(s, other, slices.Equal[[]bool])
}

// Cells yields the (row, col) of every occupied cell in row-major order.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row := range s {
			for col, filled := range s[row] {
				if !filled {
					continue
				}
				if !yield(row, col) {
					return
				}
			}
		}
	}
}

// Definition is the immutable template of a piece type in its spawn orientation.
type Definition struct {
	Type  PieceType
	Shape Shape
}

func parseShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for i, row := range rows {
		shape[i] = make([]bool, len(row))
		for j, c := range row {
			shape[i][j] = c == '#'
		}
	}
	return shape
}

var catalog = [...]Shape{
	I: parseShape(
		"....",
		"####",
		"....",
		"....",
	),
	J: parseShape(
		"#..",
		"###",
		"...",
	),
	L: parseShape(
		"..#",
		"###",
		"...",
	),
	O: parseShape(
		"##",
		"##",
	),
	S: parseShape(
		".##",
		"##.",
		"...",
	),
	T: parseShape(
		".#.",
		"###",
		"...",
	),
	Z: parseShape(
		"##.",
		".##",
		"...",
	),
}

// Shape returns a fresh copy of the piece type's canonical shape, or nil for
// Empty and unknown values.
func (p PieceType) Shape() Shape {
	if !p.Valid() {
		return nil
	}
	return catalog[p].Clone()
}

// Catalog returns the seven piece definitions. Callers own the returned shapes.
func Catalog() []Definition {
	defs := make([]Definition, 0, len(PieceTypes))
	for _, t := range PieceTypes {
		defs = append(defs, Definition{Type: t, Shape: t.Shape()})
	}
	return defs
}

// Piece is a piece instance on the board. (X, Y) is the grid position of the
// shape matrix's top-left corner; Y may be negative while the piece is still
// above the visible board.
type Piece struct {
	Type  PieceType
	Shape Shape
	X, Y  int
}

// Clone returns a copy of p that shares no memory with it.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Moved returns p shifted by (dx, dy). The shape is shared, not copied.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// SpawnPiece places a new piece of type t horizontally centered on row 0.
func SpawnPiece(t PieceType) Piece {
	shape := t.Shape()
	return Piece{
		Type:  t,
		Shape: shape,
		X:     Cols/2 - len(shape)/2,
		Y:     0,
	}
}

// PreviewOffset returns the cell offset that centers shape inside a square
// preview box of the given size.
func PreviewOffset(shape Shape, box int) (dx, dy int) {
	if len(shape) == 0 {
		return 0, 0
	}
	return (box - len(shape[0])) / 2, (box - len(shape)) / 2
}
