package engine

import (
	"fmt"
	"strings"
)

const (
	Rows = 20
	Cols = 10
)

// Grid is a row-major copy of the board contents.
type Grid [Rows][Cols]PieceType

// Board is the fixed Rows x Cols playfield. Row 0 is the top row.
// The zero value is an empty board.
type Board struct {
	cells Grid
}

// InBounds reports whether (row, col) addresses a visible cell.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// At returns the cell at (row, col). Out of range cells read as Empty.
func (b *Board) At(row, col int) PieceType {
	if !InBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

// Set writes a cell. Out of range writes are ignored.
func (b *Board) Set(row, col int, t PieceType) {
	if !InBounds(row, col) {
		return
	}
	b.cells[row][col] = t
}

// RowComplete reports whether every cell of row is occupied.
func (b *Board) RowComplete(row int) bool {
	if row < 0 || row >= Rows {
		return false
	}
	for _, cell := range b.cells[row] {
		if cell == Empty {
			return false
		}
	}
	return true
}

// removeRow drops row and shifts every row above it down by one, in place.
// Row 0 becomes empty.
func (b *Board) removeRow(row int) {
	for k := row; k > 0; k-- {
		b.cells[k] = b.cells[k-1]
	}
	b.cells[0] = [Cols]PieceType{}
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells = Grid{}
}

// Grid returns a copy of the board contents.
func (b *Board) Grid() Grid {
	return b.cells
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for row := range b.cells {
		for _, cell := range b.cells[row] {
			if cell != Empty {
				n++
			}
		}
	}
	return n
}

// String renders the board one line per row, '.' for empty cells and the
// piece letter otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for row := range b.cells {
		for _, cell := range b.cells[row] {
			sb.WriteByte(cellRune(cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(t PieceType) byte {
	if t == Empty {
		return '.'
	}
	return t.String()[0]
}

// ParseBoard builds a board from a diagram in the format produced by String.
// Fewer than Rows lines are aligned to the bottom of the board; blank lines
// are skipped. Any non-'.' character other than a piece letter is an error.
func ParseBoard(diagram string) (*Board, error) {
	var lines []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) > Rows {
		return nil, fmt.Errorf("board diagram has %d rows, want at most %d", len(lines), Rows)
	}

	b := &Board{}
	offset := Rows - len(lines)
	for i, line := range lines {
		if len(line) != Cols {
			return nil, fmt.Errorf("board row %d has %d columns, want %d", i, len(line), Cols)
		}
		for col, c := range []byte(line) {
			t, err := parseCell(c)
			if err != nil {
				return nil, fmt.Errorf("board row %d col %d: %w", i, col, err)
			}
			b.cells[offset+i][col] = t
		}
	}
	return b, nil
}

func parseCell(c byte) (PieceType, error) {
	if c == '.' {
		return Empty, nil
	}
	for _, t := range PieceTypes {
		if t.String()[0] == c {
			return t, nil
		}
	}
	return Empty, fmt.Errorf("unknown cell %q", c)
}
