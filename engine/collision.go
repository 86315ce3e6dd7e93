package engine

// Collides reports whether piece, shifted by (dx, dy), overlaps a wall, the
// floor, or an occupied cell. Cells above the top edge never collide so that
// pieces can spawn and rotate partially off-board.
func Collides(b *Board, piece Piece, dx, dy int) bool {
	for row, col := range piece.Shape.Cells() {
		x := piece.X + col + dx
		y := piece.Y + row + dy

		if x < 0 || x >= Cols || y >= Rows {
			return true
		}

		if y < 0 {
			continue
		}

		if b.cells[y][x] != Empty {
			return true
		}
	}

	return false
}
