package engine

// ClearLines removes every complete row, bottom to top, shifting the rows
// above each one down. A row is re-examined after a shift since new content
// has moved into it. It returns the number of rows removed.
func ClearLines(b *Board) int {
	cleared := 0
	for row := Rows - 1; row >= 0; {
		if !b.RowComplete(row) {
			row--
			continue
		}
		b.removeRow(row)
		cleared++
	}
	return cleared
}
