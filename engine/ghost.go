package engine

// GhostOf returns a copy of piece dropped to its resting row. The board and
// piece are left untouched.
func GhostOf(b *Board, piece Piece) Piece {
	ghost := piece.Clone()
	for ghost.Y < Rows && !Collides(b, ghost, 0, 1) {
		ghost.Y++
	}
	return ghost
}
