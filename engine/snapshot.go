package engine

import "time"

// Snapshot is an immutable view of a Game for renderers. It shares no
// memory with the engine.
type Snapshot struct {
	Board Grid
	// Active, Ghost and Next are nil before the first Start.
	Active *Piece
	Ghost  *Piece
	// Next holds the upcoming piece in its spawn orientation and position.
	Next *Piece

	Score        int
	Lines        int
	Level        int
	DropInterval time.Duration
	Phase        Phase
	GameOver     bool
	Paused       bool
	Stats        StatsSnapshot
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Board:        g.board.Grid(),
		Score:        g.score.Score(),
		Lines:        g.score.Lines(),
		Level:        g.score.Level(),
		DropInterval: g.score.DropInterval(),
		Phase:        g.phase,
		GameOver:     g.phase == PhaseGameOver,
		Paused:       g.phase == PhasePaused,
		Stats:        g.stats.snapshot(),
	}

	if g.active != nil {
		active := g.active.Clone()
		ghost := g.ghost.Clone()
		next := SpawnPiece(g.next)
		snap.Active = &active
		snap.Ghost = &ghost
		snap.Next = &next
	}

	return snap
}

// Cell returns what a renderer should draw at (row, col): the active piece
// wins over the ghost, which wins over the board. ghost reports whether the
// cell belongs to the ghost projection only.
func (s *Snapshot) Cell(row, col int) (t PieceType, ghost bool) {
	if !InBounds(row, col) {
		return Empty, false
	}
	if s.Active != nil && covers(*s.Active, row, col) {
		return s.Active.Type, false
	}
	if s.Ghost != nil && covers(*s.Ghost, row, col) {
		return s.Ghost.Type, true
	}
	return s.Board[row][col], false
}

func covers(p Piece, row, col int) bool {
	r, c := row-p.Y, col-p.X
	if r < 0 || r >= len(p.Shape) || c < 0 || c >= len(p.Shape[r]) {
		return false
	}
	return p.Shape[r][c]
}
