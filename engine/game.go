// Package engine implements the rules of a falling-block puzzle game: the
// board, the seven tetrominoes, collision, rotation with wall kicks, line
// clearing, scoring and the gravity clock.
//
// The engine is single-threaded and deterministic. It never reads the wall
// clock; time only advances through Tick.
package engine

import "time"

// Phase is the state of a Game.
type Phase uint8

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Config selects the collaborators of a Game. Zero fields use defaults.
type Config struct {
	Rotation RotationPolicy
	Random   Randomizer
	Listener Listener
}

// DefaultConfig returns the right-left-up kick table with a runtime-seeded
// uniform piece source.
func DefaultConfig() Config {
	return Config{
		Rotation: KickRightLeftUp,
		Random:   NewRandom(),
	}
}

// Game owns the board, the active and next pieces, and the score. All state
// changes go through its methods.
type Game struct {
	board    Board
	active   *Piece
	ghost    Piece
	next     PieceType
	score    ScoreTracker
	stats    Stats
	phase    Phase
	elapsed  time.Duration
	factory  *Factory
	rotation RotationPolicy
	listener Listener
}

// New creates a game in PhaseReady. Call Start to play.
func New(cfg Config) *Game {
	if cfg.Rotation == nil {
		cfg.Rotation = KickRightLeftUp
	}
	return &Game{
		score:    NewScoreTracker(),
		stats:    newStats(),
		factory:  NewFactory(cfg.Random),
		rotation: cfg.Rotation,
		listener: cfg.Listener,
	}
}

// SetListener replaces the event listener. A nil listener disables events.
func (g *Game) SetListener(l Listener) {
	g.listener = l
}

// Reset starts a new game from any phase: the board and score are cleared
// and fresh active and next pieces are drawn.
func (g *Game) Reset() {
	g.board.Clear()
	g.score.Reset()
	g.stats.reset()
	g.elapsed = 0
	g.phase = PhaseRunning

	g.next = g.factory.Next()
	g.promote()

	g.emit(Event{Kind: EventReset, Level: g.score.Level()})
}

// Start is an alias for Reset.
func (g *Game) Start() {
	g.Reset()
}

// TogglePause flips between running and paused and returns true when the
// game is now paused. It does nothing before Start or after game over.
func (g *Game) TogglePause() bool {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
		g.emit(Event{Kind: EventPaused})
	case PhasePaused:
		g.phase = PhaseRunning
		g.emit(Event{Kind: EventResumed})
	}
	return g.phase == PhasePaused
}

// MoveLeft shifts the active piece one column left if there is room.
func (g *Game) MoveLeft() bool {
	return g.move(-1, 0)
}

// MoveRight shifts the active piece one column right if there is room.
func (g *Game) MoveRight() bool {
	return g.move(1, 0)
}

// SoftDrop moves the active piece down one row for SoftDropPoints. When the
// piece cannot move it locks instead and SoftDrop returns false.
func (g *Game) SoftDrop() bool {
	if !g.move(0, 1) {
		return false
	}
	g.score.SoftDrop()
	return true
}

// HardDrop drops the active piece to its resting row, awarding
// HardDropPoints per row, and locks it. It returns the rows travelled.
func (g *Game) HardDrop() int {
	if !g.playable() {
		return 0
	}
	cells := 0
	for g.move(0, 1) {
		cells++
		g.score.HardDrop(1)
	}
	return cells
}

// Rotate turns the active piece clockwise using the configured policy.
func (g *Game) Rotate() bool {
	if !g.playable() {
		return false
	}
	rotated, ok := g.rotation.Rotate(&g.board, *g.active)
	if !ok {
		return false
	}
	*g.active = rotated
	g.ghost = GhostOf(&g.board, rotated)
	return true
}

// Tick advances the gravity clock by dt and reports whether a gravity step
// was attempted. At most one step happens per call. Time does not accumulate
// unless the game is running.
func (g *Game) Tick(dt time.Duration) bool {
	if !g.playable() {
		return false
	}
	if dt > 0 {
		g.elapsed += dt
	}
	if g.elapsed < g.score.DropInterval() {
		return false
	}
	g.elapsed = 0
	g.move(0, 1)
	return true
}

func (g *Game) playable() bool {
	return g.phase == PhaseRunning && g.active != nil
}

// move applies (dx, dy) to the active piece when it fits. A blocked downward
// move locks the piece.
func (g *Game) move(dx, dy int) bool {
	if !g.playable() {
		return false
	}

	if !Collides(&g.board, *g.active, dx, dy) {
		*g.active = g.active.Moved(dx, dy)
		g.ghost = GhostOf(&g.board, *g.active)
		return true
	}

	if dy > 0 {
		g.lock()
	}
	return false
}

func (g *Game) lock() {
	piece := *g.active
	toppedOut := false

	for row, col := range piece.Shape.Cells() {
		y := piece.Y + row
		if y < 0 {
			toppedOut = true
			continue
		}
		g.board.Set(y, piece.X+col, piece.Type)
	}

	cleared := ClearLines(&g.board)
	g.stats.recordLock(cleared)
	g.emit(Event{Kind: EventLocked, Piece: piece.Type, Lines: cleared})

	if cleared > 0 {
		levelUp := g.score.LinesCleared(cleared)
		g.emit(Event{Kind: EventLinesCleared, Lines: cleared, Level: g.score.Level(), Score: g.score.Score()})
		if levelUp {
			g.emit(Event{Kind: EventLevelUp, Level: g.score.Level()})
		}
	}

	g.promote()

	if toppedOut || Collides(&g.board, *g.active, 0, 0) {
		g.phase = PhaseGameOver
		g.emit(Event{Kind: EventGameOver, Score: g.score.Score(), Level: g.score.Level()})
	}
}

// promote makes the next piece active at the spawn point and draws a new
// next piece.
func (g *Game) promote() {
	active := SpawnPiece(g.next)
	g.active = &active
	g.next = g.factory.Next()
	g.stats.recordSpawn(active.Type)
	g.ghost = GhostOf(&g.board, active)
}

func (g *Game) emit(e Event) {
	if g.listener != nil {
		g.listener.HandleEvent(e)
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// GameOver reports whether the game has topped out.
func (g *Game) GameOver() bool { return g.phase == PhaseGameOver }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.phase == PhasePaused }

func (g *Game) Score() int                  { return g.score.Score() }
func (g *Game) Lines() int                  { return g.score.Lines() }
func (g *Game) Level() int                  { return g.score.Level() }
func (g *Game) DropInterval() time.Duration { return g.score.DropInterval() }

// Active returns a copy of the active piece; ok is false before Start.
func (g *Game) Active() (piece Piece, ok bool) {
	if g.active == nil {
		return Piece{}, false
	}
	return g.active.Clone(), true
}

// Ghost returns the landing projection of the active piece.
func (g *Game) Ghost() (piece Piece, ok bool) {
	if g.active == nil {
		return Piece{}, false
	}
	return g.ghost.Clone(), true
}

// Next returns the type of the upcoming piece, or Empty before Start.
func (g *Game) Next() PieceType {
	if g.active == nil {
		return Empty
	}
	return g.next
}

// Board returns a copy of the board contents.
func (g *Game) Board() Grid {
	return g.board.Grid()
}

// Stats returns a copy of the game statistics.
func (g *Game) Stats() StatsSnapshot {
	return g.stats.snapshot()
}
