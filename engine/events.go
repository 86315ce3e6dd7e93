package engine

// EventKind classifies an Event.
type EventKind int

const (
	// EventLocked fires when the active piece is written into the board.
	// Piece carries the locked type and Lines the rows it cleared.
	EventLocked EventKind = iota
	// EventLinesCleared fires after a lock that cleared at least one row.
	EventLinesCleared
	// EventLevelUp fires when a clear raises the level. Level is the new level.
	EventLevelUp
	// EventGameOver fires once when the stack tops out. Score is final.
	EventGameOver
	EventPaused
	EventResumed
	// EventReset fires when a new game starts.
	EventReset
)

var eventKindNames = [...]string{
	EventLocked:       "locked",
	EventLinesCleared: "lines-cleared",
	EventLevelUp:      "level-up",
	EventGameOver:     "game-over",
	EventPaused:       "paused",
	EventResumed:      "resumed",
	EventReset:        "reset",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event describes a state change. It is delivered after the change is applied.
type Event struct {
	Kind  EventKind
	Piece PieceType
	Lines int
	Level int
	Score int
}

// Listener receives engine events synchronously on the engine's call stack.
// Implementations must not call back into the engine.
type Listener interface {
	HandleEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) {
	f(e)
}

// Listeners fans an event out to several listeners in order.
type Listeners []Listener

func (ls Listeners) HandleEvent(e Event) {
	for _, l := range ls {
		l.HandleEvent(e)
	}
}
