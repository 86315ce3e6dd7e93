package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
)

// Bot presses a random key each frame and restarts the game when it ends.
type Bot struct {
	Game *engine.Game
	rng  *rand.Rand

	Actions   int64
	Games     int
	BestScore int
	Lines     int
	Locks     int
	Clears    [len(engine.LinePoints)]int
}

func NewBot(game *engine.Game, seed uint64) *Bot {
	return &Bot{
		Game: game,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// HandleEvent implements engine.Listener.
func (b *Bot) HandleEvent(e engine.Event) {
	switch e.Kind {
	case engine.EventLocked:
		b.Locks++
	case engine.EventLinesCleared:
		b.Lines += e.Lines
		b.Clears[min(e.Lines, len(b.Clears)-1)]++
	case engine.EventGameOver:
		b.Games++
		b.BestScore = max(b.BestScore, e.Score)
	}
}

// Execute implements clock.System.
func (b *Bot) Execute(*clock.Frame) {
	if b.Game.GameOver() {
		b.Game.Reset()
		return
	}

	b.Actions++
	// weights favour sideways moves so pieces spread over the board
	switch n := b.rng.IntN(20); {
	case n < 5:
		b.Game.MoveLeft()
	case n < 10:
		b.Game.MoveRight()
	case n < 13:
		b.Game.Rotate()
	case n < 16:
		b.Game.SoftDrop()
	case n < 17:
		b.Game.HardDrop()
	default:
		b.Actions--
	}
}
