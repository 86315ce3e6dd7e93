package engine

import (
	"math/rand/v2"
)

// Randomizer picks a uniform index in [0, n). *rand.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// NewRandom returns a Randomizer backed by the runtime-seeded global source.
func NewRandom() Randomizer {
	return globalRandom{}
}

// NewSeededRandom returns a reproducible Randomizer.
func NewSeededRandom(seed uint64) Randomizer {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence replays a fixed list of piece types, cycling when exhausted.
// It is used to make piece order deterministic.
type Sequence struct {
	types []PieceType
	pos   int
}

// NewSequence returns a Randomizer that yields types in order.
func NewSequence(types ...PieceType) *Sequence {
	return &Sequence{types: types}
}

// IntN returns the catalog index of the next type in the sequence.
func (s *Sequence) IntN(n int) int {
	if len(s.types) == 0 || n <= 0 {
		return 0
	}
	t := s.types[s.pos%len(s.types)]
	s.pos++
	return (int(t) - int(I)) % n
}

// Factory draws piece types uniformly at random, once per spawn.
type Factory struct {
	rng Randomizer
}

// NewFactory creates a Factory; a nil rng uses NewRandom.
func NewFactory(rng Randomizer) *Factory {
	if rng == nil {
		rng = NewRandom()
	}
	return &Factory{rng: rng}
}

// Next returns the type of the next piece.
func (f *Factory) Next() PieceType {
	return PieceTypes[f.rng.IntN(len(PieceTypes))]
}
