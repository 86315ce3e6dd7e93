package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactory(t *testing.T) {
	t.Run("sequence cycles", func(t *testing.T) {
		f := NewFactory(NewSequence(T, I, Z))

		var got []PieceType
		for range 5 {
			got = append(got, f.Next())
		}
		assert.Equal(t, []PieceType{T, I, Z, T, I}, got)
	})

	t.Run("empty sequence yields I", func(t *testing.T) {
		f := NewFactory(NewSequence())
		assert.Equal(t, I, f.Next())
	})

	t.Run("seeded sources repeat", func(t *testing.T) {
		a := NewFactory(NewSeededRandom(99))
		b := NewFactory(NewSeededRandom(99))
		for range 50 {
			assert.Equal(t, a.Next(), b.Next())
		}
	})

	t.Run("default source covers every type", func(t *testing.T) {
		f := NewFactory(nil)
		seen := map[PieceType]bool{}
		for range 2000 {
			p := f.Next()
			assert.True(t, p.Valid())
			seen[p] = true
		}
		assert.Len(t, seen, len(PieceTypes))
	})
}
