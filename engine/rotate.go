package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by ParseRotationPolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("unknown rotation policy")

// Offset is a (dx, dy) grid displacement.
type Offset struct {
	DX, DY int
}

// RotationPolicy decides where a clockwise rotation ends up. A rejected
// rotation returns the original piece and false.
type RotationPolicy interface {
	Rotate(b *Board, piece Piece) (Piece, bool)
}

// KickTable rotates in place and, when that collides, tries each offset in
// order and keeps the first one that fits.
type KickTable struct {
	Name    string
	Offsets []Offset
}

var (
	// KickRightLeftUp tries one cell right, then left, then one row up.
	KickRightLeftUp = KickTable{
		Name:    "right-left-up",
		Offsets: []Offset{{1, 0}, {-1, 0}, {0, -1}},
	}

	// KickHorizontal searches sideways only, up to two cells out.
	KickHorizontal = KickTable{
		Name:    "horizontal",
		Offsets: []Offset{{-1, 0}, {1, 0}, {-2, 0}, {2, 0}},
	}
)

// RotationPolicies lists the built-in kick tables; the first is the default.
var RotationPolicies = []KickTable{KickRightLeftUp, KickHorizontal}

// ParseRotationPolicy resolves a built-in kick table by name. The short
// aliases "rlu" and "h" are accepted as well.
func ParseRotationPolicy(name string) (KickTable, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rlu", KickRightLeftUp.Name:
		return KickRightLeftUp, nil
	case "h", KickHorizontal.Name:
		return KickHorizontal, nil
	}
	return KickTable{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

func (k KickTable) String() string {
	return k.Name
}

// Rotate implements RotationPolicy.
func (k KickTable) Rotate(b *Board, piece Piece) (Piece, bool) {
	return RotateWithKicks(b, piece, k.Offsets)
}

// RotateWithKicks turns piece 90 degrees clockwise at its current position
// and falls back to the first kick offset that does not collide.
func RotateWithKicks(b *Board, piece Piece, kicks []Offset) (Piece, bool) {
	candidate := piece
	candidate.Shape = piece.Shape.Rotate()

	if !Collides(b, candidate, 0, 0) {
		return candidate, true
	}

	for _, kick := range kicks {
		if !Collides(b, candidate, kick.DX, kick.DY) {
			return candidate.Moved(kick.DX, kick.DY), true
		}
	}

	return piece, false
}
