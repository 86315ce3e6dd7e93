package engine

import "time"

const (
	SoftDropPoints   = 1
	HardDropPoints   = 2
	LinesPerLevel    = 10
	BaseDropInterval = 1000 * time.Millisecond
	DropIntervalStep = 100 * time.Millisecond
	MinDropInterval  = 100 * time.Millisecond
)

// LinePoints is the base award for clearing 0..4 rows with a single lock,
// multiplied by the level reached after the clear.
var LinePoints = [...]int{0, 100, 300, 500, 800}

// LevelFor returns the level reached after clearing lines rows in total.
func LevelFor(lines int) int {
	return lines/LinesPerLevel + 1
}

// DropIntervalFor returns the gravity period at level.
func DropIntervalFor(level int) time.Duration {
	return max(MinDropInterval, BaseDropInterval-time.Duration(level-1)*DropIntervalStep)
}

// ScoreTracker owns score, lines, level and drop interval. Score never decreases.
type ScoreTracker struct {
	score        int
	lines        int
	level        int
	dropInterval time.Duration
}

// NewScoreTracker returns a tracker at level 1.
func NewScoreTracker() ScoreTracker {
	var s ScoreTracker
	s.Reset()
	return s
}

// Reset returns the tracker to its initial state.
func (s *ScoreTracker) Reset() {
	s.score = 0
	s.lines = 0
	s.level = 1
	s.dropInterval = BaseDropInterval
}

// LinesCleared applies a clear of n rows and reports whether the level rose.
func (s *ScoreTracker) LinesCleared(n int) bool {
	if n <= 0 {
		return false
	}
	n = min(n, len(LinePoints)-1)

	prev := s.level
	s.lines += n
	s.level = LevelFor(s.lines)
	s.dropInterval = DropIntervalFor(s.level)
	s.score += LinePoints[n] * s.level
	return s.level > prev
}

// SoftDrop awards a successful single-row soft drop.
func (s *ScoreTracker) SoftDrop() {
	s.score += SoftDropPoints
}

// HardDrop awards cells rows travelled by a hard drop.
func (s *ScoreTracker) HardDrop(cells int) {
	if cells > 0 {
		s.score += HardDropPoints * cells
	}
}

func (s *ScoreTracker) Score() int                  { return s.score }
func (s *ScoreTracker) Lines() int                  { return s.lines }
func (s *ScoreTracker) Level() int                  { return s.level }
func (s *ScoreTracker) DropInterval() time.Duration { return s.dropInterval }
