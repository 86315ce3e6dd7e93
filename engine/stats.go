package engine

import (
	"github.com/kamstrup/intmap"
)

// Stats counts spawned pieces per type and line clears per size.
type Stats struct {
	spawned *intmap.Map[PieceType, int]
	clears  *intmap.Map[int, int]
	locks   int
}

// StatsSnapshot is a plain copy of Stats.
type StatsSnapshot struct {
	Spawned map[PieceType]int
	// Clears[n] counts locks that cleared exactly n rows, for n in 1..4.
	Clears [len(LinePoints)]int
	Locks  int
}

func newStats() Stats {
	return Stats{
		spawned: intmap.New[PieceType, int](len(PieceTypes)),
		clears:  intmap.New[int, int](len(LinePoints)),
	}
}

func (s *Stats) reset() {
	s.spawned.Clear()
	s.clears.Clear()
	s.locks = 0
}

func (s *Stats) recordSpawn(t PieceType) {
	n, _ := s.spawned.Get(t)
	s.spawned.Put(t, n+1)
}

func (s *Stats) recordLock(cleared int) {
	s.locks++
	if cleared <= 0 {
		return
	}
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
}

// Spawned returns how many pieces of type t have spawned since the last reset.
func (s *Stats) Spawned(t PieceType) int {
	n, _ := s.spawned.Get(t)
	return n
}

// Clears returns how many locks cleared exactly rows rows.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}

// Locks returns the number of pieces locked since the last reset.
func (s *Stats) Locks() int {
	return s.locks
}

func (s *Stats) snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		Spawned: make(map[PieceType]int, s.spawned.Len()),
		Locks:   s.locks,
	}
	for _, t := range PieceTypes {
		if n := s.Spawned(t); n > 0 {
			snap.Spawned[t] = n
		}
	}
	for rows := 1; rows < len(snap.Clears); rows++ {
		snap.Clears[rows] = s.Clears(rows)
	}
	return snap
}
