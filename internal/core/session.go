// Package core holds the state shared by the interactive shells: the grid
// being simulated, the seed it was drawn from and the generation counter.
package core

import (
	pcore "github.com/MichaelDuPlessis/game-of-life/pkg/core"
	"github.com/MichaelDuPlessis/game-of-life/pkg/life"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Session couples a grid with the seed used to regenerate it. Shells call one
// Session method per input event; a Session is not safe for concurrent use.
type Session struct {
	grid    *life.Grid
	seed    int64
	gen     int
	workers int
}

// NewSession returns a session over a random width*height grid drawn from seed.
func NewSession(width, height int, seed int64) *Session {
	return &Session{
		grid: life.New(width, height, pcore.NewRNG(seed)),
		seed: seed,
	}
}

// FromGrid wraps an already constructed grid, typically one produced by a
// pattern loader. seed is only used by later calls to Reset.
func FromGrid(g *life.Grid, seed int64) *Session {
	return &Session{grid: g, seed: seed}
}

// SetWorkers selects row-parallel stepping when n > 1.
func (s *Session) SetWorkers(n int) { s.workers = n }

// Grid exposes the simulated grid for rendering.
func (s *Session) Grid() *life.Grid { return s.grid }

// Size returns the grid dimensions.
func (s *Session) Size() Size { return Size{W: s.grid.Width(), H: s.grid.Height()} }

// Seed reports the seed of the most recent Reset.
func (s *Session) Seed() int64 { return s.seed }

// Generation counts the NextGen calls since the last Reset.
func (s *Session) Generation() int { return s.gen }

// Step advances the grid by one generation.
func (s *Session) Step() {
	if s.workers > 1 {
		s.grid.NextGenParallel(s.workers)
	} else {
		s.grid.NextGen()
	}
	s.gen++
}

// Reset regenerates every cell from seed and restarts the generation count.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.grid.Regenerate(pcore.NewRNG(seed))
	s.gen = 0
}

// Status snapshots the session for display.
func (s *Session) Status(paused bool) Status {
	return Status{
		Generation: s.gen,
		Population: s.grid.Population(),
		Width:      s.grid.Width(),
		Height:     s.grid.Height(),
		Seed:       s.seed,
		Paused:     paused,
	}
}
