package core

import (
	"math/rand/v2"
	"time"
)

// RNG wraps math/rand/v2 so grids can be seeded deterministically.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// ClockSeed returns a seed derived from the wall clock.
func ClockSeed() int64 { return time.Now().UnixNano() }

// Seed reports the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Bool returns true or false with equal probability.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
