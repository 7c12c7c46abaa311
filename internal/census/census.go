// Package census runs many random boards until each one settles into a
// repeating cycle and summarises how they ended.
package census

import (
	"context"
	"sort"

	pcore "github.com/MichaelDuPlessis/game-of-life/pkg/core"
	"github.com/MichaelDuPlessis/game-of-life/pkg/life"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// Params configures a sweep.
type Params struct {
	Width   int
	Height  int
	MaxGen  int
	Workers int
}

// Result describes how one seeded board evolved.
type Result struct {
	Seed int64
	// Settled is false when MaxGen was reached before any state repeated.
	Settled bool
	// Generation is the first generation whose state had been seen before.
	Generation int
	// Period is the cycle length once settled: 1 for still lifes and empty
	// boards, 2 for blinkers and so on.
	Period     int
	Population int
}

// state is a generation kept for comparison when fingerprints match.
type state struct {
	gen  int
	grid *life.Grid
}

// Run evolves g until a state repeats or maxGen generations have passed.
// Generations are indexed by fingerprint and a repeat is confirmed by
// comparing the cells.
func Run(g *life.Grid, maxGen int) Result {
	buf := make([]byte, g.Size())
	seen := map[uint64][]state{fingerprint(g, buf): {{gen: 0, grid: g.Clone()}}}
	for gen := 1; gen <= maxGen; gen++ {
		g.NextGen()
		h := fingerprint(g, buf)
		for _, prev := range seen[h] {
			if prev.grid.Equal(g) {
				return Result{Settled: true, Generation: gen, Period: gen - prev.gen, Population: g.Population()}
			}
		}
		seen[h] = append(seen[h], state{gen: gen, grid: g.Clone()})
	}
	return Result{Generation: maxGen, Population: g.Population()}
}

// fingerprint hashes the cells of g using buf as scratch space.
var fingerprint = hashCells

func hashCells(g *life.Grid, buf []byte) uint64 {
	for i, c := range g.Cells() {
		buf[i] = byte(c)
	}
	return xxhash.Sum64(buf)
}

// Sweep runs one random board per seed with p.Workers boards in flight and
// returns the results ordered by seed. It stops early when ctx is cancelled.
func Sweep(ctx context.Context, p Params, seeds []int64) ([]Result, error) {
	results := make([]Result, len(seeds))
	eg, egCtx := errgroup.WithContext(ctx)
	if p.Workers > 0 {
		eg.SetLimit(p.Workers)
	}
	for i, seed := range seeds {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g := life.New(p.Width, p.Height, pcore.NewRNG(seed))
			res := Run(g, p.MaxGen)
			res.Seed = seed
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Seed < results[b].Seed })
	return results, nil
}

// Summary aggregates a sweep.
type Summary struct {
	Boards    int
	Settled   int
	Extinct   int
	Periods   map[int]int
	MeanGen   float64
	Longest   Result
	Unsettled []int64
}

// Summarize folds results into a Summary. Longest is the settled board that
// took the most generations to repeat.
func Summarize(results []Result) Summary {
	s := Summary{Boards: len(results), Periods: map[int]int{}}
	total := 0
	for _, r := range results {
		if !r.Settled {
			s.Unsettled = append(s.Unsettled, r.Seed)
			continue
		}
		s.Settled++
		s.Periods[r.Period]++
		total += r.Generation
		if r.Population == 0 {
			s.Extinct++
		}
		if r.Generation > s.Longest.Generation {
			s.Longest = r
		}
	}
	if s.Settled > 0 {
		s.MeanGen = float64(total) / float64(s.Settled)
	}
	return s
}
