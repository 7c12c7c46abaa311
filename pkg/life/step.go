package life

import "golang.org/x/sync/errgroup"

// wrap reduces v into [0, n). Unlike %, it maps -1 to n-1.
func wrap(v, n int) int {
	return (v%n + n) % n
}

// NeighborCount returns the number of live cells in the Moore neighbourhood of
// (x, y) in the current generation. Offsets are applied per axis and wrapped
// by that axis' own dimension.
func (g *Grid) NeighborCount(x, y int) int {
	g.check(x, y)
	return g.neighbors(x, y)
}

func (g *Grid) neighbors(x, y int) int {
	w, h := g.w, g.h
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := wrap(y+dy, h)
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := wrap(x+dx, w)
			if g.cur[nx+ny*w] == Alive {
				n++
			}
		}
	}
	return n
}

// stepRows evaluates rows [y0, y1) of the next generation into g.nxt.
func (g *Grid) stepRows(y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < g.w; x++ {
			idx := g.Index(x, y)
			g.nxt[idx] = Dead
			if Rule(g.cur[idx] == Alive, g.neighbors(x, y)) {
				g.nxt[idx] = Alive
			}
		}
	}
}

// NextGen advances the grid by one generation. The next state is computed from
// the current buffer alone and swapped in once every cell is evaluated.
func (g *Grid) NextGen() {
	g.stepRows(0, g.h)
	g.cur, g.nxt = g.nxt, g.cur
}

// NextGenParallel is NextGen with the rows split into contiguous strips, each
// evaluated by its own goroutine. Workers only read the current buffer and
// write disjoint ranges of the next one. It returns once the swap is done.
func (g *Grid) NextGenParallel(workers int) {
	if workers > g.h {
		workers = g.h
	}
	if workers <= 1 {
		g.NextGen()
		return
	}

	var eg errgroup.Group
	rows := g.h / workers
	extra := g.h % workers
	y0 := 0
	for i := 0; i < workers; i++ {
		y1 := y0 + rows
		if i < extra {
			y1++
		}
		start, end := y0, y1
		eg.Go(func() error {
			g.stepRows(start, end)
			return nil
		})
		y0 = y1
	}
	_ = eg.Wait()
	g.cur, g.nxt = g.nxt, g.cur
}
