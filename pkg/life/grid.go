// Package life implements Conway's Game of Life on a toroidal grid.
//
// A Grid owns its cells and is meant to be driven by a single caller: the
// renderer reads Cells between updates and input handlers trigger NextGen or
// Regenerate. Nothing in the package locks.
package life

import (
	"fmt"
	"math"
)

// Random is the source of uniform booleans used to seed a grid.
type Random interface {
	Bool() bool
}

// Grid is a width*height board of cells stored in row-major order.
type Grid struct {
	w, h int
	cur  []Cell
	nxt  []Cell
}

// New returns a grid whose cells are independently alive or dead according to
// rnd. Zero dimensions yield an empty grid; negative ones are treated as zero.
func New(width, height int, rnd Random) *Grid {
	width, height = max(width, 0), max(height, 0)
	g := &Grid{w: width, h: height, cur: make([]Cell, width*height)}
	g.nxt = make([]Cell, len(g.cur))
	g.Regenerate(rnd)
	return g
}

// WithInitial builds a grid from an explicit row-major cell sequence. The
// sequence is copied. It fails with a *DimensionsError when the cell count does
// not equal width*height or the product does not fit in an int.
func WithInitial(width, height int, cells []Cell) (*Grid, error) {
	if width < 0 || height < 0 || !fits(width, height) || len(cells) != width*height {
		return nil, &DimensionsError{Width: width, Height: height, Cells: len(cells)}
	}
	cur := make([]Cell, len(cells))
	copy(cur, cells)
	return &Grid{w: width, h: height, cur: cur, nxt: make([]Cell, len(cur))}, nil
}

// fits reports whether width*height is representable as an int.
func fits(width, height int) bool {
	return height == 0 || width <= math.MaxInt/height
}

// Regenerate reassigns every cell at random, keeping the dimensions.
func (g *Grid) Regenerate(rnd Random) {
	for i := range g.cur {
		g.cur[i] = Dead
		if rnd.Bool() {
			g.cur[i] = Alive
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the number of cells, width*height.
func (g *Grid) Size() int { return g.w * g.h }

// Cells exposes the current generation in row-major order. The slice is owned
// by the grid and is only valid until the next NextGen or Regenerate; callers
// must not write to it.
func (g *Grid) Cells() []Cell { return g.cur }

// Index returns the linear slot for column x, row y. It does not wrap.
func (g *Grid) Index(x, y int) int { return x + y*g.w }

// Get returns the cell at column x, row y. Coordinates outside the grid panic.
func (g *Grid) Get(x, y int) Cell {
	g.check(x, y)
	return g.cur[g.Index(x, y)]
}

// Set assigns the cell at column x, row y. Coordinates outside the grid panic.
func (g *Grid) Set(x, y int, c Cell) {
	g.check(x, y)
	g.cur[g.Index(x, y)] = c
}

func (g *Grid) check(x, y int) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic(fmt.Sprintf("life: IndexOutOfRange: (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c, _ := WithInitial(g.w, g.h, g.cur)
	return c
}

// Equal reports whether both grids have the same dimensions and cells. A nil
// grid is never equal.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return false
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cur {
		if g.cur[i] != o.cur[i] {
			return false
		}
	}
	return true
}
