// Package render turns a grid into something a person can look at: text rows
// for terminals and RGBA pixels for the GUI.
package render

import (
	"bufio"
	"io"

	"github.com/MichaelDuPlessis/game-of-life/pkg/life"
)

// Glyphs used by the terminal shell.
const (
	FilledGlyph = '█'
	BlankGlyph  = ' '
)

// TextRenderer writes a grid as height lines of width glyphs.
type TextRenderer struct {
	Alive rune
	Dead  rune
}

// DefaultText returns a renderer using full blocks for live cells.
func DefaultText() TextRenderer {
	return TextRenderer{Alive: FilledGlyph, Dead: BlankGlyph}
}

// Render writes every row of g followed by a newline.
func (r TextRenderer) Render(w io.Writer, g *life.Grid) error {
	bw := bufio.NewWriter(w)
	cells := g.Cells()
	width := g.Width()
	for y := 0; y < g.Height(); y++ {
		for _, c := range cells[y*width : (y+1)*width] {
			glyph := r.Dead
			if c == life.Alive {
				glyph = r.Alive
			}
			if _, err := bw.WriteRune(glyph); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
