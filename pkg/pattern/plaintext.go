package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MichaelDuPlessis/game-of-life/pkg/life"
)

// Plaintext is the ".cells" format: one text line per row, 'O' or '*' for a
// live cell, '.' for a dead one, and '!' starting a comment line. Short rows
// are padded with dead cells up to the longest row.
type Plaintext struct{}

// Name returns the format identifier.
func (Plaintext) Name() string { return "plaintext" }

// Extensions returns the file extensions handled by the format.
func (Plaintext) Extensions() []string { return []string{".cells", ".txt"} }

// Decode parses a plaintext pattern.
func (Plaintext) Decode(r io.Reader) (*life.Grid, error) {
	var rows [][]life.Cell
	width := 0
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(text, "!") {
			continue
		}
		row := make([]life.Cell, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			switch ch {
			case 'O', 'o', '*':
				row = append(row, life.Alive)
			case '.':
				row = append(row, life.Dead)
			default:
				return nil, fmt.Errorf("line %d col %d: unexpected %q", line, col, ch)
			}
		}
		width = max(width, len(row))
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read plaintext: %w", err)
	}

	cells := make([]life.Cell, 0, width*len(rows))
	for _, row := range rows {
		cells = append(cells, row...)
		for i := len(row); i < width; i++ {
			cells = append(cells, life.Dead)
		}
	}
	return life.WithInitial(width, len(rows), cells)
}

// Encode writes g as plaintext rows.
func (Plaintext) Encode(w io.Writer, g *life.Grid) error {
	bw := bufio.NewWriter(w)
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for _, c := range cells[y*g.Width() : (y+1)*g.Width()] {
			ch := byte('.')
			if c == life.Alive {
				ch = 'O'
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func init() {
	Register(Plaintext{})
}
