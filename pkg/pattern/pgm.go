package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MichaelDuPlessis/game-of-life/pkg/life"
)

const (
	pgmMagic  = "P5"
	pgmMaxVal = 255
	// pgmMaxCells bounds the pixel payload read for one image.
	pgmMaxCells = 1 << 28
)

// PGM is the binary greyscale image format (P5, maxval 255) with one byte per
// cell: 255 is alive and 0 is dead.
type PGM struct{}

// Name returns the format identifier.
func (PGM) Name() string { return "pgm" }

// Extensions returns the file extensions handled by the format.
func (PGM) Extensions() []string { return []string{".pgm"} }

// Decode parses a P5 image. Headers describing more than pgmMaxCells pixels,
// or a pixel payload that does not hold exactly width*height bytes, fail with
// life.ErrInvalidDimensions.
func (PGM) Decode(r io.Reader) (*life.Grid, error) {
	br := bufio.NewReader(r)

	var header [4]string
	for i := range header {
		tok, err := pgmToken(br)
		if err != nil {
			return nil, fmt.Errorf("read pgm header: %w", err)
		}
		header[i] = tok
	}
	if header[0] != pgmMagic {
		return nil, fmt.Errorf("not a pgm file: magic %q", header[0])
	}
	width, err := strconv.Atoi(header[1])
	if err != nil || width < 0 {
		return nil, fmt.Errorf("bad pgm width %q", header[1])
	}
	height, err := strconv.Atoi(header[2])
	if err != nil || height < 0 {
		return nil, fmt.Errorf("bad pgm height %q", header[2])
	}
	if maxval, err := strconv.Atoi(header[3]); err != nil || maxval != pgmMaxVal {
		return nil, fmt.Errorf("unsupported pgm maxval %q", header[3])
	}

	if height != 0 && width > pgmMaxCells/height {
		return nil, &life.DimensionsError{Width: width, Height: height}
	}

	// One byte past the expected payload is enough to detect a long file.
	pixels, err := io.ReadAll(io.LimitReader(br, int64(width*height)+1))
	if err != nil {
		return nil, fmt.Errorf("read pgm pixels: %w", err)
	}
	cells := make([]life.Cell, len(pixels))
	for i, p := range pixels {
		switch p {
		case 0xFF:
			cells[i] = life.Alive
		case 0x00:
			cells[i] = life.Dead
		default:
			return nil, fmt.Errorf("pixel %d: value %d is neither 0 nor 255", i, p)
		}
	}
	return life.WithInitial(width, height, cells)
}

// pgmToken returns the next whitespace-delimited header field, skipping '#'
// comments. The single whitespace byte that ends the field is consumed.
func pgmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

// Encode writes g as a P5 image.
func (PGM) Encode(w io.Writer, g *life.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", pgmMagic, g.Width(), g.Height(), pgmMaxVal); err != nil {
		return err
	}
	for _, c := range g.Cells() {
		var p byte
		if c == life.Alive {
			p = 0xFF
		}
		if err := bw.WriteByte(p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func init() {
	Register(PGM{})
}
