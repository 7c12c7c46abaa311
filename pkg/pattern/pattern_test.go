package pattern

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/MichaelDuPlessis/game-of-life/pkg/life"
)

func TestPlaintextDecode(t *testing.T) {
	src := "!Name: Glider\n!\n.O\n..O\nOOO\n"
	g, err := Plaintext{}.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("size %dx%d, want 3x3", g.Width(), g.Height())
	}
	want := []life.Cell{
		life.Dead, life.Alive, life.Dead,
		life.Dead, life.Dead, life.Alive,
		life.Alive, life.Alive, life.Alive,
	}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells = %v, want %v", g.Cells(), want)
	}
}

func TestPlaintextRejectsUnknownGlyph(t *testing.T) {
	_, err := Plaintext{}.Decode(strings.NewReader("..\n.X\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2 col 2") {
		t.Fatalf("Decode() error = %v, want a line 2 col 2 error", err)
	}
}

func TestPlaintextErrorColumnCountsRunes(t *testing.T) {
	_, err := Plaintext{}.Decode(strings.NewReader("O.é\n"))
	if err == nil || !strings.Contains(err.Error(), "line 1 col 3") {
		t.Fatalf("Decode() error = %v, want a line 1 col 3 error", err)
	}
}

func TestPlaintextEncode(t *testing.T) {
	g, err := life.WithInitial(3, 2, []life.Cell{
		life.Alive, life.Dead, life.Dead,
		life.Dead, life.Dead, life.Alive,
	})
	if err != nil {
		t.Fatalf("WithInitial: %v", err)
	}
	var buf bytes.Buffer
	if err := (Plaintext{}).Encode(&buf, g); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := buf.String(); got != "O..\n..O\n" {
		t.Fatalf("Encode() = %q", got)
	}
}

func TestPGMDecode(t *testing.T) {
	src := append([]byte("P5\n# a comment\n2 2\n255\n"), 0xFF, 0x00, 0x00, 0xFF)
	g, err := PGM{}.Decode(bytes.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []life.Cell{life.Alive, life.Dead, life.Dead, life.Alive}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells = %v, want %v", g.Cells(), want)
	}
}

func TestPGMShortPayloadIsInvalidDimensions(t *testing.T) {
	src := append([]byte("P5 3 3 255\n"), 0xFF, 0x00, 0xFF)
	_, err := PGM{}.Decode(bytes.NewReader(src))
	if !errors.Is(err, life.ErrInvalidDimensions) {
		t.Fatalf("Decode() error = %v, want ErrInvalidDimensions", err)
	}
}

func TestPGMOversizedHeaderIsInvalidDimensions(t *testing.T) {
	for _, src := range []string{
		"P5 4294967296 4294967296 255\n",
		"P5 65536 65536 255\n",
	} {
		g, err := PGM{}.Decode(strings.NewReader(src))
		if g != nil || !errors.Is(err, life.ErrInvalidDimensions) {
			t.Fatalf("Decode(%q) = %v, %v; want ErrInvalidDimensions", src, g, err)
		}
	}
}

func TestPGMLongPayloadIsInvalidDimensions(t *testing.T) {
	src := append([]byte("P5 1 1 255\n"), 0xFF, 0x00)
	if _, err := (PGM{}).Decode(bytes.NewReader(src)); !errors.Is(err, life.ErrInvalidDimensions) {
		t.Fatalf("Decode() error = %v, want ErrInvalidDimensions", err)
	}
}

func TestPGMRejectsBadHeader(t *testing.T) {
	cases := map[string]string{
		"magic":  "P2 1 1 255\n\xff",
		"width":  "P5 x 1 255\n\xff",
		"maxval": "P5 1 1 15\n\xff",
		"pixel":  "P5 1 1 255\n\x80",
	}
	for name, src := range cases {
		if _, err := (PGM{}).Decode(strings.NewReader(src)); err == nil {
			t.Fatalf("%s: expected decode error", name)
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	g, err := life.WithInitial(4, 3, []life.Cell{
		life.Alive, life.Dead, life.Alive, life.Dead,
		life.Dead, life.Dead, life.Alive, life.Dead,
		life.Dead, life.Dead, life.Dead, life.Alive,
	})
	if err != nil {
		t.Fatalf("WithInitial: %v", err)
	}
	for _, name := range []string{"board.cells", "board.pgm"} {
		path := filepath.Join(dir, name)
		if err := Save(path, g); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if !got.Equal(g) {
			t.Fatalf("%s: loaded %v, want %v", name, got.Cells(), g.Cells())
		}
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.rle")
	if err := os.WriteFile(path, []byte("x = 1, y = 1\no!"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Load() error = %v, want ErrUnknownFormat", err)
	}
}

func TestRegistry(t *testing.T) {
	if got := Formats(); !slices.Equal(got, []string{"pgm", "plaintext"}) {
		t.Fatalf("Formats() = %v", got)
	}
	f, err := Lookup("pgm")
	if err != nil || f.Name() != "pgm" {
		t.Fatalf("Lookup(pgm) = %v, %v", f, err)
	}
	if _, err := Lookup("rle"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Lookup(rle) error = %v", err)
	}
	f, err = ForPath("GLIDER.CELLS")
	if err != nil || f.Name() != "plaintext" {
		t.Fatalf("ForPath(GLIDER.CELLS) = %v, %v", f, err)
	}
}
