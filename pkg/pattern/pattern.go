// Package pattern loads and saves grids in pluggable on-disk formats.
//
// No format is canonical. Each Format registers itself from an init function
// and is selected by file extension; every decoded grid is built through
// life.WithInitial, so a file whose cell count disagrees with its dimensions
// fails with life.ErrInvalidDimensions.
package pattern

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MichaelDuPlessis/game-of-life/pkg/life"
)

// ErrUnknownFormat is returned when no registered format handles a path or name.
var ErrUnknownFormat = errors.New("unknown pattern format")

// Format converts between a byte stream and a grid.
type Format interface {
	Name() string
	Extensions() []string
	Decode(r io.Reader) (*life.Grid, error)
	Encode(w io.Writer, g *life.Grid) error
}

var formats = map[string]Format{}

// Register adds a format under its name.
func Register(f Format) {
	if f == nil || f.Name() == "" {
		return
	}
	formats[f.Name()] = f
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, error) {
	f, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// ForPath returns the format whose extensions include the extension of path.
func ForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, name := range Formats() {
		f := formats[name]
		for _, e := range f.Extensions() {
			if e == ext {
				return f, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads the grid stored at path using the format matching its extension.
func Load(path string) (*life.Grid, error) {
	f, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern: %w", err)
	}
	defer file.Close()

	g, err := f.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", f.Name(), path, err)
	}
	return g, nil
}

// Save writes g to path using the format matching its extension.
func Save(path string, g *life.Grid) (err error) {
	f, err := ForPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pattern: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close pattern: %w", cerr)
		}
	}()

	if err := f.Encode(file, g); err != nil {
		return fmt.Errorf("encode %s %s: %w", f.Name(), path, err)
	}
	return nil
}
