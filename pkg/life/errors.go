package life

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a cell sequence does not match the
// requested grid dimensions.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// DimensionsError reports the dimensions and cell count that failed validation.
type DimensionsError struct {
	Width  int
	Height int
	Cells  int
}

func (e *DimensionsError) Error() string {
	if e.Width < 0 || e.Height < 0 || !fits(e.Width, e.Height) {
		return fmt.Sprintf("%v: %dx%d grid cannot be allocated", ErrInvalidDimensions, e.Width, e.Height)
	}
	return fmt.Sprintf("%v: %dx%d grid needs %d cells, got %d",
		ErrInvalidDimensions, e.Width, e.Height, e.Width*e.Height, e.Cells)
}

// Unwrap lets errors.Is match ErrInvalidDimensions.
func (e *DimensionsError) Unwrap() error { return ErrInvalidDimensions }
