package core

import "fmt"

// Status captures what the HUD and the terminal status line show.
type Status struct {
	Generation int
	Population int
	Width      int
	Height     int
	Seed       int64
	Paused     bool
}

// State returns "paused" or "running".
func (s Status) State() string {
	if s.Paused {
		return "paused"
	}
	return "running"
}

// Lines renders the status as label/value rows for a panel.
func (s Status) Lines() []string {
	return []string{
		fmt.Sprintf("gen   %d", s.Generation),
		fmt.Sprintf("alive %d/%d", s.Population, s.Width*s.Height),
		fmt.Sprintf("size  %dx%d", s.Width, s.Height),
		fmt.Sprintf("seed  %d", s.Seed),
		s.State(),
	}
}

// String renders the status on a single line.
func (s Status) String() string {
	return fmt.Sprintf("gen %d | alive %d/%d | %dx%d | seed %d | %s",
		s.Generation, s.Population, s.Width*s.Height, s.Width, s.Height, s.Seed, s.State())
}
