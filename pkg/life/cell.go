package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated buffers are empty boards.
	Dead Cell = iota
	Alive
)

// String returns "alive" or "dead".
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Rule applies B3/S23: a live cell survives with two or three neighbours and a
// dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
