package field

// Cell is the state of a single field position.
type Cell int

const (
	// Planted is the zero value, so a fresh grid is fully planted.
	Planted Cell = iota
	Mowed
)

// String implements fmt.Stringer for Cell.
func (c Cell) String() string {
	if c == Mowed {
		return "Mowed"
	}
	return "Planted"
}

// toggled returns the opposite state.
func (c Cell) toggled() Cell {
	if c == Mowed {
		return Planted
	}
	return Mowed
}
