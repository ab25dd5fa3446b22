package field

import (
	"github.com/specialistvlad/cropcircles/internal/instruction"
)

const (
	// Height is the number of rows, addressed by the letters a..y.
	Height = 25
	// Width is the number of columns, addressed by the letters a..s.
	Width = 19
)

// Field is the mutable grid of cells.
type Field struct {
	cells [Height][Width]Cell
}

// New creates a fully planted field.
func New() *Field {
	return &Field{}
}

// Reset plants every cell, whatever the previous state.
func (f *Field) Reset() {
	f.Fill(Planted)
}

// Fill sets every cell to c.
func (f *Field) Fill(c Cell) {
	for r := range f.cells {
		for col := range f.cells[r] {
			f.cells[r][col] = c
		}
	}
}

// InBounds reports whether (row, col) addresses a cell of the field.
func InBounds(row, col int) bool {
	return row >= 0 && row < Height && col >= 0 && col < Width
}

// At returns the cell at (row, col). The boolean is false when the position
// is outside the field.
func (f *Field) At(row, col int) (Cell, bool) {
	if !InBounds(row, col) {
		return Planted, false
	}
	return f.cells[row][col], true
}

// Apply rasterizes the instruction's disc and mutates the cells inside it.
// Disc points that fall outside the field are skipped. It returns the number
// of cells that were touched.
//
// The scan bound is the radius truncated toward zero while the inclusion
// test uses the full fractional radius.
func (f *Field) Apply(in instruction.Instruction) int {
	radius := in.Radius()
	radiusSq := radius * radius
	bound := int(radius)

	touched := 0
	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			if float64(dx*dx+dy*dy) > radiusSq {
				continue
			}
			row, col := in.Row+dy, in.Col+dx
			if !InBounds(row, col) {
				continue
			}

			cell := &f.cells[row][col]
			switch in.Action {
			case instruction.Plant:
				*cell = Planted
			case instruction.Mow:
				*cell = Mowed
			case instruction.PlantMow:
				*cell = cell.toggled()
			}
			touched++
		}
	}
	return touched
}

// ApplyAll applies the instructions in order.
func (f *Field) ApplyAll(instructions []instruction.Instruction) {
	for _, in := range instructions {
		f.Apply(in)
	}
}

// Count returns how many cells are in state c.
func (f *Field) Count(c Cell) int {
	n := 0
	for r := range f.cells {
		for col := range f.cells[r] {
			if f.cells[r][col] == c {
				n++
			}
		}
	}
	return n
}

// Rows returns a copy of the grid, row by row.
func (f *Field) Rows() [][]Cell {
	rows := make([][]Cell, Height)
	for r := range f.cells {
		rows[r] = make([]Cell, Width)
		copy(rows[r], f.cells[r][:])
	}
	return rows
}
