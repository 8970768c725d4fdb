package tui

import (
	"github.com/termgames/snaketerm/internal/engine"
)

// Board mirrors the engine's grid cell by cell. The engine notifies every
// mutation through the render collaborator; the mirror is what View paints.
type Board struct {
	width  int
	height int
	cells  [][]engine.CellState
}

// NewBoard creates an all-empty mirror with the given dimensions.
func NewBoard(width, height int) *Board {
	cells := make([][]engine.CellState, height)
	for row := range cells {
		cells[row] = make([]engine.CellState, width)
		for col := range cells[row] {
			cells[row][col] = engine.CellEmpty
		}
	}
	return &Board{width: width, height: height, cells: cells}
}

// Width returns the mirror width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the mirror height in cells.
func (b *Board) Height() int {
	return b.height
}

// Set stores the state at c. Out-of-range coordinates are ignored.
func (b *Board) Set(c engine.Coordinate, s engine.CellState) {
	if c.Row < 0 || c.Row >= b.height || c.Column < 0 || c.Column >= b.width {
		return
	}
	b.cells[c.Row][c.Column] = s
}

// Cell returns the mirrored state at c, or CellUnknown out of range.
func (b *Board) Cell(c engine.Coordinate) engine.CellState {
	if c.Row < 0 || c.Row >= b.height || c.Column < 0 || c.Column >= b.width {
		return engine.CellUnknown
	}
	return b.cells[c.Row][c.Column]
}
