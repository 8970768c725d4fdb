// Package engine implements the game-state core of Snake: the grid, the
// snake body, gem placement, and the tick-by-tick state machine. It contains
// no UI dependencies (especially no Bubble Tea); everything presentation
// related is reached through the narrow UI collaborator interface, which
// keeps the rules pure and testable.
package engine

// Coordinate is a (row, column) position on the grid. It is a value type:
// assignment copies it, so the snake body and the grid never alias storage.
type Coordinate struct {
	Row    int `yaml:"row"`
	Column int `yaml:"column"`
}

// Direction represents a movement heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Offset returns c moved one cell along d.
func (d Direction) Offset(c Coordinate) Coordinate {
	switch d {
	case DirUp:
		return Coordinate{Row: c.Row - 1, Column: c.Column}
	case DirDown:
		return Coordinate{Row: c.Row + 1, Column: c.Column}
	case DirLeft:
		return Coordinate{Row: c.Row, Column: c.Column - 1}
	default:
		return Coordinate{Row: c.Row, Column: c.Column + 1}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
