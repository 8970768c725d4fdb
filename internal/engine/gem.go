package engine

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned by gem placement when the grid has no empty cell
// left. The engine treats it as fatal and ends the game instead of looping
// forever on random draws.
var ErrBoardFull = errors.New("engine: no empty cell left for gem placement")

// maxGemDraws bounds the random-draw phase before Place falls back to
// scanning the grid for empty cells.
const maxGemDraws = 1024

// GemPlacer chooses the cell for the next gem.
type GemPlacer struct {
	rng *rand.Rand
}

// NewGemPlacer creates a placer with its own seeded RNG so games are
// reproducible under a fixed seed.
func NewGemPlacer(seed int64) *GemPlacer {
	return &GemPlacer{rng: rand.New(rand.NewSource(seed))}
}

// Place writes a gem onto the map and returns its coordinate.
//
// When requested is non-nil it is used directly without re-validation; this
// is the trusted restore path used when loading a saved game. Otherwise
// Place draws uniformly random cells until one classifies as empty. The
// draw phase is bounded: once it is exhausted the grid is scanned and a
// random empty cell is picked, or ErrBoardFull is returned when none exists.
func (p *GemPlacer) Place(m *GridMap, requested *Coordinate) (Coordinate, error) {
	if requested != nil {
		m.SetCell(CellGem, *requested)
		return *requested, nil
	}

	for i := 0; i < maxGemDraws; i++ {
		c := Coordinate{
			Row:    p.rng.Intn(m.Height()),
			Column: p.rng.Intn(m.Width()),
		}
		if m.Cell(c) == CellEmpty {
			m.SetCell(CellGem, c)
			return c, nil
		}
	}

	var empty []Coordinate
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			c := Coordinate{Row: row, Column: col}
			if m.Cell(c) == CellEmpty {
				empty = append(empty, c)
			}
		}
	}
	if len(empty) == 0 {
		return Coordinate{}, ErrBoardFull
	}

	c := empty[p.rng.Intn(len(empty))]
	m.SetCell(CellGem, c)
	return c, nil
}
