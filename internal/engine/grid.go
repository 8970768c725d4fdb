package engine

// CellRenderer receives a notification for every grid mutation so the UI can
// repaint the affected cell. Notifications are a pure side channel; they play
// no part in the state-transition rules.
type CellRenderer interface {
	RenderCell(c Coordinate, s CellState)
}

// GridMap owns the 2D grid of cell states. Dimensions are fixed at
// construction. Out-of-bounds coordinates always classify as CellUnknown and
// are never mutated; write attempts outside the grid are silent no-ops.
type GridMap struct {
	width  int
	height int
	cells  [][]CellState
	head   *Coordinate // cell currently holding CellHead, if any
	render CellRenderer
}

// NewGridMap creates an empty grid. render may be nil, in which case
// mutations are not reported anywhere.
func NewGridMap(width, height int, render CellRenderer) *GridMap {
	cells := make([][]CellState, height)
	for row := range cells {
		cells[row] = make([]CellState, width)
		for col := range cells[row] {
			cells[row][col] = CellEmpty
		}
	}
	return &GridMap{
		width:  width,
		height: height,
		cells:  cells,
		render: render,
	}
}

// Width returns the grid width in cells.
func (m *GridMap) Width() int {
	return m.width
}

// Height returns the grid height in cells.
func (m *GridMap) Height() int {
	return m.height
}

// InBounds reports whether c lies inside the playable area.
func (m *GridMap) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < m.height && c.Column >= 0 && c.Column < m.width
}

// Cell returns the state stored at c, or CellUnknown when c is out of
// bounds. It has no side effects.
func (m *GridMap) Cell(c Coordinate) CellState {
	if !m.InBounds(c) {
		return CellUnknown
	}
	return m.cells[c.Row][c.Column]
}

// SetCell writes state at c and returns the state the cell held before the
// write. Out-of-bounds writes mutate nothing and return CellUnknown.
//
// Writing CellHead also demotes the previously recorded head cell to
// CellBody, provided that cell still holds CellHead. This keeps the grid at
// no more than one head cell per snake move without scanning the whole grid.
func (m *GridMap) SetCell(state CellState, c Coordinate) CellState {
	if !m.InBounds(c) {
		return CellUnknown
	}

	prev := m.cells[c.Row][c.Column]
	m.write(c, state)

	if state == CellHead {
		if m.head != nil && *m.head != c && m.Cell(*m.head) == CellHead {
			m.write(*m.head, CellBody)
		}
		head := c
		m.head = &head
	}

	return prev
}

// Clear resets the cell at c to CellEmpty. No-op when c is out of bounds.
func (m *GridMap) Clear(c Coordinate) {
	if !m.InBounds(c) {
		return
	}
	m.write(c, CellEmpty)
}

// write stores the state and notifies the renderer.
func (m *GridMap) write(c Coordinate, state CellState) {
	m.cells[c.Row][c.Column] = state
	if m.render != nil {
		m.render.RenderCell(c, state)
	}
}
