package engine

// Snake owns an ordered body and a heading. The body runs from tail (oldest
// segment) to head (newest) and is never empty while the snake is alive.
// Movement is pure arithmetic: the snake never consults the grid, collision
// classification is the engine's job.
type Snake struct {
	id       string
	body     []Coordinate // tail first, head last
	current  Direction
	previous Direction // heading at the moment the last move committed
}

// NewSnake creates a single-segment snake at start, heading dir.
func NewSnake(id string, start Coordinate, dir Direction) *Snake {
	return &Snake{
		id:       id,
		body:     []Coordinate{start},
		current:  dir,
		previous: dir,
	}
}

// RestoreSnake rebuilds a snake from its plain-record parts, used when a
// snapshot is loaded from persistent storage. Returns nil if body is empty.
func RestoreSnake(id string, body []Coordinate, current, previous Direction) *Snake {
	if len(body) == 0 {
		return nil
	}
	segs := make([]Coordinate, len(body))
	copy(segs, body)
	return &Snake{
		id:       id,
		body:     segs,
		current:  current,
		previous: previous,
	}
}

// ID returns the snake's identity.
func (s *Snake) ID() string {
	return s.id
}

// Move appends a new head one cell along the current heading and returns it.
// The caller classifies the returned coordinate against the grid.
func (s *Snake) Move() Coordinate {
	head := s.current.Offset(s.Head())
	s.body = append(s.body, head)
	s.previous = s.current
	return head
}

// ChangeDirection updates the heading unless d is the exact opposite of the
// last committed heading. The silent ignore is the sole guard against the
// snake reversing into its own neck.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.previous.Opposite() {
		return
	}
	s.current = d
}

// RemoveTail removes and returns the oldest body segment.
func (s *Snake) RemoveTail() Coordinate {
	tail := s.body[0]
	s.body = s.body[1:]
	return tail
}

// Head returns the newest body segment.
func (s *Snake) Head() Coordinate {
	return s.body[len(s.body)-1]
}

// IsHead reports whether c is the current head.
func (s *Snake) IsHead(c Coordinate) bool {
	return c == s.Head()
}

// Length returns the number of body segments.
func (s *Snake) Length() int {
	return len(s.body)
}

// Score is body length minus one: the initial single-segment snake scores 0.
func (s *Snake) Score() int {
	return len(s.body) - 1
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.current
}

// PreviousDirection returns the heading at the last committed move.
func (s *Snake) PreviousDirection() Direction {
	return s.previous
}

// Body returns a copy of the body sequence, tail first.
func (s *Snake) Body() []Coordinate {
	segs := make([]Coordinate, len(s.body))
	copy(segs, s.body)
	return segs
}

// Clone returns a deep copy. Mutating either copy afterwards leaves the
// other untouched, which is what save/restore relies on.
func (s *Snake) Clone() *Snake {
	segs := make([]Coordinate, len(s.body))
	copy(segs, s.body)
	return &Snake{
		id:       s.id,
		body:     segs,
		current:  s.current,
		previous: s.previous,
	}
}
