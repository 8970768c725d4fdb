package engine

// SavedGame is the in-process snapshot taken by SaveGame: a deep copy of the
// snake plus the speed, gem coordinate, and grid dimensions. It is fully
// independent of the live game state, so mutating the live snake after a
// save (or after a load) never leaks into the snapshot.
type SavedGame struct {
	Snake  *Snake
	Speed  int
	Gem    Coordinate
	Width  int
	Height int
}

// Clone returns a deep copy of the snapshot.
func (s *SavedGame) Clone() *SavedGame {
	return &SavedGame{
		Snake:  s.Snake.Clone(),
		Speed:  s.Speed,
		Gem:    s.Gem,
		Width:  s.Width,
		Height: s.Height,
	}
}

// Record is the plain-data form of a snapshot, suitable for persisting
// outside the process. It carries no engine internals: just the body
// sequence, the directions, the gem, the speed, and the grid dimensions.
type Record struct {
	SnakeID   string
	Body      []Coordinate // tail first
	Direction Direction
	Previous  Direction
	Speed     int
	Gem       Coordinate
	Width     int
	Height    int
}

// ExportSaved converts the in-memory snapshot to its plain-record form.
// The second return is false when no snapshot exists.
func (e *Engine) ExportSaved() (Record, bool) {
	if e.saved == nil {
		return Record{}, false
	}
	s := e.saved
	return Record{
		SnakeID:   s.Snake.ID(),
		Body:      s.Snake.Body(),
		Direction: s.Snake.Direction(),
		Previous:  s.Snake.PreviousDirection(),
		Speed:     s.Speed,
		Gem:       s.Gem,
		Width:     s.Width,
		Height:    s.Height,
	}, true
}

// RestoreSaved installs a persisted record as the engine's snapshot, making
// it loadable through LoadGame. Records with an empty body or non-positive
// dimensions are ignored.
func (e *Engine) RestoreSaved(r Record) {
	snake := RestoreSnake(r.SnakeID, r.Body, r.Direction, r.Previous)
	if snake == nil || r.Width < 1 || r.Height < 1 || r.Speed < 1 {
		return
	}
	e.saved = &SavedGame{
		Snake:  snake,
		Speed:  r.Speed,
		Gem:    r.Gem,
		Width:  r.Width,
		Height: r.Height,
	}
}
