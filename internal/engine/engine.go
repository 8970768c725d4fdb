package engine

import (
	"time"
)

// PlayerSnakeID identifies the single snake the engine currently drives.
// Snakes are kept in an id-keyed map so a future multi-snake mode does not
// need a data-model change.
const PlayerSnakeID = "player"

// UI is the render/UI collaborator consumed by the engine. The platform
// layer implements it; the engine pushes plain data (scores, flags, cell
// states) and pulls the viewport size, the selected speed, and buffered
// direction input. ScheduleTick is a re-armable one-shot timer: the engine
// arms it after every surviving tick and after resuming from pause, and
// simply stops arming it when the game ends.
type UI interface {
	CellRenderer

	DisplayScore(score int)
	DisplayGameOver(score int)
	DisplayPaused(paused bool)
	SetControlsEnabled(enabled bool)

	// ViewportCellDimensions is queried once per StartGame to size the grid.
	ViewportCellDimensions() (width, height int)

	// SelectedSpeed returns the user-selected speed in ticks per second.
	SelectedSpeed() int

	// DirectionInput returns the buffered direction request, if any.
	// Polled at the start of every tick.
	DirectionInput() (Direction, bool)

	// ScheduleTick invokes tick once after delay.
	ScheduleTick(delay time.Duration, tick func())
}

// Engine owns the grid, the snakes, the gem, and the pause/over/saved flags,
// and advances the game one tick at a time. It is single-threaded by design:
// a tick is atomic and synchronous, and the one-shot timer is the only
// suspension point, so no locking is needed. All entry points are total
// functions of the current state; calls that make no sense in the current
// state (pausing a finished game, loading mid-game) are silent no-ops.
type Engine struct {
	ui     UI
	placer *GemPlacer

	grid   *GridMap
	snakes map[string]*Snake
	gem    Coordinate
	speed  int // ticks per second

	paused bool
	over   bool
	saved  *SavedGame
}

// New creates an engine wired to the given collaborator. The engine starts
// in the game-over state; StartGame or LoadGame transitions it to play.
func New(ui UI, placer *GemPlacer) *Engine {
	return &Engine{
		ui:     ui,
		placer: placer,
		snakes: make(map[string]*Snake),
		over:   true,
	}
}

// StartGame resets all transient state, sizes a fresh grid from the
// viewport, centers a single-segment snake, places the first gem, and
// performs the first tick.
func (e *Engine) StartGame() {
	width, height := e.ui.ViewportCellDimensions()
	speed := e.ui.SelectedSpeed()
	if width < 1 || height < 1 || speed < 1 {
		return
	}
	e.speed = speed

	e.grid = NewGridMap(width, height, e.ui)
	start := Coordinate{Row: height / 2, Column: width / 2}
	snake := NewSnake(PlayerSnakeID, start, DirRight)
	e.snakes = map[string]*Snake{PlayerSnakeID: snake}
	e.grid.SetCell(CellHead, start)

	gem, err := e.placer.Place(e.grid, nil)
	if err != nil {
		e.finish(snake)
		return
	}
	e.gem = gem

	e.paused = false
	e.over = false
	e.ui.SetControlsEnabled(true)
	e.ui.DisplayScore(snake.Score())
	e.Tick()
}

// Tick advances the game by one move. No-op while paused or finished.
func (e *Engine) Tick() {
	if e.over || e.paused {
		return
	}

	snake := e.snakes[PlayerSnakeID]
	if dir, ok := e.ui.DirectionInput(); ok {
		snake.ChangeDirection(dir)
	}

	candidate := snake.Move()

	switch e.grid.Cell(candidate) {
	case CellUnknown:
		// Out of bounds. The tail leaves the body bookkeeping but its grid
		// cells stay painted so another snake's view would not be disturbed.
		snake.RemoveTail()
		e.finish(snake)
		return
	case CellGem:
		e.ui.DisplayScore(snake.Score())
		gem, err := e.placer.Place(e.grid, nil)
		if err != nil {
			e.grid.SetCell(CellHead, candidate)
			e.finish(snake)
			return
		}
		e.gem = gem
	default:
		// Not eating: length stays constant, the vacated tail cell empties.
		e.grid.Clear(snake.RemoveTail())
	}

	prev := e.grid.SetCell(CellHead, candidate)
	if prev == CellBody || prev == CellHead {
		e.finish(snake)
		return
	}

	e.ui.ScheduleTick(e.tickDelay(), e.Tick)
}

// PauseGame toggles between paused and playing. No-op once the game is
// over. Resuming re-arms the tick timer; pausing simply stops arming it.
func (e *Engine) PauseGame() {
	if e.over {
		return
	}
	e.paused = !e.paused
	e.ui.DisplayPaused(e.paused)
	if !e.paused {
		e.ui.ScheduleTick(e.tickDelay(), e.Tick)
	}
}

// SaveGame stores a deep snapshot of the current snake, speed, and gem.
// No-op once the game is over.
func (e *Engine) SaveGame() {
	if e.over {
		return
	}
	e.saved = &SavedGame{
		Snake:  e.snakes[PlayerSnakeID].Clone(),
		Speed:  e.speed,
		Gem:    e.gem,
		Width:  e.grid.Width(),
		Height: e.grid.Height(),
	}
}

// LoadGame restores the saved snapshot. Only valid after game over with a
// snapshot present; otherwise a no-op. Loading re-saves immediately so the
// snapshot survives further loads, rebuilds a fresh grid at the snapshot's
// dimensions, replays the gem and every body segment onto it, and enters the
// paused state so the restored board is visible before play resumes.
func (e *Engine) LoadGame() {
	if !e.over || e.saved == nil {
		return
	}

	snap := e.saved
	snake := snap.Snake.Clone()
	e.snakes = map[string]*Snake{snake.ID(): snake}
	e.speed = snap.Speed
	e.gem = snap.Gem
	e.saved = snap.Clone()

	e.grid = NewGridMap(snap.Width, snap.Height, e.ui)
	if _, err := e.placer.Place(e.grid, &e.gem); err != nil {
		return
	}
	for _, c := range snake.Body() {
		if snake.IsHead(c) {
			e.grid.SetCell(CellHead, c)
		} else {
			e.grid.SetCell(CellBody, c)
		}
	}

	e.over = false
	e.paused = true
	e.ui.SetControlsEnabled(true)
	e.ui.DisplayScore(snake.Score())
	e.ui.DisplayPaused(true)
}

// finish transitions to game over and stops scheduling ticks.
func (e *Engine) finish(snake *Snake) {
	e.over = true
	e.ui.SetControlsEnabled(false)
	e.ui.DisplayGameOver(snake.Score())
}

// tickDelay converts the selected speed into the inter-tick interval.
func (e *Engine) tickDelay() time.Duration {
	return time.Second / time.Duration(e.speed)
}

// Over reports whether the game has ended (or never started).
func (e *Engine) Over() bool {
	return e.over
}

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// Score returns the player snake's score, or 0 before the first game.
func (e *Engine) Score() int {
	if s, ok := e.snakes[PlayerSnakeID]; ok {
		return s.Score()
	}
	return 0
}

// Speed returns the active speed in ticks per second.
func (e *Engine) Speed() int {
	return e.speed
}

// GridSize returns the active grid dimensions, or zeros before any game.
func (e *Engine) GridSize() (width, height int) {
	if e.grid == nil {
		return 0, 0
	}
	return e.grid.Width(), e.grid.Height()
}

// Gem returns the live gem coordinate.
func (e *Engine) Gem() Coordinate {
	return e.gem
}

// Snake returns the snake with the given id, or nil.
func (e *Engine) Snake(id string) *Snake {
	return e.snakes[id]
}

// HasSnapshot reports whether a saved game exists in memory.
func (e *Engine) HasSnapshot() bool {
	return e.saved != nil
}
