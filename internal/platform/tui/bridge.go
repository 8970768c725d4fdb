package tui

import (
	"time"

	"github.com/termgames/snaketerm/internal/engine"
)

// uiBridge implements engine.UI. It is the shared mutable half of the Bubble
// Tea model: models are copied by value on every update, so everything the
// engine pushes lands here, behind a pointer both copies see.
type uiBridge struct {
	board    *Board
	gridSize func() (int, int) // live grid dimensions, for sizing the mirror

	boardW int // viewport answer for the next StartGame
	boardH int
	speed  int // ticks per second reported to the engine

	score      int
	over       bool
	finalScore int
	paused     bool
	controls   bool

	dir *engine.Direction // buffered direction request, consumed per tick

	tickDelay time.Duration
	tickFn    func()
	tickArmed bool
	tickGen   uint64
}

func newBridge(boardW, boardH, speed int) *uiBridge {
	return &uiBridge{
		boardW: boardW,
		boardH: boardH,
		speed:  speed,
	}
}

// RenderCell mirrors a grid mutation. The mirror is reallocated whenever the
// engine is painting a grid whose dimensions the current mirror does not
// match (a fresh or restored game).
func (u *uiBridge) RenderCell(c engine.Coordinate, s engine.CellState) {
	if u.gridSize != nil {
		w, h := u.gridSize()
		if u.board == nil || u.board.Width() != w || u.board.Height() != h {
			u.board = NewBoard(w, h)
		}
	}
	if u.board != nil {
		u.board.Set(c, s)
	}
}

func (u *uiBridge) DisplayScore(score int) {
	u.score = score
}

func (u *uiBridge) DisplayGameOver(score int) {
	u.over = true
	u.finalScore = score
}

func (u *uiBridge) DisplayPaused(paused bool) {
	u.paused = paused
}

func (u *uiBridge) SetControlsEnabled(enabled bool) {
	u.controls = enabled
	if !enabled {
		u.dir = nil
	}
}

func (u *uiBridge) ViewportCellDimensions() (int, int) {
	// A starting game repaints from scratch: drop the old mirror so stale
	// cells from the previous game cannot linger.
	u.board = NewBoard(u.boardW, u.boardH)
	return u.boardW, u.boardH
}

func (u *uiBridge) SelectedSpeed() int {
	return u.speed
}

func (u *uiBridge) DirectionInput() (engine.Direction, bool) {
	if u.dir == nil {
		return engine.DirUp, false
	}
	d := *u.dir
	u.dir = nil
	return d, true
}

// ScheduleTick captures the engine's tick closure. The Bubble Tea side turns
// it into a one-shot tea.Tick command via consumeTick on the model.
func (u *uiBridge) ScheduleTick(delay time.Duration, tick func()) {
	u.tickDelay = delay
	u.tickFn = tick
	u.tickArmed = true
	u.tickGen++
}

// press buffers a direction request for the next tick.
func (u *uiBridge) press(d engine.Direction) {
	if !u.controls {
		return
	}
	u.dir = &d
}

// fire runs the captured tick closure, if any.
func (u *uiBridge) fire() {
	fn := u.tickFn
	u.tickFn = nil
	if fn != nil {
		fn()
	}
}
