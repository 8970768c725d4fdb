package engine

import (
	"testing"
	"time"
)

// stubUI is a test double for the render/UI collaborator. It mirrors grid
// mutations into a map and records every notification the engine pushes.
type stubUI struct {
	width  int
	height int
	speed  int

	cells map[Coordinate]CellState

	dir       *Direction
	scores    []int
	overScore int
	overCalls int
	paused    []bool
	controls  []bool

	lastDelay time.Duration
	tickFn    func()
	armed     int
}

func newStubUI(width, height, speed int) *stubUI {
	return &stubUI{
		width:  width,
		height: height,
		speed:  speed,
		cells:  make(map[Coordinate]CellState),
	}
}

func (u *stubUI) RenderCell(c Coordinate, s CellState) { u.cells[c] = s }
func (u *stubUI) DisplayScore(score int)               { u.scores = append(u.scores, score) }
func (u *stubUI) DisplayPaused(p bool)                 { u.paused = append(u.paused, p) }
func (u *stubUI) SetControlsEnabled(b bool)            { u.controls = append(u.controls, b) }
func (u *stubUI) ViewportCellDimensions() (int, int)   { return u.width, u.height }
func (u *stubUI) SelectedSpeed() int                   { return u.speed }

func (u *stubUI) DisplayGameOver(score int) {
	u.overCalls++
	u.overScore = score
}

func (u *stubUI) DirectionInput() (Direction, bool) {
	if u.dir == nil {
		return DirUp, false
	}
	d := *u.dir
	u.dir = nil
	return d, true
}

func (u *stubUI) ScheduleTick(delay time.Duration, tick func()) {
	u.lastDelay = delay
	u.tickFn = tick
	u.armed++
}

func (u *stubUI) press(d Direction) { u.dir = &d }

// buildEngine assembles an engine mid-game with an explicit snake body
// (tail first) and an optional gem, bypassing StartGame so tests control
// every coordinate.
func buildEngine(ui *stubUI, body []Coordinate, dir Direction, gem *Coordinate, seed int64) *Engine {
	e := New(ui, NewGemPlacer(seed))
	e.grid = NewGridMap(ui.width, ui.height, ui)
	snake := RestoreSnake(PlayerSnakeID, body, dir, dir)
	e.snakes = map[string]*Snake{PlayerSnakeID: snake}
	for _, c := range body {
		if snake.IsHead(c) {
			e.grid.SetCell(CellHead, c)
		} else {
			e.grid.SetCell(CellBody, c)
		}
	}
	if gem != nil {
		e.gem = *gem
		e.grid.SetCell(CellGem, *gem)
	}
	e.speed = ui.speed
	e.over = false
	return e
}

func TestStartGameCentersSnakeAndTicksOnce(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	e := New(ui, NewGemPlacer(12345))

	e.StartGame()

	if e.Over() {
		t.Fatal("game should be playing after StartGame")
	}
	snake := e.Snake(PlayerSnakeID)
	if snake == nil {
		t.Fatal("player snake missing after StartGame")
	}
	// Centered at (5,5) heading right, and the first tick already ran.
	if snake.Head() != (Coordinate{Row: 5, Column: 6}) {
		t.Errorf("head = %v after first tick, want (5,6)", snake.Head())
	}
	if len(ui.controls) == 0 || !ui.controls[0] {
		t.Error("controls should be enabled on start")
	}
	if ui.armed == 0 {
		t.Error("next tick should be scheduled after a surviving tick")
	}
	if ui.lastDelay != time.Second/8 {
		t.Errorf("tick delay = %v, want %v", ui.lastDelay, time.Second/8)
	}

	// The live gem sits on an in-bounds cell that is not part of the snake.
	gem := e.Gem()
	if got := e.grid.Cell(gem); got != CellGem {
		t.Errorf("Cell(gem) = %v, want gem", got)
	}
	for _, c := range snake.Body() {
		if c == gem {
			t.Errorf("gem at %v overlaps the snake", gem)
		}
	}
}

func TestStartGameRejectsEmptyViewport(t *testing.T) {
	ui := newStubUI(0, 0, 8)
	e := New(ui, NewGemPlacer(1))

	e.StartGame()

	if !e.Over() {
		t.Error("engine should stay in game-over with an empty viewport")
	}
}

func TestStartGameRejectsNonPositiveSpeed(t *testing.T) {
	for _, speed := range []int{0, -3} {
		ui := newStubUI(10, 10, speed)
		e := New(ui, NewGemPlacer(1))

		// Must refuse to start rather than divide by zero in the tick delay.
		e.StartGame()

		if !e.Over() {
			t.Errorf("speed %d: engine should stay in game-over", speed)
		}
		if ui.armed != 0 {
			t.Errorf("speed %d: no tick should be scheduled", speed)
		}
	}
}

func TestTickMovesWithoutGrowth(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	gem := Coordinate{Row: 0, Column: 0}
	e := buildEngine(ui, []Coordinate{{Row: 5, Column: 5}}, DirRight, &gem, 1)

	e.Tick()

	snake := e.Snake(PlayerSnakeID)
	if snake.Head() != (Coordinate{Row: 5, Column: 6}) {
		t.Errorf("head = %v, want (5,6)", snake.Head())
	}
	if snake.Length() != 1 {
		t.Errorf("length = %d, want 1 (append and tail removal cancel)", snake.Length())
	}
	if snake.Score() != 0 {
		t.Errorf("score = %d, want 0", snake.Score())
	}
	if got := e.grid.Cell(Coordinate{Row: 5, Column: 5}); got != CellEmpty {
		t.Errorf("vacated cell = %v, want empty", got)
	}
	if got := e.grid.Cell(Coordinate{Row: 5, Column: 6}); got != CellHead {
		t.Errorf("new head cell = %v, want head", got)
	}
	if ui.armed != 1 {
		t.Errorf("scheduled ticks = %d, want 1", ui.armed)
	}
}

func TestTickEatsGemAndGrows(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	gem := Coordinate{Row: 5, Column: 6}
	e := buildEngine(ui, []Coordinate{{Row: 5, Column: 5}}, DirRight, &gem, 1)

	e.Tick()

	snake := e.Snake(PlayerSnakeID)
	if snake.Score() != 1 {
		t.Errorf("score = %d after eating, want 1", snake.Score())
	}
	if snake.Length() != 2 {
		t.Errorf("length = %d after eating, want 2", snake.Length())
	}
	if len(ui.scores) == 0 || ui.scores[len(ui.scores)-1] != 1 {
		t.Errorf("reported scores = %v, want trailing 1", ui.scores)
	}

	// A replacement gem appeared somewhere empty, off the snake.
	next := e.Gem()
	if next == gem {
		t.Error("gem was not replaced after being eaten")
	}
	if got := e.grid.Cell(next); got != CellGem {
		t.Errorf("Cell(new gem) = %v, want gem", got)
	}
	for _, c := range snake.Body() {
		if c == next {
			t.Errorf("new gem at %v overlaps the snake", next)
		}
	}
}

func TestTickWallCollision(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	body := []Coordinate{{Row: 5, Column: 2}, {Row: 5, Column: 1}, {Row: 5, Column: 0}}
	e := buildEngine(ui, body, DirLeft, nil, 1)

	e.Tick()

	if !e.Over() {
		t.Fatal("game should end when the head leaves the grid")
	}
	if ui.overCalls != 1 {
		t.Errorf("game-over notifications = %d, want 1", ui.overCalls)
	}
	// Tail removal is bookkeeping only: the board is not cleared.
	for _, c := range body {
		if got := e.grid.Cell(c); got == CellEmpty {
			t.Errorf("Cell(%v) cleared on wall death, want untouched", c)
		}
	}
	if e.Snake(PlayerSnakeID).Length() != 3 {
		t.Errorf("body length = %d after bookkeeping, want 3", e.Snake(PlayerSnakeID).Length())
	}
	if ui.armed != 0 {
		t.Error("no further tick should be scheduled after game over")
	}
	if len(ui.controls) == 0 || ui.controls[len(ui.controls)-1] {
		t.Error("controls should be disabled on game over")
	}
}

func TestTickSelfCollision(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	// Hook shape: moving up from (6,5) lands on (5,5), a mid-body segment.
	body := []Coordinate{
		{Row: 5, Column: 4},
		{Row: 5, Column: 5},
		{Row: 5, Column: 6},
		{Row: 6, Column: 6},
		{Row: 6, Column: 5},
	}
	e := buildEngine(ui, body, DirUp, nil, 1)

	e.Tick()

	if !e.Over() {
		t.Fatal("game should end on self collision")
	}
}

func TestTickIntoVacatingTailSurvives(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	// Square loop: the candidate head is the tail cell, which empties this
	// same tick, so the move is legal.
	body := []Coordinate{
		{Row: 5, Column: 5},
		{Row: 5, Column: 6},
		{Row: 6, Column: 6},
		{Row: 6, Column: 5},
	}
	e := buildEngine(ui, body, DirUp, nil, 1)

	e.Tick()

	if e.Over() {
		t.Fatal("moving into the vacating tail cell should not end the game")
	}
	if e.Snake(PlayerSnakeID).Head() != (Coordinate{Row: 5, Column: 5}) {
		t.Errorf("head = %v, want the old tail cell", e.Snake(PlayerSnakeID).Head())
	}
}

func TestPauseToggle(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	gem := Coordinate{Row: 0, Column: 0}
	e := buildEngine(ui, []Coordinate{{Row: 5, Column: 5}}, DirRight, &gem, 1)

	e.PauseGame()
	if !e.Paused() {
		t.Fatal("engine should be paused")
	}
	if len(ui.paused) != 1 || !ui.paused[0] {
		t.Errorf("paused notifications = %v, want [true]", ui.paused)
	}

	// Ticks are no-ops while paused.
	e.Tick()
	if e.Snake(PlayerSnakeID).Head() != (Coordinate{Row: 5, Column: 5}) {
		t.Error("tick should not move the snake while paused")
	}

	// Resuming re-arms the timer.
	armed := ui.armed
	e.PauseGame()
	if e.Paused() {
		t.Fatal("engine should have resumed")
	}
	if ui.armed != armed+1 {
		t.Error("resume should schedule the next tick")
	}
}

func TestPauseNoOpWhenOver(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	e := New(ui, NewGemPlacer(1))

	e.PauseGame()
	if e.Paused() {
		t.Error("pausing a finished game should be a no-op")
	}
	if len(ui.paused) != 0 {
		t.Error("no pause notification expected for a no-op")
	}
}

func runToGameOver(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 100 && !e.Over(); i++ {
		e.Tick()
	}
	if !e.Over() {
		t.Fatal("game did not end within 100 ticks")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	gem := Coordinate{Row: 2, Column: 2}
	body := []Coordinate{{Row: 5, Column: 5}, {Row: 5, Column: 6}}
	e := buildEngine(ui, body, DirRight, &gem, 1)

	e.SaveGame()
	if !e.HasSnapshot() {
		t.Fatal("snapshot missing after SaveGame")
	}

	runToGameOver(t, e) // heads right into the wall

	e.LoadGame()

	if e.Over() {
		t.Fatal("engine should be playing (paused) after LoadGame")
	}
	if !e.Paused() {
		t.Fatal("engine should enter paused state after LoadGame")
	}
	snake := e.Snake(PlayerSnakeID)
	got := snake.Body()
	if len(got) != len(body) {
		t.Fatalf("restored body length = %d, want %d", len(got), len(body))
	}
	for i := range body {
		if got[i] != body[i] {
			t.Errorf("restored segment %d = %v, want %v", i, got[i], body[i])
		}
	}
	if snake.Direction() != DirRight {
		t.Errorf("restored direction = %v, want right", snake.Direction())
	}
	if snake.Score() != 1 {
		t.Errorf("restored score = %d, want 1", snake.Score())
	}
	if e.Gem() != gem {
		t.Errorf("restored gem = %v, want %v", e.Gem(), gem)
	}

	// The replayed board classifies the stored head specially.
	if cell := e.grid.Cell(Coordinate{Row: 5, Column: 6}); cell != CellHead {
		t.Errorf("replayed head cell = %v, want head", cell)
	}
	if cell := e.grid.Cell(Coordinate{Row: 5, Column: 5}); cell != CellBody {
		t.Errorf("replayed body cell = %v, want body", cell)
	}
	if cell := e.grid.Cell(gem); cell != CellGem {
		t.Errorf("replayed gem cell = %v, want gem", cell)
	}

	// Loading does not consume the snapshot: die again, load again.
	e.PauseGame()
	runToGameOver(t, e)
	e.LoadGame()

	again := e.Snake(PlayerSnakeID).Body()
	if len(again) != len(body) {
		t.Fatalf("second restore body length = %d, want %d", len(again), len(body))
	}
	for i := range body {
		if again[i] != body[i] {
			t.Errorf("second restore segment %d = %v, want %v", i, again[i], body[i])
		}
	}
}

func TestSaveIsDeepCopy(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	gem := Coordinate{Row: 0, Column: 0}
	e := buildEngine(ui, []Coordinate{{Row: 5, Column: 5}}, DirRight, &gem, 1)

	e.SaveGame()
	e.Tick() // mutate the live snake after saving

	if e.saved.Snake.Head() != (Coordinate{Row: 5, Column: 5}) {
		t.Errorf("snapshot head = %v after live mutation, want (5,5)", e.saved.Snake.Head())
	}
}

func TestSaveNoOpWhenOver(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	e := New(ui, NewGemPlacer(1))

	e.SaveGame()
	if e.HasSnapshot() {
		t.Error("saving with no active game should be a no-op")
	}
}

func TestLoadNoOpWhileActive(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	gem := Coordinate{Row: 2, Column: 2}
	e := buildEngine(ui, []Coordinate{{Row: 5, Column: 5}}, DirRight, &gem, 1)
	e.SaveGame()
	e.Tick()

	head := e.Snake(PlayerSnakeID).Head()
	e.LoadGame() // game still active: must not restore
	if e.Snake(PlayerSnakeID).Head() != head {
		t.Error("loading while a game is active should be a no-op")
	}
}

func TestLoadNoOpWithoutSnapshot(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	e := New(ui, NewGemPlacer(1))

	e.LoadGame()
	if !e.Over() {
		t.Error("loading without a snapshot should be a no-op")
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	ui := newStubUI(2, 2, 8)
	gem := Coordinate{Row: 1, Column: 1}
	body := []Coordinate{{Row: 0, Column: 0}, {Row: 0, Column: 1}}
	e := buildEngine(ui, body, DirDown, &gem, 1)

	e.Tick() // eats (1,1); replacement gem lands on the only free cell (1,0)
	if e.Over() {
		t.Fatal("game should survive while an empty cell remains")
	}
	if e.Gem() != (Coordinate{Row: 1, Column: 0}) {
		t.Fatalf("gem = %v, want the last free cell (1,0)", e.Gem())
	}

	ui.press(DirLeft)
	e.Tick() // eats (1,0); no empty cell remains for a replacement

	if !e.Over() {
		t.Fatal("game should end when gem placement finds the board full")
	}
	if ui.overScore != 3 {
		t.Errorf("final score = %d, want 3", ui.overScore)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	gem := Coordinate{Row: 2, Column: 2}
	body := []Coordinate{{Row: 5, Column: 5}, {Row: 5, Column: 6}}
	e := buildEngine(ui, body, DirRight, &gem, 1)
	e.SaveGame()

	rec, ok := e.ExportSaved()
	if !ok {
		t.Fatal("ExportSaved returned no record after SaveGame")
	}
	if rec.Speed != 8 || rec.Width != 10 || rec.Height != 10 {
		t.Errorf("record = %+v, wrong speed or dimensions", rec)
	}

	// A fresh engine restores the record and loads it.
	ui2 := newStubUI(10, 10, 8)
	e2 := New(ui2, NewGemPlacer(2))
	e2.RestoreSaved(rec)
	e2.LoadGame()

	snake := e2.Snake(PlayerSnakeID)
	if snake == nil {
		t.Fatal("restored engine has no player snake")
	}
	if snake.Head() != (Coordinate{Row: 5, Column: 6}) {
		t.Errorf("restored head = %v, want (5,6)", snake.Head())
	}
	if e2.Gem() != gem {
		t.Errorf("restored gem = %v, want %v", e2.Gem(), gem)
	}
	if e2.Speed() != 8 {
		t.Errorf("restored speed = %d, want 8", e2.Speed())
	}
}

func TestRestoreSavedRejectsInvalidRecords(t *testing.T) {
	ui := newStubUI(10, 10, 8)
	e := New(ui, NewGemPlacer(1))

	e.RestoreSaved(Record{Speed: 8, Width: 10, Height: 10}) // empty body
	if e.HasSnapshot() {
		t.Error("record with empty body should be rejected")
	}

	e.RestoreSaved(Record{
		SnakeID: PlayerSnakeID,
		Body:    []Coordinate{{Row: 1, Column: 1}},
		Speed:   0, // invalid
		Width:   10,
		Height:  10,
	})
	if e.HasSnapshot() {
		t.Error("record with non-positive speed should be rejected")
	}
}
