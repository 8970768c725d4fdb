package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termgames/snaketerm/internal/engine"
	"github.com/termgames/snaketerm/internal/storage"
)

// GameOptions configures a game model.
type GameOptions struct {
	BoardWidth  int // playing field width in cells
	BoardHeight int
	Speed       int // ticks per second
	Theme       Theme
	Player      string
	Seed        int64
	Store       *storage.Store // optional; nil disables scores and saves
	Resume      bool           // start from the latest stored save
}

// GameModel is the Bubble Tea model for a single game session. The model is
// copied by value on every update; all engine-visible state lives behind the
// bridge pointer so both halves stay in sync.
type GameModel struct {
	eng    *engine.Engine
	bridge *uiBridge
	keys   *KeyMapper
	theme  Theme
	store  *storage.Store
	player string
	resume bool

	termWidth  int
	termHeight int
	high       int
	scoreSaved bool
	status     string
	quitting   bool
	wantScores bool
}

// NewGameModel builds the engine, the bridge, and the model around them.
func NewGameModel(opts GameOptions) GameModel {
	bridge := newBridge(opts.BoardWidth, opts.BoardHeight, opts.Speed)
	eng := engine.New(bridge, engine.NewGemPlacer(opts.Seed))
	bridge.gridSize = eng.GridSize

	m := GameModel{
		eng:    eng,
		bridge: bridge,
		keys:   NewKeyMapper(),
		theme:  opts.Theme,
		store:  opts.Store,
		player: opts.Player,
		resume: opts.Resume,
	}
	if opts.Store != nil {
		if high, err := opts.Store.HighScore(); err == nil {
			m.high = high
		}
	}
	if opts.Resume {
		m.loadStoredSnapshot()
	}
	return m
}

// Init starts the first game. A resumed session loads the stored snapshot
// and comes up paused; everything else starts fresh.
func (m GameModel) Init() tea.Cmd {
	if m.resume && m.eng.HasSnapshot() {
		m.eng.LoadGame()
	} else {
		m.eng.StartGame()
	}
	return m.consumeTick()
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case TickMsg:
		// A stale generation means the timer was re-armed since this
		// message was scheduled; the newer stream owns the game now.
		if msg.Gen != m.bridge.tickGen {
			return m, nil
		}
		m.bridge.fire()
		cmd := m.consumeTick()
		if m.bridge.over && !m.scoreSaved {
			m.persistScore()
			m.scoreSaved = true
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if dir, ok := m.keys.Direction(action); ok {
		m.status = ""
		m.bridge.press(dir)
		return m, nil
	}

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionPause:
		m.eng.PauseGame()
		return m, m.consumeTick()

	case ActionSave:
		m.eng.SaveGame()
		if m.eng.HasSnapshot() {
			m.persistSnapshot()
			m.status = "game saved"
		}

	case ActionRestart:
		if m.eng.Over() {
			m.resetSession()
			m.eng.StartGame()
			return m, m.consumeTick()
		}

	case ActionLoad:
		if m.eng.Over() {
			if !m.eng.HasSnapshot() {
				m.loadStoredSnapshot()
			}
			if m.eng.HasSnapshot() {
				m.resetSession()
				m.eng.LoadGame()
				return m, m.consumeTick()
			}
			m.status = "no saved game"
		}

	case ActionScores:
		// Pause the running game before switching screens so the engine
		// stops arming ticks while the scoreboard is up.
		if !m.eng.Over() && !m.eng.Paused() {
			m.eng.PauseGame()
		}
		m.wantScores = true
	}
	return m, nil
}

// View renders the HUD, the bordered playing field, and the status line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	board := m.bridge.board
	if board == nil {
		return "starting..."
	}

	rows := make([]string, 0, board.Height())
	for row := 0; row < board.Height(); row++ {
		var line strings.Builder
		for col := 0; col < board.Width(); col++ {
			state := board.Cell(engine.Coordinate{Row: row, Column: col})
			r, style := m.theme.styleFor(state)
			line.WriteString(style.Render(string(r)))
		}
		rows = append(rows, line.String())
	}

	hud := m.theme.HUD.Render(fmt.Sprintf(" score %d   best %d ", m.bridge.score, m.bestShown()))
	field := m.theme.Border.Render(strings.Join(rows, "\n"))

	var footer string
	switch {
	case m.bridge.over:
		footer = m.theme.HUD.Render(fmt.Sprintf("game over, final score %d", m.bridge.finalScore)) +
			"\n" + m.theme.Dim.Render("r restart · ctrl+r load · tab scores · q quit")
	case m.bridge.paused:
		footer = m.theme.HUD.Render("paused") +
			"\n" + m.theme.Dim.Render("p resume · ctrl+s save · q quit")
	default:
		footer = m.theme.Dim.Render("arrows/wasd move · p pause · ctrl+s save · q quit")
	}
	if m.status != "" {
		footer += "\n" + m.theme.Dim.Render(m.status)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, hud, field, footer)
	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// IsQuitting returns true if the user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// WantsScores returns true if the user asked for the scoreboard.
func (m GameModel) WantsScores() bool {
	return m.wantScores
}

// FinalScore returns the last finished game's score, or -1 if no game has
// ended yet.
func (m GameModel) FinalScore() int {
	if !m.bridge.over {
		return -1
	}
	return m.bridge.finalScore
}

// bestShown keeps the displayed best score live within the session.
func (m GameModel) bestShown() int {
	if m.bridge.score > m.high {
		return m.bridge.score
	}
	return m.high
}

// consumeTick converts a pending timer arming into a one-shot command.
func (m *GameModel) consumeTick() tea.Cmd {
	if !m.bridge.tickArmed {
		return nil
	}
	m.bridge.tickArmed = false
	return tickAfter(m.bridge.tickDelay, m.bridge.tickGen)
}

// resetSession clears the per-game display state before a restart or load.
// Dropping the mirror forces a clean repaint at the new grid's dimensions.
func (m *GameModel) resetSession() {
	m.bridge.board = nil
	m.bridge.over = false
	m.bridge.paused = false
	m.bridge.finalScore = 0
	m.scoreSaved = false
	m.status = ""
}

// persistScore records a finished game. Best effort: a storage failure must
// not take down the session.
func (m *GameModel) persistScore() {
	if m.store == nil || m.bridge.finalScore <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.player, m.bridge.finalScore); err == nil {
		if m.bridge.finalScore > m.high {
			m.high = m.bridge.finalScore
		}
	}
}

// persistSnapshot writes the in-memory save through to the database. A new
// save supersedes any earlier one, so the previous row is pruned afterwards.
func (m *GameModel) persistSnapshot() {
	if m.store == nil {
		return
	}
	rec, ok := m.eng.ExportSaved()
	if !ok {
		return
	}
	prev, prevErr := m.store.LatestSnapshot()
	if _, err := m.store.SaveSnapshot(rec); err != nil {
		m.status = "save failed"
		return
	}
	if prevErr == nil && prev != nil {
		//nolint:errcheck // Best-effort prune
		m.store.DeleteSnapshot(prev.ID)
	}
}

// loadStoredSnapshot installs the latest database save as the engine's
// loadable snapshot, if one exists.
func (m *GameModel) loadStoredSnapshot() {
	if m.store == nil {
		return
	}
	row, err := m.store.LatestSnapshot()
	if err != nil || row == nil {
		return
	}
	m.eng.RestoreSaved(row.Record)
}
