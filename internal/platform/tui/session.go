package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SessionModel is the top-level model: the game screen with the scoreboard
// one tab away. Used identically for local and SSH play.
type SessionModel struct {
	game     GameModel
	scores   ScoreboardModel
	inScores bool
	width    int
	height   int
	quitting bool
}

// NewSessionModel wraps a game model in a session.
func NewSessionModel(game GameModel) SessionModel {
	return SessionModel{game: game}
}

// Init starts the game.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the active screen. Tick messages always reach
// the game so an in-flight tick is never lost to a screen switch.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateBoth(msg)
	case TickMsg:
		return m.updateGame(msg)
	}

	if m.inScores {
		return m.updateScores(msg)
	}
	return m.updateGame(msg)
}

func (m SessionModel) updateBoth(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}
	cmds = append(cmds, cmd)

	next, cmd = m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.WantsScores() {
		m.game.wantScores = false
		m.scores = NewScoreboardModel(m.game.store, m.width, m.height)
		m.inScores = true
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.inScores = false
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inScores {
		return m.scores.View()
	}
	return m.game.View()
}

// Run runs a local interactive session and returns the final game model.
func Run(opts GameOptions) (GameModel, error) {
	session := NewSessionModel(NewGameModel(opts))

	p := tea.NewProgram(session, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return session.game, err
	}

	if s, ok := final.(SessionModel); ok {
		return s.game, nil
	}
	return session.game, nil
}
