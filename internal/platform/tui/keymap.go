package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termgames/snaketerm/internal/engine"
)

// Action is a semantic game action derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionSave
	ActionLoad
	ActionRestart
	ActionScores
	ActionBack
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to actions. Centralizing the
// bindings keeps them testable and identical between local and SSH play.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "up", "w", "k":
		return ActionUp
	case "down", "s", "j":
		return ActionDown
	case "left", "a", "h":
		return ActionLeft
	case "right", "d", "l":
		return ActionRight
	case "p", "esc":
		return ActionPause
	case "ctrl+s":
		return ActionSave
	case "ctrl+r":
		return ActionLoad
	case "r":
		return ActionRestart
	case "tab":
		return ActionScores
	case "b":
		return ActionBack
	}
	return ActionNone
}

// Direction converts a movement action to an engine direction.
// The second return is false for non-movement actions.
func (km *KeyMapper) Direction(a Action) (engine.Direction, bool) {
	switch a {
	case ActionUp:
		return engine.DirUp, true
	case ActionDown:
		return engine.DirDown, true
	case ActionLeft:
		return engine.DirLeft, true
	case ActionRight:
		return engine.DirRight, true
	}
	return engine.DirUp, false
}
