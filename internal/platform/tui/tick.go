// Package tui provides the Bubble Tea integration for snaketerm. It
// implements the engine's render/UI collaborator, maps terminal keys to game
// input, and drives the one-shot tick timer the engine re-arms after every
// move.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one engine tick. Gen identifies the timer arming that
// produced it: messages from a superseded arming are dropped, so pausing and
// resuming never leaves two tick streams running.
type TickMsg struct {
	Gen uint64
}

// tickAfter returns a one-shot command delivering a TickMsg after delay.
func tickAfter(delay time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}
