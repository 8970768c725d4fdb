package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/termgames/snaketerm/internal/engine"
)

// Theme maps cell states and chrome to lipgloss styles. Presentation is
// entirely the platform's concern: the engine never sees a theme.
type Theme struct {
	Name   string
	Head   lipgloss.Style
	Body   lipgloss.Style
	Gem    lipgloss.Style
	Border lipgloss.Style
	HUD    lipgloss.Style
	Dim    lipgloss.Style
}

// Cell runes shared by all themes; themes vary color, not glyphs.
const (
	runeEmpty = ' '
	runeHead  = 'O'
	runeBody  = 'o'
	runeGem   = '*'
)

func newTheme(name string, head, body, gem, border string) Theme {
	return Theme{
		Name:   name,
		Head:   lipgloss.NewStyle().Foreground(lipgloss.Color(head)).Bold(true),
		Body:   lipgloss.NewStyle().Foreground(lipgloss.Color(body)),
		Gem:    lipgloss.NewStyle().Foreground(lipgloss.Color(gem)).Bold(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)),
		HUD:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

var themes = map[string]Theme{
	"classic": newTheme("classic", "10", "2", "11", "245"),
	"winter":  newTheme("winter", "14", "6", "15", "12"),
	"spring":  newTheme("spring", "10", "2", "13", "10"),
	"summer":  newTheme("summer", "11", "3", "9", "208"),
	"autumn":  newTheme("autumn", "208", "3", "9", "94"),
}

// ThemeByName resolves a theme. "auto" picks a seasonal theme from the
// calendar month; unknown names fall back to classic.
func ThemeByName(name string, now time.Time) Theme {
	if name == "auto" {
		name = seasonFor(now.Month())
	}
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["classic"]
}

func seasonFor(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}

// styleFor returns the rune and style for a mirrored cell state.
func (t Theme) styleFor(s engine.CellState) (rune, lipgloss.Style) {
	switch s {
	case engine.CellHead:
		return runeHead, t.Head
	case engine.CellBody:
		return runeBody, t.Body
	case engine.CellGem:
		return runeGem, t.Gem
	default:
		return runeEmpty, t.Dim
	}
}
