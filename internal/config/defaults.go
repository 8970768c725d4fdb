package config

import (
	_ "embed"
)

//go:embed defaults/snaketerm.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded fallback configuration, used only if
// the embedded default YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  0, // fit terminal
			Height: 0,
		},
		Speed: SpeedConfig{
			Preset: SpeedNormal,
		},
		Theme:    "classic",
		Database: "~/.snaketerm/snaketerm.db",
	}
}
