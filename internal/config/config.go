// Package config provides YAML-based configuration loading and speed
// presets for snaketerm.
package config

// Config contains all user-tunable settings.
type Config struct {
	Board    BoardConfig `yaml:"board"`
	Speed    SpeedConfig `yaml:"speed"`
	Theme    string      `yaml:"theme"`    // classic, winter, spring, summer, autumn, or auto
	Database string      `yaml:"database"` // path to the scores/saves database
}

// BoardConfig defines the playing field dimensions in cells.
// A zero value means "fit the terminal viewport".
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines how fast the game ticks.
// TicksPerSecond, when positive, overrides the preset.
type SpeedConfig struct {
	Preset         SpeedPreset `yaml:"preset"`
	TicksPerSecond int         `yaml:"ticks_per_second"`
}

// SpeedPreset is a named game speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// TicksForPreset returns the ticks-per-second rate for a speed preset.
func TicksForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 4
	case SpeedFast:
		return 14
	default:
		return 8
	}
}

// TickRate resolves the effective ticks-per-second: an explicit override
// wins, otherwise the preset decides.
func (s SpeedConfig) TickRate() int {
	if s.TicksPerSecond > 0 {
		return s.TicksPerSecond
	}
	return TicksForPreset(s.Preset)
}

// ApplySpeedPreset sets a preset and drops any numeric override.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) {
	cfg.Speed.Preset = preset
	cfg.Speed.TicksPerSecond = 0
}
