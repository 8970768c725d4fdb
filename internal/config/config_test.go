package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTickRateResolution(t *testing.T) {
	cases := []struct {
		name string
		cfg  SpeedConfig
		want int
	}{
		{"slow preset", SpeedConfig{Preset: SpeedSlow}, 4},
		{"normal preset", SpeedConfig{Preset: SpeedNormal}, 8},
		{"fast preset", SpeedConfig{Preset: SpeedFast}, 14},
		{"unknown preset falls back to normal", SpeedConfig{Preset: "warp"}, 8},
		{"override wins", SpeedConfig{Preset: SpeedSlow, TicksPerSecond: 11}, 11},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.TickRate(); got != tc.want {
				t.Errorf("TickRate() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	// Point HOME at an empty directory so no user config interferes; Load
	// must fall back to the embedded default.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Speed.Preset != SpeedNormal {
		t.Errorf("default preset = %q, want normal", cfg.Speed.Preset)
	}
	if cfg.Theme == "" {
		t.Error("default theme should not be empty")
	}
	if cfg.Database == "" {
		t.Error("default database path should not be empty")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := []byte("board:\n  width: 20\n  height: 15\nspeed:\n  preset: fast\ntheme: winter\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 20 || cfg.Board.Height != 15 {
		t.Errorf("board = %+v, want 20x15", cfg.Board)
	}
	if cfg.Speed.TickRate() != 14 {
		t.Errorf("tick rate = %d, want 14", cfg.Speed.TickRate())
	}
	if cfg.Theme != "winter" {
		t.Errorf("theme = %q, want winter", cfg.Theme)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestApplySpeedPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed.TicksPerSecond = 30

	ApplySpeedPreset(&cfg, SpeedFast)

	if cfg.Speed.Preset != SpeedFast {
		t.Errorf("preset = %q, want fast", cfg.Speed.Preset)
	}
	if cfg.Speed.TickRate() != 14 {
		t.Errorf("tick rate = %d, want preset value 14", cfg.Speed.TickRate())
	}
}
