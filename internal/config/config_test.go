package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[library]
path = "/music/playlist.toml"

[playback]
mode = "random"
volume = 80
muted = true

[tui]
theme = "dark"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Library.Path != "/music/playlist.toml" {
		t.Errorf("Library.Path = %q", cfg.Library.Path)
	}
	if cfg.Playback.Mode != "random" {
		t.Errorf("Playback.Mode = %q, want random", cfg.Playback.Mode)
	}
	if cfg.Playback.Volume != 80 {
		t.Errorf("Playback.Volume = %d, want 80", cfg.Playback.Volume)
	}
	if !cfg.Playback.Muted {
		t.Error("Playback.Muted = false, want true")
	}
	if cfg.TUI.Theme != "dark" {
		t.Errorf("TUI.Theme = %q, want dark", cfg.TUI.Theme)
	}
	// Unset sections fall back to defaults.
	if cfg.Watch.Interval != 250 {
		t.Errorf("Watch.Interval = %d, want default 250", cfg.Watch.Interval)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want default info", cfg.Log.Level)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Playback.Mode != "sequential" {
		t.Errorf("Playback.Mode = %q, want sequential", cfg.Playback.Mode)
	}
	if cfg.Playback.Volume != 50 {
		t.Errorf("Playback.Volume = %d, want 50", cfg.Playback.Volume)
	}
	if cfg.TUI.RefreshInterval != 200 {
		t.Errorf("TUI.RefreshInterval = %d, want 200", cfg.TUI.RefreshInterval)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SPIN_PLAYBACK_MODE", "random")
	t.Setenv("SPIN_PLAYBACK_VOLUME", "25")
	t.Setenv("SPIN_LOG_LEVEL", "debug")

	cfg := &Config{}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	if cfg.Playback.Mode != "random" {
		t.Errorf("Playback.Mode = %q, want random", cfg.Playback.Mode)
	}
	if cfg.Playback.Volume != 25 {
		t.Errorf("Playback.Volume = %d, want 25", cfg.Playback.Volume)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}

	cfg.Playback.Volume = 150
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range volume")
	}

	cfg = Default()
	cfg.Playback.Mode = "backwards"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown mode")
	}

	cfg = Default()
	cfg.TUI.Theme = "neon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown theme")
	}

	cfg = Default()
	cfg.Log.Level = "shout"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}
