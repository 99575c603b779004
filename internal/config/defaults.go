package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{
			Mode:   "sequential",
			Volume: 50,
		},
		Watch: WatchConfig{
			Interval: 250,
		},
		TUI: TUIConfig{
			Theme:           "auto",
			RefreshInterval: 200,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Playback
	if c.Playback.Mode == "" {
		c.Playback.Mode = d.Playback.Mode
	}
	if c.Playback.Volume == 0 {
		c.Playback.Volume = d.Playback.Volume
	}

	// Watch
	if c.Watch.Interval == 0 {
		c.Watch.Interval = d.Watch.Interval
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}
	if c.TUI.RefreshInterval == 0 {
		c.TUI.RefreshInterval = d.TUI.RefreshInterval
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
