package config

// Config is the root configuration structure.
type Config struct {
	Library  LibraryConfig  `toml:"library"`
	Playback PlaybackConfig `toml:"playback"`
	Watch    WatchConfig    `toml:"watch"`
	TUI      TUIConfig      `toml:"tui"`
	Log      LogConfig      `toml:"log"`
}

// LibraryConfig holds track source settings.
type LibraryConfig struct {
	Path string `toml:"path"` // playlist manifest or directory of audio files
}

// PlaybackConfig holds initial player settings.
type PlaybackConfig struct {
	Mode   string `toml:"mode"` // "sequential" or "random"
	Volume int    `toml:"volume"`
	Muted  bool   `toml:"muted"`
}

// WatchConfig holds settings for event following.
type WatchConfig struct {
	Interval int `toml:"interval"` // poll interval in milliseconds
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme           string `toml:"theme"`
	RefreshInterval int    `toml:"refresh_interval"` // milliseconds
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
