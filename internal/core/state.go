package core

import "time"

// PlaybackState is a consistent snapshot of the player's observable
// state, as read by the UI and the audio engine.
type PlaybackState struct {
	Track     *Track        `json:"track"`
	Index     int           `json:"index"` // position in traversal order
	Count     int           `json:"count"` // total tracks loaded
	IsPlaying bool          `json:"is_playing"`
	Volume    int           `json:"volume"`
	Muted     bool          `json:"muted"`
	Mode      Mode          `json:"mode"`
	Position  time.Duration `json:"position"`
	Duration  time.Duration `json:"duration"`
	Loading   bool          `json:"loading"`
	Err       string        `json:"error,omitempty"`
}

// HasTrack returns true if there is an active track.
func (s *PlaybackState) HasTrack() bool {
	return s != nil && s.Track != nil
}

// ProgressPercent returns playback progress as a percentage (0-100).
func (s *PlaybackState) ProgressPercent() float64 {
	if s == nil || s.Duration == 0 {
		return 0
	}
	return float64(s.Position) / float64(s.Duration) * 100
}
