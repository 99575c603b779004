package core

import "time"

// Track represents a playable audio track. Tracks are immutable once
// loaded into a playlist for the session.
type Track struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Artist   string        `json:"artist"`
	Path     string        `json:"path"`
	Duration time.Duration `json:"duration"` // 0 if unknown, refined at playback time
	Order    int           `json:"order"`    // author-assigned display order
}
