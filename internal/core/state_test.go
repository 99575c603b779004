package core

import (
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"sequential", ModeSequential},
		{"random", ModeRandom},
		{"shuffle", ModeRandom},
		{"shuffled", ModeRandom},
		{"", ModeSequential},
		{"nonsense", ModeSequential},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if ModeSequential.String() != "sequential" {
		t.Errorf("ModeSequential.String() = %q", ModeSequential.String())
	}
	if ModeRandom.String() != "random" {
		t.Errorf("ModeRandom.String() = %q", ModeRandom.String())
	}
}

func TestHasTrack(t *testing.T) {
	var nilState *PlaybackState
	if nilState.HasTrack() {
		t.Error("nil state should not have a track")
	}
	if (&PlaybackState{}).HasTrack() {
		t.Error("empty state should not have a track")
	}
	s := &PlaybackState{Track: &Track{ID: "x"}}
	if !s.HasTrack() {
		t.Error("state with track should report HasTrack")
	}
}

func TestProgressPercent(t *testing.T) {
	s := &PlaybackState{Position: 30 * time.Second, Duration: 2 * time.Minute}
	if got := s.ProgressPercent(); got != 25 {
		t.Errorf("ProgressPercent = %v, want 25", got)
	}

	s = &PlaybackState{Position: 10 * time.Second}
	if got := s.ProgressPercent(); got != 0 {
		t.Errorf("ProgressPercent with zero duration = %v, want 0", got)
	}
}
