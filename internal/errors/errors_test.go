package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWithSuggestion(t *testing.T) {
	err := WithSuggestion(ErrEmptyPlaylist, "add some tracks")

	if got := GetSuggestion(err); got != "add some tracks" {
		t.Errorf("GetSuggestion = %q, want %q", got, "add some tracks")
	}
	if !errors.Is(err, ErrEmptyPlaylist) {
		t.Error("wrapped error should unwrap to the sentinel")
	}
}

func TestGetSuggestion_Sentinels(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrEmptyPlaylist, "Add tracks"},
		{ErrManifestNotFound, "spin init"},
		{ErrTrackNotFound, "spin tracks"},
		{ErrUnsupportedFormat, "Supported formats"},
		{ErrConfigNotFound, "spin init"},
	}

	for _, tt := range tests {
		got := GetSuggestion(tt.err)
		if !strings.Contains(got, tt.want) {
			t.Errorf("GetSuggestion(%v) = %q, want it to contain %q", tt.err, got, tt.want)
		}
	}
}

func TestGetSuggestion_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("loading library: %w", ErrUnsupportedFormat)
	if got := GetSuggestion(err); !strings.Contains(got, "Supported formats") {
		t.Errorf("GetSuggestion = %q, want format suggestion", got)
	}
}

func TestGetSuggestion_Unknown(t *testing.T) {
	if got := GetSuggestion(errors.New("something odd")); got != "" {
		t.Errorf("GetSuggestion = %q, want empty", got)
	}
	if got := GetSuggestion(nil); got != "" {
		t.Errorf("GetSuggestion(nil) = %q, want empty", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	got := Format(errors.New("boom"))
	if got != "Error: boom" {
		t.Errorf("Format = %q", got)
	}

	got = Format(ErrEmptyPlaylist)
	if !strings.Contains(got, "Suggestion:") {
		t.Errorf("Format = %q, want a suggestion section", got)
	}
}
