package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrEmptyPlaylist     = errors.New("playlist is empty")
	ErrTrackNotFound     = errors.New("track not found")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrManifestNotFound  = errors.New("playlist manifest not found")
	ErrLibraryNotFound   = errors.New("library path not found")
	ErrNoAudioDevice     = errors.New("no audio output device")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// SpinError wraps an error with a user-friendly suggestion.
type SpinError struct {
	Err        error
	Suggestion string
}

func (e *SpinError) Error() string {
	return e.Err.Error()
}

func (e *SpinError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &SpinError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a SpinError with suggestion
	var spinErr *SpinError
	if errors.As(err, &spinErr) && spinErr.Suggestion != "" {
		return spinErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Library errors
	if errors.Is(err, ErrEmptyPlaylist) || strings.Contains(errStr, "playlist is empty") {
		return "Add tracks to the playlist manifest or point spin at a directory with audio files"
	}

	if errors.Is(err, ErrManifestNotFound) || errors.Is(err, ErrLibraryNotFound) ||
		strings.Contains(errStr, "no such file") {
		return "Check the library path, or run 'spin init' to set one up"
	}

	if errors.Is(err, ErrTrackNotFound) {
		return "Run 'spin tracks' to see the tracks in the current library"
	}

	// Format errors
	if errors.Is(err, ErrUnsupportedFormat) || strings.Contains(errStr, "unsupported") {
		return "Supported formats are mp3, ogg, flac and wav"
	}

	// Audio device errors
	if errors.Is(err, ErrNoAudioDevice) || strings.Contains(errStr, "speaker") ||
		strings.Contains(errStr, "audio device") {
		return "Check that an audio output device is available"
	}

	// Config errors
	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) ||
		strings.Contains(errStr, "config") {
		return "Run 'spin init' to create a configuration file"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
