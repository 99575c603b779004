package engine

import (
	"errors"
	"path/filepath"
	"testing"

	spinerrors "github.com/marlot/spin/internal/errors"
)

func TestDecoderFor_KnownExtensions(t *testing.T) {
	for _, path := range []string{
		"a.mp3", "b.MP3", "c.ogg", "d.oga", "e.flac", "f.wav",
		filepath.Join("some", "dir", "nested.Mp3"),
	} {
		if _, err := decoderFor(path); err != nil {
			t.Errorf("decoderFor(%q) = %v, want nil", path, err)
		}
	}
}

func TestDecoderFor_Unsupported(t *testing.T) {
	for _, path := range []string{"x.aac", "y.m4a", "z.txt", "noext"} {
		_, err := decoderFor(path)
		if !errors.Is(err, spinerrors.ErrUnsupportedFormat) {
			t.Errorf("decoderFor(%q) = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestOpenTrack_MissingFile(t *testing.T) {
	_, _, err := openTrack(filepath.Join(t.TempDir(), "ghost.mp3"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestVolumeExponent(t *testing.T) {
	if got := volumeExponent(100); got != 0 {
		t.Errorf("volumeExponent(100) = %v, want 0 (unity gain)", got)
	}
	if got := volumeExponent(50); got != -2.5 {
		t.Errorf("volumeExponent(50) = %v, want -2.5", got)
	}
	if got := volumeExponent(0); got != -5 {
		t.Errorf("volumeExponent(0) = %v, want -5", got)
	}
}
