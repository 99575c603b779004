package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/marlot/spin/internal/core"
	spinerrors "github.com/marlot/spin/internal/errors"
)

// audioExtensions lists the playable file extensions.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".ogg":  true,
	".oga":  true,
	".flac": true,
	".wav":  true,
}

// Manifest is the on-disk playlist format.
type Manifest struct {
	Title  string          `toml:"title"`
	Tracks []ManifestTrack `toml:"track"`
}

// ManifestTrack is a single entry in a playlist manifest.
type ManifestTrack struct {
	ID       string `toml:"id"`
	Title    string `toml:"title"`
	Artist   string `toml:"artist"`
	Path     string `toml:"path"`
	Order    int    `toml:"order"`
	Duration int    `toml:"duration"` // seconds, 0 if unknown
}

// Load reads tracks from the given path. A .toml file is treated as a
// playlist manifest; a directory is scanned for audio files.
func Load(path string) ([]core.Track, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", spinerrors.ErrLibraryNotFound, path)
		}
		return nil, err
	}

	if info.IsDir() {
		return ScanDir(path)
	}
	return LoadManifest(path)
}

// LoadManifest reads a TOML playlist manifest. Relative track paths
// are resolved against the manifest's directory. Tracks are returned
// sorted by their author-assigned order; entries without an order keep
// their position in the file.
func LoadManifest(path string) ([]core.Track, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", spinerrors.ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	base := filepath.Dir(path)
	tracks := make([]core.Track, 0, len(m.Tracks))
	for _, mt := range m.Tracks {
		if mt.Path == "" {
			continue
		}
		trackPath := mt.Path
		if !filepath.IsAbs(trackPath) {
			trackPath = filepath.Join(base, trackPath)
		}
		id := mt.ID
		if id == "" {
			id = trackPath
		}
		title := mt.Title
		if title == "" {
			title = titleFromPath(trackPath)
		}
		tracks = append(tracks, core.Track{
			ID:       id,
			Title:    title,
			Artist:   mt.Artist,
			Path:     trackPath,
			Duration: time.Duration(mt.Duration) * time.Second,
			Order:    mt.Order,
		})
	}

	sortTracks(tracks)
	return tracks, nil
}

// ScanDir walks a directory tree and builds a track per audio file,
// titled from the filename and ordered by path.
func ScanDir(root string) ([]core.Track, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if audioExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Strings(paths)
	tracks := make([]core.Track, len(paths))
	for i, p := range paths {
		tracks[i] = core.Track{
			ID:    p,
			Title: titleFromPath(p),
			Path:  p,
			Order: i,
		}
	}
	return tracks, nil
}

// IsAudioFile reports whether the path has a playable extension.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// sortTracks orders tracks by author-assigned order, keeping the
// original sequence for equal values.
func sortTracks(tracks []core.Track) {
	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].Order < tracks[j].Order
	})
}

// titleFromPath derives a display title from a file path.
func titleFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	return name
}
