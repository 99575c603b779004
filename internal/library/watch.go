package library

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports when the library source changes on disk, so the
// caller can reload the playlist.
type Watcher struct {
	fw      *fsnotify.Watcher
	path    string
	changed chan string
}

// NewWatcher watches a manifest file or library directory. For a file,
// the containing directory is watched so editor rename-and-replace
// saves are seen.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		fw:      fw,
		path:    path,
		changed: make(chan string, 1),
	}, nil
}

// Changed returns a channel that receives the library path whenever
// its contents change.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Run processes filesystem events until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			// Coalesce bursts: drop the notification if one is pending.
			select {
			case w.changed <- w.path:
			default:
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
		}
	}
}

// relevant filters events down to writes touching the watched path or
// audio files under it.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	if ev.Name == w.path {
		return true
	}
	return IsAudioFile(ev.Name)
}
