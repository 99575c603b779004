package watch

import (
	"context"
	"time"

	"github.com/marlot/spin/internal/core"
	"github.com/mitchellh/hashstructure/v2"
)

// EventType represents the type of playback event.
type EventType int

const (
	EventTrackChange EventType = iota
	EventTrackComplete
	EventTrackSkip
	EventPause
	EventResume
	EventVolumeChange
	EventMuteChange
	EventModeChange
	EventError
)

// Event represents a playback state change.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Previous  *core.PlaybackState
	Current   *core.PlaybackState
}

// Source is anything that can report a playback snapshot. The playlist
// controller satisfies it.
type Source interface {
	Snapshot() core.PlaybackState
}

// Watcher polls a snapshot source for state changes and emits events.
type Watcher struct {
	source   Source
	interval time.Duration
	events   chan Event
	done     chan struct{}

	prev     core.PlaybackState
	prevHash uint64
}

// NewWatcher creates a new state watcher. The source's current state
// becomes the baseline that the first poll is compared against.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	if interval == 0 {
		interval = 250 * time.Millisecond
	}
	w := &Watcher{
		source:   source,
		interval: interval,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
	w.prev = source.Snapshot()
	w.prevHash = snapshotHash(&w.prev)
	return w
}

// Events returns the channel of playback events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins polling for state changes.
func (w *Watcher) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case <-ticker.C:
			curr := w.source.Snapshot()

			// Cheap change detection before diffing field by field.
			currHash := snapshotHash(&curr)
			if currHash == w.prevHash {
				continue
			}

			// Events carry their own copy of the before state: later
			// polls must not mutate what a consumer is still reading.
			before := w.prev
			events := diffStates(&before, &curr)
			for _, e := range events {
				select {
				case w.events <- e:
				default:
					// Drop event if channel is full
				}
			}

			w.prev = curr
			w.prevHash = currHash
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
}

// hashedState is the subset of the snapshot that counts as a change.
// Position is excluded: it advances on every tick during playback.
type hashedState struct {
	TrackID string
	Playing bool
	Volume  int
	Muted   bool
	Mode    core.Mode
	Err     string
}

func snapshotHash(s *core.PlaybackState) uint64 {
	hs := hashedState{
		Playing: s.IsPlaying,
		Volume:  s.Volume,
		Muted:   s.Muted,
		Mode:    s.Mode,
		Err:     s.Err,
	}
	if s.Track != nil {
		hs.TrackID = s.Track.ID
	}
	h, err := hashstructure.Hash(hs, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}

// diffStates compares two states and returns detected events.
func diffStates(prev, curr *core.PlaybackState) []Event {
	now := time.Now()
	var events []Event

	// Track change detection
	if trackChanged(prev, curr) {
		eventType := EventTrackChange

		// Check if it was a completion vs skip
		if prev.HasTrack() && wasCompleted(prev) {
			eventType = EventTrackComplete
		} else if prev.HasTrack() && prev.IsPlaying {
			eventType = EventTrackSkip
		}

		events = append(events, Event{
			Type:      eventType,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	// Pause/Resume detection
	if prev.IsPlaying && !curr.IsPlaying {
		events = append(events, Event{
			Type:      EventPause,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	} else if !prev.IsPlaying && curr.IsPlaying {
		events = append(events, Event{
			Type:      EventResume,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	// Volume change detection
	if prev.Volume != curr.Volume {
		events = append(events, Event{
			Type:      EventVolumeChange,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	// Mute change detection
	if prev.Muted != curr.Muted {
		events = append(events, Event{
			Type:      EventMuteChange,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	// Mode change detection
	if prev.Mode != curr.Mode {
		events = append(events, Event{
			Type:      EventModeChange,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	// New playback error
	if curr.Err != "" && curr.Err != prev.Err {
		events = append(events, Event{
			Type:      EventError,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	return events
}

// trackChanged returns true if the current track changed.
func trackChanged(prev, curr *core.PlaybackState) bool {
	if prev.Track == nil && curr.Track == nil {
		return false
	}
	if prev.Track == nil || curr.Track == nil {
		return true
	}
	return prev.Track.ID != curr.Track.ID
}

// wasCompleted returns true if the track likely completed naturally.
func wasCompleted(state *core.PlaybackState) bool {
	if state.Duration == 0 {
		return false
	}
	// Consider completed if progress reached 95% of duration
	threshold := float64(state.Duration) * 0.95
	return float64(state.Position) >= threshold
}
