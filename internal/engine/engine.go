// Package engine renders audio for a playlist controller. It observes
// the controller's snapshot on a short tick, drives the speaker, and
// reports position, duration, load state and errors back through the
// controller's inbound setters. A track finishing naturally triggers
// the controller's Next, so traversal policy stays in one place.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/marlot/spin/internal/playlist"
)

const (
	tickInterval = 100 * time.Millisecond
	bufferLen    = 100 * time.Millisecond
)

// Engine plays the controller's current track through the speaker.
type Engine struct {
	ctrl *playlist.Controller

	mu         sync.Mutex
	sampleRate beep.SampleRate
	inited     bool

	streamer beep.StreamSeekCloser
	format   beep.Format
	beepCtrl *beep.Ctrl
	volume   *effects.Volume

	trackID  string // currently loaded track
	failedID string // last track that failed to load, to avoid a reload loop

	finished chan struct{}
}

// New creates an engine bound to the given controller.
func New(ctrl *playlist.Controller) *Engine {
	return &Engine{
		ctrl:     ctrl,
		finished: make(chan struct{}, 1),
	}
}

// Run drives playback until the context is canceled. It must be the
// only goroutine calling into the speaker.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	defer e.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.finished:
			e.trackFinished()
		case <-ticker.C:
			e.sync()
		}
	}
}

// trackFinished advances traversal after a track plays out. The loaded
// ID is cleared first: with a single track, or when a wraparound
// reshuffle lands on the same track, the next sync must reload the
// exhausted streamer even though the ID is unchanged.
func (e *Engine) trackFinished() {
	e.mu.Lock()
	e.trackID = ""
	e.mu.Unlock()

	e.ctrl.Next()
}

// sync reconciles the speaker with the controller's state.
func (e *Engine) sync() {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.ctrl.Snapshot()

	if s.Track == nil {
		e.unload()
		return
	}

	if s.Track.ID != e.trackID {
		if s.Track.ID == e.failedID {
			return
		}
		if err := e.load(s.Track.ID, s.Track.Path); err != nil {
			e.failedID = s.Track.ID
			e.ctrl.SetError(err.Error())
			return
		}
		e.failedID = ""
	}

	if e.streamer == nil {
		return
	}

	speaker.Lock()
	e.beepCtrl.Paused = !s.IsPlaying
	e.volume.Silent = s.Muted || s.Volume == 0
	e.volume.Volume = volumeExponent(s.Volume)
	pos := e.streamer.Position()
	speaker.Unlock()

	e.ctrl.SetPosition(e.format.SampleRate.D(pos))
}

// load decodes and starts the given track, replacing any current one.
func (e *Engine) load(id, path string) error {
	e.unload()

	e.ctrl.SetLoading(true)
	defer e.ctrl.SetLoading(false)

	streamer, format, err := openTrack(path)
	if err != nil {
		return err
	}

	if !e.inited {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(bufferLen)); err != nil {
			streamer.Close()
			return err
		}
		e.sampleRate = format.SampleRate
		e.inited = true
	}

	var stream beep.Streamer = streamer
	if format.SampleRate != e.sampleRate {
		stream = beep.Resample(4, format.SampleRate, e.sampleRate, streamer)
	}

	s := e.ctrl.Snapshot()
	e.volume = &effects.Volume{
		Streamer: stream,
		Base:     2,
		Volume:   volumeExponent(s.Volume),
		Silent:   s.Muted || s.Volume == 0,
	}
	e.beepCtrl = &beep.Ctrl{
		Streamer: e.volume,
		Paused:   !s.IsPlaying,
	}

	e.streamer = streamer
	e.format = format
	e.trackID = id
	e.ctrl.SetDuration(format.SampleRate.D(streamer.Len()))
	e.ctrl.SetPosition(0)

	speaker.Play(beep.Seq(e.beepCtrl, beep.Callback(func() {
		select {
		case e.finished <- struct{}{}:
		default:
		}
	})))

	return nil
}

// unload stops playback and releases the current track's resources.
func (e *Engine) unload() {
	if e.streamer == nil {
		return
	}
	speaker.Clear()
	e.streamer.Close()
	e.streamer = nil
	e.beepCtrl = nil
	e.volume = nil
	e.trackID = ""
}

// Seek moves playback to the given offset in the current track and
// reports the new position to the controller.
func (e *Engine) Seek(to time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer == nil {
		return nil
	}

	if to < 0 {
		to = 0
	}
	total := e.format.SampleRate.D(e.streamer.Len())
	if to > total {
		to = total
	}

	speaker.Lock()
	err := e.streamer.Seek(e.format.SampleRate.N(to))
	speaker.Unlock()
	if err != nil {
		return err
	}

	e.ctrl.SetPosition(to)
	return nil
}

// SeekBy moves playback relative to the current position.
func (e *Engine) SeekBy(delta time.Duration) error {
	s := e.ctrl.Snapshot()
	return e.Seek(s.Position + delta)
}

// Close releases playback resources.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.unload()
}

// volumeExponent maps a 0-100 volume to a base-2 gain exponent, with
// 100 mapping to unity gain.
func volumeExponent(v int) float64 {
	return (float64(v) - 100) / 20
}
