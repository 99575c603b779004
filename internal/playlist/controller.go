package playlist

import (
	"math/rand"
	"sync"
	"time"

	"github.com/marlot/spin/internal/core"
)

// Controller owns the playlist state for a player session: the track
// list, the traversal order, the current position, and the play/volume
// state. Every command is applied atomically under a single mutex, so
// concurrent dispatch from multiple goroutines is safe; individual
// transitions never block.
//
// All commands are total: they never fail, and traversal commands on an
// empty playlist are no-ops rather than errors.
type Controller struct {
	mu  sync.Mutex
	rng *rand.Rand

	tracks []core.Track
	order  []int // permutation of [0, len(tracks))
	pos    int   // index into order

	playing bool
	volume  int
	muted   bool
	mode    core.Mode

	position time.Duration // engine-reported
	duration time.Duration // engine-reported
	loading  bool
	lastErr  string
}

// Options configures a new Controller.
type Options struct {
	Mode   core.Mode
	Volume int  // initial volume, clamped to [0, 100]
	Muted  bool
	Rand   *rand.Rand // source for shuffling; time-seeded if nil
}

// New creates a Controller with an empty playlist.
func New(opts Options) *Controller {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Controller{
		rng:    rng,
		mode:   opts.Mode,
		volume: clampVolume(opts.Volume),
		muted:  opts.Muted,
	}
}

// Load replaces the playlist with the given tracks, regenerates the
// traversal order for the current mode, and resets the position to the
// start. Play state, volume and mute are untouched. A pending playback
// error is cleared.
func (c *Controller) Load(tracks []core.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tracks = make([]core.Track, len(tracks))
	copy(c.tracks, tracks)
	c.order = c.reorder()
	c.pos = 0
	c.position = 0
	c.duration = 0
	c.lastErr = ""
}

// SetMode switches the traversal mode. The traversal order is
// regenerated for the new mode (switching to random always produces a
// fresh shuffle) and the position resets to the start.
func (c *Controller) SetMode(mode core.Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = mode
	c.order = c.reorder()
	c.pos = 0
}

// Mode returns the current traversal mode.
func (c *Controller) Mode() core.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Next advances to the next track in traversal order, wrapping to the
// start after the last track. Completing a full cycle in random mode
// triggers a fresh shuffle, so consecutive cycles visit the tracks in
// different orders. No-op on an empty playlist.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.tracks)
	if n == 0 {
		return
	}
	c.pos = (c.pos + 1) % n
	if c.pos == 0 && c.mode == core.ModeRandom {
		c.order = permutation(n, c.rng)
	}
	c.position = 0
}

// Prev steps back to the previous track in traversal order, wrapping
// to the end from the first track. Backward wraparound never
// reshuffles. No-op on an empty playlist.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.tracks)
	if n == 0 {
		return
	}
	c.pos = (c.pos - 1 + n) % n
	c.position = 0
}

// Jump moves directly to the given index in traversal order. Indexes
// outside [0, len) are ignored.
func (c *Controller) Jump(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.tracks) {
		return
	}
	c.pos = index
	c.position = 0
}

// Play marks playback as logically active. Idempotent.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = true
}

// Pause marks playback as logically inactive. Idempotent.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = false
}

// Toggle flips the play/pause state.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = !c.playing
}

// IsPlaying reports whether playback is logically active. The audio
// engine may transiently disagree while a track is loading.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// SetVolume stores the volume, clamped to [0, 100]. Mute state is not
// affected.
func (c *Controller) SetVolume(v int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.volume = clampVolume(v)
}

// Volume returns the current volume.
func (c *Controller) Volume() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// SetMuted stores the mute state independently of volume, so unmuting
// restores the previously set volume.
func (c *Controller) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
}

// Muted returns the current mute state.
func (c *Controller) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Shuffle generates a fresh traversal permutation regardless of mode
// and resets the position to the start. This is the explicit user
// action, distinct from the automatic reshuffle on wraparound.
func (c *Controller) Shuffle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order = permutation(len(c.tracks), c.rng)
	c.pos = 0
}

// SetPosition stores the engine-reported playback position. Negative
// values are clamped to zero.
func (c *Controller) SetPosition(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	c.position = d
}

// SetDuration stores the engine-reported track duration. Negative
// values are clamped to zero.
func (c *Controller) SetDuration(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	c.duration = d
}

// SetLoading stores the engine's load status.
func (c *Controller) SetLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

// SetError records a playback error reported by the audio engine. The
// error stays visible until ClearError or the next Load; the
// controller never retries on its own.
func (c *Controller) SetError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = msg
}

// ClearError discards the recorded playback error.
func (c *Controller) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = ""
}

// Current returns a copy of the track at the current traversal
// position, or nil if the playlist is empty.
func (c *Controller) Current() *core.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked()
}

// Len returns the number of loaded tracks.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tracks)
}

// Index returns the current position in traversal order.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

// Tracks returns a copy of the loaded tracks in authoring order.
func (c *Controller) Tracks() []core.Track {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]core.Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// Order returns a copy of the current traversal permutation.
func (c *Controller) Order() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]int, len(c.order))
	copy(out, c.order)
	return out
}

// Upcoming returns copies of the tracks in traversal order, starting
// at the current position.
func (c *Controller) Upcoming() []core.Track {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]core.Track, 0, len(c.order))
	for i := range c.order {
		out = append(out, c.tracks[c.order[(c.pos+i)%len(c.order)]])
	}
	return out
}

// Snapshot returns a consistent copy of the observable state.
func (c *Controller) Snapshot() core.PlaybackState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return core.PlaybackState{
		Track:     c.currentLocked(),
		Index:     c.pos,
		Count:     len(c.tracks),
		IsPlaying: c.playing,
		Volume:    c.volume,
		Muted:     c.muted,
		Mode:      c.mode,
		Position:  c.position,
		Duration:  c.duration,
		Loading:   c.loading,
		Err:       c.lastErr,
	}
}

func (c *Controller) currentLocked() *core.Track {
	if len(c.tracks) == 0 {
		return nil
	}
	t := c.tracks[c.order[c.pos]]
	return &t
}

// reorder builds the traversal order for the current mode. Callers
// must hold the mutex.
func (c *Controller) reorder() []int {
	if c.mode == core.ModeRandom {
		return permutation(len(c.tracks), c.rng)
	}
	return identity(len(c.tracks))
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
