package playlist

import (
	"math/rand"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/marlot/spin/internal/core"
)

func makeTracks(n int) []core.Track {
	tracks := make([]core.Track, n)
	for i := range tracks {
		tracks[i] = core.Track{
			ID:    "track-" + strconv.Itoa(i),
			Title: "Song " + strconv.Itoa(i),
			Order: i,
		}
	}
	return tracks
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func isBijection(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func TestNew_ClampsVolume(t *testing.T) {
	c := New(Options{Volume: 150})
	if c.Volume() != 100 {
		t.Errorf("Volume = %d, want 100", c.Volume())
	}

	c = New(Options{Volume: -5})
	if c.Volume() != 0 {
		t.Errorf("Volume = %d, want 0", c.Volume())
	}
}

func TestLoad_SequentialIdentity(t *testing.T) {
	c := New(Options{Mode: core.ModeSequential})
	c.Load(makeTracks(5))

	order := c.Order()
	for i, v := range order {
		if v != i {
			t.Errorf("order[%d] = %d, want %d", i, v, i)
		}
	}
	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
}

func TestLoad_RandomBijection(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 64} {
		c := New(Options{Mode: core.ModeRandom, Rand: seeded(1)})
		c.Load(makeTracks(n))

		if order := c.Order(); !isBijection(order, n) {
			t.Errorf("n=%d: order %v is not a bijection", n, order)
		}
	}
}

func TestLoad_PreservesPlaybackSettings(t *testing.T) {
	c := New(Options{Volume: 70})
	c.Play()
	c.SetMuted(true)
	c.SetError("decode failed")

	c.Load(makeTracks(3))

	if !c.IsPlaying() {
		t.Error("Load changed IsPlaying")
	}
	if c.Volume() != 70 {
		t.Errorf("Volume = %d, want 70", c.Volume())
	}
	if !c.Muted() {
		t.Error("Load changed Muted")
	}
	if err := c.Snapshot().Err; err != "" {
		t.Errorf("Err = %q, want cleared", err)
	}
}

func TestNext_Wraparound(t *testing.T) {
	const n = 4
	c := New(Options{})
	c.Load(makeTracks(n))

	for i := 1; i <= 2*n; i++ {
		c.Next()
		if got, want := c.Index(), i%n; got != want {
			t.Errorf("after %d Next calls: Index = %d, want %d", i, got, want)
		}
	}
}

func TestPrev_Wraparound(t *testing.T) {
	const n = 4
	c := New(Options{})
	c.Load(makeTracks(n))

	c.Prev()
	if got := c.Index(); got != n-1 {
		t.Errorf("Index = %d, want %d", got, n-1)
	}
	c.Prev()
	if got := c.Index(); got != n-2 {
		t.Errorf("Index = %d, want %d", got, n-2)
	}
}

func TestNext_ResetsPosition(t *testing.T) {
	c := New(Options{})
	c.Load(makeTracks(3))
	c.SetPosition(42 * time.Second)

	c.Next()
	if got := c.Snapshot().Position; got != 0 {
		t.Errorf("Position = %v, want 0", got)
	}

	c.SetPosition(10 * time.Second)
	c.Prev()
	if got := c.Snapshot().Position; got != 0 {
		t.Errorf("Position = %v, want 0", got)
	}
}

func TestNext_ReshuffleOnWraparound(t *testing.T) {
	const n = 32
	c := New(Options{Mode: core.ModeRandom, Rand: seeded(7)})
	c.Load(makeTracks(n))
	before := c.Order()

	// Walk a full cycle; the order must hold steady until the wrap.
	for i := 0; i < n-1; i++ {
		c.Next()
	}
	during := c.Order()
	for i := range before {
		if before[i] != during[i] {
			t.Fatal("order changed mid-cycle")
		}
	}

	c.Next() // wraps to 0, triggers reshuffle
	after := c.Order()
	if !isBijection(after, n) {
		t.Errorf("reshuffled order %v is not a bijection", after)
	}
	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0 after wrap", c.Index())
	}
	same := true
	for i := range before {
		if before[i] != after[i] {
			same = false
			break
		}
	}
	// 32! orders; a repeat means the shuffle did not fire.
	if same {
		t.Error("order unchanged after wraparound in random mode")
	}
}

func TestNext_NoReshuffleInSequentialMode(t *testing.T) {
	const n = 8
	c := New(Options{Mode: core.ModeSequential})
	c.Load(makeTracks(n))

	for i := 0; i < 3*n; i++ {
		c.Next()
	}
	for i, v := range c.Order() {
		if v != i {
			t.Fatalf("order[%d] = %d, want identity after wraparounds", i, v)
		}
	}
}

func TestPrev_NeverReshuffles(t *testing.T) {
	const n = 16
	c := New(Options{Mode: core.ModeRandom, Rand: seeded(3)})
	c.Load(makeTracks(n))
	before := c.Order()

	for i := 0; i < 2*n; i++ {
		c.Prev()
	}
	after := c.Order()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("Prev changed the traversal order")
		}
	}
}

func TestSetMode_SwitchToRandomReshuffles(t *testing.T) {
	const n = 32
	c := New(Options{Mode: core.ModeRandom, Rand: seeded(11)})
	c.Load(makeTracks(n))
	before := c.Order()

	c.Next()
	c.SetMode(core.ModeRandom)

	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0 after mode switch", c.Index())
	}
	after := c.Order()
	if !isBijection(after, n) {
		t.Errorf("order %v is not a bijection", after)
	}
	same := true
	for i := range before {
		if before[i] != after[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("switching to random mode did not reshuffle")
	}
}

func TestSetMode_SequentialRestoresIdentity(t *testing.T) {
	c := New(Options{Mode: core.ModeRandom, Rand: seeded(5)})
	c.Load(makeTracks(10))
	c.Next()
	c.Next()

	c.SetMode(core.ModeSequential)

	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
	for i, v := range c.Order() {
		if v != i {
			t.Errorf("order[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestShuffle_WorksInSequentialMode(t *testing.T) {
	const n = 32
	c := New(Options{Mode: core.ModeSequential, Rand: seeded(9)})
	c.Load(makeTracks(n))
	c.Next()

	c.Shuffle()

	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0 after Shuffle", c.Index())
	}
	order := c.Order()
	if !isBijection(order, n) {
		t.Errorf("order %v is not a bijection", order)
	}
	if c.Mode() != core.ModeSequential {
		t.Error("Shuffle changed the mode")
	}
	identity := true
	for i, v := range order {
		if v != i {
			identity = false
			break
		}
	}
	if identity {
		t.Error("Shuffle left the identity permutation")
	}
}

func TestToggle_PairsToOriginal(t *testing.T) {
	c := New(Options{})

	c.Toggle()
	if !c.IsPlaying() {
		t.Error("IsPlaying = false after first Toggle, want true")
	}
	c.Toggle()
	if c.IsPlaying() {
		t.Error("IsPlaying = true after second Toggle, want false")
	}
}

func TestPlayPause_Idempotent(t *testing.T) {
	c := New(Options{})

	c.Play()
	c.Play()
	if !c.IsPlaying() {
		t.Error("IsPlaying = false, want true")
	}
	c.Pause()
	c.Pause()
	if c.IsPlaying() {
		t.Error("IsPlaying = true, want false")
	}
}

func TestMute_IndependentOfVolume(t *testing.T) {
	c := New(Options{Volume: 80})

	c.SetMuted(true)
	c.SetVolume(50)
	c.SetMuted(false)

	if c.Muted() {
		t.Error("Muted = true, want false")
	}
	if c.Volume() != 50 {
		t.Errorf("Volume = %d, want 50", c.Volume())
	}
}

func TestSetVolume_Clamps(t *testing.T) {
	c := New(Options{})

	c.SetVolume(130)
	if c.Volume() != 100 {
		t.Errorf("Volume = %d, want 100", c.Volume())
	}
	c.SetVolume(-10)
	if c.Volume() != 0 {
		t.Errorf("Volume = %d, want 0", c.Volume())
	}
}

func TestEmptyPlaylist_NoOps(t *testing.T) {
	c := New(Options{Mode: core.ModeRandom, Rand: seeded(1)})

	c.Next()
	c.Prev()
	c.Shuffle()
	c.Jump(0)

	if got := c.Current(); got != nil {
		t.Errorf("Current = %v, want nil", got)
	}
	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestCurrent_ResolvesThroughTraversalOrder(t *testing.T) {
	c := New(Options{Mode: core.ModeSequential})
	c.Load(makeTracks(3))

	if got := c.Current().ID; got != "track-0" {
		t.Errorf("Current = %s, want track-0", got)
	}
	c.Next()
	if got := c.Current().ID; got != "track-1" {
		t.Errorf("Current = %s, want track-1", got)
	}
	c.Next()
	if got := c.Current().ID; got != "track-2" {
		t.Errorf("Current = %s, want track-2", got)
	}
	c.Next() // wraps
	if got := c.Current().ID; got != "track-0" {
		t.Errorf("Current = %s, want track-0 after wrap", got)
	}
}

func TestCurrent_RandomFollowsPermutation(t *testing.T) {
	c := New(Options{Mode: core.ModeRandom, Rand: seeded(42)})
	tracks := makeTracks(5)
	c.Load(tracks)

	order := c.Order()
	for i := 0; i < len(tracks); i++ {
		want := tracks[order[i]].ID
		if got := c.Current().ID; got != want {
			t.Errorf("step %d: Current = %s, want %s", i, got, want)
		}
		c.Next()
	}
}

func TestJump(t *testing.T) {
	c := New(Options{})
	c.Load(makeTracks(4))

	c.Jump(2)
	if c.Index() != 2 {
		t.Errorf("Index = %d, want 2", c.Index())
	}

	// Out-of-range jumps are ignored.
	c.Jump(-1)
	c.Jump(4)
	if c.Index() != 2 {
		t.Errorf("Index = %d, want 2 after invalid jumps", c.Index())
	}
}

func TestSetError_PersistsUntilCleared(t *testing.T) {
	c := New(Options{})
	c.Load(makeTracks(2))

	c.SetError("decode failed: bad frame")
	c.Next()
	c.Toggle()
	if got := c.Snapshot().Err; got != "decode failed: bad frame" {
		t.Errorf("Err = %q, want preserved across commands", got)
	}

	c.ClearError()
	if got := c.Snapshot().Err; got != "" {
		t.Errorf("Err = %q, want empty after ClearError", got)
	}
}

func TestSetPositionDuration_ClampNegative(t *testing.T) {
	c := New(Options{})

	c.SetPosition(-time.Second)
	c.SetDuration(-time.Second)

	s := c.Snapshot()
	if s.Position != 0 {
		t.Errorf("Position = %v, want 0", s.Position)
	}
	if s.Duration != 0 {
		t.Errorf("Duration = %v, want 0", s.Duration)
	}
}

func TestSnapshot_Consistency(t *testing.T) {
	c := New(Options{Mode: core.ModeSequential, Volume: 30})
	c.Load(makeTracks(3))
	c.Play()
	c.Next()
	c.SetDuration(3 * time.Minute)
	c.SetPosition(90 * time.Second)

	s := c.Snapshot()
	if s.Track == nil || s.Track.ID != "track-1" {
		t.Errorf("Track = %v, want track-1", s.Track)
	}
	if s.Index != 1 || s.Count != 3 {
		t.Errorf("Index/Count = %d/%d, want 1/3", s.Index, s.Count)
	}
	if !s.IsPlaying || s.Volume != 30 {
		t.Errorf("IsPlaying/Volume = %v/%d, want true/30", s.IsPlaying, s.Volume)
	}
	if got := s.ProgressPercent(); got != 50 {
		t.Errorf("ProgressPercent = %v, want 50", got)
	}
}

func TestUpcoming(t *testing.T) {
	c := New(Options{})
	c.Load(makeTracks(3))
	c.Next()

	up := c.Upcoming()
	if len(up) != 3 {
		t.Fatalf("len(Upcoming) = %d, want 3", len(up))
	}
	want := []string{"track-1", "track-2", "track-0"}
	for i, w := range want {
		if up[i].ID != w {
			t.Errorf("Upcoming[%d] = %s, want %s", i, up[i].ID, w)
		}
	}
}

func TestConcurrentDispatch_NoLostUpdates(t *testing.T) {
	const n = 10
	const calls = 100
	c := New(Options{})
	c.Load(makeTracks(n))

	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Next()
		}()
	}
	wg.Wait()

	// Serialized dispatch means exactly `calls` increments happened.
	if got, want := c.Index(), calls%n; got != want {
		t.Errorf("Index = %d, want %d after %d concurrent Next calls", got, want, calls)
	}
}

func TestConcurrentReadsDuringWrites(t *testing.T) {
	c := New(Options{Mode: core.ModeRandom, Rand: seeded(2)})
	c.Load(makeTracks(20))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Next()
			c.Shuffle()
		}()
		go func() {
			defer wg.Done()
			c.Current()
			c.Snapshot()
			c.Upcoming()
			c.Order()
		}()
	}
	wg.Wait()

	if order := c.Order(); !isBijection(order, 20) {
		t.Errorf("order %v is not a bijection after concurrent use", order)
	}
	if idx := c.Index(); idx < 0 || idx >= 20 {
		t.Errorf("Index = %d out of range", idx)
	}
}
