package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/marlot/spin/internal/core"
	"github.com/marlot/spin/internal/engine"
	spinerrors "github.com/marlot/spin/internal/errors"
	"github.com/marlot/spin/internal/library"
	"github.com/marlot/spin/internal/playlist"
	"github.com/marlot/spin/internal/watch"
)

var (
	playMode     string
	playShuffle  bool
	playVolume   int
	playMuted    bool
	playFollow   bool
	playNoEmoji  bool
	playTimes    bool
	playTemplate string
	playReload   bool
)

var playCmd = &cobra.Command{
	Use:   "play [manifest|directory]",
	Short: "Play a playlist",
	Long: `Load a playlist and play it until interrupted.

The argument is a TOML playlist manifest or a directory of audio files;
without an argument the configured library path is used.

Examples:
  spin play ~/music/evening.toml
  spin play ~/music --mode random
  spin play --follow --timestamp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&playMode, "mode", "m", "", "traversal mode: sequential or random")
	playCmd.Flags().BoolVarP(&playShuffle, "shuffle", "s", false, "shuffle once before starting")
	playCmd.Flags().IntVar(&playVolume, "volume", -1, "initial volume (0-100)")
	playCmd.Flags().BoolVar(&playMuted, "muted", false, "start muted")
	playCmd.Flags().BoolVarP(&playFollow, "follow", "f", false, "print playback events")
	playCmd.Flags().BoolVar(&playNoEmoji, "no-emoji", false, "disable emoji in event output")
	playCmd.Flags().BoolVarP(&playTimes, "timestamp", "t", false, "show timestamps in event output")
	playCmd.Flags().StringVar(&playTemplate, "format", "", "custom event format template")
	playCmd.Flags().BoolVar(&playReload, "reload", false, "reload the playlist when it changes on disk")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	path, err := libraryPath(args)
	if err != nil {
		return err
	}

	tracks, err := library.Load(path)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		return spinerrors.ErrEmptyPlaylist
	}

	ctrl := newController(tracks)
	if playShuffle {
		ctrl.Shuffle()
	}
	ctrl.Play()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C gracefully
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	eng := engine.New(ctrl)
	go func() { _ = eng.Run(ctx) }()

	if playReload {
		if w, err := library.NewWatcher(path); err == nil {
			go func() { _ = w.Run(ctx) }()
			go func() {
				for range w.Changed() {
					if reloaded, err := library.Load(path); err == nil {
						ctrl.Load(reloaded)
						ctrl.Play()
					}
				}
			}()
		} else if Verbose() {
			fmt.Fprintf(os.Stderr, "watch %s: %v\n", path, err)
		}
	}

	if !JSONOutput() {
		fmt.Printf("Playing %d tracks (%s mode) — Ctrl+C to stop\n", len(tracks), ctrl.Mode())
	}

	if playFollow {
		return followEvents(ctx, ctrl)
	}

	<-ctx.Done()
	return nil
}

// followEvents streams playback events to stdout until canceled.
func followEvents(ctx context.Context, ctrl *playlist.Controller) error {
	formatter := watch.NewFormatter(
		watch.WithEmoji(!playNoEmoji),
		watch.WithTimestamp(playTimes),
		watch.WithTemplate(playTemplate),
	)

	interval := time.Duration(cfg.Watch.Interval) * time.Millisecond
	watcher := watch.NewWatcher(ctrl, interval)
	go func() { _ = watcher.Start(ctx) }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			fmt.Println(formatter.Format(e))
		}
	}
}

// newController builds a controller from config and play flags.
func newController(tracks []core.Track) *playlist.Controller {
	mode := core.ParseMode(cfg.Playback.Mode)
	if playMode != "" {
		mode = core.ParseMode(playMode)
	}
	volume := cfg.Playback.Volume
	if playVolume >= 0 {
		volume = playVolume
	}

	ctrl := playlist.New(playlist.Options{
		Mode:   mode,
		Volume: volume,
		Muted:  cfg.Playback.Muted || playMuted,
	})
	ctrl.Load(tracks)
	return ctrl
}
