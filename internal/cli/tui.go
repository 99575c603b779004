package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/marlot/spin/internal/engine"
	spinerrors "github.com/marlot/spin/internal/errors"
	"github.com/marlot/spin/internal/library"
	"github.com/marlot/spin/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [manifest|directory]",
	Short: "Open the full-screen player",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eng := engine.New(ctrl)
	go func() { _ = eng.Run(ctx) }()

	refresh := time.Duration(cfg.TUI.RefreshInterval) * time.Millisecond
	return tui.Run(ctrl, eng, refresh)
}
