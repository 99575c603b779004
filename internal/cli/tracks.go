package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/marlot/spin/internal/library"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks [manifest|directory]",
	Short: "List the tracks in a playlist",
	Long:  `Lists the tracks spin would play, in authoring order.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTracks,
}

func init() {
	rootCmd.AddCommand(tracksCmd)
}

func runTracks(cmd *cobra.Command, args []string) error {
	path, err := libraryPath(args)
	if err != nil {
		return err
	}

	tracks, err := library.Load(path)
	if err != nil {
		return err
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(tracks)
	}

	if len(tracks) == 0 {
		fmt.Println("No tracks found")
		return nil
	}

	table := NewTable("#", "TITLE", "ARTIST", "LENGTH", "SIZE")
	var totalBytes uint64
	for i, t := range tracks {
		length := "-"
		if t.Duration > 0 {
			length = FormatDuration(t.Duration)
		}
		size := "-"
		if info, err := os.Stat(t.Path); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
			totalBytes += uint64(info.Size())
		}
		table.Row(
			strconv.Itoa(i+1),
			TruncateString(t.Title, 40),
			TruncateString(t.Artist, 30),
			length,
			size,
		)
	}
	table.Flush()

	fmt.Printf("\n%d tracks, %s\n", len(tracks), humanize.Bytes(totalBytes))
	return nil
}
