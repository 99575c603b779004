package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/marlot/spin/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Long:  `Walks through the basic settings and writes a config file.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.Path()
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	libPath := cfg.Library.Path
	mode := cfg.Playback.Mode
	volume := strconv.Itoa(cfg.Playback.Volume)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Library path").
				Description("A playlist manifest (.toml) or a directory of audio files").
				Value(&libPath),
			huh.NewSelect[string]().
				Title("Playback mode").
				Options(
					huh.NewOption("Sequential (authoring order)", "sequential"),
					huh.NewOption("Random (shuffled)", "random"),
				).
				Value(&mode),
			huh.NewInput().
				Title("Volume (0-100)").
				Validate(func(s string) error {
					v, err := strconv.Atoi(s)
					if err != nil || v < 0 || v > 100 {
						return fmt.Errorf("enter a number between 0 and 100")
					}
					return nil
				}).
				Value(&volume),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	out := config.Default()
	out.Library.Path = libPath
	out.Playback.Mode = mode
	out.Playback.Volume, _ = strconv.Atoi(volume)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(out); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
