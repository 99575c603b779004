package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marlot/spin/internal/config"
	spinerrors "github.com/marlot/spin/internal/errors"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "spin",
	Short: "Play local audio playlists from the command line",
	Long: `Spin is a small playlist player for local audio files.

Point it at a TOML playlist manifest or a directory of audio files and it
plays them sequentially or shuffled, from the terminal or a full-screen UI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.spinrc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if s := spinerrors.GetSuggestion(err); s != "" {
			fmt.Fprintf(os.Stderr, "\nSuggestion: %s\n", s)
		}
		os.Exit(1)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}

// libraryPath resolves the library argument, falling back to the
// configured path.
func libraryPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Library.Path != "" {
		return cfg.Library.Path, nil
	}
	return "", spinerrors.WithSuggestion(
		spinerrors.ErrLibraryNotFound,
		"Pass a playlist manifest or directory, or set library.path in the config",
	)
}
