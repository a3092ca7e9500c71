package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"midikara/internal/config"
	"midikara/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	configPath string
	logFormat  string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "midikara",
	Short: "Generate karaoke ASS subtitles from MIDI timing and lyrics",
	Long: `midikara reads note onsets from a MIDI file and pairs them with the
syllables of a lyrics file, producing an Advanced SubStation Alpha subtitle
track with per-syllable karaoke highlighting. Notes on the marker key start a
new subtitle line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		if skipConfig(cmd) {
			return setupLogging(config.Default())
		}
		cfg, _, _, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg
		return setupLogging(cfg)
	},
}

// skipConfig reports whether cmd must run without loading a config file,
// so that a broken config can still be replaced.
func skipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

func setupLogging(cfg *config.Config) error {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	if quiet {
		level = "error"
	}
	format := cfg.Logging.Format
	if logFormat != "" {
		format = logFormat
	}

	logger, err := logging.New(logging.Options{Level: level, Format: format, Writer: os.Stderr})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console, json, auto")
}
