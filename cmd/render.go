package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"midikara/internal/worker"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <file.mid>",
	Short: "Render a MIDI file and lyrics into an ASS subtitle file",
	Long: `Render pairs every note onset of each MIDI channel with one syllable of that
channel's lyrics file. Syllables are separated by spaces; a backslash joins two
syllables without a space. Lyrics files are given per channel with --dialogue
or in the [channels] section of the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	output        string
	dialogues     map[string]string
	offsetMs      float64
	noKaraoke     bool
	markerKey     int
	preamblePath  string
	noAsync       bool
	maxConcurrent int
	strict        bool
)

func init() {
	renderCmd.Flags().StringVarP(&output, "output", "o", "", "output ASS path, - for stdout (default: <input>.ass)")
	renderCmd.Flags().StringToStringVarP(&dialogues, "dialogue", "d", nil, "lyrics file per channel, e.g. -d 0=lead.txt -d 1=harmony.txt")
	renderCmd.Flags().Float64Var(&offsetMs, "offset-ms", 0, "shift all timestamps by this many milliseconds")
	renderCmd.Flags().BoolVar(&noKaraoke, "no-karaoke", false, "omit {\\k} highlight tags")
	renderCmd.Flags().IntVar(&markerKey, "marker-key", 72, "MIDI note number that marks a new line")
	renderCmd.Flags().StringVar(&preamblePath, "preamble", "", "file to place before the events section")
	renderCmd.Flags().BoolVar(&noAsync, "no-async", false, "render channels one at a time")
	renderCmd.Flags().IntVarP(&maxConcurrent, "max-concurrent", "j", 4, "max channels rendered in parallel")
	renderCmd.Flags().BoolVar(&strict, "strict", false, "fail when any channel cannot be rendered")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	absPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", args[0])
	}
	ext := strings.ToLower(filepath.Ext(absPath))
	if ext != ".mid" && ext != ".midi" {
		return fmt.Errorf("unsupported file type: %s", ext)
	}

	cfg := appConfig
	flags := cmd.Flags()
	if flags.Changed("offset-ms") {
		cfg.Render.OffsetMs = offsetMs
	}
	if noKaraoke {
		cfg.Render.Karaoke = false
		for key, ch := range cfg.Channels {
			ch.Karaoke = nil
			cfg.Channels[key] = ch
		}
	}
	if flags.Changed("marker-key") {
		cfg.Render.MarkerKey = markerKey
	}
	if preamblePath != "" {
		cfg.Render.Preamble = preamblePath
	}
	if flags.Changed("max-concurrent") {
		cfg.Worker.MaxConcurrent = maxConcurrent
	}
	if strict {
		cfg.Worker.Strict = true
	}
	for key, path := range dialogues {
		ch, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || ch < 0 || ch > 15 {
			return fmt.Errorf("invalid channel %q in --dialogue", key)
		}
		cfg.SetDialogue(ch, path)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	outPath := output
	if outPath != "" && outPath != worker.StdoutPath {
		if outPath, err = filepath.Abs(outPath); err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := worker.Options{
		InputPath:  absPath,
		OutputPath: outPath,
		NoAsync:    noAsync,
		Config:     cfg,
		Logger:     slog.Default().With("run_id", uuid.NewString()),
		Stdout:     cmd.OutOrStdout(),
	}

	summary, err := worker.Run(ctx, opts)
	if summary != nil && !quiet && summary.Output != worker.StdoutPath {
		fmt.Fprintln(cmd.ErrOrStderr(), renderSummaryTable(summary))
	}
	return err
}
