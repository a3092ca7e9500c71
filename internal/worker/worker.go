package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"midikara/internal/ass"
	"midikara/internal/config"
	"midikara/internal/dialogue"
	"midikara/internal/midi"
	"midikara/internal/pipeline"
)

var (
	// ErrMissingDialogue means no dialogue file is configured for a channel
	// that has notes.
	ErrMissingDialogue = errors.New("no dialogue file configured")
	// ErrNothingRendered means every channel failed.
	ErrNothingRendered = errors.New("no channel produced subtitles")
)

// StdoutPath as the output path writes the document to Options.Stdout.
const StdoutPath = "-"

// Options configures the worker.
type Options struct {
	InputPath  string
	OutputPath string
	NoAsync    bool
	Config     *config.Config
	Logger     *slog.Logger
	Stdout     io.Writer
}

// ChannelSummary reports the outcome of one channel.
type ChannelSummary struct {
	Channel   int
	Style     string
	Dialogue  string
	Lines     int
	Syllables int
	Mismatch  pipeline.Mismatch
	Err       error
}

// Summary reports the outcome of a run.
type Summary struct {
	Output   string
	Channels []ChannelSummary
}

type channelJob struct {
	Timing   pipeline.ChannelTiming
	Settings config.ChannelSettings
}

type channelOutcome struct {
	Result *pipeline.ChannelResult
	Err    error
}

// Run is the top-level orchestrator: it reads the MIDI timing, renders every
// channel, and writes the assembled document.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	output := opts.OutputPath
	if output == "" {
		output = strings.TrimSuffix(opts.InputPath, filepath.Ext(opts.InputPath)) + ".ass"
	}

	logger.Info("reading midi", "input", filepath.Base(opts.InputPath))
	timing, err := midi.ReadFile(opts.InputPath, midi.Options{MarkerKey: uint8(cfg.Render.MarkerKey)})
	if err != nil {
		return nil, err
	}

	channels := timing.Channels()
	jobs := make([]channelJob, 0, len(channels))
	for _, ch := range channels {
		jobs = append(jobs, channelJob{Timing: timing.Channel(ch), Settings: cfg.ForChannel(ch)})
	}
	logger.Info("channels found", "count", len(jobs), "channels", channels)

	var outcomes []channelOutcome
	if !opts.NoAsync && len(jobs) > 1 {
		outcomes, err = processConcurrent(ctx, jobs, cfg, logger)
	} else {
		outcomes, err = processSequential(ctx, jobs, cfg, logger)
	}
	if err != nil {
		return nil, err
	}

	summary := &Summary{Output: output}
	var rendered []pipeline.ChannelResult
	var styles []string
	for i, job := range jobs {
		cs := ChannelSummary{
			Channel:  job.Timing.Channel,
			Style:    job.Settings.Style,
			Dialogue: job.Settings.Dialogue,
			Err:      outcomes[i].Err,
		}
		if res := outcomes[i].Result; res != nil {
			cs.Lines = len(res.Lines)
			cs.Syllables = res.Syllables
			cs.Mismatch = res.Mismatch
			rendered = append(rendered, *res)
			styles = append(styles, job.Settings.Style)
		}
		summary.Channels = append(summary.Channels, cs)
	}
	if len(rendered) == 0 {
		return summary, ErrNothingRendered
	}

	preamble, err := loadPreamble(cfg.Render.Preamble, styles)
	if err != nil {
		return summary, err
	}
	content := ass.Build(ass.Document{Preamble: preamble, Channels: rendered})

	if output == StdoutPath {
		w := opts.Stdout
		if w == nil {
			w = os.Stdout
		}
		if _, err := io.WriteString(w, content); err != nil {
			return summary, fmt.Errorf("write subtitles: %w", err)
		}
		return summary, nil
	}

	if err := ass.WriteFile(output, content); err != nil {
		return summary, err
	}
	logger.Info("subtitle file saved", "path", output, "channels", len(rendered))
	return summary, nil
}

// renderChannel loads the dialogue of one channel and runs it through the
// syllable pipeline.
func renderChannel(job channelJob, cfg *config.Config) (*pipeline.ChannelResult, error) {
	ch := job.Timing.Channel
	if job.Settings.Dialogue == "" {
		return nil, &pipeline.ChannelError{Channel: ch, Err: ErrMissingDialogue}
	}
	text, err := dialogue.Load(job.Settings.Dialogue)
	if err != nil {
		return nil, &pipeline.ChannelError{Channel: ch, Err: err}
	}

	rc := pipeline.RenderConfig{
		FormatLayerTag: cfg.Render.FormatLayer,
		StyleTag:       job.Settings.Style,
		Margins:        cfg.Render.Margins,
		Karaoke:        job.Settings.Karaoke,
	}
	return pipeline.Process(job.Timing, text, rc, job.Settings.OffsetMs)
}

// report logs the outcome of one channel. In strict mode a failure is
// returned instead of skipped.
func report(logger *slog.Logger, job channelJob, out channelOutcome, strict bool) error {
	ch := job.Timing.Channel
	if out.Err != nil {
		if strict {
			return out.Err
		}
		logger.Error("channel skipped", "channel", ch, "err", out.Err)
		return nil
	}
	if m := out.Result.Mismatch; !m.OK() {
		logger.Warn(m.String(),
			"channel", ch,
			"syllables", m.Syllables,
			"onsets", m.Onsets,
			"delta", m.Delta())
	}
	logger.Info("channel rendered",
		"channel", ch,
		"style", job.Settings.Style,
		"lines", len(out.Result.Lines))
	return nil
}

func loadPreamble(path string, styles []string) (string, error) {
	if path == "" {
		return ass.DefaultPreamble(styles), nil
	}
	text, err := dialogue.Load(path)
	if err != nil {
		return "", fmt.Errorf("load preamble: %w", err)
	}
	return text, nil
}
