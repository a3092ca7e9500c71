package worker

import (
	"context"
	"log/slog"

	"midikara/internal/config"

	"golang.org/x/sync/errgroup"
)

// processConcurrent renders channels in parallel with bounded concurrency.
// Channels share no state; each goroutine owns one slot of the result slice.
func processConcurrent(ctx context.Context, jobs []channelJob, cfg *config.Config, logger *slog.Logger) ([]channelOutcome, error) {
	logger.Info("starting concurrent processing",
		"channels", len(jobs),
		"max_concurrent", cfg.Worker.MaxConcurrent)

	outcomes := make([]channelOutcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Worker.MaxConcurrent, 1))

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			logger.Debug("processing channel", "channel", job.Timing.Channel)
			res, err := renderChannel(job, cfg)
			outcomes[i] = channelOutcome{Result: res, Err: err}
			return report(logger, job, outcomes[i], cfg.Worker.Strict)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
