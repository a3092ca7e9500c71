package worker

import (
	"context"
	"log/slog"

	"midikara/internal/config"
)

// processSequential renders channels one at a time in channel order.
func processSequential(ctx context.Context, jobs []channelJob, cfg *config.Config, logger *slog.Logger) ([]channelOutcome, error) {
	outcomes := make([]channelOutcome, len(jobs))
	for i, job := range jobs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		logger.Debug("processing channel", "channel", job.Timing.Channel)
		res, err := renderChannel(job, cfg)
		outcomes[i] = channelOutcome{Result: res, Err: err}
		if err := report(logger, job, outcomes[i], cfg.Worker.Strict); err != nil {
			return nil, err
		}
	}
	return outcomes, nil
}
