package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
	"github.com/JamesExley95/sleeper-player-database/internal/logging"
	"github.com/JamesExley95/sleeper-player-database/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultRetryInterval = 2 * time.Second
)

// retryingProvider wraps a PlayerProvider with exponential backoff retries.
// A rate-limit response whose Retry-After exceeds the backoff ceiling aborts
// the cycle rather than waiting it out.
type retryingProvider struct {
	inner       PlayerProvider
	name        string
	logger      *slog.Logger
	recorder    *metrics.Recorder
	maxAttempts uint64
	interval    time.Duration
}

// NewRetryingProvider wraps the given provider with retries. Non-positive
// maxAttempts/interval fall back to defaults.
func NewRetryingProvider(inner PlayerProvider, name string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, interval time.Duration) PlayerProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	return &retryingProvider{
		inner:       inner,
		name:        name,
		logger:      logger,
		recorder:    recorder,
		maxAttempts: uint64(maxAttempts),
		interval:    interval,
	}
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	var result []players.Player
	attempt := 0

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.interval
	policy.MaxInterval = 2 * time.Minute

	operation := func() error {
		attempt++
		start := time.Now()
		items, err := r.inner.FetchPlayers(ctx)
		r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			result = items
			return nil
		}

		if rl, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.name, rl.RetryAfter)
			if rl.RetryAfter > policy.MaxInterval {
				// The upstream asked us to stay away longer than we are
				// willing to wait; give up this cycle.
				return backoff.Permanent(err)
			}
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"err", err,
		)
		return err
	}

	wrapped := backoff.WithContext(backoff.WithMaxRetries(policy, r.maxAttempts-1), ctx)
	if err := backoff.Retry(operation, wrapped); err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
			"attempts", attempt,
			"err", err,
		)
		return nil, err
	}
	return result, nil
}

func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
