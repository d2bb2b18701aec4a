package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
	"github.com/JamesExley95/sleeper-player-database/internal/logging"
)

// loggingProvider logs each fetch with its outcome.
type loggingProvider struct {
	inner  PlayerProvider
	name   string
	logger *slog.Logger
}

// NewLoggingProvider wraps a provider with per-call logging.
func NewLoggingProvider(inner PlayerProvider, name string, logger *slog.Logger) PlayerProvider {
	return &loggingProvider{inner: inner, name: name, logger: logger}
}

func (l *loggingProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	start := time.Now()
	items, err := l.inner.FetchPlayers(ctx)
	if err != nil {
		logWithProvider(ctx, l.logger, slog.LevelWarn, l.name, "players fetch failed",
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
			"err", err,
		)
		return nil, err
	}
	logWithProvider(ctx, l.logger, slog.LevelInfo, l.name, "players fetched",
		logging.FieldCount, len(items),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return items, nil
}
