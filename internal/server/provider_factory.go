package server

import (
	"log/slog"
	"net/http"

	"github.com/JamesExley95/sleeper-player-database/internal/config"
	"github.com/JamesExley95/sleeper-player-database/internal/logging"
	"github.com/JamesExley95/sleeper-player-database/internal/metrics"
	"github.com/JamesExley95/sleeper-player-database/internal/providers"
	"github.com/JamesExley95/sleeper-player-database/internal/providers/ffc"
	"github.com/JamesExley95/sleeper-player-database/internal/providers/fixture"
	"github.com/JamesExley95/sleeper-player-database/internal/providers/sleeper"
)

// providerFactory builds the configured player and ADP providers with
// their decorators.
type providerFactory struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) *providerFactory {
	return &providerFactory{logger: logger, recorder: recorder}
}

// buildPlayers returns the decorated player provider and its name.
func (f *providerFactory) buildPlayers(cfg config.Config) (providers.PlayerProvider, string) {
	var (
		inner providers.PlayerProvider
		name  string
	)
	switch cfg.Provider {
	case "fixture":
		inner = fixture.New()
		name = fixture.ProviderName
	default:
		inner = sleeper.NewClient(sleeper.Config{
			BaseURL:         cfg.Sleeper.BaseURL,
			HTTPClient:      &http.Client{Timeout: cfg.Sleeper.Timeout},
			Positions:       cfg.Sleeper.Positions,
			IncludeInactive: cfg.Sleeper.IncludeInactive,
		})
		name = sleeper.ProviderName
	}

	provider := providers.NewRetryingProvider(inner, name, f.logger, f.recorder, 0, 0)
	provider = providers.NewLoggingProvider(provider, name, f.logger)
	return provider, name
}

// buildADP returns the ADP provider, or nil when enrichment is disabled.
// The fixture provider carries its own ADP data so development runs do not
// touch the network.
func (f *providerFactory) buildADP(cfg config.Config) providers.ADPProvider {
	if !cfg.ADP.Enabled {
		return nil
	}
	if cfg.Provider == "fixture" {
		return fixture.New()
	}
	logging.Info(f.logger, "adp enrichment enabled",
		logging.FieldProvider, ffc.ProviderName,
		"format", cfg.ADP.Format,
	)
	return ffc.NewClient(ffc.Config{
		BaseURL:    cfg.ADP.BaseURL,
		Format:     cfg.ADP.Format,
		Teams:      cfg.ADP.Teams,
		Year:       cfg.ADP.Year,
		HTTPClient: &http.Client{Timeout: cfg.ADP.Timeout},
	})
}
