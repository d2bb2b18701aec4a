// Package config holds runtime configuration for the player database
// service, layered from defaults, an optional YAML file, and environment
// variables.
package config

import "time"

// Config is the full runtime configuration tree.
type Config struct {
	Port      string `koanf:"port"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// Provider selects the upstream player source: "sleeper" or "fixture".
	Provider string `koanf:"provider"`

	// RefreshInterval is the cadence of the background refresh loop.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// AdminToken guards the on-demand refresh endpoint; empty disables it.
	AdminToken string `koanf:"admin_token"`

	// RatePerMinute caps public-surface requests per client IP.
	RatePerMinute int `koanf:"rate_per_minute"`

	Sleeper  SleeperConfig  `koanf:"sleeper"`
	ADP      ADPConfig      `koanf:"adp"`
	Exports  ExportsConfig  `koanf:"exports"`
	Insights InsightsConfig `koanf:"insights"`
	Journal  JournalConfig  `koanf:"journal"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// SleeperConfig controls the upstream Sleeper API client.
type SleeperConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
	// Positions limits the mirror to fantasy-relevant roster slots.
	Positions []string `koanf:"positions"`
	// IncludeInactive keeps players upstream marks inactive.
	IncludeInactive bool `koanf:"include_inactive"`
}

// ADPConfig controls the Fantasy Football Calculator enrichment client.
type ADPConfig struct {
	Enabled bool          `koanf:"enabled"`
	BaseURL string        `koanf:"base_url"`
	Format  string        `koanf:"format"` // standard, ppr, half-ppr
	Teams   int           `koanf:"teams"`
	Year    int           `koanf:"year"`
	Timeout time.Duration `koanf:"timeout"`
}

// ExportsConfig controls where artifacts are written.
type ExportsConfig struct {
	Dir string `koanf:"dir"`
}

// InsightsConfig controls the analysis artifact.
type InsightsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// JournalConfig controls the sqlite refresh journal; an empty path disables it.
type JournalConfig struct {
	Path string `koanf:"path"`
	// Keep bounds how many refresh rows are retained.
	Keep int `koanf:"keep"`
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Port         string `koanf:"port"`
	ServiceName  string `koanf:"service_name"`
	OtlpEndpoint string `koanf:"otlp_endpoint"`
	OtlpInsecure bool   `koanf:"otlp_insecure"`
}

// Default returns the built-in configuration. Refresh cadence is
// conservative: the upstream player dump is large and its maintainers ask
// for at most one fetch per day.
func Default() Config {
	return Config{
		Port:            defaultPort,
		LogLevel:        "info",
		LogFormat:       "text",
		Provider:        defaultProvider,
		RefreshInterval: defaultRefreshInterval,
		RatePerMinute:   defaultRatePerMinute,
		Sleeper: SleeperConfig{
			BaseURL:   defaultSleeperBaseURL,
			Timeout:   defaultSleeperTimeout,
			Positions: []string{"QB", "RB", "WR", "TE", "K", "DEF"},
		},
		ADP: ADPConfig{
			Enabled: true,
			BaseURL: defaultADPBaseURL,
			Format:  "standard",
			Teams:   12,
			Timeout: defaultADPTimeout,
		},
		Exports: ExportsConfig{
			Dir: "json_data",
		},
		Insights: InsightsConfig{
			Enabled: true,
		},
		Journal: JournalConfig{
			Path: "data/journal.db",
			Keep: defaultJournalKeep,
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Port:        defaultMetricsPort,
			ServiceName: "sleeper-player-database",
		},
	}
}
