package config

import "time"

const (
	// EnvPrefix namespaces all environment overrides, e.g. SLEEPERDB_PORT.
	EnvPrefix = "SLEEPERDB_"
	// EnvConfigFile points at an optional YAML config file.
	EnvConfigFile = "SLEEPERDB_CONFIG"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultProvider    = "sleeper"

	defaultSleeperBaseURL = "https://api.sleeper.app"
	defaultADPBaseURL     = "https://fantasyfootballcalculator.com/api/v1"

	// Upstream asks consumers to fetch the full player dump at most once a
	// day; the refresh loop also runs once on boot.
	defaultRefreshInterval = 24 * time.Hour

	defaultSleeperTimeout = 60 * time.Second
	defaultADPTimeout     = 15 * time.Second

	defaultRatePerMinute = 120
	defaultJournalKeep   = 200
)
