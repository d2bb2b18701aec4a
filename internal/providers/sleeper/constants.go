package sleeper

import "time"

const (
	// ProviderName identifies this provider in logs and metrics.
	ProviderName = "sleeper"

	defaultBaseURL = "https://api.sleeper.app"
	// The full NFL player dump is ~10MB of JSON; give it room.
	defaultHTTPTimeout = 60 * time.Second
	playersEndpoint    = "/v1/players/nfl"
)
