package providers

import (
	"context"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

// PlayerProvider defines how the upstream player dump is fetched and
// normalized. Implementations return the full current player set; the
// caller replaces its state wholesale.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// ADPProvider fetches average-draft-position data keyed by normalized
// player name (players.NormalizeName).
type ADPProvider interface {
	FetchADP(ctx context.Context) (map[string]players.ADP, error)
}
