// Package fixture provides a static provider for local development and
// tests, with a deterministic player set and matching ADP entries.
package fixture

import (
	"context"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

// ProviderName identifies this provider in logs and metrics.
const ProviderName = "fixture"

// Provider returns a static set of players.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns a deterministic set of example players covering the
// interesting shapes: rostered, free agent, retired, team defense.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return []players.Player{
		{ID: "1001", Name: "Alex Carter", Position: "QB", Team: "KC", Status: players.StatusActive, Active: true},
		{ID: "1002", Name: "Marcus Reed", Position: "RB", Team: "BUF", Status: players.StatusActive, Active: true},
		{ID: "1003", Name: "Devin Hall", Position: "WR", Team: "", Status: players.StatusActive, Active: true},
		{ID: "1004", Name: "Tom Ellison", Position: "TE", Team: "", Status: players.StatusRetired, Active: false},
		{ID: "DET", Name: "DET", Position: "DEF", Team: "DET", Status: players.StatusActive, Active: true},
	}, nil
}

// FetchADP returns ADP entries for the fixture players that would appear in
// a real draft.
func (p *Provider) FetchADP(ctx context.Context) (map[string]players.ADP, error) {
	_ = ctx
	return map[string]players.ADP{
		players.NormalizeName("Alex Carter"): {Overall: 18.5, PositionRank: "QB3", Position: "QB", Team: "KC"},
		players.NormalizeName("Marcus Reed"): {Overall: 4.2, PositionRank: "RB2", Position: "RB", Team: "BUF"},
	}, nil
}
