package ffc

import "github.com/JamesExley95/sleeper-player-database/internal/domain/players"

func mapADP(payload adpResponse) map[string]players.ADP {
	result := make(map[string]players.ADP, len(payload.Players))
	for _, p := range payload.Players {
		key := players.NormalizeName(p.Name)
		if key == "" || p.ADP <= 0 {
			continue
		}
		result[key] = players.ADP{
			Overall:      p.ADP,
			PositionRank: p.PositionRank,
			Position:     p.Position,
			Team:         p.Team,
		}
	}
	return result
}
