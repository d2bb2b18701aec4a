package sleeper

import (
	"strings"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

// mapPlayer normalizes one raw record. The second return is false when the
// record is filtered out (wrong position, inactive, unnameable).
func (c *Client) mapPlayer(id string, raw rawPlayer) (players.Player, bool) {
	if raw.PlayerID != "" {
		id = raw.PlayerID
	}
	if id == "" {
		return players.Player{}, false
	}
	if !c.includeInactive && !raw.Active {
		return players.Player{}, false
	}
	if !c.allowsPosition(raw) {
		return players.Player{}, false
	}

	name := displayName(id, raw)
	if name == "" {
		return players.Player{}, false
	}

	return players.Player{
		ID:       id,
		Name:     name,
		Position: raw.Position,
		Team:     strings.ToUpper(raw.Team),
		Status:   normalizeStatus(raw),
		Active:   raw.Active,
	}, true
}

func (c *Client) allowsPosition(raw rawPlayer) bool {
	if len(c.positions) == 0 {
		return true
	}
	if _, ok := c.positions[raw.Position]; ok {
		return true
	}
	for _, pos := range raw.FantasyPositions {
		if _, ok := c.positions[pos]; ok {
			return true
		}
	}
	return false
}

// displayName prefers the upstream full name, then first+last, then falls
// back to the ID itself for team defenses ("KC", "DET", ...).
func displayName(id string, raw rawPlayer) string {
	if raw.FullName != "" {
		return raw.FullName
	}
	name := strings.TrimSpace(raw.FirstName + " " + raw.LastName)
	if name != "" {
		return name
	}
	if raw.Position == "DEF" {
		return id
	}
	return ""
}

func normalizeStatus(raw rawPlayer) string {
	status := strings.ToLower(strings.TrimSpace(raw.Status))
	if status == "" && !raw.Active {
		status = players.StatusInactive
	}
	return status
}

func positionSet(positions []string) map[string]struct{} {
	if len(positions) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(positions))
	for _, p := range positions {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}
