package players

import "strings"

// Status values as reported by the upstream API, normalized to lower case.
const (
	StatusActive          = "active"
	StatusInactive        = "inactive"
	StatusInjuredReserve  = "injured reserve"
	StatusPracticeSquad   = "practice squad"
	StatusRetired         = "retired"
	StatusFreeAgentMarker = "FA"
)

// Player is the normalized view of an upstream player record. The ID is the
// opaque string key the upstream API uses; numeric-looking for skill players,
// a team abbreviation for defenses.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Status   string `json:"status"`
	Active   bool   `json:"active"`

	// Enrichment from the ADP provider; zero values mean "not available".
	ADPOverall      float64 `json:"adp_overall,omitempty"`
	ADPPosition     string  `json:"adp_position,omitempty"`
	ProjectedPoints float64 `json:"projected_points_ppr,omitempty"`
}

// ADP carries average-draft-position data for one player, keyed externally
// by normalized name.
type ADP struct {
	Overall      float64
	PositionRank string
	Position     string
	Team         string
}

// IsFreeAgent reports whether the player currently has no team.
func (p Player) IsFreeAgent() bool {
	return p.Team == "" || strings.EqualFold(p.Team, StatusFreeAgentMarker)
}

// IsRetired reports whether the player has retired.
func (p Player) IsRetired() bool {
	return strings.EqualFold(p.Status, StatusRetired) || strings.EqualFold(p.Team, StatusRetired)
}

// NormalizeName converts a display name into the lookup key shared with the
// ADP provider: lower case, spaces collapsed to underscores, punctuation
// stripped. "Patrick Mahomes II" and "patrick mahomes ii" collide on purpose.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(name))
	lastUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r == ' ' || r == '-' || r == '_':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
