package sleeper

// rawPlayer mirrors the upstream player object. The dump is a single JSON
// map of player ID -> object; the player_id field repeats the key. Team
// defenses have no full_name and reuse the team abbreviation as their ID.
type rawPlayer struct {
	PlayerID         string   `json:"player_id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	FullName         string   `json:"full_name"`
	Position         string   `json:"position"`
	FantasyPositions []string `json:"fantasy_positions"`
	Team             string   `json:"team"`
	Status           string   `json:"status"`
	Active           bool     `json:"active"`
	InjuryStatus     string   `json:"injury_status"`
}
