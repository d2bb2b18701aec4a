package analysis

import (
	"fmt"
	"math"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

// Scoring thresholds and weights. Tuned against 12-team standard drafts.
const (
	mustStartThreshold = 140
	sleeperFloor       = 95
	sleeperCeil        = 115
	bustMargin         = -20

	adpValueWeight = 0.3
	adpBaseline    = 200

	// defaultProjection stands in when no projection data is available.
	defaultProjection = 100
)

var positionMultipliers = map[string]float64{
	"QB": 1.0,
	"RB": 1.2,
	"WR": 1.1,
	"TE": 1.3,
}

// teamAdjustments nudges scores for offensive context.
var teamAdjustments = map[string]float64{
	"KC":  10,
	"BUF": 8,
	"SF":  8,
	"NYJ": 5,
}

// Score is the scoring breakdown for one player.
type Score struct {
	Final            float64 `json:"score"`
	Reason           string  `json:"category_reason"`
	ADPVsProjection  float64 `json:"adp_vs_projection"`
	BaseProjection   float64 `json:"base_projection"`
	ADPValue         float64 `json:"adp_value"`
	PositionMultiple float64 `json:"position_multiplier"`
	TeamAdjustment   float64 `json:"team_adjustment"`
}

// scorePlayer computes the draft score for one player.
func scorePlayer(p players.Player) Score {
	base := p.ProjectedPoints
	if base <= 0 {
		base = defaultProjection
	}

	adp := p.ADPOverall
	if adp <= 0 {
		adp = 999
	}
	adpValue := math.Max(adpBaseline-adp, 0) * adpValueWeight

	multiplier, ok := positionMultipliers[p.Position]
	if !ok {
		multiplier = 1.0
	}
	adjustment := teamAdjustments[p.Team]

	final := (base+adpValue)*multiplier + adjustment
	reason := categoryReason(p.Position, final)

	if p.IsRetired() {
		final = 0
		reason = "player has retired, do not draft"
	}

	return Score{
		Final:            round1(final),
		Reason:           reason,
		ADPVsProjection:  base - (adpBaseline - adp),
		BaseProjection:   base,
		ADPValue:         round1(adpValue),
		PositionMultiple: multiplier,
		TeamAdjustment:   adjustment,
	}
}

func categoryReason(position string, score float64) string {
	switch {
	case score >= mustStartThreshold:
		return fmt.Sprintf("elite %s with excellent ADP value and strong team situation", position)
	case score >= sleeperFloor && score < sleeperCeil:
		return fmt.Sprintf("undervalued %s with breakout potential", position)
	default:
		return fmt.Sprintf("solid %s option for depth", position)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
