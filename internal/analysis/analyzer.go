// Package analysis scores the mirrored player set for draft value and
// produces the insights artifact consumed alongside the player files.
package analysis

import (
	"sort"
	"time"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

const analysisVersion = "2.0"

// Pick is one categorized player in the insights artifact.
type Pick struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Team     string  `json:"team,omitempty"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason"`
}

// Metadata describes one analysis run.
type Metadata struct {
	AnalysisDate    time.Time `json:"analysis_date"`
	PlayersAnalyzed int       `json:"players_analyzed"`
	RetiredExcluded int       `json:"retired_excluded"`
	Version         string    `json:"version"`
}

// Summary is the executive view of a report.
type Summary struct {
	MustStarts int   `json:"must_starts"`
	Sleepers   int   `json:"sleepers"`
	Busts      int   `json:"busts"`
	TopPick    *Pick `json:"top_recommendation,omitempty"`
	TopSleeper *Pick `json:"top_sleeper,omitempty"`
}

// Report is the full insights artifact payload.
type Report struct {
	Metadata   Metadata         `json:"metadata"`
	MustStarts []Pick           `json:"must_starts"`
	Sleepers   []Pick           `json:"sleepers"`
	Busts      []Pick           `json:"busts"`
	Scores     map[string]Score `json:"player_analysis"`
	Summary    Summary          `json:"executive_summary"`
}

// Analyze scores every player and categorizes the result. Retired players
// are scored zero and excluded from the categories.
func Analyze(now time.Time, items []players.Player) Report {
	report := Report{
		Metadata: Metadata{
			AnalysisDate: now.UTC(),
			Version:      analysisVersion,
		},
		MustStarts: []Pick{},
		Sleepers:   []Pick{},
		Busts:      []Pick{},
		Scores:     make(map[string]Score, len(items)),
	}

	for _, p := range items {
		if p.ID == "" {
			continue
		}
		score := scorePlayer(p)
		report.Scores[p.ID] = score
		report.Metadata.PlayersAnalyzed++

		if p.IsRetired() {
			report.Metadata.RetiredExcluded++
			continue
		}

		pick := Pick{
			PlayerID: p.ID,
			Name:     p.Name,
			Position: p.Position,
			Team:     p.Team,
			Score:    score.Final,
			Reason:   score.Reason,
		}

		// Categories are mutually exclusive; a bust verdict only applies
		// to players who earned neither of the positive labels.
		switch {
		case score.Final >= mustStartThreshold:
			report.MustStarts = append(report.MustStarts, pick)
		case score.Final >= sleeperFloor && score.Final < sleeperCeil:
			report.Sleepers = append(report.Sleepers, pick)
		case p.ADPOverall > 0 && score.ADPVsProjection < bustMargin:
			pick.Reason = "ADP significantly ahead of projection"
			report.Busts = append(report.Busts, pick)
		}
	}

	sortPicks(report.MustStarts)
	sortPicks(report.Sleepers)
	sortPicks(report.Busts)

	report.Summary = summarize(report)
	return report
}

func sortPicks(picks []Pick) {
	sort.Slice(picks, func(i, j int) bool {
		if picks[i].Score != picks[j].Score {
			return picks[i].Score > picks[j].Score
		}
		return picks[i].PlayerID < picks[j].PlayerID
	})
}

func summarize(report Report) Summary {
	s := Summary{
		MustStarts: len(report.MustStarts),
		Sleepers:   len(report.Sleepers),
		Busts:      len(report.Busts),
	}
	if len(report.MustStarts) > 0 {
		top := report.MustStarts[0]
		s.TopPick = &top
	}
	if len(report.Sleepers) > 0 {
		top := report.Sleepers[0]
		s.TopSleeper = &top
	}
	return s
}
