package players

import "time"

// Artifact format discriminators recorded in each metadata envelope.
const (
	FormatSimple   = "simple"
	FormatDetailed = "detailed"

	exportVersion = 1
)

// Metadata is the envelope written alongside each players map.
type Metadata struct {
	GeneratedAt  time.Time `json:"generated_at"`
	TotalPlayers int       `json:"total_players"`
	Source       string    `json:"source"`
	Format       string    `json:"format"`
	Version      int       `json:"version"`
}

// Record is one entry in the detailed artifact. Team and status are omitted
// when empty (free agents, retired players).
type Record struct {
	Name            string  `json:"name"`
	Position        string  `json:"position,omitempty"`
	Team            string  `json:"team,omitempty"`
	Status          string  `json:"status,omitempty"`
	ADPOverall      float64 `json:"adp_overall,omitempty"`
	ADPPosition     string  `json:"adp_position,omitempty"`
	ProjectedPoints float64 `json:"projected_points_ppr,omitempty"`
}

// DetailedExport is the full artifact payload: metadata plus ID -> record.
type DetailedExport struct {
	Metadata Metadata          `json:"metadata"`
	Players  map[string]Record `json:"players"`
}

// SimpleExport is the minimal lookup artifact: metadata plus ID -> name.
type SimpleExport struct {
	Metadata Metadata          `json:"metadata"`
	Players  map[string]string `json:"players"`
}

// NewDetailedExport builds the detailed payload from a player set. Later
// duplicates of an ID win, mirroring upstream map semantics.
func NewDetailedExport(generatedAt time.Time, source string, items []Player) DetailedExport {
	records := make(map[string]Record, len(items))
	for _, p := range items {
		if p.ID == "" {
			continue
		}
		records[p.ID] = Record{
			Name:            p.Name,
			Position:        p.Position,
			Team:            p.Team,
			Status:          p.Status,
			ADPOverall:      p.ADPOverall,
			ADPPosition:     p.ADPPosition,
			ProjectedPoints: p.ProjectedPoints,
		}
	}
	return DetailedExport{
		Metadata: Metadata{
			GeneratedAt:  generatedAt.UTC(),
			TotalPlayers: len(records),
			Source:       source,
			Format:       FormatDetailed,
			Version:      exportVersion,
		},
		Players: records,
	}
}

// Simple derives the simple artifact from the detailed one. Both views share
// the identifier set by construction.
func (d DetailedExport) Simple() SimpleExport {
	names := make(map[string]string, len(d.Players))
	for id, rec := range d.Players {
		names[id] = rec.Name
	}
	meta := d.Metadata
	meta.Format = FormatSimple
	meta.TotalPlayers = len(names)
	return SimpleExport{
		Metadata: meta,
		Players:  names,
	}
}
