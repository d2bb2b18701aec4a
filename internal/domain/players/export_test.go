package players

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func sampleSet() []Player {
	return []Player{
		{ID: "4046", Name: "Patrick Mahomes", Position: "QB", Team: "KC", Status: StatusActive, Active: true},
		{ID: "4034", Name: "Christian McCaffrey", Position: "RB", Team: "SF", Status: StatusActive, Active: true, ADPOverall: 1.5, ADPPosition: "RB1"},
		{ID: "1234", Name: "Old Timer", Position: "TE", Status: StatusRetired},
		{ID: "DET", Name: "Detroit Lions", Position: "DEF", Team: "DET"},
	}
}

func TestNewDetailedExport(t *testing.T) {
	generated := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	export := NewDetailedExport(generated, "sleeper", sampleSet())

	if export.Metadata.Format != FormatDetailed {
		t.Errorf("Metadata.Format = %q, want %q", export.Metadata.Format, FormatDetailed)
	}
	if export.Metadata.Source != "sleeper" {
		t.Errorf("Metadata.Source = %q, want %q", export.Metadata.Source, "sleeper")
	}
	if !export.Metadata.GeneratedAt.Equal(generated) {
		t.Errorf("Metadata.GeneratedAt = %v, want %v", export.Metadata.GeneratedAt, generated)
	}
	if export.Metadata.TotalPlayers != len(export.Players) {
		t.Errorf("Metadata.TotalPlayers = %d, players map has %d entries", export.Metadata.TotalPlayers, len(export.Players))
	}

	rec, ok := export.Players["4034"]
	if !ok {
		t.Fatal("expected record for 4034")
	}
	want := Record{Name: "Christian McCaffrey", Position: "RB", Team: "SF", Status: StatusActive, ADPOverall: 1.5, ADPPosition: "RB1"}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDetailedExportSkipsEmptyIDs(t *testing.T) {
	items := []Player{
		{ID: "", Name: "No ID"},
		{ID: "4046", Name: "Patrick Mahomes"},
	}
	export := NewDetailedExport(time.Now(), "sleeper", items)

	if len(export.Players) != 1 {
		t.Fatalf("len(Players) = %d, want 1", len(export.Players))
	}
	if export.Metadata.TotalPlayers != 1 {
		t.Errorf("Metadata.TotalPlayers = %d, want 1", export.Metadata.TotalPlayers)
	}
}

func TestNewDetailedExportLastDuplicateWins(t *testing.T) {
	items := []Player{
		{ID: "4046", Name: "Stale Name"},
		{ID: "4046", Name: "Patrick Mahomes"},
	}
	export := NewDetailedExport(time.Now(), "sleeper", items)

	if got := export.Players["4046"].Name; got != "Patrick Mahomes" {
		t.Errorf("Players[4046].Name = %q, want %q", got, "Patrick Mahomes")
	}
}

func TestSimpleSharesIdentifiers(t *testing.T) {
	detailed := NewDetailedExport(time.Now(), "sleeper", sampleSet())
	simple := detailed.Simple()

	if simple.Metadata.Format != FormatSimple {
		t.Errorf("Metadata.Format = %q, want %q", simple.Metadata.Format, FormatSimple)
	}
	if simple.Metadata.TotalPlayers != detailed.Metadata.TotalPlayers {
		t.Errorf("TotalPlayers mismatch: simple %d, detailed %d", simple.Metadata.TotalPlayers, detailed.Metadata.TotalPlayers)
	}
	if !simple.Metadata.GeneratedAt.Equal(detailed.Metadata.GeneratedAt) {
		t.Error("expected both views to share the generation timestamp")
	}

	for id, rec := range detailed.Players {
		name, ok := simple.Players[id]
		if !ok {
			t.Errorf("identifier %q missing from simple view", id)
			continue
		}
		if name != rec.Name {
			t.Errorf("simple name for %q = %q, want %q", id, name, rec.Name)
		}
	}
	if len(simple.Players) != len(detailed.Players) {
		t.Errorf("len mismatch: simple %d, detailed %d", len(simple.Players), len(detailed.Players))
	}
}

func TestRecordOmitsEmptyFields(t *testing.T) {
	rec := Record{Name: "Old Timer", Position: "TE"}
	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"team", "status", "adp_overall", "adp_position"} {
		if _, ok := decoded[field]; ok {
			t.Errorf("expected %q to be omitted when empty", field)
		}
	}
	if decoded["name"] != "Old Timer" {
		t.Errorf("name = %v, want %q", decoded["name"], "Old Timer")
	}
}
