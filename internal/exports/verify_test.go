package exports

import (
	"strings"
	"testing"
	"time"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

func validPair(t *testing.T) (players.SimpleExport, players.DetailedExport) {
	t.Helper()
	detailed := players.NewDetailedExport(
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		"sleeper",
		[]players.Player{
			{ID: "4046", Name: "Patrick Mahomes", Position: "QB", Team: "KC"},
			{ID: "6794", Name: "Justin Jefferson", Position: "WR", Team: "MIN"},
		},
	)
	return detailed.Simple(), detailed
}

func TestVerifyPairClean(t *testing.T) {
	simple, detailed := validPair(t)
	report := VerifyPair(simple, detailed)
	if !report.OK() {
		t.Fatalf("expected clean report, got issues: %v", report.Issues)
	}
	if err := report.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestVerifyPairKeyParity(t *testing.T) {
	simple, detailed := validPair(t)
	simple.Players["9999"] = "Phantom Player"
	simple.Metadata.TotalPlayers++
	delete(detailed.Players, "4046")
	detailed.Metadata.TotalPlayers--

	report := VerifyPair(simple, detailed)
	if report.OK() {
		t.Fatal("expected key parity violations")
	}

	checks := issueChecks(report)
	// 9999 and 4046 are both present in simple but absent from detailed.
	if checks["key_parity"] != 2 {
		t.Errorf("key_parity issues = %d, want 2; report: %v", checks["key_parity"], report.Issues)
	}
}

func TestVerifyPairEmptyNames(t *testing.T) {
	simple, detailed := validPair(t)
	simple.Players["4046"] = "   "
	rec := detailed.Players["6794"]
	rec.Name = ""
	detailed.Players["6794"] = rec

	report := VerifyPair(simple, detailed)
	checks := issueChecks(report)
	if checks["simple_name"] != 1 {
		t.Errorf("simple_name issues = %d, want 1", checks["simple_name"])
	}
	if checks["detailed_name"] != 1 {
		t.Errorf("detailed_name issues = %d, want 1", checks["detailed_name"])
	}
}

func TestVerifyPairCountMismatch(t *testing.T) {
	simple, detailed := validPair(t)
	simple.Metadata.TotalPlayers = 17
	detailed.Metadata.TotalPlayers = 0

	report := VerifyPair(simple, detailed)
	checks := issueChecks(report)
	if checks["simple_count"] != 1 || checks["detailed_count"] != 1 {
		t.Errorf("count issues = %v, want one of each", checks)
	}
}

func TestVerifyPairMissingTimestamp(t *testing.T) {
	simple, detailed := validPair(t)
	simple.Metadata.GeneratedAt = time.Time{}

	report := VerifyPair(simple, detailed)
	checks := issueChecks(report)
	if checks["simple_generated_at"] != 1 {
		t.Errorf("expected simple_generated_at issue, got %v", report.Issues)
	}
}

func TestVerifyReportErrNamesEachCheck(t *testing.T) {
	var report VerifyReport
	report.add("simple_count", "metadata says %d players, map holds %d", 2, 1)
	report.add("key_parity", "id %s present in simple but missing from detailed", "42")

	err := report.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"simple_count", "key_parity", "42"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestVerifyDir(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)
	_, detailed := validPair(t)
	if _, err := writer.WritePlayerArtifacts(detailed); err != nil {
		t.Fatalf("write: %v", err)
	}

	report, err := VerifyDir(dir)
	if err != nil {
		t.Fatalf("VerifyDir: %v", err)
	}
	if !report.OK() {
		t.Errorf("expected clean report, got %v", report.Issues)
	}
}

func TestVerifyDirMissingFiles(t *testing.T) {
	if _, err := VerifyDir(t.TempDir()); err == nil {
		t.Fatal("expected error for empty directory")
	}
}

func issueChecks(report VerifyReport) map[string]int {
	out := make(map[string]int)
	for _, issue := range report.Issues {
		out[issue.Check]++
	}
	return out
}
