package exports

import (
	"fmt"
	"strings"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

// Issue is one failed consistency check.
type Issue struct {
	Check  string
	Detail string
}

// VerifyReport collects the outcome of verifying an artifact pair.
type VerifyReport struct {
	Issues []Issue
}

// OK reports whether every check passed.
func (r VerifyReport) OK() bool {
	return len(r.Issues) == 0
}

// Err returns nil when the report is clean, or a single error naming every
// failed check.
func (r VerifyReport) Err() error {
	if r.OK() {
		return nil
	}
	details := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		details = append(details, fmt.Sprintf("%s: %s", issue.Check, issue.Detail))
	}
	return fmt.Errorf("artifact verification failed: %s", strings.Join(details, "; "))
}

func (r *VerifyReport) add(check, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Check: check, Detail: fmt.Sprintf(format, args...)})
}

// VerifyPair runs the consumer-facing consistency checks over an artifact
// pair: identical identifier sets, non-empty simple names, detailed records
// carrying at least a name, and metadata counts matching map cardinality.
func VerifyPair(simple players.SimpleExport, detailed players.DetailedExport) VerifyReport {
	var report VerifyReport

	for id := range simple.Players {
		if _, ok := detailed.Players[id]; !ok {
			report.add("key_parity", "id %s present in simple but missing from detailed", id)
		}
	}
	for id := range detailed.Players {
		if _, ok := simple.Players[id]; !ok {
			report.add("key_parity", "id %s present in detailed but missing from simple", id)
		}
	}

	for id, name := range simple.Players {
		if strings.TrimSpace(name) == "" {
			report.add("simple_name", "id %s has an empty display name", id)
		}
	}
	for id, rec := range detailed.Players {
		if strings.TrimSpace(rec.Name) == "" {
			report.add("detailed_name", "id %s has an empty name field", id)
		}
	}

	if simple.Metadata.TotalPlayers != len(simple.Players) {
		report.add("simple_count", "metadata says %d players, map holds %d", simple.Metadata.TotalPlayers, len(simple.Players))
	}
	if detailed.Metadata.TotalPlayers != len(detailed.Players) {
		report.add("detailed_count", "metadata says %d players, map holds %d", detailed.Metadata.TotalPlayers, len(detailed.Players))
	}

	if simple.Metadata.GeneratedAt.IsZero() {
		report.add("simple_generated_at", "missing generation timestamp")
	}
	if detailed.Metadata.GeneratedAt.IsZero() {
		report.add("detailed_generated_at", "missing generation timestamp")
	}

	return report
}

// VerifyDir loads the artifact pair from dir and verifies it. Used by the
// validate CLI against checked-in or freshly written files.
func VerifyDir(dir string) (VerifyReport, error) {
	store := NewFSStore(dir)
	detailed, err := store.LoadDetailed()
	if err != nil {
		return VerifyReport{}, fmt.Errorf("load %s: %w", DetailedArtifact, err)
	}
	simple, err := store.LoadSimple()
	if err != nil {
		return VerifyReport{}, fmt.Errorf("load %s: %w", SimpleArtifact, err)
	}
	return VerifyPair(simple, detailed), nil
}
