package exports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

// Writer persists the published artifacts with atomic wholesale
// replacement. Files are never mutated in place: a temp file is written
// and renamed over the target, so a consumer's GET sees either the old
// artifact or the new one.
type Writer struct {
	basePath string
}

// WriteResult reports what a write actually touched.
type WriteResult struct {
	Players         int
	DetailedChanged bool
	SimpleChanged   bool
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WritePlayerArtifacts derives the simple view from the detailed export,
// verifies the pair, and replaces both files plus the manifest. Unchanged
// files are left untouched so hosting-side revision logs stay quiet.
func (w *Writer) WritePlayerArtifacts(export players.DetailedExport) (WriteResult, error) {
	if w == nil {
		return WriteResult{}, fmt.Errorf("artifact writer not configured")
	}
	if export.Metadata.GeneratedAt.IsZero() {
		return WriteResult{}, fmt.Errorf("export missing generation timestamp")
	}

	simple := export.Simple()
	if report := VerifyPair(simple, export); !report.OK() {
		return WriteResult{}, fmt.Errorf("refusing to publish: %w", report.Err())
	}

	if err := os.MkdirAll(w.basePath, 0o755); err != nil {
		return WriteResult{}, err
	}

	detailedChanged, err := w.writeArtifact(DetailedArtifact, export)
	if err != nil {
		return WriteResult{}, err
	}
	simpleChanged, err := w.writeArtifact(SimpleArtifact, simple)
	if err != nil {
		return WriteResult{}, err
	}

	result := WriteResult{
		Players:         export.Metadata.TotalPlayers,
		DetailedChanged: detailedChanged,
		SimpleChanged:   simpleChanged,
	}
	return result, w.updatePlayersManifest(export)
}

// WriteInsights replaces the analysis artifact.
func (w *Writer) WriteInsights(payload any) error {
	if w == nil {
		return fmt.Errorf("artifact writer not configured")
	}
	if err := os.MkdirAll(w.basePath, 0o755); err != nil {
		return err
	}
	if _, err := w.writeArtifact(InsightsArtifact, payload); err != nil {
		return err
	}
	return w.updateInsightsManifest()
}

// writeArtifact marshals payload and atomically replaces the named file.
// Returns false when the on-disk bytes already match.
func (w *Writer) writeArtifact(name string, payload any) (bool, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return false, err
	}
	data = append(data, '\n')

	target := filepath.Join(w.basePath, name)
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	if err := renameio.WriteFile(target, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func (w *Writer) updatePlayersManifest(export players.DetailedExport) error {
	m, _ := readManifest(filepath.Join(w.basePath, ManifestName))
	m.Players.TotalPlayers = export.Metadata.TotalPlayers
	m.Players.LastRefreshed = time.Now().UTC()
	m.Players.Artifacts = []string{DetailedArtifact, SimpleArtifact}
	return writeManifest(w.basePath, m)
}

func (w *Writer) updateInsightsManifest() error {
	m, _ := readManifest(filepath.Join(w.basePath, ManifestName))
	m.Insights.LastRefreshed = time.Now().UTC()
	return writeManifest(w.basePath, m)
}
