package exports

import "path/filepath"

// Artifact file names, fixed so consumers can fetch them by static URL.
const (
	DetailedArtifact = "players.json"
	SimpleArtifact   = "players_simple.json"
	InsightsArtifact = "ai_insights.json"
	ManifestName     = "manifest.json"
)

// ArtifactPath resolves a known artifact name under dir. The second return
// is false for anything that is not a published artifact, so handlers can
// never be walked outside the export root.
func ArtifactPath(dir, name string) (string, bool) {
	switch name {
	case DetailedArtifact, SimpleArtifact, InsightsArtifact, ManifestName:
		return filepath.Join(dir, name), true
	default:
		return "", false
	}
}
