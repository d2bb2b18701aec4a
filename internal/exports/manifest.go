package exports

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
)

// Manifest tracks artifact metadata for the export directory.
type Manifest struct {
	Version     int          `json:"version"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Players     PlayersMeta  `json:"players"`
	Insights    InsightsMeta `json:"insights"`
}

type PlayersMeta struct {
	TotalPlayers  int       `json:"totalPlayers"`
	LastRefreshed time.Time `json:"lastRefreshed"`
	Artifacts     []string  `json:"artifacts"`
}

type InsightsMeta struct {
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version: 1,
		Players: PlayersMeta{
			Artifacts: []string{DetailedArtifact, SimpleArtifact},
		},
	}
}

func readManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(filepath.Join(basePath, ManifestName), data, 0o644)
}
