package exports

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

// Store defines how published artifacts are loaded back.
type Store interface {
	LoadDetailed() (players.DetailedExport, error)
	LoadSimple() (players.SimpleExport, error)
}

// FSStore loads artifacts from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed artifact store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadDetailed reads the detailed artifact from disk.
func (s *FSStore) LoadDetailed() (players.DetailedExport, error) {
	var payload players.DetailedExport
	if err := s.decode(DetailedArtifact, &payload); err != nil {
		return players.DetailedExport{}, err
	}
	return payload, nil
}

// LoadSimple reads the simple artifact from disk.
func (s *FSStore) LoadSimple() (players.SimpleExport, error) {
	var payload players.SimpleExport
	if err := s.decode(SimpleArtifact, &payload); err != nil {
		return players.SimpleExport{}, err
	}
	return payload, nil
}

// LoadManifest reads the manifest from disk.
func (s *FSStore) LoadManifest() (Manifest, error) {
	var m Manifest
	if err := s.decode(ManifestName, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (s *FSStore) decode(name string, payload any) error {
	if s == nil {
		return errors.New("artifact store not configured")
	}
	f, err := os.Open(filepath.Join(s.basePath, name))
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
