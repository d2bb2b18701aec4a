package store

import (
	"sync"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

// MemoryStore keeps a thread-safe snapshot of players in memory. The set is
// replaced wholesale on each refresh, matching the artifact lifecycle.
type MemoryStore struct {
	mu      sync.RWMutex
	players map[string]players.Player
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[string]players.Player),
	}
}

// ListPlayers returns a copy of the current player slice.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p)
	}
	return result
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	return p, ok
}

// SetPlayers replaces the existing players with a new snapshot.
func (s *MemoryStore) SetPlayers(items []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[string]players.Player, len(items))
	for _, p := range items {
		s.players[p.ID] = p
	}
}

// Count returns the current number of players.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
