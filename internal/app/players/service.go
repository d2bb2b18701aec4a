package players

import domain "github.com/JamesExley95/sleeper-player-database/internal/domain/players"

// Store defines the contract for persisting and retrieving players.
type Store interface {
	ListPlayers() []domain.Player
	GetPlayer(id string) (domain.Player, bool)
	SetPlayers([]domain.Player)
	Count() int
}

// Service coordinates player operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns the current set of players.
func (s *Service) Players() []domain.Player {
	return s.store.ListPlayers()
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id string) (domain.Player, bool) {
	return s.store.GetPlayer(id)
}

// ReplacePlayers swaps the in-memory players with a new snapshot.
func (s *Service) ReplacePlayers(items []domain.Player) {
	s.store.SetPlayers(items)
}

// Count returns the number of players currently held.
func (s *Service) Count() int {
	return s.store.Count()
}
