package players

import (
	"testing"

	domain "github.com/JamesExley95/sleeper-player-database/internal/domain/players"
	"github.com/JamesExley95/sleeper-player-database/internal/store"
)

func TestServiceRoundtrip(t *testing.T) {
	svc := NewService(store.NewMemoryStore())

	if got := svc.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0 before first refresh", got)
	}

	svc.ReplacePlayers([]domain.Player{
		{ID: "4046", Name: "Patrick Mahomes", Position: "QB", Team: "KC"},
		{ID: "DET", Name: "Detroit Lions", Position: "DEF", Team: "DET"},
	})

	if got := svc.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if got := len(svc.Players()); got != 2 {
		t.Errorf("len(Players()) = %d, want 2", got)
	}

	p, ok := svc.PlayerByID("DET")
	if !ok {
		t.Fatal("expected defense record")
	}
	if p.Position != "DEF" {
		t.Errorf("Position = %q, want DEF", p.Position)
	}

	if _, ok := svc.PlayerByID("unknown"); ok {
		t.Error("unexpected hit for unknown id")
	}
}
