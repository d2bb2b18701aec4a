// Package teststubs holds shared test doubles for providers, writers, and
// journals.
package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
	"github.com/JamesExley95/sleeper-player-database/internal/exports"
	"github.com/JamesExley95/sleeper-player-database/internal/journal"
)

// StubPlayerProvider is a test double for providers.PlayerProvider.
type StubPlayerProvider struct {
	Players []players.Player
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}

	notifyOnce sync.Once
}

// FetchPlayers returns the configured players and error while tracking calls.
func (s *StubPlayerProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	return s.Players, s.Err
}

// StubADPProvider is a test double for providers.ADPProvider.
type StubADPProvider struct {
	ADP   map[string]players.ADP
	Err   error
	Calls atomic.Int32
}

// FetchADP returns the configured entries and error while tracking calls.
func (s *StubADPProvider) FetchADP(ctx context.Context) (map[string]players.ADP, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.ADP, s.Err
}

// StubArtifactWriter records written payloads for verification in tests.
type StubArtifactWriter struct {
	mu       sync.Mutex
	Exports  []players.DetailedExport
	Insights []any
	WriteErr error
}

// WritePlayerArtifacts records the export.
func (w *StubArtifactWriter) WritePlayerArtifacts(export players.DetailedExport) (exports.WriteResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.WriteErr != nil {
		return exports.WriteResult{}, w.WriteErr
	}
	w.Exports = append(w.Exports, export)
	return exports.WriteResult{
		Players:         export.Metadata.TotalPlayers,
		DetailedChanged: true,
		SimpleChanged:   true,
	}, nil
}

// WriteInsights records the insights payload.
func (w *StubArtifactWriter) WriteInsights(payload any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.WriteErr != nil {
		return w.WriteErr
	}
	w.Insights = append(w.Insights, payload)
	return nil
}

// LastExport returns the most recent export, if any.
func (w *StubArtifactWriter) LastExport() (players.DetailedExport, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.Exports) == 0 {
		return players.DetailedExport{}, false
	}
	return w.Exports[len(w.Exports)-1], true
}

// StubJournal records journal entries in memory.
type StubJournal struct {
	mu      sync.Mutex
	Entries []journal.Entry
	Err     error
}

// Record appends the entry.
func (s *StubJournal) Record(ctx context.Context, e journal.Entry) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Entries = append(s.Entries, e)
	return nil
}

// Recorded returns a copy of the recorded entries.
func (s *StubJournal) Recorded() []journal.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]journal.Entry, len(s.Entries))
	copy(out, s.Entries)
	return out
}
