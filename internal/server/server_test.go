package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/JamesExley95/sleeper-player-database/internal/config"
	domain "github.com/JamesExley95/sleeper-player-database/internal/domain/players"
	"github.com/JamesExley95/sleeper-player-database/internal/exports"
	"github.com/JamesExley95/sleeper-player-database/internal/journal"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Provider = "fixture"
	cfg.Exports.Dir = t.TempDir()
	cfg.Journal.Path = filepath.Join(t.TempDir(), "journal.db")
	cfg.Metrics.Enabled = false
	cfg.RatePerMinute = 0
	return cfg
}

func TestNewWiresEverything(t *testing.T) {
	s := New(testConfig(t), nil)

	if s.refresher == nil {
		t.Fatal("refresher not wired")
	}
	if s.httpServer == nil {
		t.Fatal("http server not wired")
	}
	if s.journal == nil {
		t.Fatal("journal not wired")
	}
	if s.Handler() == nil {
		t.Fatal("handler not exposed")
	}
	t.Cleanup(func() { _ = s.journal.Close() })
}

func TestRefreshThenServe(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, nil)
	t.Cleanup(func() { _ = s.journal.Close() })

	if err := s.refresher.RefreshOnce(context.Background()); err != nil {
		t.Fatalf("RefreshOnce: %v", err)
	}

	// The artifact pair lands on disk and passes verification.
	report, err := exports.VerifyDir(cfg.Exports.Dir)
	if err != nil {
		t.Fatalf("VerifyDir: %v", err)
	}
	if !report.OK() {
		t.Fatalf("artifacts failed verification: %v", report.Issues)
	}

	// The HTTP surface serves the same data.
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /players = %d, want 200", rec.Code)
	}
	var payload domain.DetailedExport
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Metadata.Source != "fixture" {
		t.Errorf("Source = %q, want fixture", payload.Metadata.Source)
	}
	if len(payload.Players) != payload.Metadata.TotalPlayers {
		t.Errorf("count mismatch: %d entries, metadata %d", len(payload.Players), payload.Metadata.TotalPlayers)
	}

	// Enrichment from the fixture ADP set made it through.
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/1001", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /players/1001 = %d, want 200", rec.Code)
	}
	var p domain.Player
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ADPOverall == 0 {
		t.Errorf("fixture QB should carry ADP enrichment: %+v", p)
	}

	// Insights are on by default and should be fetchable as a raw artifact.
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/ai_insights.json", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /files/ai_insights.json = %d, want 200", rec.Code)
	}
}

func TestNewSeedsStatusFromJournal(t *testing.T) {
	cfg := testConfig(t)
	started := time.Date(2026, 8, 27, 5, 30, 0, 0, time.UTC)

	// A previous process left a successful refresh in the journal.
	jr, err := journal.Open(cfg.Journal.Path, cfg.Journal.Keep)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	entry := journal.Entry{StartedAt: started, Players: 5, Outcome: journal.OutcomeOK}
	if err := jr.Record(context.Background(), entry); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := jr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s := New(cfg, nil)
	t.Cleanup(func() { _ = s.journal.Close() })

	status := s.refresher.Status()
	if !status.LastSuccess.Equal(started) {
		t.Errorf("LastSuccess = %v, want journaled %v", status.LastSuccess, started)
	}
	if status.LastPlayerCount != 5 {
		t.Errorf("LastPlayerCount = %d, want 5", status.LastPlayerCount)
	}

	// Memory-served payloads now carry the journaled timestamp instead of
	// a fresh clock reading.
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /players = %d, want 200", rec.Code)
	}
	var payload domain.DetailedExport
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Metadata.GeneratedAt.Equal(started) {
		t.Errorf("GeneratedAt = %v, want journaled %v", payload.Metadata.GeneratedAt, started)
	}
}

func TestReadyFlipsAfterRefresh(t *testing.T) {
	s := New(testConfig(t), nil)
	t.Cleanup(func() { _ = s.journal.Close() })

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /ready before refresh = %d, want 503", rec.Code)
	}

	if err := s.refresher.RefreshOnce(context.Background()); err != nil {
		t.Fatalf("RefreshOnce: %v", err)
	}

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /ready after refresh = %d, want 200", rec.Code)
	}
}

func TestStatusIncludesJournalHistory(t *testing.T) {
	s := New(testConfig(t), nil)
	t.Cleanup(func() { _ = s.journal.Close() })

	if err := s.refresher.RefreshOnce(context.Background()); err != nil {
		t.Fatalf("RefreshOnce: %v", err)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["recent_refreshes"]; !ok {
		t.Errorf("status body missing refresh history: %v", body)
	}
}

func TestAdminRefreshEndpoint(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminToken = "secret"
	s := New(cfg, nil)
	t.Cleanup(func() { _ = s.journal.Close() })

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/refresh", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated admin refresh = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin refresh = %d, want 200", rec.Code)
	}

	if _, err := exports.NewFSStore(cfg.Exports.Dir).LoadDetailed(); err != nil {
		t.Errorf("admin refresh should have published artifacts: %v", err)
	}
}

func TestOpenJournalFallsBackToNil(t *testing.T) {
	cfg := testConfig(t)
	cfg.Journal.Path = ""
	if jr := openJournal(cfg, nil); jr != nil {
		t.Error("empty path should disable the journal")
	}
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Port = "0" // any free port
	s := New(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
