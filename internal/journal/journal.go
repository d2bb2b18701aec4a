// Package journal records refresh outcomes in a local sqlite database. The
// published artifacts stay versionless; the journal only tracks the process
// so the status endpoint can answer "when did this last work".
package journal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS refreshes (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at  TEXT    NOT NULL,
	duration_ms INTEGER NOT NULL,
	players     INTEGER NOT NULL,
	adp_matches INTEGER NOT NULL,
	outcome     TEXT    NOT NULL,
	error       TEXT    NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_refreshes_started_at ON refreshes (started_at DESC);
`

// Outcome values stored per refresh row.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Entry is one refresh attempt.
type Entry struct {
	ID         int64     `db:"id" json:"id"`
	StartedAt  time.Time `db:"started_at" json:"started_at"`
	DurationMS int64     `db:"duration_ms" json:"duration_ms"`
	Players    int       `db:"players" json:"players"`
	ADPMatches int       `db:"adp_matches" json:"adp_matches"`
	Outcome    string    `db:"outcome" json:"outcome"`
	Error      string    `db:"error" json:"error,omitempty"`
}

// Journal persists refresh entries. A nil Journal is a no-op, so callers
// can run without one configured.
type Journal struct {
	db   *sqlx.DB
	keep int
}

// Open creates or opens the journal database at path and applies the schema.
func Open(path string, keep int) (*Journal, error) {
	if path == "" {
		return nil, fmt.Errorf("journal path required")
	}
	if keep <= 0 {
		keep = 200
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("journal dir: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal schema: %w", err)
	}
	return &Journal{db: db, keep: keep}, nil
}

// Record inserts one refresh entry and prunes rows beyond the retention
// bound.
func (j *Journal) Record(ctx context.Context, e Entry) error {
	if j == nil || j.db == nil {
		return nil
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO refreshes (started_at, duration_ms, players, adp_matches, outcome, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.StartedAt.UTC().Format(time.RFC3339Nano),
		e.DurationMS, e.Players, e.ADPMatches, e.Outcome, e.Error,
	)
	if err != nil {
		return fmt.Errorf("journal insert: %w", err)
	}
	return j.prune(ctx)
}

// Recent returns the latest n entries, newest first.
func (j *Journal) Recent(ctx context.Context, n int) ([]Entry, error) {
	if j == nil || j.db == nil {
		return nil, nil
	}
	if n <= 0 {
		n = 10
	}
	rows, err := j.db.QueryxContext(ctx,
		`SELECT id, started_at, duration_ms, players, adp_matches, outcome, error
		 FROM refreshes ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("journal query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e   Entry
			raw string
		)
		if err := rows.Scan(&e.ID, &raw, &e.DurationMS, &e.Players, &e.ADPMatches, &e.Outcome, &e.Error); err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			e.StartedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LastSuccess returns the most recent entry with an ok outcome, if any.
func (j *Journal) LastSuccess(ctx context.Context) (Entry, bool, error) {
	if j == nil || j.db == nil {
		return Entry{}, false, nil
	}
	entries, err := j.recentByOutcome(ctx, OutcomeOK, 1)
	if err != nil || len(entries) == 0 {
		return Entry{}, false, err
	}
	return entries[0], true, nil
}

func (j *Journal) recentByOutcome(ctx context.Context, outcome string, n int) ([]Entry, error) {
	rows, err := j.db.QueryxContext(ctx,
		`SELECT id, started_at, duration_ms, players, adp_matches, outcome, error
		 FROM refreshes WHERE outcome = ? ORDER BY id DESC LIMIT ?`, outcome, n)
	if err != nil {
		return nil, fmt.Errorf("journal query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e   Entry
			raw string
		)
		if err := rows.Scan(&e.ID, &raw, &e.DurationMS, &e.Players, &e.ADPMatches, &e.Outcome, &e.Error); err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			e.StartedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (j *Journal) prune(ctx context.Context) error {
	_, err := j.db.ExecContext(ctx,
		`DELETE FROM refreshes WHERE id NOT IN (
			SELECT id FROM refreshes ORDER BY id DESC LIMIT ?
		)`, j.keep)
	if err != nil {
		return fmt.Errorf("journal prune: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}
