package refresher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/JamesExley95/sleeper-player-database/internal/analysis"
	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
	"github.com/JamesExley95/sleeper-player-database/internal/exports"
	"github.com/JamesExley95/sleeper-player-database/internal/journal"
	"github.com/JamesExley95/sleeper-player-database/internal/logging"
	"github.com/JamesExley95/sleeper-player-database/internal/metrics"
	"github.com/JamesExley95/sleeper-player-database/internal/providers"
)

const defaultInterval = 24 * time.Hour

// RosterStore receives the refreshed player set.
type RosterStore interface {
	SetPlayers([]players.Player)
}

// ArtifactWriter persists the published artifacts.
type ArtifactWriter interface {
	WritePlayerArtifacts(export players.DetailedExport) (exports.WriteResult, error)
	WriteInsights(payload any) error
}

// JournalRecorder records refresh outcomes.
type JournalRecorder interface {
	Record(ctx context.Context, e journal.Entry) error
}

// Config controls refresh behavior.
type Config struct {
	Interval time.Duration
	// Source is recorded in artifact metadata (e.g. "sleeper").
	Source          string
	InsightsEnabled bool
}

// Refresher fetches the player set on an interval, enriches it with ADP
// data, replaces the in-memory store, and rewrites the published artifacts.
type Refresher struct {
	provider providers.PlayerProvider
	adp      providers.ADPProvider
	store    RosterStore
	writer   ArtifactWriter
	journal  JournalRecorder
	logger   *slog.Logger
	metrics  *metrics.Recorder
	cfg      Config
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastError           string    `json:"last_error,omitempty"`
	LastAttempt         time.Time `json:"last_attempt,omitempty"`
	LastSuccess         time.Time `json:"last_success,omitempty"`
	LastPlayerCount     int       `json:"last_player_count"`
}

// IsReady reports whether the refresher has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher with sane defaults. The ADP provider and
// journal may be nil.
func New(provider providers.PlayerProvider, adp providers.ADPProvider, store RosterStore, writer ArtifactWriter, jr JournalRecorder, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Refresher {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Source == "" {
		cfg.Source = "unknown"
	}
	return &Refresher{
		provider: provider,
		adp:      adp,
		store:    store,
		writer:   writer,
		journal:  jr,
		logger:   logger,
		metrics:  recorder,
		cfg:      cfg,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Seed primes the status with a previously journaled success so that
// payloads served before the first refresh of this process carry an honest
// timestamp. A zero time is ignored, and a success already recorded in this
// process is never overwritten.
func (r *Refresher) Seed(lastSuccess time.Time, playerCount int) {
	if lastSuccess.IsZero() {
		return
	}
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	if !r.status.LastSuccess.IsZero() {
		return
	}
	r.status.LastSuccess = lastSuccess
	r.status.LastPlayerCount = playerCount
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.cfg.Interval)

	go func() {
		r.logInfo("refresher started", "interval", r.cfg.Interval.String())
		// Initial refresh to populate artifacts on boot.
		r.RefreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				r.logInfo("refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				r.logInfo("refresher stopped")
				return
			case <-r.ticker.C:
				r.RefreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

// RefreshOnce performs a single fetch-and-publish cycle. It is also called
// by the admin refresh endpoint.
func (r *Refresher) RefreshOnce(ctx context.Context) error {
	start := r.now()
	r.recordAttempt(start)

	items, adpMatches, err := r.fetch(ctx)
	if err == nil {
		err = r.publish(items)
	}

	duration := time.Since(start)
	r.metrics.RecordRefreshCycle(duration, len(items), err)
	r.record(ctx, start, duration, len(items), adpMatches, err)

	if err != nil {
		r.logError("refresh failed", err, logging.FieldDurationMS, duration.Milliseconds())
		r.recordFailure(err, start)
		return err
	}

	r.recordSuccess(start, len(items))
	r.logInfo("refresh complete",
		logging.FieldCount, len(items),
		"adp_matches", adpMatches,
		logging.FieldDurationMS, duration.Milliseconds(),
	)
	return nil
}

func (r *Refresher) fetch(ctx context.Context) ([]players.Player, int, error) {
	items, err := r.provider.FetchPlayers(ctx)
	if err != nil {
		return nil, 0, err
	}

	adpMatches := 0
	if r.adp != nil {
		adpData, adpErr := r.adp.FetchADP(ctx)
		if adpErr != nil {
			// ADP is enrichment; a failed fetch degrades the artifacts but
			// must not block the refresh.
			r.logWarn("adp fetch failed, continuing without enrichment", "err", adpErr)
		} else {
			adpMatches = mergeADP(items, adpData)
		}
	}
	return items, adpMatches, nil
}

func (r *Refresher) publish(items []players.Player) error {
	if r.store != nil {
		r.store.SetPlayers(items)
	}
	if r.writer == nil {
		return nil
	}

	export := players.NewDetailedExport(r.now(), r.cfg.Source, items)
	result, err := r.writer.WritePlayerArtifacts(export)
	if err != nil {
		return err
	}
	if !result.DetailedChanged && !result.SimpleChanged {
		r.logInfo("artifacts unchanged", logging.FieldCount, result.Players)
	}

	if r.cfg.InsightsEnabled {
		report := analysis.Analyze(r.now(), items)
		if err := r.writer.WriteInsights(report); err != nil {
			// Insights are derived; losing one cycle is not fatal.
			r.logWarn("insights write failed", "err", err)
		}
	}
	return nil
}

// mergeADP joins ADP entries onto players by normalized name and returns
// the number of matches.
func mergeADP(items []players.Player, adpData map[string]players.ADP) int {
	if len(adpData) == 0 {
		return 0
	}
	matches := 0
	for i := range items {
		adp, ok := adpData[players.NormalizeName(items[i].Name)]
		if !ok {
			continue
		}
		items[i].ADPOverall = adp.Overall
		items[i].ADPPosition = adp.PositionRank
		matches++
	}
	return matches
}

func (r *Refresher) record(ctx context.Context, start time.Time, duration time.Duration, count, adpMatches int, err error) {
	if r.journal == nil {
		return
	}
	entry := journal.Entry{
		StartedAt:  start,
		DurationMS: duration.Milliseconds(),
		Players:    count,
		ADPMatches: adpMatches,
		Outcome:    journal.OutcomeOK,
	}
	if err != nil {
		entry.Outcome = journal.OutcomeFailed
		entry.Error = err.Error()
		entry.Players = 0
	}
	if jErr := r.journal.Record(ctx, entry); jErr != nil {
		r.logWarn("journal record failed", "err", jErr)
	}
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Refresher) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}

func (r *Refresher) logError(msg string, err error, args ...any) {
	if r.logger != nil {
		r.logger.Error(msg, append(args, "error", err)...)
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time, count int) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
	r.status.LastPlayerCount = count
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the refresher's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
