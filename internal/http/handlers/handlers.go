package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	appplayers "github.com/JamesExley95/sleeper-player-database/internal/app/players"
	domain "github.com/JamesExley95/sleeper-player-database/internal/domain/players"
	"github.com/JamesExley95/sleeper-player-database/internal/exports"
	"github.com/JamesExley95/sleeper-player-database/internal/journal"
	"github.com/JamesExley95/sleeper-player-database/internal/logging"
	"github.com/JamesExley95/sleeper-player-database/internal/refresher"
)

const recentJournalEntries = 10

type nowFunc func() time.Time

// JournalReader supplies recent refresh history for the status endpoint.
type JournalReader interface {
	Recent(ctx context.Context, n int) ([]journal.Entry, error)
}

// Handler wires the public HTTP routes to the player service and the
// published artifacts.
type Handler struct {
	svc      *appplayers.Service
	files    *exports.FSStore
	exported string // export directory for raw file serving
	source   string
	journal  JournalReader
	logger   *slog.Logger
	now      nowFunc
	statusFn func() refresher.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *appplayers.Service, files *exports.FSStore, exportDir, source string, jr JournalReader, logger *slog.Logger, statusFn func() refresher.Status) *Handler {
	return &Handler{
		svc:      svc,
		files:    files,
		exported: exportDir,
		source:   source,
		journal:  jr,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// PlayersDetailed returns the detailed artifact payload. The published
// file is authoritative; memory is the fallback for a cold export dir.
func (h *Handler) PlayersDetailed(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if payload, err := h.files.LoadDetailed(); err == nil {
		logging.Info(logger, "served detailed players", logging.FieldCount, len(payload.Players), "origin", "artifact")
		writeJSON(w, http.StatusOK, payload, h.logger)
		return
	}

	payload := h.exportFromMemory()
	logging.Info(logger, "served detailed players", logging.FieldCount, len(payload.Players), "origin", "memory")
	writeJSON(w, http.StatusOK, payload, h.logger)
}

// PlayersSimple returns the simple artifact payload.
func (h *Handler) PlayersSimple(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if payload, err := h.files.LoadSimple(); err == nil {
		logging.Info(logger, "served simple players", logging.FieldCount, len(payload.Players), "origin", "artifact")
		writeJSON(w, http.StatusOK, payload, h.logger)
		return
	}

	payload := h.exportFromMemory().Simple()
	logging.Info(logger, "served simple players", logging.FieldCount, len(payload.Players), "origin", "memory")
	writeJSON(w, http.StatusOK, payload, h.logger)
}

// PlayerByID returns a specific player record if present.
func (h *Handler) PlayerByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	p, ok := h.svc.PlayerByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

// Status reports refresher health and recent journal history.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"players": h.svc.Count(),
	}
	if h.statusFn != nil {
		body["refresher"] = h.statusFn()
	}
	if h.journal != nil {
		entries, err := h.journal.Recent(r.Context(), recentJournalEntries)
		if err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "journal read failed", "err", err)
		} else if entries != nil {
			body["recent_refreshes"] = entries
		}
	}
	writeJSON(w, http.StatusOK, body, h.logger)
}

// Artifact serves a published artifact file verbatim, the same bytes an
// external consumer would fetch from the hosting platform.
func (h *Handler) Artifact(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	path, ok := exports.ArtifactPath(h.exported, name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown artifact", h.logger)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, path)
}

func (h *Handler) exportFromMemory() domain.DetailedExport {
	generatedAt := h.now()
	if h.statusFn != nil {
		if last := h.statusFn().LastSuccess; !last.IsZero() {
			generatedAt = last
		}
	}
	return domain.NewDetailedExport(generatedAt, h.source, h.svc.Players())
}
