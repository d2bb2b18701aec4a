// Package http assembles the service router.
package http

import (
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/JamesExley95/sleeper-player-database/internal/http/handlers"
)

// NewRouter registers all routes. ratePerMinute caps the public surface
// per client IP; zero disables limiting.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler, ratePerMinute int) nethttp.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Group(func(r chi.Router) {
		if ratePerMinute > 0 {
			r.Use(httprate.LimitByIP(ratePerMinute, time.Minute))
		}
		r.Get("/players", h.PlayersDetailed)
		r.Get("/players/simple", h.PlayersSimple)
		r.Get("/players/{id}", h.PlayerByID)
		r.Get("/status", h.Status)
		r.Get("/files/{name}", h.Artifact)
	})

	if admin.Enabled() {
		r.Post("/admin/refresh", admin.Refresh)
	}

	return r
}
