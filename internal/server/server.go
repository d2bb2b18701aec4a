package server

import (
	"context"
	"log/slog"
	"net/http"

	appplayers "github.com/JamesExley95/sleeper-player-database/internal/app/players"
	"github.com/JamesExley95/sleeper-player-database/internal/config"
	"github.com/JamesExley95/sleeper-player-database/internal/exports"
	httpserver "github.com/JamesExley95/sleeper-player-database/internal/http"
	"github.com/JamesExley95/sleeper-player-database/internal/http/handlers"
	"github.com/JamesExley95/sleeper-player-database/internal/http/middleware"
	"github.com/JamesExley95/sleeper-player-database/internal/journal"
	"github.com/JamesExley95/sleeper-player-database/internal/metrics"
	"github.com/JamesExley95/sleeper-player-database/internal/refresher"
	"github.com/JamesExley95/sleeper-player-database/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the refresh loop, the HTTP surface, and their lifecycles.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	playerService *appplayers.Service
	journal       *journal.Journal
	refresher     *refresher.Refresher
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	factory := newProviderFactory(logger, recorder)
	provider, providerName := factory.buildPlayers(cfg)
	adpProvider := factory.buildADP(cfg)

	memoryStore := store.NewMemoryStore()
	playerService := appplayers.NewService(memoryStore)
	writer := exports.NewWriter(cfg.Exports.Dir)

	jr := openJournal(cfg, logger)

	ref := refresher.New(provider, adpProvider, memoryStore, writer, jr, logger, recorder, refresher.Config{
		Interval:        cfg.RefreshInterval,
		Source:          providerName,
		InsightsEnabled: cfg.Insights.Enabled,
	})
	if entry, ok, err := jr.LastSuccess(context.Background()); err == nil && ok {
		// Carry the last journaled success across restarts so status and
		// memory-served payloads are not stamped with zero timestamps.
		ref.Seed(entry.StartedAt, entry.Players)
	}

	httpSrv := buildHTTPServer(cfg, playerService, jr, ref, providerName, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		playerService: playerService,
		journal:       jr,
		refresher:     ref,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func openJournal(cfg config.Config, logger *slog.Logger) *journal.Journal {
	if cfg.Journal.Path == "" {
		return nil
	}
	jr, err := journal.Open(cfg.Journal.Path, cfg.Journal.Keep)
	if err != nil {
		// The journal is observability, not correctness; run without it.
		if logger != nil {
			logger.Warn("journal unavailable, continuing without refresh history", "err", err)
		}
		return nil
	}
	return jr
}

func buildHTTPServer(cfg config.Config, svc *appplayers.Service, jr *journal.Journal, ref *refresher.Refresher, providerName string, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var statusFn func() refresher.Status
	if ref != nil {
		statusFn = ref.Status
	}

	files := exports.NewFSStore(cfg.Exports.Dir)
	var journalReader handlers.JournalReader
	if jr != nil {
		journalReader = jr
	}
	handler := handlers.NewHandler(svc, files, cfg.Exports.Dir, providerName, journalReader, logger, statusFn)
	admin := handlers.NewAdminHandler(ref, cfg.AdminToken, logger)
	router := httpserver.NewRouter(handler, admin, cfg.RatePerMinute)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the refresher and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.refresher.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.refresher.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop refresher", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if err := s.journal.Close(); err != nil && s.logger != nil {
		s.logger.Warn("journal close failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
