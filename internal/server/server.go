package server

import (
	"context"
	"log/slog"
	"net/http"

	"virtualtd-service/internal/app/roster"
	"virtualtd-service/internal/app/standings"
	"virtualtd-service/internal/config"
	"virtualtd-service/internal/cycle"
	"virtualtd-service/internal/domain"
	"virtualtd-service/internal/gen"
	httpserver "virtualtd-service/internal/http"
	"virtualtd-service/internal/metrics"
	"virtualtd-service/internal/sim"
	"virtualtd-service/internal/snapshots"
)

var metricsSetup = metrics.Setup

// Server assembles the simulation engine, the cycle loop and the HTTP
// surface.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	simulator     *sim.LeagueSimulator
	standingsSvc  *standings.Service
	rosterSvc     *roster.Service
	runner        *cycle.Runner
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server: generated world, league simulator,
// cycle runner and handlers.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	rng, seed := gen.NewRNG(cfg.Sim.Seed)
	w, err := generateWorld(cfg.Sim, rng, seed, logger, recorder)
	if err != nil {
		return nil, err
	}

	simulator := sim.NewLeagueSimulator(w.league, sim.LeagueSimulatorConfig{
		MyTeam:     w.myTeam,
		Iterations: cfg.Sim.Iterations,
		WindowStep: cfg.Sim.WindowStep,
	}, rng, logger, recorder)

	instruction := domain.CoachInstruction{
		StarterShare: cfg.Sim.StarterShare,
		SubShare:     cfg.Sim.SubShare,
		AcademyShare: cfg.Sim.AcademyShare,
	}
	runner := cycle.New(simulator, buildSaver(cfg.Snapshots), instruction, w.market, logger, recorder, cfg.CycleInterval)

	standingsSvc := standings.NewService(simulator)
	rosterSvc := roster.NewService(simulator)
	httpSrv := buildHTTPServer(cfg, standingsSvc, rosterSvc, runner, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		simulator:     simulator,
		standingsSvc:  standingsSvc,
		rosterSvc:     rosterSvc,
		runner:        runner,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

func buildSaver(cfg config.SnapshotsConfig) snapshots.Saver {
	if !cfg.Enabled {
		return snapshots.NopSaver{}
	}
	return snapshots.NewWriter(cfg.Dir, cfg.Retention)
}

func buildHTTPServer(cfg config.Config, standingsSvc *standings.Service, rosterSvc *roster.Service, runner *cycle.Runner, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := httpserver.NewHandler(standingsSvc, rosterSvc, runner, cfg.AdminToken, logger)
	router := httpserver.NewRouter(handler)
	wrapped := httpserver.LoggingMiddleware(logger, httpserver.MetricsMiddleware(recorder, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
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

// Run starts the cycle loop and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.runner.Start(ctx)

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

	if err := s.runner.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop cycle runner", "error", err)
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
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

// Runner exposes the cycle runner (useful for tests).
func (s *Server) Runner() *cycle.Runner {
	return s.runner
}
