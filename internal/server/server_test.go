package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"virtualtd-service/internal/config"
	"virtualtd-service/internal/domain"
	"virtualtd-service/internal/metrics"
)

func testConfig() config.Config {
	return config.Config{
		Port: "0",
		Sim: config.SimConfig{
			LeagueStrength:    50,
			CompetitivenessSD: 10,
			Teams:             2,
			Iterations:        4,
			Seed:              77,
			WindowStep:        0.5,
			MarketSize:        10,
			MyTeamIndex:       0,
			StarterShare:      60,
			SubShare:          30,
			AcademyShare:      10,
		},
		Metrics:   config.MetricsConfig{Enabled: false},
		Snapshots: config.SnapshotsConfig{Enabled: false},
	}
}

func TestNewConstructsServer(t *testing.T) {
	srv, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
}

func TestServerServesStandingsAndSquad(t *testing.T) {
	srv, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := srv.Runner().Advance(context.Background()); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	router := srv.Handler()

	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	readyRec := httptest.NewRecorder()
	router.ServeHTTP(readyRec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if readyRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /ready after a cycle, got %d", readyRec.Code)
	}

	standingsRec := httptest.NewRecorder()
	router.ServeHTTP(standingsRec, httptest.NewRequest(http.MethodGet, "/standings", nil))
	if standingsRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /standings, got %d", standingsRec.Code)
	}
	var table domain.StandingsResponse
	if err := json.NewDecoder(standingsRec.Body).Decode(&table); err != nil {
		t.Fatalf("failed to decode standings: %v", err)
	}
	if len(table.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(table.Teams))
	}
	if table.Teams[0].Rank != 1 {
		t.Fatalf("expected leader rank 1, got %d", table.Teams[0].Rank)
	}

	squadRec := httptest.NewRecorder()
	router.ServeHTTP(squadRec, httptest.NewRequest(http.MethodGet, "/squad", nil))
	if squadRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /squad, got %d", squadRec.Code)
	}
	var squad domain.PlayersResponse
	if err := json.NewDecoder(squadRec.Body).Decode(&squad); err != nil {
		t.Fatalf("failed to decode squad: %v", err)
	}
	if squad.Count == 0 {
		t.Fatalf("expected managed squad to have players")
	}
	for _, row := range squad.Players {
		if !row.MyTeam {
			t.Fatalf("squad returned a row for %s outside the managed team", row.Name)
		}
	}
}

func TestBuildMetricsFallsBackOnSetupError(t *testing.T) {
	orig := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("exporter unavailable")
	}
	defer func() { metricsSetup = orig }()

	rec, metricsSrv, shutdown := buildMetrics(testConfig(), nil)
	if rec == nil {
		t.Fatalf("expected fallback recorder")
	}
	if metricsSrv != nil || shutdown != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestBuildMetricsSkipsServerWhenDisabled(t *testing.T) {
	_, metricsSrv, shutdown := buildMetrics(testConfig(), nil)
	if metricsSrv != nil {
		t.Fatalf("expected no metrics server when metrics are disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown hook from setup")
	}
}

func TestRunShutsDownOnCancel(t *testing.T) {
	srv, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	srv.httpServer = &stubHTTPServer{addr: ":0"}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()
	cancel()
	<-done

	stub := srv.httpServer.(*stubHTTPServer)
	if stub.shutdownCalls != 1 {
		t.Fatalf("expected 1 shutdown call, got %d", stub.shutdownCalls)
	}
}

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return http.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return nil
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}
