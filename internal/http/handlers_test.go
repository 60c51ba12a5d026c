package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"virtualtd-service/internal/app/roster"
	"virtualtd-service/internal/app/standings"
	"virtualtd-service/internal/cycle"
	"virtualtd-service/internal/domain"
)

type stubSource struct {
	league string
	myTeam string
	teams  []domain.TeamRow
	rows   []domain.PlayerRow
}

func (s *stubSource) LeagueName() string          { return s.league }
func (s *stubSource) Standings() []domain.TeamRow { return s.teams }
func (s *stubSource) MyTeam() string              { return s.myTeam }
func (s *stubSource) Players() []domain.PlayerRow { return s.rows }

func (s *stubSource) SquadRows() []domain.PlayerRow {
	var out []domain.PlayerRow
	for _, r := range s.rows {
		if r.MyTeam {
			out = append(out, r)
		}
	}
	return out
}

type stubController struct {
	status     cycle.Status
	advanceErr error
	advanced   int
}

func (c *stubController) Status() cycle.Status { return c.status }

func (c *stubController) Advance(context.Context) error {
	c.advanced++
	return c.advanceErr
}

func newTestHandler(controller *stubController, adminToken string) *Handler {
	source := &stubSource{
		league: "Test League",
		myTeam: "North FC",
		teams: []domain.TeamRow{
			{Name: "North FC", MyTeam: true, XPoints: 12, Rank: 1},
			{Name: "East FC", XPoints: 9, Rank: 2},
		},
		rows: []domain.PlayerRow{
			{Player: domain.Player{Name: "Abe Holt"}, Team: "North FC", MyTeam: true},
			{Player: domain.Player{Name: "Cal Vance"}, Team: "East FC"},
		},
	}
	return NewHandler(standings.NewService(source), roster.NewService(source), controller, adminToken, nil)
}

func readyController() *stubController {
	return &stubController{status: cycle.Status{
		RunID:       "run-1",
		Cycle:       2,
		LastSuccess: time.Now(),
	}}
}

func TestHealth(t *testing.T) {
	handler := newTestHandler(readyController(), "")
	rec := httptest.NewRecorder()
	handler.Health(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestReadyWhenCycling(t *testing.T) {
	handler := newTestHandler(readyController(), "")
	rec := httptest.NewRecorder()
	handler.Ready(rec, httptest.NewRequest(nethttp.MethodGet, "/ready", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var body readyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Ready || body.RunID != "run-1" || body.Cycle != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestReadyBeforeFirstCycle(t *testing.T) {
	handler := newTestHandler(&stubController{}, "")
	rec := httptest.NewRecorder()
	handler.Ready(rec, httptest.NewRequest(nethttp.MethodGet, "/ready", nil))

	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("status %d, want 503", rec.Code)
	}
}

func TestStandings(t *testing.T) {
	handler := newTestHandler(readyController(), "")
	rec := httptest.NewRecorder()
	handler.Standings(rec, httptest.NewRequest(nethttp.MethodGet, "/standings", nil))

	var body domain.StandingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.League != "Test League" || len(body.Teams) != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Teams[0].Rank != 1 {
		t.Fatalf("expected rank 1 first, got %+v", body.Teams[0])
	}
}

func TestPlayersWithTeamFilter(t *testing.T) {
	handler := newTestHandler(readyController(), "")
	rec := httptest.NewRecorder()
	handler.Players(rec, httptest.NewRequest(nethttp.MethodGet, "/players?team=East+FC", nil))

	var body domain.PlayersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || body.Players[0].Name != "Cal Vance" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestPlayerByName(t *testing.T) {
	handler := newTestHandler(readyController(), "")
	rec := httptest.NewRecorder()
	handler.PlayerByName(rec, httptest.NewRequest(nethttp.MethodGet, "/players/Abe%20Holt", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var body domain.PlayerRow
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Name != "Abe Holt" || body.Team != "North FC" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestPlayerByNameMisses(t *testing.T) {
	handler := newTestHandler(readyController(), "")

	rec := httptest.NewRecorder()
	handler.PlayerByName(rec, httptest.NewRequest(nethttp.MethodGet, "/players/Nobody", nil))
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.PlayerByName(rec, httptest.NewRequest(nethttp.MethodGet, "/players/", nil))
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestSquad(t *testing.T) {
	handler := newTestHandler(readyController(), "")
	rec := httptest.NewRecorder()
	handler.Squad(rec, httptest.NewRequest(nethttp.MethodGet, "/squad", nil))

	var body domain.PlayersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || body.Players[0].Name != "Abe Holt" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAdvanceCycleRequiresToken(t *testing.T) {
	controller := readyController()
	handler := newTestHandler(controller, "secret")

	req := httptest.NewRequest(nethttp.MethodPost, "/admin/cycle/advance", nil)
	rec := httptest.NewRecorder()
	handler.AdvanceCycle(rec, req)
	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
	if controller.advanced != 0 {
		t.Fatal("unauthorized request must not advance the cycle")
	}

	req = httptest.NewRequest(nethttp.MethodPost, "/admin/cycle/advance", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	handler.AdvanceCycle(rec, req)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if controller.advanced != 1 {
		t.Fatalf("expected one advance, got %d", controller.advanced)
	}
}

func TestAdvanceCycleDisabledWithoutToken(t *testing.T) {
	handler := newTestHandler(readyController(), "")
	req := httptest.NewRequest(nethttp.MethodPost, "/admin/cycle/advance", nil)
	rec := httptest.NewRecorder()
	handler.AdvanceCycle(rec, req)
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestAdvanceCycleMethodAndFailure(t *testing.T) {
	controller := readyController()
	controller.advanceErr = errors.New("broken squad")
	handler := newTestHandler(controller, "secret")

	req := httptest.NewRequest(nethttp.MethodGet, "/admin/cycle/advance", nil)
	rec := httptest.NewRecorder()
	handler.AdvanceCycle(rec, req)
	if rec.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", rec.Code)
	}

	req = httptest.NewRequest(nethttp.MethodPost, "/admin/cycle/advance", nil)
	req.Header.Set("X-Admin-Token", "secret")
	rec = httptest.NewRecorder()
	handler.AdvanceCycle(rec, req)
	if rec.Code != nethttp.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rec.Code)
	}
}
