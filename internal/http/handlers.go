package http

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strings"

	"virtualtd-service/internal/app/roster"
	"virtualtd-service/internal/app/standings"
	"virtualtd-service/internal/cycle"
)

// CycleController is the slice of the cycle runner the handlers need.
type CycleController interface {
	Status() cycle.Status
	Advance(ctx context.Context) error
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	standings  *standings.Service
	roster     *roster.Service
	runner     CycleController
	adminToken string
	logger     *slog.Logger
}

// NewHandler constructs a Handler. An empty adminToken disables the admin
// routes.
func NewHandler(standingsSvc *standings.Service, rosterSvc *roster.Service, runner CycleController, adminToken string, logger *slog.Logger) *Handler {
	return &Handler{
		standings:  standingsSvc,
		roster:     rosterSvc,
		runner:     runner,
		adminToken: adminToken,
		logger:     logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp := map[string]string{"status": "ok"}
	h.writeJSON(w, nethttp.StatusOK, resp)
}

type readyResponse struct {
	Ready               bool   `json:"ready"`
	RunID               string `json:"run_id"`
	Cycle               int    `json:"cycle"`
	ConsecutiveFailures int    `json:"consecutive_failures"`
	LastError           string `json:"last_error,omitempty"`
}

// Ready reports whether the cycle loop has produced recent state.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	status := h.runner.Status()
	resp := readyResponse{
		Ready:               status.IsReady(),
		RunID:               status.RunID,
		Cycle:               status.Cycle,
		ConsecutiveFailures: status.ConsecutiveFailures,
		LastError:           status.LastError,
	}
	code := nethttp.StatusOK
	if !resp.Ready {
		code = nethttp.StatusServiceUnavailable
	}
	h.writeJSON(w, code, resp)
}

// Standings returns the current league table.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, h.standings.Table())
}

// Players returns the league-wide player table, optionally filtered with
// ?team=.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	team := r.URL.Query().Get("team")
	h.writeJSON(w, nethttp.StatusOK, h.roster.Players(team))
}

// PlayerByName returns a single player row if present.
func (h *Handler) PlayerByName(w nethttp.ResponseWriter, r *nethttp.Request) {
	// Expect path: /players/{name}
	name := strings.TrimPrefix(r.URL.Path, "/players/")
	if name == "" || name == "players" {
		h.writeError(w, nethttp.StatusBadRequest, "missing player name")
		return
	}

	row, ok := h.roster.PlayerByName(name)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "player not found")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, row)
}

// Squad returns the managed team's current slice.
func (h *Handler) Squad(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, h.roster.Squad())
}

// AdvanceCycle runs one simulation cycle immediately. It requires the
// configured admin token.
func (h *Handler) AdvanceCycle(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.adminToken == "" {
		h.writeError(w, nethttp.StatusNotFound, "not found")
		return
	}
	if r.Method != nethttp.MethodPost {
		h.writeError(w, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.authorized(r) {
		h.writeError(w, nethttp.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.runner.Advance(r.Context()); err != nil {
		h.writeError(w, nethttp.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, nethttp.StatusOK, h.runner.Status())
}

func (h *Handler) authorized(r *nethttp.Request) bool {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token == h.adminToken {
		return true
	}
	return r.Header.Get("X-Admin-Token") == h.adminToken
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
