package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/standings", handler.Standings)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/", handler.PlayerByName)
	mux.HandleFunc("/squad", handler.Squad)
	mux.HandleFunc("/admin/cycle/advance", handler.AdvanceCycle)
	return mux
}
