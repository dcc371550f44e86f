package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jdmorgan/noughts/internal/api/handler"
	apimiddleware "github.com/jdmorgan/noughts/internal/api/middleware"
	"github.com/jdmorgan/noughts/internal/middleware"
	"github.com/jdmorgan/noughts/internal/services/match"
	"github.com/jdmorgan/noughts/internal/services/matchmaker"
	"github.com/jdmorgan/noughts/internal/ws"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Logger     *slog.Logger
	Matchmaker *matchmaker.Service
	Engine     *match.Engine
	Registry   *ws.Registry
}

// NewRouter creates the router with all routes configured: the JSON API
// under /api/v1 and the websocket endpoint at /connect.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	matchHandler := handler.NewMatchHandler(cfg.Matchmaker, cfg.Engine)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	api.HandleFunc("/matches", matchHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/matches/{id}", matchHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}/turns", matchHandler.SubmitTurn).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// The websocket endpoint sits outside the API subrouter: the logging
	// middleware would hold its wrapped writer open for the lifetime of
	// the connection and log nothing useful
	r.HandleFunc("/connect", func(w http.ResponseWriter, req *http.Request) {
		ws.ServeWS(w, req, cfg.Registry, cfg.Logger)
	}).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
