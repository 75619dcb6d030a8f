package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/schnapsen-go/internal/api/apierr"
	"github.com/mcoot/schnapsen-go/internal/api/handler"
	"github.com/mcoot/schnapsen-go/internal/middleware"
	"github.com/mcoot/schnapsen-go/internal/services/arena"
	"github.com/mcoot/schnapsen-go/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	ArenaService *arena.Service
	Storage      storage.Storage
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	strategyHandler := handler.NewStrategyHandler()
	matchHandler := handler.NewMatchHandler(cfg.ArenaService, cfg.Storage)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, panicHandler)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Strategy routes
	api.HandleFunc("/strategies", strategyHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/decide", strategyHandler.Decide).Methods(http.MethodPost)

	// Tournament and result routes
	api.HandleFunc("/tournaments", matchHandler.RunTournament).Methods(http.MethodPost)
	api.HandleFunc("/results", matchHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/results/{id}", matchHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/results/{id}", matchHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
