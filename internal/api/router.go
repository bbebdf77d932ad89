package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mkoehn/suchselgen/internal/api/handler"
	"github.com/mkoehn/suchselgen/internal/api/middleware"
	"github.com/mkoehn/suchselgen/internal/dependencies/clock"
	"github.com/mkoehn/suchselgen/internal/dependencies/random"
	"github.com/mkoehn/suchselgen/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger  *slog.Logger
	Storage storage.Storage
	Clock   clock.Clock
	Random  random.Random
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	puzzleHandler := handler.NewPuzzleHandler(cfg.Storage, cfg.Clock, cfg.Random, cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/puzzles", puzzleHandler.Generate).Methods(http.MethodPost)
	api.HandleFunc("/puzzles", puzzleHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/puzzles/{id}/text", puzzleHandler.RenderText).Methods(http.MethodGet)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
