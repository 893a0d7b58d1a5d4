package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jwebster45206/adventure-engine/internal/metrics"
	"github.com/jwebster45206/adventure-engine/internal/middleware"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every API route.
func NewRouter(store storage.Storage, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(logger))
	r.Use(metrics.Middleware)

	r.Method(http.MethodGet, "/health", NewHealthHandler(store, logger))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	worlds := NewWorldHandler(store, logger)
	gamestates := NewGameStateHandler(store, logger)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/worlds", worlds.List)
		r.Get("/worlds/{id}", worlds.Get)

		r.Post("/gamestate", gamestates.Create)
		r.Get("/gamestate/{id}", gamestates.Get)
		r.Delete("/gamestate/{id}", gamestates.Delete)

		r.Method(http.MethodPost, "/command", NewCommandHandler(store, logger))
	})
	return r
}
