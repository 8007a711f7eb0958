// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/devflix-admin/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	categoryHandler *handlers.CategoryHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Post("/", categoryHandler.CreateCategory)
		r.Get("/{id}", categoryHandler.GetCategory)
		r.Put("/{id}", categoryHandler.UpdateCategory)
		r.Post("/{id}/activate", categoryHandler.ActivateCategory)
		r.Post("/{id}/deactivate", categoryHandler.DeactivateCategory)
	})

	return r
}
