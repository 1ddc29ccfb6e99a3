// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mbbx6spp/straitjacket/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	journalHandler *handlers.JournalHandler,
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

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Entry CRUD.
		r.Get("/entries", journalHandler.ListEntries)
		r.Post("/entries", journalHandler.CreateEntry)
		r.Get("/entries/{id}", journalHandler.GetEntry)
		r.Put("/entries/{id}", journalHandler.UpdateEntry)
		r.Delete("/entries/{id}", journalHandler.DeleteEntry)

		// Lifecycle transitions. The static "publish" segment wins over
		// the {id} pattern in chi, so the batch route never collides
		// with publishing a single entry.
		r.Post("/entries/publish/batch", journalHandler.PublishBatch)
		r.Post("/entries/{id}/publish", journalHandler.PublishEntry)
		r.Post("/entries/{id}/retract", journalHandler.RetractEntry)
	})

	return r
}
