// Package router sets up the HTTP routes and middleware chain for the
// brand machine API. AI-backed routes run behind a stricter rate limit
// because each request spends provider tokens.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/handlers"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	aiLimiter := middleware.NewRateLimiter(10, time.Minute)

	r.Route("/api", func(r chi.Router) {
		r.Get("/formats", api.ExportFormats)

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", api.BrandsList)
			r.Post("/", api.BrandCreate)

			r.With(aiLimiter.Middleware).Post("/extract", api.ExtractBrand)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", api.BrandGet)
				r.Put("/", api.BrandUpdate)
				r.Delete("/", api.BrandDelete)

				r.Get("/accessibility", api.Accessibility)
				r.Post("/export/{format}", api.ExportBrand)

				r.Route("/contents", func(r chi.Router) {
					r.Get("/", api.ContentsList)
					r.Get("/{assetType}", api.ContentGet)
					r.Put("/{assetType}", api.ContentPut)
				})

				r.With(aiLimiter.Middleware).Post("/generate", api.GenerateContent)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
