// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/civiclab/townsquare/internal/config"
	"github.com/civiclab/townsquare/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to chi's
// func(http.Handler) http.Handler form.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// NewRouter builds the full route tree for the service.
func NewRouter(handler *Handler, cfg config.APIConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order to every route.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health endpoints sit outside rate limiting so probes never get
	// throttled.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", handler.Health)
		r.Get("/live", handler.HealthLive)
		r.Get("/ready", handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.RateLimitReqs, cfg.RateLimitWindow))
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		// Event catalog
		r.Route("/events", func(r chi.Router) {
			r.Get("/", handler.ListEvents)
			r.Post("/", handler.CreateEvent)
			r.Delete("/", handler.ClearEvents)
			r.Get("/recent", handler.RecentEvents)
			r.Get("/high-priority", handler.HighPriorityEvents)
			r.Get("/categories", handler.Categories)
			r.Get("/by-date", handler.EventsByDate)
			r.Get("/{id}", handler.GetEvent)
		})

		// Search and personalization
		r.Get("/search", handler.Search)
		r.Get("/recommendations", handler.Recommendations)
		r.Get("/trending", handler.Trending)
		r.Get("/preferences", handler.Preferences)

		// Issue reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/", handler.ListReports)
			r.Post("/", handler.CreateReport)
		})
	})

	// Observability
	r.Handle("/metrics", promhttp.Handler())

	return r
}
