// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/campusassist/collegebot/cmd/collegebot-api/handlers"
	"github.com/campusassist/collegebot/cmd/collegebot-api/middleware"
	"github.com/campusassist/collegebot/internal/config"
	"github.com/campusassist/collegebot/internal/dataset"
	"github.com/campusassist/collegebot/internal/observability"
	"github.com/campusassist/collegebot/internal/query"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(
	logger *observability.Logger,
	cfg *config.Config,
	ix *dataset.Index,
	queryRouter *query.Router,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"collegebot"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if ix.Len() == 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"no dataset loaded"}`))
			return
		}
		w.Write([]byte(`{"status":"ready"}`))
	})

	queryHandler := handlers.NewQueryHandler(logger, queryRouter, ix)
	collegesHandler := handlers.NewCollegesHandler(logger, ix)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Post("/query", queryHandler.Query)
		})
		r.Get("/colleges", collegesHandler.List)
	})

	return r
}
