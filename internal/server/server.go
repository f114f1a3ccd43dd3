// Package server is the HTTP presentation surface over the app layer.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/buff/internal/app"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	app    *app.App
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a Server with all routes configured. An empty apiKey leaves
// mutating routes open, which suits a single-user local install.
func New(a *app.App, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		app:    a,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Read endpoints
		r.Get("/sessions", s.handleSessions)
		r.Get("/exercises", s.handleExercises)
		r.Get("/records", s.handleRecords)
		r.Get("/estimate", s.handleEstimate)
		r.Get("/projections", s.handleProjections)
		r.Get("/milestones", s.handleMilestones)
		r.Get("/trends", s.handleTrends)
		r.Get("/bodyweight", s.handleBodyWeight)
		r.Get("/bodyfat", s.handleBodyFat)
		r.Get("/profile", s.handleProfile)
		r.Get("/settings", s.handleSettings)
		r.Get("/routines", s.handleRoutines)
		r.Get("/routines/active", s.handleActiveRoutine)
		r.Get("/export", s.handleExport)
		r.Get("/export.xlsx", s.handleExportXLSX)
		r.Get("/stats", s.handleStats)

		// Mutating endpoints (API key required when configured)
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/sets", s.handleSaveSet)
			r.Delete("/sessions/{id}", s.handleDeleteSession)
			r.Delete("/sessions", s.handleClearSessions)
			r.Post("/exercises", s.handleAddExercise)
			r.Post("/exercises/reset", s.handleResetExercises)
			r.Delete("/exercises/{name}/history", s.handleDeleteExerciseHistory)
			r.Post("/bodyweight", s.handleAddBodyWeight)
			r.Delete("/bodyweight/{id}", s.handleDeleteBodyWeight)
			r.Delete("/bodyweight", s.handleClearBodyWeight)
			r.Post("/bodyfat", s.handleAddBodyFat)
			r.Post("/bodyfat/estimate", s.handleEstimateBodyFat)
			r.Delete("/bodyfat/{id}", s.handleDeleteBodyFat)
			r.Delete("/bodyfat", s.handleClearBodyFat)
			r.Put("/profile", s.handleSetProfile)
			r.Put("/settings", s.handleSetSettings)
			r.Put("/routines", s.handleSetRoutines)
			r.Put("/routines/active", s.handleSetActiveRoutine)
			r.Delete("/routines/active", s.handleClearActiveRoutine)
			r.Post("/import", s.handleImport)
		})
	})
}
