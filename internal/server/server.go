// Package server exposes the volume engine over HTTP: ingest endpoints for
// set logs, check-ins and sessions, plus read endpoints for summaries,
// alerts and analyses.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Joshfkon/workout-app-sub012/internal/advisor"
	"github.com/Joshfkon/workout-app-sub012/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	advisor *advisor.Advisor
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, adv *advisor.Advisor, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		advisor: adv,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
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

	// Ingest endpoints (API key required)
	s.router.Route("/api/v1/ingest", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/sets", s.handleIngestSets)
		r.Post("/checkins", s.handleIngestCheckins)
		r.Post("/sessions", s.handleIngestSessions)
	})

	// Analysis endpoints (no auth, tsnet handles access)
	s.router.Get("/api/v1/profile", s.handleGetProfile)
	s.router.Get("/api/v1/volume/summary", s.handleVolumeSummary)
	s.router.Get("/api/v1/fatigue/alerts", s.handleFatigueAlerts)
	s.router.Get("/api/v1/mesocycle/analysis", s.handleMesocycleAnalysis)
	s.router.Post("/api/v1/mesocycle/complete", s.handleMesocycleComplete)
	s.router.Get("/api/v1/progression", s.handleExerciseProgression)
	s.router.Get("/api/v1/recovery/correlation", s.handleRecoveryCorrelation)
}
