package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pathlight/pathlight/internal/advisor"
	"github.com/pathlight/pathlight/internal/db"
	"github.com/pathlight/pathlight/internal/embeddings"
	"github.com/pathlight/pathlight/internal/enrich"
	"github.com/pathlight/pathlight/internal/learner"
	"github.com/pathlight/pathlight/internal/llm"
	"github.com/pathlight/pathlight/internal/planner"
	"github.com/pathlight/pathlight/internal/progress"
	"github.com/pathlight/pathlight/internal/recommend"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)

	CheckpointInterval int
	TrendWindow        int
	TrendHistory       int
	GenerationTimeout  time.Duration
}

// Server hosts the pathlight HTTP API. It owns the wiring between the
// feature packages; each one registers its own routes.
type Server struct {
	cfg        Config
	db         *db.DB
	router     chi.Router
	httpServer *http.Server

	paths   *planner.Store
	tracker *progress.Tracker
}

// New creates a server wired to the given collaborators. provider and
// embedder may be nil: generation then always uses the fallback template and
// recommendations are served from the static catalog order.
func New(cfg Config, database *db.DB, provider llm.Provider, model string, embedder embeddings.Embedder, enricher *enrich.Enricher) (*Server, error) {
	s := &Server{cfg: cfg, db: database}

	learnerStore := learner.NewStore(database)
	s.paths = planner.NewStore(database)
	aggregator := learner.NewAggregator(learnerStore, s.paths)

	orchestrator := planner.NewOrchestrator(provider, model, planner.Options{
		CheckpointInterval: cfg.CheckpointInterval,
		GenerationTimeout:  cfg.GenerationTimeout,
	})

	s.tracker = progress.NewTracker(progress.NewStore(database), s.paths, cfg.TrendWindow, cfg.TrendHistory)

	var engine *recommend.Engine
	if embedder != nil {
		var err error
		engine, err = recommend.NewEngine(embedder, s.paths, nil)
		if err != nil {
			return nil, fmt.Errorf("building recommendation engine: %w", err)
		}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	learner.RegisterRoutes(r, learnerStore, aggregator)
	planner.RegisterRoutes(r, orchestrator, s.paths, aggregator)
	progress.RegisterRoutes(r, s.tracker, s.paths)
	advisor.RegisterRoutes(r, s.tracker)
	enrich.RegisterRoutes(r, s.paths, enricher)
	if engine != nil {
		recommend.RegisterRoutes(r, engine)
	}

	s.router = r
	return s, nil
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Paths returns the path store.
func (s *Server) Paths() *planner.Store { return s.paths }

// Tracker returns the progress tracker.
func (s *Server) Tracker() *progress.Tracker { return s.tracker }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("pathlight server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
