// Package web provides the HTTP server and handlers for the catalog API.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mediashelf/entertainment/internal/config"
	"github.com/mediashelf/entertainment/internal/store"
)

// Server is the HTTP server for the catalog API. The store handle is
// injected at construction and shared by all handlers.
type Server struct {
	store  *store.Store
	cfg    *config.Config
	router *chi.Mux
	server *http.Server
}

// NewServer creates a Server wired to the given store.
func NewServer(st *store.Store, cfg *config.Config) *Server {
	s := &Server{
		store:  st,
		cfg:    cfg,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	s.router.Use(securityHeaders)

	if s.cfg.Rate.Enabled {
		s.router.Use(httprate.Limit(
			s.cfg.Rate.RequestsPerMinute,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Retry-After", "60")
				writeError(w, r, http.StatusTooManyRequests, codeRateLimited, "rate limit exceeded")
			}),
		))
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", s.handleListMovies)
			r.Post("/", s.handleCreateMovie)
			r.Get("/genres", s.handleMovieGenres)
			r.Get("/{id}", s.handleGetMovie)
			r.Put("/{id}", s.handleUpdateMovie)
			r.Delete("/{id}", s.handleDeleteMovie)
		})

		r.Route("/songs", func(r chi.Router) {
			r.Get("/", s.handleListSongs)
			r.Post("/", s.handleCreateSong)
			r.Get("/genres", s.handleSongGenres)
			r.Get("/{id}", s.handleGetSong)
			r.Put("/{id}", s.handleUpdateSong)
			r.Delete("/{id}", s.handleDeleteSong)
		})

		r.Route("/books", func(r chi.Router) {
			r.Get("/", s.handleListBooks)
			r.Post("/", s.handleCreateBook)
			r.Get("/genres", s.handleBookGenres)
			r.Get("/{id}", s.handleGetBook)
			r.Put("/{id}", s.handleUpdateBook)
			r.Delete("/{id}", s.handleDeleteBook)
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", s.handleListGames)
			r.Post("/", s.handleCreateGame)
			r.Get("/genres", s.handleGameGenres)
			r.Get("/{id}", s.handleGetGame)
			r.Put("/{id}", s.handleUpdateGame)
			r.Delete("/{id}", s.handleDeleteGame)
		})
	})
}

// handleHealth reports liveness and store reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DB().PingContext(r.Context()); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, codeInternal, "store unreachable")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
