package server

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/misterclayt0n/rmcalc/internal/rm"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server holds dependencies for HTTP handlers.
type Server struct {
	engine      *rm.Engine
	defaultReps int
	log         *slog.Logger
	page        *template.Template
	router      chi.Router
}

// New creates a new Server with all routes configured. defaultReps is the
// rep count preselected when a request does not carry one.
func New(engine *rm.Engine, defaultReps int, log *slog.Logger) *Server {
	s := &Server{
		engine:      engine,
		defaultReps: defaultReps,
		log:         log,
		page:        template.Must(template.ParseFS(templateFS, "templates/*.html")),
		router:      chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/estimate", s.handleEstimate)
		r.Get("/formulas", s.handleFormulas)
	})
}
