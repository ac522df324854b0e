package dashboard

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gratrockstar/theme-docs/internal/config"
	"github.com/gratrockstar/theme-docs/internal/doctree"
	"github.com/gratrockstar/theme-docs/internal/metrics"
)

// Version is appended to enqueued asset URLs.
const Version = "1.0.0"

// Server is the HTTP dashboard that hosts the documentation pages.
type Server struct {
	router   chi.Router
	builder  *doctree.Builder
	recorder metrics.Recorder
	metrics  http.Handler
	log      *slog.Logger
	cfg      config.Config
	pages    []Page
}

// NewServer creates and configures the HTTP server. rec and metricsHandler may
// be nil, in which case builds are not recorded and /metrics is not mounted.
func NewServer(builder *doctree.Builder, rec metrics.Recorder, metricsHandler http.Handler, log *slog.Logger, cfg config.Config) *Server {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		builder:  builder,
		recorder: rec,
		metrics:  metricsHandler,
		log:      log,
		cfg:      cfg,
		pages:    Pages(cfg),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/"+s.pages[0].Slug, http.StatusFound)
	})
	r.Get("/admin/{slug}", s.handlePage)
	r.Get("/api/{kind}", s.handleTree)

	dist, _ := fs.Sub(assetFS, "assets")
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(dist))))

	for _, p := range s.pages {
		prefix, ok := mountPath(p.Source.URL)
		if !ok {
			continue
		}
		files := http.StripPrefix(prefix, http.FileServer(http.Dir(p.Source.Path)))
		r.Handle(prefix+"/*", MarkdownOnly(files))
		s.log.Debug("serving source files", "kind", p.Kind, "prefix", prefix, "path", p.Source.Path)
	}

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
