package dashboard

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gratrockstar/theme-docs/internal/metrics"
)

// absent is what the client receives when a source directory does not exist.
var absent = []byte("false")

// treeJSON builds the tree for p and encodes it. The second result is false
// when the source directory is missing. A failing build on an existing root
// is logged and degrades to an empty tree.
func (s *Server) treeJSON(p Page) ([]byte, bool) {
	kind := string(p.Kind)
	if _, err := os.Stat(p.Source.Path); err != nil {
		s.recorder.IncBuildOutcome(kind, metrics.OutcomeMissing)
		return absent, false
	}

	start := time.Now()
	tree, err := s.builder.Build(p.Source, p.Kind)
	s.recorder.ObserveBuildDuration(kind, time.Since(start))
	if err != nil {
		s.log.Error("tree build failed", "kind", kind, "path", p.Source.Path, "error", err)
		s.recorder.IncBuildOutcome(kind, metrics.OutcomeFailed)
		return []byte("[]"), true
	}

	data, err := json.Marshal(tree)
	if err != nil {
		s.log.Error("tree encode failed", "kind", kind, "error", err)
		s.recorder.IncBuildOutcome(kind, metrics.OutcomeFailed)
		return []byte("[]"), true
	}
	s.recorder.IncBuildOutcome(kind, metrics.OutcomeSuccess)
	s.recorder.ObserveEntries(kind, tree.Files())
	return data, true
}

func (s *Server) pageBySlug(slug string) (Page, bool) {
	for _, p := range s.pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

func (s *Server) pageByKind(kind string) (Page, bool) {
	for _, p := range s.pages {
		if string(p.Kind) == kind {
			return p, true
		}
	}
	return Page{}, false
}

type pageData struct {
	Page    Page
	Menu    []Page
	Exists  bool
	Tree    template.JS
	Version string
}

// handlePage renders an admin page with the tree embedded for the client script.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	p, ok := s.pageBySlug(chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, exists := s.treeJSON(p)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pageTemplate.Execute(w, pageData{
		Page:    p,
		Menu:    s.pages,
		Exists:  exists,
		Tree:    template.JS(data),
		Version: Version,
	})
	if err != nil {
		s.log.Error("render page", "slug", p.Slug, "error", err)
	}
}

// handleTree returns the same value the page embeds, as JSON.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	p, ok := s.pageByKind(chi.URLParam(r, "kind"))
	if !ok {
		jsonError(w, "unknown tree kind", http.StatusNotFound)
		return
	}

	data, _ := s.treeJSON(p)
	etag := fmt.Sprintf(`"%x"`, sha256.Sum256(data))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
