package dashboard

import (
	"net/url"
	"strings"

	"github.com/gratrockstar/theme-docs/internal/config"
	"github.com/gratrockstar/theme-docs/internal/doctree"
)

// Page is one admin menu entry backed by a documentation source.
type Page struct {
	MenuTitle string
	Heading   string
	Slug      string
	Kind      doctree.Kind
	Source    doctree.SourceRoot

	// Client-side field on the td object that receives the tree.
	Field   string
	MountID string
	Missing string
}

// Pages returns the menu in display order.
func Pages(cfg config.Config) []Page {
	return []Page{
		{
			MenuTitle: "Theme Docs",
			Heading:   "Theme Documentation",
			Slug:      "theme-documentation",
			Kind:      doctree.KindDocs,
			Source:    doctree.SourceRoot{Path: cfg.Docs.Path, URL: cfg.Docs.URL},
			Field:     "files",
			MountID:   "theme-docs",
			Missing:   "No documentation exists.  To add it, add a /documentation folder to your theme, and add markdown files there.",
		},
		{
			MenuTitle: "Theme Glossary",
			Heading:   "Theme Glossary",
			Slug:      "theme-glossary",
			Kind:      doctree.KindGlossary,
			Source:    doctree.SourceRoot{Path: cfg.Glossary.Path, URL: cfg.Glossary.URL},
			Field:     "glossary",
			MountID:   "theme-glossary",
			Missing:   "No glossary exists.  To add it, add a /glossary folder to your theme, and add markdown files there.",
		},
	}
}

// mountPath returns the local route prefix for a source URL. Absolute URLs
// point at another host and are not served here.
func mountPath(sourceURL string) (string, bool) {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Host != "" || u.Scheme != "" || !strings.HasPrefix(u.Path, "/") {
		return "", false
	}
	prefix := strings.TrimRight(u.Path, "/")
	if prefix == "" {
		return "", false
	}
	return prefix, true
}
