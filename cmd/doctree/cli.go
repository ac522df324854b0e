package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds what commands need at execution time.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log skipped and unreadable directories"`

	Tree TreeCmd `cmd:"" help:"Print the tree for a documentation directory"`
}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct {
	Dir      string `arg:"" type:"path" help:"Documentation directory"`
	URL      string `short:"u" help:"Base URL substituted for the directory path (defaults to the path itself)"`
	Kind     string `short:"k" enum:"docs,glossary" default:"docs" help:"Sort policy: docs or glossary"`
	MaxDepth int    `name:"max-depth" default:"32" help:"Recursion limit, 0 for none"`
	Indent   bool   `short:"i" help:"Indent the JSON output"`
	Watch    bool   `short:"w" help:"Print again whenever the directory changes"`
}
