package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gratrockstar/theme-docs/internal/doctree"
)

// Run executes the tree command.
func (c *TreeCmd) Run(deps *Dependencies) error {
	kind, err := doctree.ParseKind(c.Kind)
	if err != nil {
		return err
	}
	root := doctree.SourceRoot{Path: c.Dir, URL: c.URL}
	if root.URL == "" {
		root.URL = c.Dir
	}
	b := doctree.NewBuilder(deps.Logger, c.MaxDepth)

	if err := c.print(deps, b, root, kind); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}
	return watch(deps.Ctx, c.Dir, deps.Logger, func() error {
		return c.print(deps, b, root, kind)
	})
}

func (c *TreeCmd) print(deps *Dependencies, b *doctree.Builder, root doctree.SourceRoot, kind doctree.Kind) error {
	if _, err := os.Stat(root.Path); err != nil {
		fmt.Fprintf(deps.Stderr, "No %s exists at %s.\n", noun(kind), root.Path)
		fmt.Fprintln(deps.Stdout, "false")
		return nil
	}

	tree, err := b.Build(root, kind)
	if err != nil {
		return err
	}

	var out []byte
	if c.Indent {
		out, err = json.MarshalIndent(tree, "", "  ")
	} else {
		out, err = json.Marshal(tree)
	}
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}

func noun(kind doctree.Kind) string {
	if kind == doctree.KindGlossary {
		return "glossary"
	}
	return "documentation"
}
