package doctree

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// ErrDirectoryUnreadable is returned when the root directory cannot be listed.
var ErrDirectoryUnreadable = errors.New("directory unreadable")

// Builder walks a source root and assembles its documentation tree.
// A Builder holds no per-call state and may be shared between goroutines.
type Builder struct {
	log      *slog.Logger
	maxDepth int
}

// NewBuilder creates a Builder. A maxDepth of 0 disables the depth cap.
func NewBuilder(log *slog.Logger, maxDepth int) *Builder {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &Builder{log: log, maxDepth: maxDepth}
}

// Build lists root recursively and returns the sorted tree for kind.
// Subdirectories that cannot be read become empty collections; only a failure
// to list the root itself is reported as an error.
func (b *Builder) Build(root SourceRoot, kind Kind) (Collection, error) {
	w := walk{Builder: b, root: root, kind: kind}
	c, err := w.level(root.Path, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryUnreadable, root.Path, err)
	}
	if kind == KindGlossary {
		c = flatten(c)
		sortGlossary(c)
	}
	return c, nil
}

type walk struct {
	*Builder
	root SourceRoot
	kind Kind
}

func (w walk) level(dir string, depth int) (Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	c := Collection{}
	for _, e := range entries {
		name := e.Name()
		if name == "." || name == ".." {
			continue
		}
		path := dir + string(os.PathSeparator) + name

		if isDir(path, e) {
			c = append(c, Node{Name: name, Children: w.child(path, depth+1)})
			continue
		}
		if !IsMarkdownName(name) {
			continue
		}
		c = append(c, Node{
			Name: name,
			File: &Entry{Name: name, FilePath: w.publicURL(path)},
		})
	}

	assignKeys(c)
	if w.kind == KindDocs {
		sortDocs(c)
	}
	return c, nil
}

func (w walk) child(path string, depth int) Collection {
	if w.maxDepth > 0 && depth > w.maxDepth {
		w.log.Warn("skipping directory below depth limit", "path", path, "max_depth", w.maxDepth)
		return Collection{}
	}
	c, err := w.level(path, depth)
	if err != nil {
		w.log.Warn("unreadable directory", "path", path, "error", err)
		return Collection{}
	}
	return c
}

// publicURL substitutes the root URL for every literal occurrence of the root
// path. Paths that do not contain the root path are returned unchanged.
func (w walk) publicURL(path string) string {
	if w.root.Path == "" {
		return path
	}
	return strings.ReplaceAll(path, w.root.Path, w.root.URL)
}

// isDir follows symlinks so linked directories are walked like real ones.
func isDir(path string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func flatten(c Collection) Collection {
	out := Collection{}
	for _, n := range c {
		if n.IsDir() {
			out = append(out, flatten(n.Children)...)
			continue
		}
		out = append(out, n)
	}
	return out
}
