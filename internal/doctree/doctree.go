package doctree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind selects the sort policy applied to a tree.
type Kind string

const (
	KindDocs     Kind = "docs"
	KindGlossary Kind = "glossary"
)

// ParseKind converts a user-supplied string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDocs, KindGlossary:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown tree kind: %q", s)
	}
}

// SourceRoot pairs a filesystem directory with the public URL it is served under.
type SourceRoot struct {
	Path string // Absolute directory path
	URL  string // Base URL substituted for Path
}

// Entry is a single Markdown file leaf.
type Entry struct {
	Name     string `json:"name"`
	FilePath string `json:"filepath"`
}

// Node is either a file leaf (File != nil) or a directory holding a nested collection.
type Node struct {
	Name     string
	File     *Entry
	Children Collection

	// Object key of a leaf when its level is encoded as an object.
	index int
}

// IsDir reports whether the node is a directory.
func (n Node) IsDir() bool {
	return n.File == nil
}

// Collection is one level of the tree in display order.
type Collection []Node

// Files counts the leaves in the collection, including nested levels.
func (c Collection) Files() int {
	total := 0
	for _, n := range c {
		if n.IsDir() {
			total += n.Children.Files()
		} else {
			total++
		}
	}
	return total
}

// assignKeys numbers the leaves of a level in listing order. Each leaf takes
// the next integer above every leaf and non-negative integer-named directory
// listed before it, and never a key some directory already uses.
func assignKeys(c Collection) {
	taken := make(map[int]bool)
	for _, n := range c {
		if k, ok := intKey(n.Name); ok && n.IsDir() {
			taken[k] = true
		}
	}
	next := 0
	for i := range c {
		if c[i].IsDir() {
			if k, ok := intKey(c[i].Name); ok && k >= next {
				next = k + 1
			}
			continue
		}
		for taken[next] {
			next++
		}
		c[i].index = next
		next++
	}
}

// intKey reports whether name is a canonical decimal integer such as "0" or
// "-3", as opposed to "007" or "+1".
func intKey(name string) (int, bool) {
	k, err := strconv.Atoi(name)
	if err != nil || strconv.Itoa(k) != name {
		return 0, false
	}
	return k, true
}

func (c Collection) hasDirs() bool {
	for _, n := range c {
		if n.IsDir() {
			return true
		}
	}
	return false
}

// MarshalJSON encodes a level without directories as an array of entries.
// A level that contains directories becomes an object in display order:
// leaves are keyed by the index assigned by assignKeys, directories by their name.
func (c Collection) MarshalJSON() ([]byte, error) {
	if !c.hasDirs() {
		leaves := make([]Entry, 0, len(c))
		for _, n := range c {
			leaves = append(leaves, *n.File)
		}
		return json.Marshal(leaves)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key := n.Name
		var val any = n.Children
		if !n.IsDir() {
			key = strconv.Itoa(n.index)
			val = n.File
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", n.Name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
