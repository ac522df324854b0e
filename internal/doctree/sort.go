package doctree

import (
	"bytes"
	"cmp"
	"encoding/json"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// sortDocs orders a docs level: leaves first by name then URL, followed by
// directories ordered by their encoded contents. Ties keep listing order.
func sortDocs(c Collection) {
	encoded := make(map[string][]byte)
	for _, n := range c {
		if n.IsDir() {
			// A collection holds only strings and nested collections, which always encode.
			encoded[n.Name], _ = json.Marshal(n.Children)
		}
	}

	slices.SortStableFunc(c, func(a, b Node) int {
		switch {
		case !a.IsDir() && !b.IsDir():
			if r := cmp.Compare(a.File.Name, b.File.Name); r != 0 {
				return r
			}
			return cmp.Compare(a.File.FilePath, b.File.FilePath)
		case a.IsDir() && b.IsDir():
			return bytes.Compare(encoded[a.Name], encoded[b.Name])
		case a.IsDir():
			return 1
		default:
			return -1
		}
	})
}

// sortGlossary orders leaves by case-folded name in natural order. Ties keep
// listing order. A Caser is stateful, so each call gets its own.
func sortGlossary(c Collection) {
	fold := cases.Fold()
	type keyed struct {
		key  string
		node Node
	}
	items := make([]keyed, len(c))
	for i, n := range c {
		items[i] = keyed{key: fold.String(n.Name), node: n}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		return naturalCompare(a.key, b.key)
	})
	for i := range items {
		c[i] = items[i].node
	}
}

// naturalCompare compares a and b run by run. Digit runs compare by numeric
// value, then by length so "1" sorts before "01"; other runs compare bytewise.
func naturalCompare(a, b string) int {
	for a != "" && b != "" {
		ra, restA := nextRun(a)
		rb, restB := nextRun(b)
		if isDigit(ra[0]) && isDigit(rb[0]) {
			if r := compareDigits(ra, rb); r != 0 {
				return r
			}
		} else if r := strings.Compare(ra, rb); r != 0 {
			return r
		}
		a, b = restA, restB
	}
	return cmp.Compare(len(a), len(b))
}

func compareDigits(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if r := cmp.Compare(len(ta), len(tb)); r != 0 {
		return r
	}
	if r := strings.Compare(ta, tb); r != 0 {
		return r
	}
	return cmp.Compare(len(a), len(b))
}

// nextRun splits off the leading run of digits or non-digits.
func nextRun(s string) (string, string) {
	digits := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
