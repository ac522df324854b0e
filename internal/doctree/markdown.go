package doctree

import "strings"

// markdownMarker is matched anywhere in a file name, case-sensitively.
const markdownMarker = ".md"

// IsMarkdownName reports whether a file name is surfaced as documentation.
// The marker may appear anywhere after the first character, so "notes.md.bak"
// matches while "readme.MDX" and ".md" do not.
func IsMarkdownName(name string) bool {
	return strings.Index(name, markdownMarker) > 0
}
