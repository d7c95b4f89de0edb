// Package ops implements the tabula operation handlers. Each handler takes
// a Table (two for merge and concat) plus validated options and returns a
// transformed Table; handlers hold no state between invocations.
package ops

import (
	"regexp"
	"strings"

	"github.com/tabula-cli/tabula/internal/frame"
)

const slugAllowed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_ ()/-"

var (
	slugEdges    = regexp.MustCompile(`^[^a-z0-9_]+|[^a-z0-9_]+$`)
	slugSeps     = regexp.MustCompile(`[^a-z0-9_]+`)
	slugCollapse = regexp.MustCompile(`_+`)
)

// SlugifyName normalizes a string into an identifier-like token: lowercase
// alphanumerics and underscores only. Characters outside [A-Za-z0-9_ ()/-]
// are removed outright; leading and trailing separator runs without an
// underscore are dropped; every other separator run collapses to a single
// underscore. The result is a fixed point of the function.
func SlugifyName(s string) string {
	var kept strings.Builder
	for _, c := range s {
		if strings.ContainsRune(slugAllowed, c) {
			kept.WriteRune(c)
		}
	}
	name := strings.ToLower(kept.String())
	name = slugEdges.ReplaceAllString(name, "")
	name = slugSeps.ReplaceAllString(name, "_")
	name = slugCollapse.ReplaceAllString(name, "_")
	if name == "" {
		return "unnamed"
	}
	return name
}

// SlugifyColumns renames every column of the table with SlugifyName.
func SlugifyColumns(t *frame.Table) (*frame.Table, error) {
	records := t.Records()
	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = SlugifyName(name)
	}
	out := make([][]string, len(records))
	out[0] = header
	copy(out[1:], records[1:])
	return frame.FromRecords(out)
}
