// Package suggest implements autocomplete over the product name
// universe.
package suggest

import (
	"sort"
	"strings"

	"github.com/pricescan/catalog-service/internal/catalog"
)

// DefaultMaxResults caps suggestion lists when no limit is configured.
const DefaultMaxResults = 5

// Suggester matches partial queries against product names.
type Suggester struct {
	maxResults int
}

// New creates a Suggester returning at most maxResults suggestions.
// Non-positive values fall back to DefaultMaxResults.
func New(maxResults int) *Suggester {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Suggester{maxResults: maxResults}
}

// Suggest returns product names matching the query, case- and
// accent-insensitive, deduplicated: exact-prefix matches first in
// alphabetical order, then other substring matches alphabetically,
// capped at the configured maximum. An empty query yields no
// suggestions rather than the whole universe.
func (s *Suggester) Suggest(query string, universe []string) []string {
	q := catalog.FoldForSearch(strings.TrimSpace(query))
	if q == "" {
		return []string{}
	}

	seen := make(map[string]struct{}, len(universe))
	var prefix, substring []string

	for _, name := range universe {
		folded := catalog.FoldForSearch(name)
		if _, dup := seen[folded]; dup {
			continue
		}
		switch {
		case strings.HasPrefix(folded, q):
			seen[folded] = struct{}{}
			prefix = append(prefix, name)
		case strings.Contains(folded, q):
			seen[folded] = struct{}{}
			substring = append(substring, name)
		}
	}

	sort.Strings(prefix)
	sort.Strings(substring)

	out := append(prefix, substring...)
	if len(out) > s.maxResults {
		out = out[:s.maxResults]
	}
	if out == nil {
		out = []string{}
	}
	return out
}
