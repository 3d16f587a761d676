// Package propfilter computes the visible subset of properties for the
// public search page. Three independent predicates are ANDed; an empty
// criterion means "no constraint", never "exclude all". Input order is
// preserved, so running the same criteria against the same list always
// yields the same ordered subset.
package propfilter

import (
	"strings"

	"github.com/dwellhub/dwellhub/internal/domain/models"
)

// Criteria are the three filter values mirrored in the page URL
// (?q=&location=&category=).
type Criteria struct {
	Query    string // case-insensitive substring of title or description
	Location string // exact location name
	Category string // exact category name
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Query) == "" && c.Location == "" && c.Category == ""
}

// Filter returns the properties matching every non-empty criterion, in
// input order. The input slice is never modified.
func Filter(items []models.Property, c Criteria) []models.Property {
	q := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]models.Property, 0, len(items))
	for _, p := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if c.Location != "" && p.Location != c.Location {
			continue
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		out = append(out, p)
	}
	return out
}
