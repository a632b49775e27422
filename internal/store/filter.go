package store

import (
	"strings"

	"github.com/muurk/countryfinder/internal/directory"
)

// Filter returns the countries whose name contains query, ignoring case.
//
// Matching is a plain substring test on the upper-cased name and query, so it
// is not prefix, token or fuzzy matching, and only case is normalized. The
// relative order of countries is kept. An empty query matches everything.
// The result never aliases the input and is never nil.
func Filter(countries []directory.Country, query string) []directory.Country {
	out := make([]directory.Country, 0, len(countries))

	if query == "" {
		return append(out, countries...)
	}

	needle := strings.ToUpper(query)
	for _, c := range countries {
		if strings.Contains(strings.ToUpper(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}
