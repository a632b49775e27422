package directory

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of a list
func Summary(countries []Country) string {
	switch len(countries) {
	case 0:
		return "No countries"
	case 1:
		return "1 country"
	default:
		return fmt.Sprintf("%d countries", len(countries))
	}
}

// FormatCompact returns one name per line
func FormatCompact(countries []Country) string {
	var b strings.Builder
	for _, c := range countries {
		b.WriteString(c.Name)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatDetailed returns a numbered table with capitals, truncating names to
// fit width. A width below 40 is treated as 40.
func FormatDetailed(countries []Country, width int) string {
	if width < 40 {
		width = 40
	}

	numWidth := len(fmt.Sprintf("%d", len(countries)))
	// number, ". ", name column, two spaces, capital column
	nameWidth := (width - numWidth - 4) * 3 / 5
	capWidth := width - numWidth - 4 - nameWidth

	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s ===\n", Summary(countries)))
	for i, c := range countries {
		capital := c.Capital
		if capital == "" {
			capital = "-"
		}
		b.WriteString(fmt.Sprintf("%*d. %-*s  %s\n",
			numWidth, i+1,
			nameWidth, truncate(c.Name, nameWidth),
			truncate(capital, capWidth)))
	}

	return b.String()
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
