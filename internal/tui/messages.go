package tui

import (
	"fmt"

	"github.com/muurk/countryfinder/internal/directory"
	"github.com/muurk/countryfinder/internal/store"
)

// User-facing text
const (
	ListTitle         = "List of countries"
	SearchPlaceholder = "Search Here"
	LoadingMessage    = "Loading countries..."
	NoDataMessage     = "No Country found"
)

// NoMatchMessage is shown when countries are loaded but none contains query.
func NoMatchMessage(query string) string {
	return fmt.Sprintf("No country matches %q", query)
}

// EmptyMessage returns the text to show in place of an empty list, or "" when
// the snapshot has visible rows.
func EmptyMessage(snap store.Snapshot) string {
	switch snap.EmptyState() {
	case store.EmptyLoading:
		return LoadingMessage
	case store.EmptyFailed:
		return directory.UserMessage
	case store.EmptyNoMatch:
		return NoMatchMessage(snap.Query)
	case store.EmptyNoData:
		return NoDataMessage
	default:
		return ""
	}
}
