package store

import "fmt"

// Status is the phase of the fetch lifecycle.
type Status int

const (
	// Idle means no fetch is in flight and none has been applied since Close
	Idle Status = iota
	// Loading means a refresh has been requested and has not resolved yet
	Loading
	// Ready means the most recent refresh succeeded
	Ready
	// Failed means the most recent refresh failed
	Failed
)

// String returns a human-readable name for the status
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// EmptyState explains why the visible list is empty, so the presentation can
// pick the right message.
type EmptyState int

const (
	// EmptyNone means the visible list has entries
	EmptyNone EmptyState = iota
	// EmptyLoading means nothing is shown yet because a fetch is in flight
	EmptyLoading
	// EmptyFailed means the last fetch failed
	EmptyFailed
	// EmptyNoMatch means data exists but the query matches none of it
	EmptyNoMatch
	// EmptyNoData means the directory returned no countries at all
	EmptyNoData
)

// String returns a short name for the empty state
func (e EmptyState) String() string {
	switch e {
	case EmptyNone:
		return "none"
	case EmptyLoading:
		return "loading"
	case EmptyFailed:
		return "failed"
	case EmptyNoMatch:
		return "no-match"
	case EmptyNoData:
		return "no-data"
	default:
		return fmt.Sprintf("EmptyState(%d)", e)
	}
}

// classifyEmpty implements the three-way (plus loading) empty-state rule.
func classifyEmpty(status Status, fullLen, visibleLen int) EmptyState {
	if visibleLen > 0 {
		return EmptyNone
	}

	switch status {
	case Failed:
		return EmptyFailed
	case Loading:
		if fullLen > 0 {
			return EmptyNoMatch
		}
		return EmptyLoading
	default:
		if fullLen > 0 {
			return EmptyNoMatch
		}
		return EmptyNoData
	}
}
