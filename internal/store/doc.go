// Package store implements the country list state machine: fetch status,
// the authoritative list, the case-insensitive search filter and the
// selection.
//
// # Lifecycle
//
//	s := store.New(directory.NewClient(""))
//	<-s.Refresh(ctx)     // initial load; Refresh itself returns at once
//	s.SetQuery("fra")    // visible list narrows immediately
//	s.Select(id)
//	s.Refresh(ctx)       // refresh again at any time
//	s.Close()            // abandon fetches in flight, status Idle
//
// # Status
//
// A new store starts in Loading. Refresh moves any status to Loading; the
// fetch result moves it to Ready or Failed. A failed refresh never clears data
// that an earlier refresh loaded.
//
// # Overlapping Refreshes
//
// Every Refresh takes the next sequence number. Only the result of the newest
// Refresh is applied; a slow fetch that has been superseded is dropped when it
// resolves, and the status stays Loading until the newest one lands.
//
// # Empty States
//
// Snapshot.EmptyState tells the presentation why nothing is visible: the
// fetch failed, the query matches nothing, the directory is empty, or the
// first load is still running.
package store
