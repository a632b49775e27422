// Package tui implements the interactive country browser.
//
// Built on Bubble Tea, the browser is a thin presentation layer over a
// store.Store: it renders the latest store.Snapshot and turns key presses into
// store commands (SetQuery, Select, Refresh). It never keeps a copy of the
// country data of its own.
//
// Fetches finish on their own goroutine. The browser subscribes to the store
// and a waiting tea.Cmd turns each notification into a message, so the
// screen updates as soon as a refresh lands.
//
// # Key Bindings
//
//   - Typing edits the search; the list narrows as you type
//   - ↑/↓ move the cursor
//   - Enter selects the country under the cursor
//   - Ctrl+R refreshes the list
//   - Esc clears the search
//   - Ctrl+C quits
//
// # Empty List
//
// An empty list always says why: the first load is still running, the fetch
// failed, the search matches nothing, or the directory is empty. See
// EmptyMessage.
package tui
