// Package urls holds the external URLs countryfinder talks to or points at.
//
// Keeping them in one place lets the config defaults, the CLI help text and
// the terminal UI header agree on a single value.
package urls
