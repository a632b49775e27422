// Package logging provides structured logging for countryfinder.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent by default so that neither the CLI output nor the terminal UI is
// disturbed; set COUNTRYFINDER_LOG_LEVEL (or pass a level) to enable it.
//
// # Log Levels
//
//   - Debug: store status transitions, request sequence numbers
//   - Info: completed fetches (endpoint, status, record count, duration)
//   - Warn: failed fetches
//   - Error: startup failures
//
// # Configuration
//
// Initialize logging once at startup:
//
//	if err := logging.Initialize("debug", "/tmp/countryfinder.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The terminal UI owns stdout, so the tui command logs to a file. The list
// command logs to stderr.
//
// # Structured Logging
//
//	logging.LogFetch(endpoint, resp.StatusCode, len(countries), time.Since(start))
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned.
package logging
