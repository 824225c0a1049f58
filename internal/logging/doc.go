// Package logging assembles structured slog loggers and formatting helpers used
// across quotefinder.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, tags every record of a run with its run ID, and provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Logs go to stderr by default; stdout is reserved for match output so it can
// be piped without filtering.
package logging
