// Package logging configures structured logging for partsort.
//
// It wraps log/slog with the repository's conventions: a console (text) or
// JSON handler selected from configuration, an optional log file under the
// configured log directory, attribute helper aliases, and a no-op logger for
// tests.
package logging
