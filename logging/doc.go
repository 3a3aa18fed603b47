// Package logging provides structured logging using Go's standard library log/slog.
//
// Loggers are built from a LoggerConfig and passed explicitly to the helpers
// that need them. Helpers depend only on the Logger interface, which
// *slog.Logger satisfies.
package logging
