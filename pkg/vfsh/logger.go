package vfsh

// Logger provides a pluggable logging interface for vfsh diagnostics.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// Diagnostics never share a stream with command results: handlers write
// their formatted results to stdout, loggers write to stderr, so a piped
// session stays byte-clean.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of verbose mode.
	Info(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}
