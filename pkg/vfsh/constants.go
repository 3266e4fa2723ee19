package vfsh

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Session ended normally
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration
	ExitSnapshotError = 11 // Snapshot could not be written at shutdown
)

// DefaultPrompt is shown before each read when stdin is a terminal.
const DefaultPrompt = "vfsh> "
