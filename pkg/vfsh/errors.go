package vfsh

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSnapshotSave indicates the snapshot could not be written at shutdown.
	ErrSnapshotSave = errors.New("snapshot save failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrSnapshotSave):
		return ExitSnapshotError
	}

	return ExitGeneralError
}
