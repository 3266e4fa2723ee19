// Package shell implements the line-oriented command interpreter: verb
// dispatch, per-command argument validation, and the fixed user-facing
// result strings.
//
// Each input line yields exactly one result string (possibly empty). The
// interpreter itself never writes to any stream; Run is the thin loop that
// feeds lines in and prints non-empty results.
package shell
