// Package logging provides concrete implementations of the vfsh.Logger
// interface.
//
// ConsoleLogger writes diagnostics to stderr and gates Verbose() behind a
// flag. NullLogger discards everything and is the default for tests.
package logging
