// Package errors provides error types for promptpack.
// This file maps error kinds to process exit codes.
package errors

import "errors"

// Exit codes returned by the promptpack process.
const (
	// ExitOK indicates success.
	ExitOK = 0
	// ExitFailure indicates a config or I/O failure.
	ExitFailure = 1
	// ExitUsage indicates an invalid command-line invocation.
	ExitUsage = 2
	// ExitEmptyList indicates a copy was requested with nothing tracked.
	ExitEmptyList = 3
	// ExitClipboard indicates the clipboard was unavailable or the write failed.
	ExitClipboard = 4
)

// ExitCode returns the process exit code for the given error.
// A nil error maps to ExitOK; errors of unknown kind map to ExitFailure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrEmptyList):
		return ExitEmptyList
	case errors.Is(err, ErrClipboard):
		return ExitClipboard
	default:
		return ExitFailure
	}
}
