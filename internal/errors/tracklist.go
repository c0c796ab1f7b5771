// Package errors provides error types for promptpack.
// This file contains tracked-list and clipboard error constructors.
package errors

import (
	"fmt"
	"runtime"
)

// TrackedListUnreadable creates an error for a tracked-list file that
// exists but cannot be read.
func TrackedListUnreadable(path string, readErr error) *Error {
	return &Error{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("cannot read tracked list: %s", path),
		Cause:   readErr,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check the file's permissions, or delete it and rebuild the list with 'promptpack --edit'.",
	}
}

// TrackedListUnwritable creates an error for a tracked-list save failure.
func TrackedListUnwritable(path string, writeErr error) *Error {
	return &Error{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("cannot write tracked list: %s", path),
		Cause:   writeErr,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the project directory is writable.",
	}
}

// EmptyTrackedList creates the user error for copying with nothing tracked.
func EmptyTrackedList() *Error {
	return &Error{
		Kind:       ErrEmptyList,
		Message:    "no files are tracked, nothing to copy",
		Suggestion: "Run 'promptpack --edit' to select files to track.",
	}
}

// NoReadableFiles creates an error for a copy where every tracked file
// failed to read.
func NoReadableFiles(count int) *Error {
	return &Error{
		Kind:    ErrFileRead,
		Message: fmt.Sprintf("none of the %d tracked files could be read", count),
		Suggestion: "The tracked files may have been moved or deleted.\n" +
			"  Run 'promptpack --edit' to rebuild the list.",
	}
}

// ClipboardUnavailable creates an error for a missing clipboard mechanism.
func ClipboardUnavailable() *Error {
	e := &Error{
		Kind:    ErrClipboard,
		Message: "no clipboard mechanism is available on this system",
	}
	if runtime.GOOS == "linux" {
		e.Suggestion = "Install xclip or xsel, or run inside a graphical session."
	}
	return e
}

// ClipboardWriteFailed creates an error for a failed clipboard write.
func ClipboardWriteFailed(writeErr error) *Error {
	return &Error{
		Kind:    ErrClipboard,
		Message: "failed to write to the clipboard",
		Cause:   writeErr,
	}
}
