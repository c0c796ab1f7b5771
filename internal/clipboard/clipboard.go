// Package clipboard sends text to the operating system clipboard.
// It delegates to whatever OS-level facility is available and reports
// a clipboard error when none is present (e.g., a headless Linux host
// without xclip or xsel).
package clipboard

import (
	"github.com/atotto/clipboard"

	apperrors "github.com/promptpack/promptpack/internal/errors"
)

// Available reports whether a clipboard mechanism exists on this system.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return apperrors.ClipboardUnavailable()
	}
	if err := clipboard.WriteAll(text); err != nil {
		return apperrors.ClipboardWriteFailed(err)
	}
	return nil
}
