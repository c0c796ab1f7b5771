package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptpack/promptpack/internal/clipboard"
	apperrors "github.com/promptpack/promptpack/internal/errors"
	"github.com/promptpack/promptpack/internal/logging"
	"github.com/promptpack/promptpack/internal/render"
	"github.com/promptpack/promptpack/internal/tracklist"
)

// copyText places text on the system clipboard.
// It is a variable so tests can substitute a fake sink.
var copyText = clipboard.Copy

// runCopy implements the default mode: load the tracked list, render
// it, and copy the result to the clipboard.
func runCopy(cmd *cobra.Command, root string, doPrint bool) error {
	store := tracklist.NewStore(root)

	list, err := store.Load()
	if err != nil {
		if !stderrors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		// No tracked list yet is the same as an empty one.
		list = tracklist.New()
	}

	if list.Len() == 0 {
		return apperrors.EmptyTrackedList()
	}

	res := render.New(root).Render(list)
	for _, w := range res.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), w.String())
	}
	if len(res.Rendered) == 0 {
		return apperrors.NoReadableFiles(list.Len())
	}

	if doPrint {
		fmt.Fprint(cmd.OutOrStdout(), res.Text)
	}

	if err := copyText(res.Text); err != nil {
		return err
	}
	logging.Debug("copied rendered files", "count", len(res.Rendered), "bytes", len(res.Text))

	fmt.Fprintf(cmd.OutOrStdout(), "Copied %s to the clipboard.\n", pluralize(len(res.Rendered), "file"))
	if n := len(res.Warnings); n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Skipped %s that could not be read.\n", pluralize(n, "file"))
	}
	return nil
}

// pluralize formats a count with its singular or plural noun.
func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
