package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptpack/promptpack/internal/config"
	apperrors "github.com/promptpack/promptpack/internal/errors"
	"github.com/promptpack/promptpack/internal/logging"
	"github.com/promptpack/promptpack/internal/scan"
	"github.com/promptpack/promptpack/internal/tracklist"
	"github.com/promptpack/promptpack/internal/tui"
)

// runSelector runs the interactive selector.
// It is a variable so tests can substitute a scripted session.
var runSelector = tui.Run

// runEdit implements --edit: scan the project for candidates, let the
// user toggle selections, and persist the result on confirm.
// Confirm and cancel are both normal completions.
func runEdit(cmd *cobra.Command, root string, cfg *config.Config) error {
	store := tracklist.NewStore(root)

	list, err := store.Load()
	if err != nil {
		if !stderrors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		list = tracklist.New()
	}

	candidates, err := scan.New(root, cfg).Scan()
	if err != nil {
		return err
	}
	logging.Debug("scanned candidates", "count", len(candidates))

	session := tui.NewSession(candidates, list)
	confirmed, err := runSelector(session)
	if err != nil {
		return fmt.Errorf("interactive selector failed: %w", err)
	}

	if !confirmed {
		fmt.Fprintln(cmd.OutOrStdout(), "Canceled; tracked list unchanged.")
		return nil
	}

	if err := store.Save(tracklist.New(session.Selected()...)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Tracking %s.\n", pluralize(len(session.Selected()), "file"))
	return nil
}
