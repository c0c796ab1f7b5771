package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptpack/promptpack/internal/config"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .promptpack.yaml to the project root",
	Long: `Write a default .promptpack.yaml to the project root.

The config file is optional; promptpack runs with built-in defaults
when it is absent. Use init to get a starting point for customizing
the ignore policy or selector behavior.

Examples:
  promptpack init          # Write .promptpack.yaml with defaults
  promptpack init --force  # Overwrite an existing config`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(cmd)
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	path, err := config.WriteDefault(root, force)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'promptpack --edit' to select files to track.")
	return nil
}
