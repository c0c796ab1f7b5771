// Package cmd provides the CLI commands for promptpack.
package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/promptpack/promptpack/internal/config"
	apperrors "github.com/promptpack/promptpack/internal/errors"
	"github.com/promptpack/promptpack/internal/logging"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "promptpack",
	Short: "Copy curated project files to the clipboard for LLM prompts",
	Long: `Promptpack keeps a small, persistent list of project files and copies
their concatenated contents to the system clipboard, each wrapped with a
path header and code-fence delimiters, ready to paste into an LLM chat.

Run with no flags to copy the tracked files. Run with --edit to open an
interactive selector and change which files are tracked. The tracked
list lives in a .promptpack file at the project root, one path per line.`,
	Args:          rootArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().BoolP("edit", "e", false, "Interactively select which files to track")
	rootCmd.Flags().Bool("print", false, "Also write the rendered text to stdout")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("root", "", "Project root directory (default: current directory)")

	rootCmd.SetFlagErrorFunc(flagError)
}

// rootArgs rejects positional arguments as usage errors so they map to
// the usage exit code.
func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return apperrors.New(apperrors.ErrUsage, fmt.Sprintf("unknown command %q", args[0]))
	}
	return nil
}

// flagError converts cobra flag-parse failures into usage errors.
func flagError(cmd *cobra.Command, err error) error {
	return apperrors.Wrap(err, apperrors.ErrUsage, "invalid invocation")
}

// runRoot dispatches between copy mode (default) and edit mode (--edit).
func runRoot(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFromDir(root)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrConfig, "failed to load configuration")
	}

	if err := initLogging(cmd, cfg); err != nil {
		// Non-fatal: warn but continue without logging.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		defer func() { _ = logging.CloseGlobal() }()
	}
	logging.Debug("promptpack starting", "version", Version, "root", root)

	edit, _ := cmd.Flags().GetBool("edit")
	doPrint, _ := cmd.Flags().GetBool("print")

	if edit {
		if doPrint {
			return apperrors.New(apperrors.ErrUsage, "--print cannot be combined with --edit")
		}
		return runEdit(cmd, root, cfg)
	}
	return runCopy(cmd, root, doPrint)
}

// resolveRoot returns the absolute project root from the --root flag,
// defaulting to the current working directory.
func resolveRoot(cmd *cobra.Command) (string, error) {
	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		root = wd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return "", apperrors.New(apperrors.ErrUsage, fmt.Sprintf("project root is not a directory: %s", abs))
	}
	return abs, nil
}

// initLogging sets up the global logger from config and the verbose flag.
func initLogging(cmd *cobra.Command, cfg *config.Config) error {
	level := logging.ParseLevel(cfg.Log.Level)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logging.LevelDebug
	}
	return logging.InitGlobal(&logging.Config{
		Level: level,
		File:  cfg.Log.File,
	})
}

// Execute runs the root command and returns the process exit code.
// This is called by main.main().
func Execute() int {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("promptpack {{.Version}}\n")

	err := rootCmd.Execute()
	if err == nil {
		return apperrors.ExitOK
	}

	var perr *apperrors.Error
	if stderrors.As(err, &perr) {
		fmt.Fprint(os.Stderr, perr.Format())
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if stderrors.Is(err, apperrors.ErrUsage) {
		fmt.Fprintln(os.Stderr, rootCmd.UsageString())
	}
	return apperrors.ExitCode(err)
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
