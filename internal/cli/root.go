// Package cli implements the cobra-based CLI commands for gitignore-sync.
//
// Each subcommand (sync, check, list, launch, history) is defined in its
// own file within this package. This file defines the root command that
// serves as the parent for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gitignore-sync/internal/model"
	"github.com/mmr-tortoise/gitignore-sync/internal/workspace"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// rootFlag is the workspace root override. When empty, the root
	// defaults to the parent directory of the launcher's own location
	// (see workspace.DefaultRoot).
	rootFlag string

	// jsonOutput controls whether command output is formatted as JSON.
	// When false (default), output uses human-readable text format.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by
// subcommands (sync, check, list, launch, history).
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitignore-sync",
		Short: "Keep a canonical .gitignore synchronized across a workspace",
		Long: `gitignore-sync keeps a single canonical .gitignore template synchronized
across every Git repository directly under a workspace root.

The native sync engine discovers repositories, compares each .gitignore
against the template, and rewrites the ones that drift. The launch
command delegates to the legacy Python implementation for workspaces
that still carry it.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// PersistentFlags are inherited by all subcommands. Note: the launch
	// command disables flag parsing to forward arguments verbatim, so its
	// workspace-root override is positional rather than via --root.
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "",
		"Workspace root (default: parent of the launcher's own directory)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Register subcommands. Each subcommand is defined in its own file
	// (sync.go, check.go, etc.) and returns a *cobra.Command.
	rootCmd.AddCommand(NewSyncCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewLaunchCommand())
	rootCmd.AddCommand(NewHistoryCommand())

	return rootCmd
}

// childExitError is returned by the launch command when the delegated
// module ran but exited non-zero. The child already reported its own
// failure on the inherited stderr, so Execute propagates the code
// without printing anything further.
type childExitError struct {
	code int
}

func (e *childExitError) Error() string {
	return fmt.Sprintf("delegated module exited with code %d", e.code)
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; a childExitError propagates the delegated module's code
// silently; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var child *childExitError
		if errors.As(err, &child) {
			os.Exit(child.code)
		}

		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode, because stdout is
		// reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// resolveRoot determines the workspace root for the current invocation:
// the --root flag when given, otherwise the process-wide default (parent
// of the launcher's own directory). The result is always absolute.
func resolveRoot() (string, error) {
	if rootFlag != "" {
		abs, err := filepath.Abs(rootFlag)
		if err != nil {
			return "", model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid workspace root %q", rootFlag), err)
		}
		return abs, nil
	}

	root, err := workspace.DefaultRoot()
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError,
			"failed to resolve default workspace root", err)
	}
	return root, nil
}
