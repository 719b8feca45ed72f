// Package cli — sync.go implements the "gitignore-sync sync" command.
//
// The sync command runs the native engine: discover repositories under
// the workspace root, load the canonical template, and apply it to each
// repository. Outcomes are reported in the original "[gitignore-sync]"
// summary format (or JSON), and the run is recorded in the local history
// store.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gitignore-sync/internal/config"
	"github.com/mmr-tortoise/gitignore-sync/internal/gitignore"
	"github.com/mmr-tortoise/gitignore-sync/internal/history"
	"github.com/mmr-tortoise/gitignore-sync/internal/model"
	"github.com/mmr-tortoise/gitignore-sync/internal/workspace"
)

// syncFlags holds the flag values for the sync command.
type syncFlags struct {
	// template overrides the canonical template path.
	template string

	// dryRun reports outcomes without writing any files.
	dryRun bool

	// quiet suppresses the summary output (errors still propagate).
	quiet bool
}

// NewSyncCommand creates the "sync" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewSyncCommand() *cobra.Command {
	flags := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Apply the canonical .gitignore template to every repository",
		Long: `Synchronize the canonical .gitignore template across every Git
repository directly under the workspace root.

Repositories without a .gitignore get one created; repositories whose
.gitignore differs from the template get it rewritten; matching
repositories are left untouched.

Examples:
  gitignore-sync sync
  gitignore-sync sync --dry-run
  gitignore-sync sync --root /work --template /work/shared/ignore.txt`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.template, "template", "",
		"Path to the canonical .gitignore template (default: resources/gitignore-template.txt under the root)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false,
		"Show the repositories that would change without writing files")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false,
		"Suppress summary output (errors still propagate)")

	return cmd
}

// runSync is the main logic function for the sync command.
func runSync(_ context.Context, flags *syncFlags) error {
	// Step 1: Resolve the workspace root and its configuration.
	root, err := resolveRoot()
	if err != nil {
		return err
	}
	VerboseLog("Workspace root: %s", root)

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	// Step 2: Load the canonical template. The --template flag wins over
	// the config file, which wins over the default location.
	templatePath := flags.template
	if templatePath == "" {
		templatePath = cfg.TemplatePath(root)
	}
	VerboseLog("Template: %s", templatePath)

	template, err := gitignore.LoadTemplate(templatePath)
	if err != nil {
		return err
	}

	// Step 3: Discover repositories and apply the template.
	repos, err := workspace.Discover(root, cfg.Exclude)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "repository discovery failed", err)
	}
	VerboseLog("Discovered %d repositories", len(repos))

	result, err := gitignore.SyncAll(repos, template, flags.dryRun)
	if err != nil {
		return err
	}

	// Step 4: Record the run. History is best-effort here — a broken
	// store must not fail a sync that already wrote its files.
	if store, histErr := history.Open(root); histErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: sync history unavailable: %v\n", histErr)
	} else {
		if _, recErr := store.Record(result, flags.dryRun); recErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record sync run: %v\n", recErr)
		}
		_ = store.Close()
	}

	// Step 5: Output the result.
	printSyncResult(result, flags)
	return nil
}

// printSyncResult outputs the sync result in text or JSON format.
func printSyncResult(result *model.Result, flags *syncFlags) {
	if IsJSONOutput() {
		out := map[string]interface{}{
			"created":   nonNil(result.Created),
			"updated":   nonNil(result.Updated),
			"unchanged": nonNil(result.Unchanged),
			"dryRun":    flags.dryRun,
			"total":     result.Total(),
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	if flags.quiet {
		return
	}
	fmt.Print(result.Summary())
}

// nonNil normalizes a nil slice to an empty one so JSON output renders
// [] instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
