// Package cli — list.go implements the "gitignore-sync list" command.
//
// The list command shows every repository discovered under the workspace
// root together with its drift state relative to the canonical template
// (in-sync, drift, or missing). An optional --state flag filters the
// output to a single state.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gitignore-sync/internal/config"
	"github.com/mmr-tortoise/gitignore-sync/internal/gitignore"
	"github.com/mmr-tortoise/gitignore-sync/internal/model"
	"github.com/mmr-tortoise/gitignore-sync/internal/workspace"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	// state filters repositories by drift state.
	// Valid values: "in-sync", "drift", "missing", "all" (default).
	state string

	// template overrides the canonical template path.
	template string
}

// RepoEntry pairs a repository with its drift state for output.
// Exported for testing of the formatting helpers in list_test.go.
type RepoEntry struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// NewListCommand creates the "list" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories and their template drift state",
		Long: `List every Git repository directly under the workspace root together
with its .gitignore state relative to the canonical template.

States:
  in-sync  the repository's .gitignore matches the template
  drift    the .gitignore exists but differs from the template
  missing  the repository has no .gitignore

Examples:
  gitignore-sync list
  gitignore-sync list --state drift
  gitignore-sync list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.state, "state", "all",
		"Filter by state: in-sync, drift, missing, all (default: all)")
	cmd.Flags().StringVar(&flags.template, "template", "",
		"Path to the canonical .gitignore template (default: resources/gitignore-template.txt under the root)")

	return cmd
}

// runList is the main logic function for the list command.
func runList(_ context.Context, flags *listFlags) error {
	// Step 1: Validate the --state flag value.
	stateFilter := flags.state
	if stateFilter != "all" {
		if _, err := model.ParseRepoState(stateFilter); err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid state filter %q: valid values are in-sync, drift, missing, all", stateFilter), nil)
		}
	}

	// Step 2: Resolve root, config, and template.
	root, err := resolveRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	templatePath := flags.template
	if templatePath == "" {
		templatePath = cfg.TemplatePath(root)
	}

	template, err := gitignore.LoadTemplate(templatePath)
	if err != nil {
		return err
	}

	// Step 3: Discover repositories (already sorted by path).
	repos, err := workspace.Discover(root, cfg.Exclude)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "repository discovery failed", err)
	}
	VerboseLog("Discovered %d repositories", len(repos))

	// Step 4: Inspect each repository's state and apply the filter.
	entries := make([]RepoEntry, 0, len(repos))
	for _, repo := range repos {
		state, err := gitignore.State(repo, template)
		if err != nil {
			return err
		}
		if stateFilter != "all" && state.String() != stateFilter {
			continue
		}
		entries = append(entries, RepoEntry{
			Path:  repo,
			Name:  repoDisplayName(root, repo),
			State: state.String(),
		})
	}

	// Step 5: Output results in the appropriate format.
	printListResult(entries)
	return nil
}

// repoDisplayName returns the repository's name relative to the
// workspace root; the root repository itself displays as ".".
func repoDisplayName(root, repo string) string {
	if repo == root {
		return "."
	}
	return filepath.Base(repo)
}

// printListResult outputs the repository list in text or JSON format,
// depending on the global --json flag.
func printListResult(entries []RepoEntry) {
	if IsJSONOutput() {
		printListResultJSON(entries)
	} else {
		printListResultText(entries)
	}
}

// printListResultJSON outputs the repository list as structured JSON.
// The top-level key is "repositories" containing an array of entries.
func printListResultJSON(entries []RepoEntry) {
	type resultJSON struct {
		Repositories []RepoEntry `json:"repositories"`
	}

	// Use an empty slice instead of nil to ensure JSON output shows []
	// instead of null when no repositories are found.
	result := resultJSON{Repositories: entries}
	if result.Repositories == nil {
		result.Repositories = []RepoEntry{}
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printListResultText outputs the repository list as a human-readable
// text table with aligned columns.
//
// The table format is:
//
//	NAME                 STATE     PATH
//	.                    in-sync   /work
//	api-server           drift     /work/api-server
func printListResultText(entries []RepoEntry) {
	if len(entries) == 0 {
		fmt.Println("No repositories found.")
		return
	}

	fmt.Printf("%-20s %-9s %s\n", "NAME", "STATE", "PATH")
	for _, entry := range entries {
		fmt.Printf("%-20s %-9s %s\n", entry.Name, entry.State, entry.Path)
	}
}
