// Package cli — check.go implements the "gitignore-sync check" command.
//
// The check command is the CI guard: it inspects every repository
// without writing anything and exits with ExitDriftDetected (3) when
// any repository's .gitignore is missing or differs from the canonical
// template. A clean workspace exits 0.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gitignore-sync/internal/config"
	"github.com/mmr-tortoise/gitignore-sync/internal/gitignore"
	"github.com/mmr-tortoise/gitignore-sync/internal/model"
	"github.com/mmr-tortoise/gitignore-sync/internal/workspace"
)

// checkFlags holds the flag values for the check command.
type checkFlags struct {
	// template overrides the canonical template path.
	template string
}

// NewCheckCommand creates the "check" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify every repository matches the template (CI guard)",
		Long: `Check every repository under the workspace root against the canonical
template without writing anything.

Exits 0 when all repositories are in sync, and exits 3 when at least
one repository has a missing or drifted .gitignore. This makes the
command suitable as a CI gate.

Examples:
  gitignore-sync check
  gitignore-sync check --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.template, "template", "",
		"Path to the canonical .gitignore template (default: resources/gitignore-template.txt under the root)")

	return cmd
}

// driftEntry pairs a repository path with its drift state for reporting.
type driftEntry struct {
	Path  string `json:"path"`
	State string `json:"state"`
}

// runCheck is the main logic function for the check command.
func runCheck(_ context.Context, flags *checkFlags) error {
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

	repos, err := workspace.Discover(root, cfg.Exclude)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "repository discovery failed", err)
	}
	VerboseLog("Checking %d repositories against %s", len(repos), templatePath)

	var drifted []driftEntry
	for _, repo := range repos {
		state, err := gitignore.State(repo, template)
		if err != nil {
			return err
		}
		if state != model.StateInSync {
			drifted = append(drifted, driftEntry{Path: repo, State: state.String()})
		}
	}

	printCheckResult(len(repos), drifted)

	if len(drifted) > 0 {
		return model.NewCLIError(model.ExitDriftDetected,
			fmt.Sprintf("%d of %d repositories out of sync", len(drifted), len(repos)))
	}
	return nil
}

// printCheckResult outputs the check findings on stdout. The failure
// exit code (when drift exists) is produced separately by runCheck, so
// machine consumers get both the report and the exit status.
func printCheckResult(total int, drifted []driftEntry) {
	if IsJSONOutput() {
		out := map[string]interface{}{
			"total":   total,
			"inSync":  total - len(drifted),
			"drifted": drifted,
		}
		if drifted == nil {
			out["drifted"] = []driftEntry{}
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(drifted) == 0 {
		fmt.Printf("[gitignore-sync] all %d repositories match template\n", total)
		return
	}
	fmt.Println("[gitignore-sync] out of sync:")
	for _, entry := range drifted {
		fmt.Printf("  - %s (%s)\n", entry.Path, entry.State)
	}
}
