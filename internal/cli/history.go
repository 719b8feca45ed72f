// Package cli — history.go implements the "gitignore-sync history" command.
//
// The history command lists recent sync runs recorded in the workspace's
// SQLite history store (created lazily by the sync command). Unlike
// sync, which treats a broken store as a warning, history fails hard
// with ExitHistoryError when the store cannot be opened or queried.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gitignore-sync/internal/history"
	"github.com/mmr-tortoise/gitignore-sync/internal/model"
)

// historyFlags holds the flag values for the history command.
type historyFlags struct {
	// limit caps the number of runs shown, newest first.
	limit int
}

// NewHistoryCommand creates the "history" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewHistoryCommand() *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sync runs",
		Long: `Show the most recent sync runs recorded for the workspace, newest
first. Each run lists how many repositories were created, updated, and
unchanged, and whether it was a dry run.

Examples:
  gitignore-sync history
  gitignore-sync history --limit 5 --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), flags)
		},
	}

	cmd.Flags().IntVar(&flags.limit, "limit", history.DefaultLimit,
		"Maximum number of runs to show")

	return cmd
}

// runHistory is the main logic function for the history command.
func runHistory(_ context.Context, flags *historyFlags) error {
	root, err := resolveRoot()
	if err != nil {
		return err
	}

	store, err := history.Open(root)
	if err != nil {
		return err // Open already returns CLIError with ExitHistoryError
	}
	defer func() { _ = store.Close() }()

	records, err := store.Recent(flags.limit)
	if err != nil {
		return err
	}
	VerboseLog("Loaded %d history records", len(records))

	printHistoryResult(records)
	return nil
}

// printHistoryResult outputs the run history in text or JSON format.
func printHistoryResult(records []model.RunRecord) {
	if IsJSONOutput() {
		type resultJSON struct {
			Runs []model.RunRecord `json:"runs"`
		}
		result := resultJSON{Runs: records}
		if result.Runs == nil {
			result.Runs = []model.RunRecord{}
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(records) == 0 {
		fmt.Println("No sync runs recorded yet.")
		return
	}

	fmt.Printf("%-5s %-20s %-8s %-8s %-10s %s\n",
		"ID", "RAN AT", "CREATED", "UPDATED", "UNCHANGED", "DRY-RUN")
	for _, r := range records {
		dry := "no"
		if r.DryRun {
			dry = "yes"
		}
		fmt.Printf("%-5d %-20s %-8d %-8d %-10d %s\n",
			r.ID, r.RanAt.Format("2006-01-02 15:04:05"), r.Created, r.Updated, r.Unchanged, dry)
	}
}
