package model

import (
	"fmt"
	"strings"
	"time"
)

// Outcome represents the result of applying the canonical template to a
// single repository. Each repository in a sync run receives exactly one
// outcome:
//
//	created   — no .gitignore existed; the template was written fresh
//	updated   — a .gitignore existed with different content; it was replaced
//	unchanged — the .gitignore already matched the template byte-for-byte
type Outcome string

const (
	// OutcomeCreated indicates the repository had no .gitignore and one
	// was created from the template.
	OutcomeCreated Outcome = "created"

	// OutcomeUpdated indicates the repository's .gitignore differed from
	// the template and was rewritten.
	OutcomeUpdated Outcome = "updated"

	// OutcomeUnchanged indicates the repository's .gitignore already
	// matched the template exactly.
	OutcomeUnchanged Outcome = "unchanged"
)

// String returns the string representation of Outcome.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and logging.
func (o Outcome) String() string {
	return string(o)
}

// IsValid checks whether the Outcome value is one of the predefined
// valid outcomes.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeCreated, OutcomeUpdated, OutcomeUnchanged:
		return true
	default:
		return false
	}
}

// Changed reports whether the outcome represents a write (or, in dry-run
// mode, a write that would have happened).
func (o Outcome) Changed() bool {
	return o == OutcomeCreated || o == OutcomeUpdated
}

// ParseOutcome converts a string to an Outcome.
// Returns an error if the string does not match any valid outcome.
func ParseOutcome(s string) (Outcome, error) {
	outcome := Outcome(strings.ToLower(s))
	if !outcome.IsValid() {
		return "", fmt.Errorf("invalid outcome: %q (valid: created, updated, unchanged)", s)
	}
	return outcome, nil
}

// RepoState represents the drift state of a repository relative to the
// canonical template, as reported by the list command. It is the
// read-only counterpart of Outcome:
//
//	missing → a sync would report created
//	drift   → a sync would report updated
//	in-sync → a sync would report unchanged
type RepoState string

const (
	// StateInSync indicates the repository's .gitignore matches the template.
	StateInSync RepoState = "in-sync"

	// StateDrift indicates the repository's .gitignore exists but differs
	// from the template.
	StateDrift RepoState = "drift"

	// StateMissing indicates the repository has no .gitignore at all.
	StateMissing RepoState = "missing"
)

// String returns the string representation of RepoState.
func (s RepoState) String() string {
	return string(s)
}

// IsValid checks whether the RepoState value is one of the predefined
// valid states.
func (s RepoState) IsValid() bool {
	switch s {
	case StateInSync, StateDrift, StateMissing:
		return true
	default:
		return false
	}
}

// ParseRepoState converts a string to a RepoState.
// Returns an error if the string does not match any valid state.
func ParseRepoState(s string) (RepoState, error) {
	state := RepoState(strings.ToLower(s))
	if !state.IsValid() {
		return "", fmt.Errorf("invalid repository state: %q (valid: in-sync, drift, missing)", s)
	}
	return state, nil
}

// Result aggregates the per-repository outcomes of a single sync run.
// The slices hold repository paths in discovery order (sorted).
type Result struct {
	// Created lists repositories whose .gitignore was created.
	Created []string `json:"created"`

	// Updated lists repositories whose .gitignore was rewritten.
	Updated []string `json:"updated"`

	// Unchanged lists repositories that already matched the template.
	Unchanged []string `json:"unchanged"`
}

// Changed reports whether any repository was (or would be) written.
func (r *Result) Changed() bool {
	return len(r.Created) > 0 || len(r.Updated) > 0
}

// Total returns the number of repositories covered by the run.
func (r *Result) Total() int {
	return len(r.Created) + len(r.Updated) + len(r.Unchanged)
}

// Summary renders the human-readable run summary. The format is stable
// and matched by downstream tooling that scrapes the "[gitignore-sync]"
// prefix:
//
//	[gitignore-sync] created:
//	  - /work/repo-a
//	[gitignore-sync] updated:
//	  - /work/repo-b
//
// When nothing changed, a single "already match" line is produced.
func (r *Result) Summary() string {
	var b strings.Builder

	if len(r.Created) > 0 {
		b.WriteString("[gitignore-sync] created:\n")
		for _, path := range r.Created {
			fmt.Fprintf(&b, "  - %s\n", path)
		}
	}
	if len(r.Updated) > 0 {
		b.WriteString("[gitignore-sync] updated:\n")
		for _, path := range r.Updated {
			fmt.Fprintf(&b, "  - %s\n", path)
		}
	}
	if len(r.Created) == 0 && len(r.Updated) == 0 {
		b.WriteString("[gitignore-sync] all repositories already match template\n")
	}

	return b.String()
}

// RunRecord is one row of the sync run history. Records are persisted by
// internal/history and surfaced by the history command.
type RunRecord struct {
	// ID is the auto-incremented database identifier.
	ID int64 `json:"id"`

	// RanAt is the UTC timestamp of the run.
	RanAt time.Time `json:"ranAt"`

	// Root is the workspace root the run operated on.
	Root string `json:"root"`

	// Created, Updated, and Unchanged are the per-outcome repository counts.
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`

	// DryRun indicates the run reported outcomes without writing files.
	DryRun bool `json:"dryRun"`
}

// ExitCode defines standard CLI exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred. The two
	// launch-time MissingDependency failures (interpreter absent, module
	// directory absent) also exit with this code.
	ExitGeneralError ExitCode = 1

	// ExitTemplateNotFound indicates the canonical template file was not
	// found at the expected path.
	ExitTemplateNotFound ExitCode = 2

	// ExitDriftDetected indicates the check command found at least one
	// repository whose .gitignore does not match the template.
	ExitDriftDetected ExitCode = 3

	// ExitConfigError indicates the workspace configuration file exists
	// but could not be parsed or failed validation.
	ExitConfigError ExitCode = 4

	// ExitHistoryError indicates the run history store could not be
	// opened or queried.
	ExitHistoryError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// MissingDependencyError reports that a filesystem dependency the
// launcher requires — the virtual-environment interpreter or the
// delegated module directory — does not exist at its expected path.
// The launcher never spawns a child process after one of these.
type MissingDependencyError struct {
	// Resource names the missing dependency (e.g. "interpreter",
	// "module directory").
	Resource string

	// Path is the expected filesystem location that was checked.
	Path string
}

// Error satisfies the error interface. The message always identifies
// the expected path so the user can create or relocate the dependency.
func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s not found at expected path: %s", e.Resource, e.Path)
}
