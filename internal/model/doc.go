// Package model defines the domain types and value objects for the
// gitignore-sync CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Outcome, Result, RepoState, RunRecord) are transient
// representations computed from the filesystem at runtime — the only
// persistent state is the optional run history kept by internal/history.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
