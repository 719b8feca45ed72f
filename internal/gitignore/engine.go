package gitignore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/gitignore-sync/internal/model"
)

// TargetName is the file the engine manages inside each repository.
const TargetName = ".gitignore"

// LoadTemplate reads the canonical template file.
//
// A missing template is a CLIError with ExitTemplateNotFound whose
// message names the expected path, so the user can tell a misconfigured
// template path apart from a genuinely absent file. Any other read
// failure (permissions, I/O) is wrapped as a general error.
func LoadTemplate(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.NewCLIError(model.ExitTemplateNotFound,
				fmt.Sprintf("template file not found: %s", path))
		}
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read template %s", path), err)
	}
	return data, nil
}

// SyncRepo applies the template to a single repository and classifies
// the result.
//
// The target is <repo>/.gitignore. A missing target yields
// OutcomeCreated, a byte-equal target yields OutcomeUnchanged, and
// anything else yields OutcomeUpdated. When dryRun is true the outcome
// is computed identically but nothing is written to disk.
func SyncRepo(repo string, template []byte, dryRun bool) (model.Outcome, error) {
	target := filepath.Join(repo, TargetName)

	current, err := os.ReadFile(target)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to read %s", target), err)
		}
		if !dryRun {
			if err := os.WriteFile(target, template, 0644); err != nil {
				return "", model.WrapCLIError(model.ExitGeneralError,
					fmt.Sprintf("failed to write %s", target), err)
			}
		}
		return model.OutcomeCreated, nil
	}

	if bytes.Equal(current, template) {
		return model.OutcomeUnchanged, nil
	}

	if !dryRun {
		if err := os.WriteFile(target, template, 0644); err != nil {
			return "", model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to write %s", target), err)
		}
	}
	return model.OutcomeUpdated, nil
}

// SyncAll applies the template to every repository in order and
// aggregates the outcomes into a Result.
//
// The first repository failure aborts the run — a half-synced workspace
// with a reported error is preferable to silently skipping repositories.
func SyncAll(repos []string, template []byte, dryRun bool) (*model.Result, error) {
	result := &model.Result{}

	for _, repo := range repos {
		outcome, err := SyncRepo(repo, template, dryRun)
		if err != nil {
			return nil, err
		}
		switch outcome {
		case model.OutcomeCreated:
			result.Created = append(result.Created, repo)
		case model.OutcomeUpdated:
			result.Updated = append(result.Updated, repo)
		default:
			result.Unchanged = append(result.Unchanged, repo)
		}
	}

	return result, nil
}

// State inspects a repository without writing anything and reports its
// drift state relative to the template. This backs the list and check
// commands.
func State(repo string, template []byte) (model.RepoState, error) {
	target := filepath.Join(repo, TargetName)

	current, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return model.StateMissing, nil
		}
		return "", model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read %s", target), err)
	}

	if bytes.Equal(current, template) {
		return model.StateInSync, nil
	}
	return model.StateDrift, nil
}
