package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeIsValid(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    bool
	}{
		{OutcomeCreated, true},
		{OutcomeUpdated, true},
		{OutcomeUnchanged, true},
		{Outcome("deleted"), false},
		{Outcome(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.IsValid())
		})
	}
}

func TestOutcomeChanged(t *testing.T) {
	assert.True(t, OutcomeCreated.Changed())
	assert.True(t, OutcomeUpdated.Changed())
	assert.False(t, OutcomeUnchanged.Changed())
}

func TestParseOutcome(t *testing.T) {
	outcome, err := ParseOutcome("Created")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, outcome)

	_, err = ParseOutcome("bogus")
	assert.Error(t, err)
}

func TestParseRepoState(t *testing.T) {
	tests := []struct {
		input   string
		want    RepoState
		wantErr bool
	}{
		{"in-sync", StateInSync, false},
		{"DRIFT", StateDrift, false},
		{"missing", StateMissing, false},
		{"synced", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			state, err := ParseRepoState(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestResultChangedAndTotal(t *testing.T) {
	empty := &Result{}
	assert.False(t, empty.Changed())
	assert.Zero(t, empty.Total())

	clean := &Result{Unchanged: []string{"/w/a", "/w/b"}}
	assert.False(t, clean.Changed())
	assert.Equal(t, 2, clean.Total())

	dirty := &Result{Created: []string{"/w/c"}, Unchanged: []string{"/w/a"}}
	assert.True(t, dirty.Changed())
	assert.Equal(t, 2, dirty.Total())
}

func TestCLIErrorMessageAndUnwrap(t *testing.T) {
	underlying := errors.New("disk exploded")
	err := WrapCLIError(ExitGeneralError, "sync failed", underlying)

	assert.Equal(t, "sync failed: disk exploded", err.Error())
	assert.Equal(t, ExitGeneralError, err.Code)
	assert.True(t, errors.Is(err, underlying), "Unwrap should expose the underlying error")

	bare := NewCLIError(ExitTemplateNotFound, "template file not found: /x")
	assert.Equal(t, "template file not found: /x", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestMissingDependencyErrorMessage(t *testing.T) {
	err := &MissingDependencyError{
		Resource: "virtualenv interpreter",
		Path:     "/work/.venv/bin/python",
	}

	assert.Equal(t,
		"virtualenv interpreter not found at expected path: /work/.venv/bin/python",
		err.Error())
}

func TestMissingDependencyErrorThroughCLIError(t *testing.T) {
	dep := &MissingDependencyError{Resource: "sync module directory", Path: "/work/x_make_gitignore_sync_x"}
	wrapped := WrapCLIError(ExitGeneralError, "missing dependency", dep)

	var got *MissingDependencyError
	require.True(t, errors.As(wrapped, &got))
	assert.Equal(t, dep.Path, got.Path)
}
