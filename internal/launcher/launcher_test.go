package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/gitignore-sync/internal/config"
	"github.com/mmr-tortoise/gitignore-sync/internal/model"
)

// fakeRunner records invocations instead of spawning processes, and
// returns a canned exit code.
type fakeRunner struct {
	calls    int
	gotName  string
	gotArgs  []string
	exitCode int
	err      error
}

func (f *fakeRunner) Run(name string, args []string) (int, error) {
	f.calls++
	f.gotName = name
	f.gotArgs = args
	return f.exitCode, f.err
}

// setupWorkspace creates a workspace root with the default interpreter
// and module directory layout, returning the root.
func setupWorkspace(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	venvBin := filepath.Join(root, ".venv", "bin")
	require.NoError(t, os.MkdirAll(venvBin, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(venvBin, "python"), []byte("#!/bin/sh\n"), 0755))

	require.NoError(t, os.MkdirAll(filepath.Join(root, config.DefaultModuleDir), 0755))

	return root
}

// newTestLauncher builds a Launcher against the default layout with the
// fake runner installed.
func newTestLauncher(root string, runner *fakeRunner) *Launcher {
	l := New(root, &config.Config{})
	l.Runner = runner
	return l
}

func TestLaunchMissingInterpreterNeverSpawns(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, config.DefaultModuleDir), 0755))

	runner := &fakeRunner{}
	l := newTestLauncher(root, runner)

	_, err := l.Launch(nil)
	require.Error(t, err)
	assert.Zero(t, runner.calls, "no child process may be spawned when the interpreter is absent")

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)

	var dep *model.MissingDependencyError
	require.True(t, errors.As(err, &dep))
	assert.Equal(t, l.Interpreter, dep.Path, "error must name the expected interpreter path")
}

func TestLaunchMissingModuleDirNeverSpawns(t *testing.T) {
	root := t.TempDir()
	venvBin := filepath.Join(root, ".venv", "bin")
	require.NoError(t, os.MkdirAll(venvBin, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(venvBin, "python"), []byte("#!/bin/sh\n"), 0755))

	runner := &fakeRunner{}
	l := newTestLauncher(root, runner)

	_, err := l.Launch(nil)
	require.Error(t, err)
	assert.Zero(t, runner.calls, "no child process may be spawned when the module directory is absent")

	var dep *model.MissingDependencyError
	require.True(t, errors.As(err, &dep))
	assert.Equal(t, l.ModuleDir, dep.Path, "error must name the expected module path")
}

func TestLaunchSpawnsExactlyOneChildWithOrderedArgs(t *testing.T) {
	root := setupWorkspace(t)

	runner := &fakeRunner{}
	l := newTestLauncher(root, runner)

	forwarded := []string{"--dry-run", "--quiet", "extra arg with spaces", "--weird=$VALUE"}
	code, err := l.Launch(forwarded)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	assert.Equal(t, 1, runner.calls, "exactly one child process")
	assert.Equal(t, l.Interpreter, runner.gotName)
	assert.Equal(t,
		append([]string{"-m", "x_make_gitignore_sync_x.sync", "--root", root}, forwarded...),
		runner.gotArgs,
		"forwarded arguments must follow --root verbatim, in order")
}

func TestLaunchPropagatesChildExitCode(t *testing.T) {
	root := setupWorkspace(t)

	runner := &fakeRunner{exitCode: 42}
	l := newTestLauncher(root, runner)

	code, err := l.Launch(nil)
	require.NoError(t, err)
	assert.Equal(t, 42, code, "the child's exit code is the launcher's exit code")
}

func TestLaunchSpawnFailure(t *testing.T) {
	root := setupWorkspace(t)

	runner := &fakeRunner{err: errors.New("exec format error")}
	l := newTestLauncher(root, runner)

	_, err := l.Launch(nil)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

func TestLaunchHonorsConfigOverrides(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "py", "bin"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "py", "bin", "python3"), []byte("#!/bin/sh\n"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "legacy_sync"), 0755))

	cfg := &config.Config{
		Interpreter: filepath.Join("py", "bin", "python3"),
		ModuleDir:   "legacy_sync",
	}

	runner := &fakeRunner{}
	l := New(root, cfg)
	l.Runner = runner

	_, err := l.Launch(nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "py", "bin", "python3"), runner.gotName)
	assert.Equal(t, []string{"-m", "legacy_sync.sync", "--root", root}, runner.gotArgs)
}

func TestExecRunnerReportsExitCode(t *testing.T) {
	// /bin/sh is a reasonable fixture on any platform these tests run on;
	// skip when unavailable rather than fail.
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}

	code, err := ExecRunner{}.Run("/bin/sh", []string{"-c", "exit 7"})
	require.NoError(t, err)
	assert.Equal(t, 7, code)

	code, err = ExecRunner{}.Run("/bin/sh", []string{"-c", "exit 0"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestExecRunnerSpawnFailure(t *testing.T) {
	_, err := ExecRunner{}.Run(filepath.Join(t.TempDir(), "no-such-binary"), nil)
	assert.Error(t, err)
}
