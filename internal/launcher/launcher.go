package launcher

import (
	"errors"
	"os"
	"os/exec"

	"github.com/mmr-tortoise/gitignore-sync/internal/config"
	"github.com/mmr-tortoise/gitignore-sync/internal/model"
)

// Runner executes a child process and reports its exit code. The CLI
// uses ExecRunner; tests substitute a recording fake.
type Runner interface {
	// Run starts the named program with the given arguments, blocks
	// until it exits, and returns its exit code. A non-nil error means
	// the process could not be run at all (as opposed to running and
	// exiting non-zero).
	Run(name string, args []string) (int, error)
}

// ExecRunner runs the child via os/exec with inherited stdio. The
// delegated module owns the terminal for the duration of the run — the
// launcher adds no output of its own on the success path.
type ExecRunner struct{}

// Run satisfies Runner. A child that runs and exits non-zero is NOT an
// error here; its exit code is simply returned so the launcher can
// propagate it verbatim.
func (ExecRunner) Run(name string, args []string) (int, error) {
	// #nosec G204 — the program path was existence-checked by Launch and
	// the arguments are forwarded verbatim by design.
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	// Spawn failure (binary vanished between the check and the exec,
	// permission denied, etc.) — there is no child exit code to report.
	return 0, err
}

// Launcher validates the workspace dependencies and delegates to the
// Python sync module. All paths are resolved once at construction from
// the workspace root and configuration; Launch itself does no path
// derivation.
type Launcher struct {
	// Root is the resolved workspace root, forwarded to the module via
	// --root.
	Root string

	// Interpreter is the expected absolute path of the virtual-
	// environment interpreter.
	Interpreter string

	// ModuleDir is the expected absolute path of the delegated module
	// directory under the workspace root.
	ModuleDir string

	// Module is the dotted module target passed to the interpreter's -m
	// flag (e.g. "x_make_gitignore_sync_x.sync").
	Module string

	// Runner performs the child-process invocation.
	Runner Runner
}

// New builds a Launcher for the given workspace root, applying any
// interpreter/module overrides from the workspace configuration.
func New(root string, cfg *config.Config) *Launcher {
	return &Launcher{
		Root:        root,
		Interpreter: cfg.InterpreterPath(root),
		ModuleDir:   cfg.ModuleDirPath(root),
		Module:      cfg.ModuleName() + ".sync",
		Runner:      ExecRunner{},
	}
}

// Launch performs the validate-then-delegate sequence:
//
//  1. the interpreter must exist, else MissingDependency (no spawn);
//  2. the module directory must exist, else MissingDependency (no spawn);
//  3. spawn <interpreter> -m <module> --root <root> <forwarded...> and
//     block until it exits.
//
// The returned exit code is the child's own exit code; the forwarded
// arguments are appended after --root in their original order, without
// modification.
func (l *Launcher) Launch(forwarded []string) (int, error) {
	if _, err := os.Stat(l.Interpreter); err != nil {
		dep := &model.MissingDependencyError{Resource: "virtualenv interpreter", Path: l.Interpreter}
		return 0, model.WrapCLIError(model.ExitGeneralError, "missing dependency", dep)
	}

	if _, err := os.Stat(l.ModuleDir); err != nil {
		dep := &model.MissingDependencyError{Resource: "sync module directory", Path: l.ModuleDir}
		return 0, model.WrapCLIError(model.ExitGeneralError, "missing dependency", dep)
	}

	args := append([]string{"-m", l.Module, "--root", l.Root}, forwarded...)

	code, err := l.Runner.Run(l.Interpreter, args)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitGeneralError,
			"failed to invoke delegated sync module", err)
	}
	return code, nil
}
