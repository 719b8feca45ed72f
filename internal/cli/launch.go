// Package cli — launch.go implements the "gitignore-sync launch" command.
//
// The launch command delegates to the legacy Python sync module. It
// validates two workspace dependencies — the virtual-environment
// interpreter and the delegated module directory — and then spawns
//
//	<interpreter> -m x_make_gitignore_sync_x.sync --root <root> <args...>
//
// blocking until the child exits and propagating its exit code.
//
// Flag parsing is disabled on this command so every argument after the
// optional positional workspace-root override is forwarded to the
// module verbatim, in its original order. This means the global --root
// flag does not apply here; the override is the first positional
// argument instead.
package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gitignore-sync/internal/config"
	"github.com/mmr-tortoise/gitignore-sync/internal/launcher"
	"github.com/mmr-tortoise/gitignore-sync/internal/model"
	"github.com/mmr-tortoise/gitignore-sync/internal/workspace"
)

// NewLaunchCommand creates the "launch" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewLaunchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch [workspace-root] [-- forwarded args...]",
		Short: "Delegate to the legacy Python sync module",
		Long: `Validate the workspace's virtual-environment interpreter and the
delegated sync module directory, then invoke the module with
--root <workspace root> plus any forwarded arguments.

The optional first argument overrides the workspace root; without it,
the root defaults to the parent of the launcher's own directory. All
remaining arguments are forwarded to the module unmodified.

Examples:
  gitignore-sync launch
  gitignore-sync launch /work --dry-run
  gitignore-sync launch --quiet`,

		// All arguments (including flag-shaped ones) must reach the
		// delegated module untouched, so cobra must not parse them.
		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			// With flag parsing disabled, --help would be forwarded to
			// the module; intercept it explicitly.
			if len(args) > 0 && (args[0] == "--help" || args[0] == "-h") {
				return cmd.Help()
			}
			return runLaunch(args)
		},
	}

	return cmd
}

// runLaunch is the main logic function for the launch command.
func runLaunch(args []string) error {
	// Step 1: Determine the workspace root. A first argument that is not
	// flag-shaped is the override; everything else is forwarded.
	rootOverride, forwarded := splitLaunchArgs(args)

	var root string
	if rootOverride != "" {
		abs, err := filepath.Abs(rootOverride)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid workspace root %q", rootOverride), err)
		}
		root = abs
	} else {
		defaultRoot, err := workspace.DefaultRoot()
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				"failed to resolve default workspace root", err)
		}
		root = defaultRoot
	}
	VerboseLog("Workspace root: %s", root)

	// Step 2: Apply workspace config overrides (interpreter, moduleDir).
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	// Step 3: Validate dependencies and delegate. Launch never spawns a
	// child when either existence check fails.
	l := launcher.New(root, cfg)
	VerboseLog("Interpreter: %s", l.Interpreter)
	VerboseLog("Module directory: %s", l.ModuleDir)

	code, err := l.Launch(forwarded)
	if err != nil {
		return err
	}
	if code != 0 {
		// The child already reported its own failure; propagate the
		// code without additional output.
		return &childExitError{code: code}
	}
	return nil
}

// splitLaunchArgs separates the optional positional workspace-root
// override from the arguments forwarded to the delegated module.
//
// The first argument counts as the override only when it is not
// flag-shaped (does not start with "-"); a leading "--" separator is
// consumed so "launch -- --dry-run" forwards "--dry-run". Forwarded
// arguments are returned exactly as given, in order.
func splitLaunchArgs(args []string) (rootOverride string, forwarded []string) {
	if len(args) > 0 && args[0] == "--" {
		return "", args[1:]
	}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		rootOverride = args[0]
		args = args[1:]
		if len(args) > 0 && args[0] == "--" {
			args = args[1:]
		}
		return rootOverride, args
	}
	return "", args
}
