package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultRoot returns the default workspace root: the parent directory of
// the directory containing the running executable.
//
// The launcher binary is expected to live in a tool directory directly
// under the workspace (e.g. <root>/bin/gitignore-sync), so going two
// levels up from the executable path lands on the workspace root. The
// value is computed once at process start and passed down explicitly —
// nothing else in the program consults the executable path.
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}

	// Resolve symlinks so a launcher invoked through a symlink (e.g. from
	// ~/bin) still anchors to its real install location.
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		// Fall back to the literal path; EvalSymlinks can fail on
		// filesystems that report the executable path oddly.
		resolved = exe
	}

	return filepath.Dir(filepath.Dir(resolved)), nil
}

// IsRepository reports whether the given directory contains a Git
// repository.
//
// Both forms of .git count:
//   - a .git DIRECTORY marks a normal repository checkout
//   - a .git FILE marks a linked worktree (the file holds a "gitdir:"
//     pointer into the main repository's .git/worktrees/<name> directory)
//
// os.Lstat is used instead of os.Stat so a dangling .git symlink is not
// silently treated as absent.
func IsRepository(dir string) bool {
	_, err := os.Lstat(filepath.Join(dir, ".git"))
	return err == nil
}

// Discover returns the repositories directly under the workspace root,
// sorted by path.
//
// The root itself is included when it is a repository. First-level child
// directories are included when they are repositories, except hidden
// directories (name starting with ".") and any directory whose name
// appears in exclude. Non-directory entries are skipped. Discovery never
// recurses below the first level.
func Discover(root string, exclude []string) ([]string, error) {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	var repos []string
	if IsRepository(root) {
		repos = append(repos, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read workspace root %s: %w", root, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if excluded[name] {
			continue
		}
		candidate := filepath.Join(root, name)
		if IsRepository(candidate) {
			repos = append(repos, candidate)
		}
	}

	// os.ReadDir returns entries sorted by name, but the root (when
	// present) was prepended, so sort the full list for a stable order.
	sort.Strings(repos)
	return repos, nil
}
