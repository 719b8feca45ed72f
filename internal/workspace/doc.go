// Package workspace resolves the workspace root and discovers the Git
// repositories that live directly under it.
//
// Discovery is intentionally shallow: the workspace root itself (when it
// is a repository) plus its first-level child directories. Nested
// repositories, hidden directories, and explicitly excluded directory
// names are never descended into. A directory counts as a repository
// when it contains a .git entry — either a directory (normal checkout)
// or a file (linked worktree).
package workspace
