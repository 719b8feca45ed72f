// Package gitignore implements the template sync engine.
//
// The engine is deliberately whole-file: a repository's .gitignore either
// matches the canonical template byte-for-byte or it is replaced with the
// template. There is no merging, diffing, or section-aware rewriting —
// the canonical template is the single source of truth for every
// repository in the workspace.
package gitignore
