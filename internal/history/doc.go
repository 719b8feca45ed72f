// Package history persists a log of sync runs in a SQLite database at
// <workspace root>/.gitignore-sync/history.db.
//
// The store is append-only from the CLI's perspective: sync records a
// row per run, and the history command reads them back newest-first.
// The database uses modernc.org/sqlite, a pure-Go driver, so the binary
// stays cgo-free.
package history
