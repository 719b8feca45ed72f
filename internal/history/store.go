package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mmr-tortoise/gitignore-sync/internal/model"
)

// DefaultLimit caps Recent queries when the caller does not specify one.
const DefaultLimit = 20

// Store wraps the SQLite run-history database for one workspace.
type Store struct {
	db   *sql.DB
	root string
}

// Open creates (if necessary) and opens the history database under the
// workspace root. Failures are CLIErrors with ExitHistoryError so the
// history command can fail hard while sync treats them as warnings.
func Open(root string) (*Store, error) {
	dir := filepath.Join(root, ".gitignore-sync")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, model.WrapCLIError(model.ExitHistoryError,
			fmt.Sprintf("failed to create history directory %s", dir), err)
	}

	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitHistoryError,
			fmt.Sprintf("failed to open history database %s", dbPath), err)
	}

	s := &Store{db: db, root: root}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, model.WrapCLIError(model.ExitHistoryError,
			"failed to migrate history database", err)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		ran_at    DATETIME NOT NULL,
		root      TEXT NOT NULL,
		created   INTEGER NOT NULL DEFAULT 0,
		updated   INTEGER NOT NULL DEFAULT 0,
		unchanged INTEGER NOT NULL DEFAULT 0,
		dry_run   INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_runs_ran_at ON runs(ran_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record inserts one run into the history and returns the stored record.
func (s *Store) Record(result *model.Result, dryRun bool) (*model.RunRecord, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(
		"INSERT INTO runs (ran_at, root, created, updated, unchanged, dry_run) VALUES (?, ?, ?, ?, ?, ?)",
		now, s.root, len(result.Created), len(result.Updated), len(result.Unchanged), dryRun,
	)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitHistoryError, "failed to record sync run", err)
	}

	id, _ := res.LastInsertId()
	return &model.RunRecord{
		ID:        id,
		RanAt:     now,
		Root:      s.root,
		Created:   len(result.Created),
		Updated:   len(result.Updated),
		Unchanged: len(result.Unchanged),
		DryRun:    dryRun,
	}, nil
}

// Recent returns up to limit runs, newest first. A non-positive limit
// falls back to DefaultLimit.
func (s *Store) Recent(limit int) ([]model.RunRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		"SELECT id, ran_at, root, created, updated, unchanged, dry_run FROM runs ORDER BY ran_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitHistoryError, "failed to query sync history", err)
	}
	defer rows.Close()

	var records []model.RunRecord
	for rows.Next() {
		var r model.RunRecord
		if err := rows.Scan(&r.ID, &r.RanAt, &r.Root, &r.Created, &r.Updated, &r.Unchanged, &r.DryRun); err != nil {
			return nil, model.WrapCLIError(model.ExitHistoryError, "failed to scan history row", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, model.WrapCLIError(model.ExitHistoryError, "failed to read sync history", err)
	}
	return records, nil
}
