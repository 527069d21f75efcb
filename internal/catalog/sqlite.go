package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS items (
	position INTEGER PRIMARY KEY,
	id TEXT NOT NULL UNIQUE,
	label TEXT NOT NULL,
	locked INTEGER NOT NULL DEFAULT 0
);
`

// SQLite stores items in a single table ordered by position.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the catalog database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("catalog: create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open db: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("catalog: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("catalog: create schema: %w", err)
	}
	return nil
}

// Seed replaces all rows with n generated items.
func (s *SQLite) Seed(ctx context.Context, n int, locked []int) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("catalog: clear items: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO items (position, id, label, locked) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("catalog: prepare insert: %w", err)
	}
	defer stmt.Close()

	set := lockedSet(locked)
	for pos := 0; pos < n; pos++ {
		it := itemAt(pos, set)
		if _, err = stmt.ExecContext(ctx, pos, it.ID, it.Label, boolToInt(it.Locked)); err != nil {
			return fmt.Errorf("catalog: insert item %d: %w", pos, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit seed: %w", err)
	}
	return nil
}

func (s *SQLite) Items(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, label, locked FROM items ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("catalog: query items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var locked int
		if err := rows.Scan(&it.ID, &it.Label, &locked); err != nil {
			return nil, fmt.Errorf("catalog: scan item: %w", err)
		}
		it.Locked = locked != 0
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read items: %w", err)
	}
	return items, nil
}

func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items").Scan(&n); err != nil {
		return 0, fmt.Errorf("catalog: count items: %w", err)
	}
	return n, nil
}

// Close closes the underlying connection.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
