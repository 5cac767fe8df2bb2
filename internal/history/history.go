// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package history records past searches in a local SQLite database under the
// state directory, for the `history` command and offline recall.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/inventorycapture/partscout/pkg/types"
)

const dbFile = "history.db"

// Entry is one recorded search.
type Entry struct {
	ID         int64
	Query      types.Query
	NumResults int
	SearchedAt time.Time
}

// Store manages the search history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database under stateDir.
func Open(stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	path := filepath.Join(stateDir, dbFile)
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS searches (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			field       TEXT NOT NULL,
			match       TEXT NOT NULL,
			value       TEXT NOT NULL,
			num_results INTEGER NOT NULL,
			searched_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_searches_at ON searches(searched_at DESC);
	`)
	return err
}

// Record stores one executed search and its result count.
func (s *Store) Record(ctx context.Context, q types.Query, numResults int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (field, match, value, num_results, searched_at) VALUES (?, ?, ?, ?, ?)`,
		string(q.Field), string(q.Match), q.Value, numResults, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// Recent returns the most recent searches, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, field, match, value, num_results, searched_at
		   FROM searches ORDER BY searched_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var field, match string
		if err := rows.Scan(&e.ID, &field, &match, &e.Query.Value, &e.NumResults, &e.SearchedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Query.Field = types.SearchField(field)
		e.Query.Match = types.MatchType(match)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
