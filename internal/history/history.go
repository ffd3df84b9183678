// Package history persists hover lookups to a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Lookup is one recorded dictionary query.
type Lookup struct {
	ID      int64
	Word    string
	Matches int
	At      time.Time
}

// Store records lookups. Satisfies live.Recorder.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the lookup database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS lookups (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			word    TEXT NOT NULL,
			matches INTEGER NOT NULL,
			at      INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating lookups table: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores one lookup with the current timestamp.
func (s *Store) Record(word string, matches int) error {
	_, err := s.db.Exec(
		"INSERT INTO lookups (word, matches, at) VALUES (?, ?, ?)",
		word, matches, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("recording lookup: %w", err)
	}
	return nil
}

// Recent returns the most recent lookups, newest first.
func (s *Store) Recent(limit int) ([]Lookup, error) {
	rows, err := s.db.Query(
		"SELECT id, word, matches, at FROM lookups ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying lookups: %w", err)
	}
	defer rows.Close()

	var out []Lookup
	for rows.Next() {
		var l Lookup
		var at int64
		if err := rows.Scan(&l.ID, &l.Word, &l.Matches, &at); err != nil {
			return nil, fmt.Errorf("scanning lookup: %w", err)
		}
		l.At = time.Unix(at, 0)
		out = append(out, l)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
