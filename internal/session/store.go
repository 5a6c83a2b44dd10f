// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/session/store.go
// Summary: SQLite-backed persistence for session records, so the directory
// survives a daemon restart. Follows the load/create-default-on-first-run
// shape of config/store.go, but against a database table instead of a JSON
// file on disk.

package session

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a sqlite database holding one row per session.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the sqlite file path under the user's config
// directory, mirroring config.configRoot's "texelation" subdirectory
// convention but for this daemon's own name.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: resolving config dir: %w", err)
	}
	root := filepath.Join(dir, "webterm")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("session: creating config dir: %w", err)
	}
	return filepath.Join(root, "sessions.db"), nil
}

// OpenStore opens (creating if necessary) the sqlite database at path and
// ensures the sessions table exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("session: opening %s: %w", path, err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	const stmt = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL DEFAULT '',
	created_at  INTEGER NOT NULL,
	last_active INTEGER NOT NULL
)`
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("session: migrating schema: %w", err)
	}
	return nil
}

// LoadAll reads every persisted session record. Failures reading an
// individual row are logged and skipped rather than aborting the whole
// load, matching config/store.go's tolerant "log and fall back to defaults"
// style for a single corrupt entry.
func (s *Store) LoadAll() ([]*Record, error) {
	rows, err := s.db.Query(`SELECT id, title, created_at, last_active FROM sessions`)
	if err != nil {
		return nil, fmt.Errorf("session: loading sessions: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var (
			id, title        string
			createdAt, lastA int64
		)
		if err := rows.Scan(&id, &title, &createdAt, &lastA); err != nil {
			log.Printf("session: skipping malformed row: %v", err)
			continue
		}
		records = append(records, &Record{
			ID:         id,
			Title:      title,
			CreatedAt:  time.Unix(createdAt, 0),
			LastActive: time.Unix(lastA, 0),
		})
	}
	return records, rows.Err()
}

// Save inserts or updates a session record.
func (s *Store) Save(r *Record) error {
	const stmt = `
INSERT INTO sessions (id, title, created_at, last_active)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET title = excluded.title, last_active = excluded.last_active`
	_, err := s.db.Exec(stmt, r.ID, r.Title, r.CreatedAt.Unix(), r.LastActive.Unix())
	if err != nil {
		return fmt.Errorf("session: saving %s: %w", r.ID, err)
	}
	return nil
}

// Delete removes a session row.
func (s *Store) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("session: deleting %s: %w", id, err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
