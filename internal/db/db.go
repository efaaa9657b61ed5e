// Package db manages the Stockbook SQLite store: opening the single
// connection, lazy schema creation, and backup/restore of the store
// file.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// Store owns the process's SQLite connection. It is constructed once
// at startup and passed to every component that needs it; there is no
// package-level handle.
type Store struct {
	db   *sql.DB
	path string
	log  zerolog.Logger
}

// Open opens the store file at path, creating the parent directory and
// the schema when needed, and enables foreign key enforcement.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	s := &Store{path: path, log: log}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) open() error {
	conn, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := initSchema(conn); err != nil {
		conn.Close()
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	s.db = conn
	s.log.Debug().Str("path", s.path).Msg("store opened")
	return nil
}

// initSchema creates the schema on a fresh store. The schema_version
// table doubles as the "already initialized" marker.
func initSchema(conn *sql.DB) error {
	var name string
	err := conn.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&name)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	if _, err := conn.Exec(GetSchemaSQL()); err != nil {
		return err
	}
	_, err = conn.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion)
	return err
}

// DB returns the underlying connection for the repository adapters.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the store connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
