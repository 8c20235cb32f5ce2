// Package sqlite manages the portal content database connection.
//
// This is the only package that imports the SQLite driver. The content
// tables are owned and written by the portal CRUD services; the search
// backend opens the same database read-mostly and only ever SELECTs from
// it. Init exists so a fresh deployment (and the test suite) can bootstrap
// the schema without the CRUD side.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// Store wraps the content database handle.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database file at path. WAL mode keeps readers from
// blocking the CRUD writers sharing the file; the busy timeout smooths over
// short write locks instead of surfacing "database is locked".
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA busy_timeout=5000`,
		`PRAGMA synchronous=NORMAL`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	return &Store{db: db}, nil
}

// Init creates the content tables if they don't exist. Safe to call
// multiple times.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection for the repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}
