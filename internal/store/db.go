package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store owns all durable spord and user state. It wraps a pooled connection
// to the SQLite database; SQLite in WAL mode serializes writes internally
// while allowing concurrent readers, so no extra locking happens here.
type Store struct {
	DB *sql.DB
}

// Open opens the database at path with WAL journaling enabled.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: open %s: %v", ErrStoreUnavailable, path, err)
	}

	return &Store{DB: db}, nil
}

// OpenIfNeeded reuses an existing handle when one is supplied, otherwise
// opens a fresh one against path. The console user-creation path uses this to
// run schema init and the insert over a single connection.
func OpenIfNeeded(existing *Store, path string) (*Store, error) {
	if existing != nil {
		return existing, nil
	}
	return Open(path)
}

func (s *Store) Close() error {
	return s.DB.Close()
}
