package store

import (
	"fmt"
	"os"
)

const (
	createAuthTable = `
	CREATE TABLE auth (
		username   TEXT PRIMARY KEY,
		password   TEXT NOT NULL,
		enabled    BOOL NOT NULL,
		lastlogin  INTEGER
	);
	`

	createSpordsTable = `
	CREATE TABLE spords (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		name      TEXT NOT NULL,
		phone     TEXT,
		email     TEXT,
		part      TEXT,
		state     INTEGER NOT NULL,
		created   INTEGER NOT NULL,
		received  INTEGER,
		comments  TEXT
	);
	`
)

// EnsureInitialized creates the database with its schema on first run. The
// guard is the existence of the file itself, not CREATE TABLE IF NOT EXISTS:
// a file that exists but is missing a table fails loudly on first query
// instead of being silently patched up. Safe to call on every start.
//
// A caller that already holds a handle may pass it as existing; it is reused
// and left open.
func EnsureInitialized(existing *Store, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", ErrStoreUnavailable, path, err)
	}

	s, err := OpenIfNeeded(existing, path)
	if err != nil {
		return err
	}
	if existing == nil {
		defer s.Close()
	}

	return s.createSchema()
}

func (s *Store) createSchema() error {
	if _, err := s.DB.Exec(createAuthTable); err != nil {
		return fmt.Errorf("create auth table: %w", err)
	}
	if _, err := s.DB.Exec(createSpordsTable); err != nil {
		return fmt.Errorf("create spords table: %w", err)
	}
	return nil
}
