package store

import (
	"errors"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrStoreUnavailable means the database file could not be opened at all
	// (bad path, permissions, corruption).
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrDuplicateUser is returned when creating a user whose username
	// already exists.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrNotFound is returned by updates that match no row.
	ErrNotFound = errors.New("no matching row")

	// ErrHashing means bcrypt itself failed, not that a password was wrong.
	ErrHashing = errors.New("password hashing failed")

	// ErrPasswordMismatch is returned by interactive user creation when the
	// two password entries differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// isConstraintViolation reports whether err is a SQLite uniqueness or
// primary-key constraint failure.
func isConstraintViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}
