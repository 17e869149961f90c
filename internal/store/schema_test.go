package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/madelynseal/spord-tracker/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spords.db")
	require.NoError(t, store.EnsureInitialized(nil, path))

	s, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEnsureInitializedCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spords.db")
	require.NoError(t, store.EnsureInitialized(nil, path))

	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	// Both tables must be queryable right away.
	require.NoError(t, s.CreateUser("alice", "hunter2"))
	_, _, err = s.ListSpords()
	require.NoError(t, err)
}

func TestEnsureInitializedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spords.db")
	require.NoError(t, store.EnsureInitialized(nil, path))

	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.CreateUser("alice", "hunter2"))

	// A second run must be a no-op, not wipe the data.
	require.NoError(t, store.EnsureInitialized(nil, path))

	ok, err := s.VerifyLogin("alice", "hunter2")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEnsureInitializedSkipsExistingFile(t *testing.T) {
	// An existing file is trusted as-is: a database missing its tables
	// fails on first query instead of being silently repaired.
	path := filepath.Join(t.TempDir(), "spords.db")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	require.NoError(t, store.EnsureInitialized(nil, path))

	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.Error(t, s.CreateUser("alice", "hunter2"))
}

func TestOpenBadPath(t *testing.T) {
	_, err := store.Open(filepath.Join(t.TempDir(), "no-such-dir", "spords.db"))
	require.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestOpenIfNeededReusesHandle(t *testing.T) {
	s := newTestStore(t)

	got, err := store.OpenIfNeeded(s, "ignored-path")
	require.NoError(t, err)
	require.Same(t, s, got)
}
