package store_test

import (
	"testing"
	"time"

	"github.com/madelynseal/spord-tracker/internal/models"
	"github.com/madelynseal/spord-tracker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateAndListSpord(t *testing.T) {
	s := newTestStore(t)

	received := time.Date(2026, 3, 14, 15, 9, 26, 535_000_000, time.UTC)
	sp := models.Spord{
		CustomerName:  "carol",
		CustomerPhone: strPtr("555-0100"),
		CustomerEmail: strPtr("carol@example.com"),
		Part:          "BRK-221",
		State:         models.StateReceived,
		CreationDate:  time.Date(2026, 1, 2, 3, 4, 5, 987_654_321, time.UTC),
		ReceivedDate:  &received,
		Comments:      strPtr("rush job"),
	}
	require.NoError(t, s.CreateSpord(&sp))
	require.NotZero(t, sp.ID)

	spords, skipped, err := s.ListSpords()
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, spords, 1)

	got := spords[0]
	assert.Equal(t, sp.ID, got.ID)
	assert.Equal(t, "carol", got.CustomerName)
	assert.Equal(t, strPtr("555-0100"), got.CustomerPhone)
	assert.Equal(t, strPtr("carol@example.com"), got.CustomerEmail)
	assert.Equal(t, "BRK-221", got.Part)
	assert.Equal(t, models.StateReceived, got.State)
	assert.Equal(t, strPtr("rush job"), got.Comments)

	// Sub-second precision is truncated on the way to unix seconds, never
	// rounded.
	assert.Equal(t, sp.CreationDate.Unix(), got.CreationDate.Unix())
	assert.Zero(t, got.CreationDate.Nanosecond())
	require.NotNil(t, got.ReceivedDate)
	assert.Equal(t, received.Unix(), got.ReceivedDate.Unix())
}

func TestCreateSpordOptionalFieldsAbsent(t *testing.T) {
	s := newTestStore(t)

	sp := models.Spord{
		CustomerName: "dave",
		Part:         "HNG-07",
		State:        models.StatePending,
		CreationDate: time.Now(),
	}
	require.NoError(t, s.CreateSpord(&sp))

	spords, skipped, err := s.ListSpords()
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, spords, 1)

	got := spords[0]
	assert.Nil(t, got.CustomerPhone)
	assert.Nil(t, got.CustomerEmail)
	assert.Nil(t, got.ReceivedDate)
	assert.Nil(t, got.Comments)
}

func TestUpdateSpordTargetsOnlyThatRow(t *testing.T) {
	// The end to end scenario: order a part for bob, mark it received, and
	// check a bystander row is untouched field for field.
	s := newTestStore(t)

	bob := models.Spord{
		CustomerName:  "bob",
		CustomerEmail: strPtr("hello@example.com"),
		Part:          "TRA9780",
		State:         models.StateOrdered,
		CreationDate:  time.Now(),
		Comments:      strPtr("test field"),
	}
	require.NoError(t, s.CreateSpord(&bob))

	other := models.Spord{
		CustomerName: "erin",
		Part:         "FLT-90",
		State:        models.StatePending,
		CreationDate: time.Now().Add(-time.Hour),
	}
	require.NoError(t, s.CreateSpord(&other))

	before, _, err := s.ListSpords()
	require.NoError(t, err)
	require.Len(t, before, 2)

	now := time.Now()
	bob.CustomerPhone = strPtr("555-0199")
	bob.State = models.StateReceived
	bob.ReceivedDate = &now
	require.NoError(t, s.UpdateSpord(&bob))

	after, skipped, err := s.ListSpords()
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, after, 2)

	var gotBob, gotOther models.Spord
	for _, sp := range after {
		switch sp.ID {
		case bob.ID:
			gotBob = sp
		case other.ID:
			gotOther = sp
		}
	}

	assert.Equal(t, strPtr("555-0199"), gotBob.CustomerPhone)
	assert.Equal(t, models.StateReceived, gotBob.State)
	require.NotNil(t, gotBob.ReceivedDate)
	assert.Equal(t, now.Unix(), gotBob.ReceivedDate.Unix())

	// The other row must be observably unchanged.
	for _, sp := range before {
		if sp.ID == other.ID {
			assert.Equal(t, sp, gotOther)
		}
	}
}

func TestUpdateSpordMissingRow(t *testing.T) {
	s := newTestStore(t)

	sp := models.Spord{
		ID:           12345,
		CustomerName: "ghost",
		Part:         "NIL-00",
		State:        models.StateOrdered,
		CreationDate: time.Now(),
	}
	require.ErrorIs(t, s.UpdateSpord(&sp), store.ErrNotFound)
}

func TestListSpordsUnknownStateCode(t *testing.T) {
	s := newTestStore(t)

	_, err := s.DB.Exec(`INSERT INTO spords (name, part, state, created) VALUES (?, ?, ?, ?)`,
		"frank", "UNK-99", 99, time.Now().Unix())
	require.NoError(t, err)

	spords, skipped, err := s.ListSpords()
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, spords, 1)
	assert.Equal(t, models.StateOther, spords[0].State)
}

func TestListSpordsSkipsMalformedRows(t *testing.T) {
	s := newTestStore(t)

	good := models.Spord{
		CustomerName: "grace",
		Part:         "OK-1",
		State:        models.StateOrdered,
		CreationDate: time.Now(),
	}
	require.NoError(t, s.CreateSpord(&good))

	// SQLite's type affinity happily stores text in the created column;
	// decoding it must skip the row, not fail the listing.
	_, err := s.DB.Exec(`INSERT INTO spords (name, part, state, created) VALUES (?, ?, ?, ?)`,
		"mallory", "BAD-1", 1, "not-a-timestamp")
	require.NoError(t, err)

	spords, skipped, err := s.ListSpords()
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, spords, 1)
	assert.Equal(t, "grace", spords[0].CustomerName)
}
