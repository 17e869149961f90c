package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/madelynseal/spord-tracker/internal/models"
)

// CreateSpord inserts a new spord and writes the assigned id back onto sp.
// Timestamps are stored as unix seconds; sub-second precision is truncated.
func (s *Store) CreateSpord(sp *models.Spord) error {
	query := `
		INSERT INTO spords (name, phone, email, part, state, created, received, comments)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := s.DB.Exec(query,
		sp.CustomerName, sp.CustomerPhone, sp.CustomerEmail, sp.Part,
		sp.State.Code(), sp.CreationDate.Unix(), sp.ReceivedUnix(), sp.Comments)
	if err != nil {
		return fmt.Errorf("create spord: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create spord: %w", err)
	}
	sp.ID = int(id)
	return nil
}

// UpdateSpord rewrites every column of the row identified by sp.ID.
// Returns ErrNotFound when no row has that id.
func (s *Store) UpdateSpord(sp *models.Spord) error {
	query := `
		UPDATE spords
		SET name = ?, phone = ?, email = ?, part = ?, state = ?, created = ?, received = ?, comments = ?
		WHERE id = ?
	`
	res, err := s.DB.Exec(query,
		sp.CustomerName, sp.CustomerPhone, sp.CustomerEmail, sp.Part,
		sp.State.Code(), sp.CreationDate.Unix(), sp.ReceivedUnix(), sp.Comments,
		sp.ID)
	if err != nil {
		return fmt.Errorf("update spord: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update spord: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: spord id %d", ErrNotFound, sp.ID)
	}
	return nil
}

// ListSpords reads every row. Rows that fail to decode are skipped with a
// warning instead of failing the whole listing; the count of skipped rows is
// returned so callers can observe the loss.
func (s *Store) ListSpords() ([]models.Spord, int, error) {
	query := `SELECT id, name, phone, email, part, state, created, received, comments FROM spords ORDER BY id`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, 0, fmt.Errorf("list spords: %w", err)
	}
	defer rows.Close()

	var (
		spords  []models.Spord
		skipped int
	)
	for rows.Next() {
		sp, err := scanSpord(rows)
		if err != nil {
			skipped++
			slog.Warn("Skipping undecodable spord row", "error", err)
			continue
		}
		spords = append(spords, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, skipped, fmt.Errorf("list spords: %w", err)
	}
	return spords, skipped, nil
}

func scanSpord(rows *sql.Rows) (models.Spord, error) {
	var (
		sp                     models.Spord
		phone, email, comments sql.NullString
		part                   sql.NullString
		state                  int
		created                int64
		received               sql.NullInt64
	)
	err := rows.Scan(&sp.ID, &sp.CustomerName, &phone, &email, &part, &state, &created, &received, &comments)
	if err != nil {
		return models.Spord{}, err
	}

	if phone.Valid {
		sp.CustomerPhone = &phone.String
	}
	if email.Valid {
		sp.CustomerEmail = &email.String
	}
	if comments.Valid {
		sp.Comments = &comments.String
	}
	sp.Part = part.String
	sp.State = models.StateFromCode(state)
	sp.CreationDate = time.Unix(created, 0).UTC()
	if received.Valid {
		ts := time.Unix(received.Int64, 0).UTC()
		sp.ReceivedDate = &ts
	}
	return sp, nil
}
