package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dealership_review/internal/models"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ Sessions = (*SessionRepository)(nil)

const (
	insertSessionSQL = `INSERT INTO sessions (id, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)`
	selectSessionSQL = `
SELECT s.id, s.user_id, u.username, s.created_at, s.expires_at
FROM sessions s
JOIN users u ON u.id = s.user_id
WHERE s.id = ?`
	deleteSessionSQL        = `DELETE FROM sessions WHERE id = ?`
	deleteExpiredSessionSQL = `DELETE FROM sessions WHERE expires_at <= ?`
)

func (r *SessionRepository) Create(ctx context.Context, s models.Session) error {
	_, err := r.db.ExecContext(ctx, insertSessionSQL, s.ID, s.UserID, s.CreatedAt.UTC(), s.ExpiresAt.UTC())
	if err != nil {
		return fmt.Errorf("insert session for user %d: %w", s.UserID, err)
	}
	return nil
}

// Get returns the session with the given id, or (nil, nil) if there is none.
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, selectSessionSQL, id).
		Scan(&s.ID, &s.UserID, &s.Username, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	return &s, nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSQL, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired purges sessions that expired at or before now.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteExpiredSessionSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
