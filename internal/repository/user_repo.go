package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	dr "dealership_review"
	"dealership_review/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash, first_name, last_name, email) VALUES (?, ?, ?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, first_name, last_name, email FROM users WHERE username = ?`
)

// Create inserts a new user and returns its ID. A duplicate username yields
// dr.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", u.Username, dr.ErrConflict)
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
