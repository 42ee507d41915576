package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"wastenot/internal/domain"
)

const userColumns = `id, username, email, password, name, created_at`

// GetUser fetches a user by id. Returns (nil, nil) when no row matches.
func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetUserByUsername fetches a user by exact username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

// GetUserByEmail fetches a user by exact email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// CreateUser inserts a new user and returns the canonical row. A duplicate
// username or email surfaces as the engine's unique-violation error.
func (s *Store) CreateUser(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	row := s.pool.QueryRow(ctx, `
INSERT INTO users (username, email, password, name)
VALUES ($1, $2, $3, $4)
RETURNING `+userColumns, in.Username, in.Email, in.Password, in.Name)

	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("postgres: insert user: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Name, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
