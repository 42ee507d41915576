package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"wastenot/internal/domain"
)

const agentColumns = `id, name, area, rating, bio, image_url, user_id, created_at`

// GetAgents returns all agents in insertion (id) order.
func (s *Store) GetAgents(ctx context.Context) ([]domain.Agent, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+agentColumns+` FROM agents ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Agent, 0)
	for rows.Next() {
		var a domain.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Area, &a.Rating, &a.Bio, &a.ImageURL, &a.UserID, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetAgentByID fetches one agent. Returns (nil, nil) when no row matches.
func (s *Store) GetAgentByID(ctx context.Context, id int64) (*domain.Agent, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+agentColumns+` FROM agents WHERE id = $1`, id)
	return scanAgent(row)
}

// CreateAgent inserts a volunteer profile, applying the default rating when
// the caller did not supply one.
func (s *Store) CreateAgent(ctx context.Context, in domain.InsertAgent) (*domain.Agent, error) {
	rating := domain.DefaultAgentRating
	if in.Rating != nil {
		rating = *in.Rating
	}

	row := s.pool.QueryRow(ctx, `
INSERT INTO agents (name, area, rating, bio, image_url, user_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+agentColumns, in.Name, in.Area, rating, in.Bio, in.ImageURL, in.UserID)

	a, err := scanAgent(row)
	if err != nil {
		return nil, fmt.Errorf("postgres: insert agent: %w", err)
	}
	return a, nil
}

func scanAgent(row pgx.Row) (*domain.Agent, error) {
	var a domain.Agent
	if err := row.Scan(&a.ID, &a.Name, &a.Area, &a.Rating, &a.Bio, &a.ImageURL, &a.UserID, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
