package postgres

import (
	"context"
	"fmt"

	"wastenot/internal/domain"
)

const donationColumns = `id, donor_name, email, amount, message, created_at`

// GetDonations returns all donations in insertion (id) order. The collection
// is append-only; a full-list scan is the only read the system needs.
func (s *Store) GetDonations(ctx context.Context) ([]domain.Donation, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+donationColumns+` FROM donations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Donation, 0)
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.DonorName, &d.Email, &d.Amount, &d.Message, &d.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateDonation appends a pledge record.
func (s *Store) CreateDonation(ctx context.Context, in domain.InsertDonation) (*domain.Donation, error) {
	row := s.pool.QueryRow(ctx, `
INSERT INTO donations (donor_name, email, amount, message)
VALUES ($1, $2, $3, $4)
RETURNING `+donationColumns, in.DonorName, in.Email, in.Amount, in.Message)

	var d domain.Donation
	if err := row.Scan(&d.ID, &d.DonorName, &d.Email, &d.Amount, &d.Message, &d.CreatedAt); err != nil {
		return nil, fmt.Errorf("postgres: insert donation: %w", err)
	}
	return &d, nil
}
