package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"wastenot/internal/domain"
)

const productColumns = `id, name, description, category, donor_id, image_url, is_available, created_at`

// GetProducts returns all products in insertion (id) order.
func (s *Store) GetProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

// GetProductByID fetches one product. Returns (nil, nil) when no row matches.
func (s *Store) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

// GetProductsByCategory filters on an exact category match, in id order.
func (s *Store) GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY id`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

// CreateProduct inserts a listing. Availability is forced true here rather
// than left to the column default so both backends share the same rule.
func (s *Store) CreateProduct(ctx context.Context, in domain.InsertProduct) (*domain.Product, error) {
	row := s.pool.QueryRow(ctx, `
INSERT INTO products (name, description, category, donor_id, image_url, is_available)
VALUES ($1, $2, $3, $4, $5, TRUE)
RETURNING `+productColumns, in.Name, in.Description, in.Category, in.DonorID, in.ImageURL)

	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("postgres: insert product: %w", err)
	}
	return p, nil
}

// UpdateProduct merges the non-nil patch fields in a single UPDATE. Returns
// (nil, nil) when the id is unknown. Concurrent updates to the same row are
// last-writer-wins; there is no optimistic-concurrency check.
func (s *Store) UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.DonorID != nil {
		add("donor_id", *patch.DonorID)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.IsAvailable != nil {
		add("is_available", *patch.IsAvailable)
	}
	if len(set) == 0 {
		// Empty patch: nothing to write, behave like a read.
		return s.GetProductByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING `+productColumns,
		strings.Join(set, ", "), len(args))
	return scanProduct(s.pool.QueryRow(ctx, query, args...))
}

// DeleteProduct removes the row and reports whether one existed. BIGSERIAL
// ids are not recycled, so the deleted id stays retired.
func (s *Store) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.DonorID, &p.ImageURL, &p.IsAvailable, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	items := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.DonorID, &p.ImageURL, &p.IsAvailable, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
