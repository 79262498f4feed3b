package repository

import (
	"context"
	"database/sql"
	"errors"

	"swapnet/backend/services/billing-service/internal/models"
)

// ErrPackNotFound is returned for unknown or retired packs.
var ErrPackNotFound = errors.New("pack not found")

// PackRepository reads the service pack catalogue.
type PackRepository struct {
	db *sql.DB
}

// NewPackRepository returns repository.
func NewPackRepository(db *sql.DB) *PackRepository {
	return &PackRepository{db: db}
}

// ListActive returns packs currently on sale, cheapest first.
func (r *PackRepository) ListActive(ctx context.Context) ([]models.Pack, error) {
	const query = `
		SELECT id, name, swaps_included, price, validity_days, is_active, created_at
		FROM service_packs
		WHERE is_active = true
		ORDER BY price, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packs := []models.Pack{}
	for rows.Next() {
		var p models.Pack
		if err := rows.Scan(&p.ID, &p.Name, &p.SwapsIncluded, &p.Price, &p.ValidityDays, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		packs = append(packs, p)
	}
	return packs, rows.Err()
}

// GetActive returns one pack on sale.
func (r *PackRepository) GetActive(ctx context.Context, id int64) (*models.Pack, error) {
	const query = `
		SELECT id, name, swaps_included, price, validity_days, is_active, created_at
		FROM service_packs
		WHERE id = $1 AND is_active = true
	`
	var p models.Pack
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.SwapsIncluded,
		&p.Price,
		&p.ValidityDays,
		&p.IsActive,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackNotFound
		}
		return nil, err
	}
	return &p, nil
}
