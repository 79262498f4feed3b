package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"swapnet/backend/services/billing-service/internal/models"
)

// ErrPackLimitReached is returned when a pack swap would exceed the swaps
// the pack includes.
var ErrPackLimitReached = errors.New("pack swap limit reached")

// TransactionRepository persists swap transactions.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository returns repository.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	const query = `
		INSERT INTO swap_transactions (user_id, station_id, taken_pin_id, returned_pin_id, pack_id, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		tx.UserID,
		tx.StationID,
		tx.TakenPinID,
		nullableID(tx.ReturnedPinID),
		nullableID(tx.PackID),
		tx.Amount,
		tx.Status,
	).Scan(&tx.ID, &tx.CreatedAt)
}

// CreatePackSwap inserts tx as a pack swap when the user has used fewer than
// limit swaps of tx.PackID since the given time. The count and the insert run
// in one transaction holding an advisory lock on (user, pack), so concurrent
// swaps cannot overdraw a pack.
func (r *TransactionRepository) CreatePackSwap(ctx context.Context, tx *models.Transaction, limit int, since time.Time) (err error) {
	if tx.PackID == nil {
		return errors.New("pack swap without pack id")
	}

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	const lockQuery = `SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`
	if _, err = dbTx.ExecContext(ctx, lockQuery, tx.UserID, *tx.PackID); err != nil {
		return err
	}

	const countQuery = `
		SELECT COUNT(*) FROM swap_transactions
		WHERE user_id = $1 AND pack_id = $2 AND created_at >= $3
	`
	var used int
	if err = dbTx.QueryRowContext(ctx, countQuery, tx.UserID, *tx.PackID, since).Scan(&used); err != nil {
		return err
	}
	if used >= limit {
		err = ErrPackLimitReached
		return err
	}

	const insertQuery = `
		INSERT INTO swap_transactions (user_id, station_id, taken_pin_id, returned_pin_id, pack_id, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	if err = dbTx.QueryRowContext(ctx, insertQuery,
		tx.UserID,
		tx.StationID,
		tx.TakenPinID,
		nullableID(tx.ReturnedPinID),
		nullableID(tx.PackID),
		tx.Amount,
		tx.Status,
	).Scan(&tx.ID, &tx.CreatedAt); err != nil {
		return err
	}
	err = dbTx.Commit()
	return err
}

// ListByUser returns latest transactions for user.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
		SELECT id, user_id, station_id, taken_pin_id, returned_pin_id, pack_id, amount, status, created_at
		FROM swap_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var (
			tx       models.Transaction
			returned sql.NullInt64
			pack     sql.NullInt64
		)
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.StationID,
			&tx.TakenPinID,
			&returned,
			&pack,
			&tx.Amount,
			&tx.Status,
			&tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		if returned.Valid {
			tx.ReturnedPinID = &returned.Int64
		}
		if pack.Valid {
			tx.PackID = &pack.Int64
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
