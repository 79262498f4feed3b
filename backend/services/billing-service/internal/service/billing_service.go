package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"swapnet/backend/services/billing-service/internal/models"
	"swapnet/backend/services/billing-service/internal/repository"
)

var (
	ErrInvalidSwap   = errors.New("billing: invalid swap")
	ErrPackExhausted = errors.New("billing: pack has no swaps left")
)

// TransactionStore persists swap transactions.
type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	// CreatePackSwap stores tx only if the user has used fewer than limit
	// swaps of the pack since the given time, atomically with the check.
	// It returns repository.ErrPackLimitReached otherwise.
	CreatePackSwap(ctx context.Context, tx *models.Transaction, limit int, since time.Time) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.Transaction, error)
}

// PackStore reads the pack catalogue.
type PackStore interface {
	ListActive(ctx context.Context) ([]models.Pack, error)
	GetActive(ctx context.Context, id int64) (*models.Pack, error)
}

// BillingService prices swaps and serves history and packs.
type BillingService struct {
	txs       TransactionStore
	packs     PackStore
	swapPrice float64
	logger    *zap.Logger
	now       func() time.Time
}

// NewBillingService builds service. swapPrice is charged for swaps not
// covered by a pack.
func NewBillingService(txs TransactionStore, packs PackStore, swapPrice float64, logger *zap.Logger) *BillingService {
	return &BillingService{
		txs:       txs,
		packs:     packs,
		swapPrice: swapPrice,
		logger:    logger,
		now:       time.Now,
	}
}

// RecordSwapInput describes a completed swap.
type RecordSwapInput struct {
	UserID        int64
	StationID     int64
	TakenPinID    int64
	ReturnedPinID *int64
	PackID        *int64
}

// RecordSwap prices a swap and stores it. A swap drawn from a pack costs
// nothing while the pack has swaps left within its validity window: only
// pack swaps from the last ValidityDays days count against SwapsIncluded.
func (s *BillingService) RecordSwap(ctx context.Context, in RecordSwapInput) (*models.Transaction, error) {
	if in.UserID <= 0 || in.StationID <= 0 || in.TakenPinID <= 0 {
		return nil, fmt.Errorf("%w: user, station and taken pin are required", ErrInvalidSwap)
	}

	tx := &models.Transaction{
		UserID:        in.UserID,
		StationID:     in.StationID,
		TakenPinID:    in.TakenPinID,
		ReturnedPinID: in.ReturnedPinID,
		Amount:        s.swapPrice,
		Status:        models.StatusCharged,
	}

	if in.PackID == nil {
		if err := s.txs.Create(ctx, tx); err != nil {
			return nil, err
		}
	} else {
		pack, err := s.packs.GetActive(ctx, *in.PackID)
		if err != nil {
			return nil, err
		}
		tx.PackID = &pack.ID
		tx.Amount = 0
		tx.Status = models.StatusPack
		if err := s.txs.CreatePackSwap(ctx, tx, pack.SwapsIncluded, s.packWindowStart(*pack)); err != nil {
			if errors.Is(err, repository.ErrPackLimitReached) {
				return nil, ErrPackExhausted
			}
			return nil, err
		}
	}

	s.logger.Info("swap transaction recorded",
		zap.Int64("user_id", tx.UserID),
		zap.Int64("station_id", tx.StationID),
		zap.Int64("taken_pin_id", tx.TakenPinID),
		zap.String("status", tx.Status),
		zap.Float64("amount", tx.Amount),
	)
	return tx, nil
}

// packWindowStart is the earliest swap time counted against pack. Packs
// without a validity period count every swap.
func (s *BillingService) packWindowStart(pack models.Pack) time.Time {
	if pack.ValidityDays <= 0 {
		return time.Time{}
	}
	return s.now().AddDate(0, 0, -pack.ValidityDays)
}

// TransactionsForUser returns history for given user.
func (s *BillingService) TransactionsForUser(ctx context.Context, userID int64, limit int) ([]models.Transaction, error) {
	return s.txs.ListByUser(ctx, userID, limit)
}

// Packs lists packs on sale.
func (s *BillingService) Packs(ctx context.Context) ([]models.Pack, error) {
	return s.packs.ListActive(ctx)
}

// IsPackNotFound reports whether err means the requested pack is unknown.
func IsPackNotFound(err error) bool {
	return errors.Is(err, repository.ErrPackNotFound)
}
