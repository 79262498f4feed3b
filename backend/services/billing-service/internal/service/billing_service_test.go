package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"swapnet/backend/services/billing-service/internal/models"
	"swapnet/backend/services/billing-service/internal/repository"
)

type fakeTxs struct {
	mu      sync.Mutex
	created []models.Transaction
	now     time.Time
}

func (f *fakeTxs) insert(tx *models.Transaction) {
	tx.ID = int64(len(f.created) + 1)
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = f.now
	}
	f.created = append(f.created, *tx)
}

func (f *fakeTxs) Create(_ context.Context, tx *models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insert(tx)
	return nil
}

func (f *fakeTxs) CreatePackSwap(_ context.Context, tx *models.Transaction, limit int, since time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	used := 0
	for _, row := range f.created {
		if row.UserID == tx.UserID && row.PackID != nil && *row.PackID == *tx.PackID && !row.CreatedAt.Before(since) {
			used++
		}
	}
	if used >= limit {
		return repository.ErrPackLimitReached
	}
	f.insert(tx)
	return nil
}

func (f *fakeTxs) ListByUser(_ context.Context, userID int64, limit int) ([]models.Transaction, error) {
	var out []models.Transaction
	for i := len(f.created) - 1; i >= 0 && len(out) < limit; i-- {
		if f.created[i].UserID == userID {
			out = append(out, f.created[i])
		}
	}
	return out, nil
}

type fakePacks map[int64]models.Pack

func (f fakePacks) ListActive(context.Context) ([]models.Pack, error) {
	out := make([]models.Pack, 0, len(f))
	for _, p := range f {
		out = append(out, p)
	}
	return out, nil
}

func (f fakePacks) GetActive(_ context.Context, id int64) (*models.Pack, error) {
	p, ok := f[id]
	if !ok {
		return nil, repository.ErrPackNotFound
	}
	return &p, nil
}

func TestRecordSwapChargesDefaultPrice(t *testing.T) {
	txs := &fakeTxs{}
	svc := NewBillingService(txs, fakePacks{}, 4.5, zap.NewNop())

	returned := int64(12)
	tx, err := svc.RecordSwap(context.Background(), RecordSwapInput{UserID: 1, StationID: 2, TakenPinID: 11, ReturnedPinID: &returned})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if tx.Amount != 4.5 || tx.Status != models.StatusCharged || tx.PackID != nil {
		t.Fatalf("unexpected transaction %+v", tx)
	}
}

func TestRecordSwapDrawsFromPackUntilExhausted(t *testing.T) {
	txs := &fakeTxs{}
	svc := NewBillingService(txs, fakePacks{7: {ID: 7, Name: "Duo", SwapsIncluded: 2, Price: 8, IsActive: true}}, 4.5, zap.NewNop())
	pack := int64(7)
	in := RecordSwapInput{UserID: 1, StationID: 2, TakenPinID: 11, PackID: &pack}

	for i := 0; i < 2; i++ {
		tx, err := svc.RecordSwap(context.Background(), in)
		if err != nil {
			t.Fatalf("swap %d: %v", i, err)
		}
		if tx.Amount != 0 || tx.Status != models.StatusPack {
			t.Fatalf("swap %d: expected free pack swap, got %+v", i, tx)
		}
	}
	if _, err := svc.RecordSwap(context.Background(), in); !errors.Is(err, ErrPackExhausted) {
		t.Fatalf("expected ErrPackExhausted, got %v", err)
	}

	history, _ := svc.TransactionsForUser(context.Background(), 1, 10)
	if len(history) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(history))
	}
}

func TestRecordSwapValidation(t *testing.T) {
	svc := NewBillingService(&fakeTxs{}, fakePacks{}, 4.5, zap.NewNop())

	if _, err := svc.RecordSwap(context.Background(), RecordSwapInput{UserID: 1, StationID: 2}); !errors.Is(err, ErrInvalidSwap) {
		t.Fatalf("expected ErrInvalidSwap, got %v", err)
	}
	missing := int64(99)
	_, err := svc.RecordSwap(context.Background(), RecordSwapInput{UserID: 1, StationID: 2, TakenPinID: 3, PackID: &missing})
	if !IsPackNotFound(err) {
		t.Fatalf("expected pack not found, got %v", err)
	}
}

func TestRecordSwapConcurrentCallersCannotOverdrawPack(t *testing.T) {
	txs := &fakeTxs{}
	svc := NewBillingService(txs, fakePacks{3: {ID: 3, Name: "Single", SwapsIncluded: 1, Price: 4, IsActive: true}}, 4.5, zap.NewNop())
	pack := int64(3)
	in := RecordSwapInput{UserID: 5, StationID: 2, TakenPinID: 11, PackID: &pack}

	const callers = 8
	var (
		wg        sync.WaitGroup
		start     = make(chan struct{})
		mu        sync.Mutex
		free      int
		exhausted int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.RecordSwap(context.Background(), in)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				free++
			case errors.Is(err, ErrPackExhausted):
				exhausted++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if free != 1 || exhausted != callers-1 {
		t.Fatalf("expected 1 free swap and %d refusals, got %d and %d", callers-1, free, exhausted)
	}
	if len(txs.created) != 1 {
		t.Fatalf("expected 1 stored transaction, got %d", len(txs.created))
	}
}

func TestRecordSwapCountsOnlySwapsInsideValidityWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	pack := int64(4)
	txs := &fakeTxs{now: now}
	txs.created = []models.Transaction{
		{ID: 1, UserID: 5, StationID: 2, TakenPinID: 9, PackID: &pack, Status: models.StatusPack, CreatedAt: now.AddDate(0, 0, -40)},
	}
	svc := NewBillingService(txs, fakePacks{4: {ID: 4, Name: "Monthly", SwapsIncluded: 1, ValidityDays: 30, IsActive: true}}, 4.5, zap.NewNop())
	svc.now = func() time.Time { return now }
	in := RecordSwapInput{UserID: 5, StationID: 2, TakenPinID: 11, PackID: &pack}

	tx, err := svc.RecordSwap(context.Background(), in)
	if err != nil {
		t.Fatalf("swap outside the old window should be free: %v", err)
	}
	if tx.Amount != 0 || tx.Status != models.StatusPack {
		t.Fatalf("expected free pack swap, got %+v", tx)
	}
	if _, err := svc.RecordSwap(context.Background(), in); !errors.Is(err, ErrPackExhausted) {
		t.Fatalf("expected ErrPackExhausted within the window, got %v", err)
	}
}
