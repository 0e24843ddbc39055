package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
)

type stubTransactionRepo struct {
	adapter.TransactionRepository
	transactions []*entity.Transaction
	calls        int
}

func (s *stubTransactionRepo) FindByUser(_ context.Context, _ string) ([]*entity.Transaction, error) {
	s.calls++
	return s.transactions, nil
}

type stubCardRepo struct {
	adapter.CreditCardRepository
	cards []*entity.CreditCard
}

func (s *stubCardRepo) FindByUser(_ context.Context, _ string) ([]*entity.CreditCard, error) {
	return s.cards, nil
}

type memoryCache struct {
	payloads map[string][]byte
}

func (c *memoryCache) key(userID string, mode entity.AccountingMode) string {
	return userID + ":" + string(mode)
}

func (c *memoryCache) Get(_ context.Context, userID string, mode entity.AccountingMode) ([]byte, bool, error) {
	p, ok := c.payloads[c.key(userID, mode)]
	return p, ok, nil
}

func (c *memoryCache) Set(_ context.Context, userID string, mode entity.AccountingMode, payload []byte) error {
	c.payloads[c.key(userID, mode)] = payload
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, userID string) error {
	for k := range c.payloads {
		delete(c.payloads, k)
	}
	return nil
}

func TestListLedgerUseCase_Execute(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("t1", entity.TransactionTypeExpense, 300, day(2026, time.January, 5), false, "c1"),
		txn("t2", entity.TransactionTypeExpense, 40, day(2026, time.February, 2), true, ""),
	}
	cards := []*entity.CreditCard{card("c1", "Inter Gold", 10, 20)}

	t.Run("cash mode consolidates before filtering", func(t *testing.T) {
		uc := NewListLedgerUseCase(
			&stubTransactionRepo{transactions: transactions},
			&stubCardRepo{cards: cards},
			nil,
		)

		// A window that excludes the January purchase but includes its
		// invoice due date: the invoice must still carry the full amount.
		start := day(2026, time.January, 15)
		end := day(2026, time.February, 28)
		out, err := uc.Execute(context.Background(), ListLedgerInput{
			UserID:    "user-1",
			Mode:      entity.AccountingModeCash,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 2 {
			t.Fatalf("expected invoice plus regular entry, got %d", len(out.Entries))
		}
		inv := findByID(out.Entries, "virtual-invoice-c1-2026-01-20")
		if inv == nil {
			t.Fatal("invoice missing from filtered window")
		}
		if !inv.Amount.Equal(amount(300)) {
			t.Errorf("pre-window purchase dropped from its invoice: %s", inv.Amount)
		}
	})

	t.Run("unknown mode string degrades to competence", func(t *testing.T) {
		uc := NewListLedgerUseCase(
			&stubTransactionRepo{transactions: transactions},
			&stubCardRepo{cards: cards},
			nil,
		)

		out, err := uc.Execute(context.Background(), ListLedgerInput{
			UserID: "user-1",
			Mode:   entity.AccountingMode("whatever"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Mode != entity.AccountingModeCompetence {
			t.Errorf("expected competence, got %q", out.Mode)
		}
		if len(out.Entries) != len(transactions) {
			t.Errorf("expected pass-through, got %d entries", len(out.Entries))
		}
	})

	t.Run("unfiltered view is cached and reused", func(t *testing.T) {
		repo := &stubTransactionRepo{transactions: transactions}
		cache := &memoryCache{payloads: map[string][]byte{}}
		uc := NewListLedgerUseCase(repo, &stubCardRepo{cards: cards}, cache)

		input := ListLedgerInput{UserID: "user-1", Mode: entity.AccountingModeCash}

		first, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.calls != 1 {
			t.Errorf("expected a single repository load, got %d", repo.calls)
		}
		if len(first.Entries) != len(second.Entries) {
			t.Fatalf("cached view diverged: %d vs %d", len(first.Entries), len(second.Entries))
		}
		for i := range first.Entries {
			if first.Entries[i].ID != second.Entries[i].ID {
				t.Errorf("entry %d: %q vs %q", i, first.Entries[i].ID, second.Entries[i].ID)
			}
		}
	})

	t.Run("date-filtered views bypass the cache", func(t *testing.T) {
		repo := &stubTransactionRepo{transactions: transactions}
		cache := &memoryCache{payloads: map[string][]byte{}}
		uc := NewListLedgerUseCase(repo, &stubCardRepo{cards: cards}, cache)

		start := day(2026, time.January, 1)
		if _, err := uc.Execute(context.Background(), ListLedgerInput{
			UserID:    "user-1",
			Mode:      entity.AccountingModeCash,
			StartDate: &start,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cache.payloads) != 0 {
			t.Error("filtered view must not be cached")
		}
	})
}
