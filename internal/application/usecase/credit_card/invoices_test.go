package creditcard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

type stubCardRepo struct {
	adapter.CreditCardRepository
	cards []*entity.CreditCard
}

func (s *stubCardRepo) FindByID(_ context.Context, id, userID string) (*entity.CreditCard, error) {
	for _, c := range s.cards {
		if c.ID == id && c.UserID == userID {
			return c, nil
		}
	}
	return nil, domainerror.ErrCreditCardNotFound
}

func (s *stubCardRepo) FindByUser(_ context.Context, userID string) ([]*entity.CreditCard, error) {
	return s.cards, nil
}

type stubTransactionRepo struct {
	adapter.TransactionRepository
	transactions []*entity.Transaction
}

func (s *stubTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var matched []*entity.Transaction
	for _, t := range s.transactions {
		if filter.CreditCardID != "" && t.CreditCardID != filter.CreditCardID {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		matched = append(matched, t)
	}
	return matched, nil
}

func (s *stubTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	s.transactions = append(s.transactions, t)
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func amount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func purchase(id string, v float64, date time.Time, cardID string) *entity.Transaction {
	return &entity.Transaction{
		ID:           id,
		UserID:       "user-1",
		Description:  "purchase " + id,
		Amount:       amount(v),
		Type:         entity.TransactionTypeExpense,
		Date:         date,
		AccountID:    "acc-1",
		CreditCardID: cardID,
	}
}

func testCard() *entity.CreditCard {
	return &entity.CreditCard{
		ID:          "c1",
		UserID:      "user-1",
		Name:        "Inter Gold",
		ClosingDay:  25,
		DueDay:      5,
		LimitAmount: amount(2000),
	}
}

func TestGetInvoicesUseCase_Execute(t *testing.T) {
	cardRepo := &stubCardRepo{cards: []*entity.CreditCard{testCard()}}
	txnRepo := &stubTransactionRepo{transactions: []*entity.Transaction{
		purchase("t1", 100, day(2026, time.January, 2), "c1"),
		purchase("t2", 200, day(2026, time.January, 26), "c1"),
	}}
	uc := NewGetInvoicesUseCase(cardRepo, txnRepo)

	t.Run("one open invoice per cycle", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetInvoicesInput{UserID: "user-1", CardID: "c1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Invoices) != 2 {
			t.Fatalf("expected 2 invoices, got %d", len(out.Invoices))
		}
		for _, inv := range out.Invoices {
			if inv.ID == "virtual-invoice-c1-2026-02-05" && !inv.Amount.Equal(amount(100)) {
				t.Errorf("february invoice: got %s, want 100", inv.Amount)
			}
			if inv.ID == "virtual-invoice-c1-2026-03-05" && !inv.Amount.Equal(amount(200)) {
				t.Errorf("march invoice: got %s, want 200", inv.Amount)
			}
		}
	})

	t.Run("unknown card is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetInvoicesInput{UserID: "user-1", CardID: "nope"})
		var cardErr *domainerror.CreditCardError
		if err == nil {
			t.Fatal("expected an error for unknown card")
		}
		if !errors.As(err, &cardErr) || cardErr.Code != domainerror.ErrCodeCreditCardNotFound {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSettleInvoiceUseCase_Execute(t *testing.T) {
	cardRepo := &stubCardRepo{cards: []*entity.CreditCard{testCard()}}
	txnRepo := &stubTransactionRepo{transactions: []*entity.Transaction{
		purchase("t1", 300, day(2026, time.January, 2), "c1"),
	}}
	getInvoices := NewGetInvoicesUseCase(cardRepo, txnRepo)
	uc := NewSettleInvoiceUseCase(getInvoices, txnRepo, nil)

	out, err := uc.Execute(context.Background(), SettleInvoiceInput{
		UserID:    "user-1",
		CardID:    "c1",
		DueDate:   "2026-02-05",
		AccountID: "acc-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("payment is a real paid expense on the account", func(t *testing.T) {
		p := out.PaymentTransaction
		if p.Type != entity.TransactionTypeExpense || !p.IsPaid || p.AccountID != "acc-1" || p.IsCardLinked() {
			t.Errorf("unexpected payment row: %+v", p)
		}
		if !p.Amount.Equal(amount(300)) {
			t.Errorf("payment amount: got %s, want 300", p.Amount)
		}
	})

	t.Run("offset routes into the settled bucket", func(t *testing.T) {
		o := out.OffsetTransaction
		if o.Type != entity.TransactionTypeIncome || !o.IsPaid || o.CreditCardID != "c1" {
			t.Errorf("unexpected offset row: %+v", o)
		}
		if !o.Date.Equal(day(2026, time.January, 2)) {
			t.Errorf("offset not dated like the purchase: %v", o.Date)
		}
	})

	t.Run("invoice disappears after settlement", func(t *testing.T) {
		again, err := getInvoices.Execute(context.Background(), GetInvoicesInput{UserID: "user-1", CardID: "c1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(again.Invoices) != 0 {
			t.Errorf("expected no open invoices, got %d", len(again.Invoices))
		}
	})

	t.Run("settling twice fails", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SettleInvoiceInput{
			UserID:    "user-1",
			CardID:    "c1",
			DueDate:   "2026-02-05",
			AccountID: "acc-1",
		})
		var cardErr *domainerror.CreditCardError
		if err == nil || !errors.As(err, &cardErr) || cardErr.Code != domainerror.ErrCodeInvoiceNotFound {
			t.Fatalf("expected invoice-not-found, got %v", err)
		}
	})
}

func TestUtilizationPercent(t *testing.T) {
	tests := []struct {
		name  string
		used  float64
		limit float64
		want  float64
	}{
		{"half used", 500, 1000, 50},
		{"unused", 0, 1000, 0},
		{"over limit caps at 100", 1500, 1000, 100},
		{"zero limit with balance reads full", 10, 0, 100},
		{"zero limit unused reads empty", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utilizationPercent(amount(tt.used), amount(tt.limit))
			if !got.Equal(amount(tt.want)) {
				t.Errorf("utilizationPercent(%v, %v) = %s, want %v", tt.used, tt.limit, got, tt.want)
			}
		})
	}
}

func TestListCardsUseCase_Execute(t *testing.T) {
	cardRepo := &stubCardRepo{cards: []*entity.CreditCard{testCard()}}
	txnRepo := &stubTransactionRepo{transactions: []*entity.Transaction{
		purchase("t1", 300, day(2026, time.January, 2), "c1"),
		purchase("t2", 200, day(2026, time.January, 3), "c1"),
		// Paid purchases no longer hold limit.
		func() *entity.Transaction {
			p := purchase("t3", 999, day(2026, time.January, 4), "c1")
			p.IsPaid = true
			return p
		}(),
	}}
	uc := NewListCardsUseCase(cardRepo, txnRepo)

	out, err := uc.Execute(context.Background(), ListCardsInput{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(out.Cards))
	}

	u := out.Cards[0]
	if !u.Used.Equal(amount(500)) {
		t.Errorf("used: got %s, want 500", u.Used)
	}
	if !u.Available.Equal(amount(1500)) {
		t.Errorf("available: got %s, want 1500", u.Available)
	}
	if !u.Percent.Equal(amount(25)) {
		t.Errorf("percent: got %s, want 25", u.Percent)
	}
}

