package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func amount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func card(id, name string, closingDay, dueDay int) *entity.CreditCard {
	return &entity.CreditCard{
		ID:          id,
		UserID:      "user-1",
		Name:        name,
		ClosingDay:  closingDay,
		DueDay:      dueDay,
		LimitAmount: amount(5000),
	}
}

func txn(id string, typ entity.TransactionType, v float64, date time.Time, isPaid bool, cardID string) *entity.Transaction {
	return &entity.Transaction{
		ID:           id,
		UserID:       "user-1",
		Description:  "txn " + id,
		Amount:       amount(v),
		Type:         typ,
		Date:         date,
		IsPaid:       isPaid,
		AccountID:    "acc-1",
		CreditCardID: cardID,
	}
}

func sameTransaction(t *testing.T, got *ProcessedTransaction, want *entity.Transaction) {
	t.Helper()
	if got.ID != want.ID {
		t.Errorf("id: got %q, want %q", got.ID, want.ID)
	}
	if got.Description != want.Description {
		t.Errorf("description: got %q, want %q", got.Description, want.Description)
	}
	if !got.Amount.Equal(want.Amount) {
		t.Errorf("amount: got %s, want %s", got.Amount, want.Amount)
	}
	if got.Type != want.Type {
		t.Errorf("type: got %q, want %q", got.Type, want.Type)
	}
	if !got.Date.Equal(want.Date) {
		t.Errorf("date: got %v, want %v", got.Date, want.Date)
	}
	if got.IsPaid != want.IsPaid {
		t.Errorf("isPaid: got %v, want %v", got.IsPaid, want.IsPaid)
	}
	if got.AccountID != want.AccountID || got.CreditCardID != want.CreditCardID || got.CategoryID != want.CategoryID {
		t.Errorf("reference fields changed: got %+v", got.Transaction)
	}
}

func findByID(processed []*ProcessedTransaction, id string) *ProcessedTransaction {
	for _, p := range processed {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func TestProcessTransactions_CompetenceMode(t *testing.T) {
	cards := []*entity.CreditCard{card("c1", "Nubank PJ", 25, 5)}
	transactions := []*entity.Transaction{
		txn("t1", entity.TransactionTypeExpense, 100, day(2026, time.January, 10), true, ""),
		txn("t2", entity.TransactionTypeExpense, 50, day(2026, time.January, 12), false, "c1"),
		txn("t3", entity.TransactionTypeIncome, 900, day(2026, time.January, 2), true, ""),
	}

	processed := ProcessTransactions(transactions, cards, entity.AccountingModeCompetence)

	t.Run("every transaction maps one to one in input order", func(t *testing.T) {
		if len(processed) != len(transactions) {
			t.Fatalf("expected %d entries, got %d", len(transactions), len(processed))
		}
		for i, p := range processed {
			sameTransaction(t, p, transactions[i])
		}
	})

	t.Run("nothing is virtual", func(t *testing.T) {
		for _, p := range processed {
			if p.IsVirtual {
				t.Errorf("entry %s unexpectedly virtual", p.ID)
			}
			if p.VirtualChildren != nil {
				t.Errorf("entry %s carries children", p.ID)
			}
		}
	})
}

func TestProcessTransactions_UnknownModeFallsBackToCompetence(t *testing.T) {
	// Tolerant by design: an unrecognized mode must behave like competence,
	// never panic or consolidate.
	cards := []*entity.CreditCard{card("c1", "Nubank PJ", 25, 5)}
	transactions := []*entity.Transaction{
		txn("t1", entity.TransactionTypeExpense, 50, day(2026, time.January, 12), false, "c1"),
	}

	if mode := entity.ParseAccountingMode("accrual"); mode != entity.AccountingModeCompetence {
		t.Fatalf("expected unknown mode to parse as competence, got %q", mode)
	}

	processed := ProcessTransactions(transactions, cards, entity.AccountingMode("accrual"))
	if len(processed) != 1 || processed[0].IsVirtual {
		t.Fatalf("unknown mode consolidated: %+v", processed)
	}
	sameTransaction(t, processed[0], transactions[0])
}

func TestProcessTransactions_CashMode(t *testing.T) {
	// Spec'd example: closing day 10, due day 20, purchase on the 5th stays in
	// the January cycle and is due Jan 20.
	t.Run("single purchase becomes one virtual invoice", func(t *testing.T) {
		cards := []*entity.CreditCard{card("c1", "Inter Gold", 10, 20)}
		transactions := []*entity.Transaction{
			txn("t1", entity.TransactionTypeExpense, 300, day(2026, time.January, 5), false, "c1"),
		}

		processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
		if len(processed) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(processed))
		}

		inv := processed[0]
		if inv.ID != "virtual-invoice-c1-2026-01-20" {
			t.Errorf("unexpected invoice id %q", inv.ID)
		}
		if !inv.IsVirtual {
			t.Error("invoice not flagged virtual")
		}
		if inv.Description != "Fatura – Inter Gold" {
			t.Errorf("unexpected description %q", inv.Description)
		}
		if !inv.Amount.Equal(amount(300)) {
			t.Errorf("expected amount 300, got %s", inv.Amount)
		}
		if !inv.Date.Equal(day(2026, time.January, 20)) {
			t.Errorf("expected due date 2026-01-20, got %v", inv.Date)
		}
		if inv.IsPaid {
			t.Error("virtual invoice must be unpaid by definition")
		}
		if inv.AccountID != "acc-1" {
			t.Errorf("account not inherited from first child: %q", inv.AccountID)
		}
		if len(inv.VirtualChildren) != 1 || inv.VirtualChildren[0].ID != "t1" {
			t.Errorf("children not recorded: %+v", inv.VirtualChildren)
		}
	})

	t.Run("regular transactions pass through exactly once", func(t *testing.T) {
		cards := []*entity.CreditCard{card("c1", "Inter Gold", 10, 20)}
		regular := txn("t-reg", entity.TransactionTypeExpense, 80, day(2026, time.January, 9), true, "")
		transactions := []*entity.Transaction{
			regular,
			txn("t1", entity.TransactionTypeExpense, 300, day(2026, time.January, 5), false, "c1"),
		}

		processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
		if len(processed) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(processed))
		}
		got := findByID(processed, "t-reg")
		if got == nil {
			t.Fatal("regular transaction missing from output")
		}
		if got.IsVirtual {
			t.Error("regular transaction flagged virtual")
		}
		sameTransaction(t, got, regular)
	})

	t.Run("individual card purchases disappear from the output", func(t *testing.T) {
		cards := []*entity.CreditCard{card("c1", "Inter Gold", 10, 20)}
		transactions := []*entity.Transaction{
			txn("t1", entity.TransactionTypeExpense, 300, day(2026, time.January, 5), false, "c1"),
			txn("t2", entity.TransactionTypeExpense, 200, day(2026, time.January, 6), false, "c1"),
		}

		processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
		if findByID(processed, "t1") != nil || findByID(processed, "t2") != nil {
			t.Error("raw card purchases leaked into cash-mode output")
		}
		if len(processed) != 1 {
			t.Fatalf("expected a single consolidated invoice, got %d entries", len(processed))
		}
		if !processed[0].Amount.Equal(amount(500)) {
			t.Errorf("expected 500, got %s", processed[0].Amount)
		}
	})

	t.Run("card transfers pass through as a defensive fallback", func(t *testing.T) {
		cards := []*entity.CreditCard{card("c1", "Inter Gold", 10, 20)}
		transfer := txn("t-tr", entity.TransactionTypeTransfer, 120, day(2026, time.January, 5), true, "c1")

		processed := ProcessTransactions([]*entity.Transaction{transfer}, cards, entity.AccountingModeCash)
		if len(processed) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(processed))
		}
		sameTransaction(t, processed[0], transfer)
		if processed[0].IsVirtual {
			t.Error("transfer flagged virtual")
		}
	})

	t.Run("orphaned card reference passes through unchanged", func(t *testing.T) {
		orphan := txn("t-orphan", entity.TransactionTypeExpense, 42, day(2026, time.January, 5), false, "no-such-card")

		processed := ProcessTransactions([]*entity.Transaction{orphan}, nil, entity.AccountingModeCash)
		if len(processed) != 1 {
			t.Fatalf("expected orphan to survive, got %d entries", len(processed))
		}
		sameTransaction(t, processed[0], orphan)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := ProcessTransactions(nil, nil, entity.AccountingModeCash); len(got) != 0 {
			t.Fatalf("expected empty output, got %d entries", len(got))
		}
	})
}

func TestProcessTransactions_PaymentOffsets(t *testing.T) {
	cards := []*entity.CreditCard{card("c1", "Inter Gold", 10, 20)}

	t.Run("settled payment nets the invoice down", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn("t1", entity.TransactionTypeExpense, 1000, day(2026, time.January, 5), false, "c1"),
			txn("t2", entity.TransactionTypeIncome, 400, day(2026, time.January, 6), true, "c1"),
		}

		processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
		if len(processed) != 1 {
			t.Fatalf("expected 1 invoice, got %d entries", len(processed))
		}
		if !processed[0].Amount.Equal(amount(600)) {
			t.Errorf("expected outstanding 600, got %s", processed[0].Amount)
		}
		// The offsetting payment still shows up in the drill-down.
		if len(processed[0].VirtualChildren) != 2 {
			t.Errorf("expected both children recorded, got %d", len(processed[0].VirtualChildren))
		}
	})

	t.Run("fully paid invoice emits nothing", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn("t1", entity.TransactionTypeExpense, 1000, day(2026, time.January, 5), false, "c1"),
			txn("t2", entity.TransactionTypeIncome, 1000, day(2026, time.January, 6), true, "c1"),
		}

		processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
		if len(processed) != 0 {
			t.Fatalf("expected no entries for a settled invoice, got %d", len(processed))
		}
	})

	t.Run("pending payment does not reduce the invoice", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn("t1", entity.TransactionTypeExpense, 1000, day(2026, time.January, 5), false, "c1"),
			txn("t2", entity.TransactionTypeIncome, 1000, day(2026, time.January, 6), false, "c1"),
		}

		processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
		if len(processed) != 1 {
			t.Fatalf("expected 1 invoice, got %d entries", len(processed))
		}
		if !processed[0].Amount.Equal(amount(1000)) {
			t.Errorf("pending refund must not count: got %s", processed[0].Amount)
		}
	})

	t.Run("residue below one cent is treated as settled", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn("t1", entity.TransactionTypeExpense, 99.999, day(2026, time.January, 5), false, "c1"),
			txn("t2", entity.TransactionTypeIncome, 99.99, day(2026, time.January, 6), true, "c1"),
		}

		processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
		if len(processed) != 0 {
			t.Fatalf("sub-cent residue should suppress the invoice, got %d entries", len(processed))
		}
	})
}

// No money is created or destroyed: for an all-expense ledger the virtual
// invoices must add up to the raw purchases, whatever cycle they land in.
func TestProcessTransactions_Conservation(t *testing.T) {
	cards := []*entity.CreditCard{card("c1", "Inter Gold", 25, 5)}
	transactions := []*entity.Transaction{
		txn("t1", entity.TransactionTypeExpense, 100.10, day(2026, time.January, 2), false, "c1"),
		txn("t2", entity.TransactionTypeExpense, 250.25, day(2026, time.January, 24), false, "c1"),
		txn("t3", entity.TransactionTypeExpense, 300, day(2026, time.January, 25), false, "c1"),
		txn("t4", entity.TransactionTypeExpense, 49.65, day(2026, time.February, 10), false, "c1"),
		txn("t5", entity.TransactionTypeExpense, 500, day(2026, time.March, 1), false, "c1"),
	}

	processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)

	total := decimal.Zero
	childCount := 0
	for _, p := range processed {
		if !p.IsVirtual {
			t.Fatalf("unexpected non-virtual entry %s", p.ID)
		}
		total = total.Add(p.Amount)
		childCount += len(p.VirtualChildren)
	}
	if want := amount(1200.00); !total.Equal(want) {
		t.Errorf("virtual invoices sum to %s, want %s", total, want)
	}
	if childCount != len(transactions) {
		t.Errorf("expected every purchase routed to exactly one bucket, got %d children", childCount)
	}
}

// Closing-day boundary: with closing on the 25th, a purchase on the 24th and
// one on the 25th belong to different invoices.
func TestProcessTransactions_ClosingDayBoundary(t *testing.T) {
	cards := []*entity.CreditCard{card("c1", "Inter Gold", 25, 5)}
	transactions := []*entity.Transaction{
		txn("t-before", entity.TransactionTypeExpense, 50, day(2026, time.January, 24), false, "c1"),
		txn("t-on", entity.TransactionTypeExpense, 75, day(2026, time.January, 25), false, "c1"),
	}

	processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
	if len(processed) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(processed))
	}

	feb := findByID(processed, "virtual-invoice-c1-2026-02-05")
	mar := findByID(processed, "virtual-invoice-c1-2026-03-05")
	if feb == nil || mar == nil {
		t.Fatalf("unexpected invoice ids: %s, %s", processed[0].ID, processed[1].ID)
	}
	if !feb.Amount.Equal(amount(50)) || len(feb.VirtualChildren) != 1 || feb.VirtualChildren[0].ID != "t-before" {
		t.Errorf("pre-closing purchase misrouted: %+v", feb)
	}
	if !mar.Amount.Equal(amount(75)) || len(mar.VirtualChildren) != 1 || mar.VirtualChildren[0].ID != "t-on" {
		t.Errorf("closing-day purchase must open the next cycle: %+v", mar)
	}
}

func TestProcessTransactions_MultipleCards(t *testing.T) {
	cards := []*entity.CreditCard{
		card("c1", "Inter Gold", 10, 20),
		card("c2", "Nubank PJ", 10, 20),
	}
	transactions := []*entity.Transaction{
		txn("t1", entity.TransactionTypeExpense, 100, day(2026, time.January, 5), false, "c1"),
		txn("t2", entity.TransactionTypeExpense, 200, day(2026, time.January, 5), false, "c2"),
	}

	processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
	if len(processed) != 2 {
		t.Fatalf("expected one invoice per card, got %d entries", len(processed))
	}
	if findByID(processed, "virtual-invoice-c1-2026-01-20") == nil ||
		findByID(processed, "virtual-invoice-c2-2026-01-20") == nil {
		t.Errorf("cards were merged into one bucket: %s, %s", processed[0].ID, processed[1].ID)
	}
}

func TestProcessTransactions_SortOrder(t *testing.T) {
	cards := []*entity.CreditCard{card("c1", "Inter Gold", 10, 20)}
	transactions := []*entity.Transaction{
		txn("t-old", entity.TransactionTypeExpense, 10, day(2025, time.November, 3), true, ""),
		txn("t-card", entity.TransactionTypeExpense, 300, day(2026, time.January, 5), false, "c1"),
		txn("t-new", entity.TransactionTypeExpense, 20, day(2026, time.February, 1), true, ""),
		txn("t-mid", entity.TransactionTypeExpense, 30, day(2026, time.January, 7), true, ""),
	}

	processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
	for i := 1; i < len(processed); i++ {
		if processed[i].Date.After(processed[i-1].Date) {
			t.Fatalf("output not sorted newest-first at %d: %v before %v",
				i, processed[i-1].Date, processed[i].Date)
		}
	}
	if processed[0].ID != "t-new" {
		t.Errorf("expected newest entry first, got %s", processed[0].ID)
	}
}

func TestProcessTransactions_Idempotence(t *testing.T) {
	cards := []*entity.CreditCard{card("c1", "Inter Gold", 25, 5)}
	transactions := []*entity.Transaction{
		txn("t1", entity.TransactionTypeExpense, 100, day(2026, time.January, 2), false, "c1"),
		txn("t2", entity.TransactionTypeExpense, 200, day(2026, time.January, 26), false, "c1"),
		txn("t3", entity.TransactionTypeIncome, 50, day(2026, time.January, 3), true, "c1"),
		txn("t4", entity.TransactionTypeExpense, 10, day(2026, time.January, 4), true, ""),
	}

	first := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
	second := ProcessTransactions(transactions, cards, entity.AccountingModeCash)

	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("entry %d: id %q vs %q", i, first[i].ID, second[i].ID)
		}
		if !first[i].Amount.Equal(second[i].Amount) {
			t.Errorf("entry %d: amount %s vs %s", i, first[i].Amount, second[i].Amount)
		}
	}
}

func TestProcessTransactions_DoesNotMutateInputs(t *testing.T) {
	cards := []*entity.CreditCard{card("c1", "Inter Gold", 10, 20)}
	original := txn("t1", entity.TransactionTypeExpense, 300, day(2026, time.January, 5), false, "c1")
	snapshot := *original

	ProcessTransactions([]*entity.Transaction{original}, cards, entity.AccountingModeCash)
	ProcessTransactions([]*entity.Transaction{original}, cards, entity.AccountingModeCompetence)

	if original.ID != snapshot.ID || original.Description != snapshot.Description ||
		!original.Amount.Equal(snapshot.Amount) || !original.Date.Equal(snapshot.Date) ||
		original.IsPaid != snapshot.IsPaid {
		t.Errorf("input mutated: %+v vs %+v", original, snapshot)
	}
}

func TestProcessTransactions_VirtualIDConstruction(t *testing.T) {
	cards := []*entity.CreditCard{card("c1", "Inter Gold", 10, 20)}
	transactions := []*entity.Transaction{
		txn("t1", entity.TransactionTypeExpense, 300, day(2026, time.January, 5), false, "c1"),
	}

	processed := ProcessTransactions(transactions, cards, entity.AccountingModeCash)
	if len(processed) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(processed))
	}
	if !strings.HasPrefix(processed[0].ID, VirtualInvoiceIDPrefix) {
		t.Errorf("invoice id %q lacks the %q prefix", processed[0].ID, VirtualInvoiceIDPrefix)
	}
	if !strings.HasSuffix(processed[0].ID, processed[0].Date.Format("2006-01-02")) {
		t.Errorf("invoice id %q does not end with its due date", processed[0].ID)
	}
}
