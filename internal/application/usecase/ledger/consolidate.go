// Package ledger contains the ledger view use cases, centered on the
// credit-card invoice consolidation engine.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/domain/billing"
	"github.com/gestor-app/backend/internal/domain/entity"
)

// VirtualInvoiceIDPrefix prefixes the deterministic ids of synthesized
// invoice entries. Callers key UI rows and "pay this invoice" actions on
// these ids, so the construction must stay stable across calls.
const VirtualInvoiceIDPrefix = "virtual-invoice-"

// invoiceEpsilon absorbs floating-point currency noise when deciding whether
// an invoice still has an outstanding balance.
var invoiceEpsilon = decimal.NewFromFloat(0.01)

// ProcessedTransaction is a ledger-view entry: either a real transaction
// tagged as non-virtual, or a synthesized invoice aggregating the card
// purchases of one billing cycle.
type ProcessedTransaction struct {
	entity.Transaction

	IsVirtual bool

	// VirtualChildren holds the raw transactions absorbed into a virtual
	// invoice, for drill-down. Nil on non-virtual entries.
	VirtualChildren []*entity.Transaction
}

// invoiceBucket accumulates one card's purchases and payments for a single
// due date.
type invoiceBucket struct {
	card     *entity.CreditCard
	dueDate  string // YYYY-MM-DD
	charges  decimal.Decimal
	offsets  decimal.Decimal
	children []*entity.Transaction
}

// remaining is the invoice's outstanding balance: gross charges net of the
// payments and refunds already settled against the card.
func (b *invoiceBucket) remaining() decimal.Decimal {
	return b.charges.Sub(b.offsets)
}

// ProcessTransactions derives the ledger view for the requested accounting
// mode. It is pure: no I/O, inputs are never mutated, and identical inputs
// always produce identical output, including virtual invoice ids.
//
// Competence mode returns every transaction as its own entry, in input order.
// Cash mode hides individual card purchases and replaces them with one
// virtual invoice per card and due date, carrying only the balance still
// owed; the output is sorted newest-first. Card-linked transactions that are
// neither expense nor income, or whose card is unknown, pass through
// unchanged rather than being dropped.
func ProcessTransactions(
	transactions []*entity.Transaction,
	cards []*entity.CreditCard,
	mode entity.AccountingMode,
) []*ProcessedTransaction {
	if mode != entity.AccountingModeCash {
		// Competence accounting: each purchase is its own ledger event on its
		// own date. Callers rely on the stable 1:1 mapping, so no grouping,
		// no reordering.
		processed := make([]*ProcessedTransaction, 0, len(transactions))
		for _, t := range transactions {
			processed = append(processed, passThrough(t))
		}
		return processed
	}

	cardsByID := make(map[string]*entity.CreditCard, len(cards))
	for _, c := range cards {
		cardsByID[c.ID] = c
	}

	processed := make([]*ProcessedTransaction, 0, len(transactions))
	buckets := make(map[string]*invoiceBucket)
	bucketOrder := make([]string, 0)

	for _, t := range transactions {
		if !t.IsCardLinked() {
			processed = append(processed, passThrough(t))
			continue
		}

		// Only expenses (purchases) and incomes (payments/refunds) take part
		// in consolidation; anything else on a card is unexpected data and
		// passes through untouched.
		if t.Type != entity.TransactionTypeExpense && t.Type != entity.TransactionTypeIncome {
			processed = append(processed, passThrough(t))
			continue
		}

		card, ok := cardsByID[t.CreditCardID]
		if !ok {
			// Orphaned card reference: keep the row visible instead of
			// silently losing money from the ledger.
			processed = append(processed, passThrough(t))
			continue
		}

		dueDate := billing.InvoiceDueDate(t.Date, card.ClosingDay, card.DueDay)
		dueDateISO := dueDate.Format(billing.DateLayout)
		key := card.ID + "-" + dueDateISO

		bucket, ok := buckets[key]
		if !ok {
			bucket = &invoiceBucket{card: card, dueDate: dueDateISO}
			buckets[key] = bucket
			bucketOrder = append(bucketOrder, key)
		}

		switch {
		case t.Type == entity.TransactionTypeExpense:
			bucket.charges = bucket.charges.Add(t.Amount)
		case t.IsPaid:
			// Settled payment or refund against the card. A pending one does
			// not reduce the invoice yet.
			bucket.offsets = bucket.offsets.Add(t.Amount)
		}
		bucket.children = append(bucket.children, t)
	}

	for _, key := range bucketOrder {
		bucket := buckets[key]
		if bucket.remaining().LessThanOrEqual(invoiceEpsilon) {
			// Fully paid invoices have no ledger presence: the real payment
			// transaction elsewhere already carries the cash-flow event.
			continue
		}
		processed = append(processed, bucket.virtualInvoice())
	}

	sort.SliceStable(processed, func(i, j int) bool {
		return processed[i].Date.After(processed[j].Date)
	})
	return processed
}

// passThrough copies t into a non-virtual ledger entry.
func passThrough(t *entity.Transaction) *ProcessedTransaction {
	return &ProcessedTransaction{Transaction: *t}
}

// virtualInvoice synthesizes the ledger entry for the bucket's outstanding
// balance.
func (b *invoiceBucket) virtualInvoice() *ProcessedTransaction {
	accountID := ""
	userID := b.card.UserID
	if len(b.children) > 0 {
		// Best-effort inherited field, not semantically load-bearing.
		accountID = b.children[0].AccountID
	}

	return &ProcessedTransaction{
		Transaction: entity.Transaction{
			ID:          VirtualInvoiceIDPrefix + b.card.ID + "-" + b.dueDate,
			UserID:      userID,
			Description: "Fatura – " + b.card.Name,
			Amount:      b.remaining(),
			Type:        entity.TransactionTypeExpense,
			Date:        billing.ParseDateLocal(b.dueDate),
			IsPaid:      false,
			AccountID:   accountID,
		},
		IsVirtual:       true,
		VirtualChildren: b.children,
	}
}
