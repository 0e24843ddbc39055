// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// OriginType identifies how a transaction entered the ledger.
type OriginType string

const (
	OriginTypeManual    OriginType = "manual"
	OriginTypeQuote     OriginType = "quote"
	OriginTypeRecurring OriginType = "recurring"
	OriginTypeTechnical OriginType = "technical"
)

// Transaction represents a financial transaction in the Gestor ledger.
//
// IDs are strings rather than uuid.UUID: stored rows carry a UUID string, but
// the ledger view also produces synthesized invoice entries whose ids are
// deterministic keys (see the ledger package), and both travel through the
// same type.
type Transaction struct {
	ID           string
	UserID       string
	Description  string
	Amount       decimal.Decimal // Always non-negative; Type carries the sign.
	Type         TransactionType
	Date         time.Time
	IsPaid       bool
	AccountID    string // Empty for card-only technical entries.
	CreditCardID string // Non-empty marks the transaction as card-linked.

	// Descriptive fields the ledger carries but never interprets.
	CategoryID string
	ContactID  string
	OriginType OriginType
	OriginID   string
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID string,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	date time.Time,
	isPaid bool,
	accountID string,
	creditCardID string,
	categoryID string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Description:  description,
		Amount:       amount,
		Type:         transactionType,
		Date:         date,
		IsPaid:       isPaid,
		AccountID:    accountID,
		CreditCardID: creditCardID,
		CategoryID:   categoryID,
		OriginType:   OriginTypeManual,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsCardLinked reports whether the transaction references a credit card.
func (t *Transaction) IsCardLinked() bool {
	return t.CreditCardID != ""
}

// AccountingMode selects how the ledger view reports card purchases.
type AccountingMode string

const (
	// AccountingModeCompetence records each purchase on its own date.
	AccountingModeCompetence AccountingMode = "competence"
	// AccountingModeCash replaces card purchases with consolidated invoices.
	AccountingModeCash AccountingMode = "cash"
)

// ParseAccountingMode maps a raw string to an AccountingMode. Unknown or empty
// values fall back to competence, the system-wide tolerant default.
func ParseAccountingMode(s string) AccountingMode {
	if AccountingMode(s) == AccountingModeCash {
		return AccountingModeCash
	}
	return AccountingModeCompetence
}
