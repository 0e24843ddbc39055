package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditCard represents a credit card whose purchases are consolidated into
// monthly invoices.
type CreditCard struct {
	ID     string
	UserID string
	Name   string

	// ClosingDay is the day-of-month the billing cycle closes (1-31). The day
	// itself is excluded from the current cycle: a purchase made on the
	// closing day already belongs to the next invoice ("best shopping day").
	ClosingDay int

	// DueDay is the day-of-month the invoice payment is due (1-31).
	DueDay int

	// LimitAmount is the credit ceiling, used for utilization display.
	LimitAmount decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(userID, name string, closingDay, dueDay int, limitAmount decimal.Decimal) *CreditCard {
	now := time.Now().UTC()

	return &CreditCard{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		ClosingDay:  closingDay,
		DueDay:      dueDay,
		LimitAmount: limitAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CardUtilization summarizes how much of a card's limit is committed to
// unpaid purchases.
type CardUtilization struct {
	Card      *CreditCard
	Used      decimal.Decimal
	Available decimal.Decimal
	Percent   decimal.Decimal // 0-100, capped at 100.
}
