package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of money account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCash     AccountType = "cash"
	AccountTypeWallet   AccountType = "wallet"
)

// Account represents a bank or cash account transactions settle against.
type Account struct {
	ID             string
	UserID         string
	Name           string
	Type           AccountType
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(userID, name string, accountType AccountType, openingBalance decimal.Decimal) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:             uuid.NewString(),
		UserID:         userID,
		Name:           name,
		Type:           accountType,
		OpeningBalance: openingBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
