// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/gestor-app/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID       string
	StartDate    *time.Time
	EndDate      *time.Time
	Type         *entity.TransactionType
	AccountID    string
	CreditCardID string
	Search       string // Case-insensitive description match
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction owned by the user.
	FindByID(ctx context.Context, id, userID string) (*entity.Transaction, error)

	// FindByUser retrieves all of a user's transactions, unfiltered. The
	// ledger consolidation runs over this full set so billing cycles are
	// never cut in half by a date filter.
	FindByUser(ctx context.Context, userID string) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction owned by the user.
	Delete(ctx context.Context, id, userID string) error
}
