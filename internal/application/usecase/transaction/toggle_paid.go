package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// TogglePaidInput represents the input for toggling a transaction's paid flag.
type TogglePaidInput struct {
	UserID        string
	TransactionID string
}

// TogglePaidOutput represents the output of toggling a transaction's paid flag.
type TogglePaidOutput struct {
	Transaction *entity.Transaction
}

// TogglePaidUseCase flips a transaction between paid and pending. On
// card-linked income this changes whether the amount offsets the card's
// invoice, so the ledger cache is invalidated like any other write.
type TogglePaidUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.LedgerCache
}

// NewTogglePaidUseCase creates a new TogglePaidUseCase instance.
func NewTogglePaidUseCase(transactionRepo adapter.TransactionRepository, cache adapter.LedgerCache) *TogglePaidUseCase {
	return &TogglePaidUseCase{transactionRepo: transactionRepo, cache: cache}
}

// Execute flips the paid flag of the given transaction.
func (uc *TogglePaidUseCase) Execute(ctx context.Context, input TogglePaidInput) (*TogglePaidOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	txn.IsPaid = !txn.IsPaid
	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateLedger(ctx, uc.cache, input.UserID)

	return &TogglePaidOutput{Transaction: txn}, nil
}
