package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/application/usecase/ledger"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        string
	TransactionID string
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.LedgerCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository, cache adapter.LedgerCache) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{transactionRepo: transactionRepo, cache: cache}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	// Synthesized invoice entries only exist inside consolidated views; there
	// is no row to delete. Reject the id early instead of reporting not-found.
	if strings.HasPrefix(input.TransactionID, ledger.VirtualInvoiceIDPrefix) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeVirtualTransactionReadOnly,
			"virtual invoice entries cannot be deleted",
			domainerror.ErrVirtualTransactionReadOnly,
		)
	}

	if _, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return fmt.Errorf("failed to load transaction: %w", err)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	invalidateLedger(ctx, uc.cache, input.UserID)

	return nil
}
