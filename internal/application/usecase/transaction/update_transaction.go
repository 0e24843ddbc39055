package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/application/usecase/ledger"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	UserID        string
	TransactionID string
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	Date          *time.Time
	IsPaid        *bool
	AccountID     *string
	CreditCardID  *string
	CategoryID    *string
	Notes         *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cardRepo        adapter.CreditCardRepository
	cache           adapter.LedgerCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cardRepo adapter.CreditCardRepository,
	cache adapter.LedgerCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
		cache:           cache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	// Synthesized invoice entries only exist inside consolidated views and
	// have no row to update.
	if strings.HasPrefix(input.TransactionID, ledger.VirtualInvoiceIDPrefix) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeVirtualTransactionReadOnly,
			"virtual invoice entries cannot be updated",
			domainerror.ErrVirtualTransactionReadOnly,
		)
	}

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

	if input.Description != nil {
		txn.Description = *input.Description
	}
	if input.Amount != nil {
		txn.Amount = *input.Amount
	}
	if input.Type != nil {
		txn.Type = *input.Type
	}
	if input.Date != nil {
		txn.Date = *input.Date
	}
	if input.IsPaid != nil {
		txn.IsPaid = *input.IsPaid
	}
	if input.AccountID != nil {
		txn.AccountID = *input.AccountID
	}
	if input.CreditCardID != nil {
		txn.CreditCardID = *input.CreditCardID
	}
	if input.CategoryID != nil {
		txn.CategoryID = *input.CategoryID
	}
	if input.Notes != nil {
		txn.Notes = *input.Notes
	}

	if err := validateTransactionFields(txn.Description, txn.Amount, txn.Type, txn.Date); err != nil {
		return nil, err
	}

	if input.CreditCardID != nil && txn.CreditCardID != "" {
		if _, err := uc.cardRepo.FindByID(ctx, txn.CreditCardID, input.UserID); err != nil {
			if errors.Is(err, domainerror.ErrCreditCardNotFound) {
				return nil, domainerror.NewCreditCardError(
					domainerror.ErrCodeCreditCardNotFound,
					"credit card not found",
					domainerror.ErrCreditCardNotFound,
				)
			}
			return nil, fmt.Errorf("failed to verify credit card: %w", err)
		}
	}

	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateLedger(ctx, uc.cache, input.UserID)

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
