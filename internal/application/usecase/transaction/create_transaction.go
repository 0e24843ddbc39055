// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

const maxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID       string
	Description  string
	Amount       decimal.Decimal
	Type         entity.TransactionType
	Date         time.Time
	IsPaid       bool
	AccountID    string
	CreditCardID string
	CategoryID   string
	Notes        string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cardRepo        adapter.CreditCardRepository
	cache           adapter.LedgerCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cardRepo adapter.CreditCardRepository,
	cache adapter.LedgerCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
		cache:           cache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Description, input.Amount, input.Type, input.Date); err != nil {
		return nil, err
	}

	// A card-linked row must reference one of the user's cards at creation
	// time. The ledger tolerates orphans (cards deleted later), but accepting
	// a bad reference up front would just manufacture them.
	if input.CreditCardID != "" {
		if _, err := uc.cardRepo.FindByID(ctx, input.CreditCardID, input.UserID); err != nil {
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

	txn := entity.NewTransaction(
		input.UserID,
		input.Description,
		input.Amount,
		input.Type,
		input.Date,
		input.IsPaid,
		input.AccountID,
		input.CreditCardID,
		input.CategoryID,
	)
	txn.Notes = input.Notes

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	invalidateLedger(ctx, uc.cache, input.UserID)

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// validateTransactionFields checks the constraints shared by create and update.
func validateTransactionFields(description string, amount decimal.Decimal, txnType entity.TransactionType, date time.Time) error {
	switch txnType {
	case entity.TransactionTypeExpense, entity.TransactionTypeIncome, entity.TransactionTypeTransfer:
	default:
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be expense, income or transfer",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"transaction amount cannot be negative",
			domainerror.ErrNegativeTransactionAmount,
		)
	}
	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	if len(description) > maxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			"description too long",
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

// invalidateLedger drops the user's cached ledger views after a write.
func invalidateLedger(ctx context.Context, cache adapter.LedgerCache, userID string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate ledger cache", "userID", userID, "error", err)
	}
}
