package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing raw transactions.
type ListTransactionsInput struct {
	UserID       string
	StartDate    *time.Time
	EndDate      *time.Time
	Type         *entity.TransactionType
	AccountID    string
	CreditCardID string
	Search       string
}

// ListTransactionsOutput represents the output of listing raw transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase lists stored transactions without consolidation.
// The ledger use case is the consolidated counterpart; this one serves
// exports and per-account drilldowns that want the raw rows.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute retrieves the user's transactions matching the filter.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:       input.UserID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Type:         input.Type,
		AccountID:    input.AccountID,
		CreditCardID: input.CreditCardID,
		Search:       input.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
