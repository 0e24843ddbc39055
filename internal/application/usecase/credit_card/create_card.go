// Package creditcard contains credit card management use cases.
package creditcard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// CreateCardInput represents the input for credit card creation.
type CreateCardInput struct {
	UserID      string
	Name        string
	ClosingDay  int
	DueDay      int
	LimitAmount decimal.Decimal
}

// CreateCardOutput represents the output of credit card creation.
type CreateCardOutput struct {
	Card *entity.CreditCard
}

// CreateCardUseCase handles credit card creation logic.
type CreateCardUseCase struct {
	cardRepo adapter.CreditCardRepository
	cache    adapter.LedgerCache
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.CreditCardRepository, cache adapter.LedgerCache) *CreateCardUseCase {
	return &CreateCardUseCase{cardRepo: cardRepo, cache: cache}
}

// Execute performs the credit card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	if err := validateCardFields(input.Name, input.ClosingDay, input.DueDay, input.LimitAmount); err != nil {
		return nil, err
	}

	card := entity.NewCreditCard(input.UserID, input.Name, input.ClosingDay, input.DueDay, input.LimitAmount)

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	invalidateLedger(ctx, uc.cache, input.UserID)

	return &CreateCardOutput{Card: card}, nil
}

// validateCardFields checks the billing-day and limit constraints shared by
// create and update.
func validateCardFields(name string, closingDay, dueDay int, limit decimal.Decimal) error {
	if name == "" {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeMissingCardFields,
			"card name is required",
			nil,
		)
	}
	if closingDay < 1 || closingDay > 31 {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidClosingDay,
			"closing day must be between 1 and 31",
			domainerror.ErrInvalidClosingDay,
		)
	}
	if dueDay < 1 || dueDay > 31 {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}
	if limit.IsNegative() {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeNegativeCardLimit,
			"card limit cannot be negative",
			domainerror.ErrNegativeCardLimit,
		)
	}
	return nil
}
