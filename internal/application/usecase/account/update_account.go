package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account update. Nil fields are
// left unchanged.
type UpdateAccountInput struct {
	UserID         string
	AccountID      string
	Name           *string
	Type           *entity.AccountType
	OpeningBalance *decimal.Decimal
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Type != nil {
		account.Type = *input.Type
	}
	if input.OpeningBalance != nil {
		account.OpeningBalance = *input.OpeningBalance
	}

	if err := validateAccountFields(account.Name, account.Type); err != nil {
		return nil, err
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
