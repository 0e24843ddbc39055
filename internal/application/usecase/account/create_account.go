// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID         string
	Name           string
	Type           entity.AccountType
	OpeningBalance decimal.Decimal
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if err := validateAccountFields(input.Name, input.Type); err != nil {
		return nil, err
	}

	account := entity.NewAccount(input.UserID, input.Name, input.Type, input.OpeningBalance)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}

// validateAccountFields checks the constraints shared by create and update.
func validateAccountFields(name string, accountType entity.AccountType) error {
	if name == "" {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}
	switch accountType {
	case entity.AccountTypeChecking, entity.AccountTypeSavings, entity.AccountTypeCash, entity.AccountTypeWallet:
		return nil
	default:
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be checking, savings, cash or wallet",
			domainerror.ErrInvalidAccountType,
		)
	}
}
