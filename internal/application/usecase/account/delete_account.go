package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestor-app/backend/internal/application/adapter"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID    string
	AccountID string
}

// DeleteAccountUseCase handles account deletion logic. Transactions keep
// their accountId after the account is gone; they simply stop resolving to
// an account name, same as orphaned card references in the ledger.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if _, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return fmt.Errorf("failed to load account: %w", err)
	}

	if err := uc.accountRepo.Delete(ctx, input.AccountID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
