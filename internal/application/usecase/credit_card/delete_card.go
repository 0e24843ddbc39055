package creditcard

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestor-app/backend/internal/application/adapter"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// DeleteCardInput represents the input for credit card deletion.
type DeleteCardInput struct {
	UserID string
	CardID string
}

// DeleteCardUseCase handles credit card deletion logic.
type DeleteCardUseCase struct {
	cardRepo adapter.CreditCardRepository
	cache    adapter.LedgerCache
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.CreditCardRepository, cache adapter.LedgerCache) *DeleteCardUseCase {
	return &DeleteCardUseCase{cardRepo: cardRepo, cache: cache}
}

// Execute performs the credit card deletion. Transactions referencing the
// card are kept: with the card gone they become orphans, and the ledger view
// passes orphans through unchanged instead of dropping them.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) error {
	if err := uc.cardRepo.Delete(ctx, input.CardID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrCreditCardNotFound) {
			return domainerror.NewCreditCardError(
				domainerror.ErrCodeCreditCardNotFound,
				"credit card not found",
				domainerror.ErrCreditCardNotFound,
			)
		}
		return fmt.Errorf("failed to delete credit card: %w", err)
	}

	invalidateLedger(ctx, uc.cache, input.UserID)
	return nil
}
