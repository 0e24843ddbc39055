package creditcard

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

// UpdateCardInput represents the input for credit card update. Nil fields are
// left unchanged.
type UpdateCardInput struct {
	UserID      string
	CardID      string
	Name        *string
	ClosingDay  *int
	DueDay      *int
	LimitAmount *decimal.Decimal
}

// UpdateCardOutput represents the output of credit card update.
type UpdateCardOutput struct {
	Card *entity.CreditCard
}

// UpdateCardUseCase handles credit card update logic.
type UpdateCardUseCase struct {
	cardRepo adapter.CreditCardRepository
	cache    adapter.LedgerCache
}

// NewUpdateCardUseCase creates a new UpdateCardUseCase instance.
func NewUpdateCardUseCase(cardRepo adapter.CreditCardRepository, cache adapter.LedgerCache) *UpdateCardUseCase {
	return &UpdateCardUseCase{cardRepo: cardRepo, cache: cache}
}

// Execute performs the credit card update. Changing the closing or due day
// re-buckets existing purchases on the next consolidation; that is intended,
// the card definition is the single source of cycle truth.
func (uc *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCreditCardNotFound) {
			return nil, domainerror.NewCreditCardError(
				domainerror.ErrCodeCreditCardNotFound,
				"credit card not found",
				domainerror.ErrCreditCardNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load credit card: %w", err)
	}

	if input.Name != nil {
		card.Name = *input.Name
	}
	if input.ClosingDay != nil {
		card.ClosingDay = *input.ClosingDay
	}
	if input.DueDay != nil {
		card.DueDay = *input.DueDay
	}
	if input.LimitAmount != nil {
		card.LimitAmount = *input.LimitAmount
	}

	if err := validateCardFields(card.Name, card.ClosingDay, card.DueDay, card.LimitAmount); err != nil {
		return nil, err
	}

	card.UpdatedAt = time.Now().UTC()

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}

	invalidateLedger(ctx, uc.cache, input.UserID)

	return &UpdateCardOutput{Card: card}, nil
}
