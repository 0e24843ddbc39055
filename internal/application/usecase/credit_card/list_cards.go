package creditcard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
)

var percentCap = decimal.NewFromInt(100)

// ListCardsInput represents the input for listing credit cards.
type ListCardsInput struct {
	UserID string
}

// ListCardsOutput represents the output of listing credit cards.
type ListCardsOutput struct {
	Cards []*entity.CardUtilization
}

// ListCardsUseCase handles listing a user's credit cards with limit
// utilization.
type ListCardsUseCase struct {
	cardRepo        adapter.CreditCardRepository
	transactionRepo adapter.TransactionRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(
	cardRepo adapter.CreditCardRepository,
	transactionRepo adapter.TransactionRepository,
) *ListCardsUseCase {
	return &ListCardsUseCase{cardRepo: cardRepo, transactionRepo: transactionRepo}
}

// Execute lists the user's cards with their utilization. Unpaid card-linked
// expenses count as used limit; paying the invoice settles them and frees the
// limit again.
func (uc *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credit cards: %w", err)
	}

	expenseType := entity.TransactionTypeExpense
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: input.UserID,
		Type:   &expenseType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	usedByCard := make(map[string]decimal.Decimal, len(cards))
	for _, t := range transactions {
		if !t.IsCardLinked() || t.IsPaid {
			continue
		}
		usedByCard[t.CreditCardID] = usedByCard[t.CreditCardID].Add(t.Amount)
	}

	utilizations := make([]*entity.CardUtilization, 0, len(cards))
	for _, card := range cards {
		used := usedByCard[card.ID]
		utilizations = append(utilizations, &entity.CardUtilization{
			Card:      card,
			Used:      used,
			Available: card.LimitAmount.Sub(used),
			Percent:   utilizationPercent(used, card.LimitAmount),
		})
	}

	return &ListCardsOutput{Cards: utilizations}, nil
}

// utilizationPercent returns used/limit as a percentage capped at 100. A
// non-positive limit with anything on the card reads as fully utilized.
func utilizationPercent(used, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		if used.IsPositive() {
			return percentCap
		}
		return decimal.Zero
	}
	percent := used.Mul(percentCap).Div(limit)
	if percent.GreaterThan(percentCap) {
		return percentCap
	}
	return percent
}
