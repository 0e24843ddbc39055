package creditcard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/application/usecase/ledger"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// GetInvoicesInput represents the input for listing a card's open invoices.
type GetInvoicesInput struct {
	UserID string
	CardID string
}

// InvoiceSummary represents one open invoice of a card.
type InvoiceSummary struct {
	ID       string // Deterministic virtual-invoice id.
	DueDate  time.Time
	Amount   decimal.Decimal // Outstanding balance, net of settled payments.
	Children []*entity.Transaction
}

// GetInvoicesOutput represents the output of listing a card's open invoices.
type GetInvoicesOutput struct {
	Card     *entity.CreditCard
	Invoices []*InvoiceSummary
}

// GetInvoicesUseCase derives the open invoices of a single card.
type GetInvoicesUseCase struct {
	cardRepo        adapter.CreditCardRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetInvoicesUseCase creates a new GetInvoicesUseCase instance.
func NewGetInvoicesUseCase(
	cardRepo adapter.CreditCardRepository,
	transactionRepo adapter.TransactionRepository,
) *GetInvoicesUseCase {
	return &GetInvoicesUseCase{cardRepo: cardRepo, transactionRepo: transactionRepo}
}

// Execute consolidates the card's transactions in cash mode and returns the
// resulting open invoices. Fully paid cycles produce no entry here, same as
// in the ledger view.
func (uc *GetInvoicesUseCase) Execute(ctx context.Context, input GetInvoicesInput) (*GetInvoicesOutput, error) {
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

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:       input.UserID,
		CreditCardID: card.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load card transactions: %w", err)
	}

	processed := ledger.ProcessTransactions(transactions, []*entity.CreditCard{card}, entity.AccountingModeCash)

	invoices := make([]*InvoiceSummary, 0, len(processed))
	for _, p := range processed {
		if !p.IsVirtual {
			continue
		}
		invoices = append(invoices, &InvoiceSummary{
			ID:       p.ID,
			DueDate:  p.Date,
			Amount:   p.Amount,
			Children: p.VirtualChildren,
		})
	}

	return &GetInvoicesOutput{Card: card, Invoices: invoices}, nil
}
