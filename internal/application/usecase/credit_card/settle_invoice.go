package creditcard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/billing"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// SettleInvoiceInput represents the input for settling a card invoice.
type SettleInvoiceInput struct {
	UserID    string
	CardID    string
	DueDate   string // YYYY-MM-DD, identifies the invoice.
	AccountID string // Account the payment debits.
}

// SettleInvoiceOutput represents the output of settling a card invoice.
type SettleInvoiceOutput struct {
	PaymentTransaction *entity.Transaction
	OffsetTransaction  *entity.Transaction
	Amount             decimal.Decimal
	SettledAt          time.Time
}

// SettleInvoiceUseCase records payment of an invoice's outstanding balance.
type SettleInvoiceUseCase struct {
	getInvoices     *GetInvoicesUseCase
	transactionRepo adapter.TransactionRepository
	cache           adapter.LedgerCache
}

// NewSettleInvoiceUseCase creates a new SettleInvoiceUseCase instance.
func NewSettleInvoiceUseCase(
	getInvoices *GetInvoicesUseCase,
	transactionRepo adapter.TransactionRepository,
	cache adapter.LedgerCache,
) *SettleInvoiceUseCase {
	return &SettleInvoiceUseCase{
		getInvoices:     getInvoices,
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute settles the invoice identified by card and due date.
//
// Paying an invoice creates two rows: a real, paid expense on the chosen bank
// account (the cash-flow event the ledger shows), and a settled card-linked
// income for the same amount. The income routes into the same bucket as the
// purchases it offsets, so the next consolidation nets the invoice to zero
// and stops emitting it.
func (uc *SettleInvoiceUseCase) Execute(ctx context.Context, input SettleInvoiceInput) (*SettleInvoiceOutput, error) {
	out, err := uc.getInvoices.Execute(ctx, GetInvoicesInput{
		UserID: input.UserID,
		CardID: input.CardID,
	})
	if err != nil {
		return nil, err
	}

	var invoice *InvoiceSummary
	for _, inv := range out.Invoices {
		if inv.DueDate.Format(billing.DateLayout) == input.DueDate {
			invoice = inv
			break
		}
	}
	if invoice == nil {
		// Either the due date never existed or the invoice is already fully
		// paid; both read the same from the consolidated view.
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeInvoiceNotFound,
			"no open invoice for the given due date",
			domainerror.ErrInvoiceNotFound,
		)
	}

	now := time.Now().UTC()

	payment := entity.NewTransaction(
		input.UserID,
		"Pagamento fatura – "+out.Card.Name,
		invoice.Amount,
		entity.TransactionTypeExpense,
		billing.Truncate(now),
		true,
		input.AccountID,
		"", // Not card-linked: this is the real cash-flow row.
		"",
	)

	// Dated like the first purchase it offsets, so the bucketing algorithm
	// routes it into the same invoice regardless of when the user pays.
	offsetDate := invoice.DueDate
	if len(invoice.Children) > 0 {
		offsetDate = invoice.Children[0].Date
	}
	offset := entity.NewTransaction(
		input.UserID,
		"Fatura paga – "+out.Card.Name,
		invoice.Amount,
		entity.TransactionTypeIncome,
		billing.Truncate(offsetDate),
		true,
		"",
		out.Card.ID,
		"",
	)
	offset.OriginType = entity.OriginTypeTechnical

	if err := uc.transactionRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record invoice payment: %w", err)
	}
	if err := uc.transactionRepo.Create(ctx, offset); err != nil {
		return nil, fmt.Errorf("failed to record invoice offset: %w", err)
	}

	invalidateLedger(ctx, uc.cache, input.UserID)

	return &SettleInvoiceOutput{
		PaymentTransaction: payment,
		OffsetTransaction:  offset,
		Amount:             invoice.Amount,
		SettledAt:          now,
	}, nil
}
