package dto

import (
	"time"

	creditcard "github.com/gestor-app/backend/internal/application/usecase/credit_card"
	"github.com/gestor-app/backend/internal/domain/entity"
)

// CreateCardRequest represents the request body for credit card creation.
type CreateCardRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	ClosingDay  int     `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay      int     `json:"due_day" binding:"required,min=1,max=31"`
	LimitAmount float64 `json:"limit_amount" binding:"min=0"`
}

// UpdateCardRequest represents the request body for credit card update.
type UpdateCardRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	ClosingDay  *int     `json:"closing_day,omitempty" binding:"omitempty,min=1,max=31"`
	DueDay      *int     `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
	LimitAmount *float64 `json:"limit_amount,omitempty" binding:"omitempty,min=0"`
}

// SettleInvoiceRequest represents the request body for settling an invoice.
type SettleInvoiceRequest struct {
	DueDate   string `json:"due_date" binding:"required"`
	AccountID string `json:"account_id" binding:"required"`
}

// CreditCardResponse represents a credit card in API responses.
type CreditCardResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClosingDay  int       `json:"closing_day"`
	DueDay      int       `json:"due_day"`
	LimitAmount string    `json:"limit_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CardUtilizationResponse represents a card with its limit utilization.
type CardUtilizationResponse struct {
	CreditCardResponse
	Used      string `json:"used"`
	Available string `json:"available"`
	Percent   string `json:"percent"`
}

// CardListResponse represents the response for listing credit cards.
type CardListResponse struct {
	Cards []CardUtilizationResponse `json:"cards"`
	Total int                       `json:"total"`
}

// InvoiceResponse represents one open invoice of a card.
type InvoiceResponse struct {
	ID       string                `json:"id"`
	DueDate  string                `json:"due_date"`
	Amount   string                `json:"amount"`
	Children []TransactionResponse `json:"children"`
}

// InvoiceListResponse represents the response for listing a card's invoices.
type InvoiceListResponse struct {
	Card     CreditCardResponse `json:"card"`
	Invoices []InvoiceResponse  `json:"invoices"`
}

// SettleInvoiceResponse represents the response for settling an invoice.
type SettleInvoiceResponse struct {
	Payment TransactionResponse `json:"payment"`
	Offset  TransactionResponse `json:"offset"`
	Amount  string              `json:"amount"`
}

// ToCreditCardResponse converts a domain CreditCard entity to a CreditCardResponse DTO.
func ToCreditCardResponse(card *entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:          card.ID,
		Name:        card.Name,
		ClosingDay:  card.ClosingDay,
		DueDay:      card.DueDay,
		LimitAmount: card.LimitAmount.StringFixed(2),
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}

// ToCardListResponse converts card utilizations to a CardListResponse DTO.
func ToCardListResponse(utilizations []*entity.CardUtilization) CardListResponse {
	cards := make([]CardUtilizationResponse, len(utilizations))
	for i, u := range utilizations {
		cards[i] = CardUtilizationResponse{
			CreditCardResponse: ToCreditCardResponse(u.Card),
			Used:               u.Used.StringFixed(2),
			Available:          u.Available.StringFixed(2),
			Percent:            u.Percent.StringFixed(2),
		}
	}
	return CardListResponse{Cards: cards, Total: len(cards)}
}

// ToInvoiceListResponse converts an invoices output to an InvoiceListResponse DTO.
func ToInvoiceListResponse(output *creditcard.GetInvoicesOutput) InvoiceListResponse {
	invoices := make([]InvoiceResponse, len(output.Invoices))
	for i, inv := range output.Invoices {
		children := make([]TransactionResponse, len(inv.Children))
		for j, child := range inv.Children {
			children[j] = ToTransactionResponse(child)
		}
		invoices[i] = InvoiceResponse{
			ID:       inv.ID,
			DueDate:  inv.DueDate.Format("2006-01-02"),
			Amount:   inv.Amount.StringFixed(2),
			Children: children,
		}
	}
	return InvoiceListResponse{
		Card:     ToCreditCardResponse(output.Card),
		Invoices: invoices,
	}
}
