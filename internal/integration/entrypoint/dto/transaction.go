package dto

import (
	"time"

	"github.com/gestor-app/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Description  string  `json:"description" binding:"required,min=1,max=255"`
	Amount       float64 `json:"amount" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=expense income transfer"`
	Date         string  `json:"date" binding:"required"`
	IsPaid       bool    `json:"is_paid"`
	AccountID    string  `json:"account_id,omitempty"`
	CreditCardID string  `json:"credit_card_id,omitempty"`
	CategoryID   string  `json:"category_id,omitempty"`
	Notes        string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Description  *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount       *float64 `json:"amount,omitempty"`
	Type         *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income transfer"`
	Date         *string  `json:"date,omitempty"`
	IsPaid       *bool    `json:"is_paid,omitempty"`
	AccountID    *string  `json:"account_id,omitempty"`
	CreditCardID *string  `json:"credit_card_id,omitempty"`
	CategoryID   *string  `json:"category_id,omitempty"`
	Notes        *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Description  string    `json:"description"`
	Amount       string    `json:"amount"`
	Type         string    `json:"type"`
	Date         string    `json:"date"`
	IsPaid       bool      `json:"is_paid"`
	AccountID    string    `json:"account_id,omitempty"`
	CreditCardID string    `json:"credit_card_id,omitempty"`
	CategoryID   string    `json:"category_id,omitempty"`
	OriginType   string    `json:"origin_type,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID,
		UserID:       txn.UserID,
		Description:  txn.Description,
		Amount:       txn.Amount.StringFixed(2),
		Type:         string(txn.Type),
		Date:         txn.Date.Format("2006-01-02"),
		IsPaid:       txn.IsPaid,
		AccountID:    txn.AccountID,
		CreditCardID: txn.CreditCardID,
		CategoryID:   txn.CategoryID,
		OriginType:   string(txn.OriginType),
		Notes:        txn.Notes,
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts transactions to a TransactionListResponse DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: responses,
		Total:        len(responses),
	}
}
