package dto

import (
	"time"

	"github.com/gestor-app/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	Type           string  `json:"type" binding:"required,oneof=checking savings cash wallet"`
	OpeningBalance float64 `json:"opening_balance"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name           *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type           *string  `json:"type,omitempty" binding:"omitempty,oneof=checking savings cash wallet"`
	OpeningBalance *float64 `json:"opening_balance,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	OpeningBalance string    `json:"opening_balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:             account.ID,
		Name:           account.Name,
		Type:           string(account.Type),
		OpeningBalance: account.OpeningBalance.StringFixed(2),
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}

// ToAccountListResponse converts accounts to an AccountListResponse DTO.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = ToAccountResponse(account)
	}
	return AccountListResponse{Accounts: responses, Total: len(responses)}
}
