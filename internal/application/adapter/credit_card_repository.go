package adapter

import (
	"context"

	"github.com/gestor-app/backend/internal/domain/entity"
)

// CreditCardRepository defines the interface for credit card persistence operations.
type CreditCardRepository interface {
	// Create creates a new credit card in the database.
	Create(ctx context.Context, card *entity.CreditCard) error

	// FindByID retrieves a credit card owned by the user.
	FindByID(ctx context.Context, id, userID string) (*entity.CreditCard, error)

	// FindByUser retrieves all credit cards for a given user.
	FindByUser(ctx context.Context, userID string) ([]*entity.CreditCard, error)

	// Update updates an existing credit card.
	Update(ctx context.Context, card *entity.CreditCard) error

	// Delete removes a credit card owned by the user.
	Delete(ctx context.Context, id, userID string) error
}
