package adapter

import (
	"context"

	"github.com/gestor-app/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account owned by the user.
	FindByID(ctx context.Context, id, userID string) (*entity.Account, error)

	// FindByUser retrieves all accounts for a given user.
	FindByUser(ctx context.Context, userID string) ([]*entity.Account, error)

	// Update updates an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account owned by the user.
	Delete(ctx context.Context, id, userID string) error
}
