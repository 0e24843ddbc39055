package adapter

import (
	"context"

	"github.com/gestor-app/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category owned by the user.
	FindByID(ctx context.Context, id, userID string) (*entity.Category, error)

	// FindByUser retrieves all categories for a given user.
	FindByUser(ctx context.Context, userID string) ([]*entity.Category, error)

	// ExistsByName checks whether the user already has a category with the
	// given name and type.
	ExistsByName(ctx context.Context, userID, name string, categoryType entity.CategoryType) (bool, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete soft-deletes a category owned by the user.
	Delete(ctx context.Context, id, userID string) error
}
