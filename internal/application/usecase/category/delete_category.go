package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestor-app/backend/internal/application/adapter"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     string
	CategoryID string
}

// DeleteCategoryUseCase handles category deletion logic. Deletion is soft so
// historical transactions keep resolving the category name.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to load category: %w", err)
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
