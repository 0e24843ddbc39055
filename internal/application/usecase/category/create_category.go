// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID string
	Name   string
	Type   entity.CategoryType
	Color  string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category creation. Names are unique per user and type,
// not globally, so "Outros" can exist once as expense and once as income.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if err := validateCategoryType(input.Type); err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, input.UserID, input.Name, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"category name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	category := entity.NewCategory(input.UserID, input.Name, color, input.Type)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

func validateCategoryType(categoryType entity.CategoryType) error {
	switch categoryType {
	case entity.CategoryTypeExpense, entity.CategoryTypeIncome:
		return nil
	default:
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be expense or income",
			domainerror.ErrInvalidCategoryType,
		)
	}
}
