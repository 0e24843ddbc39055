package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#10B981"

// Category represents a transaction category.
type Category struct {
	ID        string
	UserID    string
	Name      string
	Type      CategoryType
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity. Color defaulting is applied in
// the use case layer before calling this constructor.
func NewCategory(userID, name, color string, categoryType CategoryType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
