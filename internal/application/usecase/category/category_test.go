package category

import (
	"context"
	"errors"
	"testing"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

type stubCategoryRepo struct {
	adapter.CategoryRepository
	byID map[string]*entity.Category
}

func newStubCategoryRepo(categories ...*entity.Category) *stubCategoryRepo {
	byID := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &stubCategoryRepo{byID: byID}
}

func (r *stubCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.byID[category.ID] = category
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id, userID string) (*entity.Category, error) {
	category, ok := r.byID[id]
	if !ok || category.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *stubCategoryRepo) ExistsByName(_ context.Context, userID, name string, categoryType entity.CategoryType) (bool, error) {
	for _, c := range r.byID {
		if c.UserID == userID && c.Name == name && c.Type == categoryType {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.byID[category.ID] = category
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id, _ string) error {
	delete(r.byID, id)
	return nil
}

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with default color", func(t *testing.T) {
		repo := newStubCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		out, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: "user-1",
			Name:   "Mercado",
			Type:   entity.CategoryTypeExpense,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Category.Color != entity.DefaultCategoryColor {
			t.Errorf("Color = %q, want %q", out.Category.Color, entity.DefaultCategoryColor)
		}
	})

	t.Run("rejects duplicate name within same type", func(t *testing.T) {
		existing := entity.NewCategory("user-1", "Mercado", "#FF0000", entity.CategoryTypeExpense)
		uc := NewCreateCategoryUseCase(newStubCategoryRepo(existing))

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: "user-1",
			Name:   "Mercado",
			Type:   entity.CategoryTypeExpense,
		})
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNameExists {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeCategoryNameExists)
		}
	})

	t.Run("allows same name across types", func(t *testing.T) {
		existing := entity.NewCategory("user-1", "Outros", "#FF0000", entity.CategoryTypeExpense)
		uc := NewCreateCategoryUseCase(newStubCategoryRepo(existing))

		if _, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: "user-1",
			Name:   "Outros",
			Type:   entity.CategoryTypeIncome,
		}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newStubCategoryRepo())
		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: "user-1",
			Name:   "Mercado",
			Type:   entity.CategoryType("transfer"),
		})
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeInvalidCategoryType {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeInvalidCategoryType)
		}
	})
}

func TestUpdateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("renames when new name is free", func(t *testing.T) {
		cat := entity.NewCategory("user-1", "Mercado", "#FF0000", entity.CategoryTypeExpense)
		uc := NewUpdateCategoryUseCase(newStubCategoryRepo(cat))

		name := "Supermercado"
		out, err := uc.Execute(ctx, UpdateCategoryInput{
			UserID:     "user-1",
			CategoryID: cat.ID,
			Name:       &name,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Category.Name != name {
			t.Errorf("Name = %q, want %q", out.Category.Name, name)
		}
	})

	t.Run("rejects rename to an existing name", func(t *testing.T) {
		a := entity.NewCategory("user-1", "Mercado", "#FF0000", entity.CategoryTypeExpense)
		b := entity.NewCategory("user-1", "Farmácia", "#00FF00", entity.CategoryTypeExpense)
		uc := NewUpdateCategoryUseCase(newStubCategoryRepo(a, b))

		name := "Mercado"
		_, err := uc.Execute(ctx, UpdateCategoryInput{
			UserID:     "user-1",
			CategoryID: b.ID,
			Name:       &name,
		})
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNameExists {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeCategoryNameExists)
		}
	})
}

func TestDeleteCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewDeleteCategoryUseCase(newStubCategoryRepo())

	err := uc.Execute(ctx, DeleteCategoryInput{UserID: "user-1", CategoryID: "missing"})
	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNotFound {
		t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeCategoryNotFound)
	}
}
