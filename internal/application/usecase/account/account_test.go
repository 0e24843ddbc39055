package account

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

type stubAccountRepo struct {
	adapter.AccountRepository
	byID    map[string]*entity.Account
	deleted []string
}

func newStubAccountRepo(accounts ...*entity.Account) *stubAccountRepo {
	byID := make(map[string]*entity.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &stubAccountRepo{byID: byID}
}

func (r *stubAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.byID[account.ID] = account
	return nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id, userID string) (*entity.Account, error) {
	account, ok := r.byID[id]
	if !ok || account.UserID != userID {
		return nil, domainerror.ErrAccountNotFound
	}
	return account, nil
}

func (r *stubAccountRepo) FindByUser(_ context.Context, userID string) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *entity.Account) error {
	r.byID[account.ID] = account
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id, _ string) error {
	r.deleted = append(r.deleted, id)
	delete(r.byID, id)
	return nil
}

func TestCreateAccountUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an account", func(t *testing.T) {
		repo := newStubAccountRepo()
		uc := NewCreateAccountUseCase(repo)

		out, err := uc.Execute(ctx, CreateAccountInput{
			UserID:         "user-1",
			Name:           "Conta corrente",
			Type:           entity.AccountTypeChecking,
			OpeningBalance: decimal.NewFromInt(500),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Account.ID == "" {
			t.Error("expected generated account id")
		}
		if len(repo.byID) != 1 {
			t.Errorf("stored accounts = %d, want 1", len(repo.byID))
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := NewCreateAccountUseCase(newStubAccountRepo())
		_, err := uc.Execute(ctx, CreateAccountInput{
			UserID: "user-1",
			Type:   entity.AccountTypeChecking,
		})
		var accErr *domainerror.AccountError
		if !errors.As(err, &accErr) || accErr.Code != domainerror.ErrCodeAccountNameRequired {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeAccountNameRequired)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		uc := NewCreateAccountUseCase(newStubAccountRepo())
		_, err := uc.Execute(ctx, CreateAccountInput{
			UserID: "user-1",
			Name:   "Cofre",
			Type:   entity.AccountType("vault"),
		})
		var accErr *domainerror.AccountError
		if !errors.As(err, &accErr) || accErr.Code != domainerror.ErrCodeInvalidAccountType {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeInvalidAccountType)
		}
	})
}

func TestUpdateAccountUseCase(t *testing.T) {
	ctx := context.Background()
	acc := entity.NewAccount("user-1", "Conta corrente", entity.AccountTypeChecking, decimal.Zero)
	repo := newStubAccountRepo(acc)
	uc := NewUpdateAccountUseCase(repo)

	name := "Conta principal"
	out, err := uc.Execute(ctx, UpdateAccountInput{
		UserID:    "user-1",
		AccountID: acc.ID,
		Name:      &name,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Account.Name != name {
		t.Errorf("Name = %q, want %q", out.Account.Name, name)
	}
	if out.Account.Type != entity.AccountTypeChecking {
		t.Errorf("Type = %q, want unchanged", out.Account.Type)
	}
}

func TestDeleteAccountUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing account", func(t *testing.T) {
		acc := entity.NewAccount("user-1", "Carteira", entity.AccountTypeWallet, decimal.Zero)
		repo := newStubAccountRepo(acc)
		uc := NewDeleteAccountUseCase(repo)

		if err := uc.Execute(ctx, DeleteAccountInput{UserID: "user-1", AccountID: acc.ID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(repo.deleted) != 1 {
			t.Errorf("deleted = %v, want one entry", repo.deleted)
		}
	})

	t.Run("returns not found for missing account", func(t *testing.T) {
		uc := NewDeleteAccountUseCase(newStubAccountRepo())
		err := uc.Execute(ctx, DeleteAccountInput{UserID: "user-1", AccountID: "missing"})
		var accErr *domainerror.AccountError
		if !errors.As(err, &accErr) || accErr.Code != domainerror.ErrCodeAccountNotFound {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeAccountNotFound)
		}
	})
}
