package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
)

type stubUserRepo struct {
	adapter.UserRepository
	byEmail map[string]*entity.User
}

func newStubUserRepo(users ...*entity.User) *stubUserRepo {
	byEmail := make(map[string]*entity.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}
	return &stubUserRepo{byEmail: byEmail}
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	adapter.TokenService
	invalidated map[string]bool
	pairs       int
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{invalidated: make(map[string]bool)}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID, email string) (*adapter.TokenPair, error) {
	s.pairs++
	return &adapter.TokenPair{
		AccessToken:  "access-" + userID,
		RefreshToken: "refresh-" + userID,
	}, nil
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token == "" || token == "garbage" {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{UserID: "user-1", Email: "ana@example.com"}, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !s.invalidated[token], nil
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and returns tokens", func(t *testing.T) {
		repo := newStubUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		out, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "correct-horse",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected token pair")
		}
		if out.User.PasswordHash != "hashed:correct-horse" {
			t.Errorf("PasswordHash = %q, want hashed value", out.User.PasswordHash)
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newStubUserRepo(), fakePasswordService{}, newFakeTokenService())
		_, err := uc.Execute(ctx, RegisterUserInput{Email: "not-an-email", Name: "Ana", Password: "correct-horse"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidEmail {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeInvalidEmail)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newStubUserRepo(), fakePasswordService{}, newFakeTokenService())
		_, err := uc.Execute(ctx, RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "short"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeWeakPassword)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		existing := entity.NewUser("ana@example.com", "Ana", "hashed:x")
		uc := NewRegisterUserUseCase(newStubUserRepo(existing), fakePasswordService{}, newFakeTokenService())
		_, err := uc.Execute(ctx, RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "correct-horse"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailExists {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeEmailExists)
		}
	})
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:correct-horse")
	repo := newStubUserRepo(user)

	t.Run("logs in with valid credentials", func(t *testing.T) {
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService())
		out, err := uc.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.User.ID != user.ID {
			t.Errorf("User.ID = %q, want %q", out.User.ID, user.ID)
		}
	})

	t.Run("returns the same error for wrong password and unknown email", func(t *testing.T) {
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		_, wrongPass := uc.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "wrong"})
		_, unknownEmail := uc.Execute(ctx, LoginUserInput{Email: "bob@example.com", Password: "whatever"})

		for _, err := range []error{wrongPass, unknownEmail} {
			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidCredentials {
				t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeInvalidCredentials)
			}
		}
	})
}

func TestRefreshTokenUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the refresh token", func(t *testing.T) {
		tokens := newFakeTokenService()
		uc := NewRefreshTokenUseCase(tokens)

		out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "refresh-user-1"})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected new token pair")
		}
		if !tokens.invalidated["refresh-user-1"] {
			t.Error("old refresh token should be invalidated")
		}
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		tokens := newFakeTokenService()
		tokens.invalidated["refresh-user-1"] = true
		uc := NewRefreshTokenUseCase(tokens)

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "refresh-user-1"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeInvalidToken)
		}
	})

	t.Run("rejects a malformed token", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())
		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "garbage"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Fatalf("Execute() error = %v, want code %s", err, domainerror.ErrCodeInvalidToken)
		}
	})
}

func TestLogoutUserUseCase(t *testing.T) {
	tokens := newFakeTokenService()
	uc := NewLogoutUserUseCase(tokens)

	if err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: "refresh-user-1"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !tokens.invalidated["refresh-user-1"] {
		t.Error("refresh token should be invalidated")
	}

	// Logging out twice is fine.
	if err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: "refresh-user-1"}); err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
}
