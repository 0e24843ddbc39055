package auth

import (
	"context"

	"github.com/gestor-app/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokenService: tokenService}
}

// Execute performs the user logout by invalidating the refresh token. The
// token may already be invalid; logout is idempotent either way.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)
	return nil
}
