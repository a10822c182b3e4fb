package ports

import (
	"context"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// Principal is an authenticated account joined with its role profile.
// Profile is nil when the account has no profile.
type Principal struct {
	Account *domain.Account
	Profile domain.Profile
}

type LoginResult struct {
	SessionID string
	Principal *Principal
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type AuthService interface {
	// Authenticate verifies credentials without creating a session.
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	// Login authenticates and opens a new session. previousSessionID, when
	// set, is destroyed so a session ID never survives a login.
	Login(ctx context.Context, email, password, previousSessionID string) (*LoginResult, error)
	// Resolve rehydrates the account behind a session.
	Resolve(ctx context.Context, sessionID string) (*domain.Account, error)
	// Refresh slides the session expiry.
	Refresh(ctx context.Context, sessionID string) error
	Status(ctx context.Context, account *domain.Account) (*Principal, error)
	Logout(ctx context.Context, sessionID string) error
	ChangePassword(ctx context.Context, accountID string, in ChangePasswordInput) error
}
