package ports

import (
	"context"
	"time"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

type VerificationRepository interface {
	// Replace atomically swaps whatever code code.Email holds for code, so at
	// most one code is active per email.
	Replace(ctx context.Context, code *domain.VerificationCode) error
	// Consume atomically removes and returns the code matching email, code
	// and purpose that is still valid at now. No match yields
	// domain.ErrInvalidOrExpiredCode.
	Consume(ctx context.Context, email, code string, purpose domain.CodePurpose, now time.Time) (*domain.VerificationCode, error)
	DeleteByEmail(ctx context.Context, email string) error
}
