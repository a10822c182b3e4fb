package ports

import (
	"context"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// AccountRepository persists credential records. Emails are stored and
// looked up in normalized form.
type AccountRepository interface {
	// Create inserts the account and returns it with its ID set.
	// A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// Delete is idempotent: deleting a missing account is not an error.
	Delete(ctx context.Context, id string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	MarkVerified(ctx context.Context, id string) error
}
