package ports

import (
	"context"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string, purpose domain.CodePurpose) error
}
