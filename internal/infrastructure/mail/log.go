package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// LogMailer writes codes to the log instead of sending them. Development only.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendVerificationCode(_ context.Context, to, code string, purpose domain.CodePurpose) error {
	m.log.Warn().
		Str("to", to).
		Str("purpose", string(purpose)).
		Str("code", code).
		Msg("mail delivery disabled, logging verification code")
	return nil
}
