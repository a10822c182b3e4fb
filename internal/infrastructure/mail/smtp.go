package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPMailer sends mail through an SMTP relay with gomail.
type SMTPMailer struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
	log    zerolog.Logger
}

func NewSMTPMailer(cfg SMTPConfig, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		log:    log,
	}
}

func (m *SMTPMailer) SendVerificationCode(ctx context.Context, to, code string, purpose domain.CodePurpose) error {
	if m.cfg.Host == "" || m.cfg.From == "" {
		return errors.New("smtp: mail config missing")
	}
	if strings.TrimSpace(to) == "" {
		return errors.New("smtp: empty recipient")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body := verificationMessage(code, purpose)
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", body.Subject)
	msg.SetBody("text/plain", body.Text)
	msg.AddAlternative("text/html", body.HTML)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	m.log.Info().Str("to", to).Str("purpose", string(purpose)).Msg("verification email sent")
	return nil
}
