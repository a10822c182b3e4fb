package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/api/metrics"
	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
	"github.com/dailymate/dailymate-api/internal/pkg/validate"
)

type emailInput struct {
	Email string `json:"email" validate:"required,email"`
}

type redeemInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// VerificationService issues and redeems single-use codes for email
// verification and password reset.
type VerificationService struct {
	accounts ports.AccountRepository
	codes    ports.VerificationRepository
	mailer   ports.Mailer
	hasher   ports.PasswordHasher
	logger   zerolog.Logger
	now      func() time.Time
	newCode  func() (string, error)
}

func NewVerificationService(
	accounts ports.AccountRepository,
	codes ports.VerificationRepository,
	mailer ports.Mailer,
	hasher ports.PasswordHasher,
	logger zerolog.Logger,
) *VerificationService {
	return &VerificationService{
		accounts: accounts,
		codes:    codes,
		mailer:   mailer,
		hasher:   hasher,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newCode:  generateCode,
	}
}

func (s *VerificationService) SendVerification(ctx context.Context, email string) error {
	return s.issue(ctx, email, domain.PurposeVerifyEmail)
}

func (s *VerificationService) ForgotPassword(ctx context.Context, email string) error {
	return s.issue(ctx, email, domain.PurposeResetPassword)
}

func (s *VerificationService) issue(ctx context.Context, email string, purpose domain.CodePurpose) error {
	email = domain.NormalizeEmail(email)
	if err := validate.Struct(emailInput{Email: email}); err != nil {
		return err
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if purpose == domain.PurposeVerifyEmail && account.IsVerified {
		return domain.ErrAlreadyVerified
	}

	code, err := s.newCode()
	if err != nil {
		return err
	}
	now := s.now()
	record := &domain.VerificationCode{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.CodeTTL),
	}
	if err := s.codes.Replace(ctx, record); err != nil {
		return err
	}

	if err := s.mailer.SendVerificationCode(ctx, email, code, purpose); err != nil {
		metrics.VerificationCodesIssuedTotal.WithLabelValues(string(purpose), "delivery_failed").Inc()
		s.logger.Error().Err(err).Str("account_id", account.ID).Str("purpose", string(purpose)).Msg("verification email failed")
		if delErr := s.codes.DeleteByEmail(context.WithoutCancel(ctx), email); delErr != nil {
			s.logger.Warn().Err(delErr).Msg("failed to discard undelivered code")
		}
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	metrics.VerificationCodesIssuedTotal.WithLabelValues(string(purpose), "sent").Inc()
	s.logger.Info().Str("account_id", account.ID).Str("purpose", string(purpose)).Msg("verification code issued")
	return nil
}

func (s *VerificationService) VerifyEmail(ctx context.Context, email, code string) error {
	email = domain.NormalizeEmail(email)
	if err := validate.Struct(redeemInput{Email: email, Code: code}); err != nil {
		return err
	}

	if err := s.consume(ctx, email, code, domain.PurposeVerifyEmail); err != nil {
		return err
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := s.accounts.MarkVerified(context.WithoutCancel(ctx), account.ID); err != nil {
		return err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("email verified")
	return nil
}

func (s *VerificationService) ResetPassword(ctx context.Context, in ports.ResetPasswordInput) error {
	in.Email = domain.NormalizeEmail(in.Email)
	if err := validate.Struct(in); err != nil {
		return err
	}
	if in.NewPassword != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	if err := s.consume(ctx, in.Email, in.Code, domain.PurposeResetPassword); err != nil {
		return err
	}

	account, err := s.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	hash, err := s.hasher.Hash(ctx, in.NewPassword)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePasswordHash(context.WithoutCancel(ctx), account.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("password reset")
	return nil
}

// consume redeems a code; the record is gone afterwards whatever happens next.
func (s *VerificationService) consume(ctx context.Context, email, code string, purpose domain.CodePurpose) error {
	if _, err := s.codes.Consume(ctx, email, code, purpose, s.now()); err != nil {
		metrics.VerificationRedemptionsTotal.WithLabelValues(string(purpose), "rejected").Inc()
		return err
	}
	metrics.VerificationRedemptionsTotal.WithLabelValues(string(purpose), "success").Inc()
	return nil
}

var codeSpace = big.NewInt(1_000_000)

// generateCode returns a uniformly random 6-digit code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", domain.CodeLength, n.Int64()), nil
}
