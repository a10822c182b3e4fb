package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/api/metrics"
	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
	"github.com/dailymate/dailymate-api/internal/pkg/validate"
)

const defaultSessionTTL = time.Hour

// AuthService is the authentication strategy: it verifies credentials,
// opens and resolves sessions, and joins an account with its role profile.
type AuthService struct {
	accounts   ports.AccountRepository
	profiles   ports.ProfileRepository
	sessions   ports.SessionStore
	hasher     ports.PasswordHasher
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	profiles ports.ProfileRepository,
	sessions ports.SessionStore,
	hasher ports.PasswordHasher,
	sessionTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthService{
		accounts:   accounts,
		profiles:   profiles,
		sessions:   sessions,
		hasher:     hasher,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Authenticate returns the account for valid credentials. Unknown emails and
// wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	if !account.IsActive {
		return nil, domain.ErrAccountInactive
	}

	ok, err := s.hasher.Compare(ctx, account.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return account, nil
}

func (s *AuthService) Login(ctx context.Context, email, password, previousSessionID string) (*ports.LoginResult, error) {
	account, err := s.Authenticate(ctx, email, password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
		return nil, err
	}

	if previousSessionID != "" {
		if err := s.sessions.Destroy(ctx, previousSessionID); err != nil {
			s.logger.Warn().Err(err).Msg("failed to destroy previous session")
		}
	}

	sessionID, err := s.sessions.Create(ctx, account.ID, s.sessionTTL)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	principal, err := s.Status(ctx, account)
	if err != nil {
		_ = s.sessions.Destroy(ctx, sessionID)
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("login succeeded")
	return &ports.LoginResult{SessionID: sessionID, Principal: principal}, nil
}

// Resolve rehydrates the account behind sessionID from storage. Sessions
// pointing at deleted or deactivated accounts are destroyed.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*domain.Account, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthorized
	}

	accountID, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) || errors.Is(err, domain.ErrInvalidID) {
			_ = s.sessions.Destroy(ctx, sessionID)
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if !account.IsActive {
		_ = s.sessions.Destroy(ctx, sessionID)
		return nil, domain.ErrUnauthorized
	}
	return account, nil
}

func (s *AuthService) Refresh(ctx context.Context, sessionID string) error {
	return s.sessions.Touch(ctx, sessionID, s.sessionTTL)
}

// Status joins account with its role profile. A missing profile is logged
// and reported as a nil Profile.
func (s *AuthService) Status(ctx context.Context, account *domain.Account) (*ports.Principal, error) {
	profile, err := s.profiles.FindByAccount(ctx, account.Role, account.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		s.logger.Warn().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("account has no profile")
		profile = nil
	}
	return &ports.Principal{Account: account, Profile: profile}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Destroy(ctx, sessionID)
}

func (s *AuthService) ChangePassword(ctx context.Context, accountID string, in ports.ChangePasswordInput) error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	if in.NewPassword != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Compare(ctx, account.PasswordHash, in.CurrentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrWrongPassword
	}

	hash, err := s.hasher.Hash(ctx, in.NewPassword)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePasswordHash(context.WithoutCancel(ctx), account.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("password changed")
	return nil
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrAccountInactive):
		return "inactive"
	default:
		return "error"
	}
}
