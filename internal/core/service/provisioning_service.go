package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/api/metrics"
	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
	"github.com/dailymate/dailymate-api/internal/pkg/validate"
)

const defaultWriteTimeout = 15 * time.Second

// ProvisioningService creates an account together with its role profile.
// Once the account is written, a profile failure deletes the account again,
// so callers never observe an account without a profile.
type ProvisioningService struct {
	accounts ports.AccountRepository
	profiles ports.ProfileRepository
	hasher   ports.PasswordHasher
	tx       ports.Transactor
	logger   zerolog.Logger
	now      func() time.Time
}

func NewProvisioningService(
	accounts ports.AccountRepository,
	profiles ports.ProfileRepository,
	hasher ports.PasswordHasher,
	tx ports.Transactor,
	logger zerolog.Logger,
) *ProvisioningService {
	if tx == nil {
		tx = directTx{}
	}
	return &ProvisioningService{
		accounts: accounts,
		profiles: profiles,
		hasher:   hasher,
		tx:       tx,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *ProvisioningService) ProvisionParent(ctx context.Context, in ports.ParentInput) (*ports.ProvisionResult, error) {
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return s.provision(ctx, domain.RoleParent, in.AccountInput, func(accountID string, now time.Time) domain.Profile {
		return &domain.ParentProfile{
			AccountID:        accountID,
			FullName:         strings.TrimSpace(in.FullName),
			DateOfBirth:      in.DateOfBirth,
			Gender:           domain.Gender(in.Gender),
			Image:            in.Image,
			Address:          strings.TrimSpace(in.Address),
			PhoneNumber:      in.PhoneNumber,
			SubscriptionType: domain.SubscriptionFree,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	})
}

func (s *ProvisioningService) ProvisionKid(ctx context.Context, in ports.KidInput) (*ports.ProvisionResult, error) {
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if in.ParentID != "" {
		if _, err := s.profiles.FindParent(ctx, in.ParentID); err != nil {
			return nil, err
		}
	}
	return s.provision(ctx, domain.RoleKid, in.AccountInput, func(accountID string, now time.Time) domain.Profile {
		kid := domain.NewKidProfile(accountID, strings.TrimSpace(in.FullName), in.DateOfBirth, domain.Gender(in.Gender), now)
		kid.ParentID = in.ParentID
		return kid
	})
}

func (s *ProvisioningService) ProvisionTeacher(ctx context.Context, in ports.TeacherInput) (*ports.ProvisionResult, error) {
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return s.provision(ctx, domain.RoleTeacher, in.AccountInput, func(accountID string, now time.Time) domain.Profile {
		specs := make([]string, 0, len(in.Specializations))
		for _, sp := range in.Specializations {
			specs = append(specs, strings.TrimSpace(sp))
		}
		return &domain.TeacherProfile{
			AccountID:       accountID,
			FullName:        strings.TrimSpace(in.FullName),
			PhoneNumber:     in.PhoneNumber,
			Specializations: specs,
			Bio:             in.Bio,
			CoursesCreated:  []string{},
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	})
}

func (s *ProvisioningService) ProvisionAdmin(ctx context.Context, in ports.AdminInput) (*ports.ProvisionResult, error) {
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return s.provision(ctx, domain.RoleAdmin, in.AccountInput, func(accountID string, now time.Time) domain.Profile {
		return &domain.AdminProfile{
			AccountID:   accountID,
			FullName:    strings.TrimSpace(in.FullName),
			PhoneNumber: in.PhoneNumber,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
}

// provision runs the shared steps after payload validation: uniqueness
// check, hashing, account insert, profile build and validation, profile
// insert, with compensation on any failure past the account insert.
func (s *ProvisioningService) provision(
	ctx context.Context,
	role domain.Role,
	creds ports.AccountInput,
	build func(accountID string, now time.Time) domain.Profile,
) (*ports.ProvisionResult, error) {
	email := domain.NormalizeEmail(creds.Email)

	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := s.hasher.Hash(ctx, creds.Password)
	if err != nil {
		return nil, err
	}

	// From here on a client disconnect must not interrupt the writes.
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultWriteTimeout)
	defer cancel()

	var result *ports.ProvisionResult
	err = s.tx.WithinTransaction(wctx, func(txCtx context.Context) error {
		now := s.now()
		account, err := s.accounts.Create(txCtx, domain.NewAccount(email, hash, role, now))
		if err != nil {
			return err
		}

		profile := build(account.ID, now)
		if err := validate.Struct(profile); err != nil {
			s.compensate(txCtx, account, "profile_invalid")
			return err
		}

		saved, err := s.profiles.Insert(txCtx, profile)
		if err != nil {
			s.compensate(txCtx, account, "profile_insert_failed")
			return fmt.Errorf("insert %s profile: %w", role, err)
		}

		result = &ports.ProvisionResult{Account: account, Profile: saved}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.AccountsProvisionedTotal.WithLabelValues(string(role)).Inc()
	s.logger.Info().Str("account_id", result.Account.ID).Str("role", string(role)).Msg("account provisioned")
	return result, nil
}

func (s *ProvisioningService) compensate(ctx context.Context, account *domain.Account, reason string) {
	metrics.ProvisioningRollbacksTotal.WithLabelValues(string(account.Role), reason).Inc()
	if err := s.accounts.Delete(ctx, account.ID); err != nil {
		s.logger.Error().Err(err).
			Str("account_id", account.ID).
			Str("reason", reason).
			Msg("failed to roll back account")
		return
	}
	s.logger.Warn().Str("account_id", account.ID).Str("reason", reason).Msg("account rolled back")
}

type directTx struct{}

func (directTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
