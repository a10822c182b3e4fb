package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
	"github.com/dailymate/dailymate-api/internal/pkg/validate"
)

// KidService manages kid profiles. Admins reach every kid, parents only the
// kids linked to them, and kids only themselves.
type KidService struct {
	accounts ports.AccountRepository
	profiles ports.ProfileRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewKidService(accounts ports.AccountRepository, profiles ports.ProfileRepository, logger zerolog.Logger) *KidService {
	return &KidService{
		accounts: accounts,
		profiles: profiles,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *KidService) Get(ctx context.Context, actor *domain.Account, kidID string) (*domain.KidProfile, error) {
	kid, err := s.profiles.FindKid(ctx, kidID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, kid, true); err != nil {
		return nil, err
	}
	return kid, nil
}

func (s *KidService) Update(ctx context.Context, actor *domain.Account, kidID string, patch ports.KidUpdate) (*domain.KidProfile, error) {
	if err := validate.Struct(patch); err != nil {
		return nil, err
	}

	kid, err := s.profiles.FindKid(ctx, kidID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, kid, true); err != nil {
		return nil, err
	}

	applyKidUpdate(kid, patch)
	kid.UpdatedAt = s.now()
	if err := validate.Struct(kid); err != nil {
		return nil, err
	}

	if err := s.profiles.UpdateKid(ctx, kid); err != nil {
		return nil, err
	}
	s.logger.Info().Str("kid_id", kid.ID).Str("actor_id", actor.ID).Msg("kid updated")
	return kid, nil
}

// Delete removes the kid's profile and then its account. Kids cannot delete
// themselves.
func (s *KidService) Delete(ctx context.Context, actor *domain.Account, kidID string) error {
	kid, err := s.profiles.FindKid(ctx, kidID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actor, kid, false); err != nil {
		return err
	}

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultWriteTimeout)
	defer cancel()

	// Profile first: a failure here leaves both records and the call can be retried.
	if err := s.profiles.DeleteKid(wctx, kid.ID); err != nil {
		return err
	}
	if err := s.accounts.Delete(wctx, kid.AccountID); err != nil {
		s.logger.Error().Err(err).
			Str("kid_id", kid.ID).
			Str("account_id", kid.AccountID).
			Msg("kid profile deleted but account remains")
		return err
	}

	s.logger.Info().Str("kid_id", kid.ID).Str("account_id", kid.AccountID).Str("actor_id", actor.ID).Msg("kid deleted")
	return nil
}

func (s *KidService) ListByParent(ctx context.Context, actor *domain.Account, parentID string) (*ports.KidsOfParent, error) {
	parent, err := s.profiles.FindParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && !(actor.Role == domain.RoleParent && parent.AccountID == actor.ID) {
		return nil, domain.ErrForbidden
	}

	kids, err := s.profiles.ListKidsByParent(ctx, parent.ID)
	if err != nil {
		return nil, err
	}
	return &ports.KidsOfParent{Parent: parent, Kids: kids}, nil
}

func (s *KidService) authorize(ctx context.Context, actor *domain.Account, kid *domain.KidProfile, allowSelf bool) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleKid:
		if allowSelf && kid.AccountID == actor.ID {
			return nil
		}
	case domain.RoleParent:
		if kid.ParentID == "" {
			return domain.ErrForbidden
		}
		profile, err := s.profiles.FindByAccount(ctx, domain.RoleParent, actor.ID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return domain.ErrForbidden
			}
			return err
		}
		parent, ok := profile.(*domain.ParentProfile)
		if ok && parent.ID == kid.ParentID {
			return nil
		}
	}
	return domain.ErrForbidden
}

func applyKidUpdate(kid *domain.KidProfile, p ports.KidUpdate) {
	if p.FullName != nil {
		kid.FullName = strings.TrimSpace(*p.FullName)
	}
	if p.DateOfBirth != nil {
		kid.DateOfBirth = p.DateOfBirth.UTC()
	}
	if p.Gender != nil {
		kid.Gender = domain.Gender(*p.Gender)
	}
	if p.Avatar != nil {
		kid.Avatar = *p.Avatar
	}
	if p.UnlockedAvatars != nil {
		kid.UnlockedAvatars = p.UnlockedAvatars
	}
	if p.Points != nil {
		kid.Points = *p.Points
	}
	if p.Level != nil {
		kid.Level = *p.Level
	}
	if p.Streak != nil {
		kid.Streak = *p.Streak
	}
}
