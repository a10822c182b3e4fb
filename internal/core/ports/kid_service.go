package ports

import (
	"context"
	"time"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// KidUpdate is a partial update; nil fields are left untouched. The owning
// account can never be changed.
type KidUpdate struct {
	FullName        *string        `json:"fullName" validate:"omitempty,min=2,max=100"`
	DateOfBirth     *time.Time     `json:"dateOfBirth" validate:"omitempty,notfuture"`
	Gender          *string        `json:"gender" validate:"omitempty,oneof=male female"`
	Avatar          *string        `json:"avatar" validate:"omitempty,min=1"`
	UnlockedAvatars []string       `json:"unlockedAvatars"`
	Points          *int           `json:"points" validate:"omitempty,min=0"`
	Level           *int           `json:"level" validate:"omitempty,min=0"`
	Streak          *domain.Streak `json:"streak"`
}

type KidsOfParent struct {
	Parent *domain.ParentProfile
	Kids   []*domain.KidProfile
}

// KidService manages kid profiles on behalf of an authenticated actor.
type KidService interface {
	Get(ctx context.Context, actor *domain.Account, kidID string) (*domain.KidProfile, error)
	Update(ctx context.Context, actor *domain.Account, kidID string, patch KidUpdate) (*domain.KidProfile, error)
	Delete(ctx context.Context, actor *domain.Account, kidID string) error
	ListByParent(ctx context.Context, actor *domain.Account, parentID string) (*KidsOfParent, error)
}
