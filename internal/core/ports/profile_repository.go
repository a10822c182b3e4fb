package ports

import (
	"context"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// ProfileRepository persists role profiles, one collection per role.
type ProfileRepository interface {
	// Insert stores p and returns it with its ID set.
	Insert(ctx context.Context, p domain.Profile) (domain.Profile, error)
	FindByAccount(ctx context.Context, role domain.Role, accountID string) (domain.Profile, error)
	// DeleteByAccount is idempotent.
	DeleteByAccount(ctx context.Context, role domain.Role, accountID string) error

	FindKid(ctx context.Context, id string) (*domain.KidProfile, error)
	UpdateKid(ctx context.Context, kid *domain.KidProfile) error
	DeleteKid(ctx context.Context, id string) error
	ListKidsByParent(ctx context.Context, parentID string) ([]*domain.KidProfile, error)

	FindParent(ctx context.Context, id string) (*domain.ParentProfile, error)

	AddTeacherCourse(ctx context.Context, teacherID, courseID string) error
	RemoveTeacherCourse(ctx context.Context, teacherID, courseID string) error
}
