package ports

import (
	"context"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// ListCoursesFilter carries the query parameters for listing courses.
type ListCoursesFilter struct {
	Category     string // optional: case-insensitive partial match
	AgeGroup     string // optional
	InstructorID string // optional
	IsPremium    *bool  // optional
	IsPublished  *bool  // optional
	SortBy       string // createdAt (default), title, ageGroup, level
	SortDesc     bool
	Page         int // 1-based
	Limit        int // capped at 100 by the service
}

type CourseRepository interface {
	Create(ctx context.Context, c *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id string) error
	// List returns a page of courses matching filter and the total count.
	List(ctx context.Context, filter ListCoursesFilter) ([]*domain.Course, int64, error)
}
