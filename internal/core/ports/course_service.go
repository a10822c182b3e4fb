package ports

import (
	"context"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

type CourseInput struct {
	Title        string `json:"title" validate:"required,min=3,max=200"`
	Description  string `json:"description" validate:"required,max=2000"`
	Category     string `json:"category" validate:"required,max=50"`
	AgeGroup     string `json:"ageGroup" validate:"required,oneof=3-5 6-9 10-12 13+"`
	Level        string `json:"level" validate:"required,oneof=basic intermediate advanced"`
	InstructorID string `json:"instructor"`
	Thumbnail    string `json:"thumbnail" validate:"omitempty,url"`
	IsPremium    bool   `json:"isPremium"`
	IsPublished  bool   `json:"isPublished"`
}

// CoursePage is one page of a course listing.
type CoursePage struct {
	Items []*domain.Course
	PageInfo
}

type CourseService interface {
	Create(ctx context.Context, actor *domain.Account, in CourseInput) (*domain.Course, error)
	// Get and List hide unpublished courses unless actor is a teacher or
	// admin. actor may be nil for anonymous callers.
	Get(ctx context.Context, actor *domain.Account, id string) (*domain.Course, error)
	List(ctx context.Context, actor *domain.Account, filter ListCoursesFilter) (*CoursePage, error)
	// ListByCategory lists published courses whose category contains
	// category, ignoring case, whoever asks.
	ListByCategory(ctx context.Context, category string, filter ListCoursesFilter) (*CoursePage, error)
	Update(ctx context.Context, actor *domain.Account, id string, in CourseInput) (*domain.Course, error)
	Delete(ctx context.Context, actor *domain.Account, id string) error
}
