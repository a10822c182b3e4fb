package ports

import (
	"context"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

type LessonInput struct {
	CourseID    string `json:"courseId" validate:"required"`
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,max=2000"`
	Content     string `json:"content" validate:"required"`
	VideoURL    string `json:"linkVideo" validate:"required,url"`
	Category    string `json:"category" validate:"required,max=50"`
	Level       string `json:"level" validate:"required,oneof=basic intermediate advanced"`
	AgeGroup    string `json:"ageGroup" validate:"required,oneof=3-5 6-9 10-12 13+"`
	Order       int    `json:"order" validate:"min=0"`
	IsPublished bool   `json:"isPublished"`
}

// ListLessonsFilter carries the query parameters for listing a course's
// lessons.
type ListLessonsFilter struct {
	CourseID    string
	IsPublished *bool  // optional
	SortBy      string // order (default), title, createdAt, updatedAt
	SortDesc    bool
	Page        int
	Limit       int
}

// LessonPage is one page of a course's lessons.
type LessonPage struct {
	Course *domain.Course
	Items  []*domain.Lesson
	PageInfo
}

type LessonRepository interface {
	Create(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error)
	FindByID(ctx context.Context, id string) (*domain.Lesson, error)
	Update(ctx context.Context, l *domain.Lesson) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListLessonsFilter) ([]*domain.Lesson, int64, error)
	// IDsByCourse returns the ids of every lesson of courseID, only the
	// published ones when publishedOnly is set.
	IDsByCourse(ctx context.Context, courseID string, publishedOnly bool) ([]string, error)
}

// LessonService manages lessons on behalf of the instructor of their course.
// Readers without draft access see only published lessons of published
// courses; actor may be nil for them.
type LessonService interface {
	Create(ctx context.Context, actor *domain.Account, in LessonInput) (*domain.Lesson, error)
	Get(ctx context.Context, actor *domain.Account, id string) (*domain.Lesson, error)
	ListByCourse(ctx context.Context, actor *domain.Account, courseID string, filter ListLessonsFilter) (*LessonPage, error)
	Update(ctx context.Context, actor *domain.Account, id string, in LessonInput) (*domain.Lesson, error)
	// Delete removes the lesson together with its tests.
	Delete(ctx context.Context, actor *domain.Account, id string) error
}
