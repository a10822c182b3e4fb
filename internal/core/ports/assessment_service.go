package ports

import (
	"context"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

type QuestionInput struct {
	Text    string   `json:"questionText" validate:"required,max=1000"`
	Type    string   `json:"questionType" validate:"required,oneof=multiple-choice true-false open-ended"`
	Options []string `json:"options" validate:"max=10,dive,required,max=200"`
	// CorrectAnswer is checked against Type by the service.
	CorrectAnswer any `json:"correctAnswer"`
	Points        int `json:"points" validate:"min=0,max=1000"`
}

type AssessmentInput struct {
	LessonID    string          `json:"lessonId" validate:"required"`
	Title       string          `json:"title" validate:"required,min=3,max=200"`
	Description string          `json:"description" validate:"required,max=2000"`
	Questions   []QuestionInput `json:"questions" validate:"required,min=1,max=100,dive"`
}

type ListAssessmentsFilter struct {
	LessonIDs []string
	SortBy    string // createdAt (default), title, totalPoints
	SortDesc  bool
	Page      int
	Limit     int
}

// AssessmentPage is one page of tests. Lesson or Course names the parent
// the listing was scoped to.
type AssessmentPage struct {
	Lesson *domain.Lesson
	Course *domain.Course
	Items  []*domain.Assessment
	PageInfo
}

type AssessmentRepository interface {
	Create(ctx context.Context, a *domain.Assessment) (*domain.Assessment, error)
	FindByID(ctx context.Context, id string) (*domain.Assessment, error)
	Update(ctx context.Context, a *domain.Assessment) error
	Delete(ctx context.Context, id string) error
	DeleteByLesson(ctx context.Context, lessonID string) (int64, error)
	List(ctx context.Context, filter ListAssessmentsFilter) ([]*domain.Assessment, int64, error)
}

// AssessmentService manages the tests of lessons. Authoring follows the
// ownership of the lesson's course; reading follows the lesson's visibility.
type AssessmentService interface {
	Create(ctx context.Context, actor *domain.Account, in AssessmentInput) (*domain.Assessment, error)
	Get(ctx context.Context, actor *domain.Account, id string) (*domain.Assessment, error)
	ListByLesson(ctx context.Context, actor *domain.Account, lessonID string, filter ListAssessmentsFilter) (*AssessmentPage, error)
	ListByCourse(ctx context.Context, actor *domain.Account, courseID string, filter ListAssessmentsFilter) (*AssessmentPage, error)
	Update(ctx context.Context, actor *domain.Account, id string, in AssessmentInput) (*domain.Assessment, error)
	Delete(ctx context.Context, actor *domain.Account, id string) error
}
