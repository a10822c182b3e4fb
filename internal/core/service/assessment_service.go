package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
	"github.com/dailymate/dailymate-api/internal/pkg/validate"
)

type AssessmentService struct {
	assessments ports.AssessmentRepository
	lessons     ports.LessonRepository
	courses     ports.CourseRepository
	profiles    ports.ProfileRepository
	logger      zerolog.Logger
	now         func() time.Time
}

func NewAssessmentService(
	assessments ports.AssessmentRepository,
	lessons ports.LessonRepository,
	courses ports.CourseRepository,
	profiles ports.ProfileRepository,
	logger zerolog.Logger,
) *AssessmentService {
	return &AssessmentService{
		assessments: assessments,
		lessons:     lessons,
		courses:     courses,
		profiles:    profiles,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *AssessmentService) Create(ctx context.Context, actor *domain.Account, in ports.AssessmentInput) (*domain.Assessment, error) {
	questions, err := questionsFrom(in)
	if err != nil {
		return nil, err
	}
	lesson, err := s.lessons.FindByID(ctx, in.LessonID)
	if err != nil {
		return nil, err
	}
	if err := authorizeCourseID(ctx, s.courses, s.profiles, actor, lesson.CourseID); err != nil {
		return nil, err
	}

	now := s.now()
	assessment := &domain.Assessment{CreatedBy: actor.ID, CreatedAt: now}
	applyAssessmentInput(assessment, in, questions, now)

	created, err := s.assessments.Create(ctx, assessment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("test_id", created.ID).Str("lesson_id", created.LessonID).Str("actor_id", actor.ID).Msg("test created")
	return created, nil
}

func (s *AssessmentService) Get(ctx context.Context, actor *domain.Account, id string) (*domain.Assessment, error) {
	assessment, err := s.assessments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if canSeeDrafts(actor) {
		return assessment, nil
	}

	lesson, err := s.lessons.FindByID(ctx, assessment.LessonID)
	if err != nil {
		if errors.Is(err, domain.ErrLessonNotFound) {
			return nil, domain.ErrAssessmentNotFound
		}
		return nil, err
	}
	visible, err := lessonVisible(ctx, s.courses, lesson)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, domain.ErrAssessmentNotFound
	}
	return assessment, nil
}

func (s *AssessmentService) ListByLesson(ctx context.Context, actor *domain.Account, lessonID string, filter ports.ListAssessmentsFilter) (*ports.AssessmentPage, error) {
	lesson, err := s.lessons.FindByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if !canSeeDrafts(actor) {
		visible, err := lessonVisible(ctx, s.courses, lesson)
		if err != nil {
			return nil, err
		}
		if !visible {
			return nil, domain.ErrLessonNotFound
		}
	}

	filter.LessonIDs = []string{lesson.ID}
	page, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}
	page.Lesson = lesson
	return page, nil
}

// ListByCourse pages through the tests of every lesson of a course. Readers
// without draft access only see tests of published lessons.
func (s *AssessmentService) ListByCourse(ctx context.Context, actor *domain.Account, courseID string, filter ports.ListAssessmentsFilter) (*ports.AssessmentPage, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	drafts := canSeeDrafts(actor)
	if !course.IsPublished && !drafts {
		return nil, domain.ErrCourseNotFound
	}

	lessonIDs, err := s.lessons.IDsByCourse(ctx, course.ID, !drafts)
	if err != nil {
		return nil, err
	}
	filter.LessonIDs = lessonIDs
	page, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}
	page.Course = course
	return page, nil
}

func (s *AssessmentService) list(ctx context.Context, filter ports.ListAssessmentsFilter) (*ports.AssessmentPage, error) {
	filter.Page, filter.Limit = clampPage(filter.Page, filter.Limit)
	if len(filter.LessonIDs) == 0 {
		return &ports.AssessmentPage{
			Items:    []*domain.Assessment{},
			PageInfo: ports.NewPageInfo(0, filter.Page, filter.Limit),
		}, nil
	}

	items, total, err := s.assessments.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.AssessmentPage{
		Items:    items,
		PageInfo: ports.NewPageInfo(total, filter.Page, filter.Limit),
	}, nil
}

// Update replaces a test. Moving it to another lesson requires authority
// over the target lesson's course too.
func (s *AssessmentService) Update(ctx context.Context, actor *domain.Account, id string, in ports.AssessmentInput) (*domain.Assessment, error) {
	questions, err := questionsFrom(in)
	if err != nil {
		return nil, err
	}

	assessment, err := s.assessments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeLesson(ctx, actor, assessment.LessonID); err != nil {
		return nil, err
	}
	if in.LessonID != assessment.LessonID {
		target, err := s.lessons.FindByID(ctx, in.LessonID)
		if err != nil {
			return nil, err
		}
		if err := authorizeCourseID(ctx, s.courses, s.profiles, actor, target.CourseID); err != nil {
			return nil, err
		}
	}

	applyAssessmentInput(assessment, in, questions, s.now())
	if err := s.assessments.Update(ctx, assessment); err != nil {
		return nil, err
	}

	s.logger.Info().Str("test_id", assessment.ID).Str("actor_id", actor.ID).Msg("test updated")
	return assessment, nil
}

func (s *AssessmentService) Delete(ctx context.Context, actor *domain.Account, id string) error {
	assessment, err := s.assessments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeLesson(ctx, actor, assessment.LessonID); err != nil {
		return err
	}
	if err := s.assessments.Delete(ctx, assessment.ID); err != nil {
		return err
	}

	s.logger.Info().Str("test_id", assessment.ID).Str("actor_id", actor.ID).Msg("test deleted")
	return nil
}

// authorizeLesson checks authority over the course behind lessonID. Admins
// pass even when the lesson is gone.
func (s *AssessmentService) authorizeLesson(ctx context.Context, actor *domain.Account, lessonID string) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	lesson, err := s.lessons.FindByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, domain.ErrLessonNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	return authorizeCourseID(ctx, s.courses, s.profiles, actor, lesson.CourseID)
}

// questionsFrom validates in and converts its questions, defaulting points
// and checking each answer against its question type.
func questionsFrom(in ports.AssessmentInput) ([]domain.Question, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(in.Questions))
	for i, q := range in.Questions {
		question := domain.Question{
			Text:          q.Text,
			Type:          domain.QuestionType(q.Type),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
		}
		if question.Points == 0 {
			question.Points = domain.DefaultQuestionPoints
		}
		if msg := checkAnswer(question); msg != "" {
			return nil, domain.NewValidationError(
				fmt.Sprintf("questions[%d]", i),
				fmt.Sprintf("question %d: %s", i+1, msg),
			)
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func checkAnswer(q domain.Question) string {
	switch q.Type {
	case domain.QuestionMultipleChoice:
		if len(q.Options) < 2 {
			return "multiple-choice questions need at least 2 options"
		}
		answer, ok := q.CorrectAnswer.(string)
		if !ok || !slices.Contains(q.Options, answer) {
			return "correctAnswer must be one of the options"
		}
	case domain.QuestionTrueFalse:
		if _, ok := q.CorrectAnswer.(bool); !ok {
			return "correctAnswer must be true or false"
		}
	case domain.QuestionOpenEnded:
		if q.CorrectAnswer == nil {
			return ""
		}
		if _, ok := q.CorrectAnswer.(string); !ok {
			return "correctAnswer must be text"
		}
	}
	return ""
}

func applyAssessmentInput(a *domain.Assessment, in ports.AssessmentInput, questions []domain.Question, now time.Time) {
	a.LessonID = in.LessonID
	a.Title = in.Title
	a.Description = in.Description
	a.Questions = questions
	a.TotalPoints = domain.SumPoints(questions)
	a.UpdatedAt = now
}
