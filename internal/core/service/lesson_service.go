package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
	"github.com/dailymate/dailymate-api/internal/pkg/validate"
)

type LessonService struct {
	lessons     ports.LessonRepository
	assessments ports.AssessmentRepository
	courses     ports.CourseRepository
	profiles    ports.ProfileRepository
	logger      zerolog.Logger
	now         func() time.Time
}

func NewLessonService(
	lessons ports.LessonRepository,
	assessments ports.AssessmentRepository,
	courses ports.CourseRepository,
	profiles ports.ProfileRepository,
	logger zerolog.Logger,
) *LessonService {
	return &LessonService{
		lessons:     lessons,
		assessments: assessments,
		courses:     courses,
		profiles:    profiles,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *LessonService) Create(ctx context.Context, actor *domain.Account, in ports.LessonInput) (*domain.Lesson, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if err := s.authorizeTarget(ctx, actor, in.CourseID); err != nil {
		return nil, err
	}

	now := s.now()
	lesson := &domain.Lesson{CreatedBy: actor.ID, CreatedAt: now}
	applyLessonInput(lesson, in, now)

	created, err := s.lessons.Create(ctx, lesson)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lesson_id", created.ID).Str("course_id", created.CourseID).Str("actor_id", actor.ID).Msg("lesson created")
	return created, nil
}

func (s *LessonService) Get(ctx context.Context, actor *domain.Account, id string) (*domain.Lesson, error) {
	lesson, err := s.lessons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if canSeeDrafts(actor) {
		return lesson, nil
	}
	visible, err := lessonVisible(ctx, s.courses, lesson)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, domain.ErrLessonNotFound
	}
	return lesson, nil
}

// ListByCourse pages through a course's lessons, by order unless the filter
// says otherwise.
func (s *LessonService) ListByCourse(ctx context.Context, actor *domain.Account, courseID string, filter ports.ListLessonsFilter) (*ports.LessonPage, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !canSeeDrafts(actor) {
		if !course.IsPublished {
			return nil, domain.ErrCourseNotFound
		}
		published := true
		filter.IsPublished = &published
	}
	filter.CourseID = course.ID
	filter.Page, filter.Limit = clampPage(filter.Page, filter.Limit)

	items, total, err := s.lessons.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.LessonPage{
		Course:   course,
		Items:    items,
		PageInfo: ports.NewPageInfo(total, filter.Page, filter.Limit),
	}, nil
}

// Update replaces a lesson. Moving it to another course requires authority
// over both courses.
func (s *LessonService) Update(ctx context.Context, actor *domain.Account, id string, in ports.LessonInput) (*domain.Lesson, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	lesson, err := s.lessons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeCourseID(ctx, s.courses, s.profiles, actor, lesson.CourseID); err != nil {
		return nil, err
	}
	if in.CourseID != lesson.CourseID {
		if err := s.authorizeTarget(ctx, actor, in.CourseID); err != nil {
			return nil, err
		}
	}

	applyLessonInput(lesson, in, s.now())
	if err := s.lessons.Update(ctx, lesson); err != nil {
		return nil, err
	}

	s.logger.Info().Str("lesson_id", lesson.ID).Str("actor_id", actor.ID).Msg("lesson updated")
	return lesson, nil
}

func (s *LessonService) Delete(ctx context.Context, actor *domain.Account, id string) error {
	lesson, err := s.lessons.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeCourseID(ctx, s.courses, s.profiles, actor, lesson.CourseID); err != nil {
		return err
	}

	// Tests first: a failure after this point leaves a lesson without tests,
	// never tests without a lesson.
	removed, err := s.assessments.DeleteByLesson(ctx, lesson.ID)
	if err != nil {
		return err
	}
	if err := s.lessons.Delete(ctx, lesson.ID); err != nil {
		return err
	}

	s.logger.Info().Str("lesson_id", lesson.ID).Int64("tests_removed", removed).Str("actor_id", actor.ID).Msg("lesson deleted")
	return nil
}

// authorizeTarget checks the course a lesson is written into. Unlike
// authorizeCourseID it requires the course to exist.
func (s *LessonService) authorizeTarget(ctx context.Context, actor *domain.Account, courseID string) error {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return err
	}
	return authorizeCourse(ctx, s.profiles, actor, course)
}

func applyLessonInput(l *domain.Lesson, in ports.LessonInput, now time.Time) {
	l.CourseID = in.CourseID
	l.Title = in.Title
	l.Description = in.Description
	l.Content = in.Content
	l.VideoURL = in.VideoURL
	l.Category = in.Category
	l.Level = domain.CourseLevel(in.Level)
	l.AgeGroup = domain.AgeGroup(in.AgeGroup)
	l.Order = in.Order
	l.IsPublished = in.IsPublished
	l.UpdatedAt = now
}
