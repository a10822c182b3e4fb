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

type CourseService struct {
	courses  ports.CourseRepository
	profiles ports.ProfileRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewCourseService(courses ports.CourseRepository, profiles ports.ProfileRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courses:  courses,
		profiles: profiles,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a course. A teacher always becomes the instructor of the
// courses they create; admins may name any teacher or none.
func (s *CourseService) Create(ctx context.Context, actor *domain.Account, in ports.CourseInput) (*domain.Course, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	instructor, err := s.instructorFor(ctx, actor, in.InstructorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	course := &domain.Course{
		InstructorID: instructor,
		CreatedAt:    now,
	}
	applyCourseInput(course, in, now)

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		return nil, err
	}
	if created.InstructorID != "" {
		if err := s.profiles.AddTeacherCourse(ctx, created.InstructorID, created.ID); err != nil {
			// An unknown instructor invalidates the course itself.
			if errors.Is(err, domain.ErrTeacherNotFound) || errors.Is(err, domain.ErrInvalidID) {
				if delErr := s.courses.Delete(context.WithoutCancel(ctx), created.ID); delErr != nil {
					s.logger.Error().Err(delErr).Str("course_id", created.ID).Msg("failed to discard course")
				}
				return nil, err
			}
			s.logger.Error().Err(err).Str("course_id", created.ID).Msg("failed to link course to instructor")
		}
	}

	s.logger.Info().Str("course_id", created.ID).Str("actor_id", actor.ID).Msg("course created")
	return created, nil
}

func (s *CourseService) Get(ctx context.Context, actor *domain.Account, id string) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished && !canSeeDrafts(actor) {
		return nil, domain.ErrCourseNotFound
	}
	return course, nil
}

// List pages through courses. Page defaults to 1 and limit to 10 (max 100).
func (s *CourseService) List(ctx context.Context, actor *domain.Account, filter ports.ListCoursesFilter) (*ports.CoursePage, error) {
	if !canSeeDrafts(actor) {
		published := true
		filter.IsPublished = &published
	}
	return s.list(ctx, filter)
}

func (s *CourseService) ListByCategory(ctx context.Context, category string, filter ports.ListCoursesFilter) (*ports.CoursePage, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, domain.NewValidationError("category", "category is required")
	}
	published := true
	filter.Category = category
	filter.IsPublished = &published
	return s.list(ctx, filter)
}

func (s *CourseService) list(ctx context.Context, filter ports.ListCoursesFilter) (*ports.CoursePage, error) {
	filter.Page, filter.Limit = clampPage(filter.Page, filter.Limit)

	items, total, err := s.courses.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.CoursePage{
		Items:    items,
		PageInfo: ports.NewPageInfo(total, filter.Page, filter.Limit),
	}, nil
}

func (s *CourseService) Update(ctx context.Context, actor *domain.Account, id string, in ports.CourseInput) (*domain.Course, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeCourse(ctx, s.profiles, actor, course); err != nil {
		return nil, err
	}

	previous := course.InstructorID
	if actor.Role == domain.RoleAdmin && in.InstructorID != "" {
		instructor, err := s.instructorFor(ctx, actor, in.InstructorID)
		if err != nil {
			return nil, err
		}
		course.InstructorID = instructor
	}
	applyCourseInput(course, in, s.now())

	reassigned := course.InstructorID != previous
	if reassigned {
		if err := s.profiles.AddTeacherCourse(ctx, course.InstructorID, course.ID); err != nil {
			return nil, err
		}
	}
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	if reassigned {
		s.relink(ctx, course.ID, previous, "")
	}

	s.logger.Info().Str("course_id", course.ID).Str("actor_id", actor.ID).Msg("course updated")
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, actor *domain.Account, id string) error {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeCourse(ctx, s.profiles, actor, course); err != nil {
		return err
	}

	if err := s.courses.Delete(ctx, course.ID); err != nil {
		return err
	}
	if course.InstructorID != "" {
		s.relink(ctx, course.ID, course.InstructorID, "")
	}

	s.logger.Info().Str("course_id", course.ID).Str("actor_id", actor.ID).Msg("course deleted")
	return nil
}

func (s *CourseService) instructorFor(ctx context.Context, actor *domain.Account, requested string) (string, error) {
	switch actor.Role {
	case domain.RoleTeacher:
		teacher, err := teacherOf(ctx, s.profiles, actor)
		if err != nil {
			return "", err
		}
		return teacher.ID, nil
	case domain.RoleAdmin:
		return requested, nil
	}
	return "", domain.ErrForbidden
}

func (s *CourseService) relink(ctx context.Context, courseID, from, to string) {
	if from != "" {
		if err := s.profiles.RemoveTeacherCourse(ctx, from, courseID); err != nil {
			s.logger.Warn().Err(err).Str("course_id", courseID).Str("teacher_id", from).Msg("failed to unlink course")
		}
	}
	if to != "" {
		if err := s.profiles.AddTeacherCourse(ctx, to, courseID); err != nil {
			s.logger.Warn().Err(err).Str("course_id", courseID).Str("teacher_id", to).Msg("failed to link course")
		}
	}
}

func applyCourseInput(c *domain.Course, in ports.CourseInput, now time.Time) {
	c.Title = in.Title
	c.Description = in.Description
	c.Category = in.Category
	c.AgeGroup = domain.AgeGroup(in.AgeGroup)
	c.Level = domain.CourseLevel(in.Level)
	c.Thumbnail = in.Thumbnail
	c.IsPremium = in.IsPremium
	c.IsPublished = in.IsPublished
	c.UpdatedAt = now
}
