package service

import (
	"context"
	"errors"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// clampPage defaults page to 1 and limit to 10, capping limit at 100.
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func canSeeDrafts(actor *domain.Account) bool {
	return actor != nil && (actor.Role == domain.RoleAdmin || actor.Role == domain.RoleTeacher)
}

// authorizeCourse lets admins manage every course and teachers only their own.
func authorizeCourse(ctx context.Context, profiles ports.ProfileRepository, actor *domain.Account, course *domain.Course) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleTeacher:
		teacher, err := teacherOf(ctx, profiles, actor)
		if err != nil {
			return err
		}
		if teacher.ID == course.InstructorID {
			return nil
		}
	}
	return domain.ErrForbidden
}

// authorizeCourseID is authorizeCourse for content hanging off courseID.
// Admins keep access after the course itself is gone.
func authorizeCourseID(ctx context.Context, courses ports.CourseRepository, profiles ports.ProfileRepository, actor *domain.Account, courseID string) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	course, err := courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	return authorizeCourse(ctx, profiles, actor, course)
}

func teacherOf(ctx context.Context, profiles ports.ProfileRepository, actor *domain.Account) (*domain.TeacherProfile, error) {
	profile, err := profiles.FindByAccount(ctx, domain.RoleTeacher, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	teacher, ok := profile.(*domain.TeacherProfile)
	if !ok {
		return nil, domain.ErrForbidden
	}
	return teacher, nil
}

// lessonVisible reports whether readers without draft access may see lesson:
// both it and its course must be published.
func lessonVisible(ctx context.Context, courses ports.CourseRepository, lesson *domain.Lesson) (bool, error) {
	if !lesson.IsPublished {
		return false, nil
	}
	course, err := courses.FindByID(ctx, lesson.CourseID)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return false, nil
		}
		return false, err
	}
	return course.IsPublished, nil
}
