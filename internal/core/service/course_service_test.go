package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

type courseFixture struct {
	svc      *CourseService
	courses  *stubCourseRepo
	profiles *stubProfileRepo
	teacher  *ports.ProvisionResult
	other    *ports.ProvisionResult
	admin    *ports.ProvisionResult
	kid      *ports.ProvisionResult
}

func newCourseFixture(t *testing.T) *courseFixture {
	t.Helper()
	accounts := newStubAccountRepo()
	f := &courseFixture{courses: newStubCourseRepo(), profiles: newStubProfileRepo()}
	prov := NewProvisioningService(accounts, f.profiles, newTestHasher(t), nil, zerolog.Nop())

	teacher := func(email string) *ports.ProvisionResult {
		return mustProvision(t, prov.ProvisionTeacher, ports.TeacherInput{
			AccountInput: ports.AccountInput{Email: email, Password: "secret123"},
			FullName:     "Teacher " + email[:1],
		})
	}
	f.teacher = teacher("t@example.com")
	f.other = teacher("o@example.com")
	f.admin = mustProvision(t, prov.ProvisionAdmin, ports.AdminInput{
		AccountInput: ports.AccountInput{Email: "admin@example.com", Password: "secret123"},
		FullName:     "Root Admin",
	})
	f.kid = mustProvision(t, prov.ProvisionKid, kidInput("kid@example.com"))

	f.svc = NewCourseService(f.courses, f.profiles, zerolog.Nop())
	return f
}

func courseInput(published bool) ports.CourseInput {
	return ports.CourseInput{
		Title:       "Counting to Ten",
		Description: "Numbers for beginners",
		Category:    "Math",
		AgeGroup:    "3-5",
		Level:       "basic",
		IsPublished: published,
	}
}

func TestCourseService_TeacherCreateLinksInstructor(t *testing.T) {
	f := newCourseFixture(t)
	teacherProfile := f.teacher.Profile.(*domain.TeacherProfile)

	course, err := f.svc.Create(context.Background(), f.teacher.Account, courseInput(true))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if course.InstructorID != teacherProfile.ID {
		t.Fatalf("expected instructor %s, got %s", teacherProfile.ID, course.InstructorID)
	}

	stored, _ := f.profiles.FindByAccount(context.Background(), domain.RoleTeacher, f.teacher.Account.ID)
	if created := stored.(*domain.TeacherProfile).CoursesCreated; len(created) != 1 || created[0] != course.ID {
		t.Fatalf("expected course in coursesCreated, got %v", created)
	}
}

func TestCourseService_CreateRejections(t *testing.T) {
	f := newCourseFixture(t)

	if _, err := f.svc.Create(context.Background(), f.kid.Account, courseInput(true)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for kid, got %v", err)
	}

	bad := courseInput(true)
	bad.AgeGroup = "99"
	if _, err := f.svc.Create(context.Background(), f.teacher.Account, bad); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	orphan := courseInput(true)
	orphan.InstructorID = "teacher-404"
	if _, err := f.svc.Create(context.Background(), f.admin.Account, orphan); !errors.Is(err, domain.ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
	if len(f.courses.courses) != 0 {
		t.Fatalf("course with unknown instructor must not persist")
	}
}

func TestCourseService_VisibilityOfDrafts(t *testing.T) {
	f := newCourseFixture(t)
	draft, _ := f.svc.Create(context.Background(), f.teacher.Account, courseInput(false))

	if _, err := f.svc.Get(context.Background(), nil, draft.ID); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("anonymous callers must not see drafts, got %v", err)
	}
	if _, err := f.svc.Get(context.Background(), f.kid.Account, draft.ID); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("kids must not see drafts, got %v", err)
	}
	if _, err := f.svc.Get(context.Background(), f.admin.Account, draft.ID); err != nil {
		t.Fatalf("admin should see drafts, got %v", err)
	}

	page, err := f.svc.List(context.Background(), nil, ports.ListCoursesFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 0 {
		t.Fatalf("expected drafts to be filtered, got %d", page.Total)
	}
	if f.courses.lastq.IsPublished == nil || !*f.courses.lastq.IsPublished {
		t.Fatalf("expected published filter to be forced")
	}
}

func TestCourseService_ListPagination(t *testing.T) {
	f := newCourseFixture(t)
	for i := 0; i < 25; i++ {
		if _, err := f.svc.Create(context.Background(), f.teacher.Account, courseInput(true)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, err := f.svc.List(context.Background(), nil, ports.ListCoursesFilter{Page: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Limit != 10 || page.Page != 2 || page.Total != 25 || page.TotalPages != 3 {
		t.Fatalf("unexpected page meta: %+v", page)
	}
	if !page.HasNextPage || !page.HasPrevPage || len(page.Items) != 10 {
		t.Fatalf("unexpected navigation: %+v", page)
	}

	page, _ = f.svc.List(context.Background(), nil, ports.ListCoursesFilter{Page: 3, Limit: 1000})
	if page.Limit != 100 || page.Page != 3 || page.HasNextPage || len(page.Items) != 0 {
		t.Fatalf("expected capped limit and empty tail page, got %+v", page)
	}
}

func TestCourseService_UpdateAndDeleteOwnership(t *testing.T) {
	f := newCourseFixture(t)
	course, _ := f.svc.Create(context.Background(), f.teacher.Account, courseInput(true))

	in := courseInput(true)
	in.Title = "Counting to Twenty"
	if _, err := f.svc.Update(context.Background(), f.other.Account, course.ID, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign teacher, got %v", err)
	}

	updated, err := f.svc.Update(context.Background(), f.teacher.Account, course.ID, in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Counting to Twenty" || updated.InstructorID != course.InstructorID {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := f.svc.Delete(context.Background(), f.teacher.Account, course.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	stored, _ := f.profiles.FindByAccount(context.Background(), domain.RoleTeacher, f.teacher.Account.ID)
	if created := stored.(*domain.TeacherProfile).CoursesCreated; len(created) != 0 {
		t.Fatalf("expected course to be unlinked, got %v", created)
	}
	if _, err := f.svc.Get(context.Background(), f.admin.Account, course.ID); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseService_AdminReassignsInstructor(t *testing.T) {
	f := newCourseFixture(t)
	course, _ := f.svc.Create(context.Background(), f.teacher.Account, courseInput(true))
	otherID := f.other.Profile.(*domain.TeacherProfile).ID

	in := courseInput(true)
	in.InstructorID = otherID
	updated, err := f.svc.Update(context.Background(), f.admin.Account, course.ID, in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.InstructorID != otherID {
		t.Fatalf("expected instructor %s, got %s", otherID, updated.InstructorID)
	}

	first, _ := f.profiles.FindByAccount(context.Background(), domain.RoleTeacher, f.teacher.Account.ID)
	second, _ := f.profiles.FindByAccount(context.Background(), domain.RoleTeacher, f.other.Account.ID)
	if len(first.(*domain.TeacherProfile).CoursesCreated) != 0 {
		t.Fatalf("expected course removed from previous instructor")
	}
	if len(second.(*domain.TeacherProfile).CoursesCreated) != 1 {
		t.Fatalf("expected course added to new instructor")
	}
}

func TestCourseService_ListByCategoryForcesPublished(t *testing.T) {
	f := newCourseFixture(t)
	if _, err := f.svc.Create(context.Background(), f.teacher.Account, courseInput(true)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := f.svc.Create(context.Background(), f.teacher.Account, courseInput(false)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	page, err := f.svc.ListByCategory(context.Background(), " math ", ports.ListCoursesFilter{Limit: 500})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 1 || page.Limit != 100 {
		t.Fatalf("expected the published course only with capped limit, got %+v", page)
	}
	q := f.courses.lastq
	if q.Category != "math" || q.IsPublished == nil || !*q.IsPublished {
		t.Fatalf("unexpected filter: %+v", q)
	}

	if _, err := f.svc.ListByCategory(context.Background(), "  ", ports.ListCoursesFilter{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank category, got %v", err)
	}
}
