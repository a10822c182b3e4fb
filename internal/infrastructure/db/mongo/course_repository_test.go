package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

func TestBuildCourseFilter_Empty(t *testing.T) {
	q, err := buildCourseFilter(ports.ListCoursesFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q) != 0 {
		t.Fatalf("expected empty filter, got %v", q)
	}
}

func TestBuildCourseFilter_AllFields(t *testing.T) {
	premium, published := true, false
	instructor := primitive.NewObjectID()

	q, err := buildCourseFilter(ports.ListCoursesFilter{
		Category:     "math+",
		AgeGroup:     "6-9",
		InstructorID: instructor.Hex(),
		IsPremium:    &premium,
		IsPublished:  &published,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	re, ok := q["category"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex category filter, got %T", q["category"])
	}
	if re.Pattern != `math\+` || re.Options != "i" {
		t.Fatalf("expected escaped case-insensitive pattern, got %+v", re)
	}
	if q["age_group"] != "6-9" {
		t.Fatalf("unexpected age_group: %v", q["age_group"])
	}
	if q["instructor_id"] != instructor {
		t.Fatalf("unexpected instructor_id: %v", q["instructor_id"])
	}
	if q["is_premium"] != true || q["is_published"] != false {
		t.Fatalf("unexpected flags: %v %v", q["is_premium"], q["is_published"])
	}
}

func TestBuildCourseFilter_InvalidInstructor(t *testing.T) {
	_, err := buildCourseFilter(ports.ListCoursesFilter{InstructorID: "nope"})
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestCourseSort(t *testing.T) {
	got := courseSort(ports.ListCoursesFilter{SortBy: "title", SortDesc: true})
	want := bson.D{{Key: "title", Value: -1}, {Key: "_id", Value: -1}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = courseSort(ports.ListCoursesFilter{SortBy: "password_hash"})
	if got[0].Key != "created_at" || got[0].Value != 1 {
		t.Fatalf("expected default created_at ascending, got %v", got)
	}
}

func TestObjectID_Invalid(t *testing.T) {
	if _, err := objectID("123"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if oid, err := optionalObjectID(""); err != nil || !oid.IsZero() {
		t.Fatalf("expected zero id for empty input, got %v %v", oid, err)
	}
}
