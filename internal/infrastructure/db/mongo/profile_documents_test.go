package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

func TestToDocument_KidRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	account := primitive.NewObjectID()
	parent := primitive.NewObjectID()

	kid := domain.NewKidProfile(account.Hex(), "Sam", now.AddDate(-7, 0, 0), domain.GenderMale, now)
	kid.ParentID = parent.Hex()

	raw, id, err := toDocument(kid)
	if err != nil {
		t.Fatalf("toDocument returned error: %v", err)
	}
	doc, ok := raw.(*mongoKid)
	if !ok {
		t.Fatalf("expected *mongoKid, got %T", raw)
	}
	if doc.ID != id || doc.AccountID != account || doc.ParentID != parent {
		t.Fatalf("ids not carried over: %+v", doc)
	}

	back := doc.toDomain()
	if back.Avatar != domain.DefaultKidAvatar || back.Points != 0 || back.Level != 0 {
		t.Fatalf("defaults lost: %+v", back)
	}
	if back.UnlockedAvatars == nil || back.Achievements == nil {
		t.Fatalf("expected empty slices, got nil")
	}
	if back.ParentID != parent.Hex() {
		t.Fatalf("expected parent %s, got %s", parent.Hex(), back.ParentID)
	}
}

func TestToDocument_TeacherCourses(t *testing.T) {
	course := primitive.NewObjectID()
	teacher := &domain.TeacherProfile{
		AccountID:      primitive.NewObjectID().Hex(),
		FullName:       "Ms. Frizzle",
		CoursesCreated: []string{course.Hex()},
	}

	raw, _, err := toDocument(teacher)
	if err != nil {
		t.Fatalf("toDocument returned error: %v", err)
	}
	doc := raw.(*mongoTeacher)
	if len(doc.CoursesCreated) != 1 || doc.CoursesCreated[0] != course {
		t.Fatalf("unexpected courses: %v", doc.CoursesCreated)
	}
	if doc.Specializations == nil {
		t.Fatalf("expected specializations to default to empty slice")
	}
}

func TestToDocument_InvalidOwner(t *testing.T) {
	_, _, err := toDocument(&domain.AdminProfile{AccountID: "bogus", FullName: "Root"})
	if err != domain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
