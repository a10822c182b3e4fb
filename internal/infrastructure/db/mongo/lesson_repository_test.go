package mongo

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

func TestBuildLessonFilter(t *testing.T) {
	course := primitive.NewObjectID()
	published := true

	q, err := buildLessonFilter(course.Hex(), &published)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q["course_id"] != course || q["is_published"] != true {
		t.Fatalf("unexpected filter: %v", q)
	}

	q, err = buildLessonFilter(course.Hex(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := q["is_published"]; ok {
		t.Fatalf("expected no published clause, got %v", q)
	}

	if _, err := buildLessonFilter("nope", nil); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestLessonSort_DefaultsToOrderAscending(t *testing.T) {
	got := lessonSort(ports.ListLessonsFilter{})
	want := bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = lessonSort(ports.ListLessonsFilter{SortBy: "createdAt", SortDesc: true})
	if got[0].Key != "created_at" || got[0].Value != -1 {
		t.Fatalf("expected created_at descending, got %v", got)
	}
}

func TestLessonDocument_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	in := &domain.Lesson{
		CourseID:    primitive.NewObjectID().Hex(),
		Title:       "Counting apples",
		Content:     "One, two, three",
		VideoURL:    "https://videos.example.com/apples",
		Level:       domain.LevelBasic,
		AgeGroup:    domain.AgeGroup3to5,
		Order:       2,
		IsPublished: true,
		CreatedBy:   primitive.NewObjectID().Hex(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	doc, err := lessonDocument(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc.ID = primitive.NewObjectID()
	out := doc.toDomain()

	if out.CourseID != in.CourseID || out.CreatedBy != in.CreatedBy || out.Order != 2 || out.VideoURL != in.VideoURL {
		t.Fatalf("unexpected lesson: %+v", out)
	}

	if _, err := lessonDocument(&domain.Lesson{CourseID: "bad"}); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID for bad course id, got %v", err)
	}
}

func TestLessonIndexes(t *testing.T) {
	indexes := lessonIndexes()
	if len(indexes) != 2 {
		t.Fatalf("expected 2 indexes, got %d", len(indexes))
	}
	keys, _ := indexes[0].Keys.(bson.D)
	if len(keys) != 2 || keys[0].Key != "course_id" || keys[1].Key != "order" {
		t.Fatalf("unexpected listing index: %v", keys)
	}
}
