package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

func TestBuildAssessmentFilter(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	q, err := buildAssessmentFilter(ports.ListAssessmentsFilter{LessonIDs: []string{a.Hex()}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q["lesson_id"] != a {
		t.Fatalf("expected single lesson match, got %v", q)
	}

	q, err = buildAssessmentFilter(ports.ListAssessmentsFilter{LessonIDs: []string{a.Hex(), b.Hex()}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in, _ := q["lesson_id"].(bson.M)
	ids, _ := in["$in"].([]primitive.ObjectID)
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Fatalf("expected $in over both lessons, got %v", q)
	}

	if _, err := buildAssessmentFilter(ports.ListAssessmentsFilter{LessonIDs: []string{"x"}}); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestAssessmentSort(t *testing.T) {
	got := assessmentSort(ports.ListAssessmentsFilter{SortDesc: true})
	if got[0].Key != "created_at" || got[0].Value != -1 {
		t.Fatalf("expected created_at descending, got %v", got)
	}
	got = assessmentSort(ports.ListAssessmentsFilter{SortBy: "totalPoints"})
	if got[0].Key != "total_points" || got[0].Value != 1 {
		t.Fatalf("expected total_points ascending, got %v", got)
	}
}

func TestAssessmentDocument_KeepsAnswers(t *testing.T) {
	in := &domain.Assessment{
		LessonID: primitive.NewObjectID().Hex(),
		Title:    "Apples quiz",
		Questions: []domain.Question{
			{Text: "2+2?", Type: domain.QuestionMultipleChoice, Options: []string{"3", "4"}, CorrectAnswer: "4", Points: 5},
			{Text: "Apples are red", Type: domain.QuestionTrueFalse, CorrectAnswer: false, Points: 10},
		},
		TotalPoints: 15,
	}

	doc, err := assessmentDocument(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc.ID = primitive.NewObjectID()
	out := doc.toDomain()

	if out.LessonID != in.LessonID || out.TotalPoints != 15 || len(out.Questions) != 2 {
		t.Fatalf("unexpected test: %+v", out)
	}
	if out.Questions[0].CorrectAnswer != "4" || out.Questions[1].CorrectAnswer != false {
		t.Fatalf("answers not kept: %+v", out.Questions)
	}
	if out.CreatedBy != "" {
		t.Fatalf("expected empty author, got %q", out.CreatedBy)
	}
}
