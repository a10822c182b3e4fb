package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

const collectionAssessments = "tests"

var assessmentSortFields = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"title":       "title",
	"totalPoints": "total_points",
}

type AssessmentRepository struct {
	col *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{col: db.Collection(collectionAssessments)}
}

type mongoQuestion struct {
	Text          string   `bson:"question_text"`
	Type          string   `bson:"question_type"`
	Options       []string `bson:"options,omitempty"`
	CorrectAnswer any      `bson:"correct_answer"`
	Points        int      `bson:"points"`
}

type mongoAssessment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	LessonID    primitive.ObjectID `bson:"lesson_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Questions   []mongoQuestion    `bson:"questions"`
	TotalPoints int                `bson:"total_points"`
	CreatedBy   primitive.ObjectID `bson:"created_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (m *mongoAssessment) toDomain() *domain.Assessment {
	questions := make([]domain.Question, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, domain.Question{
			Text:          q.Text,
			Type:          domain.QuestionType(q.Type),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
		})
	}
	return &domain.Assessment{
		ID:          m.ID.Hex(),
		LessonID:    hexOrEmpty(m.LessonID),
		Title:       m.Title,
		Description: m.Description,
		Questions:   questions,
		TotalPoints: m.TotalPoints,
		CreatedBy:   hexOrEmpty(m.CreatedBy),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func assessmentDocument(a *domain.Assessment) (*mongoAssessment, error) {
	lesson, err := objectID(a.LessonID)
	if err != nil {
		return nil, err
	}
	author, err := optionalObjectID(a.CreatedBy)
	if err != nil {
		return nil, err
	}
	questions := make([]mongoQuestion, 0, len(a.Questions))
	for _, q := range a.Questions {
		questions = append(questions, mongoQuestion{
			Text:          q.Text,
			Type:          string(q.Type),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
		})
	}
	return &mongoAssessment{
		LessonID:    lesson,
		Title:       a.Title,
		Description: a.Description,
		Questions:   questions,
		TotalPoints: a.TotalPoints,
		CreatedBy:   author,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}, nil
}

func (r *AssessmentRepository) Create(ctx context.Context, a *domain.Assessment) (*domain.Assessment, error) {
	doc, err := assessmentDocument(a)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert test: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AssessmentRepository) FindByID(ctx context.Context, id string) (*domain.Assessment, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoAssessment
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("find test: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AssessmentRepository) Update(ctx context.Context, a *domain.Assessment) error {
	oid, err := objectID(a.ID)
	if err != nil {
		return err
	}
	doc, err := assessmentDocument(a)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"lesson_id":    doc.LessonID,
		"title":        doc.Title,
		"description":  doc.Description,
		"questions":    doc.Questions,
		"total_points": doc.TotalPoints,
		"updated_at":   doc.UpdatedAt,
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update test: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAssessmentNotFound
	}
	return nil
}

func (r *AssessmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete test: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAssessmentNotFound
	}
	return nil
}

func (r *AssessmentRepository) DeleteByLesson(ctx context.Context, lessonID string) (int64, error) {
	oid, err := objectID(lessonID)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"lesson_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete lesson tests: %w", err)
	}
	return res.DeletedCount, nil
}

// List returns one page of the tests of the given lessons plus the total
// count.
func (r *AssessmentRepository) List(ctx context.Context, filter ports.ListAssessmentsFilter) ([]*domain.Assessment, int64, error) {
	query, err := buildAssessmentFilter(filter)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count tests: %w", err)
	}

	opts := options.Find().
		SetSort(assessmentSort(filter)).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list tests: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoAssessment
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode tests: %w", err)
	}

	assessments := make([]*domain.Assessment, 0, len(docs))
	for i := range docs {
		assessments = append(assessments, docs[i].toDomain())
	}
	return assessments, total, nil
}

func buildAssessmentFilter(f ports.ListAssessmentsFilter) (bson.M, error) {
	ids := make([]primitive.ObjectID, 0, len(f.LessonIDs))
	for _, id := range f.LessonIDs {
		oid, err := objectID(id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, oid)
	}
	if len(ids) == 1 {
		return bson.M{"lesson_id": ids[0]}, nil
	}
	return bson.M{"lesson_id": bson.M{"$in": ids}}, nil
}

func assessmentSort(f ports.ListAssessmentsFilter) bson.D {
	field, ok := assessmentSortFields[f.SortBy]
	if !ok {
		field = "created_at"
	}
	dir := 1
	if f.SortDesc {
		dir = -1
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

// EnsureIndexes creates necessary indexes on the tests collection.
func (r *AssessmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "lesson_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
