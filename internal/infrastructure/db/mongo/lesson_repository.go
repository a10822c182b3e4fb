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

const collectionLessons = "lessons"

var lessonSortFields = map[string]string{
	"order":     "order",
	"title":     "title",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type LessonRepository struct {
	col *mongo.Collection
}

func NewLessonRepository(db *mongo.Database) *LessonRepository {
	return &LessonRepository{col: db.Collection(collectionLessons)}
}

type mongoLesson struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CourseID    primitive.ObjectID `bson:"course_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Content     string             `bson:"content"`
	VideoURL    string             `bson:"video_url"`
	Category    string             `bson:"category"`
	Level       string             `bson:"level"`
	AgeGroup    string             `bson:"age_group"`
	Order       int                `bson:"order"`
	IsPublished bool               `bson:"is_published"`
	CreatedBy   primitive.ObjectID `bson:"created_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (m *mongoLesson) toDomain() *domain.Lesson {
	return &domain.Lesson{
		ID:          m.ID.Hex(),
		CourseID:    hexOrEmpty(m.CourseID),
		Title:       m.Title,
		Description: m.Description,
		Content:     m.Content,
		VideoURL:    m.VideoURL,
		Category:    m.Category,
		Level:       domain.CourseLevel(m.Level),
		AgeGroup:    domain.AgeGroup(m.AgeGroup),
		Order:       m.Order,
		IsPublished: m.IsPublished,
		CreatedBy:   hexOrEmpty(m.CreatedBy),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func lessonDocument(l *domain.Lesson) (*mongoLesson, error) {
	course, err := objectID(l.CourseID)
	if err != nil {
		return nil, err
	}
	author, err := optionalObjectID(l.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &mongoLesson{
		CourseID:    course,
		Title:       l.Title,
		Description: l.Description,
		Content:     l.Content,
		VideoURL:    l.VideoURL,
		Category:    l.Category,
		Level:       string(l.Level),
		AgeGroup:    string(l.AgeGroup),
		Order:       l.Order,
		IsPublished: l.IsPublished,
		CreatedBy:   author,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}, nil
}

func (r *LessonRepository) Create(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error) {
	doc, err := lessonDocument(l)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert lesson: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *LessonRepository) FindByID(ctx context.Context, id string) (*domain.Lesson, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoLesson
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLessonNotFound
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *LessonRepository) Update(ctx context.Context, l *domain.Lesson) error {
	oid, err := objectID(l.ID)
	if err != nil {
		return err
	}
	doc, err := lessonDocument(l)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"course_id":    doc.CourseID,
		"title":        doc.Title,
		"description":  doc.Description,
		"content":      doc.Content,
		"video_url":    doc.VideoURL,
		"category":     doc.Category,
		"level":        doc.Level,
		"age_group":    doc.AgeGroup,
		"order":        doc.Order,
		"is_published": doc.IsPublished,
		"updated_at":   doc.UpdatedAt,
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update lesson: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLessonNotFound
	}
	return nil
}

func (r *LessonRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLessonNotFound
	}
	return nil
}

// List returns one page of a course's lessons plus the total count.
func (r *LessonRepository) List(ctx context.Context, filter ports.ListLessonsFilter) ([]*domain.Lesson, int64, error) {
	query, err := buildLessonFilter(filter.CourseID, filter.IsPublished)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count lessons: %w", err)
	}

	opts := options.Find().
		SetSort(lessonSort(filter)).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list lessons: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoLesson
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode lessons: %w", err)
	}

	lessons := make([]*domain.Lesson, 0, len(docs))
	for i := range docs {
		lessons = append(lessons, docs[i].toDomain())
	}
	return lessons, total, nil
}

func (r *LessonRepository) IDsByCourse(ctx context.Context, courseID string, publishedOnly bool) ([]string, error) {
	var published *bool
	if publishedOnly {
		published = &publishedOnly
	}
	query, err := buildLessonFilter(courseID, published)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, query, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list lesson ids: %w", err)
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode lesson ids: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID.Hex())
	}
	return ids, nil
}

func buildLessonFilter(courseID string, published *bool) (bson.M, error) {
	oid, err := objectID(courseID)
	if err != nil {
		return nil, err
	}
	query := bson.M{"course_id": oid}
	if published != nil {
		query["is_published"] = *published
	}
	return query, nil
}

func lessonSort(f ports.ListLessonsFilter) bson.D {
	field, ok := lessonSortFields[f.SortBy]
	if !ok {
		field = "order"
	}
	dir := 1
	if f.SortDesc {
		dir = -1
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

// EnsureIndexes creates necessary indexes on the lessons collection.
func (r *LessonRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, lessonIndexes())
	return err
}

func lessonIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "order", Value: 1}}},
		{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "is_published", Value: 1}}},
	}
}
