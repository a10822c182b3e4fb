package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

const collectionCourses = "courses"

// sortFields maps API sort keys to document fields.
var sortFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"ageGroup":  "age_group",
	"level":     "level",
}

type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection(collectionCourses)}
}

type mongoCourse struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Category     string             `bson:"category"`
	AgeGroup     string             `bson:"age_group"`
	Level        string             `bson:"level"`
	InstructorID primitive.ObjectID `bson:"instructor_id,omitempty"`
	Thumbnail    string             `bson:"thumbnail,omitempty"`
	IsPremium    bool               `bson:"is_premium"`
	IsPublished  bool               `bson:"is_published"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (m *mongoCourse) toDomain() *domain.Course {
	return &domain.Course{
		ID:           m.ID.Hex(),
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		AgeGroup:     domain.AgeGroup(m.AgeGroup),
		Level:        domain.CourseLevel(m.Level),
		InstructorID: hexOrEmpty(m.InstructorID),
		Thumbnail:    m.Thumbnail,
		IsPremium:    m.IsPremium,
		IsPublished:  m.IsPublished,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func courseDocument(c *domain.Course) (*mongoCourse, error) {
	instructor, err := optionalObjectID(c.InstructorID)
	if err != nil {
		return nil, err
	}
	return &mongoCourse{
		Title:        c.Title,
		Description:  c.Description,
		Category:     c.Category,
		AgeGroup:     string(c.AgeGroup),
		Level:        string(c.Level),
		InstructorID: instructor,
		Thumbnail:    c.Thumbnail,
		IsPremium:    c.IsPremium,
		IsPublished:  c.IsPublished,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}, nil
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	doc, err := courseDocument(c)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoCourse
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) error {
	oid, err := objectID(c.ID)
	if err != nil {
		return err
	}
	doc, err := courseDocument(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"title":        doc.Title,
		"description":  doc.Description,
		"category":     doc.Category,
		"age_group":    doc.AgeGroup,
		"level":        doc.Level,
		"thumbnail":    doc.Thumbnail,
		"is_premium":   doc.IsPremium,
		"is_published": doc.IsPublished,
		"updated_at":   doc.UpdatedAt,
	}
	if !doc.InstructorID.IsZero() {
		set["instructor_id"] = doc.InstructorID
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// List returns one page of courses matching filter, plus the total count.
func (r *CourseRepository) List(ctx context.Context, filter ports.ListCoursesFilter) ([]*domain.Course, int64, error) {
	query, err := buildCourseFilter(filter)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}

	opts := options.Find().
		SetSort(courseSort(filter)).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoCourse
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode courses: %w", err)
	}

	courses := make([]*domain.Course, 0, len(docs))
	for i := range docs {
		courses = append(courses, docs[i].toDomain())
	}
	return courses, total, nil
}

func buildCourseFilter(f ports.ListCoursesFilter) (bson.M, error) {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Category), Options: "i"}
	}
	if f.AgeGroup != "" {
		query["age_group"] = f.AgeGroup
	}
	if f.InstructorID != "" {
		oid, err := objectID(f.InstructorID)
		if err != nil {
			return nil, err
		}
		query["instructor_id"] = oid
	}
	if f.IsPremium != nil {
		query["is_premium"] = *f.IsPremium
	}
	if f.IsPublished != nil {
		query["is_published"] = *f.IsPublished
	}
	return query, nil
}

func courseSort(f ports.ListCoursesFilter) bson.D {
	field, ok := sortFields[f.SortBy]
	if !ok {
		field = "created_at"
	}
	dir := 1
	if f.SortDesc {
		dir = -1
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

// EnsureIndexes creates necessary indexes on the courses collection.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "age_group", Value: 1}, {Key: "is_published", Value: 1}}},
		{Keys: bson.D{{Key: "instructor_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
