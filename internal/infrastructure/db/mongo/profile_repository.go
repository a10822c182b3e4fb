package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

const (
	collectionParents  = "parents"
	collectionKids     = "kids"
	collectionTeachers = "teachers"
	collectionAdmins   = "admins"
)

// ProfileRepository stores each role's profiles in its own collection.
type ProfileRepository struct {
	parents  *mongo.Collection
	kids     *mongo.Collection
	teachers *mongo.Collection
	admins   *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		parents:  db.Collection(collectionParents),
		kids:     db.Collection(collectionKids),
		teachers: db.Collection(collectionTeachers),
		admins:   db.Collection(collectionAdmins),
	}
}

func (r *ProfileRepository) collection(role domain.Role) (*mongo.Collection, error) {
	switch role {
	case domain.RoleParent:
		return r.parents, nil
	case domain.RoleKid:
		return r.kids, nil
	case domain.RoleTeacher:
		return r.teachers, nil
	case domain.RoleAdmin:
		return r.admins, nil
	}
	return nil, fmt.Errorf("unknown role %q", role)
}

// Insert stores p in its role's collection and returns a copy with the ID set.
func (r *ProfileRepository) Insert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	col, err := r.collection(p.Role())
	if err != nil {
		return nil, err
	}
	doc, id, err := toDocument(p)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert %s profile: %w", p.Role(), err)
	}

	switch v := p.(type) {
	case *domain.ParentProfile:
		out := *v
		out.ID = id.Hex()
		return &out, nil
	case *domain.KidProfile:
		out := *v
		out.ID = id.Hex()
		return &out, nil
	case *domain.TeacherProfile:
		out := *v
		out.ID = id.Hex()
		return &out, nil
	case *domain.AdminProfile:
		out := *v
		out.ID = id.Hex()
		return &out, nil
	}
	return p, nil
}

func (r *ProfileRepository) FindByAccount(ctx context.Context, role domain.Role, accountID string) (domain.Profile, error) {
	col, err := r.collection(role)
	if err != nil {
		return nil, err
	}
	oid, err := objectID(accountID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := col.FindOne(ctx, bson.M{"account_id": oid})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find %s profile: %w", role, err)
	}

	switch role {
	case domain.RoleParent:
		var doc mongoParent
		if err := res.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode parent profile: %w", err)
		}
		return doc.toDomain(), nil
	case domain.RoleKid:
		var doc mongoKid
		if err := res.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode kid profile: %w", err)
		}
		return doc.toDomain(), nil
	case domain.RoleTeacher:
		var doc mongoTeacher
		if err := res.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode teacher profile: %w", err)
		}
		return doc.toDomain(), nil
	default:
		var doc mongoAdmin
		if err := res.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode admin profile: %w", err)
		}
		return doc.toDomain(), nil
	}
}

// DeleteByAccount removes the profile owned by accountID, if any.
func (r *ProfileRepository) DeleteByAccount(ctx context.Context, role domain.Role, accountID string) error {
	col, err := r.collection(role)
	if err != nil {
		return err
	}
	oid, err := objectID(accountID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := col.DeleteOne(ctx, bson.M{"account_id": oid}); err != nil {
		return fmt.Errorf("delete %s profile: %w", role, err)
	}
	return nil
}

func (r *ProfileRepository) FindKid(ctx context.Context, id string) (*domain.KidProfile, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoKid
	if err := r.kids.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrKidNotFound
		}
		return nil, fmt.Errorf("find kid: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateKid overwrites the mutable fields of a kid profile. The owning
// account and creation time are never rewritten.
func (r *ProfileRepository) UpdateKid(ctx context.Context, kid *domain.KidProfile) error {
	oid, err := objectID(kid.ID)
	if err != nil {
		return err
	}
	doc, err := kidDocument(kid)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"full_name":        doc.FullName,
		"date_of_birth":    doc.DateOfBirth,
		"gender":           doc.Gender,
		"points":           doc.Points,
		"level":            doc.Level,
		"avatar":           doc.Avatar,
		"unlocked_avatars": doc.UnlockedAvatars,
		"achievements":     doc.Achievements,
		"streak":           doc.Streak,
		"updated_at":       doc.UpdatedAt,
	}
	res, err := r.kids.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update kid: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrKidNotFound
	}
	return nil
}

func (r *ProfileRepository) DeleteKid(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.kids.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete kid: %w", err)
	}
	return nil
}

func (r *ProfileRepository) ListKidsByParent(ctx context.Context, parentID string) ([]*domain.KidProfile, error) {
	oid, err := objectID(parentID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.kids.Find(ctx, bson.M{"parent_id": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list kids: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoKid
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode kids: %w", err)
	}

	kids := make([]*domain.KidProfile, 0, len(docs))
	for i := range docs {
		kids = append(kids, docs[i].toDomain())
	}
	return kids, nil
}

func (r *ProfileRepository) FindParent(ctx context.Context, id string) (*domain.ParentProfile, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoParent
	if err := r.parents.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrParentNotFound
		}
		return nil, fmt.Errorf("find parent: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProfileRepository) AddTeacherCourse(ctx context.Context, teacherID, courseID string) error {
	return r.updateTeacherCourses(ctx, teacherID, courseID, "$addToSet")
}

func (r *ProfileRepository) RemoveTeacherCourse(ctx context.Context, teacherID, courseID string) error {
	return r.updateTeacherCourses(ctx, teacherID, courseID, "$pull")
}

func (r *ProfileRepository) updateTeacherCourses(ctx context.Context, teacherID, courseID, op string) error {
	tid, err := objectID(teacherID)
	if err != nil {
		return err
	}
	cid, err := objectID(courseID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		op:     bson.M{"courses_created": cid},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.teachers.UpdateOne(ctx, bson.M{"_id": tid}, update)
	if err != nil {
		return fmt.Errorf("update teacher courses: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTeacherNotFound
	}
	return nil
}

// EnsureIndexes creates one unique account_id index per profile collection
// plus the parent lookup index on kids.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	unique := mongo.IndexModel{
		Keys:    bson.D{{Key: "account_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, col := range []*mongo.Collection{r.parents, r.teachers, r.admins} {
		if _, err := col.Indexes().CreateOne(ctx, unique); err != nil {
			return fmt.Errorf("%s indexes: %w", col.Name(), err)
		}
	}

	_, err := r.kids.Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique,
		{Keys: bson.D{{Key: "parent_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("%s indexes: %w", collectionKids, err)
	}
	return nil
}
