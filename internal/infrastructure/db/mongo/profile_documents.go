package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

type mongoParent struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	AccountID          primitive.ObjectID `bson:"account_id"`
	FullName           string             `bson:"full_name"`
	DateOfBirth        *time.Time         `bson:"date_of_birth,omitempty"`
	Gender             string             `bson:"gender"`
	Image              string             `bson:"image,omitempty"`
	Address            string             `bson:"address,omitempty"`
	PhoneNumber        string             `bson:"phone_number,omitempty"`
	SubscriptionType   string             `bson:"subscription_type"`
	SubscriptionExpiry *time.Time         `bson:"subscription_expiry,omitempty"`
	CreatedAt          time.Time          `bson:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at"`
}

type mongoStreak struct {
	Current int `bson:"current"`
	Longest int `bson:"longest"`
}

type mongoKid struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	AccountID       primitive.ObjectID `bson:"account_id"`
	ParentID        primitive.ObjectID `bson:"parent_id,omitempty"`
	FullName        string             `bson:"full_name"`
	DateOfBirth     time.Time          `bson:"date_of_birth"`
	Gender          string             `bson:"gender"`
	Points          int                `bson:"points"`
	Level           int                `bson:"level"`
	Avatar          string             `bson:"avatar"`
	UnlockedAvatars []string           `bson:"unlocked_avatars"`
	Achievements    []string           `bson:"achievements"`
	Streak          mongoStreak        `bson:"streak"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

type mongoTeacher struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	AccountID       primitive.ObjectID   `bson:"account_id"`
	FullName        string               `bson:"full_name"`
	PhoneNumber     string               `bson:"phone_number,omitempty"`
	Specializations []string             `bson:"specializations"`
	Bio             string               `bson:"bio,omitempty"`
	CoursesCreated  []primitive.ObjectID `bson:"courses_created"`
	CreatedAt       time.Time            `bson:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at"`
}

type mongoAdmin struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AccountID   primitive.ObjectID `bson:"account_id"`
	FullName    string             `bson:"full_name"`
	PhoneNumber string             `bson:"phone_number,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// toDocument converts a domain profile into its storage document, assigning
// a new ID.
func toDocument(p domain.Profile) (any, primitive.ObjectID, error) {
	accountID, err := objectID(p.Owner())
	if err != nil {
		return nil, primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()

	switch v := p.(type) {
	case *domain.ParentProfile:
		return &mongoParent{
			ID:                 id,
			AccountID:          accountID,
			FullName:           v.FullName,
			DateOfBirth:        v.DateOfBirth,
			Gender:             string(v.Gender),
			Image:              v.Image,
			Address:            v.Address,
			PhoneNumber:        v.PhoneNumber,
			SubscriptionType:   string(v.SubscriptionType),
			SubscriptionExpiry: v.SubscriptionExpiry,
			CreatedAt:          v.CreatedAt,
			UpdatedAt:          v.UpdatedAt,
		}, id, nil
	case *domain.KidProfile:
		doc, err := kidDocument(v)
		if err != nil {
			return nil, primitive.NilObjectID, err
		}
		doc.ID = id
		doc.AccountID = accountID
		return doc, id, nil
	case *domain.TeacherProfile:
		courses := make([]primitive.ObjectID, 0, len(v.CoursesCreated))
		for _, c := range v.CoursesCreated {
			oid, err := objectID(c)
			if err != nil {
				return nil, primitive.NilObjectID, err
			}
			courses = append(courses, oid)
		}
		return &mongoTeacher{
			ID:              id,
			AccountID:       accountID,
			FullName:        v.FullName,
			PhoneNumber:     v.PhoneNumber,
			Specializations: nonNil(v.Specializations),
			Bio:             v.Bio,
			CoursesCreated:  courses,
			CreatedAt:       v.CreatedAt,
			UpdatedAt:       v.UpdatedAt,
		}, id, nil
	case *domain.AdminProfile:
		return &mongoAdmin{
			ID:          id,
			AccountID:   accountID,
			FullName:    v.FullName,
			PhoneNumber: v.PhoneNumber,
			CreatedAt:   v.CreatedAt,
			UpdatedAt:   v.UpdatedAt,
		}, id, nil
	}
	return nil, primitive.NilObjectID, domain.ErrProfileNotFound
}

func kidDocument(k *domain.KidProfile) (*mongoKid, error) {
	parentID, err := optionalObjectID(k.ParentID)
	if err != nil {
		return nil, err
	}
	return &mongoKid{
		ParentID:        parentID,
		FullName:        k.FullName,
		DateOfBirth:     k.DateOfBirth,
		Gender:          string(k.Gender),
		Points:          k.Points,
		Level:           k.Level,
		Avatar:          k.Avatar,
		UnlockedAvatars: nonNil(k.UnlockedAvatars),
		Achievements:    nonNil(k.Achievements),
		Streak:          mongoStreak{Current: k.Streak.Current, Longest: k.Streak.Longest},
		CreatedAt:       k.CreatedAt,
		UpdatedAt:       k.UpdatedAt,
	}, nil
}

func (m *mongoParent) toDomain() *domain.ParentProfile {
	return &domain.ParentProfile{
		ID:                 m.ID.Hex(),
		AccountID:          m.AccountID.Hex(),
		FullName:           m.FullName,
		DateOfBirth:        m.DateOfBirth,
		Gender:             domain.Gender(m.Gender),
		Image:              m.Image,
		Address:            m.Address,
		PhoneNumber:        m.PhoneNumber,
		SubscriptionType:   domain.SubscriptionType(m.SubscriptionType),
		SubscriptionExpiry: m.SubscriptionExpiry,
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}
}

func (m *mongoKid) toDomain() *domain.KidProfile {
	return &domain.KidProfile{
		ID:              m.ID.Hex(),
		AccountID:       m.AccountID.Hex(),
		ParentID:        hexOrEmpty(m.ParentID),
		FullName:        m.FullName,
		DateOfBirth:     m.DateOfBirth.UTC(),
		Gender:          domain.Gender(m.Gender),
		Points:          m.Points,
		Level:           m.Level,
		Avatar:          m.Avatar,
		UnlockedAvatars: nonNil(m.UnlockedAvatars),
		Achievements:    nonNil(m.Achievements),
		Streak:          domain.Streak{Current: m.Streak.Current, Longest: m.Streak.Longest},
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

func (m *mongoTeacher) toDomain() *domain.TeacherProfile {
	courses := make([]string, 0, len(m.CoursesCreated))
	for _, c := range m.CoursesCreated {
		courses = append(courses, c.Hex())
	}
	return &domain.TeacherProfile{
		ID:              m.ID.Hex(),
		AccountID:       m.AccountID.Hex(),
		FullName:        m.FullName,
		PhoneNumber:     m.PhoneNumber,
		Specializations: nonNil(m.Specializations),
		Bio:             m.Bio,
		CoursesCreated:  courses,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

func (m *mongoAdmin) toDomain() *domain.AdminProfile {
	return &domain.AdminProfile{
		ID:          m.ID.Hex(),
		AccountID:   m.AccountID.Hex(),
		FullName:    m.FullName,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
