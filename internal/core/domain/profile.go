package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type SubscriptionType string

const (
	SubscriptionFree    SubscriptionType = "free"
	SubscriptionPremium SubscriptionType = "premium"
)

// DefaultKidAvatar is assigned to every new kid profile.
const DefaultKidAvatar = "img/default"

// Profile is the role-specific half of an identity. Exactly one concrete
// profile type exists per Role.
type Profile interface {
	Role() Role
	Owner() string
	isProfile()
}

type ParentProfile struct {
	ID                 string           `json:"id"`
	AccountID          string           `json:"userId" validate:"required"`
	FullName           string           `json:"fullName" validate:"required,min=2,max=100"`
	DateOfBirth        *time.Time       `json:"dateOfBirth,omitempty" validate:"omitempty,notfuture"`
	Gender             Gender           `json:"gender" validate:"required,oneof=male female"`
	Image              string           `json:"image,omitempty" validate:"omitempty,url"`
	Address            string           `json:"address,omitempty" validate:"max=200"`
	PhoneNumber        string           `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	SubscriptionType   SubscriptionType `json:"subscriptionType" validate:"required,oneof=free premium"`
	SubscriptionExpiry *time.Time       `json:"subscriptionExpiry,omitempty" validate:"omitempty,notpast"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func (p *ParentProfile) Role() Role    { return RoleParent }
func (p *ParentProfile) Owner() string { return p.AccountID }
func (*ParentProfile) isProfile()      {}

type Streak struct {
	Current int `json:"current" validate:"min=0"`
	Longest int `json:"longest" validate:"min=0"`
}

type KidProfile struct {
	ID              string    `json:"id"`
	AccountID       string    `json:"userId" validate:"required"`
	ParentID        string    `json:"parentId,omitempty"`
	FullName        string    `json:"fullName" validate:"required,min=2,max=100"`
	DateOfBirth     time.Time `json:"dateOfBirth" validate:"required,notfuture"`
	Gender          Gender    `json:"gender" validate:"required,oneof=male female"`
	Points          int       `json:"points" validate:"min=0"`
	Level           int       `json:"level" validate:"min=0"`
	Avatar          string    `json:"avatar" validate:"required"`
	UnlockedAvatars []string  `json:"unlockedAvatars"`
	Achievements    []string  `json:"achievements"`
	Streak          Streak    `json:"streak"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (k *KidProfile) Role() Role    { return RoleKid }
func (k *KidProfile) Owner() string { return k.AccountID }
func (*KidProfile) isProfile()      {}

// NewKidProfile applies the starting progression state.
func NewKidProfile(accountID, fullName string, dob time.Time, gender Gender, now time.Time) *KidProfile {
	return &KidProfile{
		AccountID:       accountID,
		FullName:        fullName,
		DateOfBirth:     dob,
		Gender:          gender,
		Points:          0,
		Level:           0,
		Avatar:          DefaultKidAvatar,
		UnlockedAvatars: []string{},
		Achievements:    []string{},
		Streak:          Streak{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

type TeacherProfile struct {
	ID              string    `json:"id"`
	AccountID       string    `json:"userId" validate:"required"`
	FullName        string    `json:"fullName" validate:"required,min=2,max=100"`
	PhoneNumber     string    `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	Specializations []string  `json:"specializations" validate:"dive,min=2,max=50"`
	Bio             string    `json:"bio,omitempty" validate:"max=500"`
	CoursesCreated  []string  `json:"coursesCreated"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (t *TeacherProfile) Role() Role    { return RoleTeacher }
func (t *TeacherProfile) Owner() string { return t.AccountID }
func (*TeacherProfile) isProfile()      {}

type AdminProfile struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"userId" validate:"required"`
	FullName    string    `json:"fullName" validate:"required,min=2,max=100"`
	PhoneNumber string    `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *AdminProfile) Role() Role    { return RoleAdmin }
func (a *AdminProfile) Owner() string { return a.AccountID }
func (*AdminProfile) isProfile()      {}
