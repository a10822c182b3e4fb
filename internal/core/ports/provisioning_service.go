package ports

import (
	"context"
	"time"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// AccountInput carries the credential half of every provisioning payload.
type AccountInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Normalize trims and lowercases the email so validation and storage see
// the same value login looks up.
func (a *AccountInput) Normalize() {
	a.Email = domain.NormalizeEmail(a.Email)
}

type ParentInput struct {
	AccountInput
	FullName    string     `json:"fullName" validate:"required,min=2,max=100"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Gender      string     `json:"gender" validate:"required,oneof=male female"`
	Image       string     `json:"image" validate:"omitempty,url"`
	Address     string     `json:"address" validate:"max=200"`
	PhoneNumber string     `json:"phoneNumber" validate:"omitempty,phone"`
}

type KidInput struct {
	AccountInput
	FullName    string    `json:"fullName" validate:"required,min=2,max=100"`
	DateOfBirth time.Time `json:"dateOfBirth" validate:"required"`
	Gender      string    `json:"gender" validate:"required,oneof=male female"`
	// ParentID links the kid to a parent profile. Optional.
	ParentID string `json:"parentId"`
}

type TeacherInput struct {
	AccountInput
	FullName        string   `json:"fullName" validate:"required,min=2,max=100"`
	PhoneNumber     string   `json:"phoneNumber" validate:"omitempty,phone"`
	Specializations []string `json:"specializations" validate:"dive,min=2,max=50"`
	Bio             string   `json:"bio" validate:"max=500"`
}

type AdminInput struct {
	AccountInput
	FullName    string `json:"fullName" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone"`
}

// ProvisionResult is the merged identity returned after provisioning.
type ProvisionResult struct {
	Account *domain.Account
	Profile domain.Profile
}

// ProvisioningService creates an account and its role profile as one
// logical operation: either both exist afterwards or neither does.
type ProvisioningService interface {
	ProvisionParent(ctx context.Context, in ParentInput) (*ProvisionResult, error)
	ProvisionKid(ctx context.Context, in KidInput) (*ProvisionResult, error)
	ProvisionTeacher(ctx context.Context, in TeacherInput) (*ProvisionResult, error)
	ProvisionAdmin(ctx context.Context, in AdminInput) (*ProvisionResult, error)
}
