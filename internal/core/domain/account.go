package domain

import (
	"strings"
	"time"
)

// Role selects which profile shape an account owns.
type Role string

const (
	RoleParent  Role = "parent"
	RoleKid     Role = "kid"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleParent, RoleKid, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// Account is the shared credential record behind every role profile.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewAccount returns an active, unverified account for role.
func NewAccount(email, passwordHash string, role Role, now time.Time) *Account {
	return &Account{
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NormalizeEmail is applied before every store and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
