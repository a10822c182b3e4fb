package domain

import "time"

// CodePurpose scopes a code so an email-verification code cannot reset a
// password and vice versa.
type CodePurpose string

const (
	PurposeVerifyEmail   CodePurpose = "verify_email"
	PurposeResetPassword CodePurpose = "reset_password"
)

const (
	CodeLength = 6
	CodeTTL    = 10 * time.Minute
)

// VerificationCode is a short-lived, single-use secret bound to an email.
type VerificationCode struct {
	ID        string
	Email     string
	Code      string
	Purpose   CodePurpose
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (v *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
