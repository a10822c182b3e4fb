package domain

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidID        = errors.New("invalid ID format")
	ErrEmailTaken       = errors.New("email already exists")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWrongPassword    = errors.New("current password is incorrect")

	ErrAccountNotFound = errors.New("account not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrKidNotFound     = errors.New("kid not found")
	ErrParentNotFound  = errors.New("parent not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	// ErrAssessmentNotFound keeps the wording clients know from the /test routes.
	ErrAssessmentNotFound = errors.New("test not found")

	// ErrInvalidCredentials and ErrAccountInactive are rendered identically to
	// clients; they stay distinct only for logs and metrics.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrSessionNotFound    = errors.New("session not found")

	ErrInvalidOrExpiredCode = errors.New("invalid or expired verification code")
	ErrAlreadyVerified      = errors.New("email is already verified")
	ErrMailDelivery         = errors.New("failed to deliver email")
)

// ValidationError reports the first constraint a payload violated.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

// Is lets callers match any ValidationError with errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
