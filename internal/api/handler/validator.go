package handler

import (
	"github.com/dailymate/dailymate-api/internal/pkg/validate"
)

// echoValidator lets Echo call c.Validate(req) with the shared rule set.
type echoValidator struct{}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{}
}

// Validate satisfies the echo.Validator interface. The error is a
// *domain.ValidationError naming the first failing field.
func (ev *echoValidator) Validate(i any) error {
	return validate.Struct(i)
}
