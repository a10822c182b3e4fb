// Package validate holds the shared go-playground validator instance, the
// custom tags the domain relies on, and the translation of validator errors
// into domain.ValidationError.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

var (
	once     sync.Once
	instance *validator.Validate
	now      = time.Now
)

// Instance returns the process-wide validator with custom tags registered.
func Instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("phone", isPhone)
		_ = v.RegisterValidation("notfuture", notFuture)
		_ = v.RegisterValidation("notpast", notPast)
		instance = v
	})
	return instance
}

// Struct validates s and returns a *domain.ValidationError describing the
// first violated constraint, or nil.
func Struct(s any) error {
	err := Instance().Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return domain.NewValidationError(ve[0].Field(), Message(ve[0]))
	}
	return domain.NewValidationError("", err.Error())
}

// Message converts a single FieldError into a human-readable message.
func Message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "phone":
		return field + " must contain 10 to 15 digits"
	case "numeric":
		return field + " must contain only digits"
	case "notfuture":
		return field + " cannot be in the future"
	case "notpast":
		return field + " cannot be in the past"
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, fe.Param(), unit(fe.Kind()))
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, fe.Param(), unit(fe.Kind()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func unit(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	}
	return ""
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name[:1]) + f.Name[1:]
	}
	return name
}

func isPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func notFuture(fl validator.FieldLevel) bool {
	t, ok := timeOf(fl)
	return !ok || !t.After(now())
}

func notPast(fl validator.FieldLevel) bool {
	t, ok := timeOf(fl)
	return !ok || !t.Before(now())
}

func timeOf(fl validator.FieldLevel) (time.Time, bool) {
	switch v := fl.Field().Interface().(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	}
	return time.Time{}, false
}
