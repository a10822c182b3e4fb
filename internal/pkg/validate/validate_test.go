package validate

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

type sample struct {
	Email    string     `json:"email" validate:"required,email"`
	FullName string     `json:"fullName" validate:"required,min=2,max=100"`
	Phone    string     `json:"phoneNumber" validate:"omitempty,phone"`
	Gender   string     `json:"gender" validate:"required,oneof=male female"`
	Born     *time.Time `json:"dateOfBirth" validate:"omitempty,notfuture"`
	Tags     []string   `json:"tags" validate:"dive,min=2,max=50"`
}

func valid() sample {
	return sample{Email: "a@example.com", FullName: "Ann", Gender: "female"}
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(valid()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStruct_ReportsFirstViolation(t *testing.T) {
	s := valid()
	s.Email = "not-an-email"
	s.FullName = "A"

	err := Struct(s)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "email" {
		t.Fatalf("expected first violation on email, got %q", ve.Field)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected errors.Is ErrValidation")
	}
}

func TestStruct_Messages(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)

	cases := []struct {
		name   string
		mutate func(*sample)
		want   string
	}{
		{"short name", func(s *sample) { s.FullName = "A" }, "fullName must be at least 2 characters"},
		{"bad phone", func(s *sample) { s.Phone = "12-34" }, "phoneNumber must contain 10 to 15 digits"},
		{"bad gender", func(s *sample) { s.Gender = "other" }, "gender must be one of: male, female"},
		{"future birth", func(s *sample) { s.Born = &future }, "dateOfBirth cannot be in the future"},
		{"short tag", func(s *sample) { s.Tags = []string{"x"} }, "tags[0] must be at least 2 characters"},
		{"missing email", func(s *sample) { s.Email = "" }, "email is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			err := Struct(s)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestStruct_PhoneAcceptsDigits(t *testing.T) {
	s := valid()
	s.Phone = "0123456789"
	if err := Struct(s); err != nil {
		t.Fatalf("expected valid phone, got %v", err)
	}
}
