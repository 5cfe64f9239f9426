package entities

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"
	domainerrors "brand-connector.backend/internal/domain/errors"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

var validate = validator.New()

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns midnight UTC of that day
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domainerrors.Invalid("dates must be formatted as YYYY-MM-DD")
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// parseNullDate turns a present date string into a present date. A present
// empty string clears the stored date.
func parseNullDate(s null.String) (null.Time, error) {
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return null.Time{}, nil
	}
	t, err := ParseDate(s.String)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}

// cleared maps a present empty string to a cleared (NULL) value
func cleared(s null.String) null.String {
	if s.Valid && strings.TrimSpace(s.String) == "" {
		return null.String{}
	}
	return s
}

func validateEmail(s null.String) error {
	if !s.Valid {
		return nil
	}
	if err := validate.Var(s.String, "required,email,max=120"); err != nil {
		return domainerrors.Invalid("email must be a valid address")
	}
	return nil
}

func validateMax(s null.String, field string, max int) error {
	if s.Valid && len(s.String) > max {
		return domainerrors.Invalid(field + " is too long")
	}
	return nil
}
