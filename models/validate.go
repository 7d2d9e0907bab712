package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate enforces the per-entity required-field contract. The same rules
// apply at the create/update boundary and to rows parsed from a backup
// archive.
func Validate(entity any) error {
	return validate.Struct(entity)
}

// RequiredFieldError extracts the first offending field name from a
// validation error, lowercased for API responses. Returns "" for non
// validator errors.
func RequiredFieldError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return ""
	}
	return strings.ToLower(fieldErrs[0].Field())
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

// trimPtr trims a nullable field and collapses empty values to nil so that
// "" and NULL are never both persisted for the same meaning.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
