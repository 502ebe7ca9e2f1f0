// Package validation translates binding failures into the structured,
// field-scoped detail maps the error envelope exposes. Validation is
// exhaustive: every violated field appears in the details, not just the
// first, so clients can render all problems at once.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"taskflow-api/internal/apperr"
)

// FromBindError converts a gin binding error into a 400 AppError. Validator
// errors produce one detail entry per violated field; anything else (malformed
// JSON, type mismatches) yields a generic message.
func FromBindError(err error) *apperr.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]interface{}, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = reason(fe)
		}
		return apperr.NewValidation("Validation failed", details)
	}
	return apperr.NewValidation("Invalid request body", nil)
}

// reason renders a human-readable explanation for a single field violation.
func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "hexcolor6":
		return "must be a hex color in the form #RRGGBB"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation rule %q", fe.Tag())
	}
}
