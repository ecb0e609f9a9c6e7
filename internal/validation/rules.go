// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/invoices/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Error carries field-level validation failures. It unwraps to ErrInvalidInput
// so handlers can map it with the rest of the domain error taxonomy while still
// exposing the per-field detail.
type Error struct {
	Fields validation.Errors
}

// Error returns the combined field error message.
func (e *Error) Error() string {
	return e.Fields.Error()
}

// Unwrap links the error into the ErrInvalidInput chain.
func (e *Error) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// FieldMessages flattens the field errors into a field -> message map.
func (e *Error) FieldMessages() map[string]string {
	messages := make(map[string]string, len(e.Fields))
	for field, err := range e.Fields {
		messages[field] = err.Error()
	}
	return messages
}

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
// Field-keyed errors from validation.ValidateStruct keep their per-field detail.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if apperrors.As(err, &fields) {
		return &Error{Fields: fields}
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// PositiveInteger validates that a string parses as an integer greater than zero.
// Numeric form fields arrive as strings; a parse failure is a validation
// failure, never a panic.
var PositiveInteger = validation.NewStringRuleWithError(
	func(s string) bool {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		return err == nil && n > 0
	},
	validation.NewError("validation_positive_integer", "must be a positive whole number"),
)

// PositiveNumber validates that a string parses as a number greater than zero.
var PositiveNumber = validation.NewStringRuleWithError(
	func(s string) bool {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil && n > 0
	},
	validation.NewError("validation_positive_number", "must be a positive number"),
)

// NonNegativeNumber validates that a string parses as a number of at least zero.
var NonNegativeNumber = validation.NewStringRuleWithError(
	func(s string) bool {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil && n >= 0
	},
	validation.NewError("validation_non_negative_number", "must be zero or a positive number"),
)
