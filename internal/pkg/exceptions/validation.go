package exceptions

import (
	"ecare-automation/internal/pkg/constvars"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError names the first input field that failed client-side checks.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: field + " " + message,
	}
}

// NewValidationErrorFromValidator converts validator output into a
// ValidationError. Errors that are already ValidationError pass through.
func NewValidationErrorFromValidator(err error) *ValidationError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		message := constvars.ErrClientCannotProcessRequest
		if err != nil {
			message = err.Error()
		}
		return &ValidationError{Message: message}
	}

	field, message := FormatFirstValidationError(validationErrors)
	return NewValidationError(field, message)
}

// validationDevMessage lists every failed field, not only the one reported
// to the client.
func validationDevMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return constvars.ErrDevValidationFailed
	}
	return constvars.ErrDevValidationFailed + " (" + FormatAllValidationErrors(validationErrors) + ")"
}

func FormatAllValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return constvars.ErrClientCannotProcessRequest
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldErr.Field()+" "+validationMessage(fieldErr))
	}
	return strings.Join(messages, ", ")
}

func FormatFirstValidationError(validationErrors validator.ValidationErrors) (string, string) {
	firstErr := validationErrors[0]
	return firstErr.Field(), validationMessage(firstErr)
}

func validationMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = constvars.CustomValidationErrorMessages["dive"]
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			return strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		}
		// min/max on slices count items, not characters
		if (tag == "min" || tag == "max") && fieldErr.Kind() == reflect.Slice {
			customMessage = strings.Replace(customMessage, "characters", "items", 1)
		}
		return strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
	}
	return customMessage
}
