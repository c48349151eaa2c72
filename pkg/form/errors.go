package form

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormClosed is returned by validation calls after Close.
var ErrFormClosed = errors.New("form: controller is closed")

// ValidationError describes a single field failing one validation rule.
// Value holds the field's value at the moment the rule ran, which may differ
// from the field's current value if it changed while an asynchronous check
// was in flight.
type ValidationError struct {
	Field             string
	Value             any
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates failures across fields, one entry per failed
// field. Produced by ValidateAll; Validate surfaces only the first failure.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) (ValidationError, bool) {
	for _, err := range ve {
		if err.Field == field {
			return err, true
		}
	}
	return ValidationError{}, false
}

func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, err := range ve {
		fields = append(fields, err.Field)
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// AsValidationError extracts a single-field validation error from err.
func AsValidationError(err error) (ValidationError, bool) {
	if err == nil {
		return ValidationError{}, false
	}

	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return ValidationError{}, false
}

// ExtractValidationErrors extracts an aggregated error set from err.
// Single-field errors are wrapped into a one-element set for uniform handling.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}

	var verr ValidationError
	if errors.As(err, &verr) {
		return ValidationErrors{verr}
	}
	return nil
}

// IsValidationError reports whether err represents a rule failure, as opposed
// to an infrastructure failure of a rule check.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verr ValidationError
	if errors.As(err, &verr) {
		return true
	}

	var verrs ValidationErrors
	return errors.As(err, &verrs)
}
