package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field   string
	Message string
	// Code is a stable machine-readable identifier of the failure.
	Code string
	// InvalidValue is the value that failed, after normalization.
	InvalidValue      any
	TranslationKey    string
	TranslationValues map[string]any
}

// Reporter receives validation errors from rules.
type Reporter interface {
	Report(err ValidationError)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(err ValidationError)

func (f ReporterFunc) Report(err ValidationError) { f(err) }

// ValidationErrors represents a collection of validation errors.
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

func (ve ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Report implements Reporter.
func (ve *ValidationErrors) Report(err ValidationError) {
	ve.Add(err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// HasCode reports whether any error carries the given code.
func (ve ValidationErrors) HasCode(code string) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule. When Run is set it takes
// precedence over Check and Error.
type Rule struct {
	Check func() bool
	Error ValidationError
	Run   func(r Reporter) error
}

// Apply executes the rules and returns the collected validation errors.
// A non-validation error from a Run function aborts Apply and is returned as is.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if rule.Run != nil {
			if err := rule.Run(&errs); err != nil {
				return err
			}
			continue
		}
		if rule.Check != nil && !rule.Check() {
			errs.Add(rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
