package validator

import "errors"

// ErrValidationFailed is returned by ValidationErrors.Unwrap so callers can use errors.Is.
var ErrValidationFailed = errors.New("validation failed")
