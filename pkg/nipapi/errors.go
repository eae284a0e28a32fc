package nipapi

import "errors"

var (
	// ErrMalformedBody is returned for request bodies that are not a single JSON object.
	ErrMalformedBody = errors.New("malformed request body")
	// ErrBodyTooLarge is returned when the body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
	// ErrNotReady is reported by the readiness probe when no validator is configured.
	ErrNotReady = errors.New("validator is not configured")
)

var (
	errNotFound         = errors.New("not found")
	errMethodNotAllowed = errors.New("method not allowed")
)
