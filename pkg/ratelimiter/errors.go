package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned by New for non-positive bucket parameters.
	ErrInvalidConfig = errors.New("ratelimiter: invalid configuration")
	// ErrInvalidTokenCount is returned by AllowN for n < 1.
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token count")
	// ErrEmptyKey is returned when a request cannot be attributed to a bucket.
	ErrEmptyKey = errors.New("ratelimiter: empty key")
)
