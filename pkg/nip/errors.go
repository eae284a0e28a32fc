package nip

import "errors"

var (
	// ErrUnexpectedValueKind is returned when the value cannot be converted to text.
	// It signals a caller bug, not an invalid NIP.
	ErrUnexpectedValueKind = errors.New("nip: unexpected value kind, expected text")

	// ErrUnexpectedConstraint is returned when ValidateConstraint receives something
	// that does not describe NIP validation.
	ErrUnexpectedConstraint = errors.New("nip: unexpected constraint type")

	// ErrInvalidConfig is returned by NewConfig and New when an option is rejected.
	ErrInvalidConfig = errors.New("nip: invalid configuration")

	// ErrNilNormalizer is joined with ErrInvalidConfig when WithNormalizer gets nil.
	ErrNilNormalizer = errors.New("normalizer must not be nil")

	// ErrNegativePrefixLength is joined with ErrInvalidConfig for prefix lengths below zero.
	ErrNegativePrefixLength = errors.New("prefix length must not be negative")

	// ErrInvalidPattern is joined with ErrInvalidConfig when a custom pattern does not compile.
	ErrInvalidPattern = errors.New("pattern does not compile")

	// ErrUnbuiltConfig marks a Config that did not come from NewConfig, such as the zero value.
	ErrUnbuiltConfig = errors.New("config was not created by NewConfig")

	// ErrUnknownNormalizer is joined with ErrInvalidConfig when Settings names an unknown normalizer.
	ErrUnknownNormalizer = errors.New("unknown normalizer")

	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("nip: unknown violation kind")
)
