package nip

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind identifies why a value was rejected.
type Kind uint8

const (
	// KindPatternMismatch means the value does not have an accepted NIP layout.
	KindPatternMismatch Kind = iota + 1
	// KindChecksumMismatch means the layout is fine but the check digit is wrong.
	KindChecksumMismatch
)

// Stable identifiers of the violation kinds. They never change between releases,
// so clients may persist them or compare against them.
const (
	InvalidPatternError  = "b2e5a844-1127-43dd-be56-861a5e37fd8e"
	InvalidChecksumError = "ba94bb8a-88bc-4be8-9577-f71ec17cd7e7"
)

var (
	invalidPatternCode  = uuid.MustParse(InvalidPatternError)
	invalidChecksumCode = uuid.MustParse(InvalidChecksumError)
)

// Code returns the machine-readable identifier of the kind.
func (k Kind) Code() uuid.UUID {
	switch k {
	case KindPatternMismatch:
		return invalidPatternCode
	case KindChecksumMismatch:
		return invalidChecksumCode
	default:
		return uuid.Nil
	}
}

// String returns the error name associated with the kind.
func (k Kind) String() string {
	switch k {
	case KindPatternMismatch:
		return "INVALID_PATTERN_ERROR"
	case KindChecksumMismatch:
		return "INVALID_CHECKSUM_ERROR"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind resolves a kind from either its code or its error name.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "INVALID_PATTERN_ERROR":
		return KindPatternMismatch, nil
	case "INVALID_CHECKSUM_ERROR":
		return KindChecksumMismatch, nil
	}

	code, err := uuid.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	switch code {
	case invalidPatternCode:
		return KindPatternMismatch, nil
	case invalidChecksumCode:
		return KindChecksumMismatch, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
