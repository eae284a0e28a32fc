package nip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/nipvalidator/pkg/logger"
)

// Validator checks values against one Config. The pattern is compiled once,
// so reuse a Validator instead of calling the package-level Validate in loops.
// A Validator is safe for concurrent use.
type Validator struct {
	cfg Config
	re  *regexp.Regexp
}

// TIN is the generic name (tax identification number) for the same validator.
type TIN = Validator

// New creates a Validator from options.
func New(opts ...Option) (*Validator, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg)
}

// NewFromConfig creates a Validator for a Config returned by NewConfig.
// The zero Config is rejected with ErrInvalidConfig and ErrUnbuiltConfig.
func NewFromConfig(cfg Config) (*Validator, error) {
	if !cfg.built() {
		return nil, errors.Join(ErrInvalidConfig, ErrUnbuiltConfig)
	}
	return &Validator{cfg: cfg, re: cfg.re}, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(opts ...Option) *Validator {
	v, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Config returns the configuration of the validator.
func (v *Validator) Config() Config { return v.cfg }

// Pattern returns the pattern values are matched against.
func (v *Validator) Pattern() string { return v.re.String() }

// Validate checks a value. It returns a nil Violation for valid and empty
// values. The error is reserved for values that cannot be read as text.
func (v *Validator) Validate(value any) (*Violation, error) {
	text, present, err := toText(value)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	return v.ValidateString(text), nil
}

// ValidateString checks a text value. Empty text is valid.
func (v *Validator) ValidateString(value string) *Violation {
	if value == "" {
		return nil
	}

	if v.cfg.normalizer != nil {
		value = v.cfg.normalizer(value)
		if value == "" {
			return nil
		}
	}

	if !v.re.MatchString(value) {
		return v.reject(&Violation{
			Kind:     KindPatternMismatch,
			Value:    value,
			Pattern:  v.re.String(),
			Template: v.cfg.patternMessage,
		})
	}

	if v.cfg.checksum && !ValidChecksum(value) {
		return v.reject(&Violation{
			Kind:     KindChecksumMismatch,
			Value:    value,
			Template: v.cfg.checksumMessage,
		})
	}

	return nil
}

// IsValid reports whether the text passes validation.
func (v *Validator) IsValid(value string) bool {
	return v.ValidateString(value) == nil
}

func (v *Validator) reject(violation *Violation) *Violation {
	v.cfg.log().LogAttrs(context.Background(), slog.LevelDebug, "nip rejected",
		logger.Component("nip"),
		logger.Kind(violation.Kind.String()),
		logger.Code(violation.Code().String()),
		logger.Value(violation.Value),
	)
	return violation
}

// Validate checks a value with a one-off Validator built from opts.
// The returned error is either a configuration error or ErrUnexpectedValueKind.
func Validate(value any, opts ...Option) (*Violation, error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return v.Validate(value)
}

// ValidateConstraint validates a value against a constraint given as Config,
// *Config, Settings, *Settings or *Validator. Any other constraint type yields
// ErrUnexpectedConstraint.
func ValidateConstraint(value any, constraint any) (*Violation, error) {
	var (
		v   *Validator
		err error
	)

	switch c := constraint.(type) {
	case *Validator:
		if c == nil {
			return nil, fmt.Errorf("%w: nil *Validator", ErrUnexpectedConstraint)
		}
		v = c
	case Config:
		if !c.built() {
			return nil, fmt.Errorf("%w: %w", ErrUnexpectedConstraint, ErrUnbuiltConfig)
		}
		v, err = NewFromConfig(c)
	case *Config:
		if c == nil {
			return nil, fmt.Errorf("%w: nil *Config", ErrUnexpectedConstraint)
		}
		if !c.built() {
			return nil, fmt.Errorf("%w: %w", ErrUnexpectedConstraint, ErrUnbuiltConfig)
		}
		v, err = NewFromConfig(*c)
	case Settings:
		v, err = c.Validator()
	case *Settings:
		if c == nil {
			return nil, fmt.Errorf("%w: nil *Settings", ErrUnexpectedConstraint)
		}
		v, err = c.Validator()
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedConstraint, constraint)
	}
	if err != nil {
		return nil, err
	}

	return v.Validate(value)
}
