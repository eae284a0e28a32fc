package nip

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/nipvalidator/pkg/logger"
)

// DefaultMessage is used for both pattern and checksum failures unless overridden.
const DefaultMessage = "This is not a valid NIP number."

// DefaultPrefixLength is the number of letters in a country prefix such as "PL".
const DefaultPrefixLength = 2

// Normalizer transforms the raw text before it is matched.
type Normalizer func(string) string

// Config holds the validation options. Create it with NewConfig; a Config is
// never modified afterwards and may be shared between goroutines.
type Config struct {
	pattern         string
	checksum        bool
	allowDashes     bool
	requireDashes   bool
	allowPrefix     bool
	requirePrefix   bool
	prefixLength    int
	normalizer      Normalizer
	patternMessage  string
	checksumMessage string
	logger          *slog.Logger

	re *regexp.Regexp
}

// Option configures a Config.
type Option func(*Config) error

func defaultConfig() Config {
	return Config{
		checksum:        true,
		prefixLength:    DefaultPrefixLength,
		patternMessage:  DefaultMessage,
		checksumMessage: DefaultMessage,
	}
}

// NewConfig builds a Config from the defaults and the given options.
// Any rejected option is reported as ErrInvalidConfig joined with the cause.
func NewConfig(opts ...Option) (Config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Config{}, errors.Join(ErrInvalidConfig, err)
		}
	}

	re, err := regexp.Compile(BuildPattern(cfg))
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, ErrInvalidPattern, err)
	}
	cfg.re = re

	if cfg.logger == nil {
		cfg.logger = logger.NewNop()
	}

	return cfg, nil
}

// WithPattern replaces the generated layout pattern with a custom RE2 expression.
// Dash and prefix options no longer affect matching; the checksum option still applies.
func WithPattern(pattern string) Option {
	return func(c *Config) error {
		if _, err := regexp.Compile(pattern); err != nil {
			return errors.Join(ErrInvalidPattern, fmt.Errorf("%q: %w", pattern, err))
		}
		c.pattern = pattern
		return nil
	}
}

// WithChecksum toggles check digit verification.
func WithChecksum(enabled bool) Option {
	return func(c *Config) error {
		c.checksum = enabled
		return nil
	}
}

// WithoutChecksum accepts any value with a valid layout.
func WithoutChecksum() Option {
	return WithChecksum(false)
}

// WithAllowDashes accepts the dash-grouped layouts next to plain digits.
func WithAllowDashes(allow bool) Option {
	return func(c *Config) error {
		c.allowDashes = allow
		return nil
	}
}

// WithRequireDashes accepts the dash-grouped layouts only, unless dashes are
// also allowed, in which case plain digits are accepted too.
func WithRequireDashes(require bool) Option {
	return func(c *Config) error {
		c.requireDashes = require
		return nil
	}
}

// WithAllowPrefix accepts an optional alphabetic country prefix.
func WithAllowPrefix(allow bool) Option {
	return func(c *Config) error {
		c.allowPrefix = allow
		return nil
	}
}

// WithRequirePrefix makes the alphabetic country prefix mandatory.
func WithRequirePrefix(require bool) Option {
	return func(c *Config) error {
		c.requirePrefix = require
		return nil
	}
}

// WithPrefixLength sets the exact number of prefix letters. Zero disables the prefix.
func WithPrefixLength(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrNegativePrefixLength, n)
		}
		c.prefixLength = n
		return nil
	}
}

// WithNormalizer sets a function applied to the text before matching.
func WithNormalizer(fn Normalizer) Option {
	return func(c *Config) error {
		if fn == nil {
			return ErrNilNormalizer
		}
		c.normalizer = fn
		return nil
	}
}

// WithPatternMessage overrides the message template of layout failures.
// The template may reference {{ value }} and {{ pattern }}.
func WithPatternMessage(msg string) Option {
	return func(c *Config) error {
		c.patternMessage = msg
		return nil
	}
}

// WithChecksumMessage overrides the message template of checksum failures.
// The template may reference {{ value }}.
func WithChecksumMessage(msg string) Option {
	return func(c *Config) error {
		c.checksumMessage = msg
		return nil
	}
}

// WithLogger sets the logger used to record rejected values at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		c.logger = l
		return nil
	}
}

// WithConfig copies every option from an existing Config. Options listed
// after it override the copied values.
func WithConfig(src Config) Option {
	return func(c *Config) error {
		if !src.built() {
			return ErrUnbuiltConfig
		}
		*c = src
		return nil
	}
}

// CustomPattern returns the custom pattern, or "" when the layout is generated.
func (c Config) CustomPattern() string { return c.pattern }

// HasCustomPattern reports whether WithPattern was used.
func (c Config) HasCustomPattern() bool { return c.pattern != "" }

func (c Config) ChecksumEnabled() bool { return c.checksum }

func (c Config) AllowDashes() bool { return c.allowDashes }

func (c Config) RequireDashes() bool { return c.requireDashes }

func (c Config) AllowPrefix() bool { return c.allowPrefix }

func (c Config) RequirePrefix() bool { return c.requirePrefix }

func (c Config) PrefixLength() int { return c.prefixLength }

func (c Config) Normalizer() Normalizer { return c.normalizer }

func (c Config) PatternMessage() string { return c.patternMessage }

func (c Config) ChecksumMessage() string { return c.checksumMessage }

// Pattern returns the pattern values are matched against.
func (c Config) Pattern() string { return BuildPattern(c) }

// built reports whether the Config went through NewConfig. The zero Config
// has no defaults applied and must not be used for validation.
func (c Config) built() bool { return c.re != nil }

func (c Config) log() *slog.Logger {
	if c.logger == nil {
		return logger.NewNop()
	}
	return c.logger
}
