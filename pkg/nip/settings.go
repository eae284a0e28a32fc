package nip

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/nipvalidator/pkg/sanitizer"
)

// Settings is the plain, serializable form of a Config. It is what the CLI
// reads from YAML, the HTTP API accepts as JSON, and pkg/config fills from the
// environment.
//
// Nil pointer fields keep their defaults. Normalizers are referenced by name,
// see sanitizer.Names for the accepted values; several names are applied in order.
type Settings struct {
	Pattern         string   `env:"PATTERN" yaml:"pattern" json:"pattern,omitempty"`
	Checksum        *bool    `env:"CHECKSUM" yaml:"checksum" json:"checksum,omitempty"`
	AllowDashes     bool     `env:"ALLOW_DASHES" yaml:"allow_dashes" json:"allow_dashes,omitempty"`
	RequireDashes   bool     `env:"REQUIRE_DASHES" yaml:"require_dashes" json:"require_dashes,omitempty"`
	AllowPrefix     bool     `env:"ALLOW_PREFIX" yaml:"allow_prefix" json:"allow_prefix,omitempty"`
	RequirePrefix   bool     `env:"REQUIRE_PREFIX" yaml:"require_prefix" json:"require_prefix,omitempty"`
	PrefixLength    *int     `env:"PREFIX_LENGTH" yaml:"prefix_length" json:"prefix_length,omitempty"`
	Normalizers     []string `env:"NORMALIZERS" envSeparator:"," yaml:"normalizers" json:"normalizers,omitempty"`
	PatternMessage  string   `env:"PATTERN_MESSAGE" yaml:"pattern_message" json:"pattern_message,omitempty"`
	ChecksumMessage string   `env:"CHECKSUM_MESSAGE" yaml:"checksum_message" json:"checksum_message,omitempty"`
}

// Options converts the settings to options. Unknown normalizer names produce
// an option that fails with ErrUnknownNormalizer.
func (s Settings) Options() []Option {
	opts := []Option{
		WithAllowDashes(s.AllowDashes),
		WithRequireDashes(s.RequireDashes),
		WithAllowPrefix(s.AllowPrefix),
		WithRequirePrefix(s.RequirePrefix),
	}

	if s.Pattern != "" {
		opts = append(opts, WithPattern(s.Pattern))
	}
	if s.Checksum != nil {
		opts = append(opts, WithChecksum(*s.Checksum))
	}
	if s.PrefixLength != nil {
		opts = append(opts, WithPrefixLength(*s.PrefixLength))
	}
	if s.PatternMessage != "" {
		opts = append(opts, WithPatternMessage(s.PatternMessage))
	}
	if s.ChecksumMessage != "" {
		opts = append(opts, WithChecksumMessage(s.ChecksumMessage))
	}
	if len(s.Normalizers) > 0 {
		opts = append(opts, withNamedNormalizers(s.Normalizers))
	}

	return opts
}

// Config builds a Config from the settings followed by extra options.
func (s Settings) Config(extra ...Option) (Config, error) {
	return NewConfig(append(s.Options(), extra...)...)
}

// Validator builds a Validator from the settings followed by extra options.
func (s Settings) Validator(extra ...Option) (*Validator, error) {
	return New(append(s.Options(), extra...)...)
}

func withNamedNormalizers(names []string) Option {
	return func(c *Config) error {
		fns := make([]func(string) string, 0, len(names))
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			fn, ok := sanitizer.ByName(name)
			if !ok {
				return fmt.Errorf("%w: %q (known: %s)", ErrUnknownNormalizer, name, strings.Join(sanitizer.Names(), ", "))
			}
			fns = append(fns, fn)
		}
		if len(fns) == 0 {
			return nil
		}
		c.normalizer = Normalizer(sanitizer.Compose(fns...))
		return nil
	}
}
