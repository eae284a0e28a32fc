// Package commands contains the nipvalidator command implementations.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/nipvalidator/pkg/clientip"
	"github.com/dmitrymomot/nipvalidator/pkg/config"
	"github.com/dmitrymomot/nipvalidator/pkg/logger"
	"github.com/dmitrymomot/nipvalidator/pkg/nip"
	"github.com/dmitrymomot/nipvalidator/pkg/requestid"
)

// EnvPrefix is prepended to every environment variable the commands read.
const EnvPrefix = "NIP_"

var (
	// ErrInvalidValues is returned by RunCheck when at least one value was rejected.
	ErrInvalidValues = errors.New("one or more values are not valid NIP numbers")
	// ErrSettingsFile is returned when the YAML settings file cannot be read.
	ErrSettingsFile = errors.New("failed to read settings file")
	// ErrInvalidFlag is returned for flag values outside the accepted set.
	ErrInvalidFlag = errors.New("invalid flag value")
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// Overrides are settings given on the command line. Nil fields were not set
// and keep the value from the environment or the settings file.
type Overrides struct {
	Pattern       *string
	NoChecksum    bool
	AllowDashes   *bool
	RequireDashes *bool
	AllowPrefix   *bool
	RequirePrefix *bool
	PrefixLength  *int
	Normalizers   []string
}

// LoadSettings merges settings from the environment (NIP_ prefix), the
// optional YAML file and the command line, in that order.
func LoadSettings(file string, o Overrides, opts ...config.Option) (nip.Settings, error) {
	var s nip.Settings
	if err := config.Load(&s, append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)...); err != nil {
		return nip.Settings{}, err
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nip.Settings{}, errors.Join(ErrSettingsFile, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nip.Settings{}, errors.Join(ErrSettingsFile, fmt.Errorf("%s: %w", file, err))
		}
	}

	if o.Pattern != nil {
		s.Pattern = *o.Pattern
	}
	if o.NoChecksum {
		off := false
		s.Checksum = &off
	}
	if o.AllowDashes != nil {
		s.AllowDashes = *o.AllowDashes
	}
	if o.RequireDashes != nil {
		s.RequireDashes = *o.RequireDashes
	}
	if o.AllowPrefix != nil {
		s.AllowPrefix = *o.AllowPrefix
	}
	if o.RequirePrefix != nil {
		s.RequirePrefix = *o.RequirePrefix
	}
	if o.PrefixLength != nil {
		n := *o.PrefixLength
		s.PrefixLength = &n
	}
	if len(o.Normalizers) > 0 {
		s.Normalizers = o.Normalizers
	}

	return s, nil
}

// NewLogger builds the command logger. Records go to w, stderr by default.
func NewLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	f := logger.Format(strings.ToLower(format))
	if f != logger.FormatJSON && f != logger.FormatText {
		return nil, fmt.Errorf("%w: log format %q, expected json or text", ErrInvalidFlag, format)
	}
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return nil, errors.Join(ErrInvalidFlag, err)
	}
	if w == nil {
		w = os.Stderr
	}
	return logger.New(
		logger.WithOutput(w),
		logger.WithFormat(f),
		logger.WithLevel(lvl),
		logger.WithAttr(slog.String("service", "nipvalidator")),
		logger.WithContextExtractors(requestid.Extractor(), clientip.Extractor()),
	), nil
}
