package nip_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nipvalidator/pkg/logger"
	"github.com/dmitrymomot/nipvalidator/pkg/nip"
	"github.com/dmitrymomot/nipvalidator/pkg/sanitizer"
)

var (
	validPlain        = []string{"3774988224", "3784078972", "7745293711", "1239664059", "1589583841"}
	invalidChecksums  = []string{"8761287352", "1827326319", "9248102823", "8876096543", "1632349987"}
	mixedDashes       = []string{"3774988224", "37-840-789-72", "77-452-937-11", "123-966-40-59", "1589583841"}
	dashedOnly        = []string{"37-749-882-24", "37-840-789-72", "77-452-937-11", "123-966-40-59", "158-958-38-41"}
	mixedPrefix       = []string{"PL3774988224", "EN3784078972", "DE7745293711", "1239664059", "1589583841"}
	threeLetterPrefix = []string{"APL3774988224", "BEN3784078972", "CDE7745293711", "DAA1239664059", "EBB1589583841"}
	dottedValid       = []string{"15.757.258.57", "15.644.738.72", "56.605.269.52", "15.706.794.37", "56.758.226.68"}
	dottedInvalid     = []string{"87.612.873.52", "18.273.263.19", "92.481.028.23", "88.760.965.43", "16.323.499.87"}
)

const dottedPattern = `^(\d{2}.\d{3}.\d{3}.\d{2})$`

func assertValid(t *testing.T, v *nip.Validator, value any) {
	t.Helper()
	violation, err := v.Validate(value)
	require.NoError(t, err)
	assert.Nil(t, violation, "expected %v to be valid", value)
}

func assertViolation(t *testing.T, v *nip.Validator, value string, kind nip.Kind) *nip.Violation {
	t.Helper()
	violation, err := v.Validate(value)
	require.NoError(t, err)
	require.NotNil(t, violation, "expected %s to be invalid", value)
	assert.Equal(t, kind, violation.Kind)
	assert.Equal(t, value, violation.Value)
	return violation
}

func TestValidator_EmptyValues(t *testing.T) {
	t.Parallel()

	configs := map[string][]nip.Option{
		"default":        nil,
		"require dashes": {nip.WithRequireDashes(true)},
		"require prefix": {nip.WithRequirePrefix(true)},
		"custom pattern": {nip.WithPattern(`^x$`)},
	}

	for name, opts := range configs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v := nip.MustNew(opts...)

			var nilString *string
			assertValid(t, v, nil)
			assertValid(t, v, "")
			assertValid(t, v, nilString)
			assertValid(t, v, false)
			assert.Nil(t, v.ValidateString(""))
		})
	}
}

func TestValidator_Default(t *testing.T) {
	t.Parallel()
	v := nip.MustNew()

	t.Run("valid checksums", func(t *testing.T) {
		for _, value := range validPlain {
			assertValid(t, v, value)
		}
	})

	t.Run("invalid checksums", func(t *testing.T) {
		for _, value := range invalidChecksums {
			violation := assertViolation(t, v, value, nip.KindChecksumMismatch)
			assert.Equal(t, nip.InvalidChecksumError, violation.Code().String())
			assert.Empty(t, violation.Pattern)
			assert.Equal(t, nip.DefaultMessage, violation.Message())
		}
	})

	t.Run("dashes are rejected", func(t *testing.T) {
		violation := assertViolation(t, v, "37-749-882-24", nip.KindPatternMismatch)
		assert.Equal(t, nip.InvalidPatternError, violation.Code().String())
		assert.Equal(t, `^(\d{10})$`, violation.Pattern)
	})
}

func TestValidator_AllowDashes(t *testing.T) {
	t.Parallel()
	v := nip.MustNew(nip.WithAllowDashes(true), nip.WithRequireDashes(false))

	for _, value := range mixedDashes {
		assertValid(t, v, value)
	}

	assertViolation(t, v, "37 840 789 72", nip.KindPatternMismatch)
	assertViolation(t, v, "37/840/789/72", nip.KindPatternMismatch)
}

func TestValidator_RequireDashes(t *testing.T) {
	t.Parallel()
	v := nip.MustNew(nip.WithRequireDashes(true), nip.WithAllowDashes(false))

	t.Run("rejects plain digits", func(t *testing.T) {
		for _, value := range validPlain {
			violation := assertViolation(t, v, value, nip.KindPatternMismatch)
			assert.Equal(t, v.Pattern(), violation.Pattern)
		}
	})

	t.Run("accepts both dashed layouts", func(t *testing.T) {
		for _, value := range dashedOnly {
			assertValid(t, v, value)
		}
	})
}

func TestValidator_Prefix(t *testing.T) {
	t.Parallel()

	t.Run("allowing accepts with and without", func(t *testing.T) {
		v := nip.MustNew(nip.WithAllowPrefix(true), nip.WithRequirePrefix(false))
		for _, value := range mixedPrefix {
			assertValid(t, v, value)
		}
	})

	t.Run("requiring rejects without", func(t *testing.T) {
		v := nip.MustNew(nip.WithRequirePrefix(true), nip.WithAllowPrefix(false))
		for _, value := range validPlain {
			assertViolation(t, v, value, nip.KindPatternMismatch)
		}
	})

	t.Run("custom length", func(t *testing.T) {
		v := nip.MustNew(nip.WithRequirePrefix(true), nip.WithPrefixLength(3))
		for _, value := range threeLetterPrefix {
			assertValid(t, v, value)
		}
	})

	t.Run("length is strict", func(t *testing.T) {
		v := nip.MustNew(nip.WithRequirePrefix(true), nip.WithPrefixLength(1))
		for _, value := range threeLetterPrefix {
			assertViolation(t, v, value, nip.KindPatternMismatch)
		}
	})

	t.Run("prefix letters do not count as digits", func(t *testing.T) {
		v := nip.MustNew(nip.WithRequirePrefix(true))
		assertViolation(t, v, "PL8761287352", nip.KindChecksumMismatch)
	})
}

func TestValidator_CustomPattern(t *testing.T) {
	t.Parallel()

	t.Run("valid checksum ignores layout flags", func(t *testing.T) {
		v := nip.MustNew(
			nip.WithPattern(dottedPattern),
			nip.WithRequireDashes(true),
			nip.WithRequirePrefix(true),
		)
		assert.Equal(t, dottedPattern, v.Pattern())
		for _, value := range dottedValid {
			assertValid(t, v, value)
		}
	})

	t.Run("invalid checksum", func(t *testing.T) {
		v := nip.MustNew(nip.WithPattern(dottedPattern))
		for _, value := range dottedInvalid {
			violation := assertViolation(t, v, value, nip.KindChecksumMismatch)
			assert.Equal(t, `"`+value+`"`, violation.Params()[nip.ParamValue])
		}
	})

	t.Run("checksum disabled", func(t *testing.T) {
		v := nip.MustNew(nip.WithPattern(dottedPattern), nip.WithChecksum(false))
		for _, value := range dottedInvalid {
			assertValid(t, v, value)
		}
	})

	t.Run("fewer than ten digits is a checksum failure", func(t *testing.T) {
		v := nip.MustNew(nip.WithPattern(`^\d+$`))
		assertViolation(t, v, "12345", nip.KindChecksumMismatch)
	})
}

func TestValidator_Messages(t *testing.T) {
	t.Parallel()

	t.Run("custom checksum message", func(t *testing.T) {
		v := nip.MustNew(nip.WithChecksumMessage("My custom checksum message"))
		for _, value := range invalidChecksums {
			violation := assertViolation(t, v, value, nip.KindChecksumMismatch)
			assert.Equal(t, "My custom checksum message", violation.Message())
		}
	})

	t.Run("custom pattern message", func(t *testing.T) {
		v := nip.MustNew(nip.WithRequireDashes(true), nip.WithPatternMessage("My custom pattern message"))
		for _, value := range invalidChecksums {
			violation := assertViolation(t, v, value, nip.KindPatternMismatch)
			assert.Equal(t, "My custom pattern message", violation.Message())
			assert.Equal(t, map[string]string{
				nip.ParamValue:   `"` + value + `"`,
				nip.ParamPattern: v.Pattern(),
			}, violation.Params())
		}
	})

	t.Run("placeholders are substituted", func(t *testing.T) {
		v := nip.MustNew(
			nip.WithPatternMessage("{{ value }} does not match {{ pattern }}"),
			nip.WithChecksumMessage("{{ value }} has a wrong check digit"),
		)

		violation := assertViolation(t, v, "abc", nip.KindPatternMismatch)
		assert.Equal(t, `"abc" does not match ^(\d{10})$`, violation.Message())
		assert.Contains(t, violation.Error(), "INVALID_PATTERN_ERROR")

		violation = assertViolation(t, v, "8761287352", nip.KindChecksumMismatch)
		assert.Equal(t, `"8761287352" has a wrong check digit`, violation.Message())
		assert.NotContains(t, violation.Params(), nip.ParamPattern)
	})
}

func TestValidator_Normalizer(t *testing.T) {
	t.Parallel()

	t.Run("applied before matching", func(t *testing.T) {
		v := nip.MustNew(nip.WithNormalizer(func(s string) string { return s + "1" }))
		assertValid(t, v, "111111111")
	})

	t.Run("trim", func(t *testing.T) {
		v := nip.MustNew(nip.WithNormalizer(sanitizer.Trim))
		assertValid(t, v, "   1111111111 ")
	})

	t.Run("violation carries normalized value", func(t *testing.T) {
		v := nip.MustNew(nip.WithNormalizer(sanitizer.Trim))
		violation, err := v.Validate("  8761287352  ")
		require.NoError(t, err)
		require.NotNil(t, violation)
		assert.Equal(t, "8761287352", violation.Value)
	})

	t.Run("empty result is valid", func(t *testing.T) {
		v := nip.MustNew(nip.WithNormalizer(sanitizer.Trim))
		assertValid(t, v, "    ")
	})
}

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

type textValue struct{ b []byte }

func (t *textValue) MarshalText() ([]byte, error) { return t.b, nil }

type (
	taxID   string
	taxNum  int64
	taxUint uint64
	flag    bool
	raw     []byte
)

type brokenText struct{}

func (brokenText) MarshalText() ([]byte, error) { return nil, errors.New("broken") }

func TestValidator_ValueKinds(t *testing.T) {
	t.Parallel()
	v := nip.MustNew()

	t.Run("scalars are converted to text", func(t *testing.T) {
		assertValid(t, v, 1111111111)
		assertValid(t, v, int64(3774988224))
		assertValid(t, v, uint64(3774988224))
		assertValid(t, v, float64(3774988224))
		assertValid(t, v, []byte("3774988224"))

		s := "3774988224"
		assertValid(t, v, &s)

		violation, err := v.Validate(int64(8761287352))
		require.NoError(t, err)
		require.NotNil(t, violation)
		assert.Equal(t, nip.KindChecksumMismatch, violation.Kind)

		violation, err = v.Validate(true)
		require.NoError(t, err)
		require.NotNil(t, violation)
		assert.Equal(t, "1", violation.Value)
	})

	t.Run("defined scalar types use their underlying kind", func(t *testing.T) {
		assertValid(t, v, taxID("3774988224"))
		assertValid(t, v, taxNum(3774988224))
		assertValid(t, v, taxUint(3774988224))
		assertValid(t, v, raw("3774988224"))
		assertValid(t, v, taxID(""))
		assertValid(t, v, flag(false))

		id := taxID("3774988224")
		assertValid(t, v, &id)

		var nilID *taxID
		assertValid(t, v, nilID)

		violation, err := v.Validate(taxID("8761287352"))
		require.NoError(t, err)
		require.NotNil(t, violation)
		assert.Equal(t, nip.KindChecksumMismatch, violation.Kind)
		assert.Equal(t, "8761287352", violation.Value)

		violation, err = v.Validate(taxNum(123))
		require.NoError(t, err)
		require.NotNil(t, violation)
		assert.Equal(t, nip.KindPatternMismatch, violation.Kind)

		violation, err = v.Validate(flag(true))
		require.NoError(t, err)
		require.NotNil(t, violation)
		assert.Equal(t, "1", violation.Value)
	})

	t.Run("stringers and text marshalers are accepted", func(t *testing.T) {
		assertValid(t, v, stringer{"1111111111"})
		assertValid(t, v, &textValue{b: []byte("1111111111")})

		var nilText *textValue
		assertValid(t, v, nilText)
	})

	t.Run("other kinds are a contract violation", func(t *testing.T) {
		for _, value := range []any{
			[]string{},
			map[string]string{},
			struct{}{},
			[]int{1, 2},
			&struct{ s string }{"3774988224"},
			brokenText{},
		} {
			violation, err := v.Validate(value)
			assert.Nil(t, violation)
			assert.ErrorIs(t, err, nip.ErrUnexpectedValueKind, "%T", value)
		}
	})
}

func TestValidator_Logging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
	v := nip.MustNew(nip.WithLogger(log))

	assertValid(t, v, "3774988224")
	assert.Empty(t, buf.String())

	assertViolation(t, v, "8761287352", nip.KindChecksumMismatch)
	out := buf.String()
	assert.Contains(t, out, "nip rejected")
	assert.Contains(t, out, nip.InvalidChecksumError)
	assert.Contains(t, out, "8761287352")
}

func TestValidator_Concurrent(t *testing.T) {
	t.Parallel()
	v := nip.MustNew(nip.WithAllowDashes(true))

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value := validPlain[i%len(validPlain)]
			assert.Nil(t, v.ValidateString(value))
			assert.NotNil(t, v.ValidateString(invalidChecksums[i%len(invalidChecksums)]))
		}()
	}
	wg.Wait()
}

func TestValidate(t *testing.T) {
	t.Parallel()

	violation, err := nip.Validate("37-840-789-72", nip.WithAllowDashes(true))
	require.NoError(t, err)
	assert.Nil(t, violation)

	violation, err = nip.Validate("3774988224", nip.WithRequireDashes(true))
	require.NoError(t, err)
	require.NotNil(t, violation)
	assert.Equal(t, nip.KindPatternMismatch, violation.Kind)

	_, err = nip.Validate("3774988224", nip.WithPattern("("))
	assert.ErrorIs(t, err, nip.ErrInvalidConfig)
}

func TestValidateConstraint(t *testing.T) {
	t.Parallel()

	cfg, err := nip.NewConfig(nip.WithRequireDashes(true))
	require.NoError(t, err)
	checksum := false
	settings := nip.Settings{Checksum: &checksum}

	constraints := map[string]any{
		"config":           cfg,
		"config pointer":   &cfg,
		"settings":         settings,
		"settings pointer": &settings,
		"validator":        nip.MustNew(),
		"tin alias":        (*nip.TIN)(nip.MustNew()),
	}
	for name, c := range constraints {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := nip.ValidateConstraint("3774988224", c)
			assert.NoError(t, err)
		})
	}

	t.Run("config semantics are kept", func(t *testing.T) {
		violation, err := nip.ValidateConstraint("3774988224", cfg)
		require.NoError(t, err)
		require.NotNil(t, violation)
		assert.Equal(t, nip.KindPatternMismatch, violation.Kind)

		violation, err = nip.ValidateConstraint("8761287352", settings)
		require.NoError(t, err)
		assert.Nil(t, violation)
	})

	t.Run("zero config is rejected", func(t *testing.T) {
		for _, c := range []any{nip.Config{}, &nip.Config{}} {
			violation, err := nip.ValidateConstraint("8761287352", c)
			assert.Nil(t, violation)
			assert.ErrorIs(t, err, nip.ErrUnexpectedConstraint, "%T", c)
			assert.ErrorIs(t, err, nip.ErrUnbuiltConfig, "%T", c)
		}

		violation, err := nip.ValidateConstraint("8761287352", cfg)
		require.NoError(t, err)
		require.NotNil(t, violation)
	})

	t.Run("unsupported constraints", func(t *testing.T) {
		var nilValidator *nip.Validator
		for _, c := range []any{nil, "pattern", 42, nilValidator, struct{}{}} {
			_, err := nip.ValidateConstraint("", c)
			assert.ErrorIs(t, err, nip.ErrUnexpectedConstraint, "%T", c)
		}
	})
}

func TestMustNew_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { nip.MustNew(nip.WithPrefixLength(-1)) })
}

func TestValidator_IsValid(t *testing.T) {
	t.Parallel()
	v := nip.MustNew(nip.WithNormalizer(strings.TrimSpace))
	assert.True(t, v.IsValid(" 3774988224 "))
	assert.False(t, v.IsValid("8761287352"))
}
