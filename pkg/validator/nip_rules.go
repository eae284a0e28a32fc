package validator

import (
	"github.com/dmitrymomot/nipvalidator/pkg/nip"
)

// ValidNIP validates a Polish tax identification number with v. The value may
// be any text-like value accepted by nip.Validator.Validate; other kinds make
// Apply return nip.ErrUnexpectedValueKind.
func ValidNIP(field string, value any, v *nip.Validator) Rule {
	return Rule{
		Run: func(r Reporter) error {
			violation, err := v.Validate(value)
			if err != nil {
				return err
			}
			if violation != nil {
				r.Report(NIPError(field, violation))
			}
			return nil
		},
	}
}

// ValidNIPWith is ValidNIP for a one-off set of options. An invalid
// configuration is returned from Apply.
func ValidNIPWith(field string, value any, opts ...nip.Option) Rule {
	return Rule{
		Run: func(r Reporter) error {
			v, err := nip.New(opts...)
			if err != nil {
				return err
			}
			return ValidNIP(field, value, v).Run(r)
		},
	}
}

// NIPError converts a violation into a field error. The code is the
// violation's stable UUID and the translation values carry the raw
// placeholder values for message templates.
func NIPError(field string, violation *nip.Violation) ValidationError {
	values := map[string]any{
		"field": field,
		"value": violation.Value,
	}
	key := "validation.nip.checksum"
	if violation.Kind == nip.KindPatternMismatch {
		key = "validation.nip.pattern"
		values["pattern"] = violation.Pattern
	}

	return ValidationError{
		Field:             field,
		Message:           violation.Message(),
		Code:              violation.Code().String(),
		InvalidValue:      violation.Value,
		TranslationKey:    key,
		TranslationValues: values,
	}
}
