package validator

import (
	validation "github.com/jellydator/validation"

	"github.com/dmitrymomot/nipvalidator/pkg/nip"
)

// NIP adapts a nip.Validator to github.com/jellydator/validation:
//
//	validation.ValidateStruct(&form,
//		validation.Field(&form.TaxID, validation.Required, validator.NIP{Validator: v}),
//	)
//
// Violations become validation.Error values whose code is the violation's
// stable UUID. Values that cannot be read as text are internal errors.
type NIP struct {
	Validator *nip.Validator
}

// Validate implements validation.Rule.
func (r NIP) Validate(value any) error {
	v := r.Validator
	if v == nil {
		var err error
		if v, err = nip.New(); err != nil {
			return validation.NewInternalError(err)
		}
	}

	violation, err := v.Validate(value)
	if err != nil {
		return validation.NewInternalError(err)
	}
	if violation == nil {
		return nil
	}
	return validation.NewError(violation.Code().String(), violation.Message())
}
