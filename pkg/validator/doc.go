// Package validator collects field-level validation errors for forms and API
// payloads and hosts the NIP rule.
//
// A Rule is either a static Check with a fixed ValidationError, or a Run
// function that reports zero or more errors through a Reporter. Apply runs the
// rules in order and returns the collected ValidationErrors, which satisfies
// the error interface:
//
//	err := validator.Apply(
//	    validator.Required("nip", form.NIP),
//	    validator.ValidNIP("nip", form.NIP, nipValidator),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.Field, e.Code, e.Message)
//	    }
//	}
//
// Rules treat empty values as valid unless they check presence, so Required is
// combined with the format rules.
//
// # Errors
//
// Apply returns two kinds of errors. ValidationErrors describe bad data and
// are expected. Any other error, for example nip.ErrUnexpectedValueKind, means
// a rule was used incorrectly; Apply stops at the first such error and
// returns it unchanged.
package validator
