// Package nip validates Polish tax identification numbers (NIP).
//
// A NIP has ten digits; the last one is a check digit equal to the weighted
// sum of the first nine (weights 6, 5, 7, 2, 3, 4, 5, 6, 7) modulo 11.
// Validation runs in two steps. The text must first match a layout pattern
// built from the configuration, and only then is the check digit verified.
// The first failing step produces a Violation; there is never more than one.
//
// # Layouts
//
// By default only ten plain digits are accepted. Options widen or narrow that:
//
//   - WithAllowDashes accepts "DD-DDD-DDD-DD" and "DDD-DDD-DD-DD" next to plain digits.
//   - WithRequireDashes accepts the dashed layouts only (plain digits come back
//     when dashes are also allowed).
//   - WithAllowPrefix / WithRequirePrefix accept or demand a country prefix of
//     WithPrefixLength letters (2 by default), e.g. "PL3774988224".
//   - WithPattern replaces the generated pattern with a custom RE2 expression.
//     The layout options are then ignored; the checksum option is not.
//
// # Usage
//
//	v, err := nip.New(nip.WithAllowDashes(true), nip.WithNormalizer(sanitizer.Trim))
//	if err != nil {
//	    return err // invalid configuration
//	}
//
//	violation, err := v.Validate(input)
//	switch {
//	case err != nil:
//	    // input is not text (e.g. a struct or a slice): a programming error
//	case violation != nil:
//	    fmt.Println(violation.Code(), violation.Message())
//	}
//
// Absent values (nil, nil pointers) and empty strings are valid; use a
// separate "required" check to reject them.
//
// # Violations
//
// Violation.Kind is KindPatternMismatch or KindChecksumMismatch. Each kind has a
// stable code (InvalidPatternError, InvalidChecksumError) that can be stored
// or sent to clients. Messages are templates with {{ value }} and, for pattern
// failures, {{ pattern }} placeholders; Violation.Message renders them.
//
// TIN is an alias of Validator for code that names the check generically.
//
// A Validator holds no mutable state and is safe for concurrent use.
package nip
