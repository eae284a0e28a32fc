// Package sanitizer provides small string transforms used to clean up NIP input
// before it is validated.
//
// Users paste tax numbers from invoices, PDFs and spreadsheets, so the raw text
// often carries surrounding whitespace, non-breaking spaces, full-width digits
// or lower-case country prefixes. Each helper fixes one of those problems and
// can be combined with Apply or Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.NarrowWidth,
//	    sanitizer.RemoveWhitespace,
//	    sanitizer.ToUpper,
//	)
//
//	clean(" pl ３７７４９８８２２４ ") // "PL3774988224"
//
// Helpers can also be looked up by name with ByName, which is how nip.Settings
// resolves the normalizers listed in YAML, JSON or environment configuration.
//
// None of the helpers returns an error and none keeps state, so they are safe
// for concurrent use.
package sanitizer
