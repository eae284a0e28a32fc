package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Trim removes leading and trailing whitespace, including non-breaking spaces.
func Trim(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}

// RemoveWhitespace drops every whitespace character, wherever it appears.
func RemoveWhitespace(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// NarrowWidth folds full-width digits, letters and punctuation to their ASCII
// forms, e.g. "３７－８４０" becomes "37-840".
func NarrowWidth(s string) string {
	return width.Narrow.String(s)
}

// UnifyDashes replaces typographic dashes and minus signs with "-".
func UnifyDashes(s string) string {
	return dashReplacer.Replace(s)
}

var dashReplacer = strings.NewReplacer(
	"\u2010", "-", // hyphen
	"\u2011", "-", // non-breaking hyphen
	"\u2012", "-", // figure dash
	"\u2013", "-", // en dash
	"\u2014", "-", // em dash
	"\u2212", "-", // minus sign
)

// StripSeparators removes the characters people use to group NIP digits:
// whitespace, dashes, dots, slashes and underscores.
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == '-', r == '.', r == '/', r == '_':
			return -1
		}
		return r
	}, UnifyDashes(s))
}

// KeepDigits removes every character that is not an ASCII digit.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// NormalizeNIP is the recommended normalizer for user input: it narrows
// full-width characters, unifies dashes, drops whitespace and upper-cases the
// country prefix. Dashes are kept so grouped layouts still match.
func NormalizeNIP(s string) string {
	return Apply(s, NarrowWidth, UnifyDashes, RemoveWhitespace, ToUpper)
}
