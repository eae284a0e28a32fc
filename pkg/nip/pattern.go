package nip

import (
	"strconv"
	"strings"
)

// Digit layouts accepted by the generated pattern.
const (
	layoutGrouped2332 = `(\d{2}-\d{3}-\d{3}-\d{2})`
	layoutGrouped3322 = `(\d{3}-\d{3}-\d{2}-\d{2})`
	layoutPlain       = `(\d{10})`
)

// BuildPattern returns the anchored RE2 pattern for the given configuration.
// A custom pattern is returned unchanged.
//
// With every option enabled the result is:
//
//	^([A-Za-z]{2})?((\d{2}-\d{3}-\d{3}-\d{2})|(\d{3}-\d{3}-\d{2}-\d{2})|(\d{10}))$
func BuildPattern(cfg Config) string {
	if cfg.pattern != "" {
		return cfg.pattern
	}

	var b strings.Builder
	b.WriteString("^")

	if cfg.prefixLength > 0 && (cfg.requirePrefix || cfg.allowPrefix) {
		b.WriteString(`([A-Za-z]{`)
		b.WriteString(strconv.Itoa(cfg.prefixLength))
		b.WriteString(`})`)
		if !cfg.requirePrefix {
			b.WriteString("?")
		}
	}

	if cfg.requireDashes || cfg.allowDashes {
		b.WriteString("(")
		b.WriteString(layoutGrouped2332)
		b.WriteString("|")
		b.WriteString(layoutGrouped3322)
		// Plain digits stay acceptable only when dashes are merely allowed.
		if cfg.allowDashes {
			b.WriteString("|")
			b.WriteString(layoutPlain)
		}
		b.WriteString(")")
	} else {
		b.WriteString(layoutPlain)
	}

	b.WriteString("$")
	return b.String()
}
