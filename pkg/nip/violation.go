package nip

import (
	"strings"

	"github.com/google/uuid"
)

// Placeholders substituted in message templates.
const (
	ParamValue   = "{{ value }}"
	ParamPattern = "{{ pattern }}"
)

// Violation describes why a value is not a valid NIP.
type Violation struct {
	Kind Kind
	// Value is the offending text after normalization.
	Value string
	// Pattern is the pattern that was used. Empty for checksum failures.
	Pattern string
	// Template is the configured message with its placeholders intact.
	Template string
}

// Code returns the stable identifier of the violation kind.
func (v *Violation) Code() uuid.UUID {
	return v.Kind.Code()
}

// Params returns the placeholder values used to render the message.
func (v *Violation) Params() map[string]string {
	params := map[string]string{
		ParamValue: formatValue(v.Value),
	}
	if v.Kind == KindPatternMismatch {
		params[ParamPattern] = v.Pattern
	}
	return params
}

// Message renders the template with its placeholders substituted.
func (v *Violation) Message() string {
	params := v.Params()
	pairs := make([]string, 0, len(params)*2)
	for k, val := range params {
		pairs = append(pairs, k, val)
	}
	return strings.NewReplacer(pairs...).Replace(v.Template)
}

// Error implements the error interface so a violation can travel as an error.
func (v *Violation) Error() string {
	return "nip: " + v.Kind.String() + ": " + v.Message()
}

func formatValue(s string) string {
	return `"` + s + `"`
}
