package sanitizer

import "sort"

var registry = map[string]func(string) string{
	"trim":              Trim,
	"remove_whitespace": RemoveWhitespace,
	"upper":             ToUpper,
	"narrow_width":      NarrowWidth,
	"unify_dashes":      UnifyDashes,
	"strip_separators":  StripSeparators,
	"digits":            KeepDigits,
	"nip":               NormalizeNIP,
}

// ByName returns the transform registered under name.
func ByName(name string) (func(string) string, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names lists the registered transform names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
