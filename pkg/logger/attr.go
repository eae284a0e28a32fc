package logger

import "log/slog"

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// A nil id yields an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Kind records the violation name under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Code records the violation code under the key "code".
func Code(code string) slog.Attr {
	return slog.String("code", code)
}

// Value records the validated value under the key "value".
func Value(v string) slog.Attr {
	return slog.String("value", v)
}

// Pattern records the pattern under the key "pattern".
func Pattern(p string) slog.Attr {
	return slog.String("pattern", p)
}

// Count records a counter under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
