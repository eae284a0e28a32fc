package nip

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// toText converts a value to the text that gets validated. The boolean result
// is false for absent values (nil and nil pointers).
func toText(value any) (string, bool, error) {
	switch v := value.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case *string:
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	case []byte:
		return string(v), true, nil
	case bool:
		if v {
			return "1", true, nil
		}
		return "", true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10), true, nil
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10), true, nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case fmt.Stringer:
		if isNilPointer(v) {
			return "", false, nil
		}
		return v.String(), true, nil
	case encoding.TextMarshaler:
		if isNilPointer(v) {
			return "", false, nil
		}
		b, err := v.MarshalText()
		if err != nil {
			return "", false, fmt.Errorf("%w: %T: %w", ErrUnexpectedValueKind, value, err)
		}
		return string(b), true, nil
	}

	return scalarText(value)
}

// scalarText handles defined types such as `type TaxID string` by their
// underlying kind. Pointers are followed; a nil pointer is absent.
func scalarText(value any) (string, bool, error) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Bool:
		if rv.Bool() {
			return "1", true, nil
		}
		return "", true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), true, nil
		}
	}
	return "", false, fmt.Errorf("%w: got %T", ErrUnexpectedValueKind, value)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
