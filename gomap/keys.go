package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/SamuelMarks/serde-json-extensions/encode"
	"github.com/SamuelMarks/serde-json-extensions/ir"
)

// encodeKey renders a map key as the string it would appear as in
// object syntax. Only keys with a natural string form encode; compound
// keys and non-finite float keys fail.
func encodeKey(val reflect.Value, fieldPath string) (string, error) {
	if val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return "", &MarshalError{
				FieldPath: fieldPath,
				Message:   "nil map key",
				Err:       ir.ErrKeyMustBeAString,
			}
		}
		return encodeKey(val.Elem(), fieldPath)
	}

	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return "", &MarshalError{FieldPath: fieldPath, Message: "map key MarshalText failed", Err: err}
		}
		return string(text), nil
	}
	if val.CanAddr() {
		if tm, ok := val.Addr().Interface().(encoding.TextMarshaler); ok {
			text, err := tm.MarshalText()
			if err != nil {
				return "", &MarshalError{FieldPath: fieldPath, Message: "map key MarshalText failed", Err: err}
			}
			return string(text), nil
		}
	}

	switch val.Kind() {
	case reflect.String:
		return val.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(val.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(val.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := val.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("map key %v", f),
				Err:       ir.ErrFloatKeyMustBeFinite,
			}
		}
		return encode.FormatFloat(f), nil
	}
	return "", &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("map key of type %s", val.Type()),
		Err:       ir.ErrKeyMustBeAString,
	}
}
