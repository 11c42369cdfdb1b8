package gomap

import (
	"encoding"
	"fmt"
	"math/big"
	"reflect"

	"github.com/SamuelMarks/serde-json-extensions/ir"
	"github.com/SamuelMarks/serde-json-extensions/parse"
)

// Marshaler is implemented by types that build their own value tree.
type Marshaler interface {
	MarshalValue() (*ir.Node, error)
}

// ToValue converts a Go value to a scalar-or-array value tree.
// Maps and structs have no representation and fail, except for
// single-entry maps under the sentinel keys.
func ToValue(v any, opts ...Option) (*ir.Node, error) {
	cfg := newMapConfig(opts...)
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string)
	return toReflectValue(reflect.ValueOf(v), "", true, visited, cfg)
}

// ToScalar converts a Go value to the scalar-only shape. Sequences fail
// in addition to everything ToValue rejects.
func ToScalar(v any, opts ...Option) (*ir.Scalar, error) {
	cfg := newMapConfig(opts...)
	if v == nil {
		return ir.ScalarNull(), nil
	}
	visited := make(map[uintptr]string)
	node, err := toReflectValue(reflect.ValueOf(v), "", false, visited, cfg)
	if err != nil {
		return nil, err
	}
	return ir.ScalarOf(node)
}

// toReflectValue converts a reflect.Value to a node. fieldPath is used
// for error reporting, arrayOK selects the shape, and visited tracks
// pointer addresses to detect circular references.
func toReflectValue(val reflect.Value, fieldPath string, arrayOK bool, visited map[uintptr]string, cfg *mapConfig) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}

	if node, ok, err := toSpecial(val, fieldPath, arrayOK, cfg); ok {
		return node, err
	}

	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if node, ok, err := toHooked(val, fieldPath, arrayOK); ok {
			return node, err
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected (previously seen at %s)", prevPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := toReflectValue(val.Elem(), fieldPath, arrayOK, visited, cfg)
		delete(visited, ptrAddr)
		return node, err
	}

	if node, ok, err := toHooked(val, fieldPath, arrayOK); ok {
		return node, err
	}
	if val.CanAddr() {
		if node, ok, err := toHooked(val.Addr(), fieldPath, arrayOK); ok {
			return node, err
		}
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromUint(val.Uint()), nil

	case reflect.Float32, reflect.Float64:
		// non-finite floats collapse to null
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toReflectSlice(val, fieldPath, arrayOK, visited, cfg)

	case reflect.Map:
		return toReflectMap(val, fieldPath, arrayOK, visited, cfg)

	case reflect.Struct:
		return nil, &TypeError{
			FieldPath: fieldPath,
			Expected:  shapeName(arrayOK),
			Actual:    "Object",
		}

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toReflectValue(val.Elem(), fieldPath, arrayOK, visited, cfg)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

// toSpecial handles the node, number and sentinel carrier types.
func toSpecial(val reflect.Value, fieldPath string, arrayOK bool, cfg *mapConfig) (*ir.Node, bool, error) {
	if !val.CanInterface() {
		return nil, false, nil
	}
	switch x := val.Interface().(type) {
	case ir.RawNumber:
		node, err := rawNumberNode(string(x), fieldPath, cfg)
		return node, true, err
	case ir.RawValue:
		node, err := rawValueNode(string(x), fieldPath, arrayOK, cfg)
		return node, true, err
	case ir.Number:
		node, err := numberNode(x, fieldPath, cfg)
		return node, true, err
	case *ir.Node:
		if x == nil {
			return ir.Null(), true, nil
		}
		node, err := checkShape(x.Clone(), fieldPath, arrayOK)
		return node, true, err
	case ir.Node:
		node, err := checkShape(x.Clone(), fieldPath, arrayOK)
		return node, true, err
	case *ir.Scalar:
		if x == nil {
			return ir.Null(), true, nil
		}
		return x.Node(), true, nil
	case ir.Scalar:
		return x.Node(), true, nil
	case *big.Int:
		if x == nil {
			return ir.Null(), true, nil
		}
		node, err := bigIntNode(x, fieldPath, cfg)
		return node, true, err
	case big.Int:
		node, err := bigIntNode(&x, fieldPath, cfg)
		return node, true, err
	}
	return nil, false, nil
}

// toHooked dispatches to user conversion hooks: Marshaler first, then
// encoding.TextMarshaler, which covers enum-like types with a text
// form.
func toHooked(val reflect.Value, fieldPath string, arrayOK bool) (*ir.Node, bool, error) {
	if !val.CanInterface() {
		return nil, false, nil
	}
	if m, ok := val.Interface().(Marshaler); ok {
		node, err := m.MarshalValue()
		if err != nil {
			return nil, true, &MarshalError{FieldPath: fieldPath, Message: "MarshalValue failed", Err: err}
		}
		node, err = checkShape(node, fieldPath, arrayOK)
		return node, true, err
	}
	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, true, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
		}
		return ir.FromString(string(text)), true, nil
	}
	return nil, false, nil
}

func checkShape(node *ir.Node, fieldPath string, arrayOK bool) (*ir.Node, error) {
	if node == nil {
		return ir.Null(), nil
	}
	if !arrayOK && node.Type == ir.ArrayType {
		return nil, &TypeError{
			FieldPath: fieldPath,
			Expected:  shapeName(false),
			Actual:    "Array",
		}
	}
	return node, nil
}

func rawNumberNode(lit string, fieldPath string, cfg *mapConfig) (*ir.Node, error) {
	n, err := ir.ParseNumber(lit)
	if err != nil {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("number payload %q", lit),
			Err:       err,
		}
	}
	return numberNode(n, fieldPath, cfg)
}

func numberNode(n ir.Number, fieldPath string, cfg *mapConfig) (*ir.Node, error) {
	if n.IsLiteral() && !cfg.arbitraryPrecision {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   n.String(),
			Err:       ir.ErrNumberOutOfRange,
		}
	}
	return ir.FromNumber(n), nil
}

func rawValueNode(raw string, fieldPath string, arrayOK bool, cfg *mapConfig) (*ir.Node, error) {
	node, err := parse.Parse([]byte(raw), cfg.parseOptions()...)
	if err != nil {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("raw payload %q", raw),
			Err:       err,
		}
	}
	return checkShape(node, fieldPath, arrayOK)
}

func bigIntNode(x *big.Int, fieldPath string, cfg *mapConfig) (*ir.Node, error) {
	if x.IsInt64() {
		return ir.FromInt(x.Int64()), nil
	}
	if x.IsUint64() {
		return ir.FromUint(x.Uint64()), nil
	}
	if !cfg.arbitraryPrecision {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   x.String(),
			Err:       ir.ErrNumberOutOfRange,
		}
	}
	n, err := ir.ParseNumber(x.String())
	if err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: x.String(), Err: err}
	}
	return ir.FromNumber(n), nil
}

func toReflectSlice(val reflect.Value, fieldPath string, arrayOK bool, visited map[uintptr]string, cfg *mapConfig) (*ir.Node, error) {
	if val.Kind() == reflect.Slice && val.IsNil() {
		return ir.Null(), nil
	}
	if !arrayOK {
		return nil, &TypeError{
			FieldPath: fieldPath,
			Expected:  shapeName(false),
			Actual:    "Array",
		}
	}

	if val.Kind() == reflect.Slice {
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected (previously seen at %s)", prevPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}

	length := val.Len()
	elements := make([]*ir.Node, 0, length)
	for i := 0; i < length; i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		elemNode, err := toReflectValue(val.Index(i), elemPath, arrayOK, visited, cfg)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elemNode)
	}
	return ir.FromSlice(elements), nil
}

// toReflectMap admits only single-entry maps under a sentinel key; any
// other map is object-shaped and fails. Keys are still encoded first so
// that unencodable keys report their own error.
func toReflectMap(val reflect.Value, fieldPath string, arrayOK bool, visited map[uintptr]string, cfg *mapConfig) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}

	if val.Len() == 1 {
		iter := val.MapRange()
		iter.Next()
		key, err := encodeKey(iter.Key(), fieldPath)
		if err != nil {
			return nil, err
		}
		switch ir.ClassifyKey(key, cfg.arbitraryPrecision, cfg.rawValues) {
		case ir.KeyNumber:
			return emitNumber(iter.Value(), fieldPath, cfg)
		case ir.KeyRaw:
			return emitRaw(iter.Value(), fieldPath, arrayOK, cfg)
		}
		return nil, &TypeError{
			FieldPath: fieldPath,
			Expected:  shapeName(arrayOK),
			Actual:    "Object",
		}
	}

	iter := val.MapRange()
	for iter.Next() {
		if _, err := encodeKey(iter.Key(), fieldPath); err != nil {
			return nil, err
		}
	}
	return nil, &TypeError{
		FieldPath: fieldPath,
		Expected:  shapeName(arrayOK),
		Actual:    "Object",
	}
}

// emitNumber converts the payload under NumberToken. Only a string
// payload is a numeral; anything else is an invalid number.
func emitNumber(val reflect.Value, fieldPath string, cfg *mapConfig) (*ir.Node, error) {
	payload, ok := stringPayload(val)
	if !ok {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("%s payload must be a string", ir.NumberToken),
			Err:       ir.ErrInvalidNumber,
		}
	}
	return rawNumberNode(payload, fieldPath, cfg)
}

// emitRaw converts the payload under RawToken by re-parsing it as wire
// text of the current shape.
func emitRaw(val reflect.Value, fieldPath string, arrayOK bool, cfg *mapConfig) (*ir.Node, error) {
	payload, ok := stringPayload(val)
	if !ok {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("%s payload must be a string", ir.RawToken),
			Err:       ir.ErrExpectedSomeValue,
		}
	}
	return rawValueNode(payload, fieldPath, arrayOK, cfg)
}

func stringPayload(val reflect.Value) (string, bool) {
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return "", false
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.String {
		return "", false
	}
	return val.String(), true
}

func shapeName(arrayOK bool) string {
	if arrayOK {
		return "Scalar or Array"
	}
	return "Scalar"
}
