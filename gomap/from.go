package gomap

import (
	"encoding"
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/SamuelMarks/serde-json-extensions/encode"
	"github.com/SamuelMarks/serde-json-extensions/ir"
)

// Unmarshaler is implemented by types that populate themselves from a
// value tree.
type Unmarshaler interface {
	UnmarshalValue(*ir.Node) error
}

// Ignore absorbs any value without recording it, for positions whose
// content is irrelevant.
type Ignore struct{}

// FromValue converts a value tree to a Go value. v must be a non-nil
// pointer to the target.
func FromValue(node *ir.Node, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromReflectValue(node, val.Elem(), "")
}

// FromScalar converts a scalar to a Go value through the widened node.
func FromScalar(s *ir.Scalar, v any) error {
	if s == nil {
		return &UnmarshalError{Message: "source scalar is nil"}
	}
	return FromValue(s.Node(), v)
}

func fromReflectValue(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node == nil {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   "source node is nil",
		}
	}

	if val.CanAddr() {
		if handled, err := assignSpecial(node, val.Addr(), fieldPath); handled {
			return err
		}
	}

	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if node.Type == ir.NullType {
			if val.CanSet() {
				val.Set(reflect.Zero(typ))
			}
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		if handled, err := assignSpecial(node, val, fieldPath); handled {
			return err
		}
		return fromReflectValue(node, val.Elem(), fieldPath)
	}

	if node.Type == ir.NullType {
		if val.CanSet() {
			val.Set(reflect.Zero(typ))
		}
		return nil
	}

	switch kind {
	case reflect.String:
		return fromToString(node, val, fieldPath)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromToInt(node, val, fieldPath)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromToUint(node, val, fieldPath)

	case reflect.Float32, reflect.Float64:
		return fromToFloat(node, val, fieldPath)

	case reflect.Bool:
		return fromToBool(node, val, fieldPath)

	case reflect.Slice:
		return fromToSlice(node, val, fieldPath)

	case reflect.Array:
		return fromToArray(node, val, fieldPath)

	case reflect.Interface:
		return fromToInterface(node, val, fieldPath)

	case reflect.Map, reflect.Struct:
		return &TypeError{
			FieldPath: fieldPath,
			Expected:  shapeName(true),
			Actual:    "Object",
		}

	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

// assignSpecial fills node, number and sentinel carrier targets, and
// dispatches to the user hooks. ptr is a pointer to the target.
func assignSpecial(node *ir.Node, ptr reflect.Value, fieldPath string) (bool, error) {
	if !ptr.CanInterface() {
		return false, nil
	}
	switch x := ptr.Interface().(type) {
	case *ir.Node:
		node.CloneTo(x)
		return true, nil
	case *ir.Scalar:
		sc, err := ir.ScalarOf(node)
		if err != nil {
			return true, &UnmarshalError{FieldPath: fieldPath, Message: "narrowing to scalar", Err: err}
		}
		*x = *sc
		return true, nil
	case *ir.Number:
		if node.Type != ir.NumberType {
			return true, &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
		}
		*x = node.Number
		return true, nil
	case *ir.RawNumber:
		if node.Type != ir.NumberType {
			return true, &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
		}
		*x = ir.RawNumber(node.Number.String())
		return true, nil
	case *ir.RawValue:
		// re-render the source node back to wire text
		*x = ir.RawValue(encode.WireString(node))
		return true, nil
	case *big.Int:
		return true, fromToBigInt(node, x, fieldPath)
	case *Ignore:
		return true, nil
	case Unmarshaler:
		if err := x.UnmarshalValue(node); err != nil {
			return true, &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalValue failed", Err: err}
		}
		return true, nil
	case encoding.TextUnmarshaler:
		if node.Type != ir.StringType {
			return true, &TypeError{FieldPath: fieldPath, Expected: "String", Actual: node.Type.String()}
		}
		if err := x.UnmarshalText([]byte(node.String)); err != nil {
			return true, &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalText failed", Err: err}
		}
		return true, nil
	}
	return false, nil
}

func fromToString(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.StringType {
		return &TypeError{FieldPath: fieldPath, Expected: "String", Actual: node.Type.String()}
	}
	if val.CanSet() {
		val.SetString(node.String)
	}
	return nil
}

func fromToBool(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.BoolType {
		return &TypeError{FieldPath: fieldPath, Expected: "Bool", Actual: node.Type.String()}
	}
	if val.CanSet() {
		val.SetBool(node.Bool)
	}
	return nil
}

func fromToInt(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.NumberType {
		return &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
	}
	i, ok := node.Number.Int64()
	if !ok || val.OverflowInt(i) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("%s does not fit %s", node.Number.String(), val.Type()),
			Err:       ir.ErrNumberOutOfRange,
		}
	}
	if val.CanSet() {
		val.SetInt(i)
	}
	return nil
}

func fromToUint(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.NumberType {
		return &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
	}
	u, ok := node.Number.Uint64()
	if !ok || val.OverflowUint(u) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("%s does not fit %s", node.Number.String(), val.Type()),
			Err:       ir.ErrNumberOutOfRange,
		}
	}
	if val.CanSet() {
		val.SetUint(u)
	}
	return nil
}

func fromToFloat(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.NumberType {
		return &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
	}
	f, ok := node.Number.Float64()
	if !ok {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("%s does not fit float64", node.Number.String()),
			Err:       ir.ErrNumberOutOfRange,
		}
	}
	if val.Kind() == reflect.Float32 && val.OverflowFloat(f) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("%s does not fit float32", node.Number.String()),
			Err:       ir.ErrNumberOutOfRange,
		}
	}
	if val.CanSet() {
		val.SetFloat(f)
	}
	return nil
}

func fromToBigInt(node *ir.Node, x *big.Int, fieldPath string) error {
	if node.Type != ir.NumberType {
		return &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
	}
	if i, ok := node.Number.Int64(); ok {
		x.SetInt64(i)
		return nil
	}
	if u, ok := node.Number.Uint64(); ok {
		x.SetUint64(u)
		return nil
	}
	if _, ok := x.SetString(node.Number.String(), 10); !ok {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("%s is not an integer", node.Number.String()),
			Err:       ir.ErrInvalidNumber,
		}
	}
	return nil
}

func fromToSlice(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.Type().Elem().Kind() == reflect.Uint8 {
		return fromToBytes(node, val, fieldPath)
	}
	if node.Type != ir.ArrayType {
		return &TypeError{FieldPath: fieldPath, Expected: "Array", Actual: node.Type.String()}
	}
	out := reflect.MakeSlice(val.Type(), len(node.Values), len(node.Values))
	for i, elem := range node.Values {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		if err := fromReflectValue(elem, out.Index(i), elemPath); err != nil {
			return err
		}
	}
	if val.CanSet() {
		val.Set(out)
	}
	return nil
}

// fromToBytes fills a []byte from an array of byte-range numbers.
func fromToBytes(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ArrayType {
		return &TypeError{FieldPath: fieldPath, Expected: "Array", Actual: node.Type.String()}
	}
	out := make([]byte, len(node.Values))
	for i, elem := range node.Values {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		if elem.Type != ir.NumberType {
			return &TypeError{FieldPath: elemPath, Expected: "Number", Actual: elem.Type.String()}
		}
		u, ok := elem.Number.Uint64()
		if !ok || u > math.MaxUint8 {
			return &UnmarshalError{
				FieldPath: elemPath,
				Message:   fmt.Sprintf("%s does not fit a byte", elem.Number.String()),
				Err:       ir.ErrNumberOutOfRange,
			}
		}
		out[i] = byte(u)
	}
	if val.CanSet() {
		val.SetBytes(out)
	}
	return nil
}

func fromToArray(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ArrayType {
		return &TypeError{FieldPath: fieldPath, Expected: "Array", Actual: node.Type.String()}
	}
	if len(node.Values) != val.Len() {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("array length %d does not match %s", len(node.Values), val.Type()),
		}
	}
	for i, elem := range node.Values {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		if err := fromReflectValue(elem, val.Index(i), elemPath); err != nil {
			return err
		}
	}
	return nil
}

// fromToInterface fills an empty interface with the natural Go form of
// the node. Non-empty interfaces are not constructed.
func fromToInterface(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.Type().NumMethod() != 0 {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot construct non-empty interface %s", val.Type()),
		}
	}
	v, err := anyOf(node, fieldPath)
	if err != nil {
		return err
	}
	if val.CanSet() {
		if v == nil {
			val.Set(reflect.Zero(val.Type()))
		} else {
			val.Set(reflect.ValueOf(v))
		}
	}
	return nil
}

func anyOf(node *ir.Node, fieldPath string) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		if i, ok := node.Number.Int64(); ok {
			return i, nil
		}
		if u, ok := node.Number.Uint64(); ok {
			return u, nil
		}
		if f, ok := node.Number.Float64(); ok {
			return f, nil
		}
		return ir.RawNumber(node.Number.String()), nil
	case ir.ArrayType:
		out := make([]any, len(node.Values))
		for i, elem := range node.Values {
			v, err := anyOf(elem, fmt.Sprintf("%s[%d]", fieldPath, i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	return nil, &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported node type %s", node.Type),
	}
}
