package ir

import "fmt"

// Scalar is a scalar-only value: null, boolean, number or string. The
// type has no array or object field, so the constraint is structural
// rather than checked. The zero value is null.
type Scalar struct {
	Type   Type
	Bool   bool
	Number Number
	String string
}

func ScalarNull() *Scalar {
	return &Scalar{Type: NullType}
}

func ScalarFromString(v string) *Scalar {
	return &Scalar{Type: StringType, String: v}
}

func ScalarFromBool(v bool) *Scalar {
	return &Scalar{Type: BoolType, Bool: v}
}

func ScalarFromInt(v int64) *Scalar {
	return &Scalar{Type: NumberType, Number: NumberFromInt64(v)}
}

func ScalarFromUint(v uint64) *Scalar {
	return &Scalar{Type: NumberType, Number: NumberFromUint64(v)}
}

// ScalarFromFloat returns a null scalar for NaN and infinite inputs.
func ScalarFromFloat(v float64) *Scalar {
	n, ok := NumberFromFloat64(v)
	if !ok {
		return ScalarNull()
	}
	return &Scalar{Type: NumberType, Number: n}
}

func ScalarFromNumber(n Number) *Scalar {
	return &Scalar{Type: NumberType, Number: n}
}

// Node widens the scalar to the scalar-or-array shape.
func (s *Scalar) Node() *Node {
	return &Node{
		Type:   s.Type,
		Bool:   s.Bool,
		Number: s.Number,
		String: s.String,
	}
}

// ScalarOf narrows a node to the scalar-only shape, failing on arrays.
func ScalarOf(y *Node) (*Scalar, error) {
	if y == nil {
		return nil, fmt.Errorf("%w: nil node", ErrInvalidType)
	}
	if y.Type == ArrayType {
		return nil, fmt.Errorf("%w: Array where a scalar is required", ErrInvalidType)
	}
	return &Scalar{
		Type:   y.Type,
		Bool:   y.Bool,
		Number: y.Number,
		String: y.String,
	}, nil
}

func (s *Scalar) Clone() *Scalar {
	c := *s
	return &c
}

func (s *Scalar) Equal(o *Scalar) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	return s.Node().Equal(o.Node())
}
