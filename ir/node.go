package ir

// Node is one node of a scalar-or-array value tree. Null, booleans,
// numbers, strings and arrays can occur; objects cannot. The zero value
// is a null node.
type Node struct {
	Type   Type
	Bool   bool
	Number Number
	String string
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Number: NumberFromInt64(v)}
}

func FromUint(v uint64) *Node {
	return &Node{Type: NumberType, Number: NumberFromUint64(v)}
}

// FromFloat returns a null node for NaN and infinite inputs; a Number
// node never holds a non-finite value.
func FromFloat(v float64) *Node {
	n, ok := NumberFromFloat64(v)
	if !ok {
		return Null()
	}
	return &Node{Type: NumberType, Number: n}
}

func FromNumber(n Number) *Node {
	return &Node{Type: NumberType, Number: n}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.String = y.String
	dst.Values = nil
	if y.Type == ArrayType {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// Equal reports structural equality. Array equality is element-wise and
// order-sensitive.
func (y *Node) Equal(o *Node) bool {
	if y == o {
		return true
	}
	if y == nil || o == nil {
		return false
	}
	if y.Type != o.Type {
		return false
	}
	switch y.Type {
	case NullType:
		return true
	case BoolType:
		return y.Bool == o.Bool
	case NumberType:
		return y.Number.Equal(o.Number)
	case StringType:
		return y.String == o.String
	case ArrayType:
		if len(y.Values) != len(o.Values) {
			return false
		}
		for i := range y.Values {
			if !y.Values[i].Equal(o.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Visit walks the tree depth-first, calling f for each node before and
// after its children. Returning dive=false skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
