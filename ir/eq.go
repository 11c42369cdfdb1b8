package ir

// EqualAny reports whether the node equals a native Go value: booleans
// and strings compare against the matching node type, integer values
// compare against integer-backed numbers, and floats compare through
// the float64 coercion of the number. Nil matches null. Everything else
// is unequal.
func (y *Node) EqualAny(v any) bool {
	if y == nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return y.Type == NullType
	case bool:
		return y.Type == BoolType && y.Bool == x
	case string:
		return y.Type == StringType && y.String == x
	case int:
		return y.equalInt(int64(x))
	case int8:
		return y.equalInt(int64(x))
	case int16:
		return y.equalInt(int64(x))
	case int32:
		return y.equalInt(int64(x))
	case int64:
		return y.equalInt(x)
	case uint:
		return y.equalUint(uint64(x))
	case uint8:
		return y.equalUint(uint64(x))
	case uint16:
		return y.equalUint(uint64(x))
	case uint32:
		return y.equalUint(uint64(x))
	case uint64:
		return y.equalUint(x)
	case float32:
		return y.equalFloat(float64(x))
	case float64:
		return y.equalFloat(x)
	}
	return false
}

func (y *Node) equalInt(v int64) bool {
	if y.Type != NumberType {
		return false
	}
	i, ok := y.Number.Int64()
	return ok && i == v
}

func (y *Node) equalUint(v uint64) bool {
	if y.Type != NumberType {
		return false
	}
	u, ok := y.Number.Uint64()
	return ok && u == v
}

func (y *Node) equalFloat(v float64) bool {
	if y.Type != NumberType {
		return false
	}
	f, ok := y.Number.Float64()
	return ok && f == v
}

// EqualAny is the scalar counterpart of (*Node).EqualAny.
func (s *Scalar) EqualAny(v any) bool {
	if s == nil {
		return false
	}
	return s.Node().EqualAny(v)
}
