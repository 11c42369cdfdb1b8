package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON renders the node as the JSON value it represents, in
// compact wire form, so nodes embed directly in larger encoding/json
// types.
func (y *Node) MarshalJSON() ([]byte, error) {
	return appendJSON(nil, y)
}

// UnmarshalJSON builds the node from JSON wire text. Objects are not
// representable and fail, except for the sentinel forms under
// NumberToken and RawToken, which are always recognized here; use the
// parse package to control the capabilities.
func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return fmt.Errorf("%w: trailing data after value", ErrInvalidType)
	}
	node, err := fromJSONAny(v)
	if err != nil {
		return err
	}
	*y = *node
	return nil
}

func (s *Scalar) MarshalJSON() ([]byte, error) {
	return appendJSON(nil, s.Node())
}

func (s *Scalar) UnmarshalJSON(d []byte) error {
	var y Node
	if err := y.UnmarshalJSON(d); err != nil {
		return err
	}
	sc, err := ScalarOf(&y)
	if err != nil {
		return err
	}
	*s = *sc
	return nil
}

func appendJSON(b []byte, y *Node) ([]byte, error) {
	switch y.Type {
	case NullType:
		return append(b, "null"...), nil
	case BoolType:
		if y.Bool {
			return append(b, "true"...), nil
		}
		return append(b, "false"...), nil
	case NumberType:
		return append(b, y.Number.String()...), nil
	case StringType:
		return AppendQuoted(b, y.String), nil
	case ArrayType:
		b = append(b, '[')
		for i, v := range y.Values {
			if i > 0 {
				b = append(b, ',')
			}
			var err error
			b, err = appendJSON(b, v)
			if err != nil {
				return nil, err
			}
		}
		return append(b, ']'), nil
	}
	return nil, fmt.Errorf("%w: cannot encode %s", ErrInvalidType, y.Type)
}

const hexDigits = "0123456789abcdef"

// AppendQuoted appends s as a JSON string literal. UTF-8 text passes
// through unescaped; only the quote, backslash and control characters
// are escaped.
func AppendQuoted(b []byte, s string) []byte {
	b = append(b, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		b = append(b, s[start:i]...)
		switch c {
		case '"':
			b = append(b, '\\', '"')
		case '\\':
			b = append(b, '\\', '\\')
		case '\n':
			b = append(b, '\\', 'n')
		case '\r':
			b = append(b, '\\', 'r')
		case '\t':
			b = append(b, '\\', 't')
		default:
			b = append(b, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		start = i + 1
	}
	b = append(b, s[start:]...)
	return append(b, '"')
}

// fromJSONAny converts a decoded encoding/json value, with both
// sentinel capabilities enabled.
func fromJSONAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		n, err := ParseNumber(string(x))
		if err != nil {
			return nil, err
		}
		return FromNumber(n), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			node, err := fromJSONAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = node
		}
		return FromSlice(vs), nil
	case map[string]any:
		if len(x) == 1 {
			for k, payload := range x {
				switch ClassifyKey(k, true, true) {
				case KeyNumber:
					s, ok := payload.(string)
					if !ok {
						return nil, fmt.Errorf("%w: %s payload must be a string", ErrInvalidNumber, NumberToken)
					}
					n, err := ParseNumber(s)
					if err != nil {
						return nil, err
					}
					return FromNumber(n), nil
				case KeyRaw:
					s, ok := payload.(string)
					if !ok {
						return nil, fmt.Errorf("%w: %s payload must be a string", ErrExpectedSomeValue, RawToken)
					}
					var node Node
					if err := node.UnmarshalJSON([]byte(s)); err != nil {
						return nil, err
					}
					return &node, nil
				}
			}
		}
		return nil, fmt.Errorf("%w: Object is not representable", ErrInvalidType)
	}
	return nil, fmt.Errorf("%w: unsupported value %T", ErrInvalidType, v)
}
