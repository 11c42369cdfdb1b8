package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/SamuelMarks/serde-json-extensions/ir"
)

// Parse reads one JSON value from data and returns the value tree it
// denotes. Objects fail with ir.ErrInvalidType unless they are sentinel
// carriers and the matching capability is enabled.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts()
	for _, opt := range opts {
		opt(pOpts)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after value", ErrParse)
	}
	return fromAny(v, pOpts)
}

// ParseString is Parse on a string.
func ParseString(data string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(data), opts...)
}

// ParseScalar parses like Parse and then narrows to the scalar shape,
// failing on arrays.
func ParseScalar(data []byte, opts ...ParseOption) (*ir.Scalar, error) {
	node, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return ir.ScalarOf(node)
}

func fromAny(v any, pOpts *parseOpts) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return fromNumber(string(x), pOpts)
	case []any:
		vs := make([]*ir.Node, len(x))
		for i, e := range x {
			node, err := fromAny(e, pOpts)
			if err != nil {
				return nil, err
			}
			vs[i] = node
		}
		return ir.FromSlice(vs), nil
	case map[string]any:
		return fromObject(x, pOpts)
	}
	return nil, fmt.Errorf("%w: unsupported value %T", ir.ErrInvalidType, v)
}

func fromNumber(lit string, pOpts *parseOpts) (*ir.Node, error) {
	n, err := ir.ParseNumber(lit)
	if err != nil {
		return nil, err
	}
	if n.IsLiteral() && !pOpts.arbitraryPrecision {
		return nil, fmt.Errorf("%w: %s", ir.ErrNumberOutOfRange, lit)
	}
	return ir.FromNumber(n), nil
}

// fromObject admits single-key sentinel objects and rejects everything
// else: the value domain has no objects.
func fromObject(x map[string]any, pOpts *parseOpts) (*ir.Node, error) {
	if len(x) == 1 {
		for k, payload := range x {
			switch ir.ClassifyKey(k, pOpts.arbitraryPrecision, pOpts.rawValues) {
			case ir.KeyNumber:
				s, ok := payload.(string)
				if !ok {
					return nil, fmt.Errorf("%w: %s payload must be a string", ir.ErrInvalidNumber, ir.NumberToken)
				}
				n, err := ir.ParseNumber(s)
				if err != nil {
					return nil, err
				}
				return ir.FromNumber(n), nil
			case ir.KeyRaw:
				s, ok := payload.(string)
				if !ok {
					return nil, fmt.Errorf("%w: %s payload must be a string", ir.ErrExpectedSomeValue, ir.RawToken)
				}
				return Parse([]byte(s), optsOf(pOpts)...)
			}
		}
	}
	return nil, fmt.Errorf("%w: Object is not representable", ir.ErrInvalidType)
}

func optsOf(pOpts *parseOpts) []ParseOption {
	return []ParseOption{
		ArbitraryPrecision(pOpts.arbitraryPrecision),
		RawValues(pOpts.rawValues),
	}
}

// IsParseError reports whether err came from malformed wire text, as
// opposed to well formed text denoting an unrepresentable value.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}
