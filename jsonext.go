// Package jsonext converts Go values to and from JSON wire text over
// the structurally constrained value domain: scalars and arrays, never
// objects. The subpackages hold the pieces: ir the trees, gomap the Go
// value conversion, parse and encode the wire text.
package jsonext

import (
	"bytes"

	"github.com/SamuelMarks/serde-json-extensions/encode"
	"github.com/SamuelMarks/serde-json-extensions/gomap"
	"github.com/SamuelMarks/serde-json-extensions/parse"
)

// Marshal converts a Go value to compact wire text in the
// scalar-or-array shape.
func Marshal(v any, opts ...gomap.Option) ([]byte, error) {
	node, err := gomap.ToValue(v, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalScalar is Marshal in the scalar-only shape, where sequences
// fail.
func MarshalScalar(v any, opts ...gomap.Option) ([]byte, error) {
	s, err := gomap.ToScalar(v, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.EncodeScalar(s, &buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal reads wire text in the scalar-or-array shape into v.
func Unmarshal(data []byte, v any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(data, opts...)
	if err != nil {
		return err
	}
	return gomap.FromValue(node, v)
}

// UnmarshalScalar reads wire text in the scalar-only shape into v.
func UnmarshalScalar(data []byte, v any, opts ...parse.ParseOption) error {
	s, err := parse.ParseScalar(data, opts...)
	if err != nil {
		return err
	}
	return gomap.FromScalar(s, v)
}
