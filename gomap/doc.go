// Package gomap converts between Go values and value trees.
//
// ToValue builds a scalar-or-array tree from a Go value by reflection;
// ToScalar does the same for the scalar-only shape, where sequences
// fail. Maps and structs are object-shaped and have no representation,
// with one exception: a single-entry map whose key is a sentinel token
// carries a payload instead of being an object. Under ir.NumberToken
// the payload is an exact decimal numeral; under ir.RawToken it is wire
// text re-parsed in place. Both sentinels are capability gated through
// Options and enabled by default.
//
// FromValue populates a Go value from a tree. Targets can be plain Go
// types, *ir.Node and *ir.Scalar for the trees themselves, ir.RawNumber
// and ir.RawValue for the sentinel carriers, *big.Int for wide
// integers, or Ignore to discard a position.
//
// Types implementing Marshaler or Unmarshaler take over their own
// conversion; encoding.TextMarshaler and encoding.TextUnmarshaler cover
// enum-like types with a text form.
package gomap
