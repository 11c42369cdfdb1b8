// Package ir provides structurally-constrained JSON value trees.
//
// # Overview
//
// Two shapes are defined:
//
//   - Scalar: null, boolean, number or string. The type has no field for
//     array or object payloads, so neither can occur.
//   - Node: everything a Scalar can hold, plus arrays of Node. Objects
//     still cannot occur.
//
// Both shapes are plain recursive values with tree-shaped ownership: a
// parent array exclusively owns its children and nodes carry no parent
// back-references.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64, uint64, finite float64, or an
//     exact decimal literal)
//   - StringType: string value
//   - ArrayType: ordered list of nodes (Node shape only)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// FromFloat maps NaN and infinite inputs to a null node: a Number never
// holds a non-finite value.
//
// # Sentinel keys
//
// Single-key objects whose key is NumberToken or RawToken are not real
// objects; they carry an arbitrary-precision numeral or a pre-encoded
// document through contexts that otherwise reject objects. ClassifyKey
// is the one place where the reserved keys are recognized.
//
// # Related Packages
//
//   - github.com/SamuelMarks/serde-json-extensions/gomap - Go value conversion
//   - github.com/SamuelMarks/serde-json-extensions/parse - parse text to nodes
//   - github.com/SamuelMarks/serde-json-extensions/encode - encode nodes to text
package ir
