// Package encode renders value trees as JSON text.
//
// Encode writes an indented layout by default, one array element per
// line. The EncodeWire option selects compact single-line output whose
// bytes round-trip through parse.Parse. EncodeColors enables ANSI
// colored output for terminals.
package encode
