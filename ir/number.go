package ir

import (
	"fmt"
	"math"
	"strconv"
)

// Number is a JSON number. It holds exactly one of an int64, a uint64, a
// finite float64, or, beyond those ranges, the exact decimal literal it
// was parsed from. A Number is never NaN or infinite. Immutable once
// built.
type Number struct {
	i   *int64
	u   *uint64
	f   *float64
	lit string
}

func NumberFromInt64(v int64) Number {
	return Number{i: &v}
}

func NumberFromUint64(v uint64) Number {
	return Number{u: &v}
}

// NumberFromFloat64 returns ok=false when v is NaN or infinite; callers
// are expected to substitute a null node in that case.
func NumberFromFloat64(v float64) (Number, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}, false
	}
	return Number{f: &v}, true
}

// ParseNumber builds a Number from a decimal literal in JSON number
// syntax. Integer literals representable as int64 or uint64 are stored
// as such. Everything else keeps the literal exactly, with a cached
// float64 value when one is representable, so that wide integers and
// high-precision decimals survive a round trip unchanged.
func ParseNumber(s string) (Number, error) {
	if !isValidNumber(s) {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Number{i: &i}, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Number{u: &u}, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) {
		return Number{f: &f, lit: s}, nil
	}
	return Number{lit: s}, nil
}

// IsInt64 reports whether the number is stored as an int64.
func (n Number) IsInt64() bool { return n.i != nil }

// IsUint64 reports whether the number is stored as a uint64.
func (n Number) IsUint64() bool { return n.u != nil }

// IsFloat64 reports whether the number has a representable float64 value
// and no integer representation.
func (n Number) IsFloat64() bool { return n.f != nil }

// IsLiteral reports whether the number is backed only by its decimal
// literal, with no 64-bit representation at all. Such numbers exist only
// under the arbitrary-precision capability.
func (n Number) IsLiteral() bool {
	return n.i == nil && n.u == nil && n.f == nil && n.lit != ""
}

// Int64 returns the value as an int64 when it is an integer in range.
func (n Number) Int64() (int64, bool) {
	switch {
	case n.i != nil:
		return *n.i, true
	case n.u != nil && *n.u <= math.MaxInt64:
		return int64(*n.u), true
	}
	return 0, false
}

// Uint64 returns the value as a uint64 when it is a non-negative integer
// in range.
func (n Number) Uint64() (uint64, bool) {
	switch {
	case n.u != nil:
		return *n.u, true
	case n.i != nil && *n.i >= 0:
		return uint64(*n.i), true
	}
	return 0, false
}

// Float64 returns the value as a float64, converting integer
// representations. It fails only for literal-only numbers.
func (n Number) Float64() (float64, bool) {
	switch {
	case n.f != nil:
		return *n.f, true
	case n.i != nil:
		return float64(*n.i), true
	case n.u != nil:
		return float64(*n.u), true
	}
	return 0, false
}

// String renders the number exactly as it appears in wire text.
func (n Number) String() string {
	switch {
	case n.lit != "":
		return n.lit
	case n.i != nil:
		return strconv.FormatInt(*n.i, 10)
	case n.u != nil:
		return strconv.FormatUint(*n.u, 10)
	case n.f != nil:
		return string(appendFloat(nil, *n.f))
	}
	return "0"
}

// Equal reports numeric equality for integer and float backed numbers,
// and literal equality for literal-only numbers.
func (n Number) Equal(o Number) bool {
	if n.IsLiteral() || o.IsLiteral() {
		return n.IsLiteral() && o.IsLiteral() && n.lit == o.lit
	}
	if ni, ok := n.Int64(); ok {
		oi, ook := o.Int64()
		return ook && ni == oi
	}
	if nu, ok := n.Uint64(); ok {
		ou, ook := o.Uint64()
		return ook && nu == ou
	}
	if o.i != nil || o.u != nil {
		return false
	}
	nf, _ := n.Float64()
	of, _ := o.Float64()
	return nf == of
}

// appendFloat renders f the way the wire encoder does: shortest form
// that round-trips, with %e used only for very small and very large
// magnitudes.
func appendFloat(b []byte, f float64) []byte {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	b = strconv.AppendFloat(b, f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		if n := len(b); n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return b
}

// isValidNumber reports whether s matches the JSON number grammar.
func isValidNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
		if s == "" {
			return false
		}
	}
	switch {
	case s[0] == '0':
		s = s[1:]
	case '1' <= s[0] && s[0] <= '9':
		s = s[1:]
		for len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
			s = s[1:]
		}
	default:
		return false
	}
	if len(s) >= 2 && s[0] == '.' && '0' <= s[1] && s[1] <= '9' {
		s = s[2:]
		for len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
			s = s[1:]
		}
	}
	if len(s) >= 2 && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		if s[0] == '+' || s[0] == '-' {
			s = s[1:]
			if s == "" {
				return false
			}
		}
		for len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
			s = s[1:]
		}
	}
	return s == ""
}
