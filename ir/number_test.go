package ir

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	for _, tc := range []struct {
		in      string
		wantErr bool
		check   func(n Number) bool
	}{
		{in: "0", check: func(n Number) bool { i, ok := n.Int64(); return ok && i == 0 }},
		{in: "-1", check: func(n Number) bool { i, ok := n.Int64(); return ok && i == -1 }},
		{in: "9223372036854775807", check: func(n Number) bool { i, ok := n.Int64(); return ok && i == math.MaxInt64 }},
		{in: "9223372036854775808", check: func(n Number) bool { u, ok := n.Uint64(); return ok && u == math.MaxInt64+1 }},
		{in: "18446744073709551615", check: func(n Number) bool { u, ok := n.Uint64(); return ok && u == math.MaxUint64 }},
		{in: "18446744073709551616", check: func(n Number) bool { return n.IsFloat64() && n.String() == "18446744073709551616" }},
		{in: "0.5", check: func(n Number) bool { f, ok := n.Float64(); return ok && f == 0.5 }},
		{in: "1e3", check: func(n Number) bool { f, ok := n.Float64(); return ok && f == 1000 }},
		{in: "-2.5e-3", check: func(n Number) bool { f, ok := n.Float64(); return ok && f == -0.0025 }},
		{in: "1e400", check: func(n Number) bool { return n.IsLiteral() && n.String() == "1e400" }},
		{in: "", wantErr: true},
		{in: "-", wantErr: true},
		{in: "01", wantErr: true},
		{in: "1.", wantErr: true},
		{in: "1e", wantErr: true},
		{in: "1e+", wantErr: true},
		{in: ".5", wantErr: true},
		{in: "+1", wantErr: true},
		{in: "0x10", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Infinity", wantErr: true},
		{in: "1 ", wantErr: true},
	} {
		n, err := ParseNumber(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseNumber(%q): expected error, got %v", tc.in, n)
			}
			continue
		}
		if tc.check == nil {
			continue
		}
		if err != nil {
			t.Errorf("ParseNumber(%q): %v", tc.in, err)
			continue
		}
		if !tc.check(n) {
			t.Errorf("ParseNumber(%q): check failed on %v", tc.in, n.String())
		}
	}
}

func TestNumberString(t *testing.T) {
	for _, tc := range []struct {
		n    Number
		want string
	}{
		{NumberFromInt64(-42), "-42"},
		{NumberFromUint64(math.MaxUint64), "18446744073709551615"},
		{mustFloat(0.5), "0.5"},
		{mustFloat(1e21), "1e+21"},
		{mustFloat(5e-7), "5e-7"},
		{mustFloat(-0.000001), "-0.000001"},
		{mustParse("3.141592653589793238462643383279"), "3.141592653589793238462643383279"},
		{Number{}, "0"},
	} {
		if got := tc.n.String(); got != tc.want {
			t.Errorf("String(): got %q, want %q", got, tc.want)
		}
	}
}

func TestNumberEqual(t *testing.T) {
	for _, tc := range []struct {
		a, b Number
		want bool
	}{
		{NumberFromInt64(7), NumberFromUint64(7), true},
		{NumberFromInt64(-1), NumberFromUint64(math.MaxUint64), false},
		{NumberFromInt64(1), mustFloat(1.0), false},
		{mustFloat(0.5), mustFloat(0.5), true},
		{mustParse("1e400"), mustParse("1e400"), true},
		{mustParse("1e400"), mustParse("2e400"), false},
		{mustParse("1e400"), NumberFromInt64(0), false},
	} {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("%s == %s: got %v, want %v", tc.a.String(), tc.b.String(), got, tc.want)
		}
		if got := tc.b.Equal(tc.a); got != tc.want {
			t.Errorf("%s == %s: not symmetric", tc.b.String(), tc.a.String())
		}
	}
}

func TestNumberFromFloat64NonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, ok := NumberFromFloat64(f); ok {
			t.Errorf("NumberFromFloat64(%v): expected ok=false", f)
		}
	}
}

func mustFloat(f float64) Number {
	n, ok := NumberFromFloat64(f)
	if !ok {
		panic("non-finite float in test")
	}
	return n
}

func mustParse(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}
