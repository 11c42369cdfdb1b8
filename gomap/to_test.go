package gomap

import (
	"errors"
	"math"
	"math/big"
	"reflect"
	"testing"

	"github.com/SamuelMarks/serde-json-extensions/ir"
)

type colorChannel int

const (
	red colorChannel = iota
	green
)

func (c colorChannel) MarshalText() ([]byte, error) {
	switch c {
	case red:
		return []byte("red"), nil
	default:
		return []byte("green"), nil
	}
}

type pair struct {
	A, B int
}

func (p pair) MarshalValue() (*ir.Node, error) {
	return ir.FromSlice([]*ir.Node{ir.FromInt(int64(p.A)), ir.FromInt(int64(p.B))}), nil
}

func TestToValue(t *testing.T) {
	bigNum := new(big.Int)
	bigNum.SetString("170141183460469231731687303715884105727", 10)

	for _, tc := range []struct {
		name string
		in   any
		want *ir.Node
		err  error
	}{
		{name: "nil", in: nil, want: ir.Null()},
		{name: "bool", in: true, want: ir.FromBool(true)},
		{name: "int", in: -3, want: ir.FromInt(-3)},
		{name: "uint64 max", in: uint64(math.MaxUint64), want: ir.FromUint(math.MaxUint64)},
		{name: "float", in: 0.5, want: ir.FromFloat(0.5)},
		{name: "nan", in: math.NaN(), want: ir.Null()},
		{name: "inf", in: math.Inf(1), want: ir.Null()},
		{name: "string", in: "hi", want: ir.FromString("hi")},
		{name: "nil slice", in: []int(nil), want: ir.Null()},
		{name: "mixed slice", in: []any{1, "a", []any{2, 3}},
			want: ir.FromSlice([]*ir.Node{
				ir.FromInt(1),
				ir.FromString("a"),
				ir.FromSlice([]*ir.Node{ir.FromInt(2), ir.FromInt(3)}),
			})},
		{name: "nil ptr", in: (*int)(nil), want: ir.Null()},
		{name: "ptr", in: ptrTo(7), want: ir.FromInt(7)},
		{name: "text marshaler", in: red, want: ir.FromString("red")},
		{name: "marshaler", in: pair{A: 1, B: 2},
			want: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
		{name: "number", in: mustNumber("1e400"), want: ir.FromNumber(mustNumber("1e400"))},
		{name: "raw number", in: ir.RawNumber("12.75"), want: ir.FromNumber(mustNumber("12.75"))},
		{name: "raw value", in: ir.RawValue("[1,2]"),
			want: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
		{name: "big int small", in: big.NewInt(12), want: ir.FromInt(12)},
		{name: "big int wide", in: bigNum,
			want: ir.FromNumber(mustNumber("170141183460469231731687303715884105727"))},
		{name: "number sentinel", in: map[string]any{ir.NumberToken: "1e400"},
			want: ir.FromNumber(mustNumber("1e400"))},
		{name: "raw sentinel", in: map[string]any{ir.RawToken: `["a",null]`},
			want: ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.Null()})},
		{name: "map", in: map[string]int{"a": 1}, err: ir.ErrInvalidType},
		{name: "two key map", in: map[string]any{ir.RawToken: "1", "x": 2}, err: ir.ErrInvalidType},
		{name: "struct", in: struct{ A int }{A: 1}, err: ir.ErrInvalidType},
		{name: "bad raw number", in: ir.RawNumber("abc"), err: ir.ErrInvalidNumber},
		{name: "bad number payload", in: map[string]any{ir.NumberToken: 17}, err: ir.ErrInvalidNumber},
		{name: "bad raw payload", in: map[string]any{ir.RawToken: []int{1}}, err: ir.ErrExpectedSomeValue},
		{name: "nan float key", in: map[float64]int{math.NaN(): 1}, err: ir.ErrFloatKeyMustBeFinite},
		{name: "compound key", in: map[[2]int]int{{1, 2}: 1}, err: ir.ErrKeyMustBeAString},
	} {
		t.Run(tc.name, func(t *testing.T) {
			node, err := ToValue(tc.in)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("got err %v, want %v", err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !node.Equal(tc.want) {
				t.Errorf("got %v, want %v", node, tc.want)
			}
		})
	}
}

func TestToValueIdentity(t *testing.T) {
	orig := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a")})
	node, err := ToValue(orig)
	if err != nil {
		t.Fatal(err)
	}
	if !node.Equal(orig) {
		t.Fatalf("identity conversion changed the tree: %v", node)
	}
	if node == orig || node.Values[0] == orig.Values[0] {
		t.Fatal("identity conversion shares nodes with the input")
	}
}

func TestToValueSentinelEquivalence(t *testing.T) {
	// a raw sentinel and direct conversion of the same data agree
	direct, err := ToValue([]any{1, "a", []any{2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	viaRaw, err := ToValue(map[string]any{ir.RawToken: `[1,"a",[2,3]]`})
	if err != nil {
		t.Fatal(err)
	}
	if !direct.Equal(viaRaw) {
		t.Errorf("direct %v != raw %v", direct, viaRaw)
	}
}

func TestToScalar(t *testing.T) {
	s, err := ToScalar("hi")
	if err != nil {
		t.Fatal(err)
	}
	if !s.Equal(ir.ScalarFromString("hi")) {
		t.Fatalf("unexpected scalar %+v", s)
	}

	if _, err := ToScalar([]int{1}); !errors.Is(err, ir.ErrInvalidType) {
		t.Fatalf("slice: got %v, want ErrInvalidType", err)
	}
	if _, err := ToScalar(map[string]any{ir.RawToken: "[1]"}); !errors.Is(err, ir.ErrInvalidType) {
		t.Fatalf("raw array payload: got %v, want ErrInvalidType", err)
	}
	s, err = ToScalar(map[string]any{ir.RawToken: "12"})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Equal(ir.ScalarFromInt(12)) {
		t.Fatalf("unexpected scalar %+v", s)
	}
}

func TestToValueCapabilitiesOff(t *testing.T) {
	// with the capability off the sentinel key is an ordinary object key
	if _, err := ToValue(map[string]any{ir.NumberToken: "5"}, ArbitraryPrecision(false)); !errors.Is(err, ir.ErrInvalidType) {
		t.Fatalf("number sentinel: got %v, want ErrInvalidType", err)
	}
	if _, err := ToValue(map[string]any{ir.RawToken: "5"}, RawValues(false)); !errors.Is(err, ir.ErrInvalidType) {
		t.Fatalf("raw sentinel: got %v, want ErrInvalidType", err)
	}

	bigNum := new(big.Int)
	bigNum.SetString("18446744073709551616", 10)
	if _, err := ToValue(bigNum, ArbitraryPrecision(false)); !errors.Is(err, ir.ErrNumberOutOfRange) {
		t.Fatalf("wide big.Int: got %v, want ErrNumberOutOfRange", err)
	}
	node, err := ToValue(big.NewInt(-5), ArbitraryPrecision(false))
	if err != nil {
		t.Fatal(err)
	}
	if !node.Equal(ir.FromInt(-5)) {
		t.Fatalf("small big.Int: got %v", node)
	}
}

func TestToValueCycle(t *testing.T) {
	s := []any{nil}
	s[0] = s
	_, err := ToValue(s)
	if err == nil {
		t.Fatal("expected an error for a cyclic value")
	}
}

func TestEncodeKey(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want string
	}{
		{"k", "k"},
		{true, "true"},
		{-3, "-3"},
		{uint8(255), "255"},
		{1.5, "1.5"},
		{2.0, "2"},
		{red, "red"},
	} {
		got, err := encodeKey(reflect.ValueOf(tc.in), "")
		if err != nil {
			t.Errorf("encodeKey(%v): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("encodeKey(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
	if _, err := encodeKey(reflect.ValueOf(math.Inf(-1)), ""); !errors.Is(err, ir.ErrFloatKeyMustBeFinite) {
		t.Errorf("inf key: got %v, want ErrFloatKeyMustBeFinite", err)
	}
	if _, err := encodeKey(reflect.ValueOf([]int{1}), ""); !errors.Is(err, ir.ErrKeyMustBeAString) {
		t.Errorf("slice key: got %v, want ErrKeyMustBeAString", err)
	}
}

func ptrTo[T any](v T) *T { return &v }

func mustNumber(s string) ir.Number {
	n, err := ir.ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}
