package gomap

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/SamuelMarks/serde-json-extensions/ir"
	"github.com/google/go-cmp/cmp"
)

type level int

const (
	levelLow level = iota
	levelHigh
)

func (l *level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "low":
		*l = levelLow
	case "high":
		*l = levelHigh
	default:
		return errors.New("unknown level")
	}
	return nil
}

type span struct {
	Lo, Hi int64
}

func (s *span) UnmarshalValue(node *ir.Node) error {
	if node.Type != ir.ArrayType || len(node.Values) != 2 {
		return errors.New("span wants a two element array")
	}
	var err error
	if s.Lo, err = intOf(node.Values[0]); err != nil {
		return err
	}
	s.Hi, err = intOf(node.Values[1])
	return err
}

func intOf(node *ir.Node) (int64, error) {
	if node.Type != ir.NumberType {
		return 0, errors.New("not a number")
	}
	i, ok := node.Number.Int64()
	if !ok {
		return 0, errors.New("not an int64")
	}
	return i, nil
}

func TestFromValueBasic(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)})
	var ints []int
	if err := FromValue(node, &ints); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, ints); diff != "" {
		t.Errorf("ints (-want +got):\n%s", diff)
	}

	var s string
	if err := FromValue(ir.FromString("hi"), &s); err != nil {
		t.Fatal(err)
	}
	if s != "hi" {
		t.Errorf("s = %q", s)
	}

	var b bool
	if err := FromValue(ir.FromBool(true), &b); err != nil {
		t.Fatal(err)
	}
	if !b {
		t.Error("b = false")
	}

	var f float32
	if err := FromValue(ir.FromFloat(0.25), &f); err != nil {
		t.Fatal(err)
	}
	if f != 0.25 {
		t.Errorf("f = %v", f)
	}

	// null zeroes the target
	s = "junk"
	if err := FromValue(ir.Null(), &s); err != nil {
		t.Fatal(err)
	}
	if s != "" {
		t.Errorf("s = %q after null", s)
	}
}

func TestFromValueNumericRanges(t *testing.T) {
	var i8 int8
	err := FromValue(ir.FromInt(1000), &i8)
	if !errors.Is(err, ir.ErrNumberOutOfRange) {
		t.Errorf("int8 overflow: got %v, want ErrNumberOutOfRange", err)
	}

	var u uint16
	err = FromValue(ir.FromInt(-1), &u)
	if !errors.Is(err, ir.ErrNumberOutOfRange) {
		t.Errorf("negative into uint: got %v, want ErrNumberOutOfRange", err)
	}

	var i64 int64
	if err := FromValue(ir.FromUint(7), &i64); err != nil {
		t.Fatal(err)
	}
	if i64 != 7 {
		t.Errorf("i64 = %d", i64)
	}

	var f32 float32
	err = FromValue(ir.FromFloat(math.MaxFloat64), &f32)
	if !errors.Is(err, ir.ErrNumberOutOfRange) {
		t.Errorf("float32 overflow: got %v, want ErrNumberOutOfRange", err)
	}

	var i int
	err = FromValue(ir.FromString("5"), &i)
	if !errors.Is(err, ir.ErrInvalidType) {
		t.Errorf("string into int: got %v, want ErrInvalidType", err)
	}
}

func TestFromValueSpecialTargets(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a")})

	var copied ir.Node
	if err := FromValue(node, &copied); err != nil {
		t.Fatal(err)
	}
	if !copied.Equal(node) {
		t.Errorf("node copy differs: %v", &copied)
	}
	copied.Values[0].String = "mutated"
	if node.Values[0].String == "mutated" {
		t.Error("node copy shares storage with source")
	}

	var sc ir.Scalar
	if err := FromValue(ir.FromInt(5), &sc); err != nil {
		t.Fatal(err)
	}
	if !sc.Equal(ir.ScalarFromInt(5)) {
		t.Errorf("scalar = %+v", sc)
	}
	if err := FromValue(node, &sc); !errors.Is(err, ir.ErrInvalidType) {
		t.Errorf("array into scalar: got %v, want ErrInvalidType", err)
	}

	var num ir.Number
	if err := FromValue(ir.FromNumber(mustNumber("1e400")), &num); err != nil {
		t.Fatal(err)
	}
	if num.String() != "1e400" {
		t.Errorf("num = %s", num.String())
	}

	var rn ir.RawNumber
	if err := FromValue(ir.FromFloat(2.5), &rn); err != nil {
		t.Fatal(err)
	}
	if rn != "2.5" {
		t.Errorf("rn = %q", rn)
	}
	if err := FromValue(ir.FromString("x"), &rn); !errors.Is(err, ir.ErrInvalidType) {
		t.Errorf("string into RawNumber: got %v, want ErrInvalidType", err)
	}

	var ig Ignore
	if err := FromValue(node, &ig); err != nil {
		t.Fatal(err)
	}
}

func TestFromValueRawValueRoundTrip(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a"), ir.Null()})

	var rv ir.RawValue
	if err := FromValue(node, &rv); err != nil {
		t.Fatal(err)
	}
	if rv != `[1,"a",null]` {
		t.Fatalf("rv = %q", rv)
	}

	// feeding the captured wire text back reproduces the tree
	back, err := ToValue(rv)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(node) {
		t.Errorf("round trip differs: %v", back)
	}
}

func TestFromValueBigInt(t *testing.T) {
	want := new(big.Int)
	want.SetString("170141183460469231731687303715884105727", 10)
	node, err := ToValue(want)
	if err != nil {
		t.Fatal(err)
	}
	got := new(big.Int)
	if err := FromValue(node, got); err != nil {
		t.Fatal(err)
	}
	if want.Cmp(got) != 0 {
		t.Errorf("got %s, want %s", got, want)
	}

	if err := FromValue(ir.FromFloat(0.5), new(big.Int)); !errors.Is(err, ir.ErrInvalidNumber) {
		t.Errorf("fraction into big.Int: got %v, want ErrInvalidNumber", err)
	}
}

func TestFromValueHooks(t *testing.T) {
	var l level
	if err := FromValue(ir.FromString("high"), &l); err != nil {
		t.Fatal(err)
	}
	if l != levelHigh {
		t.Errorf("l = %v", l)
	}
	if err := FromValue(ir.FromString("mid"), &l); err == nil {
		t.Error("expected an error for an unknown level")
	}

	var sp span
	node := ir.FromSlice([]*ir.Node{ir.FromInt(3), ir.FromInt(9)})
	if err := FromValue(node, &sp); err != nil {
		t.Fatal(err)
	}
	if sp.Lo != 3 || sp.Hi != 9 {
		t.Errorf("sp = %+v", sp)
	}
}

func TestFromValueAny(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{
		ir.Null(),
		ir.FromBool(true),
		ir.FromInt(-1),
		ir.FromUint(math.MaxUint64),
		ir.FromFloat(0.5),
		ir.FromString("a"),
		ir.FromNumber(mustNumber("1e400")),
	})
	var v any
	if err := FromValue(node, &v); err != nil {
		t.Fatal(err)
	}
	want := []any{
		nil,
		true,
		int64(-1),
		uint64(math.MaxUint64),
		0.5,
		"a",
		ir.RawNumber("1e400"),
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("any (-want +got):\n%s", diff)
	}
}

func TestFromValueObjectTargets(t *testing.T) {
	node := ir.FromInt(1)
	if err := FromValue(node, &map[string]int{}); !errors.Is(err, ir.ErrInvalidType) {
		t.Errorf("map target: got %v, want ErrInvalidType", err)
	}
	var st struct{ A int }
	if err := FromValue(node, &st); !errors.Is(err, ir.ErrInvalidType) {
		t.Errorf("struct target: got %v, want ErrInvalidType", err)
	}
}

func TestFromValueBytesAndArrays(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromInt(104), ir.FromInt(105)})
	var bs []byte
	if err := FromValue(node, &bs); err != nil {
		t.Fatal(err)
	}
	if string(bs) != "hi" {
		t.Errorf("bs = %q", bs)
	}

	var arr [2]int
	if err := FromValue(node, &arr); err != nil {
		t.Fatal(err)
	}
	if arr != [2]int{104, 105} {
		t.Errorf("arr = %v", arr)
	}

	var short [1]int
	err := FromValue(node, &short)
	if err == nil || !strings.Contains(err.Error(), "length") {
		t.Errorf("length mismatch: got %v", err)
	}

	if err := FromValue(ir.FromSlice([]*ir.Node{ir.FromInt(300)}), &bs); !errors.Is(err, ir.ErrNumberOutOfRange) {
		t.Errorf("byte overflow: got %v, want ErrNumberOutOfRange", err)
	}
}

func TestFromValueFieldPath(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{
		ir.FromInt(1),
		ir.FromSlice([]*ir.Node{ir.FromString("x")}),
	})
	var out [][]int
	err := FromValue(node, &out)
	if err == nil {
		t.Fatal("expected an error")
	}
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("got %T, want *TypeError", err)
	}
	if te.FieldPath != "[0]" {
		t.Errorf("field path = %q", te.FieldPath)
	}
}
