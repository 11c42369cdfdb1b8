package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a.Number, b.Number)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case NullType:
		return 0
	}
	return 0
}

// CompareScalars orders scalars the same way Compare orders the
// corresponding nodes.
func CompareScalars(a, b *Scalar) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return Compare(a.Node(), b.Node())
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	}
	return 100
}

func compareNumbers(a, b Number) int {
	// Sub-rank: integer < float < literal
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}

	switch subRankA {
	case 0:
		// both integers; settle sign first so the int64/uint64 split
		// does not matter
		ai, aOK := a.Int64()
		bi, bOK := b.Int64()
		if aOK && bOK {
			return cmp.Compare(ai, bi)
		}
		if !aOK && !bOK {
			au, _ := a.Uint64()
			bu, _ := b.Uint64()
			return cmp.Compare(au, bu)
		}
		if aOK {
			return -1
		}
		return 1
	case 1:
		af, _ := a.Float64()
		bf, _ := b.Float64()
		return cmp.Compare(af, bf)
	default:
		return strings.Compare(a.String(), b.String())
	}
}

func numberSubRank(n Number) int {
	switch {
	case n.IsInt64() || n.IsUint64():
		return 0
	case n.IsFloat64():
		return 1
	default:
		return 2
	}
}

func compareArrays(a, b *Node) int {
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}
