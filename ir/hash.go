package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so equal trees hash equal within a process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with Equal.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))

	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		hashNumber(&h, n.Number)
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		var b [8]byte
		for _, v := range n.Values {
			// combining child hashes in order keeps the result
			// order-dependent
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}

// Hash returns a 64-bit hash of the scalar, consistent with Equal and
// with the hash of the widened node.
func (s *Scalar) Hash() uint64 {
	if s == nil {
		panic("ir: Hash called on nil scalar")
	}
	return s.Node().Hash()
}

// hashNumber writes a representation consistent with Number.Equal:
// integers equal across the int64/uint64 split hash alike.
func hashNumber(h *maphash.Hash, n Number) {
	var b [8]byte
	if u, ok := n.Uint64(); ok {
		h.WriteByte('u')
		binary.LittleEndian.PutUint64(b[:], u)
		h.Write(b[:])
		return
	}
	if i, ok := n.Int64(); ok {
		h.WriteByte('i')
		binary.LittleEndian.PutUint64(b[:], uint64(i))
		h.Write(b[:])
		return
	}
	if f, ok := n.Float64(); ok {
		h.WriteByte('f')
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
		return
	}
	h.WriteByte('l')
	h.WriteString(n.String())
}
