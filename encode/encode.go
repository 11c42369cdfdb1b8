package encode

import (
	"io"
	"strings"

	"github.com/SamuelMarks/serde-json-extensions/ir"
)

type EncState struct {
	depth, indent int
	wire          bool

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default layout indents arrays one
// element per line; the wire option produces compact single-line text.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

// EncodeScalar writes a scalar to w by widening it first.
func EncodeScalar(s *ir.Scalar, w io.Writer, opts ...EncodeOption) error {
	return Encode(s.Node(), w, opts...)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		panic("type")
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if err := writeSep(w, es, "["); err != nil {
		return err
	}
	if n == 0 {
		return writeSep(w, es, "]")
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	es.colorType = ir.ArrayType
	return writeSep(w, es, "]")
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := string(ir.AppendQuoted(nil, node.String))
	return writeString(w, applyValueColor(es, ir.StringType, v))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	v := node.Number.String()
	return writeString(w, applyValueColor(es, ir.NumberType, v))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := "false"
	if node.Bool {
		v = "true"
	}
	return writeString(w, applyValueColor(es, ir.BoolType, v))
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, ir.NullType, "null"))
}

// FormatFloat renders a finite float the way number nodes render on the
// wire. It panics on NaN and infinities; callers screen those first.
func FormatFloat(f float64) string {
	n, ok := ir.NumberFromFloat64(f)
	if !ok {
		panic("encode: FormatFloat on non-finite float")
	}
	return n.String()
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeSep(w io.Writer, es *EncState, sep string) error {
	if es.Color != nil {
		sep = es.Color(es.colorType, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, ValueColor, v)
}
