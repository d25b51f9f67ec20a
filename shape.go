package lineskema

import (
	eng "github.com/reoring/lineskema/internal/engine"
)

// ShapeKind enumerates the closed set of shape node kinds.
type ShapeKind int

const (
	// ShapeScalar is one primitive token.
	ShapeScalar ShapeKind = iota
	// ShapeText is one raw line, unsplit.
	ShapeText
	// ShapeFixed is exactly Len positional scalar tokens on one line.
	ShapeFixed
	// ShapeList is a run of zero-or-more elements. With a scalar or text
	// element the run is all tokens of one line; with a composite element the
	// run length is the front dimension hint.
	ShapeList
	// ShapeRecord is a heterogeneous, ordered, fixed-arity field list.
	ShapeRecord
)

// ScalarKind enumerates the primitive token kinds the scalar parser accepts.
type ScalarKind int

const (
	ScalarInt8 ScalarKind = iota
	ScalarInt16
	ScalarInt32
	ScalarInt64
	ScalarUint8
	ScalarUint16
	ScalarUint32
	ScalarUint64
	ScalarFloat32
	ScalarFloat64
	// ScalarBool is a boolean encoded as a single "0"/"1" token.
	ScalarBool
	// ScalarToken is one token kept verbatim (unlike ShapeText it shares a
	// line with neighboring scalar fields instead of owning a whole line).
	ScalarToken
)

// Shape is the static, caller-supplied description of a value's nested
// structure. It must be acyclic and fully known before any read occurs, and
// is treated as immutable for the duration of one Produce call. Prefer
// building shapes through the dsl package.
type Shape struct {
	Kind   ShapeKind
	Scalar ScalarKind // set when Kind is ShapeScalar
	Len    int        // set when Kind is ShapeFixed
	Elem   *Shape     // element shape for ShapeFixed/ShapeList
	Fields []Field    // record fields in declaration order
}

// Field names one record field and its shape.
type Field struct {
	Name  string
	Shape *Shape
}

// Depth reports how many dimension hints the shape statically requires:
// scalars, text lines and fixed runs need none; a list over a composite
// element needs one for its own length plus its element's depth; a record
// sums its fields in declaration order. Lists over scalar or text elements
// take their length from the line itself and need none.
func (s *Shape) Depth() int {
	return eng.Depth(toEngineNode(s))
}

// ---- Shape -> engine.Node conversion ----

func toEngineNode(s *Shape) *eng.Node {
	if s == nil {
		return nil
	}
	n := &eng.Node{Len: s.Len, Elem: toEngineNode(s.Elem)}
	switch s.Kind {
	case ShapeScalar:
		n.Kind = eng.KindScalar
		n.Scalar = toEngineScalar(s.Scalar)
	case ShapeText:
		n.Kind = eng.KindText
	case ShapeFixed:
		n.Kind = eng.KindFixed
	case ShapeList:
		n.Kind = eng.KindList
	case ShapeRecord:
		n.Kind = eng.KindRecord
		n.Fields = make([]eng.FieldNode, 0, len(s.Fields))
		for _, f := range s.Fields {
			n.Fields = append(n.Fields, eng.FieldNode{Name: f.Name, Node: toEngineNode(f.Shape)})
		}
	default:
		// carried through so the engine rejects it as unsupported
		n.Kind = eng.NodeKind(-1)
	}
	return n
}

func toEngineScalar(k ScalarKind) eng.ScalarKind {
	switch k {
	case ScalarInt8:
		return eng.ScalarInt8
	case ScalarInt16:
		return eng.ScalarInt16
	case ScalarInt32:
		return eng.ScalarInt32
	case ScalarInt64:
		return eng.ScalarInt64
	case ScalarUint8:
		return eng.ScalarUint8
	case ScalarUint16:
		return eng.ScalarUint16
	case ScalarUint32:
		return eng.ScalarUint32
	case ScalarUint64:
		return eng.ScalarUint64
	case ScalarFloat32:
		return eng.ScalarFloat32
	case ScalarFloat64:
		return eng.ScalarFloat64
	case ScalarBool:
		return eng.ScalarBool
	case ScalarToken:
		return eng.ScalarToken
	default:
		return eng.ScalarKind(-1)
	}
}
