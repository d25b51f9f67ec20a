package lineskema

import (
	eng "github.com/reoring/lineskema/internal/engine"
)

// ValueKind enumerates value node kinds.
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueUint
	ValueFloat
	ValueBool
	ValueText
	ValueSeq
	ValueRecord
)

// Value is the output tree, one node per shape node. Leaves own durable
// copies of their data; discarding or reusing the line source after Produce
// returns does not affect the result.
type Value struct {
	Kind   ValueKind
	Int    int64   // signed integers of any width
	Uint   uint64  // unsigned integers of any width
	Float  float64 // floats; float32 values are exactly representable
	Bool   bool
	Text   string
	Seq    []Value      // fixed runs and lists
	Fields []FieldValue // records, in declaration order
}

// FieldValue pairs a record field name with its value.
type FieldValue struct {
	Name  string
	Value Value
}

// Field looks up a record field by name.
func (v Value) Field(name string) (Value, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Equal reports deep equality. Floats compare exactly; produced trees
// round-trip through EncodeLines without drift, so exact comparison is the
// right notion here.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueInt:
		return v.Int == o.Int
	case ValueUint:
		return v.Uint == o.Uint
	case ValueFloat:
		return v.Float == o.Float
	case ValueBool:
		return v.Bool == o.Bool
	case ValueText:
		return v.Text == o.Text
	case ValueSeq:
		if len(v.Seq) != len(o.Seq) {
			return false
		}
		for i := range v.Seq {
			if !v.Seq[i].Equal(o.Seq[i]) {
				return false
			}
		}
		return true
	case ValueRecord:
		if len(v.Fields) != len(o.Fields) {
			return false
		}
		for i := range v.Fields {
			if v.Fields[i].Name != o.Fields[i].Name || !v.Fields[i].Value.Equal(o.Fields[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// AsAny projects the tree into plain Go values: int64/uint64/float64/bool/
// string leaves, []any sequences and map[string]any records. Record field
// order is not preserved by the map projection.
func (v Value) AsAny() any {
	switch v.Kind {
	case ValueInt:
		return v.Int
	case ValueUint:
		return v.Uint
	case ValueFloat:
		return v.Float
	case ValueBool:
		return v.Bool
	case ValueText:
		return v.Text
	case ValueSeq:
		out := make([]any, 0, len(v.Seq))
		for _, e := range v.Seq {
			out = append(out, e.AsAny())
		}
		return out
	case ValueRecord:
		out := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			out[f.Name] = f.Value.AsAny()
		}
		return out
	default:
		return nil
	}
}

// ---- engine.Val -> Value conversion ----

func fromEngineVal(v eng.Val) Value {
	switch v.Kind {
	case eng.ValInt:
		return Value{Kind: ValueInt, Int: v.Int}
	case eng.ValUint:
		return Value{Kind: ValueUint, Uint: v.Uint}
	case eng.ValFloat:
		return Value{Kind: ValueFloat, Float: v.Float}
	case eng.ValBool:
		return Value{Kind: ValueBool, Bool: v.Bool}
	case eng.ValText:
		return Value{Kind: ValueText, Text: v.Text}
	case eng.ValSeq:
		seq := make([]Value, 0, len(v.Seq))
		for _, e := range v.Seq {
			seq = append(seq, fromEngineVal(e))
		}
		return Value{Kind: ValueSeq, Seq: seq}
	case eng.ValRecord:
		fs := make([]FieldValue, 0, len(v.Fields))
		for _, f := range v.Fields {
			fs = append(fs, FieldValue{Name: f.Name, Value: fromEngineVal(f.Val)})
		}
		return Value{Kind: ValueRecord, Fields: fs}
	default:
		return Value{}
	}
}
