package dsl

import (
	"fmt"

	lineskema "github.com/reoring/lineskema"
)

// ---- scalar shapes ----

// Int8 declares one signed 8-bit integer token.
func Int8() *lineskema.Shape { return scalar(lineskema.ScalarInt8) }

// Int16 declares one signed 16-bit integer token.
func Int16() *lineskema.Shape { return scalar(lineskema.ScalarInt16) }

// Int32 declares one signed 32-bit integer token.
func Int32() *lineskema.Shape { return scalar(lineskema.ScalarInt32) }

// Int64 declares one signed 64-bit integer token.
func Int64() *lineskema.Shape { return scalar(lineskema.ScalarInt64) }

// Uint8 declares one unsigned 8-bit integer token.
func Uint8() *lineskema.Shape { return scalar(lineskema.ScalarUint8) }

// Uint16 declares one unsigned 16-bit integer token.
func Uint16() *lineskema.Shape { return scalar(lineskema.ScalarUint16) }

// Uint32 declares one unsigned 32-bit integer token.
func Uint32() *lineskema.Shape { return scalar(lineskema.ScalarUint32) }

// Uint64 declares one unsigned 64-bit integer token.
func Uint64() *lineskema.Shape { return scalar(lineskema.ScalarUint64) }

// Float32 declares one IEEE 32-bit float token.
func Float32() *lineskema.Shape { return scalar(lineskema.ScalarFloat32) }

// Float64 declares one IEEE 64-bit float token.
func Float64() *lineskema.Shape { return scalar(lineskema.ScalarFloat64) }

// Bool declares one boolean token encoded as "0"/"1".
func Bool() *lineskema.Shape { return scalar(lineskema.ScalarBool) }

// Token declares one verbatim text token. Unlike Text it shares a line with
// neighboring scalar record fields.
func Token() *lineskema.Shape { return scalar(lineskema.ScalarToken) }

func scalar(k lineskema.ScalarKind) *lineskema.Shape {
	return &lineskema.Shape{Kind: lineskema.ShapeScalar, Scalar: k}
}

// Text declares one raw line, unsplit.
func Text() *lineskema.Shape { return &lineskema.Shape{Kind: lineskema.ShapeText} }

// ---- composite shapes ----

// Fixed declares exactly n positional tokens of a scalar element on one
// line. Non-scalar elements are rejected by Produce before any read.
func Fixed(elem *lineskema.Shape, n int) *lineskema.Shape {
	return &lineskema.Shape{Kind: lineskema.ShapeFixed, Elem: elem, Len: n}
}

// List declares a variable-length run. With a scalar or Text element the run
// is all tokens of one line and consumes no dimension hint; with a composite
// element the run length comes from the front dimension hint, shared
// uniformly by every element.
func List(elem *lineskema.Shape) *lineskema.Shape {
	return &lineskema.Shape{Kind: lineskema.ShapeList, Elem: elem}
}

// RecordBuilder accumulates named fields in declaration order.
type RecordBuilder struct {
	fields []lineskema.Field
	errs   []error
}

// Record creates a new record builder; chain Field then Build/MustBuild.
func Record() *RecordBuilder { return &RecordBuilder{} }

// Field appends a field. Declaration order is the read order and the hint
// consumption order.
func (b *RecordBuilder) Field(name string, sh *lineskema.Shape) *RecordBuilder {
	if name == "" {
		b.errs = append(b.errs, fmt.Errorf("dsl: record field with empty name"))
		return b
	}
	if sh == nil {
		b.errs = append(b.errs, fmt.Errorf("dsl: record field %q has nil shape", name))
		return b
	}
	for _, f := range b.fields {
		if f.Name == name {
			b.errs = append(b.errs, fmt.Errorf("dsl: duplicate record field %q", name))
			return b
		}
	}
	b.fields = append(b.fields, lineskema.Field{Name: name, Shape: sh})
	return b
}

// Build returns the record shape or the first accumulated builder error.
func (b *RecordBuilder) Build() (*lineskema.Shape, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	fields := make([]lineskema.Field, len(b.fields))
	copy(fields, b.fields)
	return &lineskema.Shape{Kind: lineskema.ShapeRecord, Fields: fields}, nil
}

// MustBuild is Build that panics on error; intended for statically known
// shapes.
func (b *RecordBuilder) MustBuild() *lineskema.Shape {
	sh, err := b.Build()
	if err != nil {
		panic(err)
	}
	return sh
}
