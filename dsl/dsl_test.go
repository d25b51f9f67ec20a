package dsl_test

import (
	"testing"

	lineskema "github.com/reoring/lineskema"
	g "github.com/reoring/lineskema/dsl"
)

func TestRecordBuilder_Basic(t *testing.T) {
	sh, err := g.Record().
		Field("w", g.Int64()).
		Field("rows", g.List(g.List(g.Int32()))).
		Field("name", g.Text()).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if sh.Kind != lineskema.ShapeRecord || len(sh.Fields) != 3 {
		t.Fatalf("unexpected shape %+v", sh)
	}
	if sh.Fields[0].Name != "w" || sh.Fields[1].Name != "rows" || sh.Fields[2].Name != "name" {
		t.Fatalf("field order not preserved: %+v", sh.Fields)
	}
	if d := sh.Depth(); d != 1 {
		t.Fatalf("expected depth 1, got %d", d)
	}
}

func TestRecordBuilder_DuplicateField(t *testing.T) {
	_, err := g.Record().
		Field("x", g.Int64()).
		Field("x", g.Text()).
		Build()
	if err == nil {
		t.Fatalf("expected duplicate field error")
	}
}

func TestRecordBuilder_NilShapeAndEmptyName(t *testing.T) {
	if _, err := g.Record().Field("x", nil).Build(); err == nil {
		t.Fatalf("expected nil shape error")
	}
	if _, err := g.Record().Field("", g.Int64()).Build(); err == nil {
		t.Fatalf("expected empty name error")
	}
}

func TestRecordBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustBuild to panic")
		}
	}()
	g.Record().Field("x", nil).MustBuild()
}

func TestScalarBuilders(t *testing.T) {
	cases := []struct {
		shape *lineskema.Shape
		want  lineskema.ScalarKind
	}{
		{g.Int8(), lineskema.ScalarInt8},
		{g.Int16(), lineskema.ScalarInt16},
		{g.Int32(), lineskema.ScalarInt32},
		{g.Int64(), lineskema.ScalarInt64},
		{g.Uint8(), lineskema.ScalarUint8},
		{g.Uint16(), lineskema.ScalarUint16},
		{g.Uint32(), lineskema.ScalarUint32},
		{g.Uint64(), lineskema.ScalarUint64},
		{g.Float32(), lineskema.ScalarFloat32},
		{g.Float64(), lineskema.ScalarFloat64},
		{g.Bool(), lineskema.ScalarBool},
		{g.Token(), lineskema.ScalarToken},
	}
	for _, tc := range cases {
		if tc.shape.Kind != lineskema.ShapeScalar || tc.shape.Scalar != tc.want {
			t.Fatalf("unexpected scalar shape %+v, want kind %v", tc.shape, tc.want)
		}
	}
	if g.Text().Kind != lineskema.ShapeText {
		t.Fatalf("Text must build a text shape")
	}
	fx := g.Fixed(g.Int64(), 4)
	if fx.Kind != lineskema.ShapeFixed || fx.Len != 4 || fx.Elem.Scalar != lineskema.ScalarInt64 {
		t.Fatalf("unexpected fixed shape %+v", fx)
	}
}
