package shapefile_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	lineskema "github.com/reoring/lineskema"
	g "github.com/reoring/lineskema/dsl"
	"github.com/reoring/lineskema/shapefile"
)

const matrixDoc = `
kind: record
fields:
  - name: content
    kind: list
    elem:
      kind: list
      elem: {kind: scalar, scalar: int64}
  - name: caption
    kind: text
`

func TestUnmarshal_ProducesUsableShape(t *testing.T) {
	sh, err := shapefile.Unmarshal([]byte(matrixDoc))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d := sh.Depth(); d != 1 {
		t.Fatalf("expected depth 1, got %d", d)
	}
	v, err := lineskema.Produce(context.Background(), sh, lineskema.FromString("1 2\n3 4\ndone\n"), []int{2})
	if err != nil {
		t.Fatalf("produce: %v", err)
	}
	content, _ := v.Field("content")
	caption, _ := v.Field("caption")
	if len(content.Seq) != 2 || content.Seq[1].Seq[1].Int != 4 || caption.Text != "done" {
		t.Fatalf("unexpected value %+v", v)
	}
}

func TestLoad_Reader(t *testing.T) {
	sh, err := shapefile.Load(strings.NewReader(`{kind: fixed, len: 3, elem: {kind: scalar, scalar: uint8}}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sh.Kind != lineskema.ShapeFixed || sh.Len != 3 || sh.Elem.Scalar != lineskema.ScalarUint8 {
		t.Fatalf("unexpected shape %+v", sh)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	sh := g.Record().
		Field("dims", g.Fixed(g.Int32(), 2)).
		Field("grid", g.List(g.List(g.Float64()))).
		Field("ok", g.Bool()).
		Field("label", g.Text()).
		MustBuild()

	data, err := shapefile.Marshal(sh)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	again, err := shapefile.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(sh, again) {
		t.Fatalf("round trip drifted:\nfirst:  %+v\nsecond: %+v\nyaml:\n%s", sh, again, data)
	}
}

func TestUnmarshal_UnknownKind(t *testing.T) {
	_, err := shapefile.Unmarshal([]byte(`kind: blob`))
	iss, ok := lineskema.AsIssues(err)
	if !ok || iss[0].Code != lineskema.CodeUnsupportedKind {
		t.Fatalf("expected unsupported_kind, got %v", err)
	}

	_, err = shapefile.Unmarshal([]byte(`{kind: scalar, scalar: int128}`))
	iss, ok = lineskema.AsIssues(err)
	if !ok || iss[0].Code != lineskema.CodeUnsupportedKind {
		t.Fatalf("expected unsupported_kind for scalar name, got %v", err)
	}
}

func TestUnmarshal_BadYAML(t *testing.T) {
	_, err := shapefile.Unmarshal([]byte("kind: [broken"))
	iss, ok := lineskema.AsIssues(err)
	if !ok || iss[0].Code != lineskema.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}
