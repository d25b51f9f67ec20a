package lineskema_test

import (
	"testing"

	lineskema "github.com/reoring/lineskema"
	g "github.com/reoring/lineskema/dsl"
)

func TestToJSON_Projection(t *testing.T) {
	sh := g.Record().
		Field("name", g.Token()).
		Field("age", g.Uint8()).
		Field("scores", g.List(g.Int64())).
		MustBuild()
	v, err := produceString(t, sh, "alice 30\n7 9\n", nil)
	if err != nil {
		t.Fatalf("produce: %v", err)
	}
	out, err := lineskema.ToJSON(v)
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	// map projection renders object keys sorted
	if got, want := string(out), `{"age":30,"name":"alice","scores":[7,9]}`; got != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", got, want)
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	v := lineskema.Value{Kind: lineskema.ValueSeq, Seq: []lineskema.Value{
		{Kind: lineskema.ValueBool, Bool: true},
		{Kind: lineskema.ValueText, Text: "x"},
	}}
	out, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `[true,"x"]` {
		t.Fatalf("unexpected json %s", out)
	}
}
