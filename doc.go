package lineskema

// Package lineskema provides:
//
// - Shape-driven deserialization of line/delimiter-oriented text streams via Produce
// - A stable error model via Issues (slash path, code, message, line number)
// - Depth inference over shapes and fail-fast dimension-hint checking
// - Serialization back into lines via EncodeLines and a JSON projection via ToJSON
//
// Design policy:
// - Keep only public APIs in the root package; put the interpreter under internal/engine.
// - Place the shape DSL under dsl/, the line driver under source/text, and YAML shape
//   documents under shapefile/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	sh := dsl.Record().
//	    Field("size", dsl.List(dsl.List(dsl.Int64()))).
//	    Field("name", dsl.Text()).
//	    MustBuild()
//	v, err := lineskema.Produce(ctx, sh, lineskema.FromReader(r), []int{rows})
//
// One call to Produce is one uninterrupted, single-threaded, depth-first
// traversal of the shape: lines are not self-describing, so nothing is read
// out of order or speculatively. Dimension hints are consumed depth-first in
// declaration order, and one hint describes a dimension shared uniformly by
// every sibling element of a list.
