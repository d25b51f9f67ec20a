// Package dsl provides a small builder API for lineskema shapes.
//
// Overview
//   - Scalars: Int8..Int64, Uint8..Uint64, Float32/Float64, Bool ("0"/"1"), Token.
//   - Text(): one raw line, unsplit.
//   - Fixed(elem, n): exactly n positional scalar tokens on one line.
//   - List(elem): all tokens of one line (scalar/Text element) or a
//     hint-sized run of composite elements.
//   - Record(): chain Field(name, shape) in read order, then Build()/MustBuild().
//
// Entry points
//   - Record().Field("w", Int64()).Field("rows", List(List(Int64()))).MustBuild()
//   - lineskema.Produce(ctx, sh, src, hints) consumes the built shape.
//
// Shapes built here are plain lineskema.Shape values; the builders only add
// construction-time checks (duplicate or empty field names, nil shapes).
package dsl
