package lineskema

import (
	"context"
	"errors"
	"io"

	"github.com/reoring/lineskema/i18n"
	eng "github.com/reoring/lineskema/internal/engine"
)

// Produce is the primary entry point. It interprets the shape over the line
// source in one uninterrupted depth-first traversal, consuming one dimension
// hint per variable dimension in a pre-order walk of the shape. The hint
// count must equal sh.Depth() exactly; any mismatch fails before a single
// line is read. Errors abort the whole call — there is no partial result and
// no local recovery.
func Produce(ctx context.Context, sh *Shape, src LineSource, hints []int, opts ...ProduceOpt) (Value, error) {
	if sh == nil {
		return Value{}, singleIssue(CodeParseError, "nil shape")
	}
	if src == nil {
		return Value{}, singleIssue(CodeParseError, "nil line source")
	}
	var opt ProduceOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Delimiter == 0 {
		opt.Delimiter = ' '
	}

	n := toEngineNode(sh)
	if err := eng.ValidateNode(n); err != nil {
		return Value{}, toIssues(err)
	}
	for i, h := range hints {
		if h < 0 {
			return Value{}, Issues{Issue{
				Path: "/", Code: CodeHintCountMismatch, Line: -1,
				Message: i18n.T(CodeHintCountMismatch, nil),
				Hint:    "dimension hints must be non-negative",
				Params:  map[string]any{"index": i, "got": h},
			}}
		}
	}
	if want := eng.Depth(n); len(hints) != want {
		return Value{}, Issues{Issue{
			Path: "/", Code: CodeHintCountMismatch, Line: -1,
			Message: i18n.T(CodeHintCountMismatch, nil),
			Params:  map[string]any{"want": want, "got": len(hints)},
		}}
	}

	v, err := eng.Read(ctx, src, n, hints, eng.Options{Delim: opt.Delimiter, MaxLineBytes: opt.MaxLineBytes})
	if err != nil {
		return Value{}, toIssues(err)
	}
	return fromEngineVal(v), nil
}

// ProduceFromReader produces from an io.Reader using the text line driver.
func ProduceFromReader(ctx context.Context, sh *Shape, r io.Reader, hints []int, opts ...ProduceOpt) (Value, error) {
	return Produce(ctx, sh, FromReader(r), hints, opts...)
}

// ProduceFromBytes produces from an in-memory byte slice.
func ProduceFromBytes(ctx context.Context, sh *Shape, b []byte, hints []int, opts ...ProduceOpt) (Value, error) {
	return Produce(ctx, sh, FromBytes(b), hints, opts...)
}

// ProduceFromString produces from an in-memory string.
func ProduceFromString(ctx context.Context, sh *Shape, s string, hints []int, opts ...ProduceOpt) (Value, error) {
	return Produce(ctx, sh, FromString(s), hints, opts...)
}

// ---- helpers (error mapping) ----

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		p := ie.Path
		if p == "" {
			p = "/"
		}
		return AppendIssues(nil, Issue{Code: ie.Code, Path: p, Message: ie.Message, Cause: ie.Cause, Line: ie.Line})
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Line: -1})
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg, Line: -1})
}
