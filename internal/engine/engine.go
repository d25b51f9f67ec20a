package engine

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
)

// NodeKind represents shape node kinds in the engine IR.
type NodeKind int

const (
	KindScalar NodeKind = iota
	KindText
	KindFixed
	KindList
	KindRecord
)

// ScalarKind enumerates the closed set of token kinds the scalar parser
// implements. Adding a kind means touching every exhaustive switch below;
// that is deliberate.
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
	ScalarBool
	ScalarToken
)

// Node is the engine-side shape IR. The public package converts its Shape
// into Nodes at the boundary.
type Node struct {
	Kind   NodeKind
	Scalar ScalarKind
	Len    int
	Elem   *Node
	Fields []FieldNode
}

// FieldNode pairs a record field name with its shape node.
type FieldNode struct {
	Name string
	Node *Node
}

// lineElem reports whether a list element is consumed token-wise from one
// shared line (scalar or text elements) instead of via a dimension hint.
func lineElem(n *Node) bool {
	return n != nil && (n.Kind == KindScalar || n.Kind == KindText)
}

// Depth computes how many dimension hints a node statically requires. Pure,
// no I/O.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindScalar, KindText, KindFixed:
		return 0
	case KindList:
		if lineElem(n.Elem) {
			return 0
		}
		return 1 + Depth(n.Elem)
	case KindRecord:
		d := 0
		for _, f := range n.Fields {
			d += Depth(f.Node)
		}
		return d
	default:
		return 0
	}
}

// ValidateNode rejects shapes the engine does not implement before any read
// occurs: nil children, fixed runs over non-scalar elements, negative fixed
// lengths, and duplicate record field names.
func ValidateNode(n *Node) error {
	return validateNode(n, "")
}

func validateNode(n *Node, path string) error {
	if n == nil {
		return IssueError{Code: CodeUnsupportedKind, Path: path, Line: -1, Message: "nil shape node"}
	}
	switch n.Kind {
	case KindScalar, KindText:
		return nil
	case KindFixed:
		if n.Len < 0 {
			return IssueError{Code: CodeUnsupportedKind, Path: path, Line: -1, Message: "fixed run with negative length"}
		}
		if n.Elem == nil || n.Elem.Kind != KindScalar {
			return IssueError{Code: CodeUnsupportedKind, Path: path, Line: -1, Message: "fixed run requires a scalar element"}
		}
		return nil
	case KindList:
		return validateNode(n.Elem, path+"/*")
	case KindRecord:
		seen := make(map[string]struct{}, len(n.Fields))
		for _, f := range n.Fields {
			if _, dup := seen[f.Name]; dup {
				return IssueError{Code: CodeUnsupportedKind, Path: path + "/" + f.Name, Line: -1, Message: "duplicate record field name"}
			}
			seen[f.Name] = struct{}{}
			if err := validateNode(f.Node, path+"/"+f.Name); err != nil {
				return err
			}
		}
		return nil
	default:
		return IssueError{Code: CodeUnsupportedKind, Path: path, Line: -1, Message: "unknown shape kind"}
	}
}

// LineSource is the minimal line-reading interface required by the engine.
// ReadLine returns io.EOF once the stream is exhausted; Line reports the
// 1-based number of the last line returned (0 before the first read).
type LineSource interface {
	ReadLine() (string, error)
	Line() int64
}

// Options carries per-read knobs projected from the public option struct.
type Options struct {
	Delim        byte
	MaxLineBytes int64
}

// Read interprets the shape node over the line source, consuming dimension
// hints depth-first in declaration order. One call is one uninterrupted
// traversal; any error aborts it with no partial result.
//
// Callers must pass exactly Depth(n) hints; Read indexes the front of the
// slice without re-checking.
func Read(ctx context.Context, src LineSource, n *Node, hints []int, opt Options) (Val, error) {
	r := &reader{src: src, delim: opt.Delim, maxLine: opt.MaxLineBytes}
	return r.readValue(ctx, n, hints, "")
}

type reader struct {
	src     LineSource
	delim   byte
	maxLine int64
}

func (r *reader) nextLine(path string) (string, error) {
	ln, err := r.src.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", IssueError{Code: CodeEndOfStream, Path: path, Line: r.src.Line(), Message: "input ended before the shape was satisfied", Cause: err}
		}
		return "", IssueError{Code: CodeParseError, Path: path, Line: r.src.Line(), Message: err.Error(), Cause: err}
	}
	if r.maxLine > 0 && int64(len(ln)) > r.maxLine {
		return "", IssueError{Code: CodeTruncated, Path: path, Line: r.src.Line(), Message: "line exceeds max line bytes"}
	}
	return ln, nil
}

func (r *reader) readValue(ctx context.Context, n *Node, hints []int, path string) (Val, error) {
	switch n.Kind {
	case KindScalar:
		ln, err := r.nextLine(path)
		if err != nil {
			return Val{}, err
		}
		cur := cursor{line: ln}
		tok, _ := cur.next(r.delim)
		return r.parseScalar(n.Scalar, tok, path)
	case KindText:
		ln, err := r.nextLine(path)
		if err != nil {
			return Val{}, err
		}
		return Val{Kind: ValText, Text: ln}, nil
	case KindFixed:
		return r.readFixed(n, path)
	case KindList:
		if lineElem(n.Elem) {
			return r.readLineList(n.Elem, path)
		}
		// The front hint is the sibling-uniform element count; every element
		// recurses over the same remaining slice.
		count := hints[0]
		rest := hints[1:]
		seq := make([]Val, 0, count)
		for i := 0; i < count; i++ {
			ev, err := r.readValue(ctx, n.Elem, rest, childPath(path, i))
			if err != nil {
				return Val{}, err
			}
			seq = append(seq, ev)
		}
		return Val{Kind: ValSeq, Seq: seq}, nil
	case KindRecord:
		return r.walkRecord(ctx, n.Fields, hints, path)
	default:
		return Val{}, IssueError{Code: CodeUnsupportedKind, Path: path, Line: r.src.Line(), Message: "unknown shape kind"}
	}
}

// readFixed consumes exactly one line and parses the first Len tokens
// positionally. Extra tokens are ignored; fewer is a short read.
func (r *reader) readFixed(n *Node, path string) (Val, error) {
	ln, err := r.nextLine(path)
	if err != nil {
		return Val{}, err
	}
	toks := strings.Split(ln, string(r.delim))
	if len(toks) < n.Len {
		return Val{}, IssueError{
			Code: CodeShortRead, Path: path, Line: r.src.Line(),
			Message: "line has " + strconv.Itoa(len(toks)) + " tokens, fixed run needs " + strconv.Itoa(n.Len),
		}
	}
	seq := make([]Val, 0, n.Len)
	for i := 0; i < n.Len; i++ {
		ev, err := r.parseScalar(n.Elem.Scalar, toks[i], childPath(path, i))
		if err != nil {
			return Val{}, err
		}
		seq = append(seq, ev)
	}
	return Val{Kind: ValSeq, Seq: seq}, nil
}

// readLineList consumes one line and parses every token on it. An empty line
// splits into one empty token, so a text-element list produces [""] rather
// than zero elements; "empty line" and "no elements" stay distinguishable.
func (r *reader) readLineList(elem *Node, path string) (Val, error) {
	ln, err := r.nextLine(path)
	if err != nil {
		return Val{}, err
	}
	toks := strings.Split(ln, string(r.delim))
	seq := make([]Val, 0, len(toks))
	for i, tok := range toks {
		var ev Val
		if elem.Kind == KindText {
			ev = Val{Kind: ValText, Text: tok}
		} else {
			ev, err = r.parseScalar(elem.Scalar, tok, childPath(path, i))
			if err != nil {
				return Val{}, err
			}
		}
		seq = append(seq, ev)
	}
	return Val{Kind: ValSeq, Seq: seq}, nil
}

// walkRecord drives field-by-field parsing. Consecutive scalar fields share
// one line through a token cursor; the last scalar on a line may run to
// end-of-line without a trailing delimiter. A composite or text field
// discards unconsumed partial-line state, recurses over the front slice of
// the remaining hints sized by its depth, and only then advances the hints
// cursor. This front-consumption, declaration-order rule is what maps a flat
// hint list deterministically onto a nested shape; it must not be reordered.
func (r *reader) walkRecord(ctx context.Context, fields []FieldNode, hints []int, path string) (Val, error) {
	out := make([]FieldVal, 0, len(fields))
	var cur *cursor
	for _, f := range fields {
		fpath := path + "/" + f.Name
		if f.Node.Kind == KindScalar {
			if cur == nil {
				ln, err := r.nextLine(fpath)
				if err != nil {
					return Val{}, err
				}
				cur = &cursor{line: ln}
			}
			tok, ok := cur.next(r.delim)
			if !ok {
				return Val{}, IssueError{Code: CodeShortRead, Path: fpath, Line: r.src.Line(), Message: "shared line has no token left for field"}
			}
			fv, err := r.parseScalar(f.Node.Scalar, tok, fpath)
			if err != nil {
				return Val{}, err
			}
			out = append(out, FieldVal{Name: f.Name, Val: fv})
			continue
		}
		cur = nil
		d := Depth(f.Node)
		fv, err := r.readValue(ctx, f.Node, hints[:d], fpath)
		if err != nil {
			return Val{}, err
		}
		hints = hints[d:]
		out = append(out, FieldVal{Name: f.Name, Val: fv})
	}
	return Val{Kind: ValRecord, Fields: out}, nil
}

// cursor walks delimiter-separated tokens across one shared line.
type cursor struct {
	line string
	off  int
	done bool
}

func (c *cursor) next(delim byte) (string, bool) {
	if c.done {
		return "", false
	}
	if idx := strings.IndexByte(c.line[c.off:], delim); idx >= 0 {
		tok := c.line[c.off : c.off+idx]
		c.off += idx + 1
		return tok, true
	}
	tok := c.line[c.off:]
	c.done = true
	return tok, true
}

func childPath(path string, i int) string {
	return path + "/" + strconv.Itoa(i)
}
