package lineskema

import (
	"io"
	"strconv"
	"strings"
)

// EncodeLines serializes a value back into lines under the same shape and
// delimiter that produced it. Consecutive scalar record fields re-join onto
// one shared line, mirroring how the record walker consumes them, so
// producing the encoded lines again with the same shape and hints yields an
// equal tree.
func EncodeLines(sh *Shape, v Value, opts ...ProduceOpt) ([]string, error) {
	if sh == nil {
		return nil, singleIssue(CodeParseError, "nil shape")
	}
	var opt ProduceOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Delimiter == 0 {
		opt.Delimiter = ' '
	}
	e := &encoder{delim: string(opt.Delimiter)}
	if err := e.encodeValue(sh, v, ""); err != nil {
		return nil, err
	}
	return e.lines, nil
}

// EncodeTo writes the encoded lines to w, each terminated by a newline.
func EncodeTo(w io.Writer, sh *Shape, v Value, opts ...ProduceOpt) error {
	lines, err := EncodeLines(sh, v, opts...)
	if err != nil {
		return err
	}
	for _, ln := range lines {
		if _, err := io.WriteString(w, ln+"\n"); err != nil {
			return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Line: -1})
		}
	}
	return nil
}

type encoder struct {
	delim string
	lines []string
}

func (e *encoder) encodeValue(sh *Shape, v Value, path string) error {
	switch sh.Kind {
	case ShapeScalar:
		tok, err := formatScalar(sh.Scalar, v, path)
		if err != nil {
			return err
		}
		e.lines = append(e.lines, tok)
		return nil
	case ShapeText:
		if v.Kind != ValueText {
			return e.mismatch(path, "text line")
		}
		e.lines = append(e.lines, v.Text)
		return nil
	case ShapeFixed:
		if v.Kind != ValueSeq {
			return e.mismatch(path, "fixed run")
		}
		if len(v.Seq) != sh.Len {
			return AppendIssues(nil, IssueAt(orRoot(path), CodeParseError,
				"fixed run has "+strconv.Itoa(len(v.Seq))+" values, shape needs "+strconv.Itoa(sh.Len), nil))
		}
		return e.encodeTokenLine(sh.Elem, v.Seq, path)
	case ShapeList:
		if v.Kind != ValueSeq {
			return e.mismatch(path, "list")
		}
		if sh.Elem != nil && (sh.Elem.Kind == ShapeScalar || sh.Elem.Kind == ShapeText) {
			return e.encodeTokenLine(sh.Elem, v.Seq, path)
		}
		for i, el := range v.Seq {
			if err := e.encodeValue(sh.Elem, el, childPath(path, i)); err != nil {
				return err
			}
		}
		return nil
	case ShapeRecord:
		return e.encodeRecord(sh, v, path)
	default:
		return AppendIssues(nil, IssueAt(orRoot(path), CodeUnsupportedKind, "unknown shape kind", nil))
	}
}

// encodeTokenLine joins a run of scalar or text elements onto one line. An
// empty sequence and a one-empty-token sequence both render as an empty
// line; the parser maps an empty line to [""], which is why the round-trip
// property is stated over produced trees.
func (e *encoder) encodeTokenLine(elem *Shape, seq []Value, path string) error {
	toks := make([]string, 0, len(seq))
	for i, el := range seq {
		p := childPath(path, i)
		if elem.Kind == ShapeText {
			if el.Kind != ValueText {
				return e.mismatch(p, "text token")
			}
			toks = append(toks, el.Text)
			continue
		}
		tok, err := formatScalar(elem.Scalar, el, p)
		if err != nil {
			return err
		}
		toks = append(toks, tok)
	}
	e.lines = append(e.lines, strings.Join(toks, e.delim))
	return nil
}

// encodeRecord buffers consecutive scalar fields and flushes them as one
// shared line whenever a composite or text field interrupts the run.
func (e *encoder) encodeRecord(sh *Shape, v Value, path string) error {
	if v.Kind != ValueRecord || len(v.Fields) != len(sh.Fields) {
		return e.mismatch(path, "record")
	}
	var run []string
	flush := func() {
		if run != nil {
			e.lines = append(e.lines, strings.Join(run, e.delim))
			run = nil
		}
	}
	for i, f := range sh.Fields {
		fv := v.Fields[i]
		fpath := path + "/" + f.Name
		if fv.Name != f.Name {
			return e.mismatch(fpath, "record field")
		}
		if f.Shape.Kind == ShapeScalar {
			tok, err := formatScalar(f.Shape.Scalar, fv.Value, fpath)
			if err != nil {
				return err
			}
			run = append(run, tok)
			continue
		}
		flush()
		if err := e.encodeValue(f.Shape, fv.Value, fpath); err != nil {
			return err
		}
	}
	flush()
	return nil
}

func (e *encoder) mismatch(path, want string) error {
	return AppendIssues(nil, IssueAt(orRoot(path), CodeParseError, "value does not match shape, expected "+want, nil))
}

func formatScalar(kind ScalarKind, v Value, path string) (string, error) {
	switch kind {
	case ScalarInt8, ScalarInt16, ScalarInt32, ScalarInt64:
		if v.Kind != ValueInt {
			return "", AppendIssues(nil, IssueAt(orRoot(path), CodeParseError, "value does not match shape, expected signed integer", nil))
		}
		return strconv.FormatInt(v.Int, 10), nil
	case ScalarUint8, ScalarUint16, ScalarUint32, ScalarUint64:
		if v.Kind != ValueUint {
			return "", AppendIssues(nil, IssueAt(orRoot(path), CodeParseError, "value does not match shape, expected unsigned integer", nil))
		}
		return strconv.FormatUint(v.Uint, 10), nil
	case ScalarFloat32, ScalarFloat64:
		if v.Kind != ValueFloat {
			return "", AppendIssues(nil, IssueAt(orRoot(path), CodeParseError, "value does not match shape, expected float", nil))
		}
		bits := 64
		if kind == ScalarFloat32 {
			bits = 32
		}
		// shortest representation that reparses to the same value
		return strconv.FormatFloat(v.Float, 'g', -1, bits), nil
	case ScalarBool:
		if v.Kind != ValueBool {
			return "", AppendIssues(nil, IssueAt(orRoot(path), CodeParseError, "value does not match shape, expected bool", nil))
		}
		if v.Bool {
			return "1", nil
		}
		return "0", nil
	case ScalarToken:
		if v.Kind != ValueText {
			return "", AppendIssues(nil, IssueAt(orRoot(path), CodeParseError, "value does not match shape, expected token", nil))
		}
		return v.Text, nil
	default:
		return "", AppendIssues(nil, IssueAt(orRoot(path), CodeUnsupportedKind, "scalar kind "+strconv.Itoa(int(kind))+" is not implemented", nil))
	}
}

func childPath(path string, i int) string { return path + "/" + strconv.Itoa(i) }

func orRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
