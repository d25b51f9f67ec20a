package engine

import (
	"errors"
	"strconv"

	"fortio.org/safecast"
)

// parseScalar converts one token into a value of the requested kind. The
// switch is exhaustive over the closed kind set; anything else is an
// unsupported-kind error, never a silent default.
func (r *reader) parseScalar(kind ScalarKind, tok, path string) (Val, error) {
	switch kind {
	case ScalarInt8, ScalarInt16, ScalarInt32, ScalarInt64:
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return Val{}, r.numErr(err, tok, path, "signed integer")
		}
		if err := checkIntWidth(kind, v); err != nil {
			return Val{}, IssueError{Code: CodeOverflow, Path: path, Line: r.src.Line(), Message: "integer " + tok + " overflows the target width", Cause: err}
		}
		return Val{Kind: ValInt, Int: v}, nil
	case ScalarUint8, ScalarUint16, ScalarUint32, ScalarUint64:
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return Val{}, r.numErr(err, tok, path, "unsigned integer")
		}
		if err := checkUintWidth(kind, v); err != nil {
			return Val{}, IssueError{Code: CodeOverflow, Path: path, Line: r.src.Line(), Message: "integer " + tok + " overflows the target width", Cause: err}
		}
		return Val{Kind: ValUint, Uint: v}, nil
	case ScalarFloat32, ScalarFloat64:
		bits := 64
		if kind == ScalarFloat32 {
			bits = 32
		}
		v, err := strconv.ParseFloat(tok, bits)
		if err != nil {
			return Val{}, r.numErr(err, tok, path, "float")
		}
		return Val{Kind: ValFloat, Float: v}, nil
	case ScalarBool:
		switch tok {
		case "1":
			return Val{Kind: ValBool, Bool: true}, nil
		case "0":
			return Val{Kind: ValBool, Bool: false}, nil
		default:
			return Val{}, IssueError{Code: CodeMalformedToken, Path: path, Line: r.src.Line(), Message: "boolean token must be \"0\" or \"1\", got " + strconv.Quote(tok)}
		}
	case ScalarToken:
		return Val{Kind: ValText, Text: tok}, nil
	default:
		return Val{}, IssueError{Code: CodeUnsupportedKind, Path: path, Line: r.src.Line(), Message: "scalar kind " + strconv.Itoa(int(kind)) + " is not implemented"}
	}
}

// numErr distinguishes range failures (overflow) from grammar failures
// (malformed) out of a strconv error.
func (r *reader) numErr(err error, tok, path, want string) error {
	if errors.Is(err, strconv.ErrRange) {
		return IssueError{Code: CodeOverflow, Path: path, Line: r.src.Line(), Message: want + " " + strconv.Quote(tok) + " is out of range", Cause: err}
	}
	return IssueError{Code: CodeMalformedToken, Path: path, Line: r.src.Line(), Message: "token " + strconv.Quote(tok) + " is not a valid " + want, Cause: err}
}

func checkIntWidth(kind ScalarKind, v int64) error {
	switch kind {
	case ScalarInt8:
		_, err := safecast.Conv[int8](v)
		return err
	case ScalarInt16:
		_, err := safecast.Conv[int16](v)
		return err
	case ScalarInt32:
		_, err := safecast.Conv[int32](v)
		return err
	default:
		return nil
	}
}

func checkUintWidth(kind ScalarKind, v uint64) error {
	switch kind {
	case ScalarUint8:
		_, err := safecast.Conv[uint8](v)
		return err
	case ScalarUint16:
		_, err := safecast.Conv[uint16](v)
		return err
	case ScalarUint32:
		_, err := safecast.Conv[uint32](v)
		return err
	default:
		return nil
	}
}
