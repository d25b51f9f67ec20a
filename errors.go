package lineskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeEndOfStream reports that the input ended before the shape was
	// fully satisfied. End-of-stream is never silently treated as an empty
	// line; only the read that would occur after the last requested line may
	// legitimately observe it, and that read never happens.
	CodeEndOfStream = "end_of_stream"
	// CodeMalformedToken reports a token that does not match its scalar
	// kind's grammar.
	CodeMalformedToken = "malformed_token"
	// CodeUnsupportedKind reports a shape naming a kind or arrangement the
	// engine does not implement.
	CodeUnsupportedKind = "unsupported_kind"
	// CodeHintCountMismatch reports len(hints) != shape depth, detected
	// before any read.
	CodeHintCountMismatch = "hint_count_mismatch"
	// CodeShortRead reports a line with fewer tokens than a fixed run or a
	// record's scalar run requires.
	CodeShortRead = "short_read"
	// CodeOverflow reports a numeric token outside its kind's width.
	CodeOverflow = "overflow"
	// CodeTruncated reports a line exceeding ProduceOpt.MaxLineBytes.
	CodeTruncated = "truncated"
	// CodeParseError covers remaining failures (bad arguments, underlying
	// reader errors, encode arity mismatches).
	CodeParseError = "parse_error"
)

// Issue represents a single failure entry.
type Issue struct {
	Path    string // Slash pointer into the value tree (for example: /content/2/0).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	Line    int64  // 1-based input line number (-1 when unknown).
	// Params carries structured parameters (e.g., {"want":3, "got":1}) for
	// i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. malformed_token at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given path with provided code, message and
// params map. This is a convenience helper to improve readability at call
// sites with many parameters.
func IssueAt(path, code, msg string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: msg, Params: params, Line: -1}
}
