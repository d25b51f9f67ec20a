package engine

// Issue codes emitted by the engine. The public package re-exports the same
// strings as documented constants.
const (
	CodeEndOfStream     = "end_of_stream"
	CodeMalformedToken  = "malformed_token"
	CodeUnsupportedKind = "unsupported_kind"
	CodeShortRead       = "short_read"
	CodeOverflow        = "overflow"
	CodeTruncated       = "truncated"
	CodeParseError      = "parse_error"
)

// IssueError is a lightweight engine-level error carrying a code, a slash
// path into the value tree, and the input line number. The public package
// converts it into its Issues model at the boundary.
type IssueError struct {
	Code    string
	Path    string
	Line    int64
	Message string
	Cause   error
}

func (e IssueError) Error() string {
	p := e.Path
	if p == "" {
		p = "/"
	}
	return e.Code + " at " + p + ": " + e.Message
}

func (e IssueError) Unwrap() error { return e.Cause }
