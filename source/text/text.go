// Package text provides the line-reading driver: a buffered reader that
// yields newline-delimited lines with a single trailing "\n" or "\r\n"
// stripped, and tracks 1-based line numbers for diagnostics.
package text

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	eng "github.com/reoring/lineskema/internal/engine"
)

type lineReader struct {
	br   *bufio.Reader
	line int64
	done bool
}

// NewReader wraps an io.Reader into an engine.LineSource.
func NewReader(r io.Reader) eng.LineSource {
	return &lineReader{br: bufio.NewReader(r)}
}

// NewBytes wraps a byte slice into an engine.LineSource.
func NewBytes(b []byte) eng.LineSource { return NewReader(bytes.NewReader(b)) }

// NewString wraps a string into an engine.LineSource.
func NewString(s string) eng.LineSource { return NewReader(strings.NewReader(s)) }

// ReadLine returns the next line with its terminator stripped. A final line
// without a trailing newline is still returned as a line; the io.EOF that
// produced it surfaces on the following call. ReadLine never returns a line
// together with an error.
func (r *lineReader) ReadLine() (string, error) {
	if r.done {
		return "", io.EOF
	}
	ln, err := r.br.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if ln == "" {
				r.done = true
				return "", io.EOF
			}
			// last line had no terminator; report EOF on the next call
			r.done = true
			r.line++
			return ln, nil
		}
		return "", err
	}
	r.line++
	ln = strings.TrimSuffix(ln, "\n")
	ln = strings.TrimSuffix(ln, "\r")
	return ln, nil
}

// Line reports the 1-based number of the last line returned (0 before the
// first read).
func (r *lineReader) Line() int64 { return r.line }
