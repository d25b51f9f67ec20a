package lineskema

import (
	"io"

	textsrc "github.com/reoring/lineskema/source/text"
)

// LineSource abstracts over polymorphic line inputs. ReadLine yields the next
// newline-delimited line with its single trailing "\n" or "\r\n" terminator
// stripped, and returns io.EOF once the stream ends so callers can tell
// end-of-stream apart from every other failure. Line reports the 1-based
// number of the last line returned (0 before the first read).
type LineSource interface {
	ReadLine() (string, error)
	Line() int64
}

// FromReader wraps an io.Reader as a LineSource.
func FromReader(r io.Reader) LineSource { return textsrc.NewReader(r) }

// FromBytes wraps a byte slice as a LineSource.
func FromBytes(b []byte) LineSource { return textsrc.NewBytes(b) }

// FromString wraps a string as a LineSource.
func FromString(s string) LineSource { return textsrc.NewString(s) }
