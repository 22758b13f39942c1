package wire

import (
	"bufio"
	"bytes"
	"io"

	"git.solsynth.dev/hypernet/postcard/pkg/chat"
)

// maxLine bounds a single message line.
const maxLine = 1 << 20

// Scanner reads newline-delimited wire-form messages. Each non-blank line
// yields one decode result; a line that fails to decode does not stop the
// scan, so a caller can report every failure in a stream.
type Scanner struct {
	sc   *bufio.Scanner
	line int
	msg  chat.Message
	err  error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Scanner{sc: sc}
}

// Scan advances to the next non-blank line. It returns false once the input
// is exhausted or unreadable; Err then reports the read failure, if any.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		s.line++
		raw := bytes.TrimSpace(s.sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		s.msg, s.err = Unmarshal(raw)
		return true
	}
	s.msg, s.err = nil, s.sc.Err()
	return false
}

// Message returns the message decoded from the current line, or nil when
// the line failed to decode.
func (s *Scanner) Message() chat.Message { return s.msg }

// Err returns the decode error of the current line or, after Scan has
// returned false, the reader error that ended the scan.
func (s *Scanner) Err() error { return s.err }

// Line returns the 1-based input line number of the current line, blank
// lines included.
func (s *Scanner) Line() int { return s.line }
