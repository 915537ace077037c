// Package scan provides the character-level cursor used by the SNBT codec:
// a rune reader with unbounded lookahead and pushback over an io.Reader.
package scan

import (
	"bufio"
	"io"
	"slices"
	"strings"
)

// Reader reads runes from an underlying stream through a growable pushback
// buffer. Peeked and unread runes are kept at the front of the buffer and
// consumed again by later reads.
type Reader struct {
	r   *bufio.Reader
	buf []rune // unconsumed prefix: pushed-back runes, oldest first
	off int    // rune offset of the next rune to be consumed
}

// New creates a new Reader over r.
func New(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Offset returns the rune offset of the next rune to be consumed. Unread
// moves it backwards.
func (s *Reader) Offset() int { return s.off }

// fill tops the pushback buffer up to n runes from the underlying stream.
// It reports whether n runes are available.
func (s *Reader) fill(n int) (bool, error) {
	for len(s.buf) < n {
		r, _, err := s.r.ReadRune()
		if err != nil {
			if err == io.EOF {
				return false, nil
			}
			return false, err
		}
		s.buf = append(s.buf, r)
	}
	return true, nil
}

// Read consumes and returns the next rune. It returns io.EOF at the end of
// the input.
func (s *Reader) Read() (rune, error) {
	ok, err := s.fill(1)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, io.EOF
	}
	r := s.buf[0]
	s.buf = s.buf[1:]
	s.off++
	return r, nil
}

// Peek returns the rune offset runes ahead of the cursor without consuming
// anything. Offset 0 is the rune Read would return next. It returns io.EOF
// if the input ends first.
func (s *Reader) Peek(offset int) (rune, error) {
	ok, err := s.fill(offset + 1)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, io.EOF
	}
	return s.buf[offset], nil
}

// Unread pushes str back onto the cursor so that subsequent reads see its
// runes again, in order, before anything else.
func (s *Reader) Unread(str string) {
	if str == "" {
		return
	}
	runes := []rune(str)
	s.buf = append(runes, s.buf...)
	s.off -= len(runes)
}

// SkipWhitespace consumes a run of spaces, tabs, carriage returns and line
// feeds. Reaching the end of the input is not an error.
func (s *Reader) SkipWhitespace() error {
	for {
		r, err := s.Peek(0)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if r != ' ' && r != '\t' && r != '\r' && r != '\n' {
			return nil
		}
		if _, err := s.Read(); err != nil {
			return err
		}
	}
}

// ReadSkipWhitespace skips whitespace and consumes the next rune.
func (s *Reader) ReadSkipWhitespace() (rune, error) {
	if err := s.SkipWhitespace(); err != nil {
		return 0, err
	}
	return s.Read()
}

// ReadUntil consumes and returns runes until one of the stop runes is seen.
// A backslash escapes the following rune: both are copied verbatim and the
// escaped rune is never treated as a stop. If include is true the stop rune
// is consumed and appended; otherwise it is left for the next read. Hitting
// the end of the input returns everything read so far along with io.EOF.
func (s *Reader) ReadUntil(include bool, stops ...rune) (string, error) {
	return s.readUntil(-1, include, stops)
}

// ReadUntilMax is ReadUntil bounded to at most max runes, so the result can
// always be pushed back in full afterwards. Reaching the bound is not an
// error.
func (s *Reader) ReadUntilMax(max int, include bool, stops ...rune) (string, error) {
	return s.readUntil(max, include, stops)
}

// ReadValue reads one raw value token of at most max runes: either a whole
// quoted literal (opening quote through the matching unescaped closing
// quote, quotes included) or a bare token ended by one of the SNBT value
// delimiters (which is not consumed).
func (s *Reader) ReadValue(max int) (string, error) {
	r, err := s.Peek(0)
	if err != nil {
		return "", err
	}
	if r == '\'' || r == '"' {
		q, err := s.Read()
		if err != nil {
			return "", err
		}
		rest, err := s.readUntil(max-1, true, []rune{q})
		return string(q) + rest, err
	}
	return s.readUntil(max, false, []rune{',', '}', ']', '\r', '\n', '\t'})
}

func (s *Reader) readUntil(max int, include bool, stops []rune) (string, error) {
	var b strings.Builder
	reads := 0
	for max < 0 || reads < max {
		r, err := s.Read()
		if err == io.EOF {
			return b.String(), io.EOF
		}
		if err != nil {
			return b.String(), err
		}
		reads++
		if r == '\\' {
			b.WriteRune(r)
			esc, err := s.Read()
			if err == io.EOF {
				return b.String(), io.EOF
			}
			if err != nil {
				return b.String(), err
			}
			reads++
			b.WriteRune(esc)
			continue
		}
		if slices.Contains(stops, r) {
			if include {
				b.WriteRune(r)
			} else {
				s.Unread(string(r))
			}
			return b.String(), nil
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
