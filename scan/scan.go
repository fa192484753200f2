package scan

import (
	"bytes"
	"fmt"
)

// ParseError reports a record that violates the input contract. Offset is
// the byte position of the record within the scanned range.
type ParseError struct {
	Offset int
	Line   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed record at byte %d: %q", e.Offset, e.Line)
}

// Scanner walks one record-aligned byte range and yields each record without
// allocating: names are slices into the underlying buffer, valid only until
// the buffer goes away, and temperatures come back as integer tenths of a
// degree. A malformed record stops the scan; the input is trusted, so there
// is no skip-and-continue.
type Scanner struct {
	buf []byte
	pos int
	err error
}

func New(buf []byte) *Scanner {
	return &Scanner{buf: buf}
}

// Next returns the next record. It reports ok=false at the end of the range
// or on a malformed record; Err tells the two apart.
func (s *Scanner) Next() (name []byte, tenths int32, ok bool) {
	if s.err != nil || s.pos >= len(s.buf) {
		return nil, 0, false
	}

	line := s.buf[s.pos:]
	if nl := bytes.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}

	sep := bytes.IndexByte(line, ';')
	if sep <= 0 {
		s.fail(line)
		return nil, 0, false
	}

	tenths, ok = parseTenths(line[sep+1:])
	if !ok {
		s.fail(line)
		return nil, 0, false
	}

	s.pos += len(line) + 1
	return line[:sep], tenths, true
}

// Err returns the error that stopped the scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) fail(line []byte) {
	s.err = &ParseError{Offset: s.pos, Line: string(line)}
}

// parseTenths parses a temperature with an optional sign, one or two integer
// digits and exactly one fractional digit, e.g. "-99.9". The result is the
// value scaled by ten; the two-digit limit keeps it within [-999, 999].
func parseTenths(b []byte) (int32, bool) {
	neg := len(b) > 0 && b[0] == '-'
	if neg {
		b = b[1:]
	}

	var v int32
	switch len(b) {
	case 3: // d.d
		if !digit(b[0]) || b[1] != '.' || !digit(b[2]) {
			return 0, false
		}
		v = int32(b[0]-'0')*10 + int32(b[2]-'0')
	case 4: // dd.d
		if !digit(b[0]) || !digit(b[1]) || b[2] != '.' || !digit(b[3]) {
			return 0, false
		}
		v = int32(b[0]-'0')*100 + int32(b[1]-'0')*10 + int32(b[3]-'0')
	default:
		return 0, false
	}

	if neg {
		v = -v
	}
	return v, true
}

func digit(c byte) bool {
	return c >= '0' && c <= '9'
}
