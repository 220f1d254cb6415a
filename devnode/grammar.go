package devnode

// Revision selects one of the two grammar revisions. The revisions agree on
// the overall rule shape and disagree on numeric-bound encoding and a few
// token boundaries; neither is authoritative, so both are exposed and the
// caller picks.
type Revision int

const (
	// RevisionOriginal bounds major/minor numerals to 0..255 in the grammar
	// itself (violations are syntax errors), requires a digit after the '-'
	// of a minor range, allows an empty env-match pattern, and accepts any
	// non-NUL byte other than the segment separator inside path segments.
	RevisionOriginal Revision = iota + 1

	// RevisionSimplified accepts any digit run in the grammar and leaves
	// range checking to semantic validation, reads a dangling minor-range
	// '-' as "through 255", requires a non-empty env-match pattern, and
	// additionally rejects whitespace bytes inside paths.
	RevisionSimplified
)

// DefaultRevision is what the package-level ParseLine uses. Simplified is
// the later revision; picking it as the default is a convenience, not a
// statement that it is authoritative.
const DefaultRevision = RevisionSimplified

// maxDeviceNumber is the kernel bound on major and minor numbers.
const maxDeviceNumber = 255

// numeralCap keeps oversized digit runs from overflowing while still
// comparing above maxDeviceNumber during validation.
const numeralCap = 1 << 20

type scanner struct {
	rev   Revision
	input string
	line  int
	pos   int
}

func newScanner(rev Revision, input string, line int) *scanner {
	return &scanner{rev: rev, input: input, line: line}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) advance() {
	s.pos++
}

// column is the 1-based position of the next byte.
func (s *scanner) column() int {
	return s.pos + 1
}

func (s *scanner) errExpected(col int, expected string) *SyntaxError {
	found := s.input[col-1:]
	if i := indexSpace(found); i >= 0 {
		found = found[:i]
	}
	if len(found) > 16 {
		found = found[:16]
	}
	return &SyntaxError{Line: s.line, Column: col, Expected: expected, Found: found}
}

func (s *scanner) errValue(col int, reason string) *SemanticError {
	return &SemanticError{Line: s.line, Column: col, Reason: reason}
}

func isFieldSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func indexSpace(str string) int {
	for i := 0; i < len(str); i++ {
		if isFieldSpace(str[i]) {
			return i
		}
	}
	return -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isEnvVarChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || c == '_'
}

// skipSpace consumes a run of spaces and tabs, returning how many bytes it
// consumed.
func (s *scanner) skipSpace() int {
	n := 0
	for !s.eof() && isFieldSpace(s.peek()) {
		s.advance()
		n++
	}
	return n
}

// atFieldEnd reports whether the scanner sits on a field boundary.
func (s *scanner) atFieldEnd() bool {
	return s.eof() || isFieldSpace(s.peek())
}

// scanNumeral reads a digit run. Under RevisionOriginal the value must fit
// the kernel's 0..255 bound or the numeral itself is malformed; under
// RevisionSimplified any run is accepted and range checking is deferred to
// semantic validation, because grammar-embedded range checks are the part of
// the grammar that has already diverged once.
func (s *scanner) scanNumeral() (int, error) {
	col := s.column()
	if !isDigit(s.peek()) {
		return 0, s.errExpected(col, "digit")
	}
	v := 0
	for isDigit(s.peek()) {
		v = v*10 + int(s.peek()-'0')
		if v > numeralCap {
			v = numeralCap
		}
		s.advance()
	}
	if s.rev == RevisionOriginal && v > maxDeviceNumber {
		return 0, s.errExpected(col, "number in 0..255")
	}
	return v, nil
}

// scanMajMin reads maj,min[-max]. The caller has already consumed the '@'.
func (s *scanner) scanMajMin() (MajMin, error) {
	maj, err := s.scanNumeral()
	if err != nil {
		return MajMin{}, err
	}
	if s.peek() != ',' {
		return MajMin{}, s.errExpected(s.column(), "','")
	}
	s.advance()
	min, err := s.scanNumeral()
	if err != nil {
		return MajMin{}, err
	}
	sel := MajMin{Major: maj, Minor: min}
	if s.peek() == '-' {
		s.advance()
		switch {
		case isDigit(s.peek()):
			max, err := s.scanNumeral()
			if err != nil {
				return MajMin{}, err
			}
			sel.MaxMinor = &max
		case s.rev == RevisionSimplified:
			// dangling '-' reads as an open range
			max := maxDeviceNumber
			sel.MaxMinor = &max
		default:
			return MajMin{}, s.errExpected(s.column(), "digit")
		}
	}
	return sel, nil
}

// scanEnvVar reads an uppercase-and-underscore identifier.
func (s *scanner) scanEnvVar() (string, error) {
	col := s.column()
	start := s.pos
	for isEnvVarChar(s.peek()) {
		s.advance()
	}
	if s.pos == start {
		return "", s.errExpected(col, "environment variable name")
	}
	return s.input[start:s.pos], nil
}

// scanName reads an ASCII alphabetic name.
func (s *scanner) scanName() (string, error) {
	col := s.column()
	start := s.pos
	for isAlpha(s.peek()) {
		s.advance()
	}
	if s.pos == start {
		return "", s.errExpected(col, "name")
	}
	return s.input[start:s.pos], nil
}

// scanMode reads exactly three octal digits.
func (s *scanner) scanMode() (Mode, error) {
	var m Mode
	for i := 0; i < 3; i++ {
		c := s.peek()
		if c < '0' || c > '7' {
			return 0, s.errExpected(s.column(), "octal digit")
		}
		m = m<<3 | Mode(c-'0')
		s.advance()
	}
	if !s.atFieldEnd() {
		return 0, s.errExpected(s.column(), "end of mode")
	}
	return m, nil
}

// scanRegex reads an opaque regex token: a run of non-whitespace, non-';'
// bytes. The token is never parsed further here; it compiles lazily at
// evaluation time. May return an empty string, which the caller interprets.
func (s *scanner) scanRegex() string {
	start := s.pos
	for !s.eof() {
		c := s.peek()
		if isFieldSpace(c) || c == ';' || c == 0 {
			break
		}
		s.advance()
	}
	return s.input[start:s.pos]
}

// scanPath reads a path token: slash-separated segments, absolute or
// relative. NUL is always rejected; embedded non-separator whitespace is
// additionally rejected under RevisionSimplified.
func (s *scanner) scanPath() (string, error) {
	col := s.column()
	start := s.pos
	for !s.eof() && !isFieldSpace(s.peek()) {
		c := s.peek()
		if c == 0 {
			return "", s.errExpected(s.column(), "path character")
		}
		if s.rev == RevisionSimplified && (c == '\v' || c == '\f' || c == '\r') {
			return "", s.errExpected(s.column(), "path character")
		}
		s.advance()
	}
	if s.pos == start {
		return "", s.errExpected(col, "path")
	}
	return s.input[start:s.pos], nil
}
