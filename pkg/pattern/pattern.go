// Package pattern recognizes the single source construct this milestone
// compiles: a main function whose body is one return of a decimal literal.
// The accepted language is fixed and finite, so matching is a hand-written
// scan over the input rather than a regular expression.
package pattern

import "errors"

// ErrNoMatch reports that the source does not contain the recognized
// construct. It is the normal rejection path for unsupported input, not a
// defect, and callers should surface it as a user-facing diagnostic.
var ErrNoMatch = errors.New("source does not contain 'int main() { return <number>; }'")

// scanner walks the source text byte by byte while matching the construct.
type scanner struct {
	input    string
	length   int
	position int
}

// Find scans src for the first occurrence of the construct
//
//	int main ( ) { return <digits> ; }
//
// and returns the captured digit substring. Whitespace between tokens is
// permissive except after 'return', where at least one whitespace character
// must separate the keyword from the digits. The construct may be embedded
// anywhere in src; later milestones wrap it in larger programs.
func Find(src string) (string, bool) {
	for start := 0; start < len(src); start++ {
		s := &scanner{input: src, length: len(src), position: start}
		if lit, ok := s.matchConstruct(); ok {
			return lit, true
		}
	}
	return "", false
}

// matchConstruct attempts to match the whole construct at the scanner's
// current position.
func (s *scanner) matchConstruct() (string, bool) {
	if !s.expectKeyword("int") {
		return "", false
	}
	if s.skipWhitespace() == 0 {
		// keyword separation: 'intmain' is an identifier, not two keywords
		return "", false
	}
	if !s.expectKeyword("main") {
		return "", false
	}
	s.skipWhitespace()
	if !s.expectByte('(') {
		return "", false
	}
	s.skipWhitespace()
	if !s.expectByte(')') {
		return "", false
	}
	s.skipWhitespace()
	if !s.expectByte('{') {
		return "", false
	}
	s.skipWhitespace()
	if !s.expectKeyword("return") {
		return "", false
	}
	if s.skipWhitespace() == 0 {
		return "", false
	}

	literal, ok := s.scanDigits()
	if !ok {
		return "", false
	}

	s.skipWhitespace()
	if !s.expectByte(';') {
		return "", false
	}
	s.skipWhitespace()
	if !s.expectByte('}') {
		return "", false
	}

	return literal, true
}

// expectKeyword matches the literal keyword and requires that it is not the
// prefix of a longer identifier (e.g. 'integer', 'return_value').
func (s *scanner) expectKeyword(kw string) bool {
	end := s.position + len(kw)
	if end > s.length || s.input[s.position:end] != kw {
		return false
	}
	if end < s.length && isIdentByte(s.input[end]) {
		return false
	}
	s.position = end
	return true
}

// expectByte matches one literal byte.
func (s *scanner) expectByte(b byte) bool {
	if s.position >= s.length || s.input[s.position] != b {
		return false
	}
	s.position++
	return true
}

// skipWhitespace advances past ASCII whitespace and reports how many bytes
// were skipped.
func (s *scanner) skipWhitespace() int {
	n := 0
	for s.position < s.length {
		switch s.input[s.position] {
		case ' ', '\t', '\n', '\r':
			s.position++
			n++
		default:
			return n
		}
	}
	return n
}

// scanDigits captures one or more decimal digits. A sign character is not
// part of the literal character class, so '-5' never matches here.
func (s *scanner) scanDigits() (string, bool) {
	start := s.position
	for s.position < s.length && isDigit(s.input[s.position]) {
		s.position++
	}
	if s.position == start {
		return "", false
	}
	return s.input[start:s.position], true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentByte(b byte) bool {
	return b == '_' || isDigit(b) ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
