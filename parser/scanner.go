// Package parser implements Laskin's token-less recursive-descent parser.
// There is no separate lexer pass producing a token
// stream — ParseStatement and ParseExpression read structural forms
// directly off the rune stream, falling back to a maximal non-structural
// run ("symbol") for anything else.
package parser

import (
	lerr "github.com/laskin-lang/laskin/errors"
)

// scanner is the low-level rune cursor shared by every parse method. It
// tracks 1-based line/column for diagnostics.
type scanner struct {
	src  []rune
	pos  int
	line int
	col  int
}

func newScanner(src string) *scanner {
	return &scanner{src: []rune(src), line: 1, col: 1}
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(offset int) rune {
	i := s.pos + offset
	if i < 0 || i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

func (s *scanner) advance() rune {
	r := s.src[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

func (s *scanner) position() (line, col int) { return s.line, s.col }

// isStructural reports whether r is reserved for a structural form and so
// can never appear inside a bare symbol.
func isStructural(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', ',', '"', '\'':
		return true
	default:
		return false
	}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// skipSpaceAndComments advances past whitespace and #-to-end-of-line
// comments, in any interleaving.
func (s *scanner) skipSpaceAndComments() {
	for !s.atEnd() {
		r := s.peek()
		if isSpace(r) {
			s.advance()
			continue
		}
		if r == '#' {
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
			continue
		}
		break
	}
}

// readSymbol reads a maximal run of non-whitespace, non-structural runes.
func (s *scanner) readSymbol() string {
	var out []rune
	for !s.atEnd() {
		r := s.peek()
		if isSpace(r) || isStructural(r) || r == '#' {
			break
		}
		out = append(out, s.advance())
	}
	return string(out)
}

func (s *scanner) syntaxErrorf(format string, args ...interface{}) error {
	return lerr.At(lerr.Syntax, s.line, s.col, format, args...)
}
