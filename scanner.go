// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsyn

import (
	"strconv"
	"strings"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from a source buffer. The buffer is
// borrowed read-only for the lifetime of the scanner; the scanner advances a
// cursor over it and never copies per character. Each call to next advances
// the scanner to the next token, or reports an error.
type Scanner struct {
	src  string
	pos  int // byte offset of the read cursor
	line int // 1-based line of the read cursor
}

// NewScanner constructs a new lexical scanner over src.
func NewScanner(src string) *Scanner { return &Scanner{src: src, line: 1} }

// Scan tokenizes src in a single left-to-right pass and returns the complete
// token sequence. Scanning stops at the first invalid lexeme; in that case
// the partial sequence is discarded and the returned error has concrete type
// [*ParseError], carrying the line where the failure occurred.
func Scan(src string) ([]Token, error) {
	s := NewScanner(src)
	var toks []Token
	for {
		tok, ok, err := s.next()
		if err != nil {
			return nil, err
		} else if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// next returns the next token of the input. It reports false with a nil
// error when the input is exhausted.
func (s *Scanner) next() (Token, bool, error) {
	for s.pos < len(s.src) {
		switch ch := s.src[s.pos]; {
		case ch == ' ':
			s.pos++

		case ch == '\n' || ch == '\r' || ch == '\t':
			// Tab advances the line counter along with CR and LF.
			s.pos++
			s.line++

		default:
			tok, err := s.scanToken(ch)
			return tok, err == nil, err
		}
	}
	return Token{}, false, nil
}

// scanToken consumes a single token starting at the cursor.
// Precondition: ch is the byte under the cursor and is not whitespace.
func (s *Scanner) scanToken(ch byte) (Token, error) {
	if k, ok := selfDelim(ch); ok {
		tok := s.token(k, s.pos, s.pos+1)
		s.pos++
		return tok, nil
	}
	switch {
	case ch == '"':
		return s.scanString()
	case isDigit(ch):
		return s.scanNumber()
	case isLetter(ch):
		return s.scanName()
	}
	return Token{}, s.fail(InvalidToken)
}

// scanString consumes a quoted string. The lexeme retains both quotation
// marks verbatim and no escape processing is applied; see Unquote for a
// separate decoding step.
func (s *Scanner) scanString() (Token, error) {
	start := s.pos
	s.pos++ // opening quote
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '"':
			s.pos++
			return s.token(String, start, s.pos), nil
		case '\n':
			return Token{}, s.fail(UnterminatedString)
		}
		s.pos++
	}
	return Token{}, s.fail(UnterminatedString)
}

// scanNumber consumes a maximal run of ASCII digits. Signs, fractions, and
// exponents are not part of the grammar.
func (s *Scanner) scanNumber() (Token, error) {
	start := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	tok := s.token(Number, start, s.pos)
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return Token{}, s.fail(InvalidNumber)
	}
	tok.Value = v
	return tok, nil
}

// scanName consumes a maximal run of ASCII letters and matches it against
// the constants true, false, and null.
func (s *Scanner) scanName() (Token, error) {
	start := s.pos
	for s.pos < len(s.src) && isLetter(s.src[s.pos]) {
		s.pos++
	}
	tok := s.token(Invalid, start, s.pos)
	switch got := mem.S(tok.Text); {
	case got.Equal(mem.S("true")):
		tok.Kind = True
	case got.Equal(mem.S("false")):
		tok.Kind = False
	case got.Equal(mem.S("null")):
		tok.Kind = Null
	default:
		return Token{}, s.fail(InvalidValue)
	}
	return tok, nil
}

// token constructs a token of the given kind whose lexeme is the half-open
// span [pos, end) of the source buffer.
func (s *Scanner) token(k Kind, pos, end int) Token {
	return Token{Kind: k, Line: s.line, Text: s.src[pos:end]}
}

func (s *Scanner) fail(kind ErrKind) error {
	return &ParseError{Line: s.line, Kind: kind}
}

func isDigit(ch byte) bool  { return '0' <= ch && ch <= '9' }
func isLetter(ch byte) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
