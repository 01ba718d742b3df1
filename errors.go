// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsyn

import "fmt"

// An ErrKind identifies the class of a scan or parse failure.
type ErrKind byte

// Constants defining the valid ErrKind values.
const (
	InvalidToken ErrKind = iota // character outside the grammar
	InvalidString               // malformed string lexeme
	InvalidNumber               // digit run that does not decode
	InvalidValue                // letter run that is not a known constant
	UnterminatedString          // string missing its closing quote
	EndOfStream                 // no further tokens are available
	NotAPrimitive               // token is not a primitive value
)

var errKindStr = [...]string{
	InvalidToken:       "invalid token",
	InvalidString:      "invalid string",
	InvalidNumber:      "invalid number",
	InvalidValue:       "invalid value",
	UnterminatedString: "unterminated string",
	EndOfStream:        "end of stream",
	NotAPrimitive:      "not a primitive",
}

func (k ErrKind) String() string {
	v := int(k)
	if v >= len(errKindStr) {
		return "unknown error"
	}
	return errKindStr[v]
}

// ParseError is the concrete type of all errors reported by the scanner,
// the token stream, and the parser. It carries the failure class and the
// 1-based source line where the failure occurred.
type ParseError struct {
	Line int
	Kind ErrKind
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Kind, e.Line)
}
