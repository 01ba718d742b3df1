// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsyn

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string
	Number              // number: unsigned digit run
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is one classified lexeme of the input. Tokens are immutable once
// the scanner has produced them.
type Token struct {
	Kind  Kind    // the lexical class of the token
	Line  int     // 1-based source line on which the token starts
	Text  string  // the raw lexeme; for strings this includes both quotes
	Value float64 // the decoded value, for Number tokens only
}
