// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsyn

// A TokenStream provides sequential access to the token sequence of a source
// text, with single-token lookahead. The sequence is scanned eagerly when the
// stream is constructed and is immutable thereafter; Peek is pure lookahead
// over the pre-scanned state and has no observable side effects.
type TokenStream struct {
	toks []Token
	pos  int
}

// NewTokenStream scans src to completion and returns a stream over its
// tokens. If scanning fails, the error has concrete type [*ParseError] and
// no stream is returned.
func NewTokenStream(src string) (*TokenStream, error) {
	toks, err := Scan(src)
	if err != nil {
		return nil, err
	}
	return &TokenStream{toks: toks}, nil
}

// Next returns the next token of the stream and consumes it. If the stream
// is exhausted, Next reports EndOfStream.
func (ts *TokenStream) Next() (Token, error) {
	tok, err := ts.Peek()
	if err != nil {
		return Token{}, err
	}
	ts.pos++
	return tok, nil
}

// Peek returns the next token of the stream without consuming it. Repeated
// calls to Peek return the same token, and a subsequent Next returns that
// token and advances the stream by exactly one position. If the stream is
// exhausted, Peek reports EndOfStream.
func (ts *TokenStream) Peek() (Token, error) {
	if ts.End() {
		return Token{}, &ParseError{Line: ts.endLine(), Kind: EndOfStream}
	}
	return ts.toks[ts.pos], nil
}

// End reports whether the stream is exhausted.
func (ts *TokenStream) End() bool { return ts.pos >= len(ts.toks) }

// endLine returns the line to report for end-of-stream conditions, the line
// of the last token of the sequence.
func (ts *TokenStream) endLine() int {
	if len(ts.toks) == 0 {
		return 1
	}
	return ts.toks[len(ts.toks)-1].Line
}
