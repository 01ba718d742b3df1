// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"github.com/creachadair/jsyn"
)

// Parse scans and parses src, returning its sequence of top-level values.
//
// The grammar is looser than standard JSON at the top level: zero or more
// values may appear without an enclosing container (so "1 2 3" parses as
// three Numbers, and empty input parses as an empty sequence). In case of
// error no partial result is returned, and the error has concrete type
// [*jsyn.ParseError] carrying the failure kind and source line.
func Parse(src string) ([]Value, error) {
	ts, err := jsyn.NewTokenStream(src)
	if err != nil {
		return nil, err
	}
	p := &parser{ts: ts}
	var vs []Value
	for !ts.End() {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// ParseSingle scans and parses src, which must contain exactly one
// top-level value.
func ParseSingle(src string) (Value, error) {
	ts, err := jsyn.NewTokenStream(src)
	if err != nil {
		return nil, err
	}
	p := &parser{ts: ts}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if !ts.End() {
		tok, _ := ts.Peek()
		return nil, &jsyn.ParseError{Line: tok.Line, Kind: jsyn.InvalidToken}
	}
	return v, nil
}

// A parser consumes a token stream one grammar production at a time. The
// first failure aborts the whole parse; no AST fragment escapes.
type parser struct {
	ts *jsyn.TokenStream
}

// parseValue parses a single value of any type, dispatching on the kind of
// the next token without consuming it.
func (p *parser) parseValue() (Value, error) {
	tok, err := p.ts.Peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case jsyn.LBrace:
		return p.parseObject()
	case jsyn.LSquare:
		return p.parseArray()
	default:
		return p.parsePrimitive()
	}
}

// parsePrimitive consumes one token and maps it to a primitive value.
func (p *parser) parsePrimitive() (Value, error) {
	tok, err := p.ts.Next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case jsyn.String:
		return String(tok.Text), nil
	case jsyn.Number:
		return Number(tok.Value), nil
	case jsyn.True:
		return Bool(true), nil
	case jsyn.False:
		return Bool(false), nil
	case jsyn.Null:
		return Null{}, nil
	default:
		return nil, &jsyn.ParseError{Line: tok.Line, Kind: jsyn.NotAPrimitive}
	}
}

// parseObject parses a brace-delimited sequence of members.
// Precondition: the next token is LBrace.
func (p *parser) parseObject() (Value, error) {
	if _, err := p.ts.Next(); err != nil { // consume "{"
		return nil, err
	}
	var obj Object
	if tok, err := p.ts.Peek(); err != nil {
		return nil, err
	} else if tok.Kind == jsyn.RBrace {
		p.ts.Next()
		return obj, nil
	}
	for {
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, m)

		// A member is followed by "," to continue or "}" to terminate.
		tok, err := p.ts.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case jsyn.Comma:
			continue
		case jsyn.RBrace:
			return obj, nil
		default:
			return nil, p.unexpected(tok)
		}
	}
}

// parseMember parses one name-value pair: a string token, a colon, and a
// value. The name keeps its scanned form, quotation marks included.
func (p *parser) parseMember() (Member, error) {
	name, err := p.ts.Next()
	if err != nil {
		return Member{}, err
	} else if name.Kind != jsyn.String {
		return Member{}, p.unexpected(name)
	}
	if tok, err := p.ts.Next(); err != nil {
		return Member{}, err
	} else if tok.Kind != jsyn.Colon {
		return Member{}, p.unexpected(tok)
	}
	v, err := p.parseValue()
	if err != nil {
		return Member{}, err
	}
	return Member{Name: name.Text, Value: v}, nil
}

// parseArray parses a bracket-delimited sequence of values.
// Precondition: the next token is LSquare.
func (p *parser) parseArray() (Value, error) {
	if _, err := p.ts.Next(); err != nil { // consume "["
		return nil, err
	}
	var arr Array
	if tok, err := p.ts.Peek(); err != nil {
		return nil, err
	} else if tok.Kind == jsyn.RSquare {
		p.ts.Next()
		return arr, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, v)

		tok, err := p.ts.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case jsyn.Comma:
			continue
		case jsyn.RSquare:
			return arr, nil
		default:
			return nil, p.unexpected(tok)
		}
	}
}

// unexpected reports a token that violates a structural expectation of the
// grammar, at that token's line.
func (p *parser) unexpected(tok jsyn.Token) error {
	return &jsyn.ParseError{Line: tok.Line, Kind: jsyn.InvalidToken}
}
