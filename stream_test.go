// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsyn_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jsyn"
	"github.com/google/go-cmp/cmp"
)

func mustStream(t *testing.T, input string) *jsyn.TokenStream {
	t.Helper()
	ts, err := jsyn.NewTokenStream(input)
	if err != nil {
		t.Fatalf("NewTokenStream %#q failed: %v", input, err)
	}
	return ts
}

func TestTokenStream(t *testing.T) {
	ts := mustStream(t, `{"a": 64}`)

	want := []jsyn.Token{
		{Kind: jsyn.LBrace, Line: 1, Text: "{"},
		{Kind: jsyn.String, Line: 1, Text: `"a"`},
		{Kind: jsyn.Colon, Line: 1, Text: ":"},
		{Kind: jsyn.Number, Line: 1, Text: "64", Value: 64},
		{Kind: jsyn.RBrace, Line: 1, Text: "}"},
	}
	var got []jsyn.Token
	for !ts.End() {
		tok, err := ts.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got = append(got, tok)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens: (-want, +got)\n%s", diff)
	}
}

func TestTokenStream_peek(t *testing.T) {
	ts := mustStream(t, "true false null")

	// Any number of consecutive peeks returns the same token, and the next
	// call of Next returns that token and advances exactly one position.
	for _, want := range []jsyn.Kind{jsyn.True, jsyn.False, jsyn.Null} {
		var peeked jsyn.Token
		for i := 0; i < 5; i++ {
			tok, err := ts.Peek()
			if err != nil {
				t.Fatalf("Peek failed: %v", err)
			}
			if i > 0 && tok != peeked {
				t.Errorf("Peek %d: got %v, want %v", i, tok, peeked)
			}
			peeked = tok
		}
		tok, err := ts.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if tok != peeked {
			t.Errorf("Next: got %v, want peeked %v", tok, peeked)
		}
		if tok.Kind != want {
			t.Errorf("Next: got kind %v, want %v", tok.Kind, want)
		}
	}
	if !ts.End() {
		t.Error("End: got false, want true")
	}
}

func TestTokenStream_endOfStream(t *testing.T) {
	checkEOS := func(t *testing.T, err error, line int) {
		t.Helper()
		var perr *jsyn.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Got error %v, want *ParseError", err)
		}
		if perr.Kind != jsyn.EndOfStream || perr.Line != line {
			t.Errorf("Got (%v, line %d), want (end of stream, line %d)",
				perr.Kind, perr.Line, line)
		}
	}

	t.Run("Empty", func(t *testing.T) {
		ts := mustStream(t, "  \n ")
		if !ts.End() {
			t.Error("End: got false, want true")
		}
		_, err := ts.Next()
		checkEOS(t, err, 1)
		_, err = ts.Peek()
		checkEOS(t, err, 1)
	})

	t.Run("Exhausted", func(t *testing.T) {
		ts := mustStream(t, "1\n2")
		for !ts.End() {
			if _, err := ts.Next(); err != nil {
				t.Fatalf("Next failed: %v", err)
			}
		}
		_, err := ts.Next()
		checkEOS(t, err, 2)

		// Exhaustion is stable: further calls keep reporting EndOfStream.
		_, err = ts.Next()
		checkEOS(t, err, 2)
	})

	t.Run("ScanError", func(t *testing.T) {
		ts, err := jsyn.NewTokenStream(`[1, 2, @]`)
		if ts != nil {
			t.Errorf("Got stream %v, want nil", ts)
		}
		var perr *jsyn.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Got error %v, want *ParseError", err)
		}
		if perr.Kind != jsyn.InvalidToken {
			t.Errorf("Got %v, want invalid token", perr.Kind)
		}
	})
}
