// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsyn_test

import (
	"testing"

	"github.com/creachadair/jsyn"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"plain text", `"plain text"`},
		{"a\tb", `"a\tb"`},
		{"line\none", `"line\none"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"\x01", `"\u0001"`},
		{"móvil", `"móvil"`},
	}
	for _, test := range tests {
		if got := jsyn.Quote(test.input); got != test.want {
			t.Errorf("Quote %q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"plain text"`, "plain text"},
		{`"a\tb"`, "a\tb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
		{`"sla\/sh"`, "sla/sh"},
		{`"Aé"`, "Aé"},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t"},

		// Unknown escape tags and bad hex digits decode to the replacement
		// rune rather than failing.
		{`"\q"`, "�"},
		{`"\uzzzz"`, "�"},
	}
	for _, test := range tests {
		got, err := jsyn.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote %#q failed: %v", test.input, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Unquote %#q: got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquote_errors(t *testing.T) {
	tests := []string{
		``,            // no quotes at all
		`"`,           // a bare quote is not a complete lexeme
		`"unclosed`,   // missing closing quote
		`unopened"`,   // missing opening quote
		`bare`,        // not quoted
		`"trailing\"`, // escape cut off by the closing quote
		`"\u00"`,      // Unicode escape cut off
	}
	for _, input := range tests {
		if got, err := jsyn.Unquote(input); err == nil {
			t.Errorf("Unquote %#q: got %q, want error", input, got)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	inputs := []string{
		"",
		"simple",
		"with \"quotes\" and \\slashes\\",
		"control\tand\nspace",
		"non-ASCII: móvil über 日本語",
	}
	for _, input := range inputs {
		dec, err := jsyn.Unquote(jsyn.Quote(input))
		if err != nil {
			t.Errorf("Unquote(Quote %q) failed: %v", input, err)
			continue
		}
		if string(dec) != input {
			t.Errorf("Round trip %q: got %q", input, dec)
		}
	}
}
