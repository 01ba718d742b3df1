// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsyn implements the lexical scanner and token stream for a small
// JSON-like grammar, with line-accurate error reporting.
//
// # Scanning
//
// The Scan function tokenizes a source buffer in a single left-to-right
// pass, producing the complete token sequence or the first error:
//
//	toks, err := jsyn.Scan(input)
//	if err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// Each token records its kind, its raw lexeme, and the 1-based line on which
// it starts. String lexemes are kept verbatim, quotation marks included; use
// Unquote to decode one. The numeric grammar covers unsigned integer digit
// runs only, decoded into a float64.
//
// # Token streams
//
// A TokenStream provides the sequential access used by a parser: Next
// consumes the next token, Peek is idempotent single-token lookahead, and
// End reports exhaustion. Peek has no observable effect on later calls.
//
//	ts, err := jsyn.NewTokenStream(input)
//	if err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//	for !ts.End() {
//	   tok, _ := ts.Next()
//	   log.Printf("Next token: %v", tok.Kind)
//	}
//
// # Errors
//
// All failures from this package and from the ast parser built on it are
// reported as [*ParseError] values pairing an ErrKind with a source line.
// The package itself never logs or retries; surfacing is the caller's
// responsibility.
//
// Parsing token streams into value trees is provided by the ast
// subpackage.
package jsyn
