// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values, and a
// recursive-descent parser that constructs syntax trees from JSON source.
package ast

import (
	"github.com/creachadair/jsyn"
)

// A Value is a single JSON value: one of the primitive types String,
// Number, Bool, or Null, or one of the container types Object or Array.
// The set of implementations is closed; a type switch over these six types
// is exhaustive.
type Value interface {
	isValue()
}

// An Object is an ordered collection of key-value members. Member order
// matches source order, and duplicate names are retained.
type Object struct {
	Members []Member
}

func (Object) isValue() {}

// Find returns the first member of o with the given name, or nil. The name
// is compared against the raw scanned form, quotation marks included.
func (o Object) Find(name string) *Member {
	for i, m := range o.Members {
		if m.Name == name {
			return &o.Members[i]
		}
	}
	return nil
}

// A Member is a single name-value pair belonging to an Object. The name is
// the raw scanned string token, quotation marks included; see jsyn.Unquote
// for the decoding step.
type Member struct {
	Name  string
	Value Value
}

// An Array is a sequence of values in source order.
type Array struct {
	Values []Value
}

func (Array) isValue() {}

// A String is a string value. Its text is the raw scanned lexeme with both
// quotation marks retained and no escape processing applied.
type String string

func (String) isValue() {}

// Unquote returns the decoded text of s with the quotation marks removed
// and escape sequences replaced. It panics if s is not a well-formed string
// lexeme.
func (s String) Unquote() string {
	dec, err := jsyn.Unquote(string(s))
	if err != nil {
		panic(err)
	}
	return string(dec)
}

// A Number is a numeric value.
type Number float64

func (Number) isValue() {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

// Null represents the null constant.
type Null struct{}

func (Null) isValue() {}
