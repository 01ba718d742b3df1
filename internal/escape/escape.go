// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON string bodies.
//
// The scanner and parser leave string lexemes verbatim, quotation marks
// included; this package is the separate decoding step callers opt into via
// the Quote and Unquote wrappers of the root package.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

var shortEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src for inclusion in a JSON string. The result does not
// include enclosing quotation marks.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r >= utf8.RuneSelf {
			var rbuf [6]byte
			n := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:n]...)
			continue
		}
		switch {
		case r == '"' || r == '\\':
			buf = append(buf, '\\', byte(r))
		case r < ' ':
			if b := shortEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		default:
			buf = append(buf, byte(r))
		}
	}
	return buf
}

// Unquote decodes the JSON encoding of a string body. The input must have
// the enclosing quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents; an escape
// with an unknown tag or invalid hex digits decodes to the Unicode
// replacement rune. Unquote reports an error for an escape sequence cut off
// by the end of the input.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		tag, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		src = src.SliceFrom(n)
		switch tag {
		case '"', '\\', '/':
			dec = append(dec, byte(tag))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			dec = utf8.AppendRune(dec, hexRune(src.SliceTo(4)))
			src = src.SliceFrom(4)
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
	}
}

// hexRune decodes four hex digits into a rune, or reports utf8.RuneError if
// any digit is invalid.
func hexRune(data mem.RO) rune {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return utf8.RuneError
		}
	}
	return v
}
