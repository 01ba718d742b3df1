// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsyn

import (
	"errors"
	"strings"

	"github.com/creachadair/jsyn/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// Unquote decodes a JSON string value as scanned, that is, with its
// enclosing double quotation marks still present. The quotation marks are
// removed and escape sequences are replaced with their unescaped
// equivalents.
//
// The scanner does not perform this decoding itself; string tokens and
// object member names keep their source text verbatim. Unquote is the
// opt-in decoding step for callers that need the plain string.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
