// Package escape rewrites chat text for safe embedding in HTML.
// Replacement works per 16-bit code unit, not per code point.
package escape

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Escaped code-unit range, inclusive. Surrogate halves (0xD800-0xDFFF)
// sit above the upper bound, so astral characters pass through intact.
const (
	escapeLow  = 0x00A0
	escapeHigh = 0x2707
)

// Htmlify replaces every code unit in [U+00A0, U+2707], plus '<', '>' and
// '&', with its decimal numeric character reference (&#N;). All other bytes
// are copied through with their original encoding. The result is a new
// string. Htmlify is pure but not idempotent: the '&' of a reference
// produced by a first pass is itself escaped on a second one.
func Htmlify(s string) string {
	if !strings.ContainsFunc(s, escapable) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if escapable(r) {
			b.WriteString("&#")
			b.WriteString(strconv.Itoa(int(r)))
			b.WriteByte(';')
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func escapable(r rune) bool {
	return r == '<' || r == '>' || r == '&' || (r >= escapeLow && r <= escapeHigh)
}
