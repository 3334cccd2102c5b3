// Package charclass provides stateless predicates over bytes and code
// points: whitespace, digit classes, and per-language identifier
// start/continue tests. Every predicate here is pure and allocation-free.
package charclass

import "unicode/utf8"

// IsASCIIDigit reports whether b is an ASCII decimal digit.
func IsASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsBinaryDigit reports whether b is '0' or '1'.
func IsBinaryDigit(b byte) bool { return b == '0' || b == '1' }

// IsOctalDigit reports whether b is an ASCII octal digit.
func IsOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

// IsHexDigit reports whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool {
	return IsASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsASCIILower reports whether b is an ASCII lowercase letter.
func IsASCIILower(b byte) bool { return b >= 'a' && b <= 'z' }

// IsASCIIUpper reports whether b is an ASCII uppercase letter.
func IsASCIIUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// IsASCIIAlpha reports whether b is an ASCII letter.
func IsASCIIAlpha(b byte) bool { return IsASCIILower(b) || IsASCIIUpper(b) }

// IsASCIIAlnum reports whether b is an ASCII letter or digit.
func IsASCIIAlnum(b byte) bool { return IsASCIIAlpha(b) || IsASCIIDigit(b) }

// IsSpaceOrTab reports whether b is a plain space or horizontal tab.
func IsSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

// IsASCIIWhitespace reports whether b is space, tab, CR, LF, or vertical
// tab/form feed.
func IsASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

// DecodeRune decodes the first code point of s. Invalid UTF-8 decodes as
// U+FFFD with a width of 1, matching the spec's "classify as replacement
// character, consume one byte" failure mode.
func DecodeRune(s string) (r rune, size int) {
	if len(s) == 0 {
		return utf8.RuneError, 0
	}
	r, size = utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 1
	}
	return r, size
}
