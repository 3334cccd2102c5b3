package match

import "github.com/go-ulight/ulight/internal/charclass"

// Identifier matches the longest identifier at the start of s using the
// given start/continue predicates. It decodes one code point; if it's not
// a start character, returns 0. Otherwise it repeatedly decodes and
// accepts code points while they satisfy cont. Invalid UTF-8 is treated as
// U+FFFD for classification purposes (and is consumed as a single byte),
// per the spec's identifier matcher.
func Identifier(s string, start, cont func(rune) bool) int {
	r, size := charclass.DecodeRune(s)
	if size == 0 || !start(r) {
		return 0
	}
	i := size
	for i < len(s) {
		r, size := charclass.DecodeRune(s[i:])
		if size == 0 || !cont(r) {
			break
		}
		i += size
	}
	return i
}
