// Package tex highlights TeX/LaTeX source per spec.md §4.4.10.
package tex

import (
	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
)

// Highlight tokenizes TeX/LaTeX source: `%` comments, `\name` control
// words as markup_tag, `\x` (single non-letter) as string_escape, and
// special characters `{}[]#$&_^~` as punctuation.
func Highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	s := base.NewState(source, buffer, opts, log)
	for !s.Eof() {
		rem := s.Remainder()

		if n := whitespaceRun(rem); n > 0 {
			s.SkipAndAdvance(uint32(n))
			continue
		}

		if rem[0] == '%' {
			n := lineCommentLength(rem)
			s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
			continue
		}

		if rem[0] == '\\' {
			n := commandLength(rem)
			kind := core.MarkupTag
			if n == 2 && len(rem) >= 2 && !charclass.IsTeXCommandChar(rune(rem[1])) {
				kind = core.StringEscape
			}
			s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
			continue
		}

		if isSpecial(rem[0]) {
			s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
			continue
		}

		_, size := charclass.DecodeRune(rem)
		if size == 0 {
			size = 1
		}
		s.EmitAndAdvance(uint32(size), core.Name, base.CoalesceDefault)
	}
}

func isSpecial(b byte) bool {
	switch b {
	case '{', '}', '[', ']', '#', '$', '&', '_', '^', '~':
		return true
	default:
		return false
	}
}

func whitespaceRun(s string) int {
	i := 0
	for i < len(s) && charclass.IsASCIIWhitespace(s[i]) {
		i++
	}
	return i
}

func lineCommentLength(s string) int {
	i := 1
	for i < len(s) && s[i] != '\n' {
		i++
	}
	return i
}

// commandLength matches `\` followed by a run of letters (a control
// word), or `\` followed by exactly one non-letter (a control symbol).
func commandLength(s string) int {
	i := 1
	for i < len(s) && charclass.IsTeXCommandChar(rune(s[i])) {
		i++
	}
	if i > 1 {
		return i
	}
	if len(s) > 1 {
		return 2
	}
	return 1
}
