// Package css highlights CSS source per spec.md §4.4.4: a small context
// machine (top_level/at_prelude/block/value) plus brace-nesting.
package css

import (
	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

type context uint8

const (
	topLevel context = iota
	atPrelude
	block
	value
)

var numberSpec = match.NumberSpec{
	AllowedSigns:    "+-",
	ExponentMarkers: []match.ExponentMarker{{Byte: 'e', Base: 10}},
	AllowLeadingPoint: true,
}

// Highlight tokenizes CSS source.
func Highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	s := base.NewState(source, buffer, opts, log)
	ctx := topLevel
	nesting := 0

	for !s.Eof() {
		rem := s.Remainder()

		if n := whitespaceRun(rem); n > 0 {
			s.SkipAndAdvance(uint32(n))
			continue
		}

		if len(rem) >= 4 && rem[:4] == "<!--" {
			s.EmitAndAdvance(4, core.Comment, base.CoalesceDefault)
			continue
		}
		if len(rem) >= 3 && rem[:3] == "-->" {
			s.EmitAndAdvance(3, core.Comment, base.CoalesceDefault)
			continue
		}

		if len(rem) >= 2 && rem[0] == '/' && rem[1] == '*' {
			length, terminated := blockCommentLength(rem)
			s.EmitEnclosed(length, terminated, 2, 2, core.Comment, core.CommentDelim)
			continue
		}

		if rem[0] == '"' || rem[0] == '\'' {
			length, terminated := quotedLength(rem)
			s.EmitEnclosed(length, terminated, 1, 1, core.String, core.StringDelim)
			continue
		}

		if rem[0] == '{' {
			nesting++
			s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
			ctx = block
			continue
		}
		if rem[0] == '}' {
			nesting--
			s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
			if nesting <= 0 {
				nesting = 0
				ctx = topLevel
			} else {
				ctx = block
			}
			continue
		}
		if rem[0] == '@' {
			ctx = atPrelude
			if len(rem) > 1 && charclass.IsCSSIdentStart(firstRune(rem[1:])) {
				s.EmitAndAdvance(1, core.NameMacroDelim, base.CoalesceDefault)
			} else {
				s.EmitAndAdvance(1, core.Error, base.CoalesceDefault)
			}
			continue
		}
		if rem[0] == ':' {
			kind := core.SymbolPunc
			mode := base.CoalesceDefault
			if ctx == topLevel {
				// Examples: "div:not(.cute)", ":root", "li::before"
				kind = contextKind(ctx)
				mode = base.CoalesceForced
			}
			s.EmitAndAdvance(1, kind, mode)
			if ctx == block {
				// Example: "color: red"
				ctx = value
			}
			continue
		}
		if rem[0] == ';' {
			s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
			switch ctx {
			case value:
				ctx = block
			case atPrelude:
				ctx = topLevel
			}
			continue
		}

		if r, ok := match.Number(rem, numberSpec); ok {
			s.EmitNumber(r, base.NumberEmitSpec{})
			if n := trailingIdentOrPercent(s.Remainder()); n > 0 {
				s.EmitAndAdvance(uint32(n), core.NumberDecor, base.CoalesceDefault)
			}
			continue
		}

		if n, isFunction, isURL := identLikeLength(rem); n > 0 {
			kind := contextKind(ctx)
			if isFunction || isURL {
				kind = core.NameFunction
			}
			s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
			if isURL {
				lexURLContents(&s)
			}
			continue
		}

		if n := specialTokenLength(rem); n > 0 {
			s.EmitAndAdvance(uint32(n), core.Keyword, base.CoalesceDefault)
			continue
		}

		if rem[0] == '#' {
			// A hash introduces an ID selector or hex color only when
			// followed by an identifier character; otherwise it is
			// consumed without classification.
			if n := match.Identifier(rem[1:], charclass.IsCSSIdentContinue, charclass.IsCSSIdentContinue); n > 0 {
				kind := contextKind(ctx)
				s.EmitAndAdvance(1, kind, base.CoalesceDefault)
				s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
			} else {
				s.SkipAndAdvance(1)
			}
			continue
		}
		if rem[0] == '.' {
			// A leading-point number is already consumed above; a bare
			// '.' is only meaningful as a selector-combinator continuation.
			if ctx == topLevel {
				s.EmitAndAdvance(1, contextKind(ctx), base.CoalesceForced)
			} else {
				s.SkipAndAdvance(1)
			}
			continue
		}
		if rem[0] == '>' || rem[0] == '~' || rem[0] == '*' {
			if ctx == topLevel {
				// Example: "ul > li"
				s.EmitAndAdvance(1, contextKind(ctx), base.CoalesceForced)
			} else {
				s.EmitAndAdvance(1, core.SymbolOp, base.CoalesceDefault)
			}
			continue
		}

		if isSpecialChar(rem[0]) {
			s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
			continue
		}

		_, size := charclass.DecodeRune(rem)
		if size == 0 {
			size = 1
		}
		s.EmitAndAdvance(uint32(size), core.Error, base.CoalesceDefault)
	}
}

func contextKind(ctx context) core.Kind {
	switch ctx {
	case topLevel:
		return core.MarkupTag
	case atPrelude:
		return core.NameMacro
	case block:
		return core.MarkupAttr
	default:
		return core.Name
	}
}

func whitespaceRun(s string) int {
	i := 0
	for i < len(s) && charclass.IsASCIIWhitespace(s[i]) {
		i++
	}
	return i
}

func blockCommentLength(s string) (length int, terminated bool) {
	i := 2
	for i+1 < len(s) {
		if s[i] == '*' && s[i+1] == '/' {
			return i + 2, true
		}
		i++
	}
	return len(s), false
}

func quotedLength(s string) (length int, terminated bool) {
	quote := s[0]
	i := 1
	for i < len(s) {
		if s[i] == quote {
			return i + 1, true
		}
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		if s[i] == '\n' {
			return i, false
		}
		i++
	}
	return i, false
}

func trailingIdentOrPercent(s string) int {
	if len(s) > 0 && s[0] == '%' {
		return 1
	}
	return match.Identifier(s, charclass.IsCSSIdentStart, charclass.IsCSSIdentContinue)
}

// identLikeLength matches a CSS ident-like token (ident, function, or
// url(...)). Returns the length of the leading name, plus flags.
func identLikeLength(s string) (length int, isFunction, isURL bool) {
	n := match.Identifier(s, charclass.IsCSSIdentStart, charclass.IsCSSIdentContinue)
	if n == 0 {
		return 0, false, false
	}
	if n < len(s) && s[n] == '(' {
		if equalFold(s[:n], "url") {
			return n + 1, false, true
		}
		return n + 1, true, false
	}
	return n, false, false
}

// lexURLContents consumes a bare (unquoted) url(...) body up to ')'. If
// the body starts with a quote, it is lexed as an ordinary string by the
// caller's next loop iteration instead.
func lexURLContents(s *base.State) {
	if !s.Eof() && (s.Remainder()[0] == '"' || s.Remainder()[0] == '\'') {
		return
	}
	rem := s.Remainder()
	i := 0
	for i < len(rem) && rem[i] != ')' {
		i++
	}
	if i > 0 {
		s.EmitAndAdvance(uint32(i), core.String, base.CoalesceDefault)
	}
}

func specialTokenLength(s string) int {
	if len(s) >= 10 && equalFold(s[:10], "!important") {
		return 10
	}
	return 0
}

func isSpecialChar(b byte) bool {
	switch b {
	case '<', ',', '(', ')', '[', ']', '+', '-', '=':
		return true
	default:
		return false
	}
}

// firstRune decodes the first code point of s, returning the replacement
// character if s is empty or starts with invalid UTF-8.
func firstRune(s string) rune {
	r, _ := charclass.DecodeRune(s)
	return r
}

func equalFold(s, want string) bool {
	if len(s) != len(want) {
		return false
	}
	for i := 0; i < len(s); i++ {
		a, b := s[i], want[i]
		if a >= 'A' && a <= 'Z' {
			a += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}
