// Package lua highlights Lua source per spec.md §4.4.6: long brackets
// shared between strings and comments, short strings, numbers, and
// maximal-munch operators.
package lua

import (
	"sort"

	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

var keywords = sortedSet(
	"and", "break", "do", "else", "elseif", "end", "false", "for", "function",
	"goto", "if", "in", "local", "nil", "not", "or", "repeat", "return",
	"then", "true", "until", "while",
)

var controlKeywords = sortedSet(
	"break", "do", "else", "elseif", "end", "for", "goto", "if", "in",
	"repeat", "return", "then", "until", "while",
)

func sortedSet(words ...string) []string {
	set := append([]string(nil), words...)
	sort.Strings(set)
	return set
}

func inSet(set []string, word string) bool {
	i := sort.SearchStrings(set, word)
	return i < len(set) && set[i] == word
}

var operators = []string{
	"...", "..", "::", "//", "<<", ">>", "==", "~=", "<=", ">=",
	"+", "-", "*", "/", "%", "^", "#", "&", "~", "|", "<", ">", "=",
	"(", ")", "{", "}", "[", "]", ";", ":", ",", ".",
}

var numberSpec = match.NumberSpec{
	AllowedSigns: "",
	Prefixes:     []match.NumberPrefix{{Text: "0x", Base: 16}},
	ExponentMarkers: []match.ExponentMarker{
		{Byte: 'e', Base: 10}, {Byte: 'p', Base: 16},
	},
}

// Highlight tokenizes Lua source.
func Highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	s := base.NewState(source, buffer, opts, log)
	for !s.Eof() {
		rem := s.Remainder()

		if n := whitespaceRun(rem); n > 0 {
			s.SkipAndAdvance(uint32(n))
			continue
		}

		if len(rem) >= 2 && rem[0] == '-' && rem[1] == '-' {
			if level, ok := longBracketLevel(rem[2:]); ok {
				n := 2 + longBracketBodyLength(rem[2:], level)
				s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
				continue
			}
			n := 2 + lineCommentLength(rem[2:])
			s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
			continue
		}

		if level, ok := longBracketLevel(rem); ok {
			n := longBracketBodyLength(rem, level)
			s.EmitAndAdvance(uint32(n), core.String, base.CoalesceDefault)
			continue
		}

		if rem[0] == '\'' || rem[0] == '"' {
			length, terminated := shortStringLength(rem)
			s.EmitEnclosed(length, terminated, 1, 1, core.String, core.StringDelim)
			continue
		}

		if rem[0] == '<' {
			if n := attributeLength(rem); n > 0 {
				s.Emit(s.Index, 1, core.SymbolOp, base.CoalesceDefault)
				s.Emit(s.Index+1, uint32(n-2), core.NameAttr, base.CoalesceDefault)
				s.Emit(s.Index+uint32(n-1), 1, core.SymbolOp, base.CoalesceDefault)
				s.Advance(uint32(n))
				continue
			}
		}

		if r, ok := match.Number(rem, numberSpec); ok {
			s.EmitNumber(r, base.NumberEmitSpec{})
			continue
		}

		if n := match.Identifier(rem, charclass.IsLuaIdentStart, charclass.IsLuaIdentContinue); n > 0 {
			word := rem[:n]
			kind := core.Name
			switch {
			case word == "true" || word == "false":
				kind = core.Bool
			case word == "nil":
				kind = core.Null
			case inSet(controlKeywords, word):
				kind = core.KeywordControl
			case inSet(keywords, word):
				kind = core.Keyword
			}
			s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
			continue
		}

		if n := match.LongestOperator(rem, operators); n > 0 {
			s.EmitAndAdvance(uint32(n), operatorKind(rem[:n]), base.CoalesceDefault)
			continue
		}

		_, size := charclass.DecodeRune(rem)
		if size == 0 {
			size = 1
		}
		s.EmitAndAdvance(uint32(size), core.Error, base.CoalesceDefault)
	}
}

func operatorKind(op string) core.Kind {
	switch op {
	case "(", ")":
		return core.SymbolParens
	case "[", "]":
		return core.SymbolSquare
	case "{", "}":
		return core.SymbolBrace
	case ";", ",", ".", ":":
		return core.SymbolPunc
	default:
		return core.SymbolOp
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
	i := 0
	for i < len(s) && s[i] != '\n' {
		i++
	}
	return i
}

// longBracketLevel reports the '=' nesting level N if s starts with
// `[` + N×`=` + `[`.
func longBracketLevel(s string) (level int, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return 0, false
	}
	i := 1
	for i < len(s) && s[i] == '=' {
		i++
	}
	if i < len(s) && s[i] == '[' {
		return i - 1, true
	}
	return 0, false
}

// longBracketBodyLength returns the total length (including the opener)
// of a long-bracket construct starting at s with the given level. A
// leading newline immediately after the opener is skipped per the Lua
// manual but included in length regardless for this byte-counting core.
func longBracketBodyLength(s string, level int) int {
	openLen := level + 2
	closer := "]" + repeat('=', level) + "]"
	idx := indexOf(s[openLen:], closer)
	if idx < 0 {
		return len(s)
	}
	return openLen + idx + len(closer)
}

func repeat(b byte, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return string(out)
}

func indexOf(s, sub string) int {
	if len(sub) == 0 {
		return 0
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func shortStringLength(s string) (length int, terminated bool) {
	quote := s[0]
	i := 1
	for i < len(s) {
		switch s[i] {
		case quote:
			return i + 1, true
		case '\\':
			if i+1 < len(s) {
				i += 2
				continue
			}
			i++
		case '\n':
			return i, false
		default:
			i++
		}
	}
	return i, false
}

// attributeLength matches the variable-attribute syntax `<const>` /
// `<close>`, returning its total length or 0 if rem doesn't match.
func attributeLength(s string) int {
	for _, attr := range []string{"const", "close"} {
		n := 1 + len(attr) + 1
		if len(s) >= n && s[1:1+len(attr)] == attr && s[n-1] == '>' {
			return n
		}
	}
	return 0
}
