// Package cfamily highlights C and C++ source, sharing one state machine
// parameterized by a strictness/keyword-table switch per spec.md §4.4.1.
package cfamily

import (
	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

var ppNumberSpec = match.NumberSpec{
	AllowedSigns:              "",
	Prefixes:                  nil,
	DefaultBaseForLeadingZero: 0,
	ExponentMarkers: []match.ExponentMarker{
		{Byte: 'e', Base: 10}, {Byte: 'p', Base: 10},
	},
	DigitSeparator:         '\'',
	RequireNonEmptyInteger: false,
	AllowLeadingPoint:      true,
}

var cOperators = []string{
	"...", "<<=", ">>=", "->*", "::",
	"<<", ">>", "<=", ">=", "==", "!=", "&&", "||", "++", "--", "->",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "##",
	"+", "-", "*", "/", "%", "&", "|", "^", "~", "!", "<", ">", "=",
	"?", ":", ";", ",", ".", "#",
	"(", ")", "[", "]", "{", "}",
}

type lang struct {
	strict   bool
	keywords keywordTable
	extra    keywordTable // additional keywords available unless strict
}

var cLang = lang{keywords: cKeywords}
var cppLang = lang{keywords: cKeywords, extra: cppOnlyKeywords}

// HighlightC tokenizes C source.
func HighlightC(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	l := cLang
	l.strict = opts.Strict
	highlight(source, buffer, opts, log, l)
}

// HighlightCpp tokenizes C++ source.
func HighlightCpp(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	l := cppLang
	l.strict = opts.Strict
	highlight(source, buffer, opts, log, l)
}

func highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger, l lang) {
	s := base.NewState(source, buffer, opts, log)
	freshLine := true

	for !s.Eof() {
		rem := s.Remainder()

		if n := whitespaceRun(rem); n > 0 {
			if containsNewline(rem[:n]) {
				freshLine = true
			}
			s.SkipAndAdvance(uint32(n))
			continue
		}

		if len(rem) >= 2 && rem[0] == '/' && rem[1] == '/' {
			n := lineCommentLength(rem)
			s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
			continue
		}

		if len(rem) >= 2 && rem[0] == '/' && rem[1] == '*' {
			length, terminated := blockCommentLength(rem)
			emitDelimited(&s, length, terminated, 2, 2, core.Comment, core.CommentDelim)
			freshLine = false
			continue
		}

		if tryLexStringOrChar(&s, rem) {
			freshLine = false
			continue
		}

		if r, ok := match.Number(rem, ppNumberSpec); ok {
			s.EmitNumber(r, base.NumberEmitSpec{Separator: '\''})
			freshLine = false
			continue
		}

		if n := match.Identifier(rem, charclass.IsCIdentStart, charclass.IsCIdentContinue); n > 0 {
			text := rem[:n]
			kind, ok := l.keywords.lookup(text)
			if !ok && !l.strict && l.extra != nil {
				kind, ok = l.extra.lookup(text)
			}
			if !ok {
				kind = core.Name
			}
			s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
			freshLine = false
			continue
		}

		if freshLine && (rem[0] == '#' || (len(rem) >= 2 && rem[0] == '%' && rem[1] == ':')) {
			n := directiveLength(rem)
			s.EmitAndAdvance(uint32(n), core.NameMacro, base.CoalesceDefault)
			freshLine = false
			continue
		}

		if n := match.LongestOperator(rem, cOperators); n > 0 {
			s.EmitAndAdvance(uint32(n), symbolKind(rem[:n]), base.CoalesceDefault)
			freshLine = false
			continue
		}

		_, size := charclass.DecodeRune(rem)
		if size == 0 {
			size = 1
		}
		s.EmitAndAdvance(uint32(size), core.Error, base.CoalesceDefault)
		freshLine = false
	}
}

func symbolKind(op string) core.Kind {
	switch op {
	case "(", ")":
		return core.SymbolParens
	case "[", "]":
		return core.SymbolSquare
	case "{", "}":
		return core.SymbolBrace
	case ";", ",", ".", ":", "?", "#", "##":
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

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}

// lineCommentLength matches a // comment, folding backslash-newline
// continuations, up to but excluding the terminating newline.
func lineCommentLength(s string) int {
	i := 2
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\n' || (s[i+1] == '\r')) {
			i += 2
			if i < len(s) && s[i-1] == '\r' && s[i] == '\n' {
				i++
			}
			continue
		}
		if s[i] == '\n' {
			break
		}
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

// encodingPrefixLen returns the length of a recognized string/char-literal
// encoding prefix (u8, u, U, L) at the start of s, or 0.
func encodingPrefixLen(s string) int {
	if len(s) >= 2 && s[0] == 'u' && s[1] == '8' {
		return 2
	}
	if len(s) >= 1 && (s[0] == 'u' || s[0] == 'U' || s[0] == 'L') {
		return 1
	}
	return 0
}

// tryLexStringOrChar recognizes, in order: a (possibly encoding-prefixed)
// raw string R"d(...)d", an ordinary quoted string, or a character
// literal. Returns false (consuming nothing) if rem doesn't start with
// any of these, letting the identifier matcher claim a bare encoding
// prefix that isn't actually followed by a quote.
func tryLexStringOrChar(s *base.State, rem string) bool {
	prefixLen := encodingPrefixLen(rem)
	rawAt := prefixLen
	if rawAt < len(rem) && rem[rawAt] == 'R' && rawAt+1 < len(rem) && rem[rawAt+1] == '"' {
		return lexRawString(s, rem, prefixLen)
	}
	if prefixLen < len(rem) && rem[prefixLen] == '"' {
		length, terminated := quotedLength(rem[prefixLen:], '"')
		total := prefixLen + length
		emitDelimited(s, total, terminated, prefixLen+1, 1, core.String, core.StringDelim)
		return true
	}
	if prefixLen < len(rem) && rem[prefixLen] == '\'' {
		length, terminated := quotedLength(rem[prefixLen:], '\'')
		total := prefixLen + length
		emitDelimited(s, total, terminated, prefixLen+1, 1, core.String, core.StringDelim)
		return true
	}
	return false
}

// quotedLength matches a quote-delimited literal body (after any prefix),
// honoring backslash escapes, starting and ending with quoteByte. It never
// advances past an embedded newline.
func quotedLength(s string, quoteByte byte) (length int, terminated bool) {
	if len(s) == 0 || s[0] != quoteByte {
		return 0, false
	}
	i := 1
	for i < len(s) {
		switch s[i] {
		case quoteByte:
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

// lexRawString matches C++ raw string literals R"d(...)d", where d is a
// D-char sequence of at most 16 characters excluding whitespace, '(', ')',
// and backslash.
func lexRawString(s *base.State, rem string, prefixLen int) bool {
	i := prefixLen + 2 // past R"
	dStart := i
	for i < len(rem) && i-dStart < 16 && isDChar(rem[i]) {
		i++
	}
	if i >= len(rem) || rem[i] != '(' {
		// Not a valid raw string opener; fall back to ordinary string
		// lexing of the R-prefixed quote (R is itself an identifier char,
		// so this path is only reached when '(' doesn't follow).
		return false
	}
	dchars := rem[dStart:i]
	i++ // past (
	contentStart := i
	terminator := ")" + dchars + "\""
	idx := indexOf(rem[i:], terminator)
	var total int
	terminated := idx >= 0
	if terminated {
		total = i + idx + len(terminator)
	} else {
		total = len(rem)
	}
	origin := s.Index
	s.Emit(origin, uint32(contentStart), core.StringDelim, base.CoalesceDefault)
	contentEnd := total
	if terminated {
		contentEnd = total - len(terminator)
	}
	if contentEnd > contentStart {
		s.Emit(origin+uint32(contentStart), uint32(contentEnd-contentStart), core.String, base.CoalesceDefault)
	}
	if terminated {
		s.Emit(origin+uint32(contentEnd), uint32(len(terminator)), core.StringDelim, base.CoalesceDefault)
	}
	s.Advance(uint32(total))
	return true
}

func isDChar(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f', '(', ')', '\\':
		return false
	default:
		return true
	}
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

func emitDelimited(s *base.State, length int, terminated bool, prefixLen, suffixLen int, contentKind, delimKind core.Kind) {
	s.EmitEnclosed(length, terminated, prefixLen, suffixLen, contentKind, delimKind)
}

// directiveLength matches a preprocessing directive from the leading '#'
// (or '%:') up to the end of its logical line, honoring backslash-newline
// continuations and stopping just before an embedded line or block
// comment (the caller's ordinary comment matchers pick up from there).
// The whole directive run is emitted as a single name_macro token.
func directiveLength(s string) int {
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\n' || s[i+1] == '\r') {
			i += 2
			if s[i-1] == '\r' && i < len(s) && s[i] == '\n' {
				i++
			}
			continue
		}
		if s[i] == '\n' {
			break
		}
		if i+1 < len(s) && s[i] == '/' && (s[i+1] == '/' || s[i+1] == '*') {
			break
		}
		i++
	}
	return i
}
