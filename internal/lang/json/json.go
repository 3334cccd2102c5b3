// Package json highlights JSON and JSONC (JSON with Comments) source per
// spec.md §4.4.8: a single value preceded by whitespace/comments, total
// over malformed input.
package json

import (
	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

var numberSpec = match.NumberSpec{
	AllowedSigns:              "-",
	RequireNonEmptyInteger:    true,
	ExponentMarkers:           []match.ExponentMarker{{Byte: 'e', Base: 10}},
	DefaultBaseForLeadingZero: 0,
}

// HighlightJSON tokenizes JSON. Line and block comments are skipped like
// whitespace unless opts.Strict is set; in strict mode a comment is not
// recognized and its leading '/' is emitted as an error.
func HighlightJSON(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	highlight(source, buffer, opts, log, false)
}

// HighlightJSONC tokenizes JSON with Comments: line and block comments
// are accepted anywhere whitespace is.
func HighlightJSONC(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	highlight(source, buffer, opts, log, true)
}

func highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger, jsonc bool) {
	s := base.NewState(source, buffer, opts, log)
	allowComments := jsonc || !opts.Strict
	skipTrivia(&s, allowComments)
	lexValue(&s, allowComments, false)
}

// skipTrivia advances over whitespace and, if allowed, comments.
func skipTrivia(s *base.State, allowComments bool) {
	for !s.Eof() {
		rem := s.Remainder()
		if n := whitespaceRun(rem); n > 0 {
			s.SkipAndAdvance(uint32(n))
			continue
		}
		if allowComments && len(rem) >= 2 && rem[0] == '/' && rem[1] == '/' {
			n := lineCommentLength(rem)
			s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
			continue
		}
		if allowComments && len(rem) >= 2 && rem[0] == '/' && rem[1] == '*' {
			length, terminated := blockCommentLength(rem)
			s.EmitEnclosed(length, terminated, 2, 2, core.Comment, core.CommentDelim)
			continue
		}
		break
	}
}

// lexValue consumes exactly one JSON value, or emits an error token for
// the first unrecognized byte. isKey selects markup_attr over string for
// a string used as an object member name.
func lexValue(s *base.State, allowComments bool, isKey bool) {
	if s.Eof() {
		return
	}
	rem := s.Remainder()
	switch {
	case rem[0] == '"':
		lexString(s, isKey)
	case rem[0] == '{':
		lexObject(s, allowComments)
	case rem[0] == '[':
		lexArray(s, allowComments)
	case hasWord(rem, "true"):
		s.EmitAndAdvance(4, core.Bool, base.CoalesceDefault)
	case hasWord(rem, "false"):
		s.EmitAndAdvance(5, core.Bool, base.CoalesceDefault)
	case hasWord(rem, "null"):
		s.EmitAndAdvance(4, core.Null, base.CoalesceDefault)
	default:
		if r, ok := match.Number(rem, numberSpec); ok {
			s.EmitNumber(r, base.NumberEmitSpec{})
			return
		}
		_, size := charclass.DecodeRune(rem)
		if size == 0 {
			size = 1
		}
		s.EmitAndAdvance(uint32(size), core.Error, base.CoalesceDefault)
	}
}

func lexObject(s *base.State, allowComments bool) {
	s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
	for {
		skipTrivia(s, allowComments)
		if s.Eof() || s.Remainder()[0] == '}' {
			break
		}
		if s.Remainder()[0] == '"' {
			lexString(s, true)
		} else {
			lexValue(s, allowComments, false)
			continue
		}
		skipTrivia(s, allowComments)
		if !s.Eof() && s.Remainder()[0] == ':' {
			s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
		}
		skipTrivia(s, allowComments)
		lexValue(s, allowComments, false)
		skipTrivia(s, allowComments)
		if !s.Eof() && s.Remainder()[0] == ',' {
			s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
		} else {
			break
		}
	}
	skipTrivia(s, allowComments)
	if !s.Eof() && s.Remainder()[0] == '}' {
		s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
	}
}

func lexArray(s *base.State, allowComments bool) {
	s.EmitAndAdvance(1, core.SymbolSquare, base.CoalesceDefault)
	for {
		skipTrivia(s, allowComments)
		if s.Eof() || s.Remainder()[0] == ']' {
			break
		}
		lexValue(s, allowComments, false)
		skipTrivia(s, allowComments)
		if !s.Eof() && s.Remainder()[0] == ',' {
			s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
		} else {
			break
		}
	}
	skipTrivia(s, allowComments)
	if !s.Eof() && s.Remainder()[0] == ']' {
		s.EmitAndAdvance(1, core.SymbolSquare, base.CoalesceDefault)
	}
}

// lexString matches a JSON string, emitting string_delim/string/
// string_escape/error per byte. isKey selects markup_attr content kind.
func lexString(s *base.State, isKey bool) {
	contentKind := core.String
	if isKey {
		contentKind = core.MarkupAttr
	}
	rem := s.Remainder()
	s.EmitAndAdvance(1, core.StringDelim, base.CoalesceDefault)
	for !s.Eof() {
		rem = s.Remainder()
		b := rem[0]
		switch {
		case b == '"':
			s.EmitAndAdvance(1, core.StringDelim, base.CoalesceDefault)
			return
		case b == '\\':
			n, bad := jsonEscapeLength(rem)
			kind := core.StringEscape
			if bad {
				kind = core.Error
			}
			s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
		case b < 0x20:
			s.EmitAndAdvance(1, core.Error, base.CoalesceDefault)
		default:
			_, size := charclass.DecodeRune(rem)
			if size == 0 {
				size = 1
			}
			s.EmitAndAdvance(uint32(size), contentKind, base.CoalesceDefault)
		}
	}
}

// jsonEscapeLength matches a JSON backslash escape; rem[0] == '\\'.
func jsonEscapeLength(rem string) (length int, erroneous bool) {
	if len(rem) < 2 {
		return 1, true
	}
	switch rem[1] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 2, false
	case 'u':
		n := 2
		digits := 0
		for n < len(rem) && digits < 4 && charclass.IsHexDigit(rem[n]) {
			n++
			digits++
		}
		return n, digits != 4
	default:
		return 2, true
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
	i := 2
	for i < len(s) && s[i] != '\n' {
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

func hasWord(s, word string) bool {
	if len(s) < len(word) || s[:len(word)] != word {
		return false
	}
	if len(s) == len(word) {
		return true
	}
	return !charclass.IsASCIIAlnum(s[len(word)]) && s[len(word)] != '_'
}
