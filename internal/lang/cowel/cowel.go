// Package cowel highlights COWEL directive syntax per spec.md §4.4.10:
// `\name(args){body}` directives with named arguments, escapes, and
// `\:` line / `\::…::\` block comments.
package cowel

import (
	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

// Highlight tokenizes COWEL source.
func Highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	s := base.NewState(source, buffer, opts, log)
	lexSequence(&s, false)
}

// lexSequence consumes text and directives until EOF or, if inBody, the
// matching closing '}' (consumed by the caller).
func lexSequence(s *base.State, inBody bool) {
	depth := 0
	for !s.Eof() {
		rem := s.Remainder()

		if inBody && depth == 0 && rem[0] == '}' {
			return
		}

		if len(rem) >= 3 && rem[0] == '\\' && rem[1] == ':' && rem[2] == ':' {
			n := blockCommentLength(rem)
			s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
			continue
		}
		if len(rem) >= 2 && rem[0] == '\\' && rem[1] == ':' {
			n := lineCommentLength(rem)
			s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
			continue
		}

		if rem[0] == '\\' {
			if n := match.Identifier(rem[1:], charclass.IsCOWELIdentChar, charclass.IsCOWELIdentChar); n > 0 {
				lexDirective(s, n)
				continue
			}
			// \x escape of a single character.
			_, size := charclass.DecodeRune(rem[1:])
			if size == 0 {
				size = 1
			}
			s.EmitAndAdvance(uint32(1+size), core.Escape, base.CoalesceDefault)
			continue
		}

		if inBody && rem[0] == '{' {
			depth++
			s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
			continue
		}
		if inBody && rem[0] == '}' {
			depth--
			s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
			continue
		}

		n := textRunLength(rem)
		if n > 0 {
			s.EmitAndAdvance(uint32(n), core.Name, base.CoalesceDefault)
			continue
		}

		_, size := charclass.DecodeRune(rem)
		if size == 0 {
			size = 1
		}
		s.EmitAndAdvance(uint32(size), core.Name, base.CoalesceDefault)
	}
}

// lexDirective consumes `\name` (nameLen bytes after the backslash) plus
// an optional `(args)` argument list and `{body}` content block.
func lexDirective(s *base.State, nameLen int) {
	s.EmitAndAdvance(uint32(1+nameLen), core.NameMacro, base.CoalesceDefault)

	if !s.Eof() && s.Remainder()[0] == '(' {
		s.EmitAndAdvance(1, core.SymbolParens, base.CoalesceDefault)
		lexArgs(s)
		if !s.Eof() && s.Remainder()[0] == ')' {
			s.EmitAndAdvance(1, core.SymbolParens, base.CoalesceDefault)
		}
	}

	if !s.Eof() && s.Remainder()[0] == '{' {
		s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
		lexSequence(s, true)
		if !s.Eof() && s.Remainder()[0] == '}' {
			s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
		}
	}
}

// lexArgs consumes comma-separated name=value or positional argument
// expressions up to (but not past) the closing ')'.
func lexArgs(s *base.State) {
	for !s.Eof() {
		rem := s.Remainder()
		if rem[0] == ')' {
			return
		}
		if n := whitespaceRun(rem); n > 0 {
			s.SkipAndAdvance(uint32(n))
			continue
		}
		if rem[0] == ',' {
			s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
			continue
		}
		if n := match.Identifier(rem, charclass.IsCOWELIdentChar, charclass.IsCOWELIdentChar); n > 0 {
			s.EmitAndAdvance(uint32(n), core.NameAttr, base.CoalesceDefault)
			if !s.Eof() && s.Remainder()[0] == '=' {
				s.EmitAndAdvance(1, core.SymbolOp, base.CoalesceDefault)
			}
			continue
		}
		if rem[0] == '"' {
			length, terminated := quotedLength(rem)
			s.EmitEnclosed(length, terminated, 1, 1, core.String, core.StringDelim)
			continue
		}
		_, size := charclass.DecodeRune(rem)
		if size == 0 {
			size = 1
		}
		s.EmitAndAdvance(uint32(size), core.Error, base.CoalesceDefault)
	}
}

func textRunLength(s string) int {
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\\', '{', '}':
			return i
		}
		i++
	}
	return i
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

// blockCommentLength matches `\::` ... `::\`.
func blockCommentLength(s string) int {
	i := 3
	for i+2 < len(s) {
		if s[i] == ':' && s[i+1] == ':' && s[i+2] == '\\' {
			return i + 3
		}
		i++
	}
	return len(s)
}

func quotedLength(s string) (length int, terminated bool) {
	i := 1
	for i < len(s) {
		if s[i] == '"' {
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
