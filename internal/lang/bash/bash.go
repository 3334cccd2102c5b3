// Package bash highlights POSIX shell / Bash source per spec.md §4.4.5.
package bash

import (
	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

// wordState tracks the command/argument position of the next word.
type wordState uint8

const (
	beforeCommand wordState = iota
	inCommand
	beforeArgument
	inArgument
)

var twoCharOperators = []string{
	"&&", "||", "<<", "<<<", ">>", "&>", "&>>", "<&", ">&", "<>",
}

// Highlight tokenizes shell source.
func Highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	s := base.NewState(source, buffer, opts, log)
	lexSequence(&s, beforeCommand, '\000')
}

// lexSequence consumes words/operators/substitutions until EOF or, if
// closer != 0, the byte that closes the enclosing substitution (consumed
// by the caller, not here).
func lexSequence(s *base.State, state wordState, closer byte) {
	for !s.Eof() {
		rem := s.Remainder()

		if closer != 0 && rem[0] == closer {
			return
		}

		if rem[0] == '\n' {
			s.SkipAndAdvance(1)
			state = beforeCommand
			continue
		}
		if n := blankRun(rem); n > 0 {
			s.SkipAndAdvance(uint32(n))
			if state == inCommand || state == inArgument {
				state = beforeArgument
			}
			continue
		}

		if rem[0] == '#' {
			n := lineCommentLength(rem)
			s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
			continue
		}

		if n := len(twoCharOp(rem)); n > 0 {
			s.EmitAndAdvance(uint32(n), core.SymbolOp, base.CoalesceDefault)
			state = beforeCommand
			continue
		}
		if rem[0] == '|' || rem[0] == ';' || rem[0] == '&' {
			s.EmitAndAdvance(1, core.SymbolOp, base.CoalesceDefault)
			state = beforeCommand
			continue
		}
		if rem[0] == '<' || rem[0] == '>' {
			s.EmitAndAdvance(1, core.SymbolOp, base.CoalesceDefault)
			state = beforeArgument
			continue
		}
		if rem[0] == '(' || rem[0] == ')' {
			kind := core.SymbolParens
			s.EmitAndAdvance(1, kind, base.CoalesceDefault)
			continue
		}

		if rem[0] == '\'' {
			length, terminated := singleQuotedLength(rem)
			s.EmitEnclosed(length, terminated, 1, 1, core.String, core.StringDelim)
			state = advanceAfterWord(state)
			continue
		}

		if rem[0] == '"' {
			lexDoubleQuoted(s)
			state = advanceAfterWord(state)
			continue
		}

		if len(rem) >= 2 && rem[0] == '$' && rem[1] == '{' {
			lexSubstitution(s, '{', '}', core.NameVar)
			state = advanceAfterWord(state)
			continue
		}
		if len(rem) >= 2 && rem[0] == '$' && rem[1] == '(' {
			lexSubstitution(s, '(', ')', core.Name)
			state = advanceAfterWord(state)
			continue
		}
		if rem[0] == '$' {
			n := 1 + simpleVarNameLength(rem[1:])
			s.EmitAndAdvance(uint32(n), core.NameVar, base.CoalesceDefault)
			state = advanceAfterWord(state)
			continue
		}

		if rem[0] == '\\' {
			n := backslashEscapeLength(rem)
			s.EmitAndAdvance(uint32(n), core.Escape, base.CoalesceDefault)
			continue
		}

		// A bare word: until whitespace or a syntactically significant
		// character.
		n := wordLength(rem)
		if n > 0 {
			kind := classifyWord(state, rem[:n])
			s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
			state = advanceAfterWord(state)
			continue
		}

		_, size := charclass.DecodeRune(rem)
		if size == 0 {
			size = 1
		}
		s.EmitAndAdvance(uint32(size), core.Error, base.CoalesceDefault)
	}
}

func advanceAfterWord(state wordState) wordState {
	switch state {
	case beforeCommand:
		return inCommand
	default:
		return inArgument
	}
}

func classifyWord(state wordState, word string) core.Kind {
	switch state {
	case beforeCommand, inCommand:
		return core.NameFunction
	case beforeArgument:
		if len(word) > 0 && word[0] == '-' {
			return core.NameAttr
		}
		return core.String
	default:
		return core.String
	}
}

func twoCharOp(s string) string {
	best := ""
	for _, op := range twoCharOperators {
		if len(s) >= len(op) && s[:len(op)] == op && len(op) > len(best) {
			best = op
		}
	}
	return best
}

func blankRun(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
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

func singleQuotedLength(s string) (length int, terminated bool) {
	i := 1
	for i < len(s) {
		if s[i] == '\'' {
			return i + 1, true
		}
		i++
	}
	return i, false
}

// lexDoubleQuoted emits the delimiter/content/escape/substitution
// structure of a double-quoted string, recursing for embedded `$(...)`
// and `${...}` forms.
func lexDoubleQuoted(s *base.State) {
	s.EmitAndAdvance(1, core.StringDelim, base.CoalesceDefault)
	for !s.Eof() {
		rem := s.Remainder()
		switch {
		case rem[0] == '"':
			s.EmitAndAdvance(1, core.StringDelim, base.CoalesceDefault)
			return
		case rem[0] == '\\':
			n := backslashEscapeLength(rem)
			s.EmitAndAdvance(uint32(n), core.StringEscape, base.CoalesceDefault)
		case len(rem) >= 2 && rem[0] == '$' && rem[1] == '{':
			lexSubstitution(s, '{', '}', core.NameVar)
		case len(rem) >= 2 && rem[0] == '$' && rem[1] == '(':
			lexSubstitution(s, '(', ')', core.Name)
		case rem[0] == '$':
			n := 1 + simpleVarNameLength(rem[1:])
			if n == 1 {
				s.EmitAndAdvance(1, core.String, base.CoalesceDefault)
			} else {
				s.EmitAndAdvance(uint32(n), core.NameVar, base.CoalesceDefault)
			}
		default:
			n := plainRunLength(rem)
			s.EmitAndAdvance(uint32(n), core.String, base.CoalesceDefault)
		}
	}
}

// lexSubstitution consumes `$` + open + ... + close, recursing into
// lexSequence for command substitutions (open=='(') and simply scanning
// a name/expression for parameter substitutions (open=='{').
func lexSubstitution(s *base.State, open, close byte, innerKind core.Kind) {
	s.EmitAndAdvance(2, core.StringInterpolationDelim, base.CoalesceDefault)
	if open == '(' {
		lexSequence(s, beforeCommand, close)
	} else {
		lexParameterBody(s, close)
	}
	if !s.Eof() && s.Remainder()[0] == close {
		s.EmitAndAdvance(1, core.StringInterpolationDelim, base.CoalesceDefault)
	}
}

// lexParameterBody consumes a `${...}` body: a variable name plus any
// trailing expansion operator text, all rendered as name_var up to the
// closing brace.
func lexParameterBody(s *base.State, close byte) {
	for !s.Eof() {
		rem := s.Remainder()
		if rem[0] == close {
			return
		}
		if len(rem) >= 2 && rem[0] == '$' && rem[1] == '(' {
			lexSubstitution(s, '(', ')', core.Name)
			continue
		}
		n := match.Identifier(rem, bashVarStart, bashVarContinue)
		if n > 0 {
			s.EmitAndAdvance(uint32(n), core.NameVar, base.CoalesceDefault)
			continue
		}
		s.EmitAndAdvance(1, core.NameVar, base.CoalesceDefault)
	}
}

func bashVarStart(r rune) bool    { return r == '_' || (r < 128 && charclass.IsASCIIAlpha(byte(r))) }
func bashVarContinue(r rune) bool { return r == '_' || (r < 128 && charclass.IsASCIIAlnum(byte(r))) }

func simpleVarNameLength(s string) int {
	i := 0
	for i < len(s) && (charclass.IsASCIIAlnum(s[i]) || s[i] == '_') {
		i++
	}
	if i == 0 && len(s) > 0 && isSpecialParam(s[0]) {
		return 1
	}
	return i
}

func isSpecialParam(b byte) bool {
	switch b {
	case '@', '*', '#', '?', '-', '$', '!', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func backslashEscapeLength(s string) int {
	if len(s) < 2 {
		return 1
	}
	return 2
}

func wordLength(s string) int {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '|', ';', '&', '<', '>', '(', ')', '\'', '"', '$', '\\', '#':
			return i
		}
		i++
	}
	return i
}

func plainRunLength(s string) int {
	i := 0
	for i < len(s) {
		switch s[i] {
		case '"', '\\', '$':
			return i
		}
		i++
	}
	return i
}
