// Package ebnf highlights ISO/W3C-style EBNF grammars per spec.md
// §4.4.10: nonterminal names alternate between declaration and reference
// roles across the `=` / `;` / `.` production delimiters.
package ebnf

import (
	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

var operators = []string{"::=", ":=", "=", "|", ",", ";", ".", "(", ")", "[", "]", "{", "}", "-"}

// Highlight tokenizes EBNF source. A nonterminal at the start of a
// production (i.e. immediately after the start of input, `;`, or `.`) is
// a declaration; any other nonterminal reference is plain.
func Highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	s := base.NewState(source, buffer, opts, log)
	atLHS := true

	for !s.Eof() {
		rem := s.Remainder()

		if n := whitespaceRun(rem); n > 0 {
			s.SkipAndAdvance(uint32(n))
			continue
		}

		if rem[0] == '"' || rem[0] == '\'' {
			length, terminated := quotedLength(rem)
			s.EmitEnclosed(length, terminated, 1, 1, core.String, core.StringDelim)
			continue
		}

		if n := commentLength(rem); n > 0 {
			s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
			continue
		}

		if n := match.Identifier(rem, charclass.IsEBNFIdentChar, charclass.IsEBNFIdentChar); n > 0 {
			kind := core.NameNonterminal
			if atLHS {
				kind = core.NameNonterminalDecl
			}
			s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
			atLHS = false
			continue
		}

		if n := match.LongestOperator(rem, operators); n > 0 {
			op := rem[:n]
			s.EmitAndAdvance(uint32(n), operatorKind(op), base.CoalesceDefault)
			if op == ";" || op == "." {
				atLHS = true
			} else if op == "=" || op == ":=" || op == "::=" {
				atLHS = false
			}
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
	default:
		return core.SymbolPunc
	}
}

func whitespaceRun(s string) int {
	i := 0
	for i < len(s) && charclass.IsASCIIWhitespace(s[i]) {
		i++
	}
	return i
}

// commentLength matches a (*...*) comment, the conventional EBNF form.
func commentLength(s string) int {
	if len(s) < 2 || s[0] != '(' || s[1] != '*' {
		return 0
	}
	i := 2
	for i+1 < len(s) {
		if s[i] == '*' && s[i+1] == ')' {
			return i + 2
		}
		i++
	}
	return len(s)
}

func quotedLength(s string) (length int, terminated bool) {
	quote := s[0]
	i := 1
	for i < len(s) {
		if s[i] == quote {
			return i + 1, true
		}
		if s[i] == '\n' {
			return i, false
		}
		i++
	}
	return i, false
}
