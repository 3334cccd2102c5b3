// Package llvm highlights LLVM textual IR per spec.md §4.4.10: local
// (%name) and global (@name) identifiers, iN integer types, labels, and a
// curated keyword table.
package llvm

import (
	"sort"

	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

var keywords = sortedSet(
	"define", "declare", "ret", "br", "switch", "indirectbr", "invoke",
	"resume", "unreachable", "call", "load", "store", "alloca", "getelementptr",
	"fadd", "add", "sub", "mul", "udiv", "sdiv", "fdiv", "urem", "srem", "frem",
	"and", "or", "xor", "shl", "lshr", "ashr", "icmp", "fcmp", "phi", "select",
	"trunc", "zext", "sext", "fptrunc", "fpext", "fptoui", "fptosi", "uitofp",
	"sitofp", "ptrtoint", "inttoptr", "bitcast", "extractvalue", "insertvalue",
	"private", "internal", "external", "linkonce", "weak", "common", "appending",
	"global", "constant", "target", "datalayout", "triple", "attributes",
	"nounwind", "nocapture", "noalias", "align", "zeroext", "signext",
	"void", "label", "metadata", "opaque", "true", "false", "null", "undef",
)

var operators = []string{"=", ",", "(", ")", "{", "}", "[", "]", "*", "<", ">", "!"}

func sortedSet(words ...string) []string {
	set := append([]string(nil), words...)
	sort.Strings(set)
	return set
}

func isKeyword(word string) bool {
	i := sort.SearchStrings(keywords, word)
	return i < len(keywords) && keywords[i] == word
}

// Highlight tokenizes LLVM IR source.
func Highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	s := base.NewState(source, buffer, opts, log)
	for !s.Eof() {
		rem := s.Remainder()

		if n := whitespaceRun(rem); n > 0 {
			s.SkipAndAdvance(uint32(n))
			continue
		}

		if rem[0] == ';' {
			n := lineCommentLength(rem)
			s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
			continue
		}

		if rem[0] == '"' {
			length, terminated := quotedLength(rem)
			s.EmitEnclosed(length, terminated, 1, 1, core.String, core.StringDelim)
			continue
		}

		if rem[0] == '%' || rem[0] == '@' {
			n := 1 + match.Identifier(rem[1:], identChar, identChar)
			kind := core.NameVar
			if rem[0] == '@' {
				kind = core.NameFunction
			}
			if n == 1 {
				s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
				continue
			}
			s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
			continue
		}

		if n := intTypeLength(rem); n > 0 {
			s.EmitAndAdvance(uint32(n), core.KeywordType, base.CoalesceDefault)
			continue
		}

		if r, ok := match.Number(rem, numberSpec); ok {
			s.EmitNumber(r, base.NumberEmitSpec{})
			continue
		}

		if n := match.Identifier(rem, identStart, identChar); n > 0 {
			word := rem[:n]
			kind := core.Name
			if isKeyword(word) {
				kind = core.Keyword
			}
			if n < len(rem) && rem[n] == ':' {
				s.EmitAndAdvance(uint32(n+1), core.NameLabel, base.CoalesceDefault)
				continue
			}
			s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
			continue
		}

		if n := match.LongestOperator(rem, operators); n > 0 {
			s.EmitAndAdvance(uint32(n), core.SymbolOp, base.CoalesceDefault)
			continue
		}

		_, size := charclass.DecodeRune(rem)
		if size == 0 {
			size = 1
		}
		s.EmitAndAdvance(uint32(size), core.Error, base.CoalesceDefault)
	}
}

var numberSpec = match.NumberSpec{
	AllowedSigns: "+-",
	Prefixes:     []match.NumberPrefix{{Text: "0x", Base: 16}},
	ExponentMarkers: []match.ExponentMarker{
		{Byte: 'e', Base: 10},
	},
}

func identStart(r rune) bool {
	return charclass.IsLLVMIdentChar(r) && !(r >= '0' && r <= '9')
}
func identChar(r rune) bool { return charclass.IsLLVMIdentChar(r) }

// intTypeLength matches an `iN` integer type name (i1, i8, i32, i64, ...).
func intTypeLength(s string) int {
	if len(s) < 2 || s[0] != 'i' || !charclass.IsASCIIDigit(s[1]) {
		return 0
	}
	i := 2
	for i < len(s) && charclass.IsASCIIDigit(s[i]) {
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
	i := 1
	for i < len(s) && s[i] != '\n' {
		i++
	}
	return i
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
