// Package nasm highlights NASM assembly source per spec.md §4.4.10.
package nasm

import (
	"sort"

	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

var registers = sortedSet(
	"rax", "rbx", "rcx", "rdx", "rsi", "rdi", "rbp", "rsp",
	"eax", "ebx", "ecx", "edx", "esi", "edi", "ebp", "esp",
	"ax", "bx", "cx", "dx", "si", "di", "bp", "sp",
	"al", "bl", "cl", "dl", "ah", "bh", "ch", "dh",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
)

var directives = sortedSet(
	"section", "global", "extern", "bits", "org", "align", "times", "default",
	"db", "dw", "dd", "dq", "dt", "resb", "resw", "resd", "resq",
	"equ", "incbin", "struc", "endstruc", "istruc", "iend",
)

var instructions = sortedSet(
	"mov", "lea", "push", "pop", "add", "sub", "mul", "imul", "div", "idiv",
	"and", "or", "xor", "not", "neg", "shl", "shr", "sar", "sal", "rol", "ror",
	"cmp", "test", "jmp", "je", "jne", "jz", "jnz", "jg", "jl", "jge", "jle",
	"ja", "jb", "jae", "jbe", "call", "ret", "nop", "int", "syscall", "leave",
	"cdq", "cqo", "inc", "dec", "xchg", "movzx", "movsx",
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

var operators = []string{"[", "]", "+", "-", "*", ":", ",", "(", ")"}

var numberSpec = match.NumberSpec{
	Prefixes: []match.NumberPrefix{
		{Text: "0x", Base: 16}, {Text: "0b", Base: 2}, {Text: "0o", Base: 8},
	},
	Suffixes: []string{"h", "b", "o", "q"},
}

// Highlight tokenizes NASM assembly source.
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

		if rem[0] == '"' || rem[0] == '\'' {
			length, terminated := quotedLength(rem)
			s.EmitEnclosed(length, terminated, 1, 1, core.String, core.StringDelim)
			continue
		}

		if charclass.IsASCIIDigit(rem[0]) {
			// Hexadecimal with an 'h' suffix (e.g. "1Fh") is one number token.
			n := 0
			for n < len(rem) && charclass.IsHexDigit(rem[n]) {
				n++
			}
			if n < len(rem) && (rem[n] == 'h' || rem[n] == 'H') {
				s.EmitAndAdvance(uint32(n+1), core.Number, base.CoalesceDefault)
				continue
			}
		}

		if r, ok := match.Number(rem, numberSpec); ok {
			s.EmitNumber(r, base.NumberEmitSpec{})
			continue
		}

		if n := match.Identifier(rem, charclass.IsNASMIdentStart, charclass.IsNASMIdentContinue); n > 0 {
			word := lowerASCII(rem[:n])
			kind := core.Name
			switch {
			case inSet(instructions, word):
				kind = core.Keyword
			case inSet(directives, word):
				kind = core.KeywordControl
			case inSet(registers, word):
				kind = core.NameVar
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

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
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
