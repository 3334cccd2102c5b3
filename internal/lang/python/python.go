// Package python highlights Python source per spec.md §4.4.7. Indent and
// dedent are not modeled; this is a lexical highlighter, not a parser.
package python

import (
	"sort"

	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

var keywords = sortedSet(
	"and", "as", "assert", "async", "await", "class", "def", "del", "elif",
	"else", "except", "finally", "for", "from", "global", "if", "import",
	"in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise", "return",
	"try", "while", "with", "yield",
)

var controlKeywords = sortedSet(
	"if", "elif", "else", "for", "while", "try", "except", "finally",
	"with", "return", "yield", "raise", "break", "continue", "pass",
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
	"**=", "//=", ">>=", "<<=", "...", "->",
	"**", "//", "<<", ">>", "<=", ">=", "==", "!=", ":=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
	"+", "-", "*", "/", "%", "@", "&", "|", "^", "~", "<", ">", "=",
	"(", ")", "[", "]", "{", "}", ",", ":", ".", ";",
}

var numberSpec = match.NumberSpec{
	AllowedSigns: "",
	Prefixes: []match.NumberPrefix{
		{Text: "0x", Base: 16}, {Text: "0o", Base: 8}, {Text: "0b", Base: 2},
	},
	ExponentMarkers: []match.ExponentMarker{{Byte: 'e', Base: 10}},
	Suffixes:        []string{"j", "J"},
	DigitSeparator:  '_',
}

// Highlight tokenizes Python source.
func Highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	s := base.NewState(source, buffer, opts, log)
	for !s.Eof() {
		rem := s.Remainder()

		if n := whitespaceRun(rem); n > 0 {
			s.SkipAndAdvance(uint32(n))
			continue
		}

		if rem[0] == '#' {
			n := lineCommentLength(rem)
			s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
			continue
		}

		if prefixLen, quoteLen, ok := stringPrefix(rem); ok {
			lexString(&s, rem, prefixLen, quoteLen)
			continue
		}

		if r, ok := match.Number(rem, numberSpec); ok {
			r = fixImaginarySuffix(r)
			s.EmitNumber(r, base.NumberEmitSpec{Separator: '_'})
			continue
		}

		if n := match.Identifier(rem, charclass.IsPythonIdentStart, charclass.IsPythonIdentContinue); n > 0 {
			word := rem[:n]
			kind := core.Name
			switch {
			case word == "True" || word == "False":
				kind = core.Bool
			case word == "None":
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

// fixImaginarySuffix corrects the common numeric framework's generic
// erroneous-suffix-on-non-integer rule for Python: a 'j'/'J' imaginary
// suffix is valid on both integer and float literals, so it must never
// be flagged erroneous on that basis alone.
func fixImaginarySuffix(r match.NumberResult) match.NumberResult {
	if r.Suffix > 0 && (r.RadixPoint > 0 || r.ExponentDigits > 0) {
		r.Erroneous = false
	}
	return r
}

func operatorKind(op string) core.Kind {
	switch op {
	case "(", ")":
		return core.SymbolParens
	case "[", "]":
		return core.SymbolSquare
	case "{", "}":
		return core.SymbolBrace
	case ",", ":", ".", ";":
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
	i := 1
	for i < len(s) && s[i] != '\n' {
		i++
	}
	return i
}

// stringPrefix recognizes an optional string-prefix identifier (r, b, u,
// f, and combinations rb/br/rf/fr, case-insensitive) immediately before a
// quote, and the quote itself (1 or 3 bytes for triple-quoted strings).
// Returns the prefix length, the quote-marker length, and whether a
// string literal starts here at all.
func stringPrefix(s string) (prefixLen, quoteLen int, ok bool) {
	i := 0
	for i < len(s) && i < 2 && isPrefixLetter(s[i]) {
		i++
	}
	if i >= len(s) || (s[i] != '"' && s[i] != '\'') {
		return 0, 0, false
	}
	q := s[i]
	n := 1
	if i+2 < len(s) && s[i+1] == q && s[i+2] == q {
		n = 3
	}
	return i, n, true
}

func isPrefixLetter(b byte) bool {
	switch b {
	case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		return true
	default:
		return false
	}
}

// classifyPrefix maps a (possibly empty) prefix spelling to its
// validity; any combination besides a single letter or the pairs
// rb/br/rf/fr (case-insensitive) is invalid.
func classifyPrefix(prefix string) (valid, raw bool) {
	if prefix == "" {
		return true, false
	}
	lower := toLower(prefix)
	switch lower {
	case "r", "b", "u", "f":
		return true, lower == "r"
	case "rb", "br", "rf", "fr":
		return true, true
	default:
		return false, false
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func lexString(s *base.State, rem string, prefixLen, quoteLen int) {
	prefixText := rem[:prefixLen]
	valid, raw := classifyPrefix(prefixText)

	start := s.Index
	if prefixLen > 0 {
		kind := core.StringDecor
		if !valid {
			kind = core.Error
		}
		s.Emit(start, uint32(prefixLen), kind, base.CoalesceDefault)
	}

	body := rem[prefixLen:]
	length, terminated := stringBodyLength(body, quoteLen, raw)

	s.Emit(start+uint32(prefixLen), uint32(quoteLen), core.StringDelim, base.CoalesceDefault)
	contentEnd := prefixLen + length
	if terminated {
		contentEnd -= quoteLen
	}
	contentStart := prefixLen + quoteLen
	if contentEnd > contentStart {
		lexStringContent(s, start, rem[contentStart:contentEnd], uint32(contentStart), raw)
	}
	if terminated {
		s.Emit(start+uint32(contentEnd), uint32(quoteLen), core.StringDelim, base.CoalesceDefault)
	}
	s.Index = start
	s.Advance(uint32(prefixLen + length))
}

// stringBodyLength scans a string body (after prefix, including the
// opening quote) of the given quote length, honoring backslash escapes
// (even in raw strings, which still respect `\"`/`\\` for the purpose of
// not ending the string early) and triple-quote multi-line content.
func stringBodyLength(s string, quoteLen int, raw bool) (length int, terminated bool) {
	_ = raw
	i := quoteLen
	closer := s[:quoteLen]
	for i < len(s) {
		if i+quoteLen <= len(s) && s[i:i+quoteLen] == closer {
			return i + quoteLen, true
		}
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		if quoteLen == 1 && s[i] == '\n' {
			return i, false
		}
		i++
	}
	return i, false
}

func lexStringContent(s *base.State, origin uint32, content string, contentOffset uint32, raw bool) {
	i := 0
	for i < len(content) {
		if content[i] == '\\' && i+1 < len(content) {
			n, erroneous := pythonEscapeLength(content[i:], raw)
			kind := core.StringEscape
			if erroneous {
				kind = core.Error
			}
			if raw {
				// Raw strings still don't interpret escapes semantically,
				// but the lexer still must not terminate on an escaped
				// quote, and byte-literal \x length tracking still
				// applies; render as decor rather than escape.
				kind = core.StringDecor
			}
			s.Emit(origin+contentOffset+uint32(i), uint32(n), kind, base.CoalesceDefault)
			i += n
			continue
		}
		j := i
		for j < len(content) && content[j] != '\\' {
			j++
		}
		s.Emit(origin+contentOffset+uint32(i), uint32(j-i), core.String, base.CoalesceDefault)
		i = j
	}
}

// pythonEscapeLength matches a backslash escape inside a Python string
// body. content[0] == '\\'.
func pythonEscapeLength(content string, raw bool) (length int, erroneous bool) {
	if len(content) < 2 {
		return 1, true
	}
	switch content[1] {
	case '\n':
		return 2, false
	case 'x':
		n := 2
		digits := 0
		for n < len(content) && digits < 2 && charclass.IsHexDigit(content[n]) {
			n++
			digits++
		}
		return n, digits != 2
	case 'N', 'u', 'U':
		// Unicode name/short/long escapes; not modeled byte-for-byte here,
		// treated as a simple two-byte escape per the shared framework.
		return 2, false
	default:
		if charclass.IsOctalDigit(content[1]) {
			n := 1
			for n < 3 && 1+n < len(content) && charclass.IsOctalDigit(content[1+n]) {
				n++
			}
			return 1 + n, false
		}
		simple := "\\'\"abfnrtv0"
		for i := 0; i < len(simple); i++ {
			if content[1] == simple[i] {
				return 2, false
			}
		}
		return 2, raw
	}
}
