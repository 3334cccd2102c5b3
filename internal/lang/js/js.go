// Package js highlights JavaScript, TypeScript, and JSX source per
// spec.md §4.4.2: an input_element goal state machine deciding between
// regex and division/decrement at '/', template literals recursing on
// `${ ... }`, and a trial-parsed JSX grammar.
package js

import (
	"sort"

	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

// goal is the input_element context used to disambiguate '/' as the
// start of a regular expression literal versus a division or
// decrement-adjacent operator.
type goal uint8

const (
	goalRegex goal = iota
	goalDiv
)

var jsKeywords = sortedSet(
	"break", "case", "catch", "class", "const", "continue", "debugger",
	"default", "delete", "do", "else", "export", "extends", "finally",
	"for", "function", "if", "import", "in", "instanceof", "let", "new",
	"return", "static", "super", "switch", "this", "throw", "try",
	"typeof", "var", "void", "while", "with", "yield", "async", "await",
	"of", "get", "set",
)

var tsOnlyKeywords = sortedSet(
	"as", "is", "type", "interface", "enum", "namespace", "declare",
	"implements", "private", "protected", "public", "readonly", "abstract",
	"module", "satisfies", "keyof", "infer", "never", "unknown", "asserts",
)

var controlKeywords = sortedSet(
	"break", "case", "catch", "continue", "do", "else", "finally", "for",
	"if", "return", "switch", "throw", "try", "while", "yield", "await",
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
	">>>=", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"...", "=>", "?.", "??",
	"==", "!=", "<=", ">=", "&&", "||", "++", "--", "**", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"+", "-", "*", "/", "%", "=", "<", ">", "!", "~", "&", "|", "^", "?",
	"(", ")", "[", "]", "{", "}", ",", ";", ":", ".",
}

var numberSpec = match.NumberSpec{
	AllowedSigns: "",
	Prefixes: []match.NumberPrefix{
		{Text: "0x", Base: 16}, {Text: "0o", Base: 8}, {Text: "0b", Base: 2},
	},
	ExponentMarkers: []match.ExponentMarker{{Byte: 'e', Base: 10}},
	Suffixes:        []string{"n"},
	DigitSeparator:  '_',
}

type lang struct {
	typescript bool
	jsx        bool
}

// HighlightJS tokenizes JavaScript. JSX elements are always recognized,
// regardless of opts.
func HighlightJS(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	highlight(source, buffer, opts, log, lang{typescript: false, jsx: true})
}

// HighlightTS tokenizes TypeScript. TSX-vs-TS ambiguity (whether '<' in
// expression position opens a JSX tag or a generic type argument list) is
// resolved in favor of generics, matching the core's documented behavior
// when opts.Strict requests stricter grammar.
func HighlightTS(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	highlight(source, buffer, opts, log, lang{typescript: true, jsx: !opts.Strict})
}

func highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger, l lang) {
	s := base.NewState(source, buffer, opts, log)
	g := goalRegex

	if len(source) >= 2 && source[0] == '#' && source[1] == '!' {
		n := lineCommentLength(source)
		s.EmitAndAdvance(uint32(n), core.Comment, base.CoalesceDefault)
	}

	for !s.Eof() {
		rem := s.Remainder()

		if n := whitespaceRun(rem); n > 0 {
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
			s.EmitEnclosed(length, terminated, 2, 2, core.Comment, core.CommentDelim)
			g = goalRegex
			continue
		}

		if rem[0] == '"' || rem[0] == '\'' {
			lexQuotedString(&s, rem)
			g = goalDiv
			continue
		}

		if rem[0] == '`' {
			lexTemplateLiteral(&s, l)
			g = goalDiv
			continue
		}

		if rem[0] == '#' {
			if n := match.Identifier(rem[1:], charclass.IsJSIdentStart, charclass.IsJSIdentContinue); n > 0 {
				s.EmitAndAdvance(uint32(1+n), core.NameAttr, base.CoalesceDefault)
				g = goalDiv
				continue
			}
		}

		if l.jsx && rem[0] == '<' && g == goalRegex {
			if n := tryLexJSXElement(&s, rem, l); n > 0 {
				g = goalDiv
				continue
			}
		}

		if rem[0] == '/' && g == goalRegex {
			if length, ok := regexLength(rem); ok {
				s.EmitAndAdvance(uint32(length), core.String, base.CoalesceDefault)
				g = goalDiv
				continue
			}
		}

		if r, ok := match.Number(rem, numberSpec); ok {
			r = fixBigIntSuffix(r)
			s.EmitNumber(r, base.NumberEmitSpec{Separator: '_'})
			g = goalDiv
			continue
		}

		if n := match.Identifier(rem, charclass.IsJSIdentStart, charclass.IsJSIdentContinue); n > 0 {
			word := rem[:n]
			kind := classifyWord(word, l)
			s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
			g = identifierGoal(word)
			continue
		}

		if n := match.LongestOperator(rem, operators); n > 0 {
			op := rem[:n]
			s.EmitAndAdvance(uint32(n), operatorKind(op), base.CoalesceDefault)
			g = goalAfterOperator(op)
			continue
		}

		_, size := charclass.DecodeRune(rem)
		if size == 0 {
			size = 1
		}
		s.EmitAndAdvance(uint32(size), core.Error, base.CoalesceDefault)
		g = goalRegex
	}
}

// fixBigIntSuffix marks a numeric literal erroneous when the 'n' BigInt
// suffix follows a fractional or exponent part: BigInt only applies to
// integers, unlike Python's 'j' imaginary suffix which is valid on floats.
func fixBigIntSuffix(r match.NumberResult) match.NumberResult {
	if r.Suffix > 0 && (r.RadixPoint > 0 || r.ExponentDigits > 0) {
		r.Erroneous = true
	}
	return r
}

func classifyWord(word string, l lang) core.Kind {
	switch word {
	case "true", "false":
		return core.Bool
	case "null":
		return core.Null
	case "undefined":
		return core.Null
	case "this", "super":
		return core.This
	}
	if inSet(controlKeywords, word) {
		return core.KeywordControl
	}
	if inSet(jsKeywords, word) {
		return core.Keyword
	}
	if l.typescript && inSet(tsOnlyKeywords, word) {
		return core.Keyword
	}
	return core.Name
}

// identifierGoal reports the input_element goal following an
// identifier-like token: most identifiers put '/' in division position,
// but keywords that can be followed by an expression (return, typeof,
// case, etc.) restore regex position.
func identifierGoal(word string) goal {
	switch word {
	case "return", "typeof", "case", "delete", "in", "instanceof", "new",
		"void", "throw", "do", "else", "yield", "await":
		return goalRegex
	default:
		return goalDiv
	}
}

func goalAfterOperator(op string) goal {
	switch op {
	case ")", "]":
		return goalDiv
	case "++", "--":
		return goalDiv
	default:
		return goalRegex
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
	case ",", ";", ":", ".":
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

func lexQuotedString(s *base.State, rem string) {
	quote := rem[0]
	origin := s.Index
	i := 1
	for i < len(rem) {
		switch {
		case rem[i] == quote:
			i++
			emitStringParts(s, origin, rem[:i], quote)
			s.Index = origin
			s.Advance(uint32(i))
			return
		case rem[i] == '\\' && i+1 < len(rem):
			i += 2
		case rem[i] == '\n':
			emitStringParts(s, origin, rem[:i], quote)
			s.Index = origin
			s.Advance(uint32(i))
			return
		default:
			i++
		}
	}
	emitStringParts(s, origin, rem, quote)
	s.Index = origin
	s.Advance(uint32(len(rem)))
}

// emitStringParts emits the delimiter/content/escape structure of a
// quoted string whose full matched text (including any closing quote) is
// given in text.
func emitStringParts(s *base.State, origin uint32, text string, quote byte) {
	terminated := len(text) >= 2 && text[len(text)-1] == quote
	s.Emit(origin, 1, core.StringDelim, base.CoalesceDefault)
	contentEnd := len(text)
	if terminated {
		contentEnd--
	}
	content := text[1:contentEnd]
	i := 0
	for i < len(content) {
		if content[i] == '\\' {
			n := jsEscapeLength(content[i:])
			s.Emit(origin+1+uint32(i), uint32(n), core.StringEscape, base.CoalesceDefault)
			i += n
			continue
		}
		j := i
		for j < len(content) && content[j] != '\\' {
			j++
		}
		s.Emit(origin+1+uint32(i), uint32(j-i), core.String, base.CoalesceDefault)
		i = j
	}
	if terminated {
		s.Emit(origin+uint32(contentEnd), 1, core.StringDelim, base.CoalesceDefault)
	}
}

func jsEscapeLength(s string) int {
	if len(s) < 2 {
		return 1
	}
	switch s[1] {
	case 'x':
		n := 2
		for n < len(s) && n < 4 && charclass.IsHexDigit(s[n]) {
			n++
		}
		return n
	case 'u':
		if len(s) > 2 && s[2] == '{' {
			n := 3
			for n < len(s) && s[n] != '}' {
				n++
			}
			if n < len(s) {
				n++
			}
			return n
		}
		n := 2
		for n < len(s) && n < 6 && charclass.IsHexDigit(s[n]) {
			n++
		}
		return n
	default:
		return 2
	}
}

// lexTemplateLiteral consumes a backtick template literal, recursing
// into the full JS highlighter for each `${ ... }` substitution (brace
// depth tracked so nested object literals inside a substitution don't
// close it early).
func lexTemplateLiteral(s *base.State, l lang) {
	s.EmitAndAdvance(1, core.StringDelim, base.CoalesceDefault)
	for !s.Eof() {
		rem := s.Remainder()
		switch {
		case rem[0] == '`':
			s.EmitAndAdvance(1, core.StringDelim, base.CoalesceDefault)
			return
		case rem[0] == '\\':
			n := jsEscapeLength(rem)
			s.EmitAndAdvance(uint32(n), core.StringEscape, base.CoalesceDefault)
		case len(rem) >= 2 && rem[0] == '$' && rem[1] == '{':
			s.EmitAndAdvance(2, core.StringInterpolationDelim, base.CoalesceDefault)
			length := substitutionLength(s.Remainder())
			scratch := make([]core.Token, 32)
			s.ConsumeNested(nestedHighlight(l), uint32(length), scratch)
			if !s.Eof() && s.Remainder()[0] == '}' {
				s.EmitAndAdvance(1, core.StringInterpolationDelim, base.CoalesceDefault)
			}
		default:
			n := templateTextRunLength(rem)
			s.EmitAndAdvance(uint32(n), core.String, base.CoalesceDefault)
		}
	}
}

func nestedHighlight(l lang) base.NestedHighlightFunc {
	return func(source string, buf *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
		highlight(source, buf, opts, log, l)
	}
}

// substitutionLength finds the end of a `${ ... }` body (exclusive of
// the closing brace), tracking nested braces, strings, and template
// literals so an embedded `}` inside any of those doesn't end the
// substitution prematurely.
func substitutionLength(s string) int {
	depth := 0
	i := 0
	for i < len(s) {
		switch s[i] {
		case '{':
			depth++
			i++
		case '}':
			if depth == 0 {
				return i
			}
			depth--
			i++
		case '"', '\'':
			i += skipQuotedRun(s[i:])
		case '`':
			i += skipTemplateRun(s[i:])
		default:
			i++
		}
	}
	return len(s)
}

func skipQuotedRun(s string) int {
	quote := s[0]
	i := 1
	for i < len(s) {
		if s[i] == quote {
			return i + 1
		}
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		i++
	}
	return i
}

func skipTemplateRun(s string) int {
	i := 1
	depth := 0
	for i < len(s) {
		switch s[i] {
		case '`':
			if depth == 0 {
				return i + 1
			}
			i++
		case '\\':
			if i+1 < len(s) {
				i += 2
				continue
			}
			i++
		case '$':
			if i+1 < len(s) && s[i+1] == '{' {
				depth++
				i += 2
				continue
			}
			i++
		case '}':
			if depth > 0 {
				depth--
			}
			i++
		default:
			i++
		}
	}
	return i
}

func templateTextRunLength(s string) int {
	i := 0
	for i < len(s) {
		if s[i] == '`' || s[i] == '\\' {
			return i
		}
		if i+1 < len(s) && s[i] == '$' && s[i+1] == '{' {
			return i
		}
		i++
	}
	return i
}

// regexLength matches a `/ ... /flags` regular expression literal. The
// caller has already decided that goalRegex applies at this position.
func regexLength(s string) (length int, ok bool) {
	i := 1
	inClass := false
	for i < len(s) {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			i += 2
		case s[i] == '[':
			inClass = true
			i++
		case s[i] == ']':
			inClass = false
			i++
		case s[i] == '/' && !inClass:
			i++
			for i < len(s) && charclass.IsJSIdentContinue(rune(s[i])) {
				i++
			}
			return i, true
		case s[i] == '\n':
			return 0, false
		default:
			i++
		}
	}
	return 0, false
}

// tryLexJSXElement trial-parses a JSX element starting at '<'. If the
// trial fails (not actually a tag), it emits nothing and returns 0,
// leaving the '<' to be claimed by the default operator path on the next
// loop iteration (the caller must not have consumed anything yet).
func tryLexJSXElement(s *base.State, rem string, l lang) int {
	total := jsxElementLength(rem, l)
	if total <= 0 {
		return 0
	}
	lexJSXElement(s, l)
	return total
}

// jsxElementLength performs a read-only scan to decide whether rem opens
// a well-formed JSX element, without emitting tokens. Returns 0 if not.
func jsxElementLength(rem string, l lang) int {
	i := 1
	if i >= len(rem) || !(charclass.IsJSIdentStart(rune(rem[i])) || rem[i] == '>') {
		return 0
	}
	return scanJSXTag(rem)
}

// scanJSXTag is a lightweight well-formedness probe: it walks balanced
// `<...>` / `<.../>` structures, matching tag names on closers, without
// validating attribute grammar in detail. Returns the total matched
// length, or 0 on failure (unbalanced nesting, EOF, or a name mismatch).
func scanJSXTag(rem string) int {
	pos := 0
	type frame struct{ name string }
	var stack []frame
	for {
		if pos >= len(rem) || rem[pos] != '<' {
			if len(stack) == 0 {
				return pos
			}
			// Inside an element's children: skip text (and `{...}`
			// expression children) up to the next '<' or EOF.
			skipped := false
			for pos < len(rem) && rem[pos] != '<' {
				if rem[pos] == '{' {
					pos += skipJSXExpressionRun(rem[pos:])
				} else {
					pos++
				}
				skipped = true
			}
			if pos >= len(rem) {
				return 0
			}
			if skipped {
				continue
			}
			return 0
		}
		if pos+1 < len(rem) && rem[pos+1] == '/' {
			end := indexByteFrom(rem, pos, '>')
			if end < 0 || len(stack) == 0 {
				return 0
			}
			name := trimSpace(rem[pos+2 : end])
			top := stack[len(stack)-1].name
			if name != top {
				return 0
			}
			stack = stack[:len(stack)-1]
			pos = end + 1
			if len(stack) == 0 {
				return pos
			}
			continue
		}
		nameEnd := pos + 1
		for nameEnd < len(rem) && (charclass.IsJSIdentContinue(rune(rem[nameEnd])) || rem[nameEnd] == '.' || rem[nameEnd] == '-') {
			nameEnd++
		}
		name := rem[pos+1 : nameEnd]
		end := matchingTagClose(rem, nameEnd)
		if end < 0 {
			return 0
		}
		selfClosing := end >= 2 && rem[end-2] == '/'
		pos = end
		if !selfClosing {
			stack = append(stack, frame{name: name})
		}
		if len(stack) == 0 {
			return pos
		}
	}
}

// matchingTagClose finds the '>' that ends a start tag whose name has
// already been consumed through nameEnd, skipping over quoted attribute
// values so an embedded '>' inside one doesn't end the tag early.
func matchingTagClose(rem string, nameEnd int) int {
	i := nameEnd
	for i < len(rem) {
		switch rem[i] {
		case '>':
			return i + 1
		case '"', '\'':
			i += skipQuotedRun(rem[i:])
		case '{':
			i += skipJSXExpressionRun(rem[i:])
		default:
			i++
		}
	}
	return -1
}

func skipJSXExpressionRun(s string) int {
	depth := 0
	i := 0
	for i < len(s) {
		switch s[i] {
		case '{':
			depth++
			i++
		case '}':
			depth--
			i++
			if depth == 0 {
				return i
			}
		default:
			i++
		}
	}
	return i
}

func indexByteFrom(s string, from int, b byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && charclass.IsASCIIWhitespace(s[i]) {
		i++
	}
	for j > i && charclass.IsASCIIWhitespace(s[j-1]) {
		j--
	}
	return s[i:j]
}

// lexJSXElement emits token structure for a single well-formed JSX
// element already validated by scanJSXTag/jsxElementLength.
func lexJSXElement(s *base.State, l lang) {
	s.EmitAndAdvance(1, core.SymbolOp, base.CoalesceDefault)
	rem := s.Remainder()
	if len(rem) > 0 && rem[0] == '/' {
		lexJSXClosingTag(s)
		return
	}
	name := lexJSXName(s)
	lexJSXAttributes(s, l)
	rem = s.Remainder()
	if len(rem) >= 2 && rem[0] == '/' && rem[1] == '>' {
		s.EmitAndAdvance(2, core.SymbolOp, base.CoalesceDefault)
		return
	}
	if len(rem) >= 1 && rem[0] == '>' {
		s.EmitAndAdvance(1, core.SymbolOp, base.CoalesceDefault)
	}
	lexJSXChildren(s, name, l)
}

func lexJSXClosingTag(s *base.State) {
	s.EmitAndAdvance(2, core.SymbolOp, base.CoalesceDefault)
	lexJSXName(s)
	rem := s.Remainder()
	n := 0
	for n < len(rem) && rem[n] != '>' {
		n++
	}
	if n > 0 {
		s.EmitAndAdvance(uint32(n), core.String, base.CoalesceDefault)
	}
	if !s.Eof() && s.Remainder()[0] == '>' {
		s.EmitAndAdvance(1, core.SymbolOp, base.CoalesceDefault)
	}
}

func lexJSXName(s *base.State) string {
	rem := s.Remainder()
	n := 0
	for n < len(rem) && (charclass.IsJSIdentContinue(rune(rem[n])) || rem[n] == '.' || rem[n] == '-') {
		n++
	}
	name := rem[:n]
	if n > 0 {
		kind := core.NameFunction
		if len(name) > 0 && name[0] >= 'a' && name[0] <= 'z' {
			kind = core.MarkupTag
		}
		s.EmitAndAdvance(uint32(n), kind, base.CoalesceDefault)
	}
	return name
}

func lexJSXAttributes(s *base.State, l lang) {
	for !s.Eof() {
		rem := s.Remainder()
		if n := whitespaceRun(rem); n > 0 {
			s.SkipAndAdvance(uint32(n))
			continue
		}
		if len(rem) == 0 || rem[0] == '>' || (len(rem) >= 2 && rem[0] == '/' && rem[1] == '>') {
			return
		}
		if rem[0] == '{' {
			s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
			length := substitutionLength(s.Remainder())
			scratch := make([]core.Token, 16)
			s.ConsumeNested(nestedHighlight(l), uint32(length), scratch)
			if !s.Eof() && s.Remainder()[0] == '}' {
				s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
			}
			continue
		}
		n := 0
		for n < len(rem) && (charclass.IsJSIdentContinue(rune(rem[n])) || rem[n] == '-') {
			n++
		}
		if n == 0 {
			s.EmitAndAdvance(1, core.Error, base.CoalesceDefault)
			continue
		}
		s.EmitAndAdvance(uint32(n), core.MarkupAttr, base.CoalesceDefault)
		rem = s.Remainder()
		if len(rem) > 0 && rem[0] == '=' {
			s.EmitAndAdvance(1, core.SymbolOp, base.CoalesceDefault)
			rem = s.Remainder()
			switch {
			case len(rem) > 0 && (rem[0] == '"' || rem[0] == '\''):
				lexQuotedString(s, rem)
			case len(rem) > 0 && rem[0] == '{':
				s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
				length := substitutionLength(s.Remainder())
				scratch := make([]core.Token, 16)
				s.ConsumeNested(nestedHighlight(l), uint32(length), scratch)
				if !s.Eof() && s.Remainder()[0] == '}' {
					s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
				}
			}
		}
	}
}

func lexJSXChildren(s *base.State, elementName string, l lang) {
	for !s.Eof() {
		rem := s.Remainder()
		if len(rem) >= 2 && rem[0] == '<' && rem[1] == '/' {
			lexJSXClosingTag(s)
			return
		}
		if rem[0] == '<' {
			lexJSXElement(s, l)
			continue
		}
		if rem[0] == '{' {
			s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
			length := substitutionLength(s.Remainder())
			scratch := make([]core.Token, 16)
			s.ConsumeNested(nestedHighlight(l), uint32(length), scratch)
			if !s.Eof() && s.Remainder()[0] == '}' {
				s.EmitAndAdvance(1, core.SymbolBrace, base.CoalesceDefault)
			}
			continue
		}
		n := 0
		for n < len(rem) && rem[n] != '<' && rem[n] != '{' {
			n++
		}
		if n == 0 {
			n = 1
		}
		s.EmitAndAdvance(uint32(n), core.String, base.CoalesceDefault)
	}
}
