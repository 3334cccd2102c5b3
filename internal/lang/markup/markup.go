// Package markup highlights HTML and XML source per spec.md §4.4.3.
package markup

import (
	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/lang/css"
	"github.com/go-ulight/ulight/internal/lang/js"
	"github.com/go-ulight/ulight/internal/logging"
)

type dialect struct {
	xml bool
}

// HighlightHTML tokenizes HTML, recursing into the JS/CSS highlighters
// for raw-text `script`/`style` elements.
func HighlightHTML(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	highlight(source, buffer, opts, log, dialect{xml: false})
}

// HighlightXML tokenizes XML: stricter names, processing instructions,
// no raw-text elements.
func HighlightXML(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	highlight(source, buffer, opts, log, dialect{xml: true})
}

func highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger, d dialect) {
	s := base.NewState(source, buffer, opts, log)
	if n := bomLength(source); n > 0 {
		s.SkipAndAdvance(uint32(n))
	}

	for !s.Eof() {
		rem := s.Remainder()

		switch {
		case len(rem) >= 4 && rem[:4] == "<!--":
			lexComment(&s, rem)
		case d.xml && len(rem) >= 2 && rem[0] == '<' && rem[1] == '?':
			lexProcessingInstruction(&s)
		case !d.xml && startsWithFold(rem, "<!DOCTYPE"):
			lexDoctype(&s, rem)
		case len(rem) >= 9 && rem[:9] == "<![CDATA[":
			lexCDATA(&s, rem, d)
		case len(rem) >= 2 && rem[0] == '<' && rem[1] == '/':
			lexEndTag(&s, d)
		case rem[0] == '<' && isNameStart(rem[1:], d):
			lexStartTag(&s, d)
		default:
			lexText(&s, rem)
		}
	}
}

func bomLength(s string) int {
	const bom = "\xEF\xBB\xBF"
	if len(s) >= 3 && s[:3] == bom {
		return 3
	}
	return 0
}

func isNameStart(rem string, d dialect) bool {
	r, size := charclass.DecodeRune(rem)
	if size == 0 {
		return false
	}
	if d.xml {
		return charclass.IsXMLNameStart(r)
	}
	if r >= 128 {
		return true
	}
	b := byte(r)
	return b != '!' && b != '?' && b != '/' && !charclass.IsASCIIWhitespace(b)
}

// lexComment matches <!-- ... --> . A bare <!--> immediately closes the
// comment (an empty comment body), matching the HTML parsing algorithm's
// abrupt-closing-of-empty-comment allowance; anything else unterminated
// runs to EOF as one comment token.
func lexComment(s *base.State, rem string) {
	if len(rem) >= 5 && rem[:5] == "<!-->" {
		s.EmitAndAdvance(5, core.Comment, base.CoalesceDefault)
		return
	}
	idx := indexOf(rem[4:], "-->")
	if idx < 0 {
		s.EmitAndAdvance(uint32(len(rem)), core.Comment, base.CoalesceDefault)
		return
	}
	total := 4 + idx + 3
	s.EmitAndAdvance(uint32(total), core.Comment, base.CoalesceDefault)
}

func lexDoctype(s *base.State, rem string) {
	idx := indexByte(rem, '>')
	n := len(rem)
	if idx >= 0 {
		n = idx + 1
	}
	s.EmitAndAdvance(uint32(n), core.MarkupTag, base.CoalesceDefault)
}

func lexProcessingInstruction(s *base.State) {
	s.EmitAndAdvance(2, core.SymbolPunc, base.CoalesceDefault)
	rem := s.Remainder()
	n := nameRunLength(rem, true)
	if n > 0 {
		s.EmitAndAdvance(uint32(n), core.NameMacro, base.CoalesceDefault)
	}
	idx := indexOf(s.Remainder(), "?>")
	if idx < 0 {
		s.EmitAndAdvance(uint32(s.Len()), core.NameMacro, base.CoalesceDefault)
		return
	}
	if idx > 0 {
		s.EmitAndAdvance(uint32(idx), core.NameMacro, base.CoalesceDefault)
	}
	s.EmitAndAdvance(2, core.SymbolPunc, base.CoalesceDefault)
}

func lexCDATA(s *base.State, rem string, d dialect) {
	idx := indexOf(rem[9:], "]]>")
	if idx < 0 {
		s.EmitAndAdvance(uint32(len(rem)), core.String, base.CoalesceDefault)
		return
	}
	s.EmitAndAdvance(uint32(9+idx+3), core.String, base.CoalesceDefault)
}

func lexEndTag(s *base.State, d dialect) {
	s.EmitAndAdvance(2, core.SymbolPunc, base.CoalesceDefault)
	rem := s.Remainder()
	n := nameRunLength(rem, d.xml)
	if n > 0 {
		s.EmitAndAdvance(uint32(n), core.MarkupTag, base.CoalesceDefault)
	}
	skipAttributeTrivia(s)
	if !s.Eof() && s.Remainder()[0] == '>' {
		s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
	}
}

func lexStartTag(s *base.State, d dialect) {
	s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
	rem := s.Remainder()
	n := nameRunLength(rem, d.xml)
	name := rem[:n]
	s.EmitAndAdvance(uint32(n), core.MarkupTag, base.CoalesceDefault)

	selfClosed := lexAttributes(s)

	if !d.xml && !selfClosed {
		lower := asciiLower(name)
		switch lower {
		case "script":
			consumeRawText(s, "script", nestedJS)
			return
		case "style":
			consumeRawText(s, "style", nestedCSS)
			return
		case "textarea", "title":
			consumeEscapableRawText(s, lower)
			return
		}
	}
}

// lexAttributes consumes `name`, `name=value`, whitespace, repeatedly
// until `>` or `/>`. Returns whether the tag self-closed.
func lexAttributes(s *base.State) bool {
	for !s.Eof() {
		skipAttributeTrivia(s)
		if s.Eof() {
			return false
		}
		rem := s.Remainder()
		if len(rem) >= 2 && rem[0] == '/' && rem[1] == '>' {
			s.EmitAndAdvance(2, core.SymbolPunc, base.CoalesceDefault)
			return true
		}
		if rem[0] == '>' {
			s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
			return false
		}
		n := attrNameLength(rem)
		if n == 0 {
			_, size := charclass.DecodeRune(rem)
			if size == 0 {
				size = 1
			}
			s.EmitAndAdvance(uint32(size), core.Error, base.CoalesceDefault)
			continue
		}
		s.EmitAndAdvance(uint32(n), core.MarkupAttr, base.CoalesceDefault)
		skipAttributeTrivia(s)
		if !s.Eof() && s.Remainder()[0] == '=' {
			s.EmitAndAdvance(1, core.SymbolPunc, base.CoalesceDefault)
			skipAttributeTrivia(s)
			lexAttributeValue(s)
		}
	}
	return false
}

func lexAttributeValue(s *base.State) {
	if s.Eof() {
		return
	}
	rem := s.Remainder()
	if rem[0] == '"' || rem[0] == '\'' {
		lexQuotedAttrValue(s, rem[0])
		return
	}
	n := unquotedAttrValueLength(rem)
	if n > 0 {
		s.EmitAndAdvance(uint32(n), core.String, base.CoalesceDefault)
	}
}

func lexQuotedAttrValue(s *base.State, quote byte) {
	s.EmitAndAdvance(1, core.StringDelim, base.CoalesceDefault)
	for !s.Eof() {
		rem := s.Remainder()
		if rem[0] == quote {
			s.EmitAndAdvance(1, core.StringDelim, base.CoalesceDefault)
			return
		}
		if rem[0] == '&' {
			n := charRefLength(rem)
			s.EmitAndAdvance(uint32(n), core.StringEscape, base.CoalesceDefault)
			continue
		}
		n := 1
		for n < len(rem) && rem[n] != quote && rem[n] != '&' {
			n++
		}
		s.EmitAndAdvance(uint32(n), core.String, base.CoalesceDefault)
	}
}

func lexText(s *base.State, rem string) {
	if rem[0] == '&' {
		n := charRefLength(rem)
		s.EmitAndAdvance(uint32(n), core.StringEscape, base.CoalesceDefault)
		return
	}
	i := 0
	for i < len(rem) {
		switch rem[i] {
		case '&', '<':
			if i > 0 {
				emitText(s, i)
				return
			}
		}
		if rem[i] == '<' {
			break
		}
		i++
	}
	if i == 0 {
		// A lone '<' not starting any recognized construct; consume it
		// as unclassified text advance, matching the worked example's
		// byte-9 behavior.
		s.SkipAndAdvance(1)
		return
	}
	emitText(s, i)
}

func emitText(s *base.State, n int) {
	s.SkipAndAdvance(uint32(n))
}

// consumeRawText consumes raw text up to the matching end tag (not
// including it), then recurses into the given nested highlighter.
func consumeRawText(s *base.State, elementName string, nested base.NestedHighlightFunc) {
	rem := s.Remainder()
	end := findRawTextEnd(rem, elementName)
	if end > 0 {
		scratch := make([]core.Token, 32)
		s.ConsumeNested(nested, uint32(end), scratch)
	}
	lexEndTagIfPresent(s)
}

func consumeEscapableRawText(s *base.State, elementName string) {
	for !s.Eof() {
		rem := s.Remainder()
		if isEndTagFor(rem, elementName) {
			lexEndTagIfPresent(s)
			return
		}
		if rem[0] == '&' {
			n := charRefLength(rem)
			s.EmitAndAdvance(uint32(n), core.StringEscape, base.CoalesceDefault)
			continue
		}
		i := 0
		for i < len(rem) && rem[i] != '&' && !isEndTagFor(rem[i:], elementName) {
			i++
		}
		if i == 0 {
			i = 1
		}
		s.SkipAndAdvance(uint32(i))
	}
}

func lexEndTagIfPresent(s *base.State) {
	if !s.Eof() && len(s.Remainder()) >= 2 && s.Remainder()[0] == '<' && s.Remainder()[1] == '/' {
		lexEndTag(s, dialect{})
	}
}

func nestedJS(source string, buf *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	js.HighlightJS(source, buf, opts, log)
}

func nestedCSS(source string, buf *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	css.Highlight(source, buf, opts, log)
}

func findRawTextEnd(s, elementName string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '<' && isEndTagFor(s[i:], elementName) {
			return i
		}
	}
	return len(s)
}

func isEndTagFor(s, elementName string) bool {
	if len(s) < 2 || s[0] != '<' || s[1] != '/' {
		return false
	}
	rest := s[2:]
	if len(rest) < len(elementName) || asciiLowerFold(rest[:len(elementName)]) != elementName {
		return false
	}
	if len(rest) == len(elementName) {
		return true
	}
	after := rest[len(elementName)]
	return after == '>' || after == '/' || charclass.IsASCIIWhitespace(after)
}

func skipAttributeTrivia(s *base.State) {
	rem := s.Remainder()
	n := 0
	for n < len(rem) && charclass.IsASCIIWhitespace(rem[n]) {
		n++
	}
	if n > 0 {
		s.SkipAndAdvance(uint32(n))
	}
}

func nameRunLength(s string, xml bool) int {
	if xml {
		r, size := charclass.DecodeRune(s)
		if size == 0 || !charclass.IsXMLNameStart(r) {
			return 0
		}
		i := size
		for i < len(s) {
			r, size := charclass.DecodeRune(s[i:])
			if size == 0 || !charclass.IsXMLNameContinue(r) {
				break
			}
			i += size
		}
		return i
	}
	i := 0
	for i < len(s) {
		r, size := charclass.DecodeRune(s[i:])
		if size == 0 || !charclass.IsHTMLNameChar(r) {
			break
		}
		i += size
	}
	return i
}

func attrNameLength(s string) int {
	i := 0
	for i < len(s) {
		r, size := charclass.DecodeRune(s[i:])
		if size == 0 {
			break
		}
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '=', '/', '>':
			return i
		}
		i += size
	}
	return i
}

func unquotedAttrValueLength(s string) int {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\f', '>':
			return i
		}
		i++
	}
	return i
}

// charRefLength matches `&...;` (named or numeric), or a lone `&` if
// nothing recognizable follows.
func charRefLength(s string) int {
	i := 1
	for i < len(s) && i < 32 && s[i] != ';' && s[i] != '&' && !charclass.IsASCIIWhitespace(s[i]) {
		i++
	}
	if i < len(s) && s[i] == ';' {
		return i + 1
	}
	return 1
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

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func startsWithFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return asciiLowerFold(s[:len(prefix)]) == asciiLower(prefix)
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func asciiLowerFold(s string) string { return asciiLower(s) }
