// Package ulight is a single-pass, multi-language syntax-highlighting core.
//
// Highlight tokenizes UTF-8 source text for one of several supported
// languages and emits a stream of classified highlight tokens into a
// caller-owned, bounded [FlushBuffer]. The core never builds an AST, never
// resolves names, and never fails on malformed input: ambiguous bytes are
// reported as a single [Error] token and tokenizing continues.
//
// Out of scope, by design: the CLI front-end, file I/O, TTY detection and
// diff rendering; HTML rendering of tokens; the JSON streaming-visitor
// API; memory/allocator plumbing; and the table mapping file extensions to language names. Those are all
// external collaborators.
package ulight

import (
	"log/slog"

	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/lang/bash"
	"github.com/go-ulight/ulight/internal/lang/cfamily"
	"github.com/go-ulight/ulight/internal/lang/cowel"
	"github.com/go-ulight/ulight/internal/lang/css"
	"github.com/go-ulight/ulight/internal/lang/diff"
	"github.com/go-ulight/ulight/internal/lang/ebnf"
	"github.com/go-ulight/ulight/internal/lang/js"
	"github.com/go-ulight/ulight/internal/lang/json"
	"github.com/go-ulight/ulight/internal/lang/llvm"
	"github.com/go-ulight/ulight/internal/lang/lua"
	"github.com/go-ulight/ulight/internal/lang/markup"
	"github.com/go-ulight/ulight/internal/lang/nasm"
	"github.com/go-ulight/ulight/internal/lang/plain"
	"github.com/go-ulight/ulight/internal/lang/python"
	"github.com/go-ulight/ulight/internal/lang/tex"
	"github.com/go-ulight/ulight/internal/logging"
)

// Re-exported data model. See internal/core for documentation; these
// aliases are the public surface.
type (
	Token             = core.Token
	Kind              = core.Kind
	FlushFunc[T any]  = core.FlushFunc[T]
	FlushBuffer[T any] = core.FlushBuffer[T]
	LangTag           = core.LangTag
	HighlightOptions  = core.HighlightOptions
	Status            = core.Status
)

// Highlight kinds.
const (
	Error                    = core.Error
	Comment                  = core.Comment
	CommentDelim             = core.CommentDelim
	Number                   = core.Number
	NumberDecor              = core.NumberDecor
	NumberDelim              = core.NumberDelim
	String                   = core.String
	StringDelim              = core.StringDelim
	StringEscape             = core.StringEscape
	StringDecor              = core.StringDecor
	StringInterpolation      = core.StringInterpolation
	StringInterpolationDelim = core.StringInterpolationDelim
	Null                     = core.Null
	Bool                     = core.Bool
	This                     = core.This
	Name                     = core.Name
	NameVar                  = core.NameVar
	NameFunction             = core.NameFunction
	NameAttr                 = core.NameAttr
	NameLabel                = core.NameLabel
	NameMacro                = core.NameMacro
	NameMacroDelim           = core.NameMacroDelim
	NameNonterminal          = core.NameNonterminal
	NameNonterminalDecl      = core.NameNonterminalDecl
	Keyword                  = core.Keyword
	KeywordControl           = core.KeywordControl
	KeywordType              = core.KeywordType
	MarkupTag                = core.MarkupTag
	MarkupAttr               = core.MarkupAttr
	Escape                   = core.Escape
	Symbol                   = core.Symbol
	SymbolPunc               = core.SymbolPunc
	SymbolParens             = core.SymbolParens
	SymbolSquare             = core.SymbolSquare
	SymbolBrace              = core.SymbolBrace
	SymbolOp                 = core.SymbolOp
	DiffHeading              = core.DiffHeading
	DiffCommon               = core.DiffCommon
	DiffHunk                 = core.DiffHunk
	DiffDeletion             = core.DiffDeletion
	DiffInsertion            = core.DiffInsertion
	DiffModification         = core.DiffModification
)

// Language tags.
const (
	LangC          = core.LangC
	LangCpp        = core.LangCpp
	LangCowel      = core.LangCowel
	LangLua        = core.LangLua
	LangHTML       = core.LangHTML
	LangXML        = core.LangXML
	LangCSS        = core.LangCSS
	LangJavaScript = core.LangJavaScript
	LangTypeScript = core.LangTypeScript
	LangBash       = core.LangBash
	LangDiff       = core.LangDiff
	LangJSON       = core.LangJSON
	LangJSONC      = core.LangJSONC
	LangTxt        = core.LangTxt
	LangTeX        = core.LangTeX
	LangLaTeX      = core.LangLaTeX
	LangNASM       = core.LangNASM
	LangEBNF       = core.LangEBNF
	LangPython     = core.LangPython
	LangKotlin     = core.LangKotlin
	LangLLVM       = core.LangLLVM
)

// Status values.
const (
	StatusOK      = core.StatusOK
	StatusBadLang = core.StatusBadLang
)

// NewFlushBuffer creates a [FlushBuffer] backed by data, calling flush
// whenever it fills or is explicitly flushed. See [core.NewFlushBuffer].
func NewFlushBuffer[T any](data []T, flush FlushFunc[T]) *FlushBuffer[T] {
	return core.NewFlushBuffer(data, flush)
}

// ParseLangTag resolves a canonical language name to a [LangTag].
func ParseLangTag(name string) (LangTag, bool) {
	return core.ParseLangTag(name)
}

// AllLangTags returns every language tag [Highlight] can dispatch to, in
// the canonical order the tags are declared in.
func AllLangTags() []LangTag {
	tags := make([]LangTag, 0, len(langOrder))
	for _, tag := range langOrder {
		if _, ok := dispatchTable[tag]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

var langOrder = [...]LangTag{
	LangC, LangCpp, LangCowel, LangLua, LangHTML, LangXML, LangCSS,
	LangJavaScript, LangTypeScript, LangBash, LangDiff, LangJSON, LangJSONC,
	LangTxt, LangTeX, LangLaTeX, LangNASM, LangEBNF, LangPython, LangKotlin,
	LangLLVM,
}

// Logger optionally receives structured debug/trace logging from
// [Highlight]. The zero value is silent.
type Logger = logging.Logger

// Highlight tokenizes source as the language lang, emitting classified
// tokens into buffer (flushing it as it fills, and once more at the end).
// log is an optional *slog.Logger-backed [Logger] used for debug/trace
// logging of dispatch and emission; the zero Logger is silent.
//
// Highlight returns [StatusBadLang] without emitting anything if lang is
// not a recognized tag. Otherwise it returns [StatusOK] — including when
// the input was malformed and produced inline [Error] tokens, which are
// expected output, not failure.
func Highlight(source string, lang LangTag, buffer *FlushBuffer[Token], opts HighlightOptions, log Logger) Status {
	log.Debug("dispatching highlight", slog.String("lang", lang.String()), slog.Int("bytes", len(source)))
	fn, ok := dispatchTable[lang]
	if !ok {
		log.Debug("unknown language tag", slog.Int("lang", int(lang)))
		return StatusBadLang
	}
	fn(source, buffer, opts, log)
	buffer.Flush()
	return StatusOK
}

type highlightFunc = func(source string, buffer *FlushBuffer[Token], opts HighlightOptions, log Logger)

var dispatchTable = map[LangTag]highlightFunc{
	LangC:          func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { cfamily.HighlightC(s, b, o, l) },
	LangCpp:        func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { cfamily.HighlightCpp(s, b, o, l) },
	LangCowel:      func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { cowel.Highlight(s, b, o, l) },
	LangLua:        func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { lua.Highlight(s, b, o, l) },
	LangHTML:       func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { markup.HighlightHTML(s, b, o, l) },
	LangXML:        func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { markup.HighlightXML(s, b, o, l) },
	LangCSS:        func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { css.Highlight(s, b, o, l) },
	LangJavaScript: func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { js.HighlightJS(s, b, o, l) },
	LangTypeScript: func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { js.HighlightTS(s, b, o, l) },
	// Kotlin has no dedicated lexical rules anywhere in this core's spec
	// (it appears only in the external LangTag enumeration); rather than
	// invent an ungrounded grammar, it degrades to the same plain-text
	// pass-through used for LangTxt. See DESIGN.md.
	LangKotlin: func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { plain.Highlight(s, b, o, l) },
	LangBash:       func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { bash.Highlight(s, b, o, l) },
	LangDiff:       func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { diff.Highlight(s, b, o, l) },
	LangJSON:       func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { json.HighlightJSON(s, b, o, l) },
	LangJSONC:      func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { json.HighlightJSONC(s, b, o, l) },
	LangTxt:        func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { plain.Highlight(s, b, o, l) },
	LangTeX:        func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { tex.Highlight(s, b, o, l) },
	LangLaTeX:      func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { tex.Highlight(s, b, o, l) },
	LangNASM:       func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { nasm.Highlight(s, b, o, l) },
	LangEBNF:       func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { ebnf.Highlight(s, b, o, l) },
	LangPython:     func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { python.Highlight(s, b, o, l) },
	LangLLVM:       func(s string, b *FlushBuffer[Token], o HighlightOptions, l Logger) { llvm.Highlight(s, b, o, l) },
}
