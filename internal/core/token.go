// Package core holds the data model shared by the public ulight package and
// every internal highlighter package: Token, Kind, FlushBuffer, and the
// option/status types. It exists so that internal/base and internal/lang/*
// can share these types with the public API without an import cycle (the
// public package re-exports them as aliases).
package core

import "fmt"

// Token is a single classified span of source text.
//
// Begin is a byte offset into the original source, Length is a byte count,
// and Kind identifies the lexical category. Tokens never overlap and are
// delivered in increasing Begin order. A zero-length token is invalid and
// is never emitted by this package.
type Token struct {
	Begin  uint32
	Length uint32
	Kind   Kind
}

// End returns the exclusive end offset of the token.
func (t Token) End() uint32 {
	return t.Begin + t.Length
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%d,%d)", t.Kind, t.Begin, t.End())
}

// Kind is the closed enumeration of highlight categories a [Token] may
// carry.
type Kind uint8

// The full set of highlight kinds, per the data model's glossary.
const (
	Error Kind = iota
	Comment
	CommentDelim
	Number
	NumberDecor
	NumberDelim
	String
	StringDelim
	StringEscape
	StringDecor
	StringInterpolation
	StringInterpolationDelim
	Null
	Bool
	This
	Name
	NameVar
	NameFunction
	NameAttr
	NameLabel
	NameMacro
	NameMacroDelim
	NameNonterminal
	NameNonterminalDecl
	Keyword
	KeywordControl
	KeywordType
	MarkupTag
	MarkupAttr
	Escape
	Symbol
	SymbolPunc
	SymbolParens
	SymbolSquare
	SymbolBrace
	SymbolOp
	DiffHeading
	DiffCommon
	DiffHunk
	DiffDeletion
	DiffInsertion
	DiffModification

	kindCount
)

var kindNames = [kindCount]string{
	Error:                    "error",
	Comment:                  "comment",
	CommentDelim:             "comment_delim",
	Number:                   "number",
	NumberDecor:              "number_decor",
	NumberDelim:              "number_delim",
	String:                   "string",
	StringDelim:              "string_delim",
	StringEscape:             "string_escape",
	StringDecor:              "string_decor",
	StringInterpolation:      "string_interpolation",
	StringInterpolationDelim: "string_interpolation_delim",
	Null:                     "null",
	Bool:                     "bool",
	This:                     "this",
	Name:                     "name",
	NameVar:                  "name_var",
	NameFunction:             "name_function",
	NameAttr:                 "name_attr",
	NameLabel:                "name_label",
	NameMacro:                "name_macro",
	NameMacroDelim:           "name_macro_delim",
	NameNonterminal:          "name_nonterminal",
	NameNonterminalDecl:      "name_nonterminal_decl",
	Keyword:                  "keyword",
	KeywordControl:           "keyword_control",
	KeywordType:              "keyword_type",
	MarkupTag:                "markup_tag",
	MarkupAttr:               "markup_attr",
	Escape:                   "escape",
	Symbol:                   "symbol",
	SymbolPunc:               "symbol_punc",
	SymbolParens:             "symbol_parens",
	SymbolSquare:             "symbol_square",
	SymbolBrace:              "symbol_brace",
	SymbolOp:                 "symbol_op",
	DiffHeading:              "diff_heading",
	DiffCommon:               "diff_common",
	DiffHunk:                 "diff_hunk",
	DiffDeletion:             "diff_deletion",
	DiffInsertion:            "diff_insertion",
	DiffModification:         "diff_modification",
}

// Short, stable ASCII identifiers per kind, for consumers that render
// tokens to HTML (e.g. as CSS class names). Rendering itself is out of
// scope for this core; only the identifier is.
var kindIDs = [kindCount]string{
	Error:                    "err",
	Comment:                  "cmt",
	CommentDelim:             "cmt_del",
	Number:                   "num",
	NumberDecor:              "num_dec",
	NumberDelim:              "num_del",
	String:                   "str",
	StringDelim:              "str_del",
	StringEscape:             "str_esc",
	StringDecor:              "str_dec",
	StringInterpolation:      "str_int",
	StringInterpolationDelim: "str_int_del",
	Null:                     "null",
	Bool:                     "bool",
	This:                     "this",
	Name:                     "name",
	NameVar:                  "name_var",
	NameFunction:             "name_fn",
	NameAttr:                 "name_attr",
	NameLabel:                "name_label",
	NameMacro:                "name_macro",
	NameMacroDelim:           "name_macro_del",
	NameNonterminal:          "name_nt",
	NameNonterminalDecl:      "name_nt_decl",
	Keyword:                  "kw",
	KeywordControl:           "kw_ctrl",
	KeywordType:              "kw_type",
	MarkupTag:                "markup_tag",
	MarkupAttr:               "markup_attr",
	Escape:                   "esc",
	Symbol:                   "sym",
	SymbolPunc:               "sym_punc",
	SymbolParens:             "sym_parens",
	SymbolSquare:             "sym_square",
	SymbolBrace:              "sym_brace",
	SymbolOp:                 "sym_op",
	DiffHeading:              "diff_head",
	DiffCommon:               "diff_common",
	DiffHunk:                 "diff_hunk",
	DiffDeletion:             "diff_del",
	DiffInsertion:            "diff_ins",
	DiffModification:         "diff_mod",
}

// String returns the long, human-readable name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// ID returns the short stable identifier for the kind, suitable for use as
// a CSS class name by an HTML renderer downstream of this core.
func (k Kind) ID() string {
	if k < kindCount {
		return kindIDs[k]
	}
	return "unknown"
}

// Valid reports whether k is one of the defined enumeration members.
func (k Kind) Valid() bool {
	return k < kindCount
}
