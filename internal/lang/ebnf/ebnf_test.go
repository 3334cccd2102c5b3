package ebnf_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/ebnf"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/testutil"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, source string) []ulight.Token {
	t.Helper()
	var got []ulight.Token
	buf := ulight.NewFlushBuffer(make([]ulight.Token, 64), func(toks []ulight.Token) {
		got = append(got, toks...)
	})
	ebnf.Highlight(source, buf, ulight.HighlightOptions{}, logging.Logger{})
	buf.Flush()
	return got
}

func TestEBNF_DeclarationThenReference(t *testing.T) {
	toks := run(t, "a = b ;")
	require.Len(t, toks, 4)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.NameNonterminalDecl),
		testutil.Tok(2, 1, ulight.SymbolPunc),
		testutil.Tok(4, 1, ulight.NameNonterminal),
		testutil.Tok(6, 1, ulight.SymbolPunc),
	)
}

func TestEBNF_QuotedTerminal(t *testing.T) {
	toks := run(t, `a = "0" ;`)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.NameNonterminalDecl),
		testutil.Tok(2, 1, ulight.SymbolPunc),
		testutil.Tok(4, 1, ulight.StringDelim),
		testutil.Tok(5, 1, ulight.String),
		testutil.Tok(6, 1, ulight.StringDelim),
		testutil.Tok(8, 1, ulight.SymbolPunc),
	)
}

func TestEBNF_Comment(t *testing.T) {
	toks := run(t, "(* c *) a = b .")
	testutil.AssertEqualKind(t, ulight.Comment, toks[0].Kind)
}
