package cowel_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/cowel"
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
	cowel.Highlight(source, buf, ulight.HighlightOptions{}, logging.Logger{})
	buf.Flush()
	return got
}

func TestCOWEL_DirectiveWithBody(t *testing.T) {
	toks := run(t, `\b{hi}`)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 2, ulight.NameMacro),
		testutil.Tok(2, 1, ulight.SymbolBrace),
		testutil.Tok(3, 2, ulight.Name),
		testutil.Tok(5, 1, ulight.SymbolBrace),
	)
}

func TestCOWEL_LineComment(t *testing.T) {
	toks := run(t, "\\: c\n")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 4, ulight.Comment),
		testutil.Tok(4, 1, ulight.Name),
	)
}

func TestCOWEL_BlockComment(t *testing.T) {
	toks := run(t, "\\::c::\\")
	testutil.AssertTokens(t, toks, testutil.Tok(0, 7, ulight.Comment))
}

func TestCOWEL_DirectiveWithNamedArgument(t *testing.T) {
	toks := run(t, `\f(x="a")`)
	require.Len(t, toks, 8)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 2, ulight.NameMacro),
		testutil.Tok(2, 1, ulight.SymbolParens),
		testutil.Tok(3, 1, ulight.NameAttr),
		testutil.Tok(4, 1, ulight.SymbolOp),
		testutil.Tok(5, 1, ulight.StringDelim),
		testutil.Tok(6, 1, ulight.String),
		testutil.Tok(7, 1, ulight.StringDelim),
		testutil.Tok(8, 1, ulight.SymbolParens),
	)
}
