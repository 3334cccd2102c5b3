package python_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/python"
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
	python.Highlight(source, buf, ulight.HighlightOptions{}, logging.Logger{})
	buf.Flush()
	return got
}

func TestPython_FunctionDef(t *testing.T) {
	toks := run(t, "def f():")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 3, ulight.Keyword),
		testutil.Tok(4, 1, ulight.Name),
		testutil.Tok(5, 1, ulight.SymbolParens),
		testutil.Tok(6, 1, ulight.SymbolParens),
		testutil.Tok(7, 1, ulight.SymbolPunc),
	)
}

func TestPython_SimpleString(t *testing.T) {
	toks := run(t, `'hi'`)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.StringDelim),
		testutil.Tok(1, 2, ulight.String),
		testutil.Tok(3, 1, ulight.StringDelim),
	)
}

func TestPython_RawStringPrefix(t *testing.T) {
	toks := run(t, `r'hi'`)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.StringDecor),
		testutil.Tok(1, 1, ulight.StringDelim),
		testutil.Tok(2, 2, ulight.String),
		testutil.Tok(4, 1, ulight.StringDelim),
	)
}

func TestPython_ImaginarySuffixValidOnFloat(t *testing.T) {
	toks := run(t, "1.5j")
	require.Len(t, toks, 4)
	for _, tok := range toks {
		require.NotEqual(t, ulight.Error, tok.Kind, "imaginary suffix on a float must not be flagged erroneous")
	}
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.Number),
		testutil.Tok(1, 1, ulight.NumberDelim),
		testutil.Tok(2, 1, ulight.Number),
		testutil.Tok(3, 1, ulight.NumberDecor),
	)
}
