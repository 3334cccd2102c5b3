package tex_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/tex"
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
	tex.Highlight(source, buf, ulight.HighlightOptions{}, logging.Logger{})
	buf.Flush()
	return got
}

func TestTeX_ControlWord(t *testing.T) {
	toks := run(t, `\section`)
	testutil.AssertTokens(t, toks, testutil.Tok(0, 8, ulight.MarkupTag))
}

func TestTeX_ControlSymbol(t *testing.T) {
	toks := run(t, `\,`)
	testutil.AssertTokens(t, toks, testutil.Tok(0, 2, ulight.StringEscape))
}

func TestTeX_Comment(t *testing.T) {
	toks := run(t, "% note\nx")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 6, ulight.Comment),
		testutil.Tok(7, 1, ulight.Name),
	)
}

func TestTeX_BraceGroup(t *testing.T) {
	toks := run(t, `{x}`)
	require.Len(t, toks, 3)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.SymbolPunc),
		testutil.Tok(1, 1, ulight.Name),
		testutil.Tok(2, 1, ulight.SymbolPunc),
	)
}
