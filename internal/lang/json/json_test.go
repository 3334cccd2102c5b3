package json_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/json"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/testutil"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, fn func(string, *ulight.FlushBuffer[ulight.Token], ulight.HighlightOptions, logging.Logger), source string) []ulight.Token {
	t.Helper()
	var got []ulight.Token
	buf := ulight.NewFlushBuffer(make([]ulight.Token, 64), func(toks []ulight.Token) {
		got = append(got, toks...)
	})
	fn(source, buf, ulight.HighlightOptions{}, logging.Logger{})
	buf.Flush()
	return got
}

func TestJSON_ObjectWithStringAndNumber(t *testing.T) {
	toks := run(t, json.HighlightJSON, `{"a":1}`)
	require.Len(t, toks, 7)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.SymbolBrace),
		testutil.Tok(1, 1, ulight.StringDelim),
		testutil.Tok(2, 1, ulight.MarkupAttr),
		testutil.Tok(3, 1, ulight.StringDelim),
		testutil.Tok(4, 1, ulight.SymbolPunc),
		testutil.Tok(5, 1, ulight.Number),
		testutil.Tok(6, 1, ulight.SymbolBrace),
	)
}

func TestJSON_CommentRejectedInStrictMode(t *testing.T) {
	source := "// c\n1"
	var got []ulight.Token
	buf := ulight.NewFlushBuffer(make([]ulight.Token, 64), func(toks []ulight.Token) {
		got = append(got, toks...)
	})
	json.HighlightJSON(source, buf, ulight.HighlightOptions{Strict: true}, logging.Logger{})
	buf.Flush()
	testutil.AssertCoverage(t, source, got)
	require.NotEmpty(t, got)
	testutil.AssertEqualKind(t, ulight.Error, got[0].Kind)
}

func TestJSONC_CommentAccepted(t *testing.T) {
	toks := run(t, json.HighlightJSONC, "// c\n1")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 4, ulight.Comment),
		testutil.Tok(5, 1, ulight.Number),
	)
}

func TestJSON_Array(t *testing.T) {
	toks := run(t, json.HighlightJSON, "[true,null]")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.SymbolSquare),
		testutil.Tok(1, 4, ulight.Bool),
		testutil.Tok(5, 1, ulight.SymbolPunc),
		testutil.Tok(6, 4, ulight.Null),
		testutil.Tok(10, 1, ulight.SymbolSquare),
	)
}
