package lua_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/lua"
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
	lua.Highlight(source, buf, ulight.HighlightOptions{}, logging.Logger{})
	buf.Flush()
	return got
}

func TestLua_LocalAssignment(t *testing.T) {
	toks := run(t, "local x = 1")
	require.Len(t, toks, 4)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 5, ulight.Keyword),
		testutil.Tok(6, 1, ulight.Name),
		testutil.Tok(8, 1, ulight.SymbolOp),
		testutil.Tok(10, 1, ulight.Number),
	)
}

func TestLua_LongBracketComment(t *testing.T) {
	toks := run(t, "--[[ c ]]")
	testutil.AssertTokens(t, toks, testutil.Tok(0, 9, ulight.Comment))
}

func TestLua_ShortString(t *testing.T) {
	toks := run(t, "'hi'")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.StringDelim),
		testutil.Tok(1, 2, ulight.String),
		testutil.Tok(3, 1, ulight.StringDelim),
	)
}

func TestLua_VariableAttribute(t *testing.T) {
	toks := run(t, "<const>")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.SymbolOp),
		testutil.Tok(1, 5, ulight.NameAttr),
		testutil.Tok(6, 1, ulight.SymbolOp),
	)
}
