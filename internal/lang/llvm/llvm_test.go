package llvm_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/llvm"
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
	llvm.Highlight(source, buf, ulight.HighlightOptions{}, logging.Logger{})
	buf.Flush()
	return got
}

func TestLLVM_AddInstruction(t *testing.T) {
	toks := run(t, "%x = add i32 1, 2")
	require.Len(t, toks, 7)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 2, ulight.NameVar),
		testutil.Tok(3, 1, ulight.SymbolOp),
		testutil.Tok(5, 3, ulight.Keyword),
		testutil.Tok(9, 3, ulight.KeywordType),
		testutil.Tok(13, 1, ulight.Number),
		testutil.Tok(14, 1, ulight.SymbolOp),
		testutil.Tok(16, 1, ulight.Number),
	)
}

func TestLLVM_Label(t *testing.T) {
	toks := run(t, "entry:\n")
	testutil.AssertEqualKind(t, ulight.NameLabel, toks[0].Kind)
	testutil.AssertEqual(t, uint32(6), toks[0].Length)
}

func TestLLVM_GlobalFunction(t *testing.T) {
	toks := run(t, "@main")
	testutil.AssertTokens(t, toks, testutil.Tok(0, 5, ulight.NameFunction))
}
