package nasm_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/nasm"
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
	nasm.Highlight(source, buf, ulight.HighlightOptions{}, logging.Logger{})
	buf.Flush()
	return got
}

func TestNASM_MovInstruction(t *testing.T) {
	toks := run(t, "mov eax, 1")
	require.Len(t, toks, 4)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 3, ulight.Keyword),
		testutil.Tok(4, 3, ulight.NameVar),
		testutil.Tok(7, 1, ulight.SymbolOp),
		testutil.Tok(9, 1, ulight.Number),
	)
}

func TestNASM_Directive(t *testing.T) {
	toks := run(t, "section .text")
	testutil.AssertEqualKind(t, ulight.KeywordControl, toks[0].Kind)
}

func TestNASM_Label(t *testing.T) {
	toks := run(t, "loop:\n")
	testutil.AssertEqualKind(t, ulight.NameLabel, toks[0].Kind)
}

func TestNASM_HexSuffixNumber(t *testing.T) {
	toks := run(t, "1Fh")
	testutil.AssertTokens(t, toks, testutil.Tok(0, 3, ulight.Number))
}
