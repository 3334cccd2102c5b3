package cfamily_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/cfamily"
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

func TestC_Declaration(t *testing.T) {
	toks := run(t, cfamily.HighlightC, "int x;\n")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 3, ulight.KeywordType),
		testutil.Tok(4, 1, ulight.Name),
		testutil.Tok(5, 1, ulight.SymbolPunc),
	)
}

func TestCpp_BlockComment(t *testing.T) {
	toks := run(t, cfamily.HighlightCpp, "/*a*/")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 2, ulight.CommentDelim),
		testutil.Tok(2, 1, ulight.Comment),
		testutil.Tok(3, 2, ulight.CommentDelim),
	)
}

func TestCpp_UnterminatedString(t *testing.T) {
	toks := run(t, cfamily.HighlightCpp, "\"a\n")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.StringDelim),
		testutil.Tok(1, 1, ulight.String),
	)
}

func TestCpp_RawString(t *testing.T) {
	toks := run(t, cfamily.HighlightCpp, `R"(hi)"`)
	require.Len(t, toks, 3)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 3, ulight.StringDelim),
		testutil.Tok(3, 2, ulight.String),
		testutil.Tok(5, 2, ulight.StringDelim),
	)
}

func TestCpp_PreprocessorDirectiveIsOneToken(t *testing.T) {
	toks := run(t, cfamily.HighlightCpp, "#include <a.h>\nint x;\n")
	require.NotEmpty(t, toks)
	testutil.AssertEqualKind(t, ulight.NameMacro, toks[0].Kind)
	testutil.AssertEqual(t, uint32(0), toks[0].Begin)
	testutil.AssertEqual(t, uint32(14), toks[0].Length)
}

func TestC_DoesNotRecognizeCppKeywords(t *testing.T) {
	toks := run(t, cfamily.HighlightC, "class x;")
	// C has no "class" keyword; it must lex as a plain name even though
	// the C++ table (never consulted for HighlightC) would know it.
	testutil.AssertEqualKind(t, ulight.Name, toks[0].Kind)
}

func TestCpp_NonStrictAllowsCKeywordsToo(t *testing.T) {
	toks := run(t, cfamily.HighlightCpp, "class _Generic;")
	testutil.AssertEqualKind(t, ulight.KeywordType, toks[0].Kind)
	testutil.AssertEqualKind(t, ulight.Keyword, toks[1].Kind)
}

func TestCpp_NumberWithDigitSeparator(t *testing.T) {
	toks := run(t, cfamily.HighlightCpp, "1'000")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.Number),
		testutil.Tok(1, 1, ulight.NumberDelim),
		testutil.Tok(2, 3, ulight.Number),
	)
}
