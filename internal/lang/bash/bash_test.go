package bash_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/bash"
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
	bash.Highlight(source, buf, ulight.HighlightOptions{}, logging.Logger{})
	buf.Flush()
	return got
}

func TestBash_CommandWithFlagAndArgument(t *testing.T) {
	toks := run(t, "echo -n hi")
	require.Len(t, toks, 3)
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 4, ulight.NameFunction),
		testutil.Tok(5, 2, ulight.NameAttr),
		testutil.Tok(8, 2, ulight.String),
	)
}

func TestBash_SingleQuotedString(t *testing.T) {
	toks := run(t, "'hi'")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 1, ulight.StringDelim),
		testutil.Tok(1, 2, ulight.String),
		testutil.Tok(3, 1, ulight.StringDelim),
	)
}

func TestBash_SimpleVariable(t *testing.T) {
	toks := run(t, "$HOME")
	testutil.AssertTokens(t, toks, testutil.Tok(0, 5, ulight.NameVar))
}

func TestBash_CommandSubstitution(t *testing.T) {
	toks := run(t, "$(ls)")
	testutil.AssertTokens(t, toks,
		testutil.Tok(0, 2, ulight.StringInterpolationDelim),
		testutil.Tok(2, 2, ulight.NameFunction),
		testutil.Tok(4, 1, ulight.StringInterpolationDelim),
	)
}
