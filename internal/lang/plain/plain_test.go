package plain_test

import (
	"testing"

	"github.com/go-ulight/ulight"
	"github.com/go-ulight/ulight/internal/lang/plain"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestPlain_EmitsNoTokens(t *testing.T) {
	var got []ulight.Token
	buf := ulight.NewFlushBuffer(make([]ulight.Token, 64), func(toks []ulight.Token) {
		got = append(got, toks...)
	})
	plain.Highlight("anything at all\nacross lines", buf, ulight.HighlightOptions{}, logging.Logger{})
	buf.Flush()
	require.Empty(t, got)
}
