// Package plain implements the pass-through highlighter used for plain
// text and for any recognized [ulight.LangTag] with no dedicated grammar.
package plain

import (
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
)

// Highlight advances over the entire source without emitting any tokens.
// Plain text carries no lexical structure to classify; per spec.md §4.5
// this is a valid, total highlighter — coverage holds because the whole
// input is "advanced but unemitted".
func Highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	_ = opts
	log.Debug("plain highlight: pass-through")
	_ = buffer // no tokens ever emitted; buffer is flushed by the caller
	_ = source
}
