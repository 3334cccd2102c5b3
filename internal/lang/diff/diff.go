// Package diff highlights unified-diff text per spec.md §4.4.9: purely
// line-oriented, classifying each line by its leading characters.
package diff

import (
	"github.com/go-ulight/ulight/internal/base"
	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
)

// Highlight classifies each line of source and emits it as one token
// (excluding its line terminator), then advances over the terminator
// without emitting.
func Highlight(source string, buffer *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) {
	s := base.NewState(source, buffer, opts, log)
	for !s.Eof() {
		rem := s.Remainder()
		lineLen := indexNewline(rem)
		if lineLen > 0 {
			s.EmitAndAdvance(uint32(lineLen), classifyLine(rem[:lineLen]), base.CoalesceDefault)
		}
		if lineLen < len(rem) {
			s.SkipAndAdvance(uint32(newlineLength(rem[lineLen:])))
		}
	}
}

func classifyLine(line string) core.Kind {
	switch {
	case hasPrefix(line, "--- "), hasPrefix(line, "+++ "):
		return core.DiffHeading
	case hasPrefix(line, "@@ "):
		return core.DiffHunk
	case hasPrefix(line, "***"), isStarRun(line):
		return core.DiffHeading
	case hasPrefix(line, "-"):
		return core.DiffDeletion
	case hasPrefix(line, "+"):
		return core.DiffInsertion
	case hasPrefix(line, "!"):
		return core.DiffModification
	case hasPrefix(line, "@"):
		return core.DiffCommon
	default:
		return core.DiffCommon
	}
}

func isStarRun(line string) bool {
	if len(line) == 0 {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '*' {
			return false
		}
	}
	return true
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func indexNewline(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			return i
		}
	}
	return len(s)
}

func newlineLength(s string) int {
	if len(s) == 0 {
		return 0
	}
	if s[0] == '\r' {
		if len(s) > 1 && s[1] == '\n' {
			return 2
		}
		return 1
	}
	if s[0] == '\n' {
		return 1
	}
	return 0
}
