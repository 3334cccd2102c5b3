// Package logging provides the nil-safe, trace-capable structured logger
// shared by every language highlighter.
package logging

import (
	"context"
	"log/slog"
)

// LevelTrace is a custom log level more verbose than Debug, used for
// per-token emission logging in the hot path of a highlighter's main loop.
// Enable with &slog.HandlerOptions{Level: LevelTrace}.
const LevelTrace = slog.Level(-8)

var noCtx = context.Background() //nolint:gochecknoglobals

// Logger wraps *slog.Logger with nil-safe convenience methods so that
// highlighters can log unconditionally without a nil check at every call
// site; a zero Logger is a valid, silent logger.
type Logger struct {
	L *slog.Logger
}

// Enabled reports whether logging is active at the given level.
func (l Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(noCtx, level)
}

// Log emits a structured message at level. No-op if the logger is nil or
// the level is disabled.
func (l Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.L != nil && l.L.Enabled(noCtx, level) {
		l.L.LogAttrs(noCtx, level, msg, attrs...)
	}
}

// TraceEnabled reports whether trace-level logging is active. Highlighters
// guard expensive per-token attribute construction behind this check.
func (l Logger) TraceEnabled() bool {
	return l.Enabled(LevelTrace)
}

// Trace emits a message at [LevelTrace].
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.Log(LevelTrace, msg, attrs...)
}

// Debug emits a message at slog.LevelDebug.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.Log(slog.LevelDebug, msg, attrs...)
}
