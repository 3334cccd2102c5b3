// Package base provides the small scaffold every language highlighter
// embeds: a cursor over the source, the emit/advance protocol with
// optional coalescing, numeric- and enclosed-token emission helpers, and
// nested-language recursion. None of it knows about any specific
// language; it only implements the mechanics spec.md §4.2 describes once
// for all of them.
package base

import (
	"log/slog"

	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/logging"
	"github.com/go-ulight/ulight/internal/match"
)

// CoalesceMode selects how [State.Emit] decides whether to merge with the
// previously buffered token.
type CoalesceMode uint8

const (
	// CoalesceDefault merges only if opts.Coalescing is enabled.
	CoalesceDefault CoalesceMode = iota
	// CoalesceForced always merges, regardless of opts.Coalescing — used
	// at specific syntactic positions such as CSS selector continuations.
	CoalesceForced
)

// State is the per-invocation cursor and emission scaffold embedded by
// every language highlighter's own state struct.
type State struct {
	Source string
	Index  uint32
	Opts   core.HighlightOptions
	Buf    *core.FlushBuffer[core.Token]
	Log    logging.Logger
}

// NewState creates a highlighter base positioned at the start of source.
func NewState(source string, buf *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger) State {
	return State{Source: source, Index: 0, Opts: opts, Buf: buf, Log: log}
}

// Remainder returns the unconsumed suffix of the source.
func (s *State) Remainder() string {
	return s.Source[s.Index:]
}

// Eof reports whether the cursor has reached the end of source.
func (s *State) Eof() bool {
	return int(s.Index) >= len(s.Source)
}

// Len returns the number of unconsumed bytes.
func (s *State) Len() int {
	return len(s.Source) - int(s.Index)
}

// Advance moves the cursor forward by length bytes. length must not
// exceed the remaining input.
func (s *State) Advance(length uint32) {
	if int64(s.Index)+int64(length) > int64(len(s.Source)) {
		panic("ulight: Advance past end of source")
	}
	s.Index += length
}

// Emit appends a token [begin, begin+length) of the given kind, applying
// coalescing per mode and s.Opts.Coalescing. length must be nonzero and
// begin+length must not exceed the source length.
func (s *State) Emit(begin, length uint32, kind core.Kind, mode CoalesceMode) {
	if length == 0 {
		panic("ulight: Emit requires length > 0")
	}
	if int64(begin)+int64(length) > int64(len(s.Source)) {
		panic("ulight: Emit out of bounds")
	}
	coalesce := mode == CoalesceForced || s.Opts.Coalescing
	if coalesce && s.Buf.Len() > 0 {
		back := s.Buf.Back()
		if back.Kind == kind && back.End() == begin {
			back.Length += length
			s.traceEmit(begin, length, kind, true)
			return
		}
	}
	s.Buf.Push(core.Token{Begin: begin, Length: length, Kind: kind})
	s.traceEmit(begin, length, kind, false)
}

func (s *State) traceEmit(begin, length uint32, kind core.Kind, coalesced bool) {
	if !s.Log.TraceEnabled() {
		return
	}
	s.Log.Trace("emit",
		slog.Int("begin", int(begin)),
		slog.Int("length", int(length)),
		slog.String("kind", kind.ID()),
		slog.Bool("coalesced", coalesced),
	)
}

// EmitAndAdvance emits a token of length bytes starting at the current
// index, then advances past it.
func (s *State) EmitAndAdvance(length uint32, kind core.Kind, mode CoalesceMode) {
	s.Emit(s.Index, length, kind, mode)
	s.Advance(length)
}

// SkipAndAdvance advances length bytes without emitting a token, for pure
// whitespace runs.
func (s *State) SkipAndAdvance(length uint32) {
	s.Advance(length)
}

// NumberEmitSpec configures how [State.EmitNumber] decorates a matched
// numeric literal's segments, per spec.md §4.2's numeric emission helper.
type NumberEmitSpec struct {
	// Separator is the digit-separator byte used by the language's number
	// grammar (0 disables separator-aware splitting).
	Separator byte
}

// EmitNumber emits the segments of r (matched starting at the current
// index) as number_decor / number / number_delim tokens per spec.md
// §4.2, then advances past the whole literal. If r.Erroneous, a single
// error token spanning the whole literal is emitted instead.
func (s *State) EmitNumber(r match.NumberResult, spec NumberEmitSpec) {
	start := s.Index
	if r.Erroneous {
		s.Emit(start, uint32(r.Length), core.Error, CoalesceDefault)
		s.Advance(uint32(r.Length))
		return
	}

	pos := start
	emitSeg := func(length int, kind core.Kind) {
		if length <= 0 {
			return
		}
		s.Emit(pos, uint32(length), kind, CoalesceDefault)
		pos += uint32(length)
	}

	emitSeg(r.Sign+r.Prefix, core.NumberDecor)
	s.emitDigitsWithSeparator(&pos, r.Integer, spec.Separator)
	emitSeg(r.RadixPoint, core.NumberDelim)
	s.emitDigitsWithSeparator(&pos, r.Fractional, spec.Separator)
	emitSeg(r.ExponentSep, core.NumberDelim)
	s.emitDigitsWithSeparator(&pos, r.ExponentDigits, spec.Separator)
	emitSeg(r.Suffix, core.NumberDecor)

	s.Index = start
	s.Advance(uint32(r.Length))
}

// emitDigitsWithSeparator emits a digit run of byte-length n starting at
// *pos, splitting on sep if nonzero, and advances *pos past it.
func (s *State) emitDigitsWithSeparator(pos *uint32, n int, sep byte) {
	if n <= 0 {
		return
	}
	segment := s.Source[*pos : *pos+uint32(n)]
	i := 0
	for i < len(segment) {
		j := i
		for j < len(segment) && (sep == 0 || segment[j] != sep) {
			j++
		}
		if j > i {
			s.Emit(*pos+uint32(i), uint32(j-i), core.Number, CoalesceDefault)
		}
		if j < len(segment) && segment[j] == sep {
			s.Emit(*pos+uint32(j), 1, core.NumberDelim, CoalesceDefault)
			j++
		}
		i = j
	}
	*pos += uint32(n)
}

// EmitEnclosed emits the delimiter/content/delimiter structure of a
// construct like /* ... */ or "...", per spec.md §4.2's enclosed-token
// helper, then advances past the whole construct.
//
// length is the total byte length already matched (including prefix,
// content, and — if terminated — suffix). If !terminated, content
// extends to the end of the match and no suffix is emitted.
func (s *State) EmitEnclosed(length int, terminated bool, prefixLen, suffixLen int, contentKind, delimKind core.Kind) {
	start := s.Index
	pos := start
	if prefixLen > 0 {
		s.Emit(pos, uint32(prefixLen), delimKind, CoalesceDefault)
		pos += uint32(prefixLen)
	}
	contentEnd := start + uint32(length)
	if terminated && suffixLen > 0 {
		contentEnd -= uint32(suffixLen)
	}
	if contentEnd > pos {
		s.Emit(pos, contentEnd-pos, contentKind, CoalesceDefault)
		pos = contentEnd
	}
	if terminated && suffixLen > 0 {
		s.Emit(pos, uint32(suffixLen), delimKind, CoalesceDefault)
	}
	s.Index = start
	s.Advance(uint32(length))
}

// NestedHighlightFunc is the signature every language's entry point
// shares, used by [State.ConsumeNested] to recurse into a sub-language.
type NestedHighlightFunc func(source string, buf *core.FlushBuffer[core.Token], opts core.HighlightOptions, log logging.Logger)

// ConsumeNested runs highlight over s.Remainder()[:length] as a
// sub-language, translating every token it emits by the outer cursor's
// current index before appending it to the outer buffer, then advances
// past length. scratch is backing storage for the sub-buffer; its
// capacity bounds how many tokens accumulate between translations, not
// the total token count.
func (s *State) ConsumeNested(highlight NestedHighlightFunc, length uint32, scratch []core.Token) {
	nestedSource := s.Remainder()[:length]
	offset := s.Index
	outer := s.Buf
	sub := core.NewFlushBuffer(scratch, func(toks []core.Token) {
		translated := make([]core.Token, len(toks))
		for i, t := range toks {
			translated[i] = core.Token{Begin: t.Begin + offset, Length: t.Length, Kind: t.Kind}
		}
		outer.AppendRange(translated)
	})
	highlight(nestedSource, sub, s.Opts, s.Log)
	sub.Flush()
	s.Advance(length)
}
