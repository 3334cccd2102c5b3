package core_test

import (
	"testing"

	"github.com/go-ulight/ulight/internal/core"
	"github.com/go-ulight/ulight/internal/testutil"
)

func TestToken_End(t *testing.T) {
	tok := core.Token{Begin: 5, Length: 3, Kind: core.Name}
	testutil.Equal(t, uint32(8), tok.End())
}

func TestKind_StringAndID(t *testing.T) {
	testutil.Equal(t, "keyword", core.Keyword.String())
	testutil.Equal(t, "kw", core.Keyword.ID())
}

func TestKind_ValidRejectsOutOfRangeValues(t *testing.T) {
	testutil.True(t, core.Keyword.Valid(), "Keyword should be valid")
	bad := core.Kind(255)
	testutil.False(t, bad.Valid(), "255 should not be a valid Kind")
	testutil.Equal(t, "unknown", bad.String())
}

func TestLangTag_RoundTripsThroughParseLangTag(t *testing.T) {
	tag, ok := core.ParseLangTag("python")
	testutil.True(t, ok)
	testutil.Equal(t, core.LangPython, tag)
	testutil.Equal(t, "python", tag.String())
}

func TestLangTag_LaTeXIsAliasOfTeX(t *testing.T) {
	tex, _ := core.ParseLangTag("tex")
	latex, _ := core.ParseLangTag("latex")
	testutil.False(t, tex == latex, "expected distinct tags sharing a family, got equal %v", tex)
	testutil.Equal(t, "latex", latex.String())
}

func TestParseLangTag_RejectsUnknownName(t *testing.T) {
	_, ok := core.ParseLangTag("cobol")
	testutil.False(t, ok, "expected cobol to be unrecognized")
}

func TestFlushBuffer_FlushesWhenFull(t *testing.T) {
	var flushed [][]core.Token
	buf := core.NewFlushBuffer(make([]core.Token, 2), func(toks []core.Token) {
		cp := append([]core.Token(nil), toks...)
		flushed = append(flushed, cp)
	})
	buf.Push(core.Token{Begin: 0, Length: 1, Kind: core.Name})
	buf.Push(core.Token{Begin: 1, Length: 1, Kind: core.Name})
	testutil.Len(t, flushed, 0, "expected no flush yet")

	buf.Push(core.Token{Begin: 2, Length: 1, Kind: core.Name})
	testutil.Len(t, flushed, 1, "expected one flush")
	testutil.Len(t, flushed[0], 2, "expected flush of 2 elements")

	buf.Flush()
	testutil.Len(t, flushed, 2, "expected final flush")
	testutil.Len(t, flushed[1], 1, "expected final flush of 1 element")
}

func TestFlushBuffer_BackReturnsLastPushed(t *testing.T) {
	buf := core.NewFlushBuffer(make([]core.Token, 4), func([]core.Token) {})
	buf.Push(core.Token{Begin: 0, Length: 1, Kind: core.Name})
	buf.Back().Length = 9
	testutil.Equal(t, uint32(9), buf.Back().Length, "expected in-place mutation via Back to stick")
}

func TestFlushBuffer_AppendRangeSplitsAcrossCapacity(t *testing.T) {
	var flushed [][]core.Token
	buf := core.NewFlushBuffer(make([]core.Token, 2), func(toks []core.Token) {
		cp := append([]core.Token(nil), toks...)
		flushed = append(flushed, cp)
	})
	buf.AppendRange([]core.Token{
		{Begin: 0, Length: 1, Kind: core.Name},
		{Begin: 1, Length: 1, Kind: core.Name},
		{Begin: 2, Length: 1, Kind: core.Name},
	})
	buf.Flush()
	testutil.Len(t, flushed, 2, "expected 2 flush calls")
	testutil.Len(t, flushed[0], 2, "expected flush sizes [2,1]")
	testutil.Len(t, flushed[1], 1, "expected flush sizes [2,1]")
}
