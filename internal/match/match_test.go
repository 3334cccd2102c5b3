package match_test

import (
	"testing"

	"github.com/go-ulight/ulight/internal/match"
	"github.com/go-ulight/ulight/internal/testutil"
)

func TestNumber_PlainDecimal(t *testing.T) {
	r, ok := match.Number("123", match.NumberSpec{})
	testutil.True(t, ok, "expected a match")
	testutil.Equal(t, 3, r.Integer)
	testutil.Equal(t, 3, r.Length)
	testutil.False(t, r.Erroneous)
}

func TestNumber_HexPrefix(t *testing.T) {
	spec := match.NumberSpec{Prefixes: []match.NumberPrefix{{Text: "0x", Base: 16}}}
	r, ok := match.Number("0x1F", spec)
	testutil.True(t, ok, "expected a match")
	testutil.Equal(t, 2, r.Prefix)
	testutil.Equal(t, 2, r.Integer)
	testutil.Equal(t, 4, r.Length)
	testutil.Equal(t, 16, r.Base)
}

func TestNumber_FloatWithExponent(t *testing.T) {
	spec := match.NumberSpec{ExponentMarkers: []match.ExponentMarker{{Byte: 'e', Base: 10}}}
	r, ok := match.Number("1.5e10", spec)
	testutil.True(t, ok, "expected a match")
	testutil.Equal(t, 1, r.Integer)
	testutil.Equal(t, 1, r.RadixPoint)
	testutil.Equal(t, 1, r.Fractional)
	testutil.Equal(t, 1, r.ExponentSep)
	testutil.Equal(t, 2, r.ExponentDigits)
	testutil.Equal(t, 6, r.Length)
	testutil.False(t, r.Erroneous, "expected a well-formed float to not be erroneous")
}

func TestNumber_DoubledSeparatorIsErroneous(t *testing.T) {
	spec := match.NumberSpec{DigitSeparator: '_'}
	r, ok := match.Number("1__2", spec)
	testutil.True(t, ok, "expected a match")
	testutil.True(t, r.Erroneous, "expected a doubled digit separator to be erroneous")
}

func TestNumber_TrailingSeparatorNotConsumed(t *testing.T) {
	spec := match.NumberSpec{DigitSeparator: '_'}
	r, ok := match.Number("1_", spec)
	testutil.True(t, ok, "expected a match")
	testutil.Equal(t, 1, r.Length, "expected trailing separator excluded from length")
	testutil.True(t, r.Erroneous, "expected trailing separator marked erroneous")
}

func TestNumber_NoMatchOnNonDigit(t *testing.T) {
	_, ok := match.Number("abc", match.NumberSpec{})
	testutil.False(t, ok, "expected no match")
}

func TestNumber_LeadingPoint(t *testing.T) {
	r, ok := match.Number(".5", match.NumberSpec{AllowLeadingPoint: true})
	testutil.True(t, ok, "expected a match")
	testutil.Equal(t, 0, r.Integer)
	testutil.Equal(t, 1, r.RadixPoint)
	testutil.Equal(t, 1, r.Fractional)
	testutil.Equal(t, 2, r.Length)
}

func TestNumber_SuffixRecognized(t *testing.T) {
	spec := match.NumberSpec{Suffixes: []string{"n"}}
	r, ok := match.Number("42n", spec)
	testutil.True(t, ok, "expected a match")
	testutil.Equal(t, 1, r.Suffix)
	testutil.Equal(t, 3, r.Length)
}

func TestIdentifier_MatchesStartAndContinue(t *testing.T) {
	start := func(r rune) bool { return r == '_' || (r >= 'a' && r <= 'z') }
	cont := func(r rune) bool { return start(r) || (r >= '0' && r <= '9') }
	n := match.Identifier("foo_1bar!", start, cont)
	testutil.Equal(t, 8, n)
}

func TestIdentifier_NoMatchWhenStartFails(t *testing.T) {
	start := func(r rune) bool { return r >= 'a' && r <= 'z' }
	n := match.Identifier("123", start, start)
	testutil.Equal(t, 0, n)
}

func TestLongestOperator_PrefersLongestMatch(t *testing.T) {
	ops := []string{"=", "==", "==="}
	n := match.LongestOperator("===x", ops)
	testutil.Equal(t, 3, n)
}

func TestLongestOperator_NoMatch(t *testing.T) {
	ops := []string{"+", "-"}
	n := match.LongestOperator("*", ops)
	testutil.Equal(t, 0, n)
}

func TestEscape_SimpleEscape(t *testing.T) {
	spec := match.EscapeSpec{Simple: "n"}
	r, ok := match.Escape(`\n`, spec)
	testutil.True(t, ok, "expected a match")
	testutil.Equal(t, 2, r.Length)
	testutil.False(t, r.Erroneous)
	testutil.Equal(t, match.EscapeSimple, r.Kind)
}

func TestEscape_UnknownSimpleEscapeIsErroneous(t *testing.T) {
	spec := match.EscapeSpec{Simple: "n"}
	r, ok := match.Escape(`\q`, spec)
	testutil.True(t, ok, "expected a match")
	testutil.True(t, r.Erroneous, "expected an unrecognized escape to be erroneous")
}

func TestEscape_VariadicHex(t *testing.T) {
	spec := match.EscapeSpec{HexVariadic: true}
	r, ok := match.Escape(`\xFF`, spec)
	testutil.True(t, ok, "expected a match")
	testutil.Equal(t, 4, r.Length)
	testutil.False(t, r.Erroneous)
	testutil.Equal(t, match.EscapeHex, r.Kind)
}

func TestEscape_UniversalShortRequiresFourDigits(t *testing.T) {
	spec := match.EscapeSpec{UniversalShort: true}
	r, ok := match.Escape(`\u12`, spec)
	testutil.True(t, ok, "expected a match")
	testutil.True(t, r.Erroneous, "expected a short \\u escape to be erroneous")
}

func TestEscape_TrailingBackslashIsErroneous(t *testing.T) {
	r, ok := match.Escape(`\`, match.EscapeSpec{})
	testutil.True(t, ok, "expected a match")
	testutil.True(t, r.Erroneous)
	testutil.Equal(t, 1, r.Length)
}
