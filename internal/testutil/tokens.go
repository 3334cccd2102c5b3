package testutil

import (
	"testing"

	"github.com/go-ulight/ulight"
)

// Tok is a shorthand for building an expected token in test tables.
func Tok(begin, length uint32, kind ulight.Kind) ulight.Token {
	return ulight.Token{Begin: begin, Length: length, Kind: kind}
}

// AssertTokens fails the test if got does not exactly match want, by
// count, begin, length, and kind, reporting the first mismatch found.
func AssertTokens(t testing.TB, got []ulight.Token, want ...ulight.Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d mismatch:\n  got:  %v\n  want: %v\n  full got: %v", i, got[i], want[i], got)
		}
	}
}

// AssertEqualKind fails the test if got != want.
func AssertEqualKind(t testing.TB, want, got ulight.Kind) {
	t.Helper()
	if got != want {
		t.Fatalf("kind mismatch: got %s, want %s", got, want)
	}
}

// AssertEqual is a type-narrowed alias of Equal for call sites that prefer
// the assert-style argument order (want, got).
func AssertEqual[T comparable](t testing.TB, want, got T) {
	t.Helper()
	Equal(t, want, got)
}

// AssertCoverage checks that every token is non-empty, that tokens are in
// non-overlapping, non-decreasing order, and that each lies fully within
// source. It does not check which bytes between tokens were left
// unemitted.
func AssertCoverage(t testing.TB, source string, toks []ulight.Token) {
	t.Helper()
	var pos uint32
	for i, tok := range toks {
		if tok.Length == 0 {
			t.Fatalf("token %d has zero length", i)
		}
		if tok.Begin < pos {
			t.Fatalf("token %d begins at %d, before previous end %d (out of order)", i, tok.Begin, pos)
		}
		if uint64(tok.End()) > uint64(len(source)) {
			t.Fatalf("token %d end %d exceeds source length %d", i, tok.End(), len(source))
		}
		pos = tok.End()
	}
	if int(pos) > len(source) {
		t.Fatalf("final token end %d exceeds source length %d", pos, len(source))
	}
}
