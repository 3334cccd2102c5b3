package match

import "github.com/go-ulight/ulight/internal/charclass"

// EscapeKind classifies a matched escape sequence.
type EscapeKind uint8

const (
	EscapeSimple EscapeKind = iota
	EscapeOctal
	EscapeHex
	EscapeUniversal
	EscapeConditional
	EscapeNewline
)

// EscapeSpec parameterizes the shared backslash-escape matcher.
type EscapeSpec struct {
	// Simple is the set of bytes that form a one-character escape after
	// the backslash (e.g. "abfnrtv\\'\"?").
	Simple string
	// MaxOctalDigits is the maximum run of octal digits after the
	// backslash that form an octal escape (0 disables octal escapes).
	MaxOctalDigits int
	// HexFixedDigits, if nonzero, is the exact digit count required after
	// a literal 'x' (C: variable length, so this is 0 there; many other
	// languages require exactly 2).
	HexFixedDigits int
	// HexVariadic allows \xH...H of any length >= 1 (C-style).
	HexVariadic bool
	// HexBraced allows \x{H...} (as well as \u{H...} handled via
	// UniversalBraced).
	HexBraced bool
	// UniversalShort, if true, recognizes \uXXXX (4 hex digits).
	UniversalShort bool
	// UniversalLong, if true, recognizes \UXXXXXXXX (8 hex digits).
	UniversalLong bool
	// UniversalBraced, if true, recognizes \u{X...} (JS-style).
	UniversalBraced bool
	// AllowLineContinuation recognizes backslash followed by optional
	// horizontal whitespace then a line ending as a newline escape.
	AllowLineContinuation bool
}

// EscapeResult is the outcome of matching an escape sequence.
type EscapeResult struct {
	Length    int
	Kind      EscapeKind
	Erroneous bool
}

// Escape matches a backslash escape sequence at the start of s (s[0] must
// be '\\'; callers check this before calling). Returns ok=false only if s
// doesn't start with a backslash; a lone backslash with nothing after it
// matches with Length 1 and Erroneous set.
func Escape(s string, spec EscapeSpec) (EscapeResult, bool) {
	if len(s) == 0 || s[0] != '\\' {
		return EscapeResult{}, false
	}
	if len(s) == 1 {
		return EscapeResult{Length: 1, Kind: EscapeSimple, Erroneous: true}, true
	}
	rest := s[1:]
	b := rest[0]

	if spec.AllowLineContinuation && (b == '\n' || b == '\r') {
		return matchLineContinuation(s), true
	}
	if spec.AllowLineContinuation && charclass.IsSpaceOrTab(b) {
		j := 0
		for j < len(rest) && charclass.IsSpaceOrTab(rest[j]) {
			j++
		}
		if j < len(rest) && (rest[j] == '\n' || rest[j] == '\r') {
			return matchLineContinuation(s[1+j:]).offsetBy(1 + j), true
		}
	}

	if (b == 'x' || b == 'X') && (spec.HexVariadic || spec.HexFixedDigits > 0 || spec.HexBraced) {
		if spec.HexBraced && len(rest) > 1 && rest[1] == '{' {
			return matchBraced(s, 2), true
		}
		return matchFixedOrVariadicHex(s, spec), true
	}

	if b == 'u' && spec.UniversalBraced && len(rest) > 1 && rest[1] == '{' {
		r := matchBraced(s, 2)
		r.Kind = EscapeUniversal
		return r, true
	}
	if b == 'u' && spec.UniversalShort {
		return matchFixedHexUniversal(s, 4), true
	}
	if b == 'U' && spec.UniversalLong {
		return matchFixedHexUniversal(s, 8), true
	}

	if spec.MaxOctalDigits > 0 && charclass.IsOctalDigit(b) {
		n := 1
		for n < spec.MaxOctalDigits && n < len(rest) && charclass.IsOctalDigit(rest[n]) {
			n++
		}
		return EscapeResult{Length: 1 + n, Kind: EscapeOctal}, true
	}

	if indexByte(spec.Simple, b) {
		return EscapeResult{Length: 2, Kind: EscapeSimple}, true
	}

	return EscapeResult{Length: 2, Kind: EscapeSimple, Erroneous: true}, true
}

func matchLineContinuation(s string) EscapeResult {
	// s starts with '\', the rest (possibly after whitespace) is the
	// line ending.
	i := 1
	for i < len(s) && charclass.IsSpaceOrTab(s[i]) {
		i++
	}
	if i >= len(s) {
		return EscapeResult{Length: 1, Kind: EscapeNewline, Erroneous: true}
	}
	if s[i] == '\r' {
		i++
		if i < len(s) && s[i] == '\n' {
			i++
		}
	} else if s[i] == '\n' {
		i++
	}
	return EscapeResult{Length: i, Kind: EscapeNewline}
}

func (r EscapeResult) offsetBy(n int) EscapeResult {
	r.Length += n
	return r
}

func matchFixedOrVariadicHex(s string, spec EscapeSpec) EscapeResult {
	// s[0]='\\', s[1]='x'/'X'
	i := 2
	digits := 0
	for i < len(s) && charclass.IsHexDigit(s[i]) {
		i++
		digits++
		if spec.HexFixedDigits > 0 && digits == spec.HexFixedDigits {
			break
		}
	}
	erroneous := false
	if spec.HexFixedDigits > 0 {
		erroneous = digits != spec.HexFixedDigits
	} else if digits == 0 {
		erroneous = true
	}
	return EscapeResult{Length: i, Kind: EscapeHex, Erroneous: erroneous}
}

func matchFixedHexUniversal(s string, n int) EscapeResult {
	i := 2
	digits := 0
	for i < len(s) && digits < n && charclass.IsHexDigit(s[i]) {
		i++
		digits++
	}
	return EscapeResult{Length: i, Kind: EscapeUniversal, Erroneous: digits != n}
}

// matchBraced matches \x{...} / \u{...} style braced escapes; openAt is
// the index of '{' within s.
func matchBraced(s string, openAt int) EscapeResult {
	i := openAt + 1
	digits := 0
	for i < len(s) && charclass.IsHexDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '}' {
		i++
		return EscapeResult{Length: i, Kind: EscapeHex, Erroneous: digits == 0}
	}
	return EscapeResult{Length: i, Kind: EscapeHex, Erroneous: true}
}
