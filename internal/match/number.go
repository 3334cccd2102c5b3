// Package match provides stateless lexical matchers: given a string view,
// each returns the length (and optional metadata) of a lexical construct
// at its start, or zero/false if none matches. Matchers never look past
// the end of the input and never panic on malformed input.
package match

import "github.com/go-ulight/ulight/internal/charclass"

// NumberPrefix associates a literal prefix (e.g. "0x") with the digit base
// it selects.
type NumberPrefix struct {
	Text string
	Base int
}

// ExponentMarker associates an exponent-separator byte (e.g. 'e', 'p')
// with the integer base that permits it.
type ExponentMarker struct {
	Byte byte
	Base int
}

// NumberSpec parameterizes the common numeric-literal matcher shared by
// every language, per the spec's "Number matcher (common framework)".
type NumberSpec struct {
	// AllowedSigns lists the bytes that may prefix the literal (e.g. "+-").
	AllowedSigns string
	// Prefixes are tried longest-first; the first match selects the base
	// for the integer part. An empty Prefixes list means base 10 always.
	Prefixes []NumberPrefix
	// DefaultBaseForLeadingZero, if nonzero, is the base used when the
	// integer part starts with '0' and no explicit prefix matched (legacy
	// octal literals, e.g. C's 0755).
	DefaultBaseForLeadingZero int
	// ExponentMarkers lists recognized exponent separators, keyed to the
	// base of the literal that permits them.
	ExponentMarkers []ExponentMarker
	// Suffixes are tried in order and the first that matches is consumed
	// (at most one). A suffix after a radix point or exponent marks the
	// literal erroneous.
	Suffixes []string
	// DigitSeparator is a byte (e.g. '_') permitted as a single separator
	// between digits; runs of more than one, or a trailing separator, are
	// erroneous. Zero disables separator support.
	DigitSeparator byte
	// RequireNonEmptyInteger marks the literal erroneous if no integer
	// digits were matched (e.g. a lone "0x" prefix with nothing after).
	RequireNonEmptyInteger bool
	// AllowLeadingPoint permits the literal to start directly with '.'
	// followed by a fractional digit (e.g. ".5").
	AllowLeadingPoint bool
}

// NumberResult is the outcome of matching a numeric literal, as byte
// lengths of each consecutive segment. Segments appear in source order:
// sign, prefix, integer, radix point, fractional, exponent separator,
// exponent digits, suffix. A zero-length segment means that part is
// absent. Length is the sum of all segments and is zero if nothing
// matched at all.
type NumberResult struct {
	Length         int
	Sign           int
	Prefix         int
	Integer        int
	RadixPoint     int
	Fractional     int
	ExponentSep    int
	ExponentDigits int
	Suffix         int
	Base           int
	Erroneous      bool
}

func digitInBase(b byte, base int) bool {
	switch base {
	case 2:
		return charclass.IsBinaryDigit(b)
	case 8:
		return charclass.IsOctalDigit(b)
	case 16:
		return charclass.IsHexDigit(b)
	default:
		return charclass.IsASCIIDigit(b)
	}
}

// scanDigits consumes a run of digits valid in base, honoring a single
// digit separator between digits. Returns the consumed length and whether
// any digit (not counting separators) was consumed, and whether a
// separator was malformed (doubled, leading, or trailing).
func scanDigits(s string, base int, sep byte) (length int, sawDigit bool, sepError bool) {
	i := 0
	lastWasDigit := false
	lastWasSep := false
	for i < len(s) {
		b := s[i]
		if digitInBase(b, base) {
			i++
			sawDigit = true
			lastWasDigit = true
			lastWasSep = false
			continue
		}
		if sep != 0 && b == sep {
			if !lastWasDigit {
				sepError = true
			}
			i++
			lastWasDigit = false
			lastWasSep = true
			continue
		}
		break
	}
	if lastWasSep {
		sepError = true
		// Do not consume the trailing separator as part of the literal;
		// back it out so it can be re-lexed as an operator/punctuation.
		i--
	}
	length = i
	return length, sawDigit, sepError
}

// Number matches a numeric literal at the start of s according to spec.
// It returns a zero-length, false result if s does not start with a sign,
// digit, or (when AllowLeadingPoint) a '.' followed by a digit.
func Number(s string, spec NumberSpec) (NumberResult, bool) {
	var r NumberResult
	i := 0

	if i < len(s) && indexByte(spec.AllowedSigns, s[i]) {
		r.Sign = 1
		i++
	}

	rest := s[i:]
	if len(rest) == 0 {
		return NumberResult{}, false
	}
	startsWithDigit := charclass.IsASCIIDigit(rest[0])
	startsWithPoint := spec.AllowLeadingPoint && rest[0] == '.' && len(rest) > 1 && charclass.IsASCIIDigit(rest[1])
	if !startsWithDigit && !startsWithPoint {
		return NumberResult{}, false
	}

	base := 10
	erroneous := false

	if startsWithDigit {
		var bestPrefix string
		bestBase := 0
		for _, p := range spec.Prefixes {
			if hasPrefixFold(rest, p.Text) && len(p.Text) > len(bestPrefix) {
				bestPrefix = p.Text
				bestBase = p.Base
			}
		}
		if bestPrefix != "" {
			r.Prefix = len(bestPrefix)
			i += len(bestPrefix)
			base = bestBase
		} else if rest[0] == '0' && spec.DefaultBaseForLeadingZero != 0 && len(rest) > 1 && charclass.IsASCIIDigit(rest[1]) {
			base = spec.DefaultBaseForLeadingZero
		}
	}
	r.Base = base

	intLen, sawDigit, intSepErr := scanDigits(s[i:], base, spec.DigitSeparator)
	r.Integer = intLen
	i += intLen
	if intSepErr {
		erroneous = true
	}
	if spec.RequireNonEmptyInteger && !sawDigit && r.Prefix > 0 {
		erroneous = true
	}

	isDecimalFamily := base == 10
	if isDecimalFamily && i < len(s) && s[i] == '.' {
		// The radix point is consumed whenever present in the decimal
		// family, regardless of what follows (so "1." before a method
		// call still takes the '.').
		r.RadixPoint = 1
		i++
		fracLen, _, fracSepErr := scanDigits(s[i:], base, spec.DigitSeparator)
		r.Fractional = fracLen
		i += fracLen
		if fracSepErr {
			erroneous = true
		}
	}

	for _, marker := range spec.ExponentMarkers {
		if marker.Base != base {
			continue
		}
		if i >= len(s) || (s[i] != marker.Byte && s[i] != upperByte(marker.Byte) && s[i] != lowerByte(marker.Byte)) {
			continue
		}
		j := i + 1
		signLen := 0
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			signLen = 1
			j++
		}
		expDigits, sawExpDigit, expSepErr := scanDigits(s[j:], 10, spec.DigitSeparator)
		if !sawExpDigit {
			// No digits after the marker: this isn't an exponent after
			// all, leave it unconsumed.
			break
		}
		r.ExponentSep = 1 + signLen
		r.ExponentDigits = expDigits
		i = j + expDigits
		if expSepErr {
			erroneous = true
		}
		break
	}

	for _, suf := range spec.Suffixes {
		if hasPrefixFold(s[i:], suf) {
			r.Suffix = len(suf)
			i += len(suf)
			break
		}
	}
	if r.Suffix > 0 && (r.RadixPoint > 0 || r.ExponentDigits > 0) {
		// A suffix on a non-integer literal is erroneous by default;
		// languages that allow one (Python's 'j') clear the flag.
		erroneous = true
	}

	if !sawDigit && r.Fractional == 0 {
		return NumberResult{}, false
	}

	r.Erroneous = erroneous
	r.Length = i
	return r, true
}

func indexByte(set string, b byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		a, b := s[i], prefix[i]
		if a == b {
			continue
		}
		if lowerByte(a) == lowerByte(b) && charclass.IsASCIIAlpha(a) {
			continue
		}
		return false
	}
	return true
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
