package charclass_test

import (
	"testing"

	"github.com/go-ulight/ulight/internal/charclass"
	"github.com/go-ulight/ulight/internal/testutil"
)

func TestDigitClasses(t *testing.T) {
	testutil.True(t, charclass.IsBinaryDigit('1'), "binary digit classification wrong")
	testutil.False(t, charclass.IsBinaryDigit('2'), "binary digit classification wrong")
	testutil.True(t, charclass.IsOctalDigit('7'), "octal digit classification wrong")
	testutil.False(t, charclass.IsOctalDigit('8'), "octal digit classification wrong")
	testutil.True(t, charclass.IsHexDigit('f'), "hex digit classification wrong")
	testutil.True(t, charclass.IsHexDigit('F'), "hex digit classification wrong")
	testutil.False(t, charclass.IsHexDigit('g'), "hex digit classification wrong")
	testutil.True(t, charclass.IsASCIIDigit('5'), "ascii digit classification wrong")
	testutil.False(t, charclass.IsASCIIDigit('a'), "ascii digit classification wrong")
}

func TestAlphaClasses(t *testing.T) {
	testutil.True(t, charclass.IsASCIILower('a'), "ascii lower classification wrong")
	testutil.False(t, charclass.IsASCIILower('A'), "ascii lower classification wrong")
	testutil.True(t, charclass.IsASCIIUpper('A'), "ascii upper classification wrong")
	testutil.False(t, charclass.IsASCIIUpper('a'), "ascii upper classification wrong")
	testutil.True(t, charclass.IsASCIIAlpha('z'), "ascii alpha classification wrong")
	testutil.True(t, charclass.IsASCIIAlpha('Z'), "ascii alpha classification wrong")
	testutil.False(t, charclass.IsASCIIAlpha('9'), "ascii alpha classification wrong")
	testutil.True(t, charclass.IsASCIIAlnum('9'), "ascii alnum classification wrong")
	testutil.True(t, charclass.IsASCIIAlnum('a'), "ascii alnum classification wrong")
	testutil.False(t, charclass.IsASCIIAlnum('_'), "ascii alnum classification wrong")
}

func TestWhitespaceClasses(t *testing.T) {
	testutil.True(t, charclass.IsSpaceOrTab(' '), "space-or-tab classification wrong")
	testutil.True(t, charclass.IsSpaceOrTab('\t'), "space-or-tab classification wrong")
	testutil.False(t, charclass.IsSpaceOrTab('\n'), "space-or-tab classification wrong")
	for _, b := range []byte{' ', '\t', '\r', '\n', '\v', '\f'} {
		testutil.True(t, charclass.IsASCIIWhitespace(b), "expected %q to be whitespace", b)
	}
	testutil.False(t, charclass.IsASCIIWhitespace('x'), "'x' should not be whitespace")
}

func TestDecodeRune_ValidASCII(t *testing.T) {
	r, size := charclass.DecodeRune("abc")
	testutil.Equal(t, 'a', r)
	testutil.Equal(t, 1, size)
}

func TestDecodeRune_ValidMultibyte(t *testing.T) {
	r, size := charclass.DecodeRune("日本語")
	testutil.Equal(t, '日', r)
	testutil.Equal(t, 3, size)
}

func TestDecodeRune_EmptyString(t *testing.T) {
	_, size := charclass.DecodeRune("")
	testutil.Equal(t, 0, size)
}

func TestDecodeRune_InvalidUTF8ConsumesOneByte(t *testing.T) {
	_, size := charclass.DecodeRune("\xff\xfe")
	testutil.Equal(t, 1, size)
}

func TestIdentPredicates_CFamily(t *testing.T) {
	testutil.True(t, charclass.IsCIdentStart('_'), "C ident-start classification wrong")
	testutil.True(t, charclass.IsCIdentStart('a'), "C ident-start classification wrong")
	testutil.False(t, charclass.IsCIdentStart('1'), "C ident-start classification wrong")
	testutil.True(t, charclass.IsCIdentContinue('1'), "C ident-continue classification wrong")
	testutil.True(t, charclass.IsCIdentContinue('_'), "C ident-continue classification wrong")
}

func TestIdentPredicates_JS(t *testing.T) {
	testutil.True(t, charclass.IsJSIdentStart('$'), "JS ident-start classification wrong")
	testutil.True(t, charclass.IsJSIdentStart('_'), "JS ident-start classification wrong")
	testutil.False(t, charclass.IsJSIdentStart('1'), "JS ident-start classification wrong")
	testutil.True(t, charclass.IsJSIdentContinue('9'), "JS ident-continue classification wrong")
	testutil.True(t, charclass.IsJSIdentContinue('$'), "JS ident-continue classification wrong")
}

func TestIdentPredicates_Lua_ASCIIOnly(t *testing.T) {
	testutil.True(t, charclass.IsLuaIdentStart('_'), "Lua ident-start classification wrong")
	testutil.True(t, charclass.IsLuaIdentStart('z'), "Lua ident-start classification wrong")
	testutil.False(t, charclass.IsLuaIdentStart('日'), "Lua identifiers should be ASCII-only")
	testutil.True(t, charclass.IsLuaIdentContinue('9'), "Lua ident-continue should allow digits")
}

func TestIdentPredicates_CSS(t *testing.T) {
	testutil.True(t, charclass.IsCSSIdentStart('-'), "CSS ident-start classification wrong")
	testutil.True(t, charclass.IsCSSIdentStart('_'), "CSS ident-start classification wrong")
	testutil.False(t, charclass.IsCSSIdentStart('9'), "CSS identifiers must not start with a digit")
	testutil.True(t, charclass.IsCSSIdentContinue('9'), "CSS ident-continue should allow digits")
}

func TestIdentPredicates_XMLName(t *testing.T) {
	testutil.True(t, charclass.IsXMLNameStart(':'), "XML name-start classification wrong")
	testutil.True(t, charclass.IsXMLNameStart('_'), "XML name-start classification wrong")
	testutil.True(t, charclass.IsXMLNameStart('a'), "XML name-start classification wrong")
	testutil.False(t, charclass.IsXMLNameStart('-'), "XML names must not start with a hyphen")
	testutil.True(t, charclass.IsXMLNameContinue('-'), "XML name-continue should allow hyphen and digits")
	testutil.True(t, charclass.IsXMLNameContinue('9'), "XML name-continue should allow hyphen and digits")
}

func TestIsHTMLNameChar_ExcludesDelimitersOnly(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\r', '\f', '/', '>', '='} {
		testutil.False(t, charclass.IsHTMLNameChar(r), "expected %q to be excluded from HTML name chars", r)
	}
	testutil.True(t, charclass.IsHTMLNameChar('a'), "expected ordinary characters to be allowed in HTML names")
	testutil.True(t, charclass.IsHTMLNameChar('-'), "expected ordinary characters to be allowed in HTML names")
}

func TestIsTeXCommandChar_LettersOnly(t *testing.T) {
	testutil.True(t, charclass.IsTeXCommandChar('a'), "TeX command chars should include ASCII letters")
	testutil.True(t, charclass.IsTeXCommandChar('Z'), "TeX command chars should include ASCII letters")
	testutil.False(t, charclass.IsTeXCommandChar(','), "',' is not a TeX command char")
}

func TestIsNASMIdentStart_IncludesSpecialSigils(t *testing.T) {
	for _, r := range []rune{'_', '.', '?', '$', '@', '~'} {
		testutil.True(t, charclass.IsNASMIdentStart(r), "expected %q to start a NASM identifier", r)
	}
	testutil.False(t, charclass.IsNASMIdentStart('1'), "NASM identifiers must not start with a digit")
	testutil.True(t, charclass.IsNASMIdentContinue('#'), "NASM ident-continue should allow '#' and digits")
	testutil.True(t, charclass.IsNASMIdentContinue('1'), "NASM ident-continue should allow '#' and digits")
}

func TestIsCOWELIdentChar(t *testing.T) {
	testutil.True(t, charclass.IsCOWELIdentChar('-'), "COWEL ident classification wrong")
	testutil.True(t, charclass.IsCOWELIdentChar('_'), "COWEL ident classification wrong")
	testutil.True(t, charclass.IsCOWELIdentChar('a'), "COWEL ident classification wrong")
	testutil.False(t, charclass.IsCOWELIdentChar('('), "'(' should not be a COWEL ident char")
}
