package charclass

import "unicode"

// The language grammars in scope allow non-ASCII identifiers to varying
// degrees. Each predicate pair below follows the appropriate language's
// manual; where a language's real grammar references a Unicode property
// table this package uses the closest equivalent from the standard
// library's unicode package (IsLetter/IsDigit), since none of the example
// repositories in this corpus vendor a dedicated Unicode identifier-syntax
// table and the standard library's tables are the ecosystem's only
// source for it.

// IsCIdentStart reports whether r may start a C/C++ identifier:
// ASCII letter, underscore, or (in practice, and permitted since C99/C++11)
// any other Unicode letter.
func IsCIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsCIdentContinue reports whether r may continue a C/C++ identifier.
func IsCIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsJSIdentStart reports whether r may start a JavaScript/TypeScript
// identifier: Unicode letter, '$', or '_'.
func IsJSIdentStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r)
}

// IsJSIdentContinue reports whether r may continue a JavaScript/TypeScript
// identifier.
func IsJSIdentContinue(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc)
}

// IsPythonIdentStart reports whether r may start a Python identifier.
func IsPythonIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsPythonIdentContinue reports whether r may continue a Python identifier.
func IsPythonIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsLuaIdentStart reports whether r may start a Lua identifier. Lua
// identifiers are ASCII-only per the reference manual.
func IsLuaIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsLuaIdentContinue reports whether r may continue a Lua identifier.
func IsLuaIdentContinue(r rune) bool {
	return IsLuaIdentStart(r) || (r >= '0' && r <= '9')
}

// IsCSSIdentStart reports whether r may start a CSS identifier token
// (ignoring the escape-sequence production, handled separately).
func IsCSSIdentStart(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || r >= 0x80
}

// IsCSSIdentContinue reports whether r may continue a CSS identifier
// token.
func IsCSSIdentContinue(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) || r >= 0x80
}

// IsXMLNameStart reports whether r may start an XML Name production,
// approximated per the XML 1.0 NameStartChar grammar's common ranges.
func IsXMLNameStart(r rune) bool {
	switch {
	case r == ':' || r == '_':
		return true
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 0xC0 && r <= 0xD6, r >= 0xD8 && r <= 0xF6, r >= 0xF8 && r <= 0x2FF:
		return true
	case r >= 0x370 && r <= 0x37D, r >= 0x37F && r <= 0x1FFF:
		return true
	case r >= 0x200C && r <= 0x200D, r >= 0x2070 && r <= 0x218F:
		return true
	case r >= 0x2C00 && r <= 0x2FEF, r >= 0x3001 && r <= 0xD7FF:
		return true
	case r >= 0xF900 && r <= 0xFDCF, r >= 0xFDF0 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0xEFFFF:
		return true
	default:
		return false
	}
}

// IsXMLNameContinue reports whether r may continue an XML Name production.
func IsXMLNameContinue(r rune) bool {
	if IsXMLNameStart(r) {
		return true
	}
	switch {
	case r == '-' || r == '.':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == 0xB7:
		return true
	case r >= 0x0300 && r <= 0x036F:
		return true
	case r >= 0x203F && r <= 0x2040:
		return true
	default:
		return false
	}
}

// IsHTMLNameChar reports whether r may appear in an (unquoted, permissive)
// HTML tag or attribute name. HTML5 is far more permissive than XML; this
// excludes only whitespace and syntactically significant delimiters.
func IsHTMLNameChar(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '/', '>', '=':
		return false
	default:
		return true
	}
}

// IsTeXCommandChar reports whether r may appear in a TeX/LaTeX \command
// name (a run of ASCII letters).
func IsTeXCommandChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsEBNFIdentChar reports whether r may appear in an EBNF nonterminal
// identifier: letters, digits, underscore, and hyphen.
func IsEBNFIdentChar(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsLLVMIdentChar reports whether r may appear in an LLVM identifier
// (local %name, global @name, or label), per the LLVM Language Reference's
// permissive charset.
func IsLLVMIdentChar(r rune) bool {
	return r == '_' || r == '.' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsNASMIdentStart reports whether r may start a NASM identifier/label.
func IsNASMIdentStart(r rune) bool {
	switch r {
	case '_', '.', '?', '$', '@', '~':
		return true
	default:
		return unicode.IsLetter(r)
	}
}

// IsNASMIdentContinue reports whether r may continue a NASM
// identifier/label.
func IsNASMIdentContinue(r rune) bool {
	return IsNASMIdentStart(r) || unicode.IsDigit(r) || r == '#'
}

// IsCOWELIdentChar reports whether r may appear in a COWEL directive name.
func IsCOWELIdentChar(r rune) bool {
	return r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
