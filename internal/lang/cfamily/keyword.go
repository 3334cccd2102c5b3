package cfamily

import (
	"sort"

	"github.com/go-ulight/ulight/internal/core"
)

// keyword pairs a spelling with the kind it should be emitted as.
type keyword struct {
	text string
	kind core.Kind
}

// keywordTable is a spelling-sorted slice searched with sort.Search, the
// idiom used throughout this corpus for static string->kind tables.
type keywordTable []keyword

func newKeywordTable(entries map[string]core.Kind) keywordTable {
	t := make(keywordTable, 0, len(entries))
	for text, kind := range entries {
		t = append(t, keyword{text: text, kind: kind})
	}
	sort.Slice(t, func(i, j int) bool { return t[i].text < t[j].text })
	return t
}

func (t keywordTable) lookup(text string) (core.Kind, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].text >= text })
	if i < len(t) && t[i].text == text {
		return t[i].kind, true
	}
	return 0, false
}

// cKeywords are keywords present in C (C11/C17/C23 common core). Control
// flow keywords get keyword_control, type keywords get keyword_type, and
// everything else plain keyword.
var cKeywords = newKeywordTable(map[string]core.Kind{
	"if": core.KeywordControl, "else": core.KeywordControl, "switch": core.KeywordControl,
	"case": core.KeywordControl, "default": core.KeywordControl, "for": core.KeywordControl,
	"while": core.KeywordControl, "do": core.KeywordControl, "break": core.KeywordControl,
	"continue": core.KeywordControl, "return": core.KeywordControl, "goto": core.KeywordControl,

	"void": core.KeywordType, "char": core.KeywordType, "short": core.KeywordType,
	"int": core.KeywordType, "long": core.KeywordType, "float": core.KeywordType,
	"double": core.KeywordType, "signed": core.KeywordType, "unsigned": core.KeywordType,
	"_Bool": core.KeywordType, "bool": core.KeywordType, "struct": core.KeywordType,
	"union": core.KeywordType, "enum": core.KeywordType, "_Complex": core.KeywordType,

	"auto": core.Keyword, "const": core.Keyword, "extern": core.Keyword,
	"register": core.Keyword, "restrict": core.Keyword, "static": core.Keyword,
	"typedef": core.Keyword, "volatile": core.Keyword, "inline": core.Keyword,
	"sizeof": core.Keyword, "_Alignas": core.Keyword, "_Alignof": core.Keyword,
	"_Atomic": core.Keyword, "_Generic": core.Keyword, "_Noreturn": core.Keyword,
	"_Static_assert": core.Keyword, "_Thread_local": core.Keyword,

	"NULL": core.Null,
	"true":  core.Bool, "false": core.Bool,
})

// cppOnlyKeywords are additional keywords recognized in C++ but not C
// (excluded when options.Strict highlights plain C).
var cppOnlyKeywords = newKeywordTable(map[string]core.Kind{
	"try": core.KeywordControl, "catch": core.KeywordControl, "throw": core.KeywordControl,

	"class": core.KeywordType, "typename": core.KeywordType, "namespace": core.KeywordType,
	"concept": core.KeywordType, "template": core.KeywordType,

	"public": core.Keyword, "private": core.Keyword, "protected": core.Keyword,
	"virtual": core.Keyword, "override": core.Keyword, "final": core.Keyword,
	"explicit": core.Keyword, "friend": core.Keyword, "mutable": core.Keyword,
	"operator": core.Keyword, "new": core.Keyword, "delete": core.Keyword,
	"using": core.Keyword, "constexpr": core.Keyword, "consteval": core.Keyword,
	"constinit": core.Keyword, "decltype": core.Keyword, "noexcept": core.Keyword,
	"static_assert": core.Keyword, "static_cast": core.Keyword, "dynamic_cast": core.Keyword,
	"const_cast": core.Keyword, "reinterpret_cast": core.Keyword, "requires": core.Keyword,
	"co_await": core.Keyword, "co_return": core.Keyword, "co_yield": core.Keyword,
	"export": core.Keyword,

	"nullptr": core.Null,
	"this":    core.This,
})
