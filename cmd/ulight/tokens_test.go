package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunTokens_JSONFormatWritesRecords(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"a":1}`), 0o644))
	outFile := filepath.Join(dir, "out.json")

	tokensLang = "json"
	tokensFormat = "json"
	tokensOutputFile = outFile
	tokensCoalesce = false
	tokensStrict = false
	defer func() {
		tokensLang, tokensFormat, tokensOutputFile = "", "text", ""
	}()

	require.NoError(t, runTokens(tokensCmd, []string{src}))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(data), `"kind": "symbol_brace"`)
}

func TestRunTokens_RejectsUnknownLang(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	tokensLang = "cobol"
	tokensFormat = "text"
	tokensOutputFile = ""
	defer func() { tokensLang, tokensFormat = "", "text" }()

	err := runTokens(tokensCmd, []string{src})
	require.Error(t, err)
}
