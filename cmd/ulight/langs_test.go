package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunLangs_ListsPythonAndJSON(t *testing.T) {
	var out bytes.Buffer
	langsCmd.SetOut(&out)
	require.NoError(t, runLangs(langsCmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Contains(t, lines, "python")
	require.Contains(t, lines, "json")
	require.Contains(t, lines, "latex")
}
