package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAskUsesBuiltInTable(t *testing.T) {
	out, err := execute(t, "ask", "Why", "should", "we", "hire", "him?")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "intent: hire\n"))
	assert.Contains(t, out, "Three reasons Rohit is a strong hire")
}

func TestAskFallback(t *testing.T) {
	out, err := execute(t, "ask", "qwertyuiop")
	require.NoError(t, err)
	assert.Contains(t, out, "intent: "+intent.FallbackName)
	assert.Contains(t, out, intent.DefaultFallback)
}

func TestRulesListsPriorityOrder(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(intent.DefaultRules())+1)
	assert.Contains(t, lines[1], "about")
	assert.Contains(t, lines[len(lines)-1], "resume")
}

func TestRulesFlagLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  - name: ping
    triggers: ["ping"]
    response: "pong"
`), 0o600))

	out, err := execute(t, "--rules", path, "ask", "PING")
	require.NoError(t, err)
	assert.Equal(t, "intent: ping\n\npong\n", out)

	out, err = execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 rules OK")
}

func TestValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: []"), 0o600))

	_, err := execute(t, "validate", path)
	assert.ErrorIs(t, err, intent.ErrInvalidRules)
}
