package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "s\na\tb\n1\t2\n", "parse", "--format", "line", "-")
	require.NoError(t, err)
	assert.Equal(t, "s\t0\ta=1\ns\t0\tb=2\n", out)
}

func TestParseCmdFault(t *testing.T) {
	_, err := run(t, "s\na\tb\n1\n", "parse", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.tsv")
	bad := filepath.Join(dir, "bad.tsv")
	require.NoError(t, os.WriteFile(good, []byte("s\na\n1\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("s\n"), 0o644))

	_, err := run(t, "", "check", good)
	assert.NoError(t, err)

	out, err := run(t, "", "check", dir)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(out, bad+":1: "), "got %q, want a report for %s", out, bad)
}

func TestGrammarCmd(t *testing.T) {
	out, err := run(t, "", "grammar", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "start Document")
}
