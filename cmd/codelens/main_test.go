package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersEverySubcommand(t *testing.T) {
	root := newRootCommand()

	want := []string{
		"parse", "overview", "search", "outline", "files", "read",
		"query", "deps", "dependents", "callers", "imports", "comments", "errors",
	}
	got := make(map[string]bool)
	for _, c := range root.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, got[name], "expected subcommand %q to be registered", name)
	}
	assert.Len(t, root.Commands(), len(want))
}

func TestParseThenSearchEndToEnd(t *testing.T) {
	root := t.TempDir()
	src := `package sample

// Greet prints a greeting.
func Greet(name string) {
	println(name)
}
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.go"), []byte(src), 0o644))
	dataDir := filepath.Join(t.TempDir(), "data")

	parseCmd := newRootCommand()
	parseCmd.SetArgs([]string{"parse", root, "--output", dataDir})
	parseCmd.SetOut(&bytes.Buffer{})
	require.NoError(t, parseCmd.Execute())

	searchCmd := newRootCommand()
	var out bytes.Buffer
	searchCmd.SetOut(&out)
	searchCmd.SetArgs([]string{"search", "Greet", "--data-dir", dataDir, "--format", "json"})
	require.NoError(t, searchCmd.Execute())
}

func TestCommandsRejectMissingDataDir(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"files", "--data-dir", filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, cmd.Execute())
}
