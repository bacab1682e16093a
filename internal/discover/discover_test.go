package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalkPartitionsSupportedAndUnsupported(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")
	writeFile(t, filepath.Join(root, "README.md"), "# hi\n")
	writeFile(t, filepath.Join(root, "src", "lib.rs"), "pub fn f() {}\n")

	result, err := Walk(root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go", "src/lib.rs"}, result.Supported)
	assert.Equal(t, []string{"README.md"}, result.Unsupported)
}

func TestWalkHonorsDefaultIgnores(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.go"), "package app\n")
	writeFile(t, filepath.Join(root, "vendor", "dep.go"), "package dep\n")
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "index.js"), "export {}\n")

	result, err := Walk(root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"app.go"}, result.Supported)
	assert.Empty(t, result.Unsupported)
}

func TestWalkHonorsExtraIgnores(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.go"), "package keep\n")
	writeFile(t, filepath.Join(root, "generated", "gen.go"), "package generated\n")

	result, err := Walk(root, []string{"**/generated/**"})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.go"}, result.Supported)
}

func TestWalkFailsOnUnreadableRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	assert.Error(t, err)
}

func TestFilterByLanguage(t *testing.T) {
	paths := []string{"a.go", "b.rs", "c.py"}
	assert.Equal(t, paths, FilterByLanguage(paths, nil))
}

func TestFileStatsCountsLines(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "f.txt")
	writeFile(t, path, "one\ntwo\nthree")

	size, lines, err := FileStats(path)
	require.NoError(t, err)
	assert.Equal(t, int64(13), size)
	assert.Equal(t, int64(3), lines)
}

func TestFileStatsEmptyFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "empty.txt")
	writeFile(t, path, "")

	size, lines, err := FileStats(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
	assert.Equal(t, int64(0), lines)
}

func TestLoadIgnoreFilePlainLines(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ".ignore")
	writeFile(t, path, "# comment\n**/testdata/**\n\n**/*.generated.go\n")

	patterns, err := LoadIgnoreFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/testdata/**", "**/*.generated.go"}, patterns)
}

func TestLoadIgnoreFileYAML(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "ignore.yaml")
	writeFile(t, path, "- \"**/testdata/**\"\n- \"**/*.generated.go\"\n")

	patterns, err := LoadIgnoreFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/testdata/**", "**/*.generated.go"}, patterns)
}
