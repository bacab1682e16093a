package coordinate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/columnar"
	"github.com/codelens/codelens/internal/lang"
)

const goodGoFile = `package sample

import "fmt"

// Greet prints a greeting.
func Greet(name string) {
	fmt.Println("hello", name)
}
`

func TestRunEndToEnd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.go"), []byte(goodGoFile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("just notes"), 0o644))

	outDir := filepath.Join(t.TempDir(), "out")

	summary, err := Run(Options{Root: root, OutputDir: outDir}, nil)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 2, summary.FilesDiscovered)
	assert.Equal(t, 1, summary.FilesSupported)
	assert.Equal(t, 1, summary.FilesIndexed)
	assert.Equal(t, 0, summary.FilesFailed)
	assert.GreaterOrEqual(t, summary.Symbols, 1)
	assert.GreaterOrEqual(t, summary.Imports, 1)

	files, err := columnar.ReadFiles(outDir)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	symbols, err := columnar.ReadSymbols(outDir)
	require.NoError(t, err)
	assert.NotEmpty(t, symbols)
}

func TestRunWithUnreadableFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "ok.go"), []byte(goodGoFile), 0o644))

	broken := filepath.Join(root, "broken.go")
	require.NoError(t, os.WriteFile(broken, []byte("package broken"), 0o644))
	require.NoError(t, os.Chmod(broken, 0o000))
	t.Cleanup(func() { _ = os.Chmod(broken, 0o644) })

	outDir := filepath.Join(t.TempDir(), "out")
	summary, err := Run(Options{Root: root, OutputDir: outDir}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FilesFailed)
	assert.Equal(t, 1, summary.FilesIndexed)

	errs, err := columnar.ReadErrors(outDir)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "broken.go", errs[0].FilePath)
}

func TestRunUnreadableRoot(t *testing.T) {
	_, err := Run(Options{Root: filepath.Join(t.TempDir(), "does-not-exist"), OutputDir: t.TempDir()}, nil)
	assert.Error(t, err)
}

func TestRunFiltersByLanguage(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.go"), []byte(goodGoFile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.py"), []byte("def f():\n    pass\n"), 0o644))

	outDir := filepath.Join(t.TempDir(), "out")
	summary, err := Run(Options{Root: root, OutputDir: outDir, Languages: []lang.Tag{lang.Go}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FilesSupported)
}
