package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserManagerParsesAndCreatesPoolLazily(t *testing.T) {
	pm := NewParserManager(nil)
	defer pm.Close()

	assert.Equal(t, 0, pm.GetStats().ParsersCreated)

	tree, err := pm.Parse([]byte("package sample\n"), Go)
	require.NoError(t, err)
	require.NotNil(t, tree)
	defer tree.Close()

	assert.Equal(t, 1, pm.GetStats().ParsersCreated)
	assert.Equal(t, 1, pm.GetStats().ParsesCalled)
}

func TestParserManagerReusesPoolAcrossParses(t *testing.T) {
	pm := NewParserManager(nil)
	defer pm.Close()

	for i := 0; i < 3; i++ {
		tree, err := pm.Parse([]byte("package sample\n"), Go)
		require.NoError(t, err)
		tree.Close()
	}
	assert.Equal(t, 3, pm.GetStats().ParsesCalled)
}

func TestParserManagerRejectsUnsupportedTag(t *testing.T) {
	pm := NewParserManager(nil)
	defer pm.Close()

	_, err := pm.Parse([]byte("x"), Unsupported)
	assert.Error(t, err)
}

func TestParserManagerParseFileDetectsTag(t *testing.T) {
	pm := NewParserManager(nil)
	defer pm.Close()

	tree, tag, err := pm.ParseFile([]byte("def f(): pass\n"), "mod.py")
	require.NoError(t, err)
	defer tree.Close()
	assert.Equal(t, Python, tag)
}

func TestParserManagerParseFileRejectsUnknownExtension(t *testing.T) {
	pm := NewParserManager(nil)
	defer pm.Close()

	_, _, err := pm.ParseFile([]byte("x"), "notes.txt")
	assert.Error(t, err)
}

func TestParserManagerCloseResetsPools(t *testing.T) {
	pm := NewParserManager(nil)
	tree, err := pm.Parse([]byte("package sample\n"), Go)
	require.NoError(t, err)
	tree.Close()

	require.NoError(t, pm.Close())
	assert.Equal(t, 0, pm.GetStats().ParsersCreated)
}
