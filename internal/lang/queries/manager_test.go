package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/lang"
)

func TestGetQueryCompilesAndCaches(t *testing.T) {
	pm := lang.NewParserManager(nil)
	defer pm.Close()
	m := NewManager(pm, nil)
	defer m.Close()

	q1, err := m.GetQuery(lang.Go, BundleSymbols)
	require.NoError(t, err)
	require.NotNil(t, q1)

	q2, err := m.GetQuery(lang.Go, BundleSymbols)
	require.NoError(t, err)
	assert.Same(t, q1, q2, "second call should return the cached query")
}

func TestGetQueryCoversAllBundleTypes(t *testing.T) {
	pm := lang.NewParserManager(nil)
	defer pm.Close()
	m := NewManager(pm, nil)
	defer m.Close()

	for _, bundle := range []BundleType{BundleSymbols, BundleImports, BundleComments} {
		q, err := m.GetQuery(lang.Python, bundle)
		require.NoError(t, err, "bundle=%s", bundle)
		require.NotNil(t, q)
	}
}

func TestPrecompileCoversEveryTag(t *testing.T) {
	pm := lang.NewParserManager(nil)
	defer pm.Close()
	m := NewManager(pm, nil)
	defer m.Close()

	require.NoError(t, m.Precompile(lang.AllTags()))
}

func TestExecuteQueryFindsGoFunctionSymbol(t *testing.T) {
	pm := lang.NewParserManager(nil)
	defer pm.Close()
	m := NewManager(pm, nil)
	defer m.Close()

	source := []byte("package sample\n\nfunc Greet() {}\n")
	tree, err := pm.Parse(source, lang.Go)
	require.NoError(t, err)
	defer tree.Close()

	q, err := m.GetQuery(lang.Go, BundleSymbols)
	require.NoError(t, err)

	matches, err := m.ExecuteQuery(tree, q, source)
	require.NoError(t, err)
	assert.NotEmpty(t, matches)

	found := false
	for _, match := range matches {
		for _, cap := range match.Captures {
			if cap.Text == "Greet" {
				found = true
			}
		}
	}
	assert.True(t, found, "expected a capture with text Greet")
}

func TestExecuteQueryRejectsNilTreeOrQuery(t *testing.T) {
	pm := lang.NewParserManager(nil)
	defer pm.Close()
	m := NewManager(pm, nil)
	defer m.Close()

	_, err := m.ExecuteQuery(nil, nil, nil)
	assert.Error(t, err)
}

func TestBundleTypeString(t *testing.T) {
	assert.Equal(t, "symbols", BundleSymbols.String())
	assert.Equal(t, "imports", BundleImports.String())
	assert.Equal(t, "comments", BundleComments.String())
}
