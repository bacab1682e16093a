package columnar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/model"
)

func TestWriteAllThenReadRoundTrips(t *testing.T) {
	dir := t.TempDir()

	files := []model.File{{Path: "a.go", Name: "a.go", Extension: ".go", Language: "go", SizeBytes: 10, LineCount: 2}}
	symbols := []model.Symbol{{
		Name: "Foo", Kind: model.KindFunction, FilePath: "a.go",
		Location:   model.Location{StartLine: 0, StartColumn: 0, EndLine: 2, EndColumn: 1},
		IsExported: true,
	}}
	imports := []model.Import{{
		SourceFile: "a.go", ModuleSpecifier: "fmt", ImportedName: "*", LocalName: "fmt",
		Kind: model.ImportImport, Line: 1, IsExternal: true,
	}}
	comments := []model.Comment{{
		FilePath: "a.go", Text: "// Foo does a thing", Kind: model.CommentDoc,
		Location: model.Location{StartLine: 1, EndLine: 1},
		AssociatedSymbol: "Foo", AssociatedSymbolKind: model.KindFunction,
	}}
	errs := []model.Error{}

	require.NoError(t, WriteAll(dir, files, symbols, imports, comments, errs))

	gotFiles, err := ReadFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, files, gotFiles)

	gotSymbols, err := ReadSymbols(dir)
	require.NoError(t, err)
	assert.Equal(t, symbols, gotSymbols)

	gotImports, err := ReadImports(dir)
	require.NoError(t, err)
	assert.Equal(t, imports, gotImports)

	gotComments, err := ReadComments(dir)
	require.NoError(t, err)
	assert.Equal(t, comments, gotComments)

	gotErrors, err := ReadErrors(dir)
	require.NoError(t, err)
	assert.Empty(t, gotErrors)
}

func TestTableExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, TableExists(dir, ErrorsTable))

	require.NoError(t, WriteAll(dir, nil, nil, nil, nil, nil))
	assert.True(t, TableExists(dir, ErrorsTable))
}
