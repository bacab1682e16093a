package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/columnar"
	"github.com/codelens/codelens/internal/model"
)

func seedStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := []model.File{
		{Path: "lib.rs", Name: "lib.rs", Extension: ".rs", Language: "rust", SizeBytes: 20, LineCount: 3},
		{Path: "main.go", Name: "main.go", Extension: ".go", Language: "go", SizeBytes: 40, LineCount: 6},
	}
	symbols := []model.Symbol{
		{Name: "hello", Kind: model.KindFunction, FilePath: "lib.rs", IsExported: true, Location: model.Location{StartLine: 0, EndLine: 0}},
		{Name: "main", Kind: model.KindFunction, FilePath: "main.go", IsExported: false, Location: model.Location{StartLine: 2, EndLine: 5}},
	}
	imports := []model.Import{
		{SourceFile: "main.go", ModuleSpecifier: "fmt", ImportedName: "*", LocalName: "fmt", Kind: model.ImportImport, Line: 1, IsExternal: true},
	}

	require.NoError(t, columnar.WriteAll(dir, files, symbols, imports, nil, nil))
	return dir
}

func TestNewRequiresCoreTables(t *testing.T) {
	dir := t.TempDir()
	_, err := New(dir)
	assert.Error(t, err)
}

func TestNewRegistersOptionalTables(t *testing.T) {
	dir := seedStore(t)
	// WriteAll writes all five tables, empty ones included; remove the
	// two optional tables this test expects to be absent.
	require.NoError(t, os.Remove(columnar.TablePath(dir, columnar.CommentsTable)))
	require.NoError(t, os.Remove(columnar.TablePath(dir, columnar.ErrorsTable)))
	eng, err := New(dir)
	require.NoError(t, err)
	defer eng.Close()

	assert.True(t, eng.HasImports())
	assert.False(t, eng.HasComments())
	assert.False(t, eng.HasErrors())
}

func TestSearchExportedOnly(t *testing.T) {
	dir := seedStore(t)
	eng, err := New(dir)
	require.NoError(t, err)
	defer eng.Close()

	results, err := eng.Search(SearchOptions{Query: "hello", Exported: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "hello", results[0].Name)
}

func TestDepsAndDependents(t *testing.T) {
	dir := seedStore(t)
	eng, err := New(dir)
	require.NoError(t, err)
	defer eng.Close()

	deps, err := eng.Deps("main.go")
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "fmt", deps[0].ModuleSpecifier)

	dependents, err := eng.Dependents("fmt.go")
	require.NoError(t, err)
	require.Len(t, dependents, 1)
	assert.Equal(t, "main.go", dependents[0].SourceFile)
}

func TestExecuteSQLRawPassthrough(t *testing.T) {
	dir := seedStore(t)
	eng, err := New(dir)
	require.NoError(t, err)
	defer eng.Close()

	rs, err := eng.ExecuteSQL("SELECT COUNT(*) FROM files")
	require.NoError(t, err)
	require.Len(t, rs.Rows, 1)
	assert.Equal(t, int64(2), rs.Rows[0][0])
}

func TestQueryCachesIdenticalStatements(t *testing.T) {
	dir := seedStore(t)
	eng, err := New(dir)
	require.NoError(t, err)
	defer eng.Close()

	const stmt = "SELECT COUNT(*) FROM symbols"

	first, err := eng.ExecuteSQL(stmt)
	require.NoError(t, err)

	_, ok := eng.stmtCache.Get(stmt)
	require.True(t, ok, "identical statement text should populate the cache")

	second, err := eng.ExecuteSQL(stmt)
	require.NoError(t, err)
	assert.Equal(t, first.Rows, second.Rows)
}
