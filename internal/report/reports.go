package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/codelens/codelens/internal/query"
)

func b(v bool) string { return strconv.FormatBool(v) }
func i(v int64) string { return strconv.FormatInt(v, 10) }
func u(v uint32) string { return strconv.FormatUint(uint64(v), 10) }

// Search renders the search report.
func Search(eng *query.Engine, opts query.SearchOptions) (Table, error) {
	rows, err := eng.Search(opts)
	if err != nil {
		return Table{}, err
	}
	t := Table{Columns: []string{"name", "kind", "file_path", "start_line", "end_line", "is_exported"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Name, r.Kind, r.FilePath, u(r.StartLine), u(r.EndLine), b(r.IsExported)})
	}
	return t, nil
}

// Outline renders the outline report for one file.
func Outline(eng *query.Engine, filePath string) (Table, error) {
	outline, err := eng.Outline(filePath)
	if err != nil {
		return Table{}, err
	}
	t := Table{Columns: []string{"section", "name", "kind", "detail"}}
	t.Rows = append(t.Rows, []string{"language", outline.Language, "", ""})
	for _, imp := range outline.Imports {
		t.Rows = append(t.Rows, []string{"import", imp.ModuleSpecifier, imp.Kind, strings.Join(imp.Names, ", ")})
	}
	for _, s := range outline.Symbols {
		t.Rows = append(t.Rows, []string{"symbol", s.Name, s.Kind, fmt.Sprintf("%d-%d exported=%v", s.StartLine, s.EndLine, s.IsExported)})
	}
	return t, nil
}

// Files renders the files report.
func Files(eng *query.Engine, opts query.FilesOptions) (Table, error) {
	rows, err := eng.Files(opts)
	if err != nil {
		return Table{}, err
	}
	t := Table{Columns: []string{"path", "language", "size_bytes", "line_count", "import_count", "dependent_count"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Path, r.Language, i(r.SizeBytes), i(r.LineCount), i(r.ImportCount), i(r.DependentCount)})
	}
	return t, nil
}

// Deps renders the deps report.
func Deps(eng *query.Engine, filePath string) (Table, error) {
	rows, err := eng.Deps(filePath)
	if err != nil {
		return Table{}, err
	}
	return importsTable(rows), nil
}

// Dependents renders the dependents report.
func Dependents(eng *query.Engine, filePath string) (Table, error) {
	rows, err := eng.Dependents(filePath)
	if err != nil {
		return Table{}, err
	}
	return importsTable(rows), nil
}

// Callers renders the callers report.
func Callers(eng *query.Engine, name string, limit int) (Table, error) {
	rows, err := eng.Callers(name, limit)
	if err != nil {
		return Table{}, err
	}
	return importsTable(rows), nil
}

// Imports renders the imports report.
func Imports(eng *query.Engine, opts query.ImportsOptions) (Table, error) {
	rows, err := eng.Imports(opts)
	if err != nil {
		return Table{}, err
	}
	return importsTable(rows), nil
}

func importsTable(rows []query.ImportRow) Table {
	t := Table{Columns: []string{"source_file", "module_specifier", "imported_name", "local_name", "kind", "is_type_only", "line", "is_external"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.SourceFile, r.ModuleSpecifier, r.ImportedName, r.LocalName, r.Kind, b(r.IsTypeOnly), u(r.Line), b(r.IsExternal),
		})
	}
	return t
}

// Comments renders the comments report.
func Comments(eng *query.Engine, opts query.CommentsOptions) (Table, error) {
	rows, err := eng.Comments(opts)
	if err != nil {
		return Table{}, err
	}
	t := Table{Columns: []string{"file_path", "kind", "start_line", "end_line", "associated_symbol", "associated_symbol_kind", "text"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.FilePath, r.Kind, u(r.StartLine), u(r.EndLine), r.AssociatedSymbol, r.AssociatedSymbolKind, r.Text})
	}
	return t, nil
}

// Errors renders the errors report.
func Errors(eng *query.Engine, opts query.ErrorsOptions) (Table, error) {
	rows, err := eng.Errors(opts)
	if err != nil {
		return Table{}, err
	}
	t := Table{Columns: []string{"file_path", "language", "error_type", "error_message", "size_bytes"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.FilePath, r.Language, r.ErrorType, r.ErrorMessage, i(r.SizeBytes)})
	}
	return t, nil
}

// Query renders a raw SQL passthrough.
func Query(eng *query.Engine, sqlText string) (Table, error) {
	rs, err := eng.ExecuteSQL(sqlText)
	if err != nil {
		return Table{}, err
	}
	t := Table{Columns: rs.Columns}
	for _, row := range rs.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cellString(v)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

func cellString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// ReadFile reads filePath from sourceRoot (outside the columnar store,
// reading straight from source) and returns the [startLine, endLine] range,
// each line prefixed with its 1-based number. startLine/endLine are
// 1-based and inclusive; 0 means "from the start"/"to the end".
func ReadFile(sourceRoot, filePath string, startLine, endLine int) (string, error) {
	return readFileLines(sourceRoot, filePath, startLine, endLine)
}
