package query

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dolthub/go-mysql-server/sql"
)

// ResultSet is the typed-cell row-set execute_sql returns: every cell is
// one of nil, bool, int64, float64, string, or a blob descriptor string;
// anything else the runtime produces becomes nil.
type ResultSet struct {
	Columns []string
	Rows    [][]interface{}
}

func (e *Engine) query(text string) (sql.Schema, []sql.Row, error) {
	if cached, ok := e.stmtCache.Get(text); ok {
		return cached.schema, cached.rows, nil
	}

	schema, iter, err := e.engine.Query(e.ctx, text)
	if err != nil {
		return nil, nil, err
	}
	rows, err := drainRows(e.ctx, iter)
	if err != nil {
		return nil, nil, err
	}

	e.stmtCache.Add(text, cachedResult{schema: schema, rows: rows})
	return schema, rows, nil
}

func drainRows(ctx *sql.Context, iter sql.RowIter) ([]sql.Row, error) {
	var rows []sql.Row
	for {
		row, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = iter.Close(ctx)
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, iter.Close(ctx)
}

func normalizeCell(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case bool, string:
		return t
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return toInt64(t)
	case float32, float64:
		return toFloat64(t)
	case []byte:
		return fmt.Sprintf("blob(%d bytes)", len(t))
	default:
		return nil
	}
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	}
	return 0
}

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// ExecuteSQL is the raw passthrough: arbitrary SQL against the
// registered views, typed-cell result.
func (e *Engine) ExecuteSQL(text string) (*ResultSet, error) {
	schema, rows, err := e.query(text)
	if err != nil {
		return nil, err
	}
	cols := make([]string, len(schema))
	for i, c := range schema {
		cols[i] = c.Name
	}
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		cells := make([]interface{}, len(r))
		for j, v := range r {
			cells[j] = normalizeCell(v)
		}
		out[i] = cells
	}
	return &ResultSet{Columns: cols, Rows: out}, nil
}

// SymbolRow is one symbols-table row as surfaced to reports.
type SymbolRow struct {
	Name       string
	Kind       string
	FilePath   string
	StartLine  uint32
	EndLine    uint32
	IsExported bool
}

// FileRow is one files-table row, optionally enriched with import-graph
// aggregates when the imports table is present.
type FileRow struct {
	Path           string
	Name           string
	Extension      string
	Language       string
	SizeBytes      int64
	LineCount      int64
	ImportCount    int64
	DependentCount int64
}

// ImportRow is one imports-table row.
type ImportRow struct {
	SourceFile      string
	ModuleSpecifier string
	ImportedName    string
	LocalName       string
	Kind            string
	IsTypeOnly      bool
	Line            uint32
	IsExternal      bool
}

// CommentRow is one comments-table row.
type CommentRow struct {
	FilePath             string
	Text                 string
	Kind                 string
	StartLine            uint32
	EndLine              uint32
	AssociatedSymbol     string
	AssociatedSymbolKind string
}

// ErrorRow is one errors-table row.
type ErrorRow struct {
	FilePath     string
	FileName     string
	Extension    string
	Language     string
	ErrorType    string
	ErrorMessage string
	SizeBytes    int64
}

// GlobalSummary is the (a) section of the overview report.
type GlobalSummary struct {
	TotalFiles      int64
	TotalLines      int64
	TotalSymbols    int64
	FilesByLanguage map[string]int64
}

// GlobalSummary computes total file/line/symbol counts and per-language
// file counts.
func (e *Engine) GlobalSummary() (*GlobalSummary, error) {
	_, rows, err := e.query(`SELECT COUNT(*), COALESCE(SUM(line_count), 0) FROM files`)
	if err != nil {
		return nil, err
	}
	summary := &GlobalSummary{FilesByLanguage: map[string]int64{}}
	if len(rows) == 1 {
		summary.TotalFiles = toInt64(rows[0][0])
		summary.TotalLines = toInt64(rows[0][1])
	}

	_, symRows, err := e.query(`SELECT COUNT(*) FROM symbols`)
	if err != nil {
		return nil, err
	}
	if len(symRows) == 1 {
		summary.TotalSymbols = toInt64(symRows[0][0])
	}

	_, langRows, err := e.query(`SELECT language, COUNT(*) FROM files GROUP BY language`)
	if err != nil {
		return nil, err
	}
	for _, r := range langRows {
		lang, _ := r[0].(string)
		summary.FilesByLanguage[lang] = toInt64(r[1])
	}
	return summary, nil
}

// AllFiles returns every files-table row with no filters, for module-tree
// construction in the overview report.
func (e *Engine) AllFiles() ([]FileRow, error) {
	return e.Files(FilesOptions{})
}

// AllSymbols returns every symbols-table row, for API-surface grouping
// and largest-symbol ranking in the overview report.
func (e *Engine) AllSymbols() ([]SymbolRow, error) {
	_, rows, err := e.query(`SELECT name, kind, file_path, start_line, end_line, is_exported FROM symbols`)
	if err != nil {
		return nil, err
	}
	out := make([]SymbolRow, len(rows))
	for i, r := range rows {
		out[i] = SymbolRow{
			Name: str(r[0]), Kind: str(r[1]), FilePath: str(r[2]),
			StartLine: uint32(toInt64(r[3])), EndLine: uint32(toInt64(r[4])),
			IsExported: boolOf(r[5]),
		}
	}
	return out, nil
}

// AllImports returns every imports-table row, for the dependency-summary
// section of the overview report. Returns nil, nil when no imports
// table is registered.
func (e *Engine) AllImports() ([]ImportRow, error) {
	if !e.hasImports {
		return nil, nil
	}
	return e.Imports(ImportsOptions{})
}

// SearchOptions configures the search report.
type SearchOptions struct {
	Query      string
	Kind       string
	Exported   bool
	Limit      int
	Offset     int
}

// Search performs a case-insensitive substring match over symbol names,
// ordered (exact-match first, internal-usage desc, total-usage desc,
// name-length, name) — usage counts come from the imports table when
// present and are zero otherwise, which degrades the ordering to
// (exact-match, name-length, name) gracefully per invariant 7.
func (e *Engine) Search(opts SearchOptions) ([]SymbolRow, error) {
	var b strings.Builder
	b.WriteString(`SELECT name, kind, file_path, start_line, end_line, is_exported FROM symbols WHERE LOWER(name) LIKE `)
	b.WriteString(quote("%" + strings.ToLower(opts.Query) + "%"))
	if opts.Kind != "" {
		b.WriteString(" AND kind = ")
		b.WriteString(quote(opts.Kind))
	}
	if opts.Exported {
		b.WriteString(" AND is_exported = true")
	}

	_, rows, err := e.query(b.String())
	if err != nil {
		return nil, err
	}

	usage := map[string]int{}
	internalUsage := map[string]int{}
	if e.hasImports {
		imports, err := e.Imports(ImportsOptions{})
		if err == nil {
			for _, imp := range imports {
				usage[imp.ImportedName]++
				if !imp.IsExternal {
					internalUsage[imp.ImportedName]++
				}
			}
		}
	}

	results := make([]SymbolRow, len(rows))
	for i, r := range rows {
		results[i] = SymbolRow{
			Name: str(r[0]), Kind: str(r[1]), FilePath: str(r[2]),
			StartLine: uint32(toInt64(r[3])), EndLine: uint32(toInt64(r[4])),
			IsExported: boolOf(r[5]),
		}
	}

	lowerQuery := strings.ToLower(opts.Query)
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		aExact := strings.ToLower(a.Name) == lowerQuery
		bExact := strings.ToLower(b.Name) == lowerQuery
		if aExact != bExact {
			return aExact
		}
		if internalUsage[a.Name] != internalUsage[b.Name] {
			return internalUsage[a.Name] > internalUsage[b.Name]
		}
		if usage[a.Name] != usage[b.Name] {
			return usage[a.Name] > usage[b.Name]
		}
		if len(a.Name) != len(b.Name) {
			return len(a.Name) < len(b.Name)
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.FilePath < b.FilePath
	})

	if opts.Offset > 0 && opts.Offset < len(results) {
		results = results[opts.Offset:]
	} else if opts.Offset >= len(results) {
		results = nil
	}
	if opts.Limit > 0 && opts.Limit < len(results) {
		results = results[:opts.Limit]
	}
	return results, nil
}

// OutlineImport is one module-grouped import entry in an outline report.
type OutlineImport struct {
	ModuleSpecifier string
	Kind            string
	Names           []string
}

// Outline is the per-file summary the outline report returns.
type Outline struct {
	Language string
	Imports  []OutlineImport
	Symbols  []SymbolRow
}

// Outline returns one file's language, grouped imports, and symbols
// ordered by start line.
func (e *Engine) Outline(filePath string) (*Outline, error) {
	_, langRows, err := e.query(`SELECT language FROM files WHERE path = ` + quote(filePath))
	if err != nil {
		return nil, err
	}
	out := &Outline{}
	if len(langRows) == 1 {
		out.Language = str(langRows[0][0])
	}

	_, symRows, err := e.query(fmt.Sprintf(
		`SELECT name, kind, file_path, start_line, end_line, is_exported FROM symbols WHERE file_path = %s ORDER BY start_line`,
		quote(filePath)))
	if err != nil {
		return nil, err
	}
	for _, r := range symRows {
		out.Symbols = append(out.Symbols, SymbolRow{
			Name: str(r[0]), Kind: str(r[1]), FilePath: str(r[2]),
			StartLine: uint32(toInt64(r[3])), EndLine: uint32(toInt64(r[4])),
			IsExported: boolOf(r[5]),
		})
	}

	if e.hasImports {
		_, impRows, err := e.query(fmt.Sprintf(
			`SELECT module_specifier, kind, imported_name FROM imports WHERE source_file = %s ORDER BY module_specifier, kind, imported_name`,
			quote(filePath)))
		if err != nil {
			return nil, err
		}
		grouped := map[string]*OutlineImport{}
		var order []string
		for _, r := range impRows {
			module, kind, name := str(r[0]), str(r[1]), str(r[2])
			key := module + "\x00" + kind
			entry, ok := grouped[key]
			if !ok {
				entry = &OutlineImport{ModuleSpecifier: module, Kind: kind}
				grouped[key] = entry
				order = append(order, key)
			}
			entry.Names = append(entry.Names, name)
		}
		for _, key := range order {
			out.Imports = append(out.Imports, *grouped[key])
		}
	}

	return out, nil
}

// FilesOptions filters and sorts the files report.
type FilesOptions struct {
	Language  string
	Directory string
	Limit     int
	Offset    int
	Sort      string // path | lines | size | imports | dependents
}

// Files lists files with optional language/directory filters, enriched
// with import_count and dependent_count when the imports table exists.
func (e *Engine) Files(opts FilesOptions) ([]FileRow, error) {
	var b strings.Builder
	b.WriteString(`SELECT path, name, extension, language, size_bytes, line_count FROM files WHERE 1=1`)
	if opts.Language != "" {
		b.WriteString(" AND language = ")
		b.WriteString(quote(opts.Language))
	}
	if opts.Directory != "" {
		b.WriteString(" AND path LIKE ")
		b.WriteString(quote(strings.TrimSuffix(opts.Directory, "/") + "/%"))
	}

	_, rows, err := e.query(b.String())
	if err != nil {
		return nil, err
	}

	out := make([]FileRow, len(rows))
	for i, r := range rows {
		out[i] = FileRow{
			Path: str(r[0]), Name: str(r[1]), Extension: str(r[2]), Language: str(r[3]),
			SizeBytes: toInt64(r[4]), LineCount: toInt64(r[5]),
		}
	}

	if e.hasImports {
		importCount := map[string]int64{}
		dependentCount := map[string]int64{}
		imports, err := e.Imports(ImportsOptions{})
		if err == nil {
			for _, imp := range imports {
				importCount[imp.SourceFile]++
				if !imp.IsExternal {
					dependentCount[imp.ModuleSpecifier]++
				}
			}
		}
		for i := range out {
			out[i].ImportCount = importCount[out[i].Path]
			stem := strings.TrimSuffix(out[i].Path, out[i].Extension)
			out[i].DependentCount = dependentCount[stem]
		}
	}

	sortFiles(out, opts.Sort)

	if opts.Offset > 0 && opts.Offset < len(out) {
		out = out[opts.Offset:]
	} else if opts.Offset >= len(out) {
		out = nil
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func sortFiles(files []FileRow, by string) {
	switch by {
	case "lines":
		sort.SliceStable(files, func(i, j int) bool { return files[i].LineCount > files[j].LineCount })
	case "size":
		sort.SliceStable(files, func(i, j int) bool { return files[i].SizeBytes > files[j].SizeBytes })
	case "imports":
		sort.SliceStable(files, func(i, j int) bool { return files[i].ImportCount > files[j].ImportCount })
	case "dependents":
		sort.SliceStable(files, func(i, j int) bool { return files[i].DependentCount > files[j].DependentCount })
	default:
		sort.SliceStable(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	}
}

// Deps returns all imports whose source_file equals filePath, ordered
// by line.
func (e *Engine) Deps(filePath string) ([]ImportRow, error) {
	if !e.hasImports {
		return nil, nil
	}
	return e.queryImports(fmt.Sprintf(
		`SELECT source_file, module_specifier, imported_name, local_name, kind, is_type_only, line, is_external FROM imports WHERE source_file = %s ORDER BY line`,
		quote(filePath)))
}

// Dependents returns all imports whose module_specifier contains the
// stem (extension stripped) of filePath, ordered by source_file, line.
func (e *Engine) Dependents(filePath string) ([]ImportRow, error) {
	if !e.hasImports {
		return nil, nil
	}
	ext := ""
	if idx := strings.LastIndex(filePath, "."); idx >= 0 {
		ext = filePath[idx:]
	}
	stem := strings.TrimSuffix(filePath, ext)
	return e.queryImports(fmt.Sprintf(
		`SELECT source_file, module_specifier, imported_name, local_name, kind, is_type_only, line, is_external FROM imports WHERE module_specifier LIKE %s ORDER BY source_file, line`,
		quote("%"+stem+"%")))
}

// Callers returns imports whose imported_name case-insensitive-contains
// name, exact matches and internal imports sorted first, capped by limit.
func (e *Engine) Callers(name string, limit int) ([]ImportRow, error) {
	if !e.hasImports {
		return nil, nil
	}
	rows, err := e.queryImports(fmt.Sprintf(
		`SELECT source_file, module_specifier, imported_name, local_name, kind, is_type_only, line, is_external FROM imports WHERE LOWER(imported_name) LIKE %s`,
		quote("%"+strings.ToLower(name)+"%")))
	if err != nil {
		return nil, err
	}
	lowerName := strings.ToLower(name)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		aExact := strings.ToLower(a.ImportedName) == lowerName
		bExact := strings.ToLower(b.ImportedName) == lowerName
		if aExact != bExact {
			return aExact
		}
		if a.IsExternal != b.IsExternal {
			return !a.IsExternal
		}
		return false
	})
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

// ImportsOptions filters the imports report.
type ImportsOptions struct {
	Module      string
	Kind        string
	FilePrefix  string
	TypeOnly    bool
	TypeOnlySet bool
	External    bool
	Internal    bool
	Limit       int
}

// Imports applies an arbitrary filter combination over the imports
// table.
func (e *Engine) Imports(opts ImportsOptions) ([]ImportRow, error) {
	if !e.hasImports {
		return nil, nil
	}
	var b strings.Builder
	b.WriteString(`SELECT source_file, module_specifier, imported_name, local_name, kind, is_type_only, line, is_external FROM imports WHERE 1=1`)
	if opts.Module != "" {
		b.WriteString(" AND module_specifier LIKE ")
		b.WriteString(quote("%" + opts.Module + "%"))
	}
	if opts.Kind != "" {
		b.WriteString(" AND kind = ")
		b.WriteString(quote(opts.Kind))
	}
	if opts.FilePrefix != "" {
		b.WriteString(" AND source_file LIKE ")
		b.WriteString(quote(opts.FilePrefix + "%"))
	}
	if opts.TypeOnlySet {
		if opts.TypeOnly {
			b.WriteString(" AND is_type_only = true")
		} else {
			b.WriteString(" AND is_type_only = false")
		}
	}
	if opts.External {
		b.WriteString(" AND is_external = true")
	}
	if opts.Internal {
		b.WriteString(" AND is_external = false")
	}
	if opts.Limit > 0 {
		b.WriteString(fmt.Sprintf(" LIMIT %d", opts.Limit))
	}
	return e.queryImports(b.String())
}

func (e *Engine) queryImports(text string) ([]ImportRow, error) {
	_, rows, err := e.query(text)
	if err != nil {
		return nil, err
	}
	out := make([]ImportRow, len(rows))
	for i, r := range rows {
		out[i] = ImportRow{
			SourceFile: str(r[0]), ModuleSpecifier: str(r[1]), ImportedName: str(r[2]), LocalName: str(r[3]),
			Kind: str(r[4]), IsTypeOnly: boolOf(r[5]), Line: uint32(toInt64(r[6])), IsExternal: boolOf(r[7]),
		}
	}
	return out, nil
}

// CommentsOptions filters the comments report.
type CommentsOptions struct {
	File          string
	Kind          string
	Documented    bool
	DocumentedSet bool
	Symbol        string
	Limit         int
}

// Comments applies an arbitrary filter combination over the comments
// table.
func (e *Engine) Comments(opts CommentsOptions) ([]CommentRow, error) {
	if !e.hasComments {
		return nil, nil
	}
	var b strings.Builder
	b.WriteString(`SELECT file_path, text, kind, start_line, end_line, associated_symbol, associated_symbol_kind FROM comments WHERE 1=1`)
	if opts.File != "" {
		b.WriteString(" AND file_path = ")
		b.WriteString(quote(opts.File))
	}
	if opts.Kind != "" {
		b.WriteString(" AND kind = ")
		b.WriteString(quote(opts.Kind))
	}
	if opts.DocumentedSet {
		if opts.Documented {
			b.WriteString(" AND associated_symbol IS NOT NULL")
		} else {
			b.WriteString(" AND associated_symbol IS NULL")
		}
	}
	if opts.Symbol != "" {
		b.WriteString(" AND associated_symbol LIKE ")
		b.WriteString(quote("%" + opts.Symbol + "%"))
	}
	if opts.Limit > 0 {
		b.WriteString(fmt.Sprintf(" LIMIT %d", opts.Limit))
	}

	_, rows, err := e.query(b.String())
	if err != nil {
		return nil, err
	}
	out := make([]CommentRow, len(rows))
	for i, r := range rows {
		out[i] = CommentRow{
			FilePath: str(r[0]), Text: str(r[1]), Kind: str(r[2]),
			StartLine: uint32(toInt64(r[3])), EndLine: uint32(toInt64(r[4])),
			AssociatedSymbol: str(r[5]), AssociatedSymbolKind: str(r[6]),
		}
	}
	return out, nil
}

// ErrorsOptions filters the errors report.
type ErrorsOptions struct {
	ErrorType string
	Language  string
	Limit     int
}

// Errors applies a filter over the errors table.
func (e *Engine) Errors(opts ErrorsOptions) ([]ErrorRow, error) {
	if !e.hasErrors {
		return nil, nil
	}
	var b strings.Builder
	b.WriteString(`SELECT file_path, file_name, extension, language, error_type, error_message, size_bytes FROM errors WHERE 1=1`)
	if opts.ErrorType != "" {
		b.WriteString(" AND error_type = ")
		b.WriteString(quote(opts.ErrorType))
	}
	if opts.Language != "" {
		b.WriteString(" AND language = ")
		b.WriteString(quote(opts.Language))
	}
	if opts.Limit > 0 {
		b.WriteString(fmt.Sprintf(" LIMIT %d", opts.Limit))
	}

	_, rows, err := e.query(b.String())
	if err != nil {
		return nil, err
	}
	out := make([]ErrorRow, len(rows))
	for i, r := range rows {
		out[i] = ErrorRow{
			FilePath: str(r[0]), FileName: str(r[1]), Extension: str(r[2]), Language: str(r[3]),
			ErrorType: str(r[4]), ErrorMessage: str(r[5]), SizeBytes: toInt64(r[6]),
		}
	}
	return out, nil
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func boolOf(v interface{}) bool {
	b, _ := v.(bool)
	return b
}
