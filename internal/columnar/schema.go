// Package columnar implements the columnar writer and reader (component
// E): one write function per table, using xitongsys/parquet-go, with a
// schema exactly matching the data model. Row structs here are private
// to this package and carry parquet struct tags — the model package
// stays storage-format agnostic, converting at the read/write boundary.
package columnar

import "path/filepath"

// TableExt is the file extension every table is persisted under.
const TableExt = ".parquet"

const (
	FilesTable    = "files"
	SymbolsTable  = "symbols"
	ImportsTable  = "imports"
	CommentsTable = "comments"
	ErrorsTable   = "errors"
)

type fileRow struct {
	Path      string `parquet:"name=path, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name      string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Extension string `parquet:"name=extension, type=BYTE_ARRAY, convertedtype=UTF8"`
	Language  string `parquet:"name=language, type=BYTE_ARRAY, convertedtype=UTF8"`
	SizeBytes int64  `parquet:"name=size_bytes, type=INT64"`
	LineCount int64  `parquet:"name=line_count, type=INT64"`
}

type symbolRow struct {
	Name        string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Kind        string `parquet:"name=kind, type=BYTE_ARRAY, convertedtype=UTF8"`
	FilePath    string `parquet:"name=file_path, type=BYTE_ARRAY, convertedtype=UTF8"`
	StartLine   int32  `parquet:"name=start_line, type=INT32"`
	StartColumn int32  `parquet:"name=start_column, type=INT32"`
	EndLine     int32  `parquet:"name=end_line, type=INT32"`
	EndColumn   int32  `parquet:"name=end_column, type=INT32"`
	IsExported  bool   `parquet:"name=is_exported, type=BOOLEAN"`
}

type importRow struct {
	SourceFile      string `parquet:"name=source_file, type=BYTE_ARRAY, convertedtype=UTF8"`
	ModuleSpecifier string `parquet:"name=module_specifier, type=BYTE_ARRAY, convertedtype=UTF8"`
	ImportedName    string `parquet:"name=imported_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	LocalName       string `parquet:"name=local_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Kind            string `parquet:"name=kind, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsTypeOnly      bool   `parquet:"name=is_type_only, type=BOOLEAN"`
	Line            int32  `parquet:"name=line, type=INT32"`
	IsExternal      bool   `parquet:"name=is_external, type=BOOLEAN"`
}

type commentRow struct {
	FilePath             string  `parquet:"name=file_path, type=BYTE_ARRAY, convertedtype=UTF8"`
	Text                 string  `parquet:"name=text, type=BYTE_ARRAY, convertedtype=UTF8"`
	Kind                 string  `parquet:"name=kind, type=BYTE_ARRAY, convertedtype=UTF8"`
	StartLine            int32   `parquet:"name=start_line, type=INT32"`
	StartColumn          int32   `parquet:"name=start_column, type=INT32"`
	EndLine              int32   `parquet:"name=end_line, type=INT32"`
	EndColumn            int32   `parquet:"name=end_column, type=INT32"`
	AssociatedSymbol     *string `parquet:"name=associated_symbol, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	AssociatedSymbolKind *string `parquet:"name=associated_symbol_kind, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
}

type errorRow struct {
	FilePath     string `parquet:"name=file_path, type=BYTE_ARRAY, convertedtype=UTF8"`
	FileName     string `parquet:"name=file_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Extension    string `parquet:"name=extension, type=BYTE_ARRAY, convertedtype=UTF8"`
	Language     string `parquet:"name=language, type=BYTE_ARRAY, convertedtype=UTF8"`
	ErrorType    string `parquet:"name=error_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	ErrorMessage string `parquet:"name=error_message, type=BYTE_ARRAY, convertedtype=UTF8"`
	SizeBytes    int64  `parquet:"name=size_bytes, type=INT64"`
}

// TablePath returns the on-disk path for a table under dataDir.
func TablePath(dataDir, table string) string {
	return filepath.Join(dataDir, table+TableExt)
}
