package columnar

import (
	"fmt"
	"os"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	preader "github.com/xitongsys/parquet-go/reader"

	"github.com/codelens/codelens/internal/model"
)

const readConcurrency = 4

// TableExists reports whether a table's file is present under dataDir —
// the optional-table probe the query engine needs for imports, comments,
// and errors — each registered only when its table is present.
func TableExists(dataDir, table string) bool {
	_, err := os.Stat(TablePath(dataDir, table))
	return err == nil
}

// legacyImportRow is the pre-is_external schema. ReadImports falls back
// to it and synthesizes is_external when a persisted imports
// table predates the column.
type legacyImportRow struct {
	SourceFile      string `parquet:"name=source_file, type=BYTE_ARRAY, convertedtype=UTF8"`
	ModuleSpecifier string `parquet:"name=module_specifier, type=BYTE_ARRAY, convertedtype=UTF8"`
	ImportedName    string `parquet:"name=imported_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	LocalName       string `parquet:"name=local_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Kind            string `parquet:"name=kind, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsTypeOnly      bool   `parquet:"name=is_type_only, type=BOOLEAN"`
	Line            int32  `parquet:"name=line, type=INT32"`
}

func ReadFiles(dataDir string) ([]model.File, error) {
	rows, err := readTable[fileRow](dataDir, FilesTable, new(fileRow))
	if err != nil {
		return nil, err
	}
	out := make([]model.File, len(rows))
	for i, r := range rows {
		out[i] = model.File{
			Path: r.Path, Name: r.Name, Extension: r.Extension,
			Language: r.Language, SizeBytes: r.SizeBytes, LineCount: r.LineCount,
		}
	}
	return out, nil
}

func ReadSymbols(dataDir string) ([]model.Symbol, error) {
	rows, err := readTable[symbolRow](dataDir, SymbolsTable, new(symbolRow))
	if err != nil {
		return nil, err
	}
	out := make([]model.Symbol, len(rows))
	for i, r := range rows {
		out[i] = model.Symbol{
			Name: r.Name, Kind: model.SymbolKind(r.Kind), FilePath: r.FilePath,
			Location: model.Location{
				StartLine: uint32(r.StartLine), StartColumn: uint32(r.StartColumn),
				EndLine: uint32(r.EndLine), EndColumn: uint32(r.EndColumn),
			},
			IsExported: r.IsExported,
		}
	}
	return out, nil
}

// ReadImports reads the imports table, synthesizing is_external from
// module_specifier via the TS-style rule when the persisted schema
// predates that column.
func ReadImports(dataDir string) ([]model.Import, error) {
	rows, err := readTable[importRow](dataDir, ImportsTable, new(importRow))
	if err == nil {
		out := make([]model.Import, len(rows))
		for i, r := range rows {
			out[i] = model.Import{
				SourceFile: r.SourceFile, ModuleSpecifier: r.ModuleSpecifier,
				ImportedName: r.ImportedName, LocalName: r.LocalName,
				Kind: model.ImportKind(r.Kind), IsTypeOnly: r.IsTypeOnly,
				Line: uint32(r.Line), IsExternal: r.IsExternal,
			}
		}
		return out, nil
	}

	legacy, legacyErr := readTable[legacyImportRow](dataDir, ImportsTable, new(legacyImportRow))
	if legacyErr != nil {
		return nil, err
	}
	out := make([]model.Import, len(legacy))
	for i, r := range legacy {
		out[i] = model.Import{
			SourceFile: r.SourceFile, ModuleSpecifier: r.ModuleSpecifier,
			ImportedName: r.ImportedName, LocalName: r.LocalName,
			Kind: model.ImportKind(r.Kind), IsTypeOnly: r.IsTypeOnly,
			Line:       uint32(r.Line),
			IsExternal: synthesizeIsExternal(r.ModuleSpecifier),
		}
	}
	return out, nil
}

func synthesizeIsExternal(specifier string) bool {
	return !strings.HasPrefix(specifier, ".") && !strings.HasPrefix(specifier, "#")
}

func ReadComments(dataDir string) ([]model.Comment, error) {
	rows, err := readTable[commentRow](dataDir, CommentsTable, new(commentRow))
	if err != nil {
		return nil, err
	}
	out := make([]model.Comment, len(rows))
	for i, r := range rows {
		c := model.Comment{
			FilePath: r.FilePath, Text: r.Text, Kind: model.CommentKind(r.Kind),
			Location: model.Location{
				StartLine: uint32(r.StartLine), StartColumn: uint32(r.StartColumn),
				EndLine: uint32(r.EndLine), EndColumn: uint32(r.EndColumn),
			},
		}
		if r.AssociatedSymbol != nil {
			c.AssociatedSymbol = *r.AssociatedSymbol
		}
		if r.AssociatedSymbolKind != nil {
			c.AssociatedSymbolKind = model.SymbolKind(*r.AssociatedSymbolKind)
		}
		out[i] = c
	}
	return out, nil
}

func ReadErrors(dataDir string) ([]model.Error, error) {
	rows, err := readTable[errorRow](dataDir, ErrorsTable, new(errorRow))
	if err != nil {
		return nil, err
	}
	out := make([]model.Error, len(rows))
	for i, r := range rows {
		out[i] = model.Error{
			FilePath: r.FilePath, FileName: r.FileName, Extension: r.Extension,
			Language: r.Language, ErrorType: model.ErrorType(r.ErrorType),
			ErrorMessage: r.ErrorMessage, SizeBytes: r.SizeBytes,
		}
	}
	return out, nil
}

func readTable[T any](dataDir, table string, rowType interface{}) ([]T, error) {
	path := TablePath(dataDir, table)

	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening table file %s: %w", path, err)
	}
	defer fr.Close()

	pr, err := preader.NewParquetReader(fr, rowType, readConcurrency)
	if err != nil {
		return nil, fmt.Errorf("reading schema for %s: %w", table, err)
	}
	defer pr.ReadStop()

	rows := make([]T, pr.GetNumRows())
	if err := pr.Read(&rows); err != nil {
		return nil, fmt.Errorf("reading rows from %s: %w", table, err)
	}
	return rows, nil
}
