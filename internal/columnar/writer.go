package columnar

import (
	"fmt"
	"os"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/codelens/codelens/internal/model"
)

// writeConcurrency is the parquet-go writer's internal goroutine count
// for row-group encoding; it is independent of (and much smaller than)
// the extraction worker-pool size, since encoding one table is fast
// relative to parsing every source file.
const writeConcurrency = 4

// WriteAll writes all five tables under dataDir, creating the directory
// if missing. Any failure aborts — partial output is left for the user
// to clean up, per the write-error policy.
func WriteAll(dataDir string, files []model.File, symbols []model.Symbol, imports []model.Import, comments []model.Comment, errs []model.Error) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dataDir, err)
	}
	if err := writeFiles(dataDir, files); err != nil {
		return err
	}
	if err := writeSymbols(dataDir, symbols); err != nil {
		return err
	}
	if err := writeImports(dataDir, imports); err != nil {
		return err
	}
	if err := writeComments(dataDir, comments); err != nil {
		return err
	}
	if err := writeErrors(dataDir, errs); err != nil {
		return err
	}
	return nil
}

func writeFiles(dataDir string, rows []model.File) error {
	converted := make([]fileRow, len(rows))
	for i, r := range rows {
		converted[i] = fileRow{
			Path: r.Path, Name: r.Name, Extension: r.Extension,
			Language: r.Language, SizeBytes: r.SizeBytes, LineCount: r.LineCount,
		}
	}
	return writeTable(dataDir, FilesTable, new(fileRow), toWritable(converted))
}

func writeSymbols(dataDir string, rows []model.Symbol) error {
	converted := make([]symbolRow, len(rows))
	for i, r := range rows {
		converted[i] = symbolRow{
			Name: r.Name, Kind: string(r.Kind), FilePath: r.FilePath,
			StartLine: int32(r.Location.StartLine), StartColumn: int32(r.Location.StartColumn),
			EndLine: int32(r.Location.EndLine), EndColumn: int32(r.Location.EndColumn),
			IsExported: r.IsExported,
		}
	}
	return writeTable(dataDir, SymbolsTable, new(symbolRow), toWritable(converted))
}

func writeImports(dataDir string, rows []model.Import) error {
	converted := make([]importRow, len(rows))
	for i, r := range rows {
		converted[i] = importRow{
			SourceFile: r.SourceFile, ModuleSpecifier: r.ModuleSpecifier,
			ImportedName: r.ImportedName, LocalName: r.LocalName,
			Kind: string(r.Kind), IsTypeOnly: r.IsTypeOnly,
			Line: int32(r.Line), IsExternal: r.IsExternal,
		}
	}
	return writeTable(dataDir, ImportsTable, new(importRow), toWritable(converted))
}

func writeComments(dataDir string, rows []model.Comment) error {
	converted := make([]commentRow, len(rows))
	for i, r := range rows {
		row := commentRow{
			FilePath: r.FilePath, Text: r.Text, Kind: string(r.Kind),
			StartLine: int32(r.Location.StartLine), StartColumn: int32(r.Location.StartColumn),
			EndLine: int32(r.Location.EndLine), EndColumn: int32(r.Location.EndColumn),
		}
		if r.AssociatedSymbol != "" {
			sym := r.AssociatedSymbol
			row.AssociatedSymbol = &sym
		}
		if r.AssociatedSymbolKind != "" {
			kind := string(r.AssociatedSymbolKind)
			row.AssociatedSymbolKind = &kind
		}
		converted[i] = row
	}
	return writeTable(dataDir, CommentsTable, new(commentRow), toWritable(converted))
}

func writeErrors(dataDir string, rows []model.Error) error {
	converted := make([]errorRow, len(rows))
	for i, r := range rows {
		converted[i] = errorRow{
			FilePath: r.FilePath, FileName: r.FileName, Extension: r.Extension,
			Language: r.Language, ErrorType: string(r.ErrorType),
			ErrorMessage: r.ErrorMessage, SizeBytes: r.SizeBytes,
		}
	}
	return writeTable(dataDir, ErrorsTable, new(errorRow), toWritable(converted))
}

// toWritable turns a typed slice into []interface{}, what parquet-go's
// writer.Write expects one row at a time.
func toWritable[T any](rows []T) []interface{} {
	out := make([]interface{}, len(rows))
	for i := range rows {
		out[i] = rows[i]
	}
	return out
}

// writeTable writes one table. An empty rows slice still produces a
// valid file with zero rows and the declared schema, since the schema
// comes from rowType, not from the data.
func writeTable(dataDir, table string, rowType interface{}, rows []interface{}) error {
	path := TablePath(dataDir, table)

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("creating table file %s: %w", path, err)
	}

	pw, err := writer.NewParquetWriter(fw, rowType, writeConcurrency)
	if err != nil {
		fw.Close()
		return fmt.Errorf("initializing writer for %s: %w", table, err)
	}
	pw.RowGroupSize = 64 * 1024 * 1024
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			pw.WriteStop()
			fw.Close()
			return fmt.Errorf("writing row to %s: %w", table, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("finalizing table %s: %w", table, err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("closing table file %s: %w", path, err)
	}
	return nil
}
