package query

import (
	"github.com/dolthub/go-mysql-server/sql"
	"github.com/dolthub/go-mysql-server/sql/types"

	"github.com/codelens/codelens/internal/model"
)

const (
	filesTableName    = "files"
	symbolsTableName  = "symbols"
	importsTableName  = "imports"
	commentsTableName = "comments"
	errorsTableName   = "errors"
)

func col(name string, t sql.Type, nullable bool, source string) *sql.Column {
	return &sql.Column{Name: name, Type: t, Nullable: nullable, Source: source}
}

func filesSchema() sql.PrimaryKeySchema {
	return sql.NewPrimaryKeySchema(sql.Schema{
		col("path", types.Text, false, filesTableName),
		col("name", types.Text, false, filesTableName),
		col("extension", types.Text, false, filesTableName),
		col("language", types.Text, false, filesTableName),
		col("size_bytes", types.Int64, false, filesTableName),
		col("line_count", types.Int64, false, filesTableName),
	})
}

func symbolsSchema() sql.PrimaryKeySchema {
	return sql.NewPrimaryKeySchema(sql.Schema{
		col("name", types.Text, false, symbolsTableName),
		col("kind", types.Text, false, symbolsTableName),
		col("file_path", types.Text, false, symbolsTableName),
		col("start_line", types.Uint32, false, symbolsTableName),
		col("start_column", types.Uint32, false, symbolsTableName),
		col("end_line", types.Uint32, false, symbolsTableName),
		col("end_column", types.Uint32, false, symbolsTableName),
		col("is_exported", types.Boolean, false, symbolsTableName),
	})
}

func importsSchema() sql.PrimaryKeySchema {
	return sql.NewPrimaryKeySchema(sql.Schema{
		col("source_file", types.Text, false, importsTableName),
		col("module_specifier", types.Text, false, importsTableName),
		col("imported_name", types.Text, false, importsTableName),
		col("local_name", types.Text, false, importsTableName),
		col("kind", types.Text, false, importsTableName),
		col("is_type_only", types.Boolean, false, importsTableName),
		col("line", types.Uint32, false, importsTableName),
		col("is_external", types.Boolean, false, importsTableName),
	})
}

func commentsSchema() sql.PrimaryKeySchema {
	return sql.NewPrimaryKeySchema(sql.Schema{
		col("file_path", types.Text, false, commentsTableName),
		col("text", types.Text, false, commentsTableName),
		col("kind", types.Text, false, commentsTableName),
		col("start_line", types.Uint32, false, commentsTableName),
		col("end_line", types.Uint32, false, commentsTableName),
		col("associated_symbol", types.Text, true, commentsTableName),
		col("associated_symbol_kind", types.Text, true, commentsTableName),
	})
}

func errorsSchema() sql.PrimaryKeySchema {
	return sql.NewPrimaryKeySchema(sql.Schema{
		col("file_path", types.Text, false, errorsTableName),
		col("file_name", types.Text, false, errorsTableName),
		col("extension", types.Text, false, errorsTableName),
		col("language", types.Text, false, errorsTableName),
		col("error_type", types.Text, false, errorsTableName),
		col("error_message", types.Text, false, errorsTableName),
		col("size_bytes", types.Int64, false, errorsTableName),
	})
}

func fileRow(f model.File) sql.Row {
	return sql.NewRow(f.Path, f.Name, f.Extension, f.Language, f.SizeBytes, f.LineCount)
}

func symbolRow(s model.Symbol) sql.Row {
	return sql.NewRow(
		s.Name, string(s.Kind), s.FilePath,
		s.Location.StartLine, s.Location.StartColumn, s.Location.EndLine, s.Location.EndColumn,
		s.IsExported,
	)
}

func importRow(i model.Import) sql.Row {
	return sql.NewRow(
		i.SourceFile, i.ModuleSpecifier, i.ImportedName, i.LocalName,
		string(i.Kind), i.IsTypeOnly, i.Line, i.IsExternal,
	)
}

func commentRow(c model.Comment) sql.Row {
	var sym, symKind interface{}
	if c.AssociatedSymbol != "" {
		sym = c.AssociatedSymbol
		symKind = string(c.AssociatedSymbolKind)
	}
	return sql.NewRow(c.FilePath, c.Text, string(c.Kind), c.Location.StartLine, c.Location.EndLine, sym, symKind)
}

func errorRow(e model.Error) sql.Row {
	return sql.NewRow(e.FilePath, e.FileName, e.Extension, e.Language, string(e.ErrorType), e.ErrorMessage, e.SizeBytes)
}
