// Package query mounts the columnar store in an embedded analytical SQL
// runtime (dolthub/go-mysql-server over its in-memory provider) and
// exposes the typed report queries the formatters need, plus a raw SQL
// passthrough.
package query

import (
	"context"
	"fmt"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/sql"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/codelens/codelens/internal/columnar"
	"github.com/codelens/codelens/internal/model"
)

const dbName = "codelens"

// statementCacheSize bounds the statement-result LRU; report queries
// are parameterized strings re-issued across a CLI session's lifetime,
// so a small cache covers the repeated shapes without growing unbounded.
const statementCacheSize = 64

// Engine is a read-only handle onto one parsed tree's columnar store.
// It holds a single connection to the embedded SQL runtime for its
// entire lifetime, per the resource policy: no per-query connection
// churn.
type Engine struct {
	dataDir     string
	engine      *sqle.Engine
	ctx         *sql.Context
	hasImports  bool
	hasComments bool
	hasErrors   bool
	stmtCache   *lru.Cache[string, cachedResult]
}

// cachedResult is one memoized (schema, rows) pair, keyed by the exact SQL
// text that produced it. The embedded tables never change across an
// Engine's lifetime, so an identical query string always yields an
// identical result and is safe to serve from cache.
type cachedResult struct {
	schema sql.Schema
	rows   []sql.Row
}

// New validates that the required tables exist under dataDir, registers
// every present table as a read-only view, and returns a ready Engine.
// files and symbols are mandatory; imports, comments, errors are
// registered iff present, per the backward-compatibility contract.
func New(dataDir string) (*Engine, error) {
	if !columnar.TableExists(dataDir, columnar.FilesTable) {
		return nil, fmt.Errorf("required table %q missing under %s: re-run parse", columnar.FilesTable, dataDir)
	}
	if !columnar.TableExists(dataDir, columnar.SymbolsTable) {
		return nil, fmt.Errorf("required table %q missing under %s: re-run parse", columnar.SymbolsTable, dataDir)
	}

	files, err := columnar.ReadFiles(dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading files table: %w", err)
	}
	symbols, err := columnar.ReadSymbols(dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading symbols table: %w", err)
	}

	db := memory.NewDatabase(dbName)

	filesTable := memory.NewTable(db, filesTableName, filesSchema(), nil)
	for _, f := range files {
		_ = filesTable.Insert(newContext(), fileRow(f))
	}
	db.AddTable(filesTableName, filesTable)

	symbolsTable := memory.NewTable(db, symbolsTableName, symbolsSchema(), nil)
	for _, s := range symbols {
		_ = symbolsTable.Insert(newContext(), symbolRow(s))
	}
	db.AddTable(symbolsTableName, symbolsTable)

	e := &Engine{dataDir: dataDir, stmtCache: mustLRU()}

	if columnar.TableExists(dataDir, columnar.ImportsTable) {
		imports, err := columnar.ReadImports(dataDir)
		if err != nil {
			return nil, fmt.Errorf("loading imports table: %w", err)
		}
		t := memory.NewTable(db, importsTableName, importsSchema(), nil)
		for _, imp := range imports {
			_ = t.Insert(newContext(), importRow(imp))
		}
		db.AddTable(importsTableName, t)
		e.hasImports = true
	}

	if columnar.TableExists(dataDir, columnar.CommentsTable) {
		comments, err := columnar.ReadComments(dataDir)
		if err != nil {
			return nil, fmt.Errorf("loading comments table: %w", err)
		}
		t := memory.NewTable(db, commentsTableName, commentsSchema(), nil)
		for _, c := range comments {
			_ = t.Insert(newContext(), commentRow(c))
		}
		db.AddTable(commentsTableName, t)
		e.hasComments = true
	}

	if columnar.TableExists(dataDir, columnar.ErrorsTable) {
		errs, err := columnar.ReadErrors(dataDir)
		if err != nil {
			return nil, fmt.Errorf("loading errors table: %w", err)
		}
		t := memory.NewTable(db, errorsTableName, errorsSchema(), nil)
		for _, er := range errs {
			_ = t.Insert(newContext(), errorRow(er))
		}
		db.AddTable(errorsTableName, t)
		e.hasErrors = true
	}

	provider := sql.NewDatabaseProvider(db)
	e.engine = sqle.NewDefault(provider)
	e.ctx = newContext()
	e.ctx.SetCurrentDatabase(dbName)

	return e, nil
}

// Close releases the engine's connection. The in-memory provider holds
// no external resources, but Close exists for symmetry with the
// resource policy ("acquired with scoped acquisition, closed on all
// exit paths") and a future on-disk provider.
func (e *Engine) Close() error {
	return nil
}

func (e *Engine) HasImports() bool  { return e.hasImports }
func (e *Engine) HasComments() bool { return e.hasComments }
func (e *Engine) HasErrors() bool   { return e.hasErrors }

func newContext() *sql.Context {
	return sql.NewContext(context.Background())
}

func mustLRU() *lru.Cache[string, cachedResult] {
	c, err := lru.New[string, cachedResult](statementCacheSize)
	if err != nil {
		panic(err) // only fails for a non-positive size, which is a programmer error
	}
	return c
}

// quote doubles embedded single quotes, the escaping rule every
// parameterized report query in this package uses.
func quote(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			out = append(out, '\'', '\'')
			continue
		}
		out = append(out, s[i])
	}
	out = append(out, '\'')
	return string(out)
}
