// Package extract implements the per-language extractors (component C):
// given a parsed tree, evaluate the three pattern bundles and emit
// normalized Symbol, Import, and Comment records with uniform semantics.
package extract

import (
	"fmt"
	"log/slog"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens/codelens/internal/lang"
	"github.com/codelens/codelens/internal/lang/queries"
	"github.com/codelens/codelens/internal/model"
)

// Extractor parses one file at a time and runs all three pattern bundles
// against the single resulting tree — the tree is parsed exactly once
// per file, regardless of how many fact streams are extracted from it.
type Extractor struct {
	parsers *lang.ParserManager
	queries *queries.Manager
	logger  *slog.Logger
}

// New builds an Extractor. logger may be nil.
func New(parsers *lang.ParserManager, qm *queries.Manager, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{parsers: parsers, queries: qm, logger: logger}
}

// Result is everything extracted from one file, plus the tag that was
// detected (needed by the coordinator to build the file's `language`
// column without re-detecting it).
type Result struct {
	Tag      lang.Tag
	Symbols  []model.Symbol
	Imports  []model.Import
	Comments []model.Comment
}

// ExtractFile parses source (already read off disk by the caller) and
// runs the symbol, import, and comment contracts against the resulting
// tree. The tree is closed before returning.
func (e *Extractor) ExtractFile(filePath string, source []byte) (*Result, error) {
	tag := lang.DetectTag(filePath)
	if tag == lang.Unsupported {
		return nil, fmt.Errorf("unsupported file extension: %s", filePath)
	}

	tree, err := e.parsers.Parse(source, tag)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	family := lang.FamilyOf(tag)

	symMatches, err := e.run(tree, tag, queries.BundleSymbols, source)
	if err != nil {
		return nil, fmt.Errorf("symbol query: %w", err)
	}
	impMatches, err := e.run(tree, tag, queries.BundleImports, source)
	if err != nil {
		return nil, fmt.Errorf("import query: %w", err)
	}
	comMatches, err := e.run(tree, tag, queries.BundleComments, source)
	if err != nil {
		return nil, fmt.Errorf("comment query: %w", err)
	}

	symbols := extractSymbols(family, symMatches, filePath, source)
	imports := extractImports(family, impMatches, filePath, source)
	comments := extractComments(family, comMatches, source, filePath, symMatches)

	e.logger.Debug("extracted file",
		"file", filePath, "language", tag,
		"symbols", len(symbols), "imports", len(imports), "comments", len(comments))

	return &Result{Tag: tag, Symbols: symbols, Imports: imports, Comments: comments}, nil
}

func (e *Extractor) run(tree *ts.Tree, tag lang.Tag, bundle queries.BundleType, source []byte) ([]queries.Match, error) {
	q, err := e.queries.GetQuery(tag, bundle)
	if err != nil {
		return nil, err
	}
	return e.queries.ExecuteQuery(tree, q, source)
}

func toModelLocation(l queries.Location) model.Location {
	return model.Location{
		StartLine:   l.StartLine,
		StartColumn: l.StartColumn,
		EndLine:     l.EndLine,
		EndColumn:   l.EndColumn,
	}
}
