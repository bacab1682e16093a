package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	ts_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	ts_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	ts_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	ts_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	ts_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ts_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ErrParserCreation and ErrParseFailure let callers (the parse
// coordinator) distinguish the two per-file failure categories it must
// record with different error_type values, via errors.Is.
var (
	ErrParserCreation = errors.New("parser creation failed")
	ErrParseFailure   = errors.New("parse produced no tree")
)

// ParserManager owns one lazily-created parser pool per language tag and
// hands out tree-sitter trees to callers, who own the returned Tree and
// must Close() it.
//
// Parser pools are created on first use; GetLanguagePointer (shared with
// the query manager, which compiles patterns against the same grammar
// pointers) never allocates a parser itself.
type ParserManager struct {
	pools  map[Tag]*parserPool
	mutex  sync.RWMutex
	logger *slog.Logger

	stats struct {
		parsersCreated int
		parsesCalled   int
	}
}

// NewParserManager creates a manager. logger may be nil.
func NewParserManager(logger *slog.Logger) *ParserManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParserManager{pools: make(map[Tag]*parserPool), logger: logger}
}

// Parse parses source under the given language tag, returning a tree the
// caller must Close().
func (pm *ParserManager) Parse(source []byte, tag Tag) (*ts.Tree, error) {
	if tag == Unsupported || tag == "" {
		return nil, fmt.Errorf("cannot parse unsupported language")
	}

	pm.mutex.Lock()
	pm.stats.parsesCalled++
	pm.mutex.Unlock()

	pool, err := pm.getOrCreatePool(tag)
	if err != nil {
		return nil, fmt.Errorf("failed to get pool for %s: %v: %w", tag, err, ErrParserCreation)
	}

	parser, err := pool.acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire parser: %v: %w", err, ErrParserCreation)
	}
	tree := parser.Parse(source, nil)
	pool.release(parser)

	if tree == nil {
		return nil, fmt.Errorf("parsing %s source: %w", tag, ErrParseFailure)
	}

	if tree.RootNode().HasError() {
		pm.logger.Debug("parse tree contains errors", "language", tag)
	}

	return tree, nil
}

// ParseFile detects the language from filePath's extension and parses.
func (pm *ParserManager) ParseFile(source []byte, filePath string) (*ts.Tree, Tag, error) {
	tag := DetectTag(filePath)
	if tag == Unsupported {
		return nil, tag, fmt.Errorf("unsupported file extension: %s", filePath)
	}
	tree, err := pm.Parse(source, tag)
	return tree, tag, err
}

// Close releases every parser pool. The manager is unusable afterward.
func (pm *ParserManager) Close() error {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	pm.logger.Info("closing parser manager",
		"parsers_created", pm.stats.parsersCreated,
		"parses_called", pm.stats.parsesCalled)

	for tag, pool := range pm.pools {
		if pool != nil {
			pool.close()
			pm.logger.Debug("closed parser pool", "language", tag)
		}
	}
	pm.pools = make(map[Tag]*parserPool)
	return nil
}

func (pm *ParserManager) getOrCreatePool(tag Tag) (*parserPool, error) {
	pm.mutex.RLock()
	pool, ok := pm.pools[tag]
	pm.mutex.RUnlock()
	if ok {
		return pool, nil
	}

	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	if pool, ok = pm.pools[tag]; ok {
		return pool, nil
	}

	langPtr, err := pm.GetLanguagePointer(tag)
	if err != nil {
		return nil, err
	}

	size := defaultPoolSize()
	pool = newParserPool(tag, langPtr, size, pm.logger)
	pm.pools[tag] = pool

	pm.logger.Debug("created parser pool", "language", tag, "max_size", size)
	return pool, nil
}

// GetLanguagePointer returns the tree-sitter grammar pointer for a tag.
// Shared with the query manager so symbol/import/comment patterns compile
// against the exact same grammar the parser uses.
func (pm *ParserManager) GetLanguagePointer(tag Tag) (unsafe.Pointer, error) {
	switch tag {
	case TypeScript:
		return ts_typescript.LanguageTypescript(), nil
	case TSX:
		return ts_typescript.LanguageTSX(), nil
	case JavaScript, JSX:
		return ts_javascript.Language(), nil
	case C:
		return ts_c.Language(), nil
	case Cpp:
		return ts_cpp.Language(), nil
	case CSharp:
		return ts_csharp.Language(), nil
	case Rust:
		return ts_rust.Language(), nil
	case Python:
		return ts_python.Language(), nil
	case Go:
		return ts_go.Language(), nil
	case Java:
		return ts_java.Language(), nil
	case PHP:
		return ts_php.LanguagePHP(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", tag)
	}
}

// Stats reports cumulative parser usage.
type Stats struct {
	ParsersCreated int
	ParsesCalled   int
}

// GetStats returns a snapshot of usage counters across all pools.
func (pm *ParserManager) GetStats() Stats {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	total := 0
	for _, pool := range pm.pools {
		total += pool.createdCount()
	}
	return Stats{ParsersCreated: total, ParsesCalled: pm.stats.parsesCalled}
}
