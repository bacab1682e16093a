// Package queries compiles and caches the three pattern bundles per
// language tag (symbol, import, comment) and executes them against a
// parsed tree.
package queries

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens/codelens/internal/lang"
	"github.com/codelens/codelens/internal/lang/queries/comments"
	"github.com/codelens/codelens/internal/lang/queries/imports"
	"github.com/codelens/codelens/internal/lang/queries/symbols"
)

// BundleType identifies which of the three pattern bundles to compile.
type BundleType int

const (
	BundleSymbols BundleType = iota
	BundleImports
	BundleComments
)

func (b BundleType) String() string {
	switch b {
	case BundleSymbols:
		return "symbols"
	case BundleImports:
		return "imports"
	case BundleComments:
		return "comments"
	default:
		return "unknown"
	}
}

type bundleKey struct {
	tag    lang.Tag
	bundle BundleType
}

// Manager compiles and caches tree-sitter queries, one per (tag, bundle).
// Compilation happens once per run; the parse coordinator pre-compiles
// every bundle for every requested language before fanning out workers.
type Manager struct {
	parserManager *lang.ParserManager
	cache         map[bundleKey]*ts.Query
	mutex         sync.RWMutex
	logger        *slog.Logger
}

// NewManager creates a query manager bound to pm, used to resolve grammar
// pointers for compilation. logger may be nil.
func NewManager(pm *lang.ParserManager, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{parserManager: pm, cache: make(map[bundleKey]*ts.Query), logger: logger}
}

// GetQuery returns the compiled pattern bundle for tag, compiling and
// caching it on first use. Thread-safe.
func (m *Manager) GetQuery(tag lang.Tag, bundle BundleType) (*ts.Query, error) {
	key := bundleKey{tag: tag, bundle: bundle}

	m.mutex.RLock()
	q, ok := m.cache[key]
	m.mutex.RUnlock()
	if ok {
		return q, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	if q, ok = m.cache[key]; ok {
		return q, nil
	}

	source, err := bundleSource(tag, bundle)
	if err != nil {
		return nil, err
	}

	langPtr, err := m.parserManager.GetLanguagePointer(tag)
	if err != nil {
		return nil, fmt.Errorf("language pointer for %s: %w", tag, err)
	}

	q, qerr := ts.NewQuery(ts.NewLanguage(langPtr), source)
	if qerr != nil {
		return nil, fmt.Errorf("compile %s bundle for %s: %s", bundle, tag, qerr.Message)
	}

	m.cache[key] = q
	m.logger.Debug("compiled pattern bundle", "language", tag, "bundle", bundle)
	return q, nil
}

// Precompile compiles all three bundles for every tag in tags, so workers
// never pay first-use compilation cost mid-scan. A compile failure for any
// tag/bundle pair is returned immediately.
func (m *Manager) Precompile(tags []lang.Tag) error {
	for _, tag := range tags {
		for _, bundle := range []BundleType{BundleSymbols, BundleImports, BundleComments} {
			if _, err := m.GetQuery(tag, bundle); err != nil {
				return err
			}
		}
	}
	return nil
}

func bundleSource(tag lang.Tag, bundle BundleType) (string, error) {
	family := lang.FamilyOf(tag)
	switch bundle {
	case BundleSymbols:
		return symbols.For(family)
	case BundleImports:
		return imports.For(family)
	case BundleComments:
		return comments.For(family)
	default:
		return "", fmt.Errorf("unknown bundle type: %d", bundle)
	}
}

// ExecuteQuery runs query against tree and returns every match with its
// captures resolved to node text and location.
func (m *Manager) ExecuteQuery(tree *ts.Tree, query *ts.Query, source []byte) ([]Match, error) {
	if tree == nil {
		return nil, fmt.Errorf("tree is nil")
	}
	if query == nil {
		return nil, fmt.Errorf("query is nil")
	}

	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	iter := cursor.Matches(query, tree.RootNode(), source)
	names := query.CaptureNames()

	var matches []Match
	for {
		match := iter.Next()
		if match == nil {
			break
		}

		var captures []Capture
		for _, c := range match.Captures {
			var name string
			if int(c.Index) < len(names) {
				name = names[c.Index]
			}
			category, field := splitCaptureName(name)
			node := c.Node
			captures = append(captures, Capture{
				Name:     name,
				Category: category,
				Field:    field,
				Node:     &node,
				Text:     node.Utf8Text(source),
				Location: nodeLocation(&node),
			})
		}

		matches = append(matches, Match{PatternIndex: uint32(match.PatternIndex), Captures: captures})
	}

	return matches, nil
}

// Close releases every compiled query. Unusable afterward.
func (m *Manager) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for key, q := range m.cache {
		if q != nil {
			q.Close()
		}
		delete(m.cache, key)
	}
	return nil
}

// Match is one pattern match with all its captures.
type Match struct {
	PatternIndex uint32
	Captures     []Capture
}

// Capture is one captured node from a match.
type Capture struct {
	Name     string
	Category string
	Field    string
	Node     *ts.Node
	Text     string
	Location Location
}

// Location is a 0-based span matching model.Location (kept distinct here
// to avoid a queries→model import for what is, at this layer, just raw
// tree-sitter coordinates).
type Location struct {
	StartLine   uint32
	StartColumn uint32
	EndLine     uint32
	EndColumn   uint32
	StartByte   uint32
	EndByte     uint32
}

func splitCaptureName(name string) (category, field string) {
	parts := strings.SplitN(name, ".", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return name, ""
}

func nodeLocation(node *ts.Node) Location {
	start := node.StartPosition()
	end := node.EndPosition()
	return Location{
		StartLine:   uint32(start.Row),
		StartColumn: uint32(start.Column),
		EndLine:     uint32(end.Row),
		EndColumn:   uint32(end.Column),
		StartByte:   uint32(node.StartByte()),
		EndByte:     uint32(node.EndByte()),
	}
}
