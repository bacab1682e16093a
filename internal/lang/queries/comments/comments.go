// Package comments holds the per-language-family comment pattern bundles.
// Unlike symbols and imports, classification (doc/block/line) and symbol
// association are ad-hoc traversal over the matched node and its
// following sibling, done in the extractor — the bundle's only job is to
// find every comment-shaped node (and, for Python, every string-literal
// expression statement that might be a docstring).
package comments

import (
	"github.com/codelens/codelens/internal/lang"
)

// For returns the compiled-query source for a language family.
func For(family lang.Family) (string, error) {
	switch family {
	case lang.FamilyPython:
		return PythonQuery, nil
	case lang.FamilyPHP:
		return PHPQuery, nil
	case lang.FamilyRust, lang.FamilyJava:
		return LineBlockQuery, nil
	default:
		return GenericQuery, nil
	}
}

// GenericQuery matches the `comment` node type shared by the
// TypeScript/JavaScript, C, C++, C#, and Go grammars.
const GenericQuery = `
(comment) @comment.node
`
