package extract

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens/codelens/internal/lang"
	"github.com/codelens/codelens/internal/lang/queries"
	"github.com/codelens/codelens/internal/model"
)

// extractComments runs the comment extraction contract for one family:
// classify each matched node by kind, then associate it with the symbol
// it documents, if any. symMatches is the already-executed symbol bundle
// for the same file, reused here instead of re-walking the tree.
func extractComments(family lang.Family, matches []queries.Match, source []byte, filePath string, symMatches []queries.Match) []model.Comment {
	symbolAt := buildSymbolIndex(symMatches)

	var out []model.Comment
	for _, m := range matches {
		for i := range m.Captures {
			c := &m.Captures[i]
			switch c.Name {
			case "comment.node":
				out = append(out, buildComment(family, c.Node, c.Text, c.Location, filePath, symbolAt))
			case "comment.docstring_candidate":
				if cmt, ok := buildDocstring(c.Node, c.Text, c.Location, filePath, symbolAt); ok {
					out = append(out, cmt)
				}
			}
		}
	}
	return out
}

// symbolIndex maps a definition node's byte span to the symbol it
// produced, letting comment association reuse the symbol pass's work
// instead of re-deriving kind/export rules.
type symbolIndex struct {
	byStart map[uint]model.Symbol
}

func buildSymbolIndex(symMatches []queries.Match) symbolIndex {
	idx := symbolIndex{byStart: make(map[uint]model.Symbol)}
	for _, r := range collectSymbolMatchesForIndex(symMatches) {
		idx.byStart[uint(r.defNode.StartByte())] = model.Symbol{
			Name: r.nameText,
			Kind: model.SymbolKind(r.category),
		}
	}
	return idx
}

// collectSymbolMatchesForIndex is collectSymbolMatches without the dedup
// and kind-resolution passes — association only needs name/kind/span,
// and re-running the full symbol pipeline here would double the work.
func collectSymbolMatchesForIndex(matches []queries.Match) []symbolMatch {
	return collectSymbolMatches(matches)
}

func buildComment(family lang.Family, node *ts.Node, text string, loc queries.Location, filePath string, idx symbolIndex) model.Comment {
	kind := classifyKind(family, text)
	cmt := model.Comment{
		FilePath: filePath,
		Text:     text,
		Kind:     kind,
		Location: toModelLocation(loc),
	}

	target := followingDefinition(node)
	if target != nil {
		if sym, ok := idx.byStart[uint(target.StartByte())]; ok {
			cmt.AssociatedSymbol = sym.Name
			cmt.AssociatedSymbolKind = sym.Kind

			// Go has no doc-comment delimiter: a plain line comment is a
			// doc comment exactly when it sits directly above the
			// declaration it describes, with no blank line between.
			if family == lang.FamilyGo && kind == model.CommentLine &&
				node.EndPosition().Row+1 == target.StartPosition().Row {
				cmt.Kind = model.CommentDoc
			}
		}
	}
	return cmt
}

// buildDocstring reports whether node sits at a docstring position
// (first statement of a module, class, or function body) and, if so,
// builds the comment row associated with the enclosing definition.
func buildDocstring(node *ts.Node, text string, loc queries.Location, filePath string, idx symbolIndex) (model.Comment, bool) {
	stmt := node.Parent() // expression_statement
	if stmt == nil {
		return model.Comment{}, false
	}
	block := stmt.Parent()
	if block == nil {
		return model.Comment{}, false
	}

	// Must be the first statement in its block.
	if block.NamedChild(0) == nil || block.NamedChild(0).StartByte() != stmt.StartByte() {
		return model.Comment{}, false
	}

	owner := block.Parent()
	if owner == nil {
		return model.Comment{}, false
	}
	switch owner.GrammarName() {
	case "module", "function_definition", "class_definition":
	default:
		return model.Comment{}, false
	}

	cmt := model.Comment{
		FilePath: filePath,
		Text:     stripPythonStringDelimiters(text),
		Kind:     model.CommentDoc,
		Location: toModelLocation(loc),
	}
	if owner.GrammarName() != "module" {
		if sym, ok := idx.byStart[uint(owner.StartByte())]; ok {
			cmt.AssociatedSymbol = sym.Name
			cmt.AssociatedSymbolKind = sym.Kind
		}
	}
	return cmt, true
}

// followingDefinition returns the node a comment documents: its next
// named sibling, skipping past other comments stacked immediately above
// the same declaration. A decorated_definition is returned as is, not
// unwrapped, since the symbol index stores decorated symbols under the
// decorated (outer) span that the symbol pass chose.
func followingDefinition(node *ts.Node) *ts.Node {
	n := node.NextNamedSibling()
	for n != nil && n.GrammarName() == "comment" {
		n = n.NextNamedSibling()
	}
	if n == nil {
		return nil
	}
	if n.GrammarName() == "decorated_definition" {
		return n
	}
	return n
}

func classifyKind(family lang.Family, text string) model.CommentKind {
	switch family {
	case lang.FamilyRust:
		if strings.HasPrefix(text, "///") || strings.HasPrefix(text, "//!") ||
			strings.HasPrefix(text, "/**") || strings.HasPrefix(text, "/*!") {
			return model.CommentDoc
		}
		if strings.HasPrefix(text, "/*") {
			return model.CommentBlock
		}
		return model.CommentLine

	case lang.FamilyCSharp:
		if strings.HasPrefix(text, "///") || strings.HasPrefix(text, "/**") {
			return model.CommentDoc
		}
		if strings.HasPrefix(text, "/*") {
			return model.CommentBlock
		}
		return model.CommentLine

	case lang.FamilyTSJS, lang.FamilyC, lang.FamilyCpp, lang.FamilyJava, lang.FamilyPHP:
		if strings.HasPrefix(text, "/**") {
			return model.CommentDoc
		}
		if strings.HasPrefix(text, "/*") {
			return model.CommentBlock
		}
		return model.CommentLine

	case lang.FamilyGo:
		if strings.HasPrefix(text, "/*") {
			return model.CommentBlock
		}
		return model.CommentLine

	default:
		if strings.HasPrefix(text, "/*") {
			return model.CommentBlock
		}
		return model.CommentLine
	}
}

// stripPythonStringDelimiters trims the triple (or single) quote marks
// around a Python string so the stored docstring text matches what the
// author wrote, not the raw string-literal token.
func stripPythonStringDelimiters(s string) string {
	for _, quote := range []string{`"""`, `'''`} {
		if strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote) && len(s) >= 2*len(quote) {
			return strings.TrimSpace(s[len(quote) : len(s)-len(quote)])
		}
	}
	return strings.Trim(s, `"'`)
}
