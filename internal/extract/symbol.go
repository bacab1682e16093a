package extract

import (
	"strings"
	"unicode"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens/codelens/internal/lang"
	"github.com/codelens/codelens/internal/lang/queries"
	"github.com/codelens/codelens/internal/model"
)

// kindPriority ranks which category wins when two patterns match the
// same definition span (e.g. Go's generic type_spec pattern overlaps
// with its struct/interface-specific ones). Lower wins.
var kindPriority = map[string]int{
	"arrow_function": 0,
	"function":       1,
	"method":         1,
	"struct":         2,
	"interface":      2,
	"class":          2,
	"enum":           2,
	"trait":          2,
	"union":          2,
	"type":           9,
	"type_alias":     3,
	"typedef":        3,
	"macro":          4,
	"namespace":      4,
	"module":         4,
	"constant":       4,
	"property":       5,
	"variable":       8,
}

type symbolMatch struct {
	category string
	defNode  *ts.Node
	nameNode *ts.Node
	nameText string
	location queries.Location
}

func collectSymbolMatches(matches []queries.Match) []symbolMatch {
	var out []symbolMatch
	for _, m := range matches {
		var def, name *queries.Capture
		for i := range m.Captures {
			c := &m.Captures[i]
			switch c.Field {
			case "definition":
				def = c
			case "name":
				name = c
			}
		}
		if def == nil || name == nil {
			continue
		}
		text := strings.TrimSpace(name.Text)
		if text == "" {
			continue
		}
		out = append(out, symbolMatch{
			category: def.Category,
			defNode:  def.Node,
			nameNode: name.Node,
			nameText: text,
			location: def.Location,
		})
	}
	return out
}

// extractSymbols runs the symbol extraction contract for one family.
func extractSymbols(family lang.Family, matches []queries.Match, filePath string, source []byte) []model.Symbol {
	raw := collectSymbolMatches(matches)

	// Decorated-definition dedup (Python): suppress the inner
	// function_definition/class_definition match when its immediate
	// parent is a decorated_definition, since the decorated pattern
	// already emits a record anchored at the outer span.
	var filtered []symbolMatch
	for _, r := range raw {
		if family == lang.FamilyPython {
			gn := r.defNode.GrammarName()
			if (gn == "function_definition" || gn == "class_definition") && r.defNode.Parent() != nil && r.defNode.Parent().GrammarName() == "decorated_definition" {
				continue
			}
		}
		filtered = append(filtered, r)
	}

	// Span dedup: same definition span matched by more than one pattern
	// (e.g. Go's type_spec) keeps only the highest-priority category.
	bySpan := make(map[[2]uint]symbolMatch)
	var order [][2]uint
	for _, r := range filtered {
		key := [2]uint{uint(r.defNode.StartByte()), uint(r.defNode.EndByte())}
		existing, ok := bySpan[key]
		if !ok {
			bySpan[key] = r
			order = append(order, key)
			continue
		}
		if kindPriority[r.category] < kindPriority[existing.category] {
			bySpan[key] = r
		}
	}

	var symbols []model.Symbol
	for _, key := range order {
		r := bySpan[key]
		kind, ok := resolveKind(family, r)
		if !ok {
			continue
		}
		if !symbolAllowed(family, r, kind) {
			continue
		}
		symbols = append(symbols, model.Symbol{
			Name:       r.nameText,
			Kind:       kind,
			FilePath:   filePath,
			Location:   toModelLocation(r.location),
			IsExported: isExported(family, r, kind, source),
		})
	}
	return symbols
}

// resolveKind derives the final SymbolKind, handling the cases that a
// flat capture category can't express on its own.
func resolveKind(family lang.Family, r symbolMatch) (model.SymbolKind, bool) {
	switch family {
	case lang.FamilyGo:
		if r.category == "type" {
			typeNode := r.defNode.ChildByFieldName("type")
			if typeNode != nil {
				switch typeNode.GrammarName() {
				case "struct_type":
					return model.KindStruct, true
				case "interface_type":
					return model.KindInterface, true
				}
			}
			return model.KindTypeAlias, true
		}
	case lang.FamilyRust:
		if r.category == "function" {
			if insideAny(r.defNode, "impl_item", "trait_item") {
				return model.KindMethod, true
			}
			return model.KindFunction, true
		}
	case lang.FamilyPython:
		if r.category == "function" {
			if insideClassBody(r.defNode) {
				return model.KindMethod, true
			}
			return model.KindFunction, true
		}
		if r.category == "variable" {
			if !atModuleScope(r.defNode) {
				return "", false
			}
		}
	case lang.FamilyCpp:
		if r.category == "function" && r.defNode.GrammarName() == "function_definition" {
			if insideAny(r.defNode, "class_specifier") {
				return model.KindMethod, true
			}
		}
	}

	switch r.category {
	case "arrow_function":
		return model.KindArrowFunction, true
	case "type":
		return model.KindTypeAlias, true
	default:
		return model.SymbolKind(r.category), true
	}
}

// symbolAllowed is the check for syntax the contract says should yield
// no symbol row (destructuring/pattern-match bindings). It accepts every
// match: such bindings never reach it, as explained below.
func symbolAllowed(family lang.Family, r symbolMatch, kind model.SymbolKind) bool {
	if family == lang.FamilyTSJS && kind == model.KindVariable {
		// Destructuring patterns bind an array/object pattern, not a
		// plain identifier; the `name` capture in our bundle only ever
		// matches (identifier), so destructuring targets never reach
		// here — nothing further to filter.
		_ = r
	}
	return true
}

func insideAny(node *ts.Node, grammarNames ...string) bool {
	for n := node.Parent(); n != nil; n = n.Parent() {
		gn := n.GrammarName()
		for _, want := range grammarNames {
			if gn == want {
				return true
			}
		}
	}
	return false
}

// insideClassBody reports whether node sits directly inside a class's
// body (method), as opposed to nested inside another function (which
// stays kind=function per the contract).
func insideClassBody(node *ts.Node) bool {
	for n := node.Parent(); n != nil; n = n.Parent() {
		switch n.GrammarName() {
		case "class_definition":
			return true
		case "function_definition":
			return false
		}
	}
	return false
}

func atModuleScope(node *ts.Node) bool {
	for n := node.Parent(); n != nil; n = n.Parent() {
		switch n.GrammarName() {
		case "class_definition", "function_definition":
			return false
		case "module":
			return true
		}
	}
	return true
}

func isExported(family lang.Family, r symbolMatch, kind model.SymbolKind, source []byte) bool {
	switch family {
	case lang.FamilyTSJS:
		return isDirectChildOf(r.defNode, "export_statement") ||
			(r.defNode.Parent() != nil && isDirectChildOf(r.defNode.Parent(), "export_statement"))

	case lang.FamilyC, lang.FamilyCpp:
		if kind == model.KindStruct || kind == model.KindUnion || kind == model.KindEnum ||
			kind == model.KindTypedef || kind == model.KindMacro || kind == model.KindClass || kind == model.KindNamespace {
			return true
		}
		return findChildText(r.defNode, "storage_class_specifier", source) != "static"

	case lang.FamilyCSharp:
		if kind == model.KindNamespace {
			return true
		}
		switch firstModifierKeyword(r.defNode, source) {
		case "public", "internal":
			return true
		case "private", "protected":
			return false
		default:
			return false
		}

	case lang.FamilyRust:
		return strings.HasPrefix(findChildText(r.defNode, "visibility_modifier", source), "pub")

	case lang.FamilyPython:
		return !strings.HasPrefix(r.nameText, "_")

	case lang.FamilyGo:
		first, _ := utf8FirstRune(r.nameText)
		return unicode.IsUpper(first)

	case lang.FamilyJava:
		return modifiersInclude(r.defNode, "public", source)

	case lang.FamilyPHP:
		switch kind {
		case model.KindMethod, model.KindProperty, model.KindConstant:
			vis := findChildText(r.defNode, "visibility_modifier", source)
			if vis == "" {
				return true
			}
			return vis != "private" && vis != "protected"
		default:
			return true
		}
	}
	return true
}

func isDirectChildOf(node *ts.Node, grammarName string) bool {
	p := node.Parent()
	return p != nil && p.GrammarName() == grammarName
}

// findChildText returns the source text of the first direct child whose
// grammar name matches, or "".
func findChildText(node *ts.Node, grammarName string, source []byte) string {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child != nil && child.GrammarName() == grammarName {
			return strings.TrimSpace(child.Utf8Text(source))
		}
	}
	return ""
}

// firstModifierKeyword returns the first C#-style access-modifier
// keyword found among node's direct children (public/internal/private/
// protected), or "" if none is present.
func firstModifierKeyword(node *ts.Node, source []byte) string {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child == nil {
			continue
		}
		switch strings.TrimSpace(child.Utf8Text(source)) {
		case "public", "internal", "private", "protected":
			return strings.TrimSpace(child.Utf8Text(source))
		}
	}
	return ""
}

// modifiersInclude reports whether node's `modifiers` field contains a
// child whose text is exactly keyword.
func modifiersInclude(node *ts.Node, keyword string, source []byte) bool {
	mods := node.ChildByFieldName("modifiers")
	if mods == nil {
		return false
	}
	count := int(mods.ChildCount())
	for i := 0; i < count; i++ {
		child := mods.Child(uint(i))
		if child != nil && strings.TrimSpace(child.Utf8Text(source)) == keyword {
			return true
		}
	}
	return false
}

func utf8FirstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
