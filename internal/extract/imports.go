package extract

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens/codelens/internal/lang"
	"github.com/codelens/codelens/internal/lang/queries"
	"github.com/codelens/codelens/internal/model"
)

// extractImports runs the import extraction contract for one family.
// Unlike symbols, the pattern bundles here only locate the outer
// directive node; binding expansion (grouped imports, aliasing,
// star/default/namespace forms) is ad-hoc traversal per family, as the
// design intends: "that logic is encapsulated per language and must not
// leak into the coordinator."
func extractImports(family lang.Family, matches []queries.Match, filePath string, source []byte) []model.Import {
	var out []model.Import
	for _, m := range matches {
		for i := range m.Captures {
			c := &m.Captures[i]
			rows := decodeDirective(family, c, filePath, source)
			out = append(out, rows...)
		}
	}
	return out
}

func decodeDirective(family lang.Family, c *queries.Capture, filePath string, source []byte) []model.Import {
	node := c.Node
	line := uint32(node.StartPosition().Row)

	switch family {
	case lang.FamilyTSJS:
		switch c.Name {
		case "import.statement":
			return decodeTSImportStatement(node, filePath, line, source)
		case "export.statement":
			return decodeTSExportStatement(node, filePath, line, source)
		case "dynamic.call":
			return decodeTSDynamicCall(node, filePath, line, source)
		case "require.call":
			return decodeTSRequireCall(node, filePath, line, source)
		}

	case lang.FamilyC, lang.FamilyCpp:
		if c.Name == "include.directive" {
			return decodeCInclude(node, filePath, line, source)
		}

	case lang.FamilyCSharp:
		if c.Name == "using.directive" {
			return decodeCSharpUsing(node, filePath, line, source)
		}

	case lang.FamilyRust:
		if c.Name == "use.declaration" {
			return decodeRustUse(node, filePath, line, source)
		}

	case lang.FamilyPython:
		switch c.Name {
		case "import.statement":
			return decodePythonImport(node, filePath, line, source)
		case "from.statement":
			return decodePythonFrom(node, filePath, line, source)
		}

	case lang.FamilyGo:
		if c.Name == "import.spec" {
			return decodeGoImportSpec(node, filePath, line, source)
		}

	case lang.FamilyJava:
		if c.Name == "import.declaration" {
			return decodeJavaImport(node, filePath, line, source)
		}

	case lang.FamilyPHP:
		switch c.Name {
		case "use.declaration":
			return decodePHPUse(node, filePath, line, source)
		case "require.expression":
			return decodePHPRequireInclude(node, filePath, line, source, model.ImportRequire)
		case "include.expression":
			return decodePHPRequireInclude(node, filePath, line, source, model.ImportInclude)
		}
	}
	return nil
}

// ---- TypeScript / JavaScript ----

func decodeTSImportStatement(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	sourceNode := node.ChildByFieldName("source")
	if sourceNode == nil {
		return nil
	}
	spec := stripQuotes(sourceNode.Utf8Text(source))
	if spec == "" {
		return nil
	}
	typeOnly := hasDirectChildText(node, "type", source)
	external := !strings.HasPrefix(spec, ".") && !strings.HasPrefix(spec, "#")

	clause := findChildByGrammar(node, "import_clause")
	if clause == nil {
		return []model.Import{newImport(filePath, spec, model.NamespaceSentinel, model.NamespaceSentinel, model.ImportStatic, typeOnly, line, external)}
	}

	var rows []model.Import
	count := int(clause.ChildCount())
	for i := 0; i < count; i++ {
		child := clause.Child(uint(i))
		if child == nil {
			continue
		}
		switch child.GrammarName() {
		case "identifier":
			rows = append(rows, newImport(filePath, spec, model.DefaultSentinel, child.Utf8Text(source), model.ImportStatic, typeOnly, line, external))
		case "namespace_import":
			if id := lastNamedChild(child); id != nil {
				rows = append(rows, newImport(filePath, spec, model.NamespaceSentinel, id.Utf8Text(source), model.ImportStatic, typeOnly, line, external))
			}
		case "named_imports":
			specCount := int(child.ChildCount())
			for j := 0; j < specCount; j++ {
				spc := child.Child(uint(j))
				if spc == nil || spc.GrammarName() != "import_specifier" {
					continue
				}
				name := spc.ChildByFieldName("name")
				alias := spc.ChildByFieldName("alias")
				if name == nil {
					continue
				}
				local := name.Utf8Text(source)
				if alias != nil {
					local = alias.Utf8Text(source)
				}
				rows = append(rows, newImport(filePath, spec, name.Utf8Text(source), local, model.ImportStatic, typeOnly, line, external))
			}
		}
	}
	if rows == nil {
		rows = []model.Import{newImport(filePath, spec, model.NamespaceSentinel, model.NamespaceSentinel, model.ImportStatic, typeOnly, line, external)}
	}
	return rows
}

func decodeTSExportStatement(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	sourceNode := node.ChildByFieldName("source")
	if sourceNode == nil {
		return nil
	}
	spec := stripQuotes(sourceNode.Utf8Text(source))
	if spec == "" {
		return nil
	}
	typeOnly := hasDirectChildText(node, "type", source)
	external := !strings.HasPrefix(spec, ".") && !strings.HasPrefix(spec, "#")

	if hasDirectChildText(node, "*", source) {
		return []model.Import{newImport(filePath, spec, model.NamespaceSentinel, model.NamespaceSentinel, model.ImportReExport, typeOnly, line, external)}
	}

	clause := findChildByGrammar(node, "export_clause")
	if clause == nil {
		return nil
	}
	var rows []model.Import
	count := int(clause.ChildCount())
	for i := 0; i < count; i++ {
		spc := clause.Child(uint(i))
		if spc == nil || spc.GrammarName() != "export_specifier" {
			continue
		}
		name := spc.ChildByFieldName("name")
		alias := spc.ChildByFieldName("alias")
		if name == nil {
			continue
		}
		local := name.Utf8Text(source)
		if alias != nil {
			local = alias.Utf8Text(source)
		}
		rows = append(rows, newImport(filePath, spec, name.Utf8Text(source), local, model.ImportReExport, typeOnly, line, external))
	}
	return rows
}

func decodeTSDynamicCall(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	args := node.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	strNode := findChildByGrammar(args, "string")
	if strNode == nil {
		return nil
	}
	spec := stripQuotes(strNode.Utf8Text(source))
	if spec == "" {
		return nil
	}
	external := !strings.HasPrefix(spec, ".") && !strings.HasPrefix(spec, "#")
	return []model.Import{newImport(filePath, spec, model.NamespaceSentinel, model.NamespaceSentinel, model.ImportDynamic, false, line, external)}
}

func decodeTSRequireCall(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	args := node.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	strNode := findChildByGrammar(args, "string")
	if strNode == nil {
		return nil
	}
	spec := stripQuotes(strNode.Utf8Text(source))
	if spec == "" {
		return nil
	}
	external := !strings.HasPrefix(spec, ".") && !strings.HasPrefix(spec, "#")
	return []model.Import{newImport(filePath, spec, model.NamespaceSentinel, model.NamespaceSentinel, model.ImportRequire, false, line, external)}
}

// ---- C / C++ ----

func decodeCInclude(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	path := node.ChildByFieldName("path")
	if path == nil {
		return nil
	}
	external := path.GrammarName() == "system_lib_string"
	spec := stripAngles(stripQuotes(path.Utf8Text(source)))
	if spec == "" {
		return nil
	}
	return []model.Import{newImport(filePath, spec, model.NamespaceSentinel, model.NamespaceSentinel, model.ImportInclude, false, line, external)}
}

// ---- C# ----

func decodeCSharpUsing(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	spec := nameNode.Utf8Text(source)
	if spec == "" {
		return nil
	}
	local := lastSegment(spec, ".")
	if alias := findChildByGrammar(node, "name_equals"); alias != nil {
		if id := firstNamedChild(alias); id != nil {
			local = id.Utf8Text(source)
		}
	}
	return []model.Import{newImport(filePath, spec, model.NamespaceSentinel, local, model.ImportUsing, false, line, true)}
}

// ---- Rust ----

func decodeRustUse(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	arg := node.ChildByFieldName("argument")
	if arg == nil {
		return nil
	}
	bindings := expandRustUse(arg, source, "")
	var rows []model.Import
	for _, b := range bindings {
		external := !(strings.HasPrefix(b.spec, "crate::") || strings.HasPrefix(b.spec, "self::") || strings.HasPrefix(b.spec, "super::"))
		rows = append(rows, newImport(filePath, b.spec, b.imported, b.local, model.ImportUse, false, line, external))
	}
	return rows
}

type rustBinding struct{ spec, imported, local string }

func expandRustUse(node *ts.Node, source []byte, prefix string) []rustBinding {
	join := func(seg string) string {
		if prefix == "" {
			return seg
		}
		return prefix + "::" + seg
	}

	switch node.GrammarName() {
	case "identifier", "self", "super", "crate":
		name := node.Utf8Text(source)
		return []rustBinding{{spec: join(name), imported: name, local: name}}

	case "scoped_identifier":
		text := node.Utf8Text(source)
		name := lastSegment(text, "::")
		return []rustBinding{{spec: join(text), imported: name, local: name}}

	case "use_as_clause":
		path := node.ChildByFieldName("path")
		alias := node.ChildByFieldName("alias")
		if path == nil || alias == nil {
			return nil
		}
		inner := expandRustUse(path, source, prefix)
		for i := range inner {
			inner[i].local = alias.Utf8Text(source)
		}
		return inner

	case "use_wildcard":
		return []rustBinding{{spec: join("*"), imported: model.NamespaceSentinel, local: model.NamespaceSentinel}}

	case "scoped_use_list":
		path := node.ChildByFieldName("path")
		list := node.ChildByFieldName("list")
		newPrefix := prefix
		if path != nil {
			newPrefix = join(path.Utf8Text(source))
		}
		var out []rustBinding
		if list != nil {
			count := int(list.ChildCount())
			for i := 0; i < count; i++ {
				child := list.Child(uint(i))
				if child == nil || !child.IsNamed() {
					continue
				}
				out = append(out, expandRustUse(child, source, newPrefix)...)
			}
		}
		return out

	default:
		text := node.Utf8Text(source)
		if text == "" {
			return nil
		}
		name := lastSegment(text, "::")
		return []rustBinding{{spec: join(text), imported: name, local: name}}
	}
}

// ---- Python ----

func decodePythonImport(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	var rows []model.Import
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child == nil {
			continue
		}
		switch child.GrammarName() {
		case "dotted_name":
			name := child.Utf8Text(source)
			local := lastSegment(name, ".")
			external := !strings.HasPrefix(name, ".")
			rows = append(rows, newImport(filePath, name, model.NamespaceSentinel, local, model.ImportImport, false, line, external))
		case "aliased_import":
			nameNode := child.ChildByFieldName("name")
			aliasNode := child.ChildByFieldName("alias")
			if nameNode == nil || aliasNode == nil {
				continue
			}
			name := nameNode.Utf8Text(source)
			external := !strings.HasPrefix(name, ".")
			rows = append(rows, newImport(filePath, name, model.NamespaceSentinel, aliasNode.Utf8Text(source), model.ImportImport, false, line, external))
		}
	}
	return rows
}

func decodePythonFrom(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	moduleNode := node.ChildByFieldName("module_name")
	if moduleNode == nil {
		return nil
	}
	module := moduleNode.Utf8Text(source)
	external := !strings.HasPrefix(module, ".")

	var rows []model.Import
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child == nil || child.StartByte() == moduleNode.StartByte() {
			continue
		}
		switch child.GrammarName() {
		case "wildcard_import":
			rows = append(rows, newImport(filePath, module, model.NamespaceSentinel, model.NamespaceSentinel, model.ImportFrom, false, line, external))
		case "dotted_name":
			name := child.Utf8Text(source)
			rows = append(rows, newImport(filePath, module, name, name, model.ImportFrom, false, line, external))
		case "aliased_import":
			nameNode := child.ChildByFieldName("name")
			aliasNode := child.ChildByFieldName("alias")
			if nameNode == nil || aliasNode == nil {
				continue
			}
			rows = append(rows, newImport(filePath, module, nameNode.Utf8Text(source), aliasNode.Utf8Text(source), model.ImportFrom, false, line, external))
		}
	}
	return rows
}

// ---- Go ----

func decodeGoImportSpec(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	path := node.ChildByFieldName("path")
	if path == nil {
		return nil
	}
	spec := stripQuotes(path.Utf8Text(source))
	if spec == "" {
		return nil
	}
	local := lastSegment(spec, "/")
	if name := node.ChildByFieldName("name"); name != nil {
		switch name.GrammarName() {
		case "dot":
			local = "."
		case "blank_identifier":
			local = "_"
		default:
			local = name.Utf8Text(source)
		}
	}
	return []model.Import{newImport(filePath, spec, model.NamespaceSentinel, local, model.ImportImport, false, line, true)}
}

// ---- Java ----

func decodeJavaImport(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	isStatic := hasDirectChildText(node, "static", source)
	wildcard := findChildByGrammar(node, "asterisk") != nil

	pathNode := node.ChildByFieldName("name")
	if pathNode == nil {
		pathNode = findChildByGrammar(node, "scoped_identifier")
	}
	if pathNode == nil {
		return nil
	}
	path := pathNode.Utf8Text(source)
	spec := path
	imported := lastSegment(path, ".")
	if wildcard {
		spec = path + ".*"
		imported = model.NamespaceSentinel
	}

	kind := model.ImportImport
	if isStatic {
		kind = model.ImportStaticImport
	}
	return []model.Import{newImport(filePath, spec, imported, imported, kind, false, line, true)}
}

// ---- PHP ----

func decodePHPUse(node *ts.Node, filePath string, line uint32, source []byte) []model.Import {
	var rows []model.Import
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child == nil {
			continue
		}
		switch child.GrammarName() {
		case "namespace_use_clause":
			name := findChildByGrammar(child, "qualified_name")
			if name == nil {
				continue
			}
			spec := name.Utf8Text(source)
			imported := lastSegment(spec, "\\")
			local := imported
			if aliasClause := findChildByGrammar(child, "namespace_aliasing_clause"); aliasClause != nil {
				if id := lastNamedChild(aliasClause); id != nil {
					local = id.Utf8Text(source)
				}
			}
			rows = append(rows, newImport(filePath, spec, imported, local, model.ImportUse, false, line, true))

		case "namespace_use_group_clause":
			prefixNode := findChildByGrammar(child, "namespace_name")
			groupNode := findChildByGrammar(child, "namespace_use_group")
			if prefixNode == nil || groupNode == nil {
				continue
			}
			prefix := strings.TrimSuffix(prefixNode.Utf8Text(source), "\\")
			gcount := int(groupNode.ChildCount())
			for j := 0; j < gcount; j++ {
				clause := groupNode.Child(uint(j))
				if clause == nil || clause.GrammarName() != "namespace_use_clause" {
					continue
				}
				itemNode := findChildByGrammar(clause, "name")
				if itemNode == nil {
					itemNode = findChildByGrammar(clause, "qualified_name")
				}
				if itemNode == nil {
					continue
				}
				item := itemNode.Utf8Text(source)
				spec := prefix + "\\" + item
				local := item
				if aliasClause := findChildByGrammar(clause, "namespace_aliasing_clause"); aliasClause != nil {
					if id := lastNamedChild(aliasClause); id != nil {
						local = id.Utf8Text(source)
					}
				}
				rows = append(rows, newImport(filePath, spec, item, local, model.ImportUse, false, line, true))
			}
		}
	}
	return rows
}

func decodePHPRequireInclude(node *ts.Node, filePath string, line uint32, source []byte, kind model.ImportKind) []model.Import {
	strNode := findChildByGrammar(node, "string")
	if strNode == nil {
		return nil
	}
	spec := stripQuotes(strNode.Utf8Text(source))
	if spec == "" {
		return nil
	}
	external := !strings.HasPrefix(spec, ".")
	return []model.Import{newImport(filePath, spec, model.NamespaceSentinel, model.NamespaceSentinel, kind, false, line, external)}
}

// ---- shared helpers ----

func newImport(filePath, spec, imported, local string, kind model.ImportKind, typeOnly bool, line uint32, external bool) model.Import {
	return model.Import{
		SourceFile:      filePath,
		ModuleSpecifier: spec,
		ImportedName:    imported,
		LocalName:       local,
		Kind:            kind,
		IsTypeOnly:      typeOnly,
		Line:            line,
		IsExternal:      external,
	}
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'' || first == '`') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func stripAngles(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>' {
		return s[1 : len(s)-1]
	}
	return s
}

func lastSegment(s, sep string) string {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s
	}
	return s[idx+len(sep):]
}

func findChildByGrammar(node *ts.Node, grammarName string) *ts.Node {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child != nil && child.GrammarName() == grammarName {
			return child
		}
	}
	return nil
}

func hasDirectChildText(node *ts.Node, text string, source []byte) bool {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child != nil && child.Utf8Text(source) == text {
			return true
		}
	}
	return false
}

func firstNamedChild(node *ts.Node) *ts.Node {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child != nil && child.IsNamed() {
			return child
		}
	}
	return nil
}

func lastNamedChild(node *ts.Node) *ts.Node {
	var last *ts.Node
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child != nil && child.IsNamed() {
			last = child
		}
	}
	return last
}
