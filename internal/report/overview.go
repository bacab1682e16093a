package report

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/codelens/codelens/internal/query"
)

// Overview is the composite report: global summary, module tree, API
// surface, largest symbols, dependency summary (when imports exist),
// and insights.
type Overview struct {
	Summary      GlobalSummary
	ModuleTree   []ModuleNode
	APISurface   []APIGroup
	LargestSyms  []query.SymbolRow
	Dependencies *DependencySummary
	Insights     Insights
}

type GlobalSummary struct {
	TotalFiles      int64
	TotalLines      int64
	TotalSymbols    int64
	FilesByLanguage map[string]int64
}

// ModuleNode is one directory or file in the rendered module tree.
// Synthetic nodes (directories implied but not present as files) are
// inserted so every ancestor on a path exists.
type ModuleNode struct {
	Path           string
	Depth          int
	IsDir          bool
	FileCount      int64
	LineCount      int64
	ExportedSyms   []string
}

type APIGroup struct {
	Kind     string
	Count    int
	Examples []string
}

type DependencySummary struct {
	TotalImports     int64
	TopExternal      []NameCount
	HubFiles         []NameCount
	MostImportedSyms []NameCount
	KindDistribution []KindPercent
	BarrelFiles      []string
}

type NameCount struct {
	Name  string
	Count int64
}

type KindPercent struct {
	Kind    string
	Count   int64
	Percent float64
}

type Insights struct {
	ExportRatio    float64
	LargestFile    string
	DeepestPath    string
	HotspotDir     string
	ImportDensity  float64
	TypeOnlyRatio  float64
}

// depth measures directory depth as 1 + count('/') in path, with "." = 0.
func depth(path string) int {
	if path == "." {
		return 0
	}
	return 1 + strings.Count(path, "/")
}

// BuildOverview assembles the composite overview, truncating the module
// tree at maxDepth (0 means unlimited).
func BuildOverview(eng *query.Engine, maxDepth int) (*Overview, error) {
	summary, err := eng.GlobalSummary()
	if err != nil {
		return nil, err
	}
	files, err := eng.AllFiles()
	if err != nil {
		return nil, err
	}
	symbols, err := eng.AllSymbols()
	if err != nil {
		return nil, err
	}
	imports, err := eng.AllImports()
	if err != nil {
		return nil, err
	}

	ov := &Overview{
		Summary: GlobalSummary{
			TotalFiles: summary.TotalFiles, TotalLines: summary.TotalLines,
			TotalSymbols: summary.TotalSymbols, FilesByLanguage: summary.FilesByLanguage,
		},
	}

	exportedBySymFile := map[string][]string{}
	for _, s := range symbols {
		if s.IsExported {
			exportedBySymFile[s.FilePath] = append(exportedBySymFile[s.FilePath], s.Name)
		}
	}
	ov.ModuleTree = buildModuleTree(files, exportedBySymFile, maxDepth)

	ov.APISurface = buildAPISurface(symbols)

	sort.SliceStable(symbols, func(i, j int) bool {
		return (symbols[i].EndLine - symbols[i].StartLine) > (symbols[j].EndLine - symbols[j].StartLine)
	})
	if len(symbols) > 5 {
		ov.LargestSyms = symbols[:5]
	} else {
		ov.LargestSyms = symbols
	}

	if eng.HasImports() {
		ov.Dependencies = buildDependencySummary(imports)
	}

	ov.Insights = buildInsights(files, symbols, imports, ov.Summary)

	return ov, nil
}

func buildModuleTree(files []query.FileRow, exported map[string][]string, maxDepth int) []ModuleNode {
	type agg struct {
		fileCount int64
		lineCount int64
		isDir     bool
	}
	nodes := map[string]*agg{}
	var order []string

	ensure := func(path string, isDir bool) *agg {
		if a, ok := nodes[path]; ok {
			if isDir {
				a.isDir = true
			}
			return a
		}
		a := &agg{isDir: isDir}
		nodes[path] = a
		order = append(order, path)
		return a
	}

	for _, f := range files {
		if maxDepth > 0 && depth(f.Path) > maxDepth {
			continue
		}
		ensure(f.Path, false)
		nodes[f.Path].fileCount = 1
		nodes[f.Path].lineCount = f.LineCount

		dir := filepath.Dir(f.Path)
		for dir != "." && dir != "/" {
			if maxDepth == 0 || depth(dir) <= maxDepth {
				d := ensure(dir, true)
				d.fileCount++
				d.lineCount += f.LineCount
			}
			next := filepath.Dir(dir)
			if next == dir {
				break
			}
			dir = next
		}
		if maxDepth == 0 || depth(".") <= maxDepth {
			root := ensure(".", true)
			if dir == "." {
				root.fileCount++
				root.lineCount += f.LineCount
			}
		}
	}

	sort.Strings(order)
	out := make([]ModuleNode, 0, len(order))
	for _, path := range order {
		a := nodes[path]
		out = append(out, ModuleNode{
			Path: path, Depth: depth(path), IsDir: a.isDir,
			FileCount: a.fileCount, LineCount: a.lineCount,
			ExportedSyms: exported[path],
		})
	}
	return out
}

func buildAPISurface(symbols []query.SymbolRow) []APIGroup {
	byKind := map[string][]string{}
	var order []string
	for _, s := range symbols {
		if !s.IsExported {
			continue
		}
		if _, ok := byKind[s.Kind]; !ok {
			order = append(order, s.Kind)
		}
		byKind[s.Kind] = append(byKind[s.Kind], s.Name)
	}
	sort.Strings(order)

	groups := make([]APIGroup, 0, len(order))
	for _, kind := range order {
		names := byKind[kind]
		examples := names
		if len(examples) > 5 {
			examples = examples[:5]
		}
		groups = append(groups, APIGroup{Kind: kind, Count: len(names), Examples: examples})
	}
	return groups
}

func buildDependencySummary(imports []query.ImportRow) *DependencySummary {
	ds := &DependencySummary{TotalImports: int64(len(imports))}

	externalCount := map[string]int64{}
	hubCount := map[string]int64{}
	symCount := map[string]int64{}
	kindCount := map[string]int64{}
	fileTotal := map[string]int64{}
	fileReExport := map[string]int64{}

	for _, imp := range imports {
		kindCount[imp.Kind]++
		if imp.IsExternal {
			externalCount[imp.ModuleSpecifier]++
		} else {
			hubCount[imp.ModuleSpecifier]++
		}
		symCount[imp.ImportedName]++
		fileTotal[imp.SourceFile]++
		if imp.Kind == "re_export" {
			fileReExport[imp.SourceFile]++
		}
	}

	ds.TopExternal = topN(externalCount, 10)
	ds.HubFiles = topN(hubCount, 10)
	ds.MostImportedSyms = topN(symCount, 10)

	var kinds []string
	for k := range kindCount {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		pct := 0.0
		if ds.TotalImports > 0 {
			pct = 100 * float64(kindCount[k]) / float64(ds.TotalImports)
		}
		ds.KindDistribution = append(ds.KindDistribution, KindPercent{Kind: k, Count: kindCount[k], Percent: pct})
	}

	var barrels []string
	for file, total := range fileTotal {
		if total > 0 && float64(fileReExport[file])/float64(total) > 0.5 {
			barrels = append(barrels, file)
		}
	}
	sort.Strings(barrels)
	ds.BarrelFiles = barrels

	return ds
}

func topN(counts map[string]int64, n int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func buildInsights(files []query.FileRow, symbols []query.SymbolRow, imports []query.ImportRow, summary GlobalSummary) Insights {
	var ins Insights

	exported := 0
	for _, s := range symbols {
		if s.IsExported {
			exported++
		}
	}
	if len(symbols) > 0 {
		ins.ExportRatio = float64(exported) / float64(len(symbols))
	}

	var largest query.FileRow
	var deepest string
	deepestDepth := -1
	dirLines := map[string]int64{}
	for _, f := range files {
		if f.LineCount > largest.LineCount {
			largest = f
		}
		if d := depth(f.Path); d > deepestDepth {
			deepestDepth = d
			deepest = f.Path
		}
		dirLines[filepath.Dir(f.Path)] += f.LineCount
	}
	ins.LargestFile = largest.Path
	ins.DeepestPath = deepest

	hotspot, hotspotLines := "", int64(-1)
	var dirs []string
	for d := range dirLines {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	for _, d := range dirs {
		if dirLines[d] > hotspotLines {
			hotspotLines = dirLines[d]
			hotspot = d
		}
	}
	ins.HotspotDir = hotspot

	if summary.TotalLines > 0 {
		ins.ImportDensity = float64(len(imports)) / float64(summary.TotalLines)
	}

	typeOnly := 0
	for _, imp := range imports {
		if imp.IsTypeOnly {
			typeOnly++
		}
	}
	if len(imports) > 0 {
		ins.TypeOnlyRatio = float64(typeOnly) / float64(len(imports))
	}

	return ins
}
