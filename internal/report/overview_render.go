package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// RenderOverview writes an Overview in the requested format. JSON
// marshals the structure directly; table renders each section as
// labeled text; CSV flattens the module tree, the only section with a
// uniform row shape.
func RenderOverview(w io.Writer, ov *Overview, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ov)
	case FormatCSV:
		return renderOverviewCSV(w, ov)
	default:
		return renderOverviewTable(w, ov)
	}
}

func renderOverviewCSV(w io.Writer, ov *Overview) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"path", "depth", "is_dir", "file_count", "line_count", "exported_symbols"}); err != nil {
		return err
	}
	for _, n := range ov.ModuleTree {
		if err := writer.Write([]string{
			n.Path, fmt.Sprint(n.Depth), fmt.Sprint(n.IsDir), fmt.Sprint(n.FileCount), fmt.Sprint(n.LineCount),
			strings.Join(n.ExportedSyms, ";"),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func renderOverviewTable(w io.Writer, ov *Overview) error {
	fmt.Fprintf(w, "files: %d  lines: %d  symbols: %d\n", ov.Summary.TotalFiles, ov.Summary.TotalLines, ov.Summary.TotalSymbols)
	var langs []string
	for l := range ov.Summary.FilesByLanguage {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	for _, l := range langs {
		fmt.Fprintf(w, "  %s: %d files\n", l, ov.Summary.FilesByLanguage[l])
	}

	fmt.Fprintln(w, "\nmodule tree")
	for _, n := range ov.ModuleTree {
		indent := strings.Repeat("  ", n.Depth)
		kind := "file"
		if n.IsDir {
			kind = "dir"
		}
		fmt.Fprintf(w, "%s%s [%s] files=%d lines=%d\n", indent, n.Path, kind, n.FileCount, n.LineCount)
	}

	fmt.Fprintln(w, "\napi surface")
	for _, g := range ov.APISurface {
		fmt.Fprintf(w, "  %s (%d): %s\n", g.Kind, g.Count, strings.Join(g.Examples, ", "))
	}

	fmt.Fprintln(w, "\nlargest symbols")
	for _, s := range ov.LargestSyms {
		fmt.Fprintf(w, "  %s (%s) %s:%d-%d\n", s.Name, s.Kind, s.FilePath, s.StartLine, s.EndLine)
	}

	if ov.Dependencies != nil {
		d := ov.Dependencies
		fmt.Fprintf(w, "\ndependencies: %d total\n", d.TotalImports)
		fmt.Fprintln(w, "  top external:")
		for _, nc := range d.TopExternal {
			fmt.Fprintf(w, "    %s: %d\n", nc.Name, nc.Count)
		}
		fmt.Fprintln(w, "  hub files:")
		for _, nc := range d.HubFiles {
			fmt.Fprintf(w, "    %s: %d\n", nc.Name, nc.Count)
		}
		fmt.Fprintln(w, "  most imported symbols:")
		for _, nc := range d.MostImportedSyms {
			fmt.Fprintf(w, "    %s: %d\n", nc.Name, nc.Count)
		}
		fmt.Fprintln(w, "  kind distribution:")
		for _, kp := range d.KindDistribution {
			fmt.Fprintf(w, "    %s: %d (%.1f%%)\n", kp.Kind, kp.Count, kp.Percent)
		}
		if len(d.BarrelFiles) > 0 {
			fmt.Fprintf(w, "  barrel files: %s\n", strings.Join(d.BarrelFiles, ", "))
		}
	}

	ins := ov.Insights
	fmt.Fprintln(w, "\ninsights")
	fmt.Fprintf(w, "  export_ratio: %.2f\n", ins.ExportRatio)
	fmt.Fprintf(w, "  largest_file: %s\n", ins.LargestFile)
	fmt.Fprintf(w, "  deepest_path: %s\n", ins.DeepestPath)
	fmt.Fprintf(w, "  hotspot_dir: %s\n", ins.HotspotDir)
	fmt.Fprintf(w, "  import_density: %.4f\n", ins.ImportDensity)
	fmt.Fprintf(w, "  type_only_ratio: %.2f\n", ins.TypeOnlyRatio)
	return nil
}
