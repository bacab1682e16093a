package main

import (
	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/query"
	"github.com/codelens/codelens/internal/report"
)

func newImportsCommand() *cobra.Command {
	var dataDir, format, module, kind, file string
	var typeOnly, external, internal bool
	var limit int

	cmd := &cobra.Command{
		Use:   "imports",
		Short: "Filter the imports table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			opts := query.ImportsOptions{
				Module: module, Kind: kind, FilePrefix: file,
				External: external, Internal: internal, Limit: limit,
			}
			if cmd.Flags().Changed("type-only") {
				opts.TypeOnlySet = true
				opts.TypeOnly = typeOnly
			}

			t, err := report.Imports(eng, opts)
			if err != nil {
				return err
			}
			return renderTable(t, format)
		},
	}

	addDataDirFlag(cmd, &dataDir)
	addFormatFlag(cmd, &format)
	cmd.Flags().StringVar(&module, "module", "", "module specifier substring filter")
	cmd.Flags().StringVar(&kind, "kind", "", "import kind filter")
	cmd.Flags().StringVar(&file, "file", "", "source file prefix filter")
	cmd.Flags().BoolVar(&typeOnly, "type-only", false, "restrict to (or exclude, with --type-only=false) type-only imports")
	cmd.Flags().BoolVar(&external, "external", false, "restrict to external imports")
	cmd.Flags().BoolVar(&internal, "internal", false, "restrict to internal imports")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows returned")
	return cmd
}
