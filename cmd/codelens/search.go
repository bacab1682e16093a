package main

import (
	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/query"
	"github.com/codelens/codelens/internal/report"
)

func newSearchCommand() *cobra.Command {
	var dataDir, format, kind string
	var exported bool
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search symbol names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			t, err := report.Search(eng, query.SearchOptions{
				Query: args[0], Kind: kind, Exported: exported, Limit: limit, Offset: offset,
			})
			if err != nil {
				return err
			}
			return renderTable(t, format)
		},
	}

	addDataDirFlag(cmd, &dataDir)
	addFormatFlag(cmd, &format)
	cmd.Flags().StringVar(&kind, "kind", "", "restrict to one symbol kind")
	cmd.Flags().BoolVar(&exported, "exported", false, "restrict to exported symbols")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum rows returned")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip before the returned page")
	return cmd
}
