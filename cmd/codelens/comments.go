package main

import (
	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/query"
	"github.com/codelens/codelens/internal/report"
)

func newCommentsCommand() *cobra.Command {
	var dataDir, format, file, kind, symbol string
	var documented bool
	var limit int

	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Filter the comments table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			opts := query.CommentsOptions{File: file, Kind: kind, Symbol: symbol, Limit: limit}
			if cmd.Flags().Changed("documented") {
				opts.DocumentedSet = true
				opts.Documented = documented
			}

			t, err := report.Comments(eng, opts)
			if err != nil {
				return err
			}
			return renderTable(t, format)
		},
	}

	addDataDirFlag(cmd, &dataDir)
	addFormatFlag(cmd, &format)
	cmd.Flags().StringVar(&file, "file", "", "restrict to one file")
	cmd.Flags().StringVar(&kind, "kind", "", "comment kind filter")
	cmd.Flags().BoolVar(&documented, "documented", false, "restrict to (or exclude) comments associated with a symbol")
	cmd.Flags().StringVar(&symbol, "symbol", "", "associated-symbol substring filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows returned")
	return cmd
}
