package main

import (
	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/report"
)

func newCallersCommand() *cobra.Command {
	var dataDir, format string
	var limit int

	cmd := &cobra.Command{
		Use:   "callers <name>",
		Short: "List imports of a given symbol name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			t, err := report.Callers(eng, args[0], limit)
			if err != nil {
				return err
			}
			return renderTable(t, format)
		},
	}

	addDataDirFlag(cmd, &dataDir)
	addFormatFlag(cmd, &format)
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows returned")
	return cmd
}
