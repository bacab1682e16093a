package main

import (
	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/report"
)

func newQueryCommand() *cobra.Command {
	var dataDir, format string

	cmd := &cobra.Command{
		Use:   "query <sql>",
		Short: "Run a raw SQL passthrough against the registered views",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			t, err := report.Query(eng, args[0])
			if err != nil {
				return err
			}
			return renderTable(t, format)
		},
	}

	addDataDirFlag(cmd, &dataDir)
	addFormatFlag(cmd, &format)
	return cmd
}
