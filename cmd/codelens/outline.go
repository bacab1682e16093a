package main

import (
	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/report"
)

func newOutlineCommand() *cobra.Command {
	var dataDir, format string

	cmd := &cobra.Command{
		Use:   "outline <file>",
		Short: "Show one file's language, imports, and symbols",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			t, err := report.Outline(eng, args[0])
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
