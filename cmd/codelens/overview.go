package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/report"
)

func newOverviewCommand() *cobra.Command {
	var dataDir, format string
	var depth int

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Render the composite project overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			ov, err := report.BuildOverview(eng, depth)
			if err != nil {
				return err
			}
			return report.RenderOverview(os.Stdout, ov, report.Format(format))
		},
	}

	addDataDirFlag(cmd, &dataDir)
	addFormatFlag(cmd, &format)
	cmd.Flags().IntVar(&depth, "depth", 3, "module tree truncation depth")
	return cmd
}
