package main

import (
	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/query"
	"github.com/codelens/codelens/internal/report"
)

func newErrorsCommand() *cobra.Command {
	var dataDir, format, errorType, language string
	var limit int

	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Filter the errors table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			t, err := report.Errors(eng, query.ErrorsOptions{ErrorType: errorType, Language: language, Limit: limit})
			if err != nil {
				return err
			}
			return renderTable(t, format)
		},
	}

	addDataDirFlag(cmd, &dataDir)
	addFormatFlag(cmd, &format)
	cmd.Flags().StringVar(&errorType, "error-type", "", "error_type filter")
	cmd.Flags().StringVar(&language, "language", "", "language filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows returned")
	return cmd
}
