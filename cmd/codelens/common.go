package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/query"
	"github.com/codelens/codelens/internal/report"
)

func errConfigf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

func addDataDirFlag(cmd *cobra.Command, dataDir *string) {
	cmd.Flags().StringVar(dataDir, "data-dir", "./codelens-data", "directory holding the columnar tables")
}

func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVar(format, "format", "table", "output format: table|json|csv")
}

func openEngine(dataDir string) (*query.Engine, error) {
	eng, err := query.New(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w (suggestion: re-run `codelens parse`)", dataDir, err)
	}
	return eng, nil
}

func renderTable(t report.Table, format string) error {
	return report.Render(os.Stdout, t, report.Format(format))
}
