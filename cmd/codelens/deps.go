package main

import (
	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/report"
)

func newDepsCommand() *cobra.Command {
	var dataDir, format string

	cmd := &cobra.Command{
		Use:   "deps <file>",
		Short: "List a file's own imports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			t, err := report.Deps(eng, args[0])
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

func newDependentsCommand() *cobra.Command {
	var dataDir, format string

	cmd := &cobra.Command{
		Use:   "dependents <file>",
		Short: "List files that import this one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			t, err := report.Dependents(eng, args[0])
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
