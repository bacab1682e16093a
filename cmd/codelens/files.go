package main

import (
	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/query"
	"github.com/codelens/codelens/internal/report"
)

func newFilesCommand() *cobra.Command {
	var dataDir, format, language, directory, sortBy string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "files",
		Short: "List files with optional language and directory filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(dataDir)
			if err != nil {
				return err
			}
			defer eng.Close()

			t, err := report.Files(eng, query.FilesOptions{
				Language: language, Directory: directory, Limit: limit, Offset: offset, Sort: sortBy,
			})
			if err != nil {
				return err
			}
			return renderTable(t, format)
		},
	}

	addDataDirFlag(cmd, &dataDir)
	addFormatFlag(cmd, &format)
	cmd.Flags().StringVar(&language, "language", "", "restrict to one language tag")
	cmd.Flags().StringVar(&directory, "directory", "", "restrict to paths under this prefix")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum rows returned")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip before the returned page")
	cmd.Flags().StringVar(&sortBy, "sort", "path", "sort key: path|lines|size|imports|dependents")
	return cmd
}
