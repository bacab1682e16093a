package main

import (
	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/coordinate"
	"github.com/codelens/codelens/internal/lang"
	"github.com/codelens/codelens/internal/util"
)

func newParseCommand() *cobra.Command {
	var output string
	var languagesCSV string
	var ignoreFile string

	cmd := &cobra.Command{
		Use:   "parse <dir>",
		Short: "Discover and extract source facts under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tags []lang.Tag
			if languagesCSV != "" {
				tags = lang.ParseFilter(languagesCSV)
				if len(tags) == 0 {
					return errConfigf("--language was given but resolved to an empty list")
				}
			}

			logger := util.NewLogger(util.DefaultLoggerConfig())
			summary, err := coordinate.Run(coordinate.Options{
				Root:       args[0],
				OutputDir:  output,
				Languages:  tags,
				IgnoreFile: ignoreFile,
			}, logger)
			if err != nil {
				return err
			}

			logger.Info("parse complete",
				"files_indexed", summary.FilesIndexed,
				"files_failed", summary.FilesFailed,
				"symbols", summary.Symbols,
				"imports", summary.Imports,
				"comments", summary.Comments,
				"duration", summary.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "./codelens-data", "output directory for the columnar tables")
	cmd.Flags().StringVar(&languagesCSV, "language", "", "comma-separated list of language tags to restrict extraction to")
	cmd.Flags().StringVar(&ignoreFile, "ignore-file", "", "YAML-or-plain-line ignore-pattern file")
	return cmd
}
