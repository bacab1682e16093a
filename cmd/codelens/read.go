package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/report"
)

func newReadCommand() *cobra.Command {
	var root string
	var startLine, endLine int

	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Read a line range directly from the source tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := report.ReadFile(root, args[0], startLine, endLine)
			if err != nil {
				return err
			}
			fmt.Print(text)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "source root the file path is relative to")
	cmd.Flags().IntVar(&startLine, "start-line", 0, "1-based first line, 0 for the start of the file")
	cmd.Flags().IntVar(&endLine, "end-line", 0, "1-based last line, 0 for the end of the file")
	return cmd
}
