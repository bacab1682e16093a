// Command codelens extracts source facts from a tree of files across
// nine language families and serves reports over the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "codelens",
		Short:         "Extract and query multi-language source facts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newParseCommand(),
		newOverviewCommand(),
		newSearchCommand(),
		newOutlineCommand(),
		newFilesCommand(),
		newReadCommand(),
		newQueryCommand(),
		newDepsCommand(),
		newDependentsCommand(),
		newCallersCommand(),
		newImportsCommand(),
		newCommentsCommand(),
		newErrorsCommand(),
	)
	return root
}
