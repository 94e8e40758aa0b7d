package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/faccess/pkg/pathsearch"
	"github.com/mmcdole/faccess/pkg/shell"
)

func newTypeCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "type NAME...",
		Short: "Show how each NAME would be resolved by the shell",
		Long: `Report whether each NAME is a shell builtin or an executable found in PATH.
A PATH candidate counts only if its directories are searchable and the file
passes the execute check.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := newChecker(config)
			if err != nil {
				return fmt.Errorf("failed to create checker: %w", err)
			}
			searcher, err := pathsearch.NewSearcher(checker)
			if err != nil {
				return err
			}

			env := pathsearch.FromOS()
			missing := false
			for _, name := range args {
				if !shell.Describe(cmd.OutOrStdout(), searcher, env, name, all) {
					missing = true
				}
			}
			if missing {
				return exitStatus(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every match, not only the first")
	return cmd
}
