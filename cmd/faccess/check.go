package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmcdole/faccess/pkg/access"
	"github.com/mmcdole/faccess/pkg/logging"
)

func newCheckCmd() *cobra.Command {
	var mode string
	var explain bool

	cmd := &cobra.Command{
		Use:   "check PATH...",
		Short: "Test paths for existence or read, write and execute permission",
		Long: `Test each PATH the way access(2) would, using file metadata and the real ids.

The mode is "f" for existence (the default), any combination of r, w and x,
or an octal digit 0-7. The exit status is 1 if any path fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := access.ParseMask(mode)
			if err != nil {
				return err
			}
			checker, err := newChecker(config)
			if err != nil {
				return fmt.Errorf("failed to create checker: %w", err)
			}
			return runCheck(cmd.OutOrStdout(), checker, args, mask, explain)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "f", "permissions to test: f, or any of r, w, x")
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "show every component examined")
	return cmd
}

func runCheck(out io.Writer, checker *access.Checker, paths []string, mask access.Mask, explain bool) error {
	failed := 0
	for _, path := range paths {
		var steps []access.Step
		var err error
		if explain {
			steps, err = checker.Explain(path, mask)
		} else {
			err = checker.Access(path, mask)
		}

		status := "granted"
		if err != nil {
			status = "denied"
			failed++
		}
		logging.Decisions.LogDecision("check", path, status,
			"mask", mask,
			"as", identityLabel(config),
			"kind", access.KindOf(err),
		)

		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
		} else {
			fmt.Fprintf(out, "%s: ok\n", path)
		}
		if explain && len(steps) > 0 {
			printSteps(out, steps)
		}
	}

	if failed > 0 {
		return exitStatus(1)
	}
	return nil
}

func identityLabel(config *Config) string {
	if config == nil || config.Identity == "" {
		return "process"
	}
	return config.Identity
}
