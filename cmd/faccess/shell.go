package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mmcdole/faccess/pkg/logging"
	"github.com/mmcdole/faccess/pkg/pathsearch"
	"github.com/mmcdole/faccess/pkg/shell"
)

const prompt = "$ "

// interruptible turns Ctrl-C into an empty line instead of an error
type interruptible struct {
	rl *readline.Instance
}

func (r interruptible) Readline() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shell with the echo, exit and type builtins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := newChecker(config)
			if err != nil {
				return fmt.Errorf("failed to create checker: %w", err)
			}
			searcher, err := pathsearch.NewSearcher(checker)
			if err != nil {
				return err
			}

			var in shell.LineReader
			if readline.IsTerminal(int(os.Stdin.Fd())) {
				rl, err := readline.NewEx(&readline.Config{
					Prompt:          prompt,
					HistoryFile:     config.HistoryFile,
					InterruptPrompt: "^C",
					EOFPrompt:       "exit",
				})
				if err != nil {
					return fmt.Errorf("failed to start line editor: %w", err)
				}
				defer rl.Close()
				in = interruptible{rl: rl}
			} else {
				in = shell.NewLineScanner(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
			}

			sh, err := shell.New(in, cmd.OutOrStdout(), pathsearch.FromOS(), searcher)
			if err != nil {
				return err
			}

			logging.App.Debug("Shell started", "builtins", shell.Builtins())
			code, err := sh.Run()
			if err != nil {
				return err
			}
			if code != 0 {
				return exitStatus(code)
			}
			return nil
		},
	}
}
