package shell

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mmcdole/faccess/pkg/logging"
	"github.com/mmcdole/faccess/pkg/pathsearch"
)

// builtin runs a builtin command. done reports that the shell should exit with code.
type builtin func(sh *Shell, line string, args []string) (code int, done bool)

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"echo": builtinEcho,
		"exit": builtinExit,
		"type": builtinType,
	}
}

// Builtins returns the builtin command names, sorted
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBuiltin reports whether name is a builtin command
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Shell is a minimal interactive shell with the echo, exit and type builtins
type Shell struct {
	in       LineReader
	out      io.Writer
	env      pathsearch.Env
	searcher *pathsearch.Searcher
}

// New creates a shell. env is the snapshot PATH lookups use.
func New(in LineReader, out io.Writer, env pathsearch.Env, searcher *pathsearch.Searcher) (*Shell, error) {
	if in == nil {
		return nil, fmt.Errorf("line reader is required")
	}
	if searcher == nil {
		return nil, fmt.Errorf("path searcher is required")
	}
	if env == nil {
		env = pathsearch.Env{}
	}
	return &Shell{in: in, out: out, env: env, searcher: searcher}, nil
}

// Run reads and executes lines until exit or end of input, returning the exit status
func (sh *Shell) Run() (int, error) {
	for {
		line, err := sh.in.Readline()
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		if err != nil {
			return 1, fmt.Errorf("reading input: %w", err)
		}

		if code, done := sh.Execute(line); done {
			return code, nil
		}
	}
}

// Execute runs a single line. done reports that the shell should exit with code.
func (sh *Shell) Execute(line string) (code int, done bool) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return 0, false
	}

	if fn, ok := builtins[args[0]]; ok {
		return fn(sh, line, args)
	}

	logging.App.Debug("Unknown command", "command", args[0])
	fmt.Fprintf(sh.out, "%s: command not found\n", args[0])
	return 127, false
}

func builtinEcho(sh *Shell, line string, _ []string) (int, bool) {
	rest := strings.TrimLeft(line, " \t")
	rest = strings.TrimPrefix(rest, "echo")
	if len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
		rest = rest[1:]
	}
	fmt.Fprintln(sh.out, rest)
	return 0, false
}

func builtinExit(sh *Shell, _ string, args []string) (int, bool) {
	if len(args) < 2 {
		return 0, true
	}
	code, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(sh.out, "exit: %s: numeric argument required\n", args[1])
		return 2, true
	}
	return code & 0xff, true
}

func builtinType(sh *Shell, _ string, args []string) (int, bool) {
	names := args[1:]
	all := false
	if len(names) > 0 && names[0] == "-a" {
		all = true
		names = names[1:]
	}

	status := 0
	for _, name := range names {
		if !Describe(sh.out, sh.searcher, sh.env, name, all) {
			status = 1
		}
	}
	return status, false
}

// Describe writes what name resolves to, builtins first, and reports whether
// it resolved. With all set every PATH match is listed.
func Describe(w io.Writer, searcher *pathsearch.Searcher, env pathsearch.Env, name string, all bool) bool {
	found := false
	if IsBuiltin(name) {
		fmt.Fprintf(w, "%s is a shell builtin\n", name)
		if !all {
			return true
		}
		found = true
	}

	var paths []string
	if all {
		paths = searcher.FindAll(name, env)
	} else if p, err := searcher.Find(name, env); err == nil {
		paths = []string{p}
	}
	for _, p := range paths {
		fmt.Fprintf(w, "%s is %s\n", name, p)
		found = true
	}

	if !found {
		fmt.Fprintf(w, "%s: not found\n", name)
	}
	return found
}
