package pathsearch

import (
	"os"
	"strings"
)

// Env is a snapshot of environment variables, passed explicitly instead of
// read from the process on every lookup.
type Env map[string]string

// ParseEnviron builds an Env from KEY=value entries. Entries without '='
// are ignored and the last duplicate wins.
func ParseEnviron(environ []string) Env {
	env := make(Env, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// FromOS snapshots the process environment
func FromOS() Env {
	return ParseEnviron(os.Environ())
}

// Lookup returns the value of key and whether it was set
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Dirs splits PATH into its non-empty entries, in order
func (e Env) Dirs() []string {
	var dirs []string
	for _, d := range strings.Split(e["PATH"], ":") {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
