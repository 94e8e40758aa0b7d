package pathsearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/faccess/pkg/access"
	"github.com/mmcdole/faccess/pkg/logging"
)

// ErrNotFound is returned when no PATH entry holds an executable candidate
var ErrNotFound = errors.New("not found")

// Checker is the subset of access.Checker a Searcher needs
type Checker interface {
	Access(path string, mask access.Mask) error
}

// Searcher finds executables by testing each PATH candidate for execute permission
type Searcher struct {
	checker Checker
}

// NewSearcher creates a searcher backed by checker
func NewSearcher(checker Checker) (*Searcher, error) {
	if checker == nil {
		return nil, fmt.Errorf("access checker is required")
	}
	return &Searcher{checker: checker}, nil
}

// Find returns the first executable candidate for name
func (s *Searcher) Find(name string, env Env) (string, error) {
	found := s.search(name, env, true)
	if len(found) == 0 {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return found[0], nil
}

// FindAll returns every executable candidate for name, in PATH order
func (s *Searcher) FindAll(name string, env Env) []string {
	return s.search(name, env, false)
}

func (s *Searcher) search(name string, env Env, first bool) []string {
	if name == "" {
		return nil
	}

	// names with a separator are not looked up in PATH
	if strings.Contains(name, "/") {
		if err := s.checker.Access(name, access.MaskExecute); err != nil {
			logging.App.Debug("Candidate rejected", "path", name, "error", err)
			return nil
		}
		return []string{name}
	}

	var found []string
	for _, dir := range env.Dirs() {
		candidate := strings.TrimRight(dir, "/") + "/" + name
		if err := s.checker.Access(candidate, access.MaskExecute); err != nil {
			logging.App.Debug("Candidate rejected", "path", candidate, "error", err)
			continue
		}
		found = append(found, candidate)
		if first {
			break
		}
	}
	return found
}
