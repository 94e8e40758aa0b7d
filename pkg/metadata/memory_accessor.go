package metadata

import (
	"io/fs"
	"path"
	"sync"
	"syscall"
)

// MemoryAccessor serves metadata from an in-memory table keyed by cleaned path.
// Relative paths are looked up as given, with "." standing for the working directory.
type MemoryAccessor struct {
	mu      sync.RWMutex
	entries map[string]FileMetadata
}

// NewMemoryAccessor creates an accessor with optional initial entries
func NewMemoryAccessor(initial map[string]FileMetadata) *MemoryAccessor {
	a := &MemoryAccessor{entries: make(map[string]FileMetadata, len(initial))}
	for p, md := range initial {
		a.entries[path.Clean(p)] = md
	}
	return a
}

// Add adds or replaces the metadata for p
func (a *MemoryAccessor) Add(p string, md FileMetadata) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries[path.Clean(p)] = md
}

// Remove deletes the entry for p
func (a *MemoryAccessor) Remove(p string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.entries, path.Clean(p))
}

// Stat implements Accessor. Missing entries below a non-directory fail with
// ENOTDIR, everything else missing fails with ENOENT.
func (a *MemoryAccessor) Stat(p string) (FileMetadata, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	clean := path.Clean(p)
	if md, ok := a.entries[clean]; ok {
		// a trailing slash only resolves to a directory
		if !md.IsDir && len(p) > 1 && p[len(p)-1] == '/' {
			return FileMetadata{}, &fs.PathError{Op: "stat", Path: p, Err: syscall.ENOTDIR}
		}
		return md, nil
	}

	for dir := path.Dir(clean); ; dir = path.Dir(dir) {
		if md, ok := a.entries[dir]; ok && !md.IsDir {
			return FileMetadata{}, &fs.PathError{Op: "stat", Path: p, Err: syscall.ENOTDIR}
		}
		if dir == "/" || dir == "." {
			break
		}
	}
	return FileMetadata{}, &fs.PathError{Op: "stat", Path: p, Err: syscall.ENOENT}
}
