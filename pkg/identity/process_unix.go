//go:build unix

package identity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ProcessResolver reads the real ids and supplementary groups of the running process
type ProcessResolver struct {
	getgroups func() ([]int, error)
}

// NewProcessResolver creates a resolver for the current process
func NewProcessResolver() *ProcessResolver {
	return &ProcessResolver{getgroups: unix.Getgroups}
}

// Resolve implements Resolver. The effective ids are never consulted.
func (r *ProcessResolver) Resolve() (Identity, error) {
	groups, err := r.getgroups()
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrGroups, err)
	}

	id := Identity{
		UID:    uint32(unix.Getuid()),
		GID:    uint32(unix.Getgid()),
		Groups: make([]uint32, 0, len(groups)),
	}
	for _, g := range groups {
		id.Groups = append(id.Groups, uint32(g))
	}
	return id, nil
}
