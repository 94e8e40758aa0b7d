//go:build !unix

package identity

import (
	"errors"
	"fmt"
)

// ProcessResolver is unavailable on platforms without POSIX ids
type ProcessResolver struct{}

// NewProcessResolver creates a resolver for the current process
func NewProcessResolver() *ProcessResolver {
	return &ProcessResolver{}
}

// Resolve implements Resolver
func (r *ProcessResolver) Resolve() (Identity, error) {
	return Identity{}, fmt.Errorf("%w: %w", ErrGroups, errors.ErrUnsupported)
}
