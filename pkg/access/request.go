package access

import "strings"

// MaxPathLen is PATH_MAX: paths of this many bytes or more are rejected
const MaxPathLen = 4096

// Request is a validated path and mask
type Request struct {
	path string
	mask Mask
}

// NewRequest validates the path and mask up front so nothing downstream
// handles an empty, oversized or NUL-carrying path.
func NewRequest(path string, mask Mask) (Request, error) {
	switch {
	case path == "":
		return Request{}, newError(KindInvalidArgument, "access", path, nil)
	case len(path) >= MaxPathLen:
		return Request{}, newError(KindNameTooLong, "access", path[:64]+"...", nil)
	case strings.IndexByte(path, 0) >= 0:
		return Request{}, newError(KindInvalidArgument, "access", path, nil)
	case !mask.Valid():
		return Request{}, newError(KindInvalidArgument, "access", path, nil)
	}
	return Request{path: path, mask: mask}, nil
}

// Path returns the requested path
func (r Request) Path() string {
	return r.path
}

// Mask returns the requested classes
func (r Request) Mask() Mask {
	return r.mask
}
