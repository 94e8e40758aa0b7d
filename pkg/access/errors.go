package access

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kind classifies why an access check failed
type Kind int

const (
	KindNone Kind = iota
	KindInvalidArgument
	KindNameTooLong
	KindNotFound
	KindNotADirectory
	KindPermissionDenied
	KindOutOfMemory
	KindOther
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNameTooLong      = errors.New("file name too long")
	ErrNotFound         = errors.New("no such file or directory")
	ErrNotADirectory    = errors.New("not a directory")
	ErrPermissionDenied = errors.New("permission denied")
	ErrOutOfMemory      = errors.New("cannot allocate memory")
	ErrOther            = errors.New("access check failed")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindNameTooLong:
		return ErrNameTooLong
	case KindNotFound:
		return ErrNotFound
	case KindNotADirectory:
		return ErrNotADirectory
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindOutOfMemory:
		return ErrOutOfMemory
	case KindOther:
		return ErrOther
	}
	return nil
}

func (k Kind) String() string {
	if k == KindNone {
		return "ok"
	}
	return k.sentinel().Error()
}

// Errno returns the errno access(2) would report for the kind, or 0
func (k Kind) Errno() syscall.Errno {
	switch k {
	case KindInvalidArgument:
		return syscall.EINVAL
	case KindNameTooLong:
		return syscall.ENAMETOOLONG
	case KindNotFound:
		return syscall.ENOENT
	case KindNotADirectory:
		return syscall.ENOTDIR
	case KindPermissionDenied:
		return syscall.EACCES
	case KindOutOfMemory:
		return syscall.ENOMEM
	}
	return 0
}

// Error describes a failed check. Err is the underlying cause; for failures
// decided here rather than reported by a lookup it is the kind's errno.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func newError(kind Kind, op, path string, cause error) *Error {
	if cause == nil {
		cause = kind.Errno()
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: cause}
}

func (e *Error) Error() string {
	if e.Kind == KindOther && e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Errno returns the errno carried by the cause, falling back to the kind's errno
func (e *Error) Errno() syscall.Errno {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return errno
	}
	return e.Kind.Errno()
}

// KindOf classifies any error returned by a Checker. nil is KindNone.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// lookupKind maps a metadata lookup failure onto the taxonomy
func lookupKind(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, syscall.ENOTDIR):
		return KindNotADirectory
	case errors.Is(err, syscall.ENAMETOOLONG):
		return KindNameTooLong
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, syscall.ENOMEM):
		return KindOutOfMemory
	}
	return KindOther
}
