package access

import (
	"errors"
	"fmt"
	"syscall"

	golog "github.com/fclairamb/go-log"

	"github.com/mmcdole/faccess/pkg/identity"
	"github.com/mmcdole/faccess/pkg/logging"
	"github.com/mmcdole/faccess/pkg/metadata"
)

// Checker decides access(2)-style permission checks from metadata and the
// caller's real identity, without asking the kernel for the decision.
//
// A Checker holds no per-call state: every call resolves its own identity
// and metadata, so concurrent calls need no locking. The filesystem may
// change between the ancestor checks and the final lookup; that race is
// not guarded against.
type Checker struct {
	accessor metadata.Accessor
	resolver identity.Resolver
	logger   golog.Logger
}

// NewChecker creates a checker reading metadata from accessor and identity from resolver
func NewChecker(accessor metadata.Accessor, resolver identity.Resolver) (*Checker, error) {
	if accessor == nil {
		return nil, fmt.Errorf("metadata accessor is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("identity resolver is required")
	}
	return &Checker{
		accessor: accessor,
		resolver: resolver,
		logger:   logging.App,
	}, nil
}

// SetLogger replaces the logger decisions are reported to
func (c *Checker) SetLogger(logger golog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Access tests path against mask. It returns nil when access is granted and
// an *Error describing the first failure otherwise.
func (c *Checker) Access(path string, mask Mask) error {
	req, err := NewRequest(path, mask)
	if err != nil {
		c.logger.Debug("Rejected access request", "path_len", len(path), "mask", mask, "error", err)
		return err
	}
	return c.Check(req)
}

// Check runs a validated request
func (c *Checker) Check(req Request) error {
	return c.run(req, nil)
}

// Explain runs the check and also returns every component it examined, in
// order. The steps are returned even when the check fails.
func (c *Checker) Explain(path string, mask Mask) ([]Step, error) {
	req, err := NewRequest(path, mask)
	if err != nil {
		return nil, err
	}
	var t trace
	err = c.run(req, &t)
	return t, err
}

func (c *Checker) run(req Request, t *trace) error {
	id, err := c.resolver.Resolve()
	if err != nil {
		kind := KindOther
		if errors.Is(err, syscall.ENOMEM) {
			kind = KindOutOfMemory
		}
		c.logger.Error("Resolving identity failed", "path", req.path, "error", err)
		return newError(kind, "identity", req.path, err)
	}

	err = c.decide(req, id, t)
	c.logger.Debug("Access decision",
		"path", req.path,
		"mask", req.mask,
		"identity", id,
		"result", KindOf(err),
	)
	return err
}

func (c *Checker) decide(req Request, id identity.Identity, t *trace) error {
	if err := c.searchAncestors(req.path, id, t); err != nil {
		return err
	}

	md, err := c.accessor.Stat(req.path)
	if err != nil {
		return newError(lookupKind(err), "stat", req.path, err)
	}

	principal := Classify(id, md)
	if req.mask == Exists {
		t.add(Step{Path: req.path, Role: RoleTarget, Metadata: md, Principal: principal, Mask: Exists, Granted: true})
		return nil
	}

	for _, class := range req.mask.Classes() {
		if !principal.Allows(md, class) {
			t.add(Step{Path: req.path, Role: RoleTarget, Metadata: md, Principal: principal, Mask: MaskOf(class)})
			return newError(KindPermissionDenied, "access", req.path, nil)
		}
	}
	t.add(Step{Path: req.path, Role: RoleTarget, Metadata: md, Principal: principal, Mask: req.mask, Granted: true})
	return nil
}
