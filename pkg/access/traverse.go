package access

import (
	"github.com/mmcdole/faccess/pkg/identity"
	"github.com/mmcdole/faccess/pkg/metadata"
)

// Role says why a component was examined
type Role int

const (
	RoleStart Role = iota // "/" or the working directory
	RoleAncestor
	RoleTarget
)

func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleAncestor:
		return "ancestor"
	case RoleTarget:
		return "target"
	}
	return "unknown"
}

// Step records one component examined during a check
type Step struct {
	Path      string
	Role      Role
	Metadata  metadata.FileMetadata
	Principal Principal
	Mask      Mask
	Granted   bool
}

type trace []Step

func (t *trace) add(s Step) {
	if t != nil {
		*t = append(*t, s)
	}
}

// searchAncestors requires search permission on the starting directory and on
// every directory prefix of p. The final component is left to the caller.
func (c *Checker) searchAncestors(p string, id identity.Identity, t *trace) error {
	start := "."
	if p[0] == '/' {
		start = "/"
	}
	if err := c.requireSearch(start, RoleStart, id, t); err != nil {
		return err
	}

	for i := 1; i < len(p); i++ {
		// runs of separators end a single prefix
		if p[i] != '/' || p[i-1] == '/' {
			continue
		}
		if err := c.requireSearch(p[:i], RoleAncestor, id, t); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) requireSearch(dir string, role Role, id identity.Identity, t *trace) error {
	md, err := c.accessor.Stat(dir)
	if err != nil {
		return newError(lookupKind(err), "stat", dir, err)
	}
	if !md.IsDir {
		return newError(KindNotADirectory, "search", dir, nil)
	}

	principal := Classify(id, md)
	granted := principal.Allows(md, Execute)
	t.add(Step{Path: dir, Role: role, Metadata: md, Principal: principal, Mask: MaskExecute, Granted: granted})
	if !granted {
		return newError(KindPermissionDenied, "search", dir, nil)
	}
	return nil
}
