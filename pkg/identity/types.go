package identity

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// SuperuserID is the user id that bypasses read and write checks
const SuperuserID = 0

var (
	// ErrGroups is returned when the supplementary group list cannot be read
	ErrGroups = errors.New("reading supplementary groups")

	// ErrInvalidIdentity is returned when an identity string cannot be parsed
	ErrInvalidIdentity = errors.New("invalid identity")
)

// Identity is the real user, real group and supplementary groups a check runs as
type Identity struct {
	UID    uint32
	GID    uint32
	Groups []uint32
}

// Resolver provides the identity of the caller
type Resolver interface {
	// Resolve returns a freshly captured identity
	Resolve() (Identity, error)
}

// IsSuperuser reports whether the identity is uid 0
func (id Identity) IsSuperuser() bool {
	return id.UID == SuperuserID
}

// InGroup reports whether gid is one of the supplementary groups
func (id Identity) InGroup(gid uint32) bool {
	return slices.Contains(id.Groups, gid)
}

// Clone returns a copy that shares no memory with id
func (id Identity) Clone() Identity {
	id.Groups = slices.Clone(id.Groups)
	return id
}

// String renders the identity as uid:gid[:g1,g2,...]
func (id Identity) String() string {
	s := fmt.Sprintf("%d:%d", id.UID, id.GID)
	if len(id.Groups) == 0 {
		return s
	}
	groups := make([]string, len(id.Groups))
	for i, g := range id.Groups {
		groups[i] = strconv.FormatUint(uint64(g), 10)
	}
	return s + ":" + strings.Join(groups, ",")
}

// Parse reads an identity in the uid:gid[:g1,g2,...] form
func Parse(s string) (Identity, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Identity{}, fmt.Errorf("%w: %q: want uid:gid[:groups]", ErrInvalidIdentity, s)
	}

	uid, err := parseID(parts[0])
	if err != nil {
		return Identity{}, fmt.Errorf("%w: uid: %v", ErrInvalidIdentity, err)
	}
	gid, err := parseID(parts[1])
	if err != nil {
		return Identity{}, fmt.Errorf("%w: gid: %v", ErrInvalidIdentity, err)
	}

	id := Identity{UID: uid, GID: gid}
	if len(parts) == 3 && parts[2] != "" {
		for _, field := range strings.Split(parts[2], ",") {
			g, err := parseID(field)
			if err != nil {
				return Identity{}, fmt.Errorf("%w: group: %v", ErrInvalidIdentity, err)
			}
			id.Groups = append(id.Groups, g)
		}
	}
	return id, nil
}

func parseID(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
