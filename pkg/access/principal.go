package access

import (
	"fmt"

	"github.com/mmcdole/faccess/pkg/identity"
	"github.com/mmcdole/faccess/pkg/metadata"
)

// Principal is the single identity class that decides a check against a file
type Principal int

const (
	Superuser Principal = iota
	Owner
	Group
	SupplementaryGroup
	Other
)

func (p Principal) String() string {
	switch p {
	case Superuser:
		return "superuser"
	case Owner:
		return "owner"
	case Group:
		return "group"
	case SupplementaryGroup:
		return "supplementary-group"
	case Other:
		return "other"
	}
	return fmt.Sprintf("Principal(%d)", int(p))
}

// principalRules is evaluated in order and the first match wins. Other
// always matches, so every identity lands in exactly one class.
var principalRules = []struct {
	principal Principal
	matches   func(id identity.Identity, md metadata.FileMetadata) bool
}{
	{Superuser, func(id identity.Identity, _ metadata.FileMetadata) bool { return id.IsSuperuser() }},
	{Owner, func(id identity.Identity, md metadata.FileMetadata) bool { return id.UID == md.UID }},
	{Group, func(id identity.Identity, md metadata.FileMetadata) bool { return id.GID == md.GID }},
	{SupplementaryGroup, func(id identity.Identity, md metadata.FileMetadata) bool { return id.InGroup(md.GID) }},
	{Other, func(identity.Identity, metadata.FileMetadata) bool { return true }},
}

// Classify returns the principal id acts as for a file with metadata md
func Classify(id identity.Identity, md metadata.FileMetadata) Principal {
	for _, rule := range principalRules {
		if rule.matches(id, md) {
			return rule.principal
		}
	}
	return Other
}

// Allows reports whether the principal is granted class on md. The result is
// final: a denied owner is never rescued by the group or other bits.
func (p Principal) Allows(md metadata.FileMetadata, class Class) bool {
	owner, group, other := class.Bits()
	switch p {
	case Superuser:
		if class == Execute {
			// somebody must be allowed to execute it
			return md.Mode&(owner|group|other) != 0
		}
		return true
	case Owner:
		return md.Mode&owner != 0
	case Group, SupplementaryGroup:
		return md.Mode&group != 0
	default:
		return md.Mode&other != 0
	}
}

// Allowed reports whether id is granted class on md
func Allowed(id identity.Identity, md metadata.FileMetadata, class Class) bool {
	return Classify(id, md).Allows(md, class)
}

// AllowedMask reports whether id is granted every class in mask. An
// existence-only mask is always granted.
func AllowedMask(id identity.Identity, md metadata.FileMetadata, mask Mask) bool {
	p := Classify(id, md)
	for _, class := range mask.Classes() {
		if !p.Allows(md, class) {
			return false
		}
	}
	return true
}
