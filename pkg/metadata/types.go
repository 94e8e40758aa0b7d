package metadata

import (
	"fmt"
	"io/fs"
)

// Mode bits beyond the nine permission bits
const (
	ModeSetuid uint32 = 0o4000
	ModeSetgid uint32 = 0o2000
	ModeSticky uint32 = 0o1000

	// ModeMask covers the 12-bit permission field
	ModeMask uint32 = 0o7777
)

// FileMetadata is the subset of stat information a permission check needs
type FileMetadata struct {
	IsDir bool
	Mode  uint32 // 12-bit permission field
	UID   uint32
	GID   uint32
}

// Accessor looks up metadata for a path, following symlinks like stat(2).
// Lookup failures wrap the underlying cause so callers can test it with errors.Is.
type Accessor interface {
	Stat(path string) (FileMetadata, error)
}

// Owner is the ownership reported for files whose FileInfo carries none
type Owner struct {
	UID uint32
	GID uint32
}

// Perm returns the nine rwx bits
func (m FileMetadata) Perm() uint32 {
	return m.Mode & 0o777
}

// String renders the metadata like a short ls -l entry
func (m FileMetadata) String() string {
	kind := "-"
	if m.IsDir {
		kind = "d"
	}
	return fmt.Sprintf("%s%04o %d:%d", kind, m.Mode&ModeMask, m.UID, m.GID)
}

// FromFileInfo converts a FileInfo, taking ownership from the platform stat
// structure when present and from fallback otherwise.
func FromFileInfo(fi fs.FileInfo, fallback Owner) FileMetadata {
	mode := fi.Mode()
	md := FileMetadata{
		IsDir: mode.IsDir(),
		Mode:  uint32(mode.Perm()),
		UID:   fallback.UID,
		GID:   fallback.GID,
	}
	if mode&fs.ModeSetuid != 0 {
		md.Mode |= ModeSetuid
	}
	if mode&fs.ModeSetgid != 0 {
		md.Mode |= ModeSetgid
	}
	if mode&fs.ModeSticky != 0 {
		md.Mode |= ModeSticky
	}
	if uid, gid, ok := ownerOf(fi); ok {
		md.UID, md.GID = uid, gid
	}
	return md
}
