package metadata

import (
	"fmt"

	"github.com/spf13/afero"
)

// FsAccessor reads metadata from an afero filesystem
type FsAccessor struct {
	fs           afero.Fs
	defaultOwner Owner
}

// NewFsAccessor creates an accessor over fs. defaultOwner is reported for
// filesystems that do not track ownership, such as afero.MemMapFs.
func NewFsAccessor(fs afero.Fs, defaultOwner Owner) (*FsAccessor, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem is required")
	}
	return &FsAccessor{
		fs:           fs,
		defaultOwner: defaultOwner,
	}, nil
}

// NewOsAccessor creates an accessor over the host filesystem
func NewOsAccessor() *FsAccessor {
	return &FsAccessor{fs: afero.NewOsFs()}
}

// NewRootedAccessor creates an accessor that resolves every path beneath root,
// so "/" names root itself.
func NewRootedAccessor(root string) (*FsAccessor, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory is required")
	}
	base := afero.NewOsFs()
	fi, err := base.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root directory: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}
	return &FsAccessor{fs: afero.NewBasePathFs(base, root)}, nil
}

// Stat implements Accessor
func (a *FsAccessor) Stat(path string) (FileMetadata, error) {
	fi, err := a.fs.Stat(path)
	if err != nil {
		return FileMetadata{}, err
	}
	return FromFileInfo(fi, a.defaultOwner), nil
}
