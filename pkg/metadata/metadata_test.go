package metadata

import (
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFsAccessor_MemMapFs(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/srv/data", 0o750))
	require.NoError(t, afero.WriteFile(mem, "/srv/data/report.txt", []byte("q3"), 0o640))
	require.NoError(t, mem.Chmod("/srv/data/report.txt", 0o640|os.ModeSetgid))

	accessor, err := NewFsAccessor(mem, Owner{UID: 1000, GID: 100})
	require.NoError(t, err)

	t.Run("directory", func(t *testing.T) {
		md, err := accessor.Stat("/srv/data")
		require.NoError(t, err)
		assert.True(t, md.IsDir)
		assert.Equal(t, uint32(0o750), md.Mode)
	})

	t.Run("file with setgid and fallback owner", func(t *testing.T) {
		md, err := accessor.Stat("/srv/data/report.txt")
		require.NoError(t, err)
		assert.False(t, md.IsDir)
		assert.Equal(t, ModeSetgid|0o640, md.Mode)
		assert.Equal(t, uint32(0o640), md.Perm())
		assert.Equal(t, uint32(1000), md.UID)
		assert.Equal(t, uint32(100), md.GID)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := accessor.Stat("/srv/nope")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("requires filesystem", func(t *testing.T) {
		_, err := NewFsAccessor(nil, Owner{})
		assert.Error(t, err)
	})
}

func TestMemoryAccessor(t *testing.T) {
	accessor := NewMemoryAccessor(map[string]FileMetadata{
		"/":             {IsDir: true, Mode: 0o755},
		"/home/":        {IsDir: true, Mode: 0o755},
		"/home/u/notes": {Mode: 0o644, UID: 1000},
	})

	t.Run("paths are cleaned", func(t *testing.T) {
		md, err := accessor.Stat("/home//u/./notes")
		require.NoError(t, err)
		assert.Equal(t, uint32(1000), md.UID)

		_, err = accessor.Stat("/home")
		assert.NoError(t, err)
	})

	t.Run("missing entry", func(t *testing.T) {
		_, err := accessor.Stat("/home/v")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("below a regular file", func(t *testing.T) {
		_, err := accessor.Stat("/home/u/notes/inner")
		assert.ErrorIs(t, err, syscall.ENOTDIR)
	})

	t.Run("trailing slash on a regular file", func(t *testing.T) {
		_, err := accessor.Stat("/home/u/notes/")
		assert.ErrorIs(t, err, syscall.ENOTDIR)
	})

	t.Run("add and remove", func(t *testing.T) {
		accessor.Add("/tmp", FileMetadata{IsDir: true, Mode: 0o1777})
		md, err := accessor.Stat("/tmp")
		require.NoError(t, err)
		assert.Equal(t, "d1777 0:0", md.String())

		accessor.Remove("/tmp")
		_, err = accessor.Stat("/tmp")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}
