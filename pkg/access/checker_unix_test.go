//go:build unix

package access

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/faccess/pkg/identity"
	"github.com/mmcdole/faccess/pkg/metadata"
)

// The expectations below hold both for an unprivileged owner and for root.
func TestChecker_HostFilesystem(t *testing.T) {
	base := t.TempDir()
	bin := filepath.Join(base, "bin")
	require.NoError(t, os.Mkdir(bin, 0o755))

	script := filepath.Join(bin, "script")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o600))
	require.NoError(t, os.Chmod(script, 0o700))

	data := filepath.Join(bin, "data")
	require.NoError(t, os.WriteFile(data, []byte("x"), 0o600))
	require.NoError(t, os.Chmod(data, 0o644))

	c, err := NewChecker(metadata.NewOsAccessor(), identity.NewProcessResolver())
	require.NoError(t, err)

	assert.NoError(t, c.Access(script, MaskExecute))
	assert.NoError(t, c.Access(data, MaskRead))
	assert.NoError(t, c.Access(data, Exists))
	assert.ErrorIs(t, c.Access(data, MaskExecute), ErrPermissionDenied)
	assert.ErrorIs(t, c.Access(filepath.Join(data, "x"), Exists), ErrNotADirectory)
	assert.ErrorIs(t, c.Access(filepath.Join(bin, "missing"), Exists), ErrNotFound)
}
