package pathsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/faccess/pkg/access"
	"github.com/mmcdole/faccess/pkg/identity"
	"github.com/mmcdole/faccess/pkg/metadata"
)

func newSearcher(t *testing.T) *Searcher {
	t.Helper()
	tree := metadata.NewMemoryAccessor(map[string]metadata.FileMetadata{
		"/":              {IsDir: true, Mode: 0o755},
		"/bin":           {IsDir: true, Mode: 0o755},
		"/bin/ls":        {Mode: 0o755},
		"/usr":           {IsDir: true, Mode: 0o755},
		"/usr/bin":       {IsDir: true, Mode: 0o755},
		"/usr/bin/ls":    {Mode: 0o755},
		"/usr/bin/notes": {Mode: 0o644},
		"/sbin":          {IsDir: true, Mode: 0o700},
		"/sbin/fsck":     {Mode: 0o755},
		".":              {IsDir: true, Mode: 0o755, UID: 1000},
		"scripts":        {IsDir: true, Mode: 0o755, UID: 1000},
		"scripts/build":  {Mode: 0o700, UID: 1000},
	})
	checker, err := access.NewChecker(tree, identity.NewStaticResolver(identity.Identity{UID: 1000, GID: 1000}))
	require.NoError(t, err)

	s, err := NewSearcher(checker)
	require.NoError(t, err)
	return s
}

func TestParseEnviron(t *testing.T) {
	env := ParseEnviron([]string{"PATH=/bin:/usr/bin", "HOME=/home/u", "EMPTY=", "BROKEN", "=nokey", "A=1", "A=2", "EQ=a=b"})

	v, ok := env.Lookup("PATH")
	assert.True(t, ok)
	assert.Equal(t, "/bin:/usr/bin", v)

	v, ok = env.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = env.Lookup("BROKEN")
	assert.False(t, ok)

	assert.Equal(t, "2", env["A"])
	assert.Equal(t, "a=b", env["EQ"])
	assert.Len(t, env, 5)
}

func TestEnvDirs(t *testing.T) {
	assert.Equal(t, []string{"/bin", "/usr/bin"}, Env{"PATH": "::/bin::/usr/bin:"}.Dirs())
	assert.Empty(t, Env{}.Dirs())
}

func TestSearcher(t *testing.T) {
	s := newSearcher(t)
	env := Env{"PATH": "/sbin:/usr/bin:/bin"}

	t.Run("first match in PATH order", func(t *testing.T) {
		p, err := s.Find("ls", env)
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/ls", p)
	})

	t.Run("all matches", func(t *testing.T) {
		assert.Equal(t, []string{"/usr/bin/ls", "/bin/ls"}, s.FindAll("ls", env))
	})

	t.Run("unsearchable directory is skipped", func(t *testing.T) {
		_, err := s.Find("fsck", env)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("not executable", func(t *testing.T) {
		_, err := s.Find("notes", env)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("no PATH", func(t *testing.T) {
		_, err := s.Find("ls", Env{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("trailing slash in entry", func(t *testing.T) {
		p, err := s.Find("ls", Env{"PATH": "/bin/"})
		require.NoError(t, err)
		assert.Equal(t, "/bin/ls", p)
	})

	t.Run("names with a slash are checked directly", func(t *testing.T) {
		p, err := s.Find("scripts/build", Env{})
		require.NoError(t, err)
		assert.Equal(t, "scripts/build", p)

		_, err = s.Find("/usr/bin/notes", env)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		assert.Empty(t, s.FindAll("", env))
	})

	t.Run("requires checker", func(t *testing.T) {
		_, err := NewSearcher(nil)
		assert.Error(t, err)
	})
}
