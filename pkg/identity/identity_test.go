package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Identity
		wantErr bool
	}{
		{"uid and gid", "1000:100", Identity{UID: 1000, GID: 100}, false},
		{"with groups", "1000:100:10,20", Identity{UID: 1000, GID: 100, Groups: []uint32{10, 20}}, false},
		{"empty group list", "0:0:", Identity{UID: 0, GID: 0}, false},
		{"missing gid", "1000", Identity{}, true},
		{"too many fields", "1:2:3:4", Identity{}, true},
		{"negative uid", "-1:0", Identity{}, true},
		{"bad group", "1:2:x", Identity{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIdentity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentityString(t *testing.T) {
	assert.Equal(t, "1000:100", Identity{UID: 1000, GID: 100}.String())
	assert.Equal(t, "0:0:4,27", Identity{Groups: []uint32{4, 27}}.String())

	id, err := Parse(Identity{UID: 5, GID: 6, Groups: []uint32{7}}.String())
	require.NoError(t, err)
	assert.Equal(t, Identity{UID: 5, GID: 6, Groups: []uint32{7}}, id)
}

func TestIdentityMembership(t *testing.T) {
	id := Identity{UID: 1000, GID: 100, Groups: []uint32{4, 27}}

	assert.False(t, id.IsSuperuser())
	assert.True(t, Identity{}.IsSuperuser())
	assert.True(t, id.InGroup(27))
	assert.False(t, id.InGroup(100), "primary group is not a supplementary group")
}

func TestStaticResolver(t *testing.T) {
	groups := []uint32{1, 2}
	r := NewStaticResolver(Identity{UID: 10, GID: 20, Groups: groups})

	groups[0] = 99

	first, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, first.Groups)

	first.Groups[1] = 42
	second, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, second.Groups, "callers must not share group slices")
}
