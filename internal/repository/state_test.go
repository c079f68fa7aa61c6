package repository

import (
	"context"
	"testing"

	"github.com/DanRulev/sentrack.git/internal/config"
	"github.com/DanRulev/sentrack.git/internal/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalState(t *testing.T) *StateR {
	t.Helper()

	local, err := db.InitLocal(config.LocalConfig{Path: ":memory:", Namespace: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })

	return NewStateRepository(local)
}

func TestStateR_SaveLoad(t *testing.T) {
	t.Parallel()

	repo := newLocalState(t)
	ctx := context.Background()

	_, ok, err := repo.Load(ctx, "ns:1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Save(ctx, "ns:1", `{"meta":{}}`))
	require.NoError(t, repo.Save(ctx, "ns:1", `{"rows":[]}`))

	value, ok, err := repo.Load(ctx, "ns:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"rows":[]}`, value)
}

func TestStateR_Keys(t *testing.T) {
	t.Parallel()

	repo := newLocalState(t)
	ctx := context.Background()

	for _, k := range []string{"ns:2", "ns:10", "other:3"} {
		require.NoError(t, repo.Save(ctx, k, "{}"))
	}

	keys, err := repo.Keys(ctx, "ns:")
	require.NoError(t, err)
	assert.Equal(t, []string{"ns:10", "ns:2"}, keys)
}
