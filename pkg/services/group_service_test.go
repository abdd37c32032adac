package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/filinglens/filinglens/test/database"
)

func TestGroupService_EnsureGroup(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewGroupService(client.Client)
	ctx := context.Background()

	t.Run("normalizes and dedupes tickers", func(t *testing.T) {
		g, err := svc.EnsureGroup(ctx, "big-tech", "Big Tech", []string{" aapl", "MSFT", "msft "})
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL", "MSFT"}, g.Tickers)
		assert.Equal(t, "Big Tech", g.Name)
	})

	t.Run("update replaces the ticker set", func(t *testing.T) {
		g, err := svc.EnsureGroup(ctx, "big-tech", "", []string{"NVDA"})
		require.NoError(t, err)
		assert.Equal(t, []string{"NVDA"}, g.Tickers)
		// Name survives an update that omits it.
		assert.Equal(t, "Big Tech", g.Name)
	})

	t.Run("rejects empty slug", func(t *testing.T) {
		_, err := svc.EnsureGroup(ctx, "", "", []string{"AAPL"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty tickers", func(t *testing.T) {
		_, err := svc.EnsureGroup(ctx, "empty", "", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestGroupService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewGroupService(client.Client)
	ctx := context.Background()

	_, err := svc.EnsureGroup(ctx, "semis", "", []string{"NVDA", "AMD"})
	require.NoError(t, err)
	_, err = svc.EnsureGroup(ctx, "big-tech", "", []string{"AAPL"})
	require.NoError(t, err)

	g, err := svc.GetBySlug(ctx, "semis")
	require.NoError(t, err)
	assert.Equal(t, []string{"NVDA", "AMD"}, g.Tickers)

	_, err = svc.GetBySlug(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	groups, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "big-tech", groups[0].Slug)
	assert.Equal(t, "semis", groups[1].Slug)
}
