package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/filinglens/filinglens/test/database"
)

func TestModelConfigService_EnsureModelConfig(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewModelConfigService(client.Client)
	ctx := context.Background()

	t.Run("option key order does not matter", func(t *testing.T) {
		a, err := svc.EnsureModelConfig(ctx, "claude-sonnet-4-5", map[string]interface{}{
			"max_tokens":  8192,
			"temperature": 0.2,
		})
		require.NoError(t, err)

		b, err := svc.EnsureModelConfig(ctx, "claude-sonnet-4-5", map[string]interface{}{
			"temperature": 0.2,
			"max_tokens":  8192,
		})
		require.NoError(t, err)
		assert.Equal(t, a.ID, b.ID)
		assert.Equal(t, a.ContentHash, b.ContentHash)
	})

	t.Run("different options produce different rows", func(t *testing.T) {
		a, err := svc.EnsureModelConfig(ctx, "claude-sonnet-4-5", map[string]interface{}{"max_tokens": 4096})
		require.NoError(t, err)
		b, err := svc.EnsureModelConfig(ctx, "claude-sonnet-4-5", map[string]interface{}{"max_tokens": 2048})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("same options different model produce different rows", func(t *testing.T) {
		a, err := svc.EnsureModelConfig(ctx, "model-a", map[string]interface{}{"max_tokens": 1024})
		require.NoError(t, err)
		b, err := svc.EnsureModelConfig(ctx, "model-b", map[string]interface{}{"max_tokens": 1024})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("nil options allowed", func(t *testing.T) {
		a, err := svc.EnsureModelConfig(ctx, "bare-model", nil)
		require.NoError(t, err)
		b, err := svc.EnsureModelConfig(ctx, "bare-model", map[string]interface{}{})
		require.NoError(t, err)
		assert.Equal(t, a.ID, b.ID)
	})

	t.Run("rejects empty model", func(t *testing.T) {
		_, err := svc.EnsureModelConfig(ctx, "", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestModelConfigService_ByHash(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewModelConfigService(client.Client)
	ctx := context.Background()

	mc, err := svc.EnsureModelConfig(ctx, "claude-sonnet-4-5", map[string]interface{}{"max_tokens": 8192})
	require.NoError(t, err)

	found, err := svc.ByHash(ctx, mc.ContentHash)
	require.NoError(t, err)
	assert.Equal(t, mc.ID, found.ID)

	_, err = svc.ByHash(ctx, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}
