package contenthash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	// Known SHA-256 vectors.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Text(""))
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Text("hello"))
	assert.NotEqual(t, Text("a"), Text("b"))
}

func TestCanonicalOptions(t *testing.T) {
	t.Run("sorts keys", func(t *testing.T) {
		a, err := CanonicalOptions(map[string]interface{}{"temperature": 0.2, "max_tokens": 1024})
		require.NoError(t, err)
		b, err := CanonicalOptions(map[string]interface{}{"max_tokens": 1024, "temperature": 0.2})
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Equal(t, `{"max_tokens":1024,"temperature":0.2}`, a)
	})

	t.Run("nil options collapse to empty object", func(t *testing.T) {
		s, err := CanonicalOptions(nil)
		require.NoError(t, err)
		assert.Equal(t, "{}", s)
	})
}

func TestModelConfig(t *testing.T) {
	opts, err := CanonicalOptions(map[string]interface{}{"temperature": 0.0})
	require.NoError(t, err)

	h1 := ModelConfig("claude-haiku-4-5-20251001", opts)
	h2 := ModelConfig("claude-haiku-4-5-20251001", opts)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)

	assert.NotEqual(t, h1, ModelConfig("claude-sonnet-4-5-20250929", opts))
}

func TestShort(t *testing.T) {
	full := Text("content")
	assert.Len(t, Short(full), ShortHashLen)
	assert.Equal(t, full[:12], Short(full))
	assert.Equal(t, "abc", Short("abc"))
}
