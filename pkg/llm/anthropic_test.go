package llm

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessageParams(t *testing.T) {
	t.Run("maps sampling options", func(t *testing.T) {
		params := buildMessageParams(Request{
			Model:        "claude-haiku-4-5",
			SystemPrompt: "Summarize.",
			UserContent:  "Some filing text.",
			Options: map[string]interface{}{
				"max_tokens":  float64(1024),
				"temperature": 0.2,
				"top_p":       0.9,
				"top_k":       float64(40),
				"seed":        float64(7),
			},
		})

		assert.Equal(t, anthropic.Model("claude-haiku-4-5"), params.Model)
		assert.Equal(t, int64(1024), params.MaxTokens)
		assert.Equal(t, 0.2, params.Temperature.Value)
		assert.Equal(t, 0.9, params.TopP.Value)
		assert.Equal(t, int64(40), params.TopK.Value)
		require.Len(t, params.System, 1)
		assert.Equal(t, "Summarize.", params.System[0].Text)
	})

	t.Run("defaults apply when options are absent", func(t *testing.T) {
		params := buildMessageParams(Request{Model: "claude-haiku-4-5", UserContent: "x"})
		assert.Equal(t, int64(defaultMaxTokens), params.MaxTokens)
		assert.Empty(t, params.System)
	})
}
