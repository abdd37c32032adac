package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/pkg/models"
)

// seedAggregate persists one aggregate summary for a ticker so the group
// stage has something to read.
func seedAggregate(t *testing.T, fx *handlerFixture, ticker, text string) {
	t.Helper()
	ctx := context.Background()

	company, doc := seedDocument(t, fx, ticker, "acc-"+ticker, text+" source")

	prompt, err := fx.deps.Prompts.EnsurePrompt(ctx, "aggregate_summary", "system", "", "Aggregate.")
	require.NoError(t, err)
	modelConfig, err := fx.deps.ModelConfigs.EnsureModelConfig(ctx, "claude-sonnet-4-5", nil)
	require.NoError(t, err)

	_, _, err = fx.deps.Contents.CreateOrGet(ctx, models.CreateContentInput{
		Content:           text,
		CompanyID:         company.ID,
		FormType:          "10-K",
		ContentStage:      "aggregate_summary",
		SystemPromptID:    prompt.ID,
		ModelConfigID:     modelConfig.ID,
		SourceDocumentIDs: []string{doc.ID},
	})
	require.NoError(t, err)
}

func TestGroupPipelineHandler(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()
	seedAggregate(t, fx, "AAPL", "AAPL aggregate summary")
	seedAggregate(t, fx, "MSFT", "MSFT aggregate summary")

	h := &GroupPipelineHandler{deps: fx.deps}

	t.Run("analyzes ad-hoc ticker lists", func(t *testing.T) {
		result, err := h.Handle(ctx, jobWith(t, models.GroupPipelineParams{
			Tickers: []string{"AAPL", "MSFT"},
		}))
		require.NoError(t, err)
		assert.Equal(t, 2, result["sources"])
		assert.NotEmpty(t, result["analysis_hash"])
		assert.NotEmpty(t, result["frontpage_hash"])
		assert.NotContains(t, result, "group_id")
		// One analysis call plus one frontpage call.
		assert.Equal(t, 2, fx.stub.CallCount())
	})

	t.Run("persists and reuses named groups", func(t *testing.T) {
		result, err := h.Handle(ctx, jobWith(t, models.GroupPipelineParams{
			GroupSlug: "big-tech",
			Tickers:   []string{"AAPL", "MSFT"},
		}))
		require.NoError(t, err)
		require.Contains(t, result, "group_id")

		group, err := fx.deps.Groups.GetBySlug(ctx, "big-tech")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"AAPL", "MSFT"}, group.Tickers)

		// Slug alone resolves the stored ticker set.
		again, err := h.Handle(ctx, jobWith(t, models.GroupPipelineParams{GroupSlug: "big-tech"}))
		require.NoError(t, err)
		assert.Equal(t, result["analysis_hash"], again["analysis_hash"])
	})

	t.Run("missing tickers are reported, not fatal", func(t *testing.T) {
		result, err := h.Handle(ctx, jobWith(t, models.GroupPipelineParams{
			Tickers: []string{"AAPL", "GHOST"},
		}))
		require.NoError(t, err)
		missing, ok := result["tickers_missing"].([]string)
		require.True(t, ok)
		assert.Equal(t, []string{"GHOST"}, missing)
	})

	t.Run("no aggregates at all is an error", func(t *testing.T) {
		_, err := h.Handle(ctx, jobWith(t, models.GroupPipelineParams{
			Tickers: []string{"GHOST"},
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no aggregate summaries")
	})

	t.Run("neither tickers nor slug is an error", func(t *testing.T) {
		_, err := h.Handle(ctx, jobWith(t, models.GroupPipelineParams{}))
		require.Error(t, err)
	})

	t.Run("unknown slug without tickers is an error", func(t *testing.T) {
		_, err := h.Handle(ctx, jobWith(t, models.GroupPipelineParams{GroupSlug: "nope"}))
		require.Error(t, err)
	})
}

func TestGroupPipelineHandler_MaxPerTicker(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()

	// Five aggregates for one ticker; the handler should read at most two.
	company, doc := seedDocument(t, fx, "NVDA", "acc-NVDA", "NVDA source")
	prompt, err := fx.deps.Prompts.EnsurePrompt(ctx, "aggregate_summary", "system", "", "Aggregate.")
	require.NoError(t, err)
	modelConfig, err := fx.deps.ModelConfigs.EnsureModelConfig(ctx, "claude-sonnet-4-5", nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, _, err := fx.deps.Contents.CreateOrGet(ctx, models.CreateContentInput{
			Content:           fmt.Sprintf("NVDA aggregate %d", i),
			CompanyID:         company.ID,
			ContentStage:      "aggregate_summary",
			SystemPromptID:    prompt.ID,
			ModelConfigID:     modelConfig.ID,
			SourceDocumentIDs: []string{doc.ID},
		})
		require.NoError(t, err)
	}

	h := &GroupPipelineHandler{deps: fx.deps}
	result, err := h.Handle(ctx, jobWith(t, models.GroupPipelineParams{
		Tickers:      []string{"NVDA"},
		MaxPerTicker: 2,
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, result["sources"])
}
