package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/pkg/contenthash"
	"github.com/filinglens/filinglens/pkg/models"
)

// seedDocument persists a company, one filing, and one document directly
// through the services, bypassing the ingestion source.
func seedDocument(t *testing.T, fx *handlerFixture, ticker, accession, content string) (*ent.Company, *ent.Document) {
	t.Helper()
	ctx := context.Background()

	company, err := fx.deps.Companies.UpsertCompany(ctx, models.UpsertCompanyInput{
		Ticker: ticker,
		Name:   ticker + " Inc.",
	})
	require.NoError(t, err)

	filing, err := fx.deps.Filings.UpsertFiling(ctx, models.UpsertFilingInput{
		CompanyID:       company.ID,
		AccessionNumber: accession,
		FormType:        "10-K",
		FilingDate:      time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	doc, err := fx.deps.Filings.UpsertDocument(ctx, models.UpsertDocumentInput{
		FilingID:     filing.ID,
		CompanyID:    company.ID,
		Title:        "MD&A",
		DocumentType: "management_discussion",
		Content:      content,
	})
	require.NoError(t, err)
	return company, doc
}

func TestContentGenerationHandler(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()

	company, doc := seedDocument(t, fx, "AAPL", "acc-gen-1", "The year in review.")

	prompt, err := fx.deps.Prompts.EnsurePrompt(ctx, "single_summary", "system", "", "Summarize the section.")
	require.NoError(t, err)
	modelConfig, err := fx.deps.ModelConfigs.EnsureModelConfig(ctx, "claude-sonnet-4-5", nil)
	require.NoError(t, err)

	h := &ContentGenerationHandler{deps: fx.deps}
	params := models.ContentGenerationParams{
		SystemPromptHash:     prompt.ContentHash,
		ModelConfigHash:      modelConfig.ContentHash,
		SourceDocumentHashes: []string{doc.ContentHash},
	}

	t.Run("generates from hash references", func(t *testing.T) {
		result, err := h.Handle(ctx, jobWith(t, params))
		require.NoError(t, err)
		assert.Equal(t, true, result["was_created"])
		assert.Equal(t, 1, fx.stub.CallCount())

		hash, ok := result["content_hash"].(string)
		require.True(t, ok)
		gc, err := fx.deps.Contents.ByHash(ctx, hash)
		require.NoError(t, err)
		// Stage defaults to the first pipeline stage for document sources,
		// and the company comes from the source document.
		assert.Equal(t, "single_summary", string(gc.ContentStage))
		require.NotNil(t, gc.CompanyID)
		assert.Equal(t, company.ID, *gc.CompanyID)
	})

	t.Run("re-run is memoized", func(t *testing.T) {
		result, err := h.Handle(ctx, jobWith(t, params))
		require.NoError(t, err)
		assert.Equal(t, false, result["was_created"])
		assert.Equal(t, 1, fx.stub.CallCount())
	})

	t.Run("short hash prefixes resolve", func(t *testing.T) {
		short := params
		short.SystemPromptHash = contenthash.Short(prompt.ContentHash)
		short.SourceDocumentHashes = []string{contenthash.Short(doc.ContentHash)}
		result, err := h.Handle(ctx, jobWith(t, short))
		require.NoError(t, err)
		assert.Equal(t, false, result["was_created"])
	})

	t.Run("unknown source hash errors", func(t *testing.T) {
		bad := params
		bad.SourceDocumentHashes = []string{"000000000000"}
		_, err := h.Handle(ctx, jobWith(t, bad))
		require.Error(t, err)
	})

	t.Run("missing prompt hash errors", func(t *testing.T) {
		bad := params
		bad.SystemPromptHash = ""
		_, err := h.Handle(ctx, jobWith(t, bad))
		require.Error(t, err)
	})

	t.Run("no sources errors", func(t *testing.T) {
		bad := params
		bad.SourceDocumentHashes = nil
		_, err := h.Handle(ctx, jobWith(t, bad))
		require.Error(t, err)
	})
}

func TestContentGenerationHandler_ContentSources(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()

	company, doc := seedDocument(t, fx, "MSFT", "acc-gen-2", "Cloud revenue grew.")

	prompt, err := fx.deps.Prompts.EnsurePrompt(ctx, "aggregate_summary", "system", "", "Aggregate the summaries.")
	require.NoError(t, err)
	modelConfig, err := fx.deps.ModelConfigs.EnsureModelConfig(ctx, "claude-sonnet-4-5", nil)
	require.NoError(t, err)

	base, _, err := fx.deps.Contents.CreateOrGet(ctx, models.CreateContentInput{
		Content:           "existing single summary",
		CompanyID:         company.ID,
		ContentStage:      "single_summary",
		SystemPromptID:    prompt.ID,
		ModelConfigID:     modelConfig.ID,
		SourceDocumentIDs: []string{doc.ID},
	})
	require.NoError(t, err)

	h := &ContentGenerationHandler{deps: fx.deps}
	result, err := h.Handle(ctx, jobWith(t, models.ContentGenerationParams{
		SystemPromptHash:    prompt.ContentHash,
		ModelConfigHash:     modelConfig.ContentHash,
		SourceContentHashes: []string{base.ContentHash},
		CompanyTicker:       "MSFT",
	}))
	require.NoError(t, err)
	assert.Equal(t, true, result["was_created"])

	gc, err := fx.deps.Contents.ByHash(ctx, result["content_hash"].(string))
	require.NoError(t, err)
	// Content sources default to the aggregate stage.
	assert.Equal(t, "aggregate_summary", string(gc.ContentStage))
}
