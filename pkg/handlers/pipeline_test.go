package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/ent/pipelinerun"
	"github.com/filinglens/filinglens/pkg/config"
	"github.com/filinglens/filinglens/pkg/database"
	"github.com/filinglens/filinglens/pkg/ingest"
	"github.com/filinglens/filinglens/pkg/llm"
	"github.com/filinglens/filinglens/pkg/models"
	"github.com/filinglens/filinglens/pkg/services"
	testdb "github.com/filinglens/filinglens/test/database"
)

// handlerFixture wires a full Deps bundle against a test database, a fake
// ingestion source, and a deterministic stub completer.
type handlerFixture struct {
	deps   *Deps
	client *database.Client
	stub   *llm.StubCompleter
	source *ingest.FakeSource
}

func setupHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	stub := llm.NewStubCompleter()
	source := ingest.NewFakeSource()

	cfg := config.DefaultPipelineConfig()
	cfg.PromptsDir = writeStagePrompts(t)

	deps := &Deps{
		Jobs:         services.NewJobService(client.Client),
		Companies:    services.NewCompanyService(client.Client),
		Filings:      services.NewFilingService(client.Client),
		Financials:   services.NewFinancialService(client.Client),
		Prompts:      services.NewPromptService(client.Client),
		ModelConfigs: services.NewModelConfigService(client.Client),
		Contents:     services.NewContentService(client.Client),
		Runs:         services.NewRunService(client.Client),
		Groups:       services.NewGroupService(client.Client),
		Completer:    stub,
		Source:       source,
		Pipeline:     cfg,
	}
	return &handlerFixture{deps: deps, client: client, stub: stub, source: source}
}

// writeStagePrompts lays out a prompts directory with one prompt per stage.
func writeStagePrompts(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	stages := []string{
		string(generatedcontent.ContentStageSingleSummary),
		string(generatedcontent.ContentStageAggregateSummary),
		string(generatedcontent.ContentStageFrontpageSummary),
		string(generatedcontent.ContentStageCompanyGroupAnalysis),
		string(generatedcontent.ContentStageCompanyGroupFrontpage),
	}
	for _, stage := range stages {
		dir := filepath.Join(root, stage)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "prompt.md"),
			[]byte("Instructions for "+stage+"."),
			0o644))
	}
	return root
}

// registerTicker seeds the fake source with a company and n 10-K filings,
// each carrying both default document types.
func registerTicker(f *ingest.FakeSource, ticker string, filings int) {
	f.AddCompany(ingest.CompanyRecord{
		Ticker:    ticker,
		Name:      ticker + " Inc.",
		CIK:       "0000320193",
		Exchanges: []string{"NASDAQ"},
	})
	for i := 0; i < filings; i++ {
		f.AddFiling(ticker, ingest.FilingRecord{
			AccessionNumber: ticker + "-acc-" + string(rune('a'+i)),
			FormType:        "10-K",
			FilingDate:      time.Date(2024-i, 2, 15, 0, 0, 0, 0, time.UTC),
			Documents: []ingest.DocumentRecord{
				{
					DocumentType: "management_discussion",
					Title:        "MD&A",
					Content:      ticker + " discussion year " + string(rune('a'+i)),
				},
				{
					DocumentType: "risk_factors",
					Title:        "Risk Factors",
					Content:      ticker + " risks year " + string(rune('a'+i)),
				},
			},
		})
	}
}

// jobWith builds an in-memory job row carrying typed params.
func jobWith(t *testing.T, params interface{}) *ent.Job {
	t.Helper()
	m, err := models.ToResultMap(params)
	require.NoError(t, err)
	return &ent.Job{Params: m}
}

func TestFullPipelineHandler(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()
	registerTicker(fx.source, "AAPL", 2)

	h := &FullPipelineHandler{deps: fx.deps}
	params := models.FullPipelineParams{
		Ticker: "AAPL",
		Forms:  []string{"10-K"},
		Counts: map[string]int{"10-K": 2},
	}

	result, err := h.Handle(ctx, jobWith(t, params))
	require.NoError(t, err)

	// 2 filings x 2 document types, then one aggregate and one frontpage
	// per (form, document type) bucket: 4 + 2 + 2.
	assert.Equal(t, 8, fx.stub.CallCount())

	runID, ok := result["run_id"].(string)
	require.True(t, ok)

	run, err := fx.deps.Runs.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, run.Status)
	assert.Equal(t, 8, run.JobsCreated)
	assert.Equal(t, 8, run.JobsCompleted)
	assert.Equal(t, 0, run.JobsFailed)
	assert.NotNil(t, run.CompletedAt)
	require.NotNil(t, run.CompanyID)

	stages, ok := run.RunMetadata["stages"].([]interface{})
	require.True(t, ok)
	assert.Len(t, stages, 3)

	company, err := fx.deps.Companies.GetByTicker(ctx, "AAPL")
	require.NoError(t, err)

	singles, err := fx.deps.Contents.ListByCompany(ctx, company.ID, string(generatedcontent.ContentStageSingleSummary), 0)
	require.NoError(t, err)
	assert.Len(t, singles, 4)

	aggregates, err := fx.deps.Contents.LatestAggregates(ctx, company.ID, 10)
	require.NoError(t, err)
	assert.Len(t, aggregates, 2)

	// One frontpage per section, each sourced from exactly its aggregate.
	frontpages, err := fx.deps.Contents.ListByCompany(ctx, company.ID, string(generatedcontent.ContentStageFrontpageSummary), 0)
	require.NoError(t, err)
	assert.Len(t, frontpages, 2)
	for _, fp := range frontpages {
		sources, err := fx.client.Client.GeneratedContent.QuerySourceContent(fp).All(ctx)
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, generatedcontent.ContentStageAggregateSummary, sources[0].ContentStage)
	}

	t.Run("second run reuses every artifact", func(t *testing.T) {
		result2, err := h.Handle(ctx, jobWith(t, params))
		require.NoError(t, err)

		// Memoization pre-checks satisfy every unit; no model calls spent.
		assert.Equal(t, 8, fx.stub.CallCount())

		run2, err := fx.deps.Runs.GetRun(ctx, result2["run_id"].(string))
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusCompleted, run2.Status)
		assert.Equal(t, 8, run2.JobsCompleted)

		singles, err := fx.deps.Contents.ListByCompany(ctx, company.ID, string(generatedcontent.ContentStageSingleSummary), 0)
		require.NoError(t, err)
		assert.Len(t, singles, 4, "reuse must not create new rows")
	})

	t.Run("force skips the pre-check but dedups by hash", func(t *testing.T) {
		forced := params
		forced.Force = true
		_, err := h.Handle(ctx, jobWith(t, forced))
		require.NoError(t, err)

		// The stub is deterministic, so forced regeneration produces the
		// same text and insert-or-fetch lands on the existing rows.
		assert.Equal(t, 16, fx.stub.CallCount())
		singles, err := fx.deps.Contents.ListByCompany(ctx, company.ID, string(generatedcontent.ContentStageSingleSummary), 0)
		require.NoError(t, err)
		assert.Len(t, singles, 4)
	})
}

func TestFullPipelineHandler_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown ticker fails the run", func(t *testing.T) {
		fx := setupHandlerFixture(t)
		h := &FullPipelineHandler{deps: fx.deps}

		_, err := h.Handle(ctx, jobWith(t, models.FullPipelineParams{Ticker: "GHOST"}))
		require.Error(t, err)

		runs, err := fx.deps.Runs.ListRuns(ctx, "failed", 10)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		require.NotNil(t, runs[0].Error)
	})

	t.Run("missing ticker is rejected before a run opens", func(t *testing.T) {
		fx := setupHandlerFixture(t)
		h := &FullPipelineHandler{deps: fx.deps}

		_, err := h.Handle(ctx, jobWith(t, models.FullPipelineParams{}))
		require.Error(t, err)

		runs, err := fx.deps.Runs.ListRuns(ctx, "", 10)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("no documents means no aggregates and a failed run", func(t *testing.T) {
		fx := setupHandlerFixture(t)
		fx.source.AddCompany(ingest.CompanyRecord{Ticker: "EMPT", Name: "Empty Corp"})
		fx.source.AddFiling("EMPT", ingest.FilingRecord{
			AccessionNumber: "empt-acc-1",
			FormType:        "10-K",
			FilingDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		})
		h := &FullPipelineHandler{deps: fx.deps}

		_, err := h.Handle(ctx, jobWith(t, models.FullPipelineParams{
			Ticker: "EMPT",
			Forms:  []string{"10-K"},
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no aggregate summaries")
		assert.Equal(t, 0, fx.stub.CallCount())
	})

	t.Run("model failures are counted per unit", func(t *testing.T) {
		fx := setupHandlerFixture(t)
		registerTicker(fx.source, "MSFT", 1)
		fx.stub.Err = errors.New("model unavailable")
		h := &FullPipelineHandler{deps: fx.deps}

		_, err := h.Handle(ctx, jobWith(t, models.FullPipelineParams{
			Ticker: "MSFT",
			Forms:  []string{"10-K"},
			Counts: map[string]int{"10-K": 1},
		}))
		require.Error(t, err)

		runs, err := fx.deps.Runs.ListRuns(ctx, "failed", 10)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		// Both single units failed; aggregates were skipped; the empty
		// frontpage input aborted the run.
		assert.Equal(t, 2, runs[0].JobsCreated)
		assert.Equal(t, 0, runs[0].JobsCompleted)
		assert.Equal(t, 2, runs[0].JobsFailed)
	})
}

func TestGenerate_EmptyResponse(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()
	registerTicker(fx.source, "AAPL", 1)

	company, err := ingestCompany(ctx, fx.deps, "AAPL")
	require.NoError(t, err)
	_, _, err = ingestFilings(ctx, fx.deps, company.ID, "AAPL", "10-K", 1, true)
	require.NoError(t, err)

	filings, err := fx.deps.Filings.ListByCompany(ctx, company.ID, "10-K", 1)
	require.NoError(t, err)
	require.Len(t, filings, 1)
	doc, err := fx.deps.Filings.FirstDocumentOfType(ctx, filings[0].ID, "management_discussion")
	require.NoError(t, err)

	prompt, err := ensureStagePrompt(ctx, fx.deps, string(generatedcontent.ContentStageSingleSummary), "")
	require.NoError(t, err)
	modelConfig, err := ensureDefaultModelConfig(ctx, fx.deps)
	require.NoError(t, err)

	fx.stub.EmptyResponse = true
	res, err := generate(ctx, fx.deps, generationInput{
		Stage:           string(generatedcontent.ContentStageSingleSummary),
		CompanyID:       company.ID,
		DocumentType:    "management_discussion",
		FormType:        "10-K",
		Prompt:          prompt,
		ModelConfig:     modelConfig,
		SourceDocuments: []*ent.Document{doc},
	})
	// Empty output is recorded with a warning, not failed: retrying would
	// likely burn tokens for the same result.
	require.NoError(t, err)
	assert.True(t, res.Created)
	require.NotNil(t, res.Artifact.Warning)
	assert.Equal(t, "empty model response", *res.Artifact.Warning)
	assert.Equal(t, "", res.Artifact.Content)
}

func TestIngestPipelineHandler(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()
	registerTicker(fx.source, "AAPL", 2)

	h := &IngestPipelineHandler{deps: fx.deps}
	result, err := h.Handle(ctx, jobWith(t, models.IngestPipelineParams{
		Ticker: "AAPL",
		Form:   "10-K",
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, result["filings"])
	assert.Equal(t, 4, result["documents"])
	// No generation happens during ingestion.
	assert.Equal(t, 0, fx.stub.CallCount())

	t.Run("financial failure degrades but does not fail", func(t *testing.T) {
		fx.source.FinancialsErr = errors.New("facts endpoint down")
		result, err := h.Handle(ctx, jobWith(t, models.IngestPipelineParams{Ticker: "AAPL"}))
		require.NoError(t, err)
		warning, ok := result["financial_warning"].(string)
		require.True(t, ok)
		assert.Contains(t, warning, "facts endpoint down")
	})
}
