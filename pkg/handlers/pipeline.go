package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/pkg/models"
	"github.com/filinglens/filinglens/pkg/services"
)

// IngestPipelineHandler runs ingestion end to end for one ticker: company
// metadata, recent filings with documents, and financial values. No content
// generation.
type IngestPipelineHandler struct {
	deps *Deps
}

// Handle implements Handler.
func (h *IngestPipelineHandler) Handle(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	var params models.IngestPipelineParams
	if err := models.DecodeParams(j.Params, &params); err != nil {
		return nil, err
	}
	if params.Ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}

	company, err := ingestCompany(ctx, h.deps, params.Ticker)
	if err != nil {
		return nil, err
	}

	if params.Form == "" {
		params.Form = defaultFilingForm
	}
	if params.Count <= 0 {
		params.Count = defaultFilingCount
	}
	includeDocuments := true
	if params.IncludeDocuments != nil {
		includeDocuments = *params.IncludeDocuments
	}
	filings, documents, err := ingestFilings(ctx, h.deps, company.ID, params.Ticker, params.Form, params.Count, includeDocuments)
	if err != nil {
		return nil, err
	}

	result := map[string]interface{}{
		"company_id": company.ID,
		"filings":    filings,
		"documents":  documents,
	}
	values, finErr := ingestFinancials(ctx, h.deps, company.ID, params.Ticker)
	result["financial_values"] = values
	if finErr != nil {
		slog.Warn("Financial ingestion failed, continuing without values",
			"ticker", params.Ticker, "error", finErr)
		result["financial_warning"] = finErr.Error()
	}
	return result, nil
}

// FullPipelineHandler is the top-level orchestrator: ingest a ticker, then
// run the three summary stages per (form, document type) section. Progress
// is recorded on a PipelineRun ledger row regardless of outcome.
type FullPipelineHandler struct {
	deps *Deps
}

// runState accumulates the ledger counters across stages.
type runState struct {
	runID     string
	created   int
	completed int
	failed    int
	stages    []models.RunMetadataStage
}

func (st *runState) metadata() map[string]interface{} {
	return map[string]interface{}{"stages": st.stages}
}

// Handle implements Handler.
func (h *FullPipelineHandler) Handle(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	params, err := h.resolveParams(j)
	if err != nil {
		return nil, err
	}

	run, err := h.deps.Runs.CreateRun(ctx, "", params.Forms, params.Trigger)
	if err != nil {
		return nil, err
	}
	st := &runState{runID: run.ID}

	result, err := h.execute(ctx, params, st)
	if err != nil {
		if failErr := h.deps.Runs.FailRun(ctx, st.runID, err.Error(), st.created, st.completed, st.failed, st.metadata()); failErr != nil {
			slog.Error("Failed to record pipeline run failure", "run_id", st.runID, "error", failErr)
		}
		return nil, err
	}

	if err := h.deps.Runs.CompleteRun(ctx, st.runID, st.created, st.completed, st.failed, st.metadata()); err != nil {
		slog.Error("Failed to finalize pipeline run", "run_id", st.runID, "error", err)
	}
	result["run_id"] = st.runID
	return result, nil
}

// resolveParams decodes job params and fills gaps from pipeline defaults.
func (h *FullPipelineHandler) resolveParams(j *ent.Job) (*models.FullPipelineParams, error) {
	var params models.FullPipelineParams
	if err := models.DecodeParams(j.Params, &params); err != nil {
		return nil, err
	}
	if params.Ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}

	cfg := h.deps.Pipeline
	if len(params.Forms) == 0 {
		params.Forms = cfg.Forms
	}
	if params.Counts == nil {
		params.Counts = cfg.Counts
	}
	if len(params.DocumentTypes) == 0 {
		params.DocumentTypes = cfg.DocumentTypes
	}
	if params.PromptsDir == "" {
		params.PromptsDir = cfg.PromptsDir
	}
	return &params, nil
}

func (h *FullPipelineHandler) execute(ctx context.Context, params *models.FullPipelineParams, st *runState) (map[string]interface{}, error) {
	if err := h.deps.Runs.MarkRunning(ctx, st.runID); err != nil {
		return nil, err
	}

	// Ingestion.
	company, err := ingestCompany(ctx, h.deps, params.Ticker)
	if err != nil {
		return nil, err
	}
	if err := h.deps.Runs.SetCompany(ctx, st.runID, company.ID); err != nil {
		return nil, err
	}
	for _, form := range params.Forms {
		count := params.Counts[form]
		if _, _, err := ingestFilings(ctx, h.deps, company.ID, params.Ticker, form, count, true); err != nil {
			return nil, err
		}
	}
	if _, err := ingestFinancials(ctx, h.deps, company.ID, params.Ticker); err != nil {
		slog.Warn("Financial ingestion failed, continuing without values",
			"ticker", params.Ticker, "error", err)
	}

	// Generation setup.
	modelConfig, err := ensureDefaultModelConfig(ctx, h.deps)
	if err != nil {
		return nil, err
	}
	singlePrompt, err := ensureStagePrompt(ctx, h.deps, string(generatedcontent.ContentStageSingleSummary), params.PromptsDir)
	if err != nil {
		return nil, err
	}
	aggregatePrompt, err := ensureStagePrompt(ctx, h.deps, string(generatedcontent.ContentStageAggregateSummary), params.PromptsDir)
	if err != nil {
		return nil, err
	}
	frontpagePrompt, err := ensureStagePrompt(ctx, h.deps, string(generatedcontent.ContentStageFrontpageSummary), params.PromptsDir)
	if err != nil {
		return nil, err
	}

	// Stage 1: one single summary per (filing, document type).
	singles, singleOutcome, err := h.runSingleStage(ctx, company, params, singlePrompt, modelConfig, st)
	if err != nil {
		return nil, err
	}
	if err := h.deps.Runs.UpdateCounts(ctx, st.runID, st.created, st.completed, st.failed); err != nil {
		slog.Warn("Failed to flush run counters", "run_id", st.runID, "error", err)
	}

	// Stage 2: one aggregate per (form, document type).
	aggregates, aggregateOutcome, err := h.runAggregateStage(ctx, company, params, singles, aggregatePrompt, modelConfig, st)
	if err != nil {
		return nil, err
	}
	if err := h.deps.Runs.UpdateCounts(ctx, st.runID, st.created, st.completed, st.failed); err != nil {
		slog.Warn("Failed to flush run counters", "run_id", st.runID, "error", err)
	}

	// Stage 3: one frontpage summary per aggregate.
	frontpageOutcome, err := h.runFrontpageStage(ctx, company, params, aggregates, frontpagePrompt, modelConfig, st)
	if err != nil {
		return nil, err
	}

	single, _ := models.ToResultMap(singleOutcome)
	aggregate, _ := models.ToResultMap(aggregateOutcome)
	frontpage, _ := models.ToResultMap(frontpageOutcome)
	return map[string]interface{}{
		"company_id":        company.ID,
		"single_summary":    single,
		"aggregate_summary": aggregate,
		"frontpage_summary": frontpage,
	}, nil
}

// stageKey identifies one aggregate bucket.
type stageKey struct {
	form    string
	docType string
}

// stageArtifact pairs an artifact with the bucket that produced it.
type stageArtifact struct {
	key      stageKey
	artifact *ent.GeneratedContent
}

// runSingleStage generates a single summary for every (filing, document
// type) pair. Per-unit failures are counted and skipped, not fatal.
func (h *FullPipelineHandler) runSingleStage(ctx context.Context, company *ent.Company, params *models.FullPipelineParams, prompt *ent.Prompt, modelConfig *ent.ModelConfig, st *runState) (map[stageKey][]*ent.GeneratedContent, *models.StageOutcome, error) {
	start := time.Now()
	outcome := &models.StageOutcome{}
	singles := make(map[stageKey][]*ent.GeneratedContent)

	for _, form := range params.Forms {
		filings, err := h.deps.Filings.ListByCompany(ctx, company.ID, form, params.Counts[form])
		if err != nil {
			return nil, nil, err
		}
		for _, filing := range filings {
			for _, docType := range params.DocumentTypes {
				doc, err := h.deps.Filings.FirstDocumentOfType(ctx, filing.ID, document.DocumentType(docType))
				if err != nil {
					if err == services.ErrNotFound {
						outcome.Skipped++
						continue
					}
					return nil, nil, err
				}

				st.created++
				res, err := generate(ctx, h.deps, generationInput{
					Stage:           string(generatedcontent.ContentStageSingleSummary),
					CompanyID:       company.ID,
					DocumentType:    docType,
					FormType:        form,
					Description:     fmt.Sprintf("%s %s %s", company.Ticker, filing.AccessionNumber, docType),
					Prompt:          prompt,
					ModelConfig:     modelConfig,
					SourceDocuments: []*ent.Document{doc},
					Force:           params.Force,
				})
				if err != nil {
					slog.Warn("Single summary failed",
						"accession", filing.AccessionNumber, "document_type", docType, "error", err)
					st.failed++
					outcome.Failed++
					continue
				}
				st.completed++
				recordOutcome(outcome, res)
				key := stageKey{form: form, docType: docType}
				singles[key] = append(singles[key], res.Artifact)
			}
		}
	}

	st.stages = append(st.stages, stageMetadata(string(generatedcontent.ContentStageSingleSummary), start, outcome))
	return singles, outcome, nil
}

// runAggregateStage folds each (form, document type) bucket of single
// summaries into one aggregate summary.
func (h *FullPipelineHandler) runAggregateStage(ctx context.Context, company *ent.Company, params *models.FullPipelineParams, singles map[stageKey][]*ent.GeneratedContent, prompt *ent.Prompt, modelConfig *ent.ModelConfig, st *runState) ([]stageArtifact, *models.StageOutcome, error) {
	start := time.Now()
	outcome := &models.StageOutcome{}
	aggregates := make([]stageArtifact, 0)

	// Deterministic bucket order keeps run metadata stable.
	for _, form := range params.Forms {
		for _, docType := range params.DocumentTypes {
			key := stageKey{form: form, docType: docType}
			sources := singles[key]
			if len(sources) == 0 {
				outcome.Skipped++
				continue
			}

			st.created++
			res, err := generate(ctx, h.deps, generationInput{
				Stage:          string(generatedcontent.ContentStageAggregateSummary),
				CompanyID:      company.ID,
				DocumentType:   docType,
				FormType:       form,
				Description:    fmt.Sprintf("%s %s %s aggregate", company.Ticker, form, docType),
				Prompt:         prompt,
				ModelConfig:    modelConfig,
				SourceContents: sources,
				Force:          params.Force,
			})
			if err != nil {
				slog.Warn("Aggregate summary failed",
					"form", form, "document_type", docType, "error", err)
				st.failed++
				outcome.Failed++
				continue
			}
			st.completed++
			recordOutcome(outcome, res)
			aggregates = append(aggregates, stageArtifact{key: key, artifact: res.Artifact})
		}
	}

	st.stages = append(st.stages, stageMetadata(string(generatedcontent.ContentStageAggregateSummary), start, outcome))
	return aggregates, outcome, nil
}

// runFrontpageStage condenses each section aggregate into its one-line
// frontpage summary. An empty aggregate set fails the run: there is nothing
// to show.
func (h *FullPipelineHandler) runFrontpageStage(ctx context.Context, company *ent.Company, params *models.FullPipelineParams, aggregates []stageArtifact, prompt *ent.Prompt, modelConfig *ent.ModelConfig, st *runState) (*models.StageOutcome, error) {
	start := time.Now()
	outcome := &models.StageOutcome{}

	if len(aggregates) == 0 {
		return nil, fmt.Errorf("no aggregate summaries produced for %s", company.Ticker)
	}

	for _, agg := range aggregates {
		st.created++
		res, err := generate(ctx, h.deps, generationInput{
			Stage:          string(generatedcontent.ContentStageFrontpageSummary),
			CompanyID:      company.ID,
			DocumentType:   agg.key.docType,
			FormType:       agg.key.form,
			Description:    fmt.Sprintf("%s %s %s frontpage", company.Ticker, agg.key.form, agg.key.docType),
			Prompt:         prompt,
			ModelConfig:    modelConfig,
			SourceContents: []*ent.GeneratedContent{agg.artifact},
			Force:          params.Force,
		})
		if err != nil {
			slog.Warn("Frontpage summary failed",
				"form", agg.key.form, "document_type", agg.key.docType, "error", err)
			st.failed++
			outcome.Failed++
			continue
		}
		st.completed++
		recordOutcome(outcome, res)
	}

	st.stages = append(st.stages, stageMetadata(string(generatedcontent.ContentStageFrontpageSummary), start, outcome))
	return outcome, nil
}

// recordOutcome updates stage counters from one unit result.
func recordOutcome(outcome *models.StageOutcome, res *generationResult) {
	outcome.Hashes = append(outcome.Hashes, res.Artifact.ContentHash)
	if res.Created {
		outcome.New++
	} else {
		outcome.Reused++
	}
}

// stageMetadata builds the run_metadata entry for one stage.
func stageMetadata(stage string, start time.Time, outcome *models.StageOutcome) models.RunMetadataStage {
	return models.RunMetadataStage{
		Stage:      stage,
		DurationMS: time.Since(start).Milliseconds(),
		New:        outcome.New,
		Reused:     outcome.Reused,
		Failed:     outcome.Failed,
	}
}
