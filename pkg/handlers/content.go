package handlers

import (
	"context"
	"fmt"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/pkg/models"
)

// ContentGenerationHandler runs one explicit generation unit: sources,
// prompt, and model config are all referenced by content hash in the job
// params, so re-enqueueing the same job is idempotent.
type ContentGenerationHandler struct {
	deps *Deps
}

// Handle implements Handler.
func (h *ContentGenerationHandler) Handle(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	var params models.ContentGenerationParams
	if err := models.DecodeParams(j.Params, &params); err != nil {
		return nil, err
	}
	if params.SystemPromptHash == "" {
		return nil, fmt.Errorf("system_prompt_hash is required")
	}
	if params.ModelConfigHash == "" {
		return nil, fmt.Errorf("model_config_hash is required")
	}
	if len(params.SourceDocumentHashes) == 0 && len(params.SourceContentHashes) == 0 {
		return nil, fmt.Errorf("at least one source hash is required")
	}

	prompt, err := h.deps.Prompts.ByHash(ctx, params.SystemPromptHash)
	if err != nil {
		return nil, fmt.Errorf("system prompt %s: %w", params.SystemPromptHash, err)
	}
	modelConfig, err := h.deps.ModelConfigs.ByHash(ctx, params.ModelConfigHash)
	if err != nil {
		return nil, fmt.Errorf("model config %s: %w", params.ModelConfigHash, err)
	}

	in := generationInput{
		Stage:        params.ContentStage,
		DocumentType: params.DocumentType,
		FormType:     params.FormType,
		Description:  params.Description,
		Prompt:       prompt,
		ModelConfig:  modelConfig,
	}

	for _, hash := range params.SourceDocumentHashes {
		doc, err := h.deps.Filings.DocumentByHash(ctx, hash)
		if err != nil {
			return nil, fmt.Errorf("source document %s: %w", hash, err)
		}
		in.SourceDocuments = append(in.SourceDocuments, doc)
	}
	for _, hash := range params.SourceContentHashes {
		c, err := h.deps.Contents.ByHash(ctx, hash)
		if err != nil {
			return nil, fmt.Errorf("source content %s: %w", hash, err)
		}
		in.SourceContents = append(in.SourceContents, c)
	}

	if in.Stage == "" {
		// Document sources default to the first pipeline stage; content
		// sources to the second.
		if len(in.SourceDocuments) > 0 {
			in.Stage = string(generatedcontent.ContentStageSingleSummary)
		} else {
			in.Stage = string(generatedcontent.ContentStageAggregateSummary)
		}
	}

	if params.CompanyTicker != "" {
		company, err := h.deps.Companies.GetByTicker(ctx, params.CompanyTicker)
		if err != nil {
			return nil, fmt.Errorf("company %s: %w", params.CompanyTicker, err)
		}
		in.CompanyID = company.ID
	} else if len(in.SourceDocuments) > 0 {
		in.CompanyID = in.SourceDocuments[0].CompanyID
	}

	res, err := generate(ctx, h.deps, in)
	if err != nil {
		return nil, err
	}
	return models.ToResultMap(models.ContentGenerationResult{
		ContentID:   res.Artifact.ID,
		ContentHash: res.Artifact.ContentHash,
		WasCreated:  res.Created,
	})
}
