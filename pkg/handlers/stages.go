package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/pkg/llm"
	"github.com/filinglens/filinglens/pkg/models"
	"github.com/filinglens/filinglens/pkg/services"
)

// sourceDelimiter separates concatenated source texts in the user message.
// Changing it changes every downstream content hash, so it is fixed.
const sourceDelimiter = "\n\n---\n\n"

// generationInput carries one generation unit through the shared flow.
type generationInput struct {
	Stage        string
	CompanyID    string
	GroupID      string
	DocumentType string
	FormType     string
	Description  string

	Prompt      *ent.Prompt
	ModelConfig *ent.ModelConfig

	// Exactly one of the two source sets must be non-empty.
	SourceDocuments []*ent.Document
	SourceContents  []*ent.GeneratedContent

	// Force skips the memoization pre-check. Insert-or-fetch still
	// deduplicates by hash, so identical model output never duplicates rows.
	Force bool
}

// generationResult reports what happened to one unit.
type generationResult struct {
	Artifact *ent.GeneratedContent
	Created  bool
	Reused   bool
}

// generate runs one generation unit: memoization pre-check, model call,
// insert-or-fetch.
func generate(ctx context.Context, deps *Deps, in generationInput) (*generationResult, error) {
	if !in.Force {
		existing, err := findExisting(ctx, deps, in)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return &generationResult{Artifact: existing, Reused: true}, nil
		}
	}

	userContent, err := assembleUserContent(in)
	if err != nil {
		return nil, err
	}

	options, err := modelOptions(in.ModelConfig)
	if err != nil {
		return nil, err
	}

	completion, err := deps.Completer.Complete(ctx, llm.Request{
		SystemPrompt: in.Prompt.Content,
		UserContent:  userContent,
		Model:        in.ModelConfig.Model,
		Options:      options,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed for stage %s: %w", in.Stage, err)
	}

	warning := completion.Warning
	if completion.Response == "" {
		// Recorded rather than failed: a retried empty completion would
		// burn tokens for the same likely outcome, and the warning makes
		// the degradation visible downstream.
		warning = "empty model response"
	}

	input := models.CreateContentInput{
		Content:        completion.Response,
		CompanyID:      in.CompanyID,
		GroupID:        in.GroupID,
		DocumentType:   in.DocumentType,
		FormType:       in.FormType,
		ContentStage:   in.Stage,
		Description:    in.Description,
		SystemPromptID: in.Prompt.ID,
		ModelConfigID:  in.ModelConfig.ID,
		TotalDuration:  completion.TotalDurationSeconds,
		InputTokens:    completion.InputTokens,
		OutputTokens:   completion.OutputTokens,
		Warning:        warning,
	}
	for _, d := range in.SourceDocuments {
		input.SourceDocumentIDs = append(input.SourceDocumentIDs, d.ID)
	}
	for _, c := range in.SourceContents {
		input.SourceContentIDs = append(input.SourceContentIDs, c.ID)
	}

	artifact, created, err := deps.Contents.CreateOrGet(ctx, input)
	if err != nil {
		return nil, err
	}
	return &generationResult{Artifact: artifact, Created: created}, nil
}

// findExisting runs the pre-check lookup matching the source shape.
func findExisting(ctx context.Context, deps *Deps, in generationInput) (*ent.GeneratedContent, error) {
	switch {
	case len(in.SourceDocuments) == 1 && len(in.SourceContents) == 0:
		return deps.Contents.FindExistingForDocument(ctx, in.SourceDocuments[0].ID, in.Prompt.ID, in.ModelConfig.ID)
	case len(in.SourceContents) > 0:
		ids := make([]string, len(in.SourceContents))
		for i, c := range in.SourceContents {
			ids[i] = c.ID
		}
		return deps.Contents.FindExistingForSources(ctx, in.Prompt.ID, in.ModelConfig.ID, ids)
	default:
		return nil, services.ErrNotFound
	}
}

// assembleUserContent concatenates source texts in input order.
func assembleUserContent(in generationInput) (string, error) {
	parts := make([]string, 0, len(in.SourceDocuments)+len(in.SourceContents))
	for _, d := range in.SourceDocuments {
		parts = append(parts, d.Content)
	}
	for _, c := range in.SourceContents {
		parts = append(parts, c.Content)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("stage %s has no sources", in.Stage)
	}
	return strings.Join(parts, sourceDelimiter), nil
}

// modelOptions decodes the model config's canonical options JSON.
func modelOptions(mc *ent.ModelConfig) (map[string]interface{}, error) {
	if mc.OptionsJSON == "" {
		return nil, nil
	}
	var options map[string]interface{}
	if err := json.Unmarshal([]byte(mc.OptionsJSON), &options); err != nil {
		return nil, fmt.Errorf("invalid options_json on model config %s: %w", mc.ID, err)
	}
	return options, nil
}

// ensureStagePrompt loads {promptsDir}/{stage}/prompt.md (plus examples)
// and upserts it under the stage name.
func ensureStagePrompt(ctx context.Context, deps *Deps, stage, promptsDir string) (*ent.Prompt, error) {
	if promptsDir == "" {
		promptsDir = deps.Pipeline.PromptsDir
	}
	return deps.Prompts.EnsurePromptFromDir(ctx, stage, filepath.Join(promptsDir, stage))
}

// ensureDefaultModelConfig upserts the configured default model.
func ensureDefaultModelConfig(ctx context.Context, deps *Deps) (*ent.ModelConfig, error) {
	return deps.ModelConfigs.EnsureModelConfig(ctx, deps.Pipeline.Model, deps.Pipeline.ModelOptions)
}
