package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/pkg/models"
	"github.com/filinglens/filinglens/pkg/services"
)

// groupSourceWarnChars is the combined source size above which the group
// stage logs a prompt-length warning. Large groups still run; the model's
// context window is the hard limit, not ours.
const groupSourceWarnChars = 600_000

// GroupPipelineHandler builds a cross-company analysis from the freshest
// aggregate summaries of each ticker in a group, then a frontpage blurb
// from that analysis.
type GroupPipelineHandler struct {
	deps *Deps
}

// Handle implements Handler.
func (h *GroupPipelineHandler) Handle(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	var params models.GroupPipelineParams
	if err := models.DecodeParams(j.Params, &params); err != nil {
		return nil, err
	}

	group, tickers, err := h.resolveGroup(ctx, &params)
	if err != nil {
		return nil, err
	}

	maxPerTicker := params.MaxPerTicker
	if maxPerTicker <= 0 {
		maxPerTicker = h.deps.Pipeline.MaxAggregatesPerTicker
	}

	sources, missing, err := h.collectAggregates(ctx, tickers, maxPerTicker)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no aggregate summaries found for tickers %s", strings.Join(tickers, ","))
	}

	totalChars := 0
	for _, s := range sources {
		totalChars += len(s.Content)
	}
	if totalChars > groupSourceWarnChars {
		slog.Warn("Group analysis sources are very large",
			"group", params.GroupSlug, "sources", len(sources), "chars", totalChars)
	}

	modelConfig, err := ensureDefaultModelConfig(ctx, h.deps)
	if err != nil {
		return nil, err
	}
	analysisPrompt, err := ensureStagePrompt(ctx, h.deps, string(generatedcontent.ContentStageCompanyGroupAnalysis), params.PromptsDir)
	if err != nil {
		return nil, err
	}
	frontpagePrompt, err := ensureStagePrompt(ctx, h.deps, string(generatedcontent.ContentStageCompanyGroupFrontpage), params.PromptsDir)
	if err != nil {
		return nil, err
	}

	groupID := ""
	if group != nil {
		groupID = group.ID
	}

	analysis, err := generate(ctx, h.deps, generationInput{
		Stage:          string(generatedcontent.ContentStageCompanyGroupAnalysis),
		GroupID:        groupID,
		Description:    fmt.Sprintf("group analysis: %s", strings.Join(tickers, ",")),
		Prompt:         analysisPrompt,
		ModelConfig:    modelConfig,
		SourceContents: sources,
	})
	if err != nil {
		return nil, err
	}

	frontpage, err := generate(ctx, h.deps, generationInput{
		Stage:          string(generatedcontent.ContentStageCompanyGroupFrontpage),
		GroupID:        groupID,
		Description:    fmt.Sprintf("group frontpage: %s", strings.Join(tickers, ",")),
		Prompt:         frontpagePrompt,
		ModelConfig:    modelConfig,
		SourceContents: []*ent.GeneratedContent{analysis.Artifact},
	})
	if err != nil {
		return nil, err
	}

	result := map[string]interface{}{
		"analysis_hash":  analysis.Artifact.ContentHash,
		"frontpage_hash": frontpage.Artifact.ContentHash,
		"sources":        len(sources),
		"analysis_new":   analysis.Created,
		"frontpage_new":  frontpage.Created,
	}
	if groupID != "" {
		result["group_id"] = groupID
	}
	if len(missing) > 0 {
		result["tickers_missing"] = missing
	}
	return result, nil
}

// resolveGroup determines the ticker set, upserting the named group when
// both slug and tickers are supplied.
func (h *GroupPipelineHandler) resolveGroup(ctx context.Context, params *models.GroupPipelineParams) (*ent.CompanyGroup, []string, error) {
	switch {
	case params.GroupSlug != "" && len(params.Tickers) > 0:
		group, err := h.deps.Groups.EnsureGroup(ctx, params.GroupSlug, "", params.Tickers)
		if err != nil {
			return nil, nil, err
		}
		return group, group.Tickers, nil
	case params.GroupSlug != "":
		group, err := h.deps.Groups.GetBySlug(ctx, params.GroupSlug)
		if err != nil {
			return nil, nil, fmt.Errorf("group %s: %w", params.GroupSlug, err)
		}
		return group, group.Tickers, nil
	case len(params.Tickers) > 0:
		return nil, params.Tickers, nil
	default:
		return nil, nil, fmt.Errorf("either tickers or group_slug is required")
	}
}

// collectAggregates gathers each ticker's freshest aggregate summaries.
// Unknown tickers and tickers without aggregates are skipped and reported.
func (h *GroupPipelineHandler) collectAggregates(ctx context.Context, tickers []string, maxPerTicker int) ([]*ent.GeneratedContent, []string, error) {
	sources := make([]*ent.GeneratedContent, 0)
	missing := make([]string, 0)

	for _, ticker := range tickers {
		company, err := h.deps.Companies.GetByTicker(ctx, ticker)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				slog.Warn("Group ticker not ingested, skipping", "ticker", ticker)
				missing = append(missing, ticker)
				continue
			}
			return nil, nil, err
		}

		aggregates, err := h.deps.Contents.LatestAggregates(ctx, company.ID, maxPerTicker)
		if err != nil {
			return nil, nil, err
		}
		if len(aggregates) == 0 {
			slog.Warn("Group ticker has no aggregate summaries, skipping", "ticker", ticker)
			missing = append(missing, ticker)
			continue
		}
		sources = append(sources, aggregates...)
	}
	return sources, missing, nil
}
