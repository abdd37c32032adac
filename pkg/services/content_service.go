package services

import (
	"context"
	"fmt"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/pkg/contenthash"
	"github.com/filinglens/filinglens/pkg/models"
)

// maxSourceDepth bounds the provenance walk during cycle detection. The
// pipeline produces at most three levels (single → aggregate → frontpage);
// anything deeper than this is malformed.
const maxSourceDepth = 16

// ContentService manages GeneratedContent — the content-addressed artifacts
// produced by the LLM pipeline. Rows are immutable after insert except for
// the summary field.
type ContentService struct {
	client *ent.Client
}

// NewContentService creates a new ContentService.
func NewContentService(client *ent.Client) *ContentService {
	return &ContentService{client: client}
}

// CreateOrGet inserts a generated artifact deduplicated by content hash.
// If a row with the same hash already exists it is returned unchanged with
// created=false; otherwise the row is inserted with its source associations
// and returned with created=true.
func (s *ContentService) CreateOrGet(ctx context.Context, input models.CreateContentInput) (*ent.GeneratedContent, bool, error) {
	stage := generatedcontent.ContentStage(input.ContentStage)
	if err := generatedcontent.ContentStageValidator(stage); err != nil {
		return nil, false, NewValidationError("content_stage", err.Error())
	}
	if input.SystemPromptID == "" {
		return nil, false, NewValidationError("system_prompt_id", "required")
	}
	if input.ModelConfigID == "" {
		return nil, false, NewValidationError("model_config_id", "required")
	}

	// Exactly one source set must be populated (invariant on source_type).
	var sourceType generatedcontent.SourceType
	switch {
	case len(input.SourceDocumentIDs) > 0 && len(input.SourceContentIDs) > 0:
		return nil, false, NewValidationError("sources", "document and content sources are mutually exclusive")
	case len(input.SourceDocumentIDs) > 0:
		sourceType = generatedcontent.SourceTypeDocuments
	case len(input.SourceContentIDs) > 0:
		sourceType = generatedcontent.SourceTypeGeneratedContent
	default:
		return nil, false, NewValidationError("sources", "at least one source is required")
	}

	hash := contenthash.Text(input.Content)

	existing, err := s.getByFullHash(ctx, hash)
	if err != nil && err != ErrNotFound {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	if sourceType == generatedcontent.SourceTypeGeneratedContent {
		if err := s.checkNoCycle(ctx, hash, input.SourceContentIDs); err != nil {
			return nil, false, err
		}
	}

	builder := s.client.GeneratedContent.Create().
		SetID(newID()).
		SetContent(input.Content).
		SetContentHash(hash).
		SetContentStage(stage).
		SetSourceType(sourceType).
		SetSystemPromptID(input.SystemPromptID).
		SetModelConfigID(input.ModelConfigID).
		SetTotalDuration(input.TotalDuration).
		SetDescription(input.Description)

	if input.CompanyID != "" {
		builder.SetCompanyID(input.CompanyID)
	}
	if input.GroupID != "" {
		builder.SetGroupID(input.GroupID)
	}
	if input.DocumentType != "" {
		docType := generatedcontent.DocumentType(input.DocumentType)
		if err := generatedcontent.DocumentTypeValidator(docType); err != nil {
			return nil, false, NewValidationError("document_type", err.Error())
		}
		builder.SetDocumentType(docType)
	}
	if input.FormType != "" {
		builder.SetFormType(input.FormType)
	}
	if input.InputTokens != nil {
		builder.SetInputTokens(*input.InputTokens)
	}
	if input.OutputTokens != nil {
		builder.SetOutputTokens(*input.OutputTokens)
	}
	if input.Warning != "" {
		builder.SetWarning(input.Warning)
	}
	if sourceType == generatedcontent.SourceTypeDocuments {
		builder.AddSourceDocumentIDs(input.SourceDocumentIDs...)
	} else {
		builder.AddSourceContentIDs(input.SourceContentIDs...)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent insert of the same content; not an error — the
			// existing row is the artifact (data-consistency policy).
			winner, getErr := s.getByFullHash(ctx, hash)
			if getErr != nil {
				return nil, false, fmt.Errorf("failed to fetch content after hash collision: %w", getErr)
			}
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("failed to create content: %w", err)
	}
	return created, true, nil
}

// ByHash returns generated content by full content hash or an unambiguous
// prefix of at least contenthash.ShortHashLen characters.
func (s *ContentService) ByHash(ctx context.Context, hash string) (*ent.GeneratedContent, error) {
	if len(hash) == 64 {
		return s.getByFullHash(ctx, hash)
	}
	if len(hash) < contenthash.ShortHashLen {
		return nil, NewValidationError("hash", fmt.Sprintf("prefix must be at least %d characters", contenthash.ShortHashLen))
	}

	matches, err := s.client.GeneratedContent.Query().
		Where(generatedcontent.ContentHashHasPrefix(hash)).
		Limit(2).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query content by prefix: %w", err)
	}
	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, ErrAmbiguousHash
	}
}

// Get returns generated content by id.
func (s *ContentService) Get(ctx context.Context, id string) (*ent.GeneratedContent, error) {
	gc, err := s.client.GeneratedContent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return gc, nil
}

// SetSummary is the single permitted post-insert update on generated
// content.
func (s *ContentService) SetSummary(ctx context.Context, id, summary string) error {
	err := s.client.GeneratedContent.UpdateOneID(id).
		SetSummary(summary).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set summary: %w", err)
	}
	return nil
}

// FindExistingForDocument is the primary memoization lookup: the artifact
// previously generated from this document under this (system prompt, model
// config) pair, if any. Pipeline stages consult it before spending an LLM
// call.
func (s *ContentService) FindExistingForDocument(ctx context.Context, documentID, systemPromptID, modelConfigID string) (*ent.GeneratedContent, error) {
	gc, err := s.client.GeneratedContent.Query().
		Where(
			generatedcontent.SystemPromptIDEQ(systemPromptID),
			generatedcontent.ModelConfigIDEQ(modelConfigID),
			generatedcontent.SourceTypeEQ(generatedcontent.SourceTypeDocuments),
			generatedcontent.HasSourceDocumentsWith(document.ID(documentID)),
		).
		Order(ent.Desc(generatedcontent.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query content for document: %w", err)
	}
	return gc, nil
}

// FindExistingForSources is the symmetric lookup for content-sourced stages:
// the artifact whose (system prompt, model config, source set) matches
// exactly. Returns ErrNotFound when no exact match exists.
func (s *ContentService) FindExistingForSources(ctx context.Context, systemPromptID, modelConfigID string, sourceContentIDs []string) (*ent.GeneratedContent, error) {
	if len(sourceContentIDs) == 0 {
		return nil, ErrNotFound
	}

	q := s.client.GeneratedContent.Query().
		Where(
			generatedcontent.SystemPromptIDEQ(systemPromptID),
			generatedcontent.ModelConfigIDEQ(modelConfigID),
			generatedcontent.SourceTypeEQ(generatedcontent.SourceTypeGeneratedContent),
		)
	for _, id := range sourceContentIDs {
		q = q.Where(generatedcontent.HasSourceContentWith(generatedcontent.ID(id)))
	}

	candidates, err := q.
		Order(ent.Desc(generatedcontent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query content for sources: %w", err)
	}

	want := make(map[string]bool, len(sourceContentIDs))
	for _, id := range sourceContentIDs {
		want[id] = true
	}

	// Containment is not enough: the source set must match exactly for the
	// tuple to act as a key (invariant on the lookup).
	for _, c := range candidates {
		ids, err := c.QuerySourceContent().IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load candidate sources: %w", err)
		}
		if len(ids) != len(want) {
			continue
		}
		exact := true
		for _, id := range ids {
			if !want[id] {
				exact = false
				break
			}
		}
		if exact {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// LatestAggregates returns a company's most recent aggregate summaries, up
// to max, newest first. Used by the cross-company group stage.
func (s *ContentService) LatestAggregates(ctx context.Context, companyID string, max int) ([]*ent.GeneratedContent, error) {
	if max <= 0 {
		max = 3
	}
	contents, err := s.client.GeneratedContent.Query().
		Where(
			generatedcontent.CompanyIDEQ(companyID),
			generatedcontent.ContentStageEQ(generatedcontent.ContentStageAggregateSummary),
		).
		Order(ent.Desc(generatedcontent.FieldCreatedAt)).
		Limit(max).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query aggregates: %w", err)
	}
	return contents, nil
}

// ListByCompany returns a company's artifacts, newest first, optionally
// narrowed to one stage. Content text is omitted; use Get for the full row.
func (s *ContentService) ListByCompany(ctx context.Context, companyID, stage string, limit int) ([]*ent.GeneratedContent, error) {
	if limit <= 0 {
		limit = 100
	}
	q := s.client.GeneratedContent.Query().
		Where(generatedcontent.CompanyIDEQ(companyID))
	if stage != "" {
		cs := generatedcontent.ContentStage(stage)
		if err := generatedcontent.ContentStageValidator(cs); err != nil {
			return nil, NewValidationError("content_stage", err.Error())
		}
		q = q.Where(generatedcontent.ContentStageEQ(cs))
	}

	contents, err := q.
		Select(
			generatedcontent.FieldID,
			generatedcontent.FieldContentHash,
			generatedcontent.FieldContentStage,
			generatedcontent.FieldSourceType,
			generatedcontent.FieldCompanyID,
			generatedcontent.FieldDocumentType,
			generatedcontent.FieldFormType,
			generatedcontent.FieldCreatedAt,
		).
		Order(ent.Desc(generatedcontent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return contents, nil
}

// getByFullHash returns the row with the exact content hash, or ErrNotFound.
func (s *ContentService) getByFullHash(ctx context.Context, hash string) (*ent.GeneratedContent, error) {
	gc, err := s.client.GeneratedContent.Query().
		Where(generatedcontent.ContentHashEQ(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get content by hash: %w", err)
	}
	return gc, nil
}

// checkNoCycle rejects an insert whose transitive sources would include the
// candidate itself. The hash-before-insert order makes this a cheap
// depth-bounded walk over the provenance DAG.
func (s *ContentService) checkNoCycle(ctx context.Context, candidateHash string, sourceIDs []string) error {
	frontier := sourceIDs
	visited := make(map[string]bool)

	for depth := 0; len(frontier) > 0; depth++ {
		if depth >= maxSourceDepth {
			return fmt.Errorf("%w: provenance deeper than %d levels", ErrSourceCycle, maxSourceDepth)
		}

		next := make([]string, 0)
		for _, id := range frontier {
			if visited[id] {
				continue
			}
			visited[id] = true

			row, err := s.client.GeneratedContent.Query().
				Where(generatedcontent.ID(id)).
				Select(generatedcontent.FieldID, generatedcontent.FieldContentHash).
				Only(ctx)
			if err != nil {
				if ent.IsNotFound(err) {
					return NewValidationError("source_content_ids", fmt.Sprintf("source %s not found", id))
				}
				return fmt.Errorf("failed to walk sources: %w", err)
			}
			if row.ContentHash == candidateHash {
				return ErrSourceCycle
			}

			ids, err := s.client.GeneratedContent.Query().
				Where(generatedcontent.ID(id)).
				QuerySourceContent().
				IDs(ctx)
			if err != nil {
				return fmt.Errorf("failed to walk sources: %w", err)
			}
			next = append(next, ids...)
		}
		frontier = next
	}
	return nil
}
