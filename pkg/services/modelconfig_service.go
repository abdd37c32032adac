package services

import (
	"context"
	"fmt"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/modelconfig"
	"github.com/filinglens/filinglens/pkg/contenthash"
)

// ModelConfigService manages content-addressed ModelConfig records.
type ModelConfigService struct {
	client *ent.Client
}

// NewModelConfigService creates a new ModelConfigService.
func NewModelConfigService(client *ent.Client) *ModelConfigService {
	return &ModelConfigService{client: client}
}

// EnsureModelConfig upserts a model configuration deduplicated by the hash
// of its canonical JSON form. Idempotent on canonical-JSON equality of
// options.
func (s *ModelConfigService) EnsureModelConfig(ctx context.Context, model string, options map[string]interface{}) (*ent.ModelConfig, error) {
	if model == "" {
		return nil, NewValidationError("model", "required")
	}

	optionsJSON, err := contenthash.CanonicalOptions(options)
	if err != nil {
		return nil, NewValidationError("options", err.Error())
	}
	hash := contenthash.ModelConfig(model, optionsJSON)

	existing, err := s.client.ModelConfig.Query().
		Where(modelconfig.ContentHashEQ(hash)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query model config: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	created, err := s.client.ModelConfig.Create().
		SetID(newID()).
		SetModel(model).
		SetOptionsJSON(optionsJSON).
		SetContentHash(hash).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.ByHash(ctx, hash)
		}
		return nil, fmt.Errorf("failed to create model config: %w", err)
	}
	return created, nil
}

// ByHash returns a model config by full content hash.
func (s *ModelConfigService) ByHash(ctx context.Context, hash string) (*ent.ModelConfig, error) {
	mc, err := s.client.ModelConfig.Query().
		Where(modelconfig.ContentHashEQ(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get model config: %w", err)
	}
	return mc, nil
}

// Get returns a model config by id.
func (s *ModelConfigService) Get(ctx context.Context, id string) (*ent.ModelConfig, error) {
	mc, err := s.client.ModelConfig.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get model config: %w", err)
	}
	return mc, nil
}
