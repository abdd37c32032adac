package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/companygroup"
)

// GroupService manages CompanyGroup records.
type GroupService struct {
	client *ent.Client
}

// NewGroupService creates a new GroupService.
func NewGroupService(client *ent.Client) *GroupService {
	return &GroupService{client: client}
}

// EnsureGroup upserts a group keyed by slug. Tickers are normalized to
// uppercase and replace the stored set on update.
func (s *GroupService) EnsureGroup(ctx context.Context, slug, name string, tickers []string) (*ent.CompanyGroup, error) {
	if slug == "" {
		return nil, NewValidationError("slug", "required")
	}
	if len(tickers) == 0 {
		return nil, NewValidationError("tickers", "at least one ticker is required")
	}

	normalized := make([]string, 0, len(tickers))
	seen := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		upper := strings.ToUpper(strings.TrimSpace(t))
		if upper != "" && !seen[upper] {
			seen[upper] = true
			normalized = append(normalized, upper)
		}
	}

	existing, err := s.client.CompanyGroup.Query().
		Where(companygroup.SlugEQ(slug)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query group: %w", err)
	}

	if existing != nil {
		builder := existing.Update().
			SetTickers(normalized)
		if name != "" {
			builder.SetName(name)
		}
		updated, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update group: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.CompanyGroup.Create().
		SetID(newID()).
		SetSlug(slug).
		SetName(name).
		SetTickers(normalized).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.EnsureGroup(ctx, slug, name, tickers)
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return created, nil
}

// GetBySlug returns a group by slug.
func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*ent.CompanyGroup, error) {
	g, err := s.client.CompanyGroup.Query().
		Where(companygroup.SlugEQ(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return g, nil
}

// List returns all groups ordered by slug.
func (s *GroupService) List(ctx context.Context) ([]*ent.CompanyGroup, error) {
	groups, err := s.client.CompanyGroup.Query().
		Order(ent.Asc(companygroup.FieldSlug)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}
