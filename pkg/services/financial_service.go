package services

import (
	"context"
	"fmt"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/financialconcept"
	"github.com/filinglens/filinglens/ent/financialvalue"
	"github.com/filinglens/filinglens/pkg/models"
)

// FinancialService manages FinancialConcept and FinancialValue records.
type FinancialService struct {
	client *ent.Client
}

// NewFinancialService creates a new FinancialService.
func NewFinancialService(client *ent.Client) *FinancialService {
	return &FinancialService{client: client}
}

// EnsureConcept returns the concept with the given name, creating it if
// missing. When the concept exists, the supplied labels are unioned into it.
func (s *FinancialService) EnsureConcept(ctx context.Context, name, description string, labels []string) (*ent.FinancialConcept, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	existing, err := s.client.FinancialConcept.Query().
		Where(financialconcept.NameEQ(name)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query concept: %w", err)
	}

	if existing != nil {
		merged := unionLabels(existing.Labels, labels)
		if len(merged) == len(existing.Labels) {
			return existing, nil
		}
		updated, err := existing.Update().
			SetLabels(merged).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to merge concept labels: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.FinancialConcept.Create().
		SetID(newID()).
		SetName(name).
		SetDescription(description).
		SetLabels(unionLabels(nil, labels)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.EnsureConcept(ctx, name, description, labels)
		}
		return nil, fmt.Errorf("failed to create concept: %w", err)
	}
	return created, nil
}

// GetConcept returns a concept by name.
func (s *FinancialService) GetConcept(ctx context.Context, name string) (*ent.FinancialConcept, error) {
	c, err := s.client.FinancialConcept.Query().
		Where(financialconcept.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get concept: %w", err)
	}
	return c, nil
}

// ListConcepts returns all concepts ordered by name.
func (s *FinancialService) ListConcepts(ctx context.Context) ([]*ent.FinancialConcept, error) {
	concepts, err := s.client.FinancialConcept.Query().
		Order(ent.Asc(financialconcept.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list concepts: %w", err)
	}
	return concepts, nil
}

// UpsertValue writes one financial value keyed by
// (company, concept, value_date, filing-or-null). The concept is ensured as
// part of the write.
func (s *FinancialService) UpsertValue(ctx context.Context, input models.UpsertFinancialValueInput) (*ent.FinancialValue, error) {
	if input.CompanyID == "" {
		return nil, NewValidationError("company_id", "required")
	}

	concept, err := s.EnsureConcept(ctx, input.ConceptName, "", input.Labels)
	if err != nil {
		return nil, err
	}

	q := s.client.FinancialValue.Query().
		Where(
			financialvalue.CompanyIDEQ(input.CompanyID),
			financialvalue.ConceptIDEQ(concept.ID),
			financialvalue.ValueDateEQ(input.ValueDate),
		)
	if input.FilingID != "" {
		q = q.Where(financialvalue.FilingIDEQ(input.FilingID))
	} else {
		q = q.Where(financialvalue.FilingIDIsNil())
	}

	existing, err := q.Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query value: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetValue(input.Value).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update value: %w", err)
		}
		return updated, nil
	}

	builder := s.client.FinancialValue.Create().
		SetID(newID()).
		SetCompanyID(input.CompanyID).
		SetConceptID(concept.ID).
		SetValueDate(input.ValueDate).
		SetValue(input.Value)
	if input.FilingID != "" {
		builder.SetFilingID(input.FilingID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent upsert of the same key; retry as an update.
			return s.UpsertValue(ctx, input)
		}
		return nil, fmt.Errorf("failed to create value: %w", err)
	}
	return created, nil
}

// ListValues returns a company's values, newest value date first, optionally
// narrowed to one concept.
func (s *FinancialService) ListValues(ctx context.Context, companyID, conceptName string, limit int) ([]*ent.FinancialValue, error) {
	if limit <= 0 {
		limit = 100
	}
	q := s.client.FinancialValue.Query().
		Where(financialvalue.CompanyIDEQ(companyID))
	if conceptName != "" {
		concept, err := s.GetConcept(ctx, conceptName)
		if err != nil {
			return nil, err
		}
		q = q.Where(financialvalue.ConceptIDEQ(concept.ID))
	}

	values, err := q.
		Order(ent.Desc(financialvalue.FieldValueDate)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list values: %w", err)
	}
	return values, nil
}

// unionLabels merges two label sets preserving first-seen order.
func unionLabels(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, l := range existing {
		if l != "" && !seen[l] {
			seen[l] = true
			merged = append(merged, l)
		}
	}
	for _, l := range incoming {
		if l != "" && !seen[l] {
			seen[l] = true
			merged = append(merged, l)
		}
	}
	return merged
}
