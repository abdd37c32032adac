package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/company"
	"github.com/filinglens/filinglens/pkg/models"
)

// CompanyService manages Company records.
type CompanyService struct {
	client *ent.Client
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(client *ent.Client) *CompanyService {
	return &CompanyService{client: client}
}

// UpsertCompany creates or updates a company keyed by uppercase ticker.
func (s *CompanyService) UpsertCompany(ctx context.Context, input models.UpsertCompanyInput) (*ent.Company, error) {
	ticker := strings.ToUpper(strings.TrimSpace(input.Ticker))
	if ticker == "" {
		return nil, NewValidationError("ticker", "required")
	}
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	existing, err := s.client.Company.Query().
		Where(company.TickerEQ(ticker)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query company: %w", err)
	}

	if existing != nil {
		builder := existing.Update().
			SetName(input.Name).
			SetExchanges(input.Exchanges).
			SetIndustryCode(input.IndustryCode)
		if input.FiscalYearEnd != "" {
			builder.SetFiscalYearEnd(input.FiscalYearEnd)
		}
		updated, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update company: %w", err)
		}
		return updated, nil
	}

	builder := s.client.Company.Create().
		SetID(newID()).
		SetTicker(ticker).
		SetName(input.Name).
		SetExchanges(input.Exchanges).
		SetIndustryCode(input.IndustryCode)
	if input.FiscalYearEnd != "" {
		builder.SetFiscalYearEnd(input.FiscalYearEnd)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a concurrent upsert race; the winner's row is authoritative.
			return s.GetByTicker(ctx, ticker)
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// GetByTicker returns a company by its uppercase ticker.
func (s *CompanyService) GetByTicker(ctx context.Context, ticker string) (*ent.Company, error) {
	c, err := s.client.Company.Query().
		Where(company.TickerEQ(strings.ToUpper(strings.TrimSpace(ticker)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

// Get returns a company by id.
func (s *CompanyService) Get(ctx context.Context, id string) (*ent.Company, error) {
	c, err := s.client.Company.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

// List returns companies ordered by ticker.
func (s *CompanyService) List(ctx context.Context, limit int) ([]*ent.Company, error) {
	if limit <= 0 {
		limit = 100
	}
	companies, err := s.client.Company.Query().
		Order(ent.Asc(company.FieldTicker)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}
