package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/pkg/ingest"
	"github.com/filinglens/filinglens/pkg/models"
)

// Filing ingestion defaults, applied when job params leave them unset.
const (
	defaultFilingForm  = "10-K"
	defaultFilingCount = 5
)

// CompanyIngestionHandler fetches company metadata from the source and
// upserts it.
type CompanyIngestionHandler struct {
	deps *Deps
}

// Handle implements Handler.
func (h *CompanyIngestionHandler) Handle(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	var params models.CompanyIngestionParams
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
	return map[string]interface{}{
		"company_id": company.ID,
		"ticker":     company.Ticker,
	}, nil
}

// FilingIngestionHandler fetches recent filings for a company, persists
// them with their extracted documents, and refreshes financial values. The
// financial sub-step is best-effort: a source failure there degrades the
// result but does not fail the job.
type FilingIngestionHandler struct {
	deps *Deps
}

// Handle implements Handler.
func (h *FilingIngestionHandler) Handle(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	var params models.FilingIngestionParams
	if err := models.DecodeParams(j.Params, &params); err != nil {
		return nil, err
	}
	if params.Ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}

	companyID := params.CompanyID
	if companyID == "" {
		company, err := h.deps.Companies.GetByTicker(ctx, params.Ticker)
		if err != nil {
			return nil, fmt.Errorf("company for ticker %s not ingested: %w", params.Ticker, err)
		}
		companyID = company.ID
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

	filings, documents, err := ingestFilings(ctx, h.deps, companyID, params.Ticker, params.Form, params.Count, includeDocuments)
	if err != nil {
		return nil, err
	}

	result := map[string]interface{}{
		"company_id": companyID,
		"filings":    filings,
		"documents":  documents,
	}

	values, finErr := ingestFinancials(ctx, h.deps, companyID, params.Ticker)
	result["financial_values"] = values
	if finErr != nil {
		slog.Warn("Financial ingestion failed, continuing without values",
			"ticker", params.Ticker, "error", finErr)
		result["financial_warning"] = finErr.Error()
	}
	return result, nil
}

// BulkIngestHandler ingests an explicit batch of filings by accession
// number. Per-filing failures are recorded and do not abort the batch.
type BulkIngestHandler struct {
	deps *Deps
}

// Handle implements Handler.
func (h *BulkIngestHandler) Handle(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	var params models.BulkIngestParams
	if err := models.DecodeParams(j.Params, &params); err != nil {
		return nil, err
	}
	if len(params.Filings) == 0 {
		return nil, fmt.Errorf("filings list is empty")
	}

	includeDocuments := true
	if params.IncludeDocuments != nil {
		includeDocuments = *params.IncludeDocuments
	}

	ingested := 0
	failures := make([]string, 0)
	for _, ref := range params.Filings {
		if err := h.ingestOne(ctx, ref, includeDocuments); err != nil {
			slog.Warn("Bulk ingest filing failed",
				"accession", ref.AccessionNumber, "error", err)
			failures = append(failures, fmt.Sprintf("%s: %v", ref.AccessionNumber, err))
			continue
		}
		ingested++
	}

	result := map[string]interface{}{
		"ingested": ingested,
		"failed":   len(failures),
	}
	if len(failures) > 0 {
		result["failures"] = failures
	}
	if ingested == 0 {
		return nil, fmt.Errorf("all %d filings failed to ingest", len(failures))
	}
	return result, nil
}

func (h *BulkIngestHandler) ingestOne(ctx context.Context, ref models.FilingRef, includeDocuments bool) error {
	rec, err := h.deps.Source.FetchFilingByAccession(ctx, ref.CIK, ref.AccessionNumber, includeDocuments)
	if err != nil {
		return err
	}

	// Batches reference companies by CIK; without ticker metadata the CIK
	// doubles as the placeholder ticker until a proper company ingestion
	// replaces it.
	company, err := h.deps.Companies.UpsertCompany(ctx, models.UpsertCompanyInput{
		Ticker: "CIK" + ref.CIK,
		Name:   ref.CompanyName,
	})
	if err != nil {
		return err
	}

	return persistFiling(ctx, h.deps, company.ID, *rec)
}

// ingestCompany fetches and upserts one company.
func ingestCompany(ctx context.Context, deps *Deps, ticker string) (*ent.Company, error) {
	rec, err := deps.Source.FetchCompany(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company %s: %w", ticker, err)
	}
	company, err := deps.Companies.UpsertCompany(ctx, models.UpsertCompanyInput{
		Ticker:        rec.Ticker,
		Name:          rec.Name,
		Exchanges:     rec.Exchanges,
		IndustryCode:  rec.IndustryCode,
		FiscalYearEnd: rec.FiscalYearEnd,
	})
	if err != nil {
		return nil, err
	}
	return company, nil
}

// ingestFilings fetches and persists up to count filings of one form.
// Returns counts of filings and documents written.
func ingestFilings(ctx context.Context, deps *Deps, companyID, ticker, form string, count int, includeDocuments bool) (int, int, error) {
	recs, err := deps.Source.FetchFilings(ctx, ticker, form, count, includeDocuments)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch filings for %s: %w", ticker, err)
	}

	filings, documents := 0, 0
	for _, rec := range recs {
		if err := persistFiling(ctx, deps, companyID, rec); err != nil {
			return filings, documents, err
		}
		filings++
		documents += len(rec.Documents)
	}
	return filings, documents, nil
}

// persistFiling upserts one filing and its documents.
func persistFiling(ctx context.Context, deps *Deps, companyID string, rec ingest.FilingRecord) error {
	filing, err := deps.Filings.UpsertFiling(ctx, models.UpsertFilingInput{
		CompanyID:       companyID,
		AccessionNumber: rec.AccessionNumber,
		FormType:        rec.FormType,
		FilingDate:      rec.FilingDate,
		PeriodOfReport:  rec.PeriodOfReport,
		SourceURL:       rec.SourceURL,
	})
	if err != nil {
		return err
	}

	for _, doc := range rec.Documents {
		_, err := deps.Filings.UpsertDocument(ctx, models.UpsertDocumentInput{
			FilingID:     filing.ID,
			CompanyID:    companyID,
			Title:        doc.Title,
			DocumentType: doc.DocumentType,
			Content:      doc.Content,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert %s document on %s: %w", doc.DocumentType, rec.AccessionNumber, err)
		}
	}
	return nil
}

// ingestFinancials fetches and upserts financial values. Returns the number
// written; errors are reported to the caller for non-fatal handling.
func ingestFinancials(ctx context.Context, deps *Deps, companyID, ticker string) (int, error) {
	recs, err := deps.Source.FetchFinancials(ctx, ticker)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, rec := range recs {
		filingID := ""
		if rec.AccessionNumber != "" {
			filing, err := deps.Filings.GetByAccession(ctx, rec.AccessionNumber)
			if err == nil {
				filingID = filing.ID
			}
		}
		_, err := deps.Financials.UpsertValue(ctx, models.UpsertFinancialValueInput{
			CompanyID:   companyID,
			ConceptName: rec.ConceptName,
			Labels:      rec.Labels,
			ValueDate:   rec.ValueDate,
			FilingID:    filingID,
			Value:       rec.Value,
		})
		if err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
