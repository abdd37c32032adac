package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/pkg/ingest"
	"github.com/filinglens/filinglens/pkg/models"
)

func TestCompanyIngestionHandler(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()
	registerTicker(fx.source, "AAPL", 0)

	h := &CompanyIngestionHandler{deps: fx.deps}

	t.Run("ingests and upserts", func(t *testing.T) {
		result, err := h.Handle(ctx, jobWith(t, models.CompanyIngestionParams{Ticker: "aapl"}))
		require.NoError(t, err)
		assert.Equal(t, "AAPL", result["ticker"])

		company, err := fx.deps.Companies.GetByTicker(ctx, "AAPL")
		require.NoError(t, err)
		assert.Equal(t, "AAPL Inc.", company.Name)
	})

	t.Run("unknown ticker errors", func(t *testing.T) {
		_, err := h.Handle(ctx, jobWith(t, models.CompanyIngestionParams{Ticker: "GHOST"}))
		require.Error(t, err)
	})

	t.Run("missing ticker errors", func(t *testing.T) {
		_, err := h.Handle(ctx, jobWith(t, models.CompanyIngestionParams{}))
		require.Error(t, err)
	})
}

func TestFilingIngestionHandler(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()
	registerTicker(fx.source, "AAPL", 2)
	fx.source.AddFinancial("AAPL", ingest.FinancialRecord{
		ConceptName:     "Revenues",
		Labels:          []string{"Revenue"},
		ValueDate:       time.Date(2024, 9, 28, 0, 0, 0, 0, time.UTC),
		AccessionNumber: "AAPL-acc-a",
		Value:           decimal.NewFromInt(391_035_000_000),
	})

	h := &FilingIngestionHandler{deps: fx.deps}

	t.Run("requires an ingested company", func(t *testing.T) {
		_, err := h.Handle(ctx, jobWith(t, models.FilingIngestionParams{Ticker: "AAPL"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not ingested")
	})

	t.Run("persists filings, documents, and financials", func(t *testing.T) {
		company, err := ingestCompany(ctx, fx.deps, "AAPL")
		require.NoError(t, err)

		result, err := h.Handle(ctx, jobWith(t, models.FilingIngestionParams{
			Ticker: "AAPL",
			Form:   "10-K",
			Count:  2,
		}))
		require.NoError(t, err)
		assert.Equal(t, 2, result["filings"])
		assert.Equal(t, 4, result["documents"])
		assert.Equal(t, 1, result["financial_values"])
		assert.NotContains(t, result, "financial_warning")

		// The financial fact linked to its filing by accession number.
		values, err := fx.deps.Financials.ListValues(ctx, company.ID, "", 10)
		require.NoError(t, err)
		require.Len(t, values, 1)
		require.NotNil(t, values[0].FilingID)

		filing, err := fx.deps.Filings.GetByAccession(ctx, "AAPL-acc-a")
		require.NoError(t, err)
		assert.Equal(t, filing.ID, *values[0].FilingID)
	})

	t.Run("re-ingestion is idempotent", func(t *testing.T) {
		result, err := h.Handle(ctx, jobWith(t, models.FilingIngestionParams{
			Ticker: "AAPL",
			Form:   "10-K",
		}))
		require.NoError(t, err)
		assert.Equal(t, 2, result["filings"])

		company, err := fx.deps.Companies.GetByTicker(ctx, "AAPL")
		require.NoError(t, err)
		filings, err := fx.deps.Filings.ListByCompany(ctx, company.ID, "", 100)
		require.NoError(t, err)
		assert.Len(t, filings, 2)
	})

	t.Run("skips documents when asked", func(t *testing.T) {
		no := false
		result, err := h.Handle(ctx, jobWith(t, models.FilingIngestionParams{
			Ticker:           "AAPL",
			IncludeDocuments: &no,
		}))
		require.NoError(t, err)
		assert.Equal(t, 0, result["documents"])
	})
}

func TestFilingIngestionHandler_Defaults(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()

	// Seven 10-Ks plus a 10-Q: empty params must narrow to the five
	// latest 10-Ks, not everything the source has.
	registerTicker(fx.source, "AAPL", 7)
	fx.source.AddFiling("AAPL", ingest.FilingRecord{
		AccessionNumber: "AAPL-acc-q",
		FormType:        "10-Q",
		FilingDate:      time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	company, err := ingestCompany(ctx, fx.deps, "AAPL")
	require.NoError(t, err)

	h := &FilingIngestionHandler{deps: fx.deps}
	result, err := h.Handle(ctx, jobWith(t, models.FilingIngestionParams{Ticker: "AAPL"}))
	require.NoError(t, err)
	assert.Equal(t, 5, result["filings"])

	filings, err := fx.deps.Filings.ListByCompany(ctx, company.ID, "", 100)
	require.NoError(t, err)
	require.Len(t, filings, 5)
	for _, f := range filings {
		assert.Equal(t, "10-K", f.FormType)
	}

	t.Run("ingest pipeline applies the same defaults", func(t *testing.T) {
		p := &IngestPipelineHandler{deps: fx.deps}
		result, err := p.Handle(ctx, jobWith(t, models.IngestPipelineParams{Ticker: "AAPL"}))
		require.NoError(t, err)
		assert.Equal(t, 5, result["filings"])
	})
}

func TestBulkIngestHandler(t *testing.T) {
	fx := setupHandlerFixture(t)
	ctx := context.Background()
	registerTicker(fx.source, "AAPL", 1)

	h := &BulkIngestHandler{deps: fx.deps}

	t.Run("partial failure continues the batch", func(t *testing.T) {
		result, err := h.Handle(ctx, jobWith(t, models.BulkIngestParams{
			Filings: []models.FilingRef{
				{CIK: "0000320193", CompanyName: "Apple Inc.", AccessionNumber: "AAPL-acc-a", Form: "10-K"},
				{CIK: "0000000000", CompanyName: "Ghost Corp", AccessionNumber: "no-such-accession", Form: "10-K"},
			},
		}))
		require.NoError(t, err)
		assert.Equal(t, 1, result["ingested"])
		assert.Equal(t, 1, result["failed"])
		require.Contains(t, result, "failures")

		// Companies from bulk batches carry the CIK placeholder ticker.
		company, err := fx.deps.Companies.GetByTicker(ctx, "CIK0000320193")
		require.NoError(t, err)
		assert.Equal(t, "Apple Inc.", company.Name)
	})

	t.Run("all failed is an error", func(t *testing.T) {
		_, err := h.Handle(ctx, jobWith(t, models.BulkIngestParams{
			Filings: []models.FilingRef{
				{CIK: "1", CompanyName: "X", AccessionNumber: "missing-1"},
			},
		}))
		require.Error(t, err)
	})

	t.Run("empty batch is an error", func(t *testing.T) {
		_, err := h.Handle(ctx, jobWith(t, models.BulkIngestParams{}))
		require.Error(t, err)
	})
}
