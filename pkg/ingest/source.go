// Package ingest defines the boundary the ingestion handlers fetch filings
// through. The production EDGAR-backed source lives outside this module;
// handlers depend only on the interface.
package ingest

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CompanyRecord is company metadata as reported by the source.
type CompanyRecord struct {
	Ticker        string
	Name          string
	CIK           string
	Exchanges     []string
	IndustryCode  string
	FiscalYearEnd string
}

// DocumentRecord is one extracted section of a filing.
type DocumentRecord struct {
	DocumentType string
	Title        string
	Content      string
}

// FilingRecord is one filing, optionally with its extracted sections.
type FilingRecord struct {
	AccessionNumber string
	FormType        string
	FilingDate      time.Time
	PeriodOfReport  *time.Time
	SourceURL       string
	Documents       []DocumentRecord
}

// FinancialRecord is one reported financial fact.
type FinancialRecord struct {
	ConceptName string
	Labels      []string
	ValueDate   time.Time
	// AccessionNumber links the fact to a filing when the source reports
	// one; empty means company-level.
	AccessionNumber string
	Value           decimal.Decimal
}

// Source fetches filing data for ingestion. Implementations must be safe
// for concurrent use across workers.
type Source interface {
	// FetchCompany returns company metadata for a ticker.
	FetchCompany(ctx context.Context, ticker string) (*CompanyRecord, error)

	// FetchFilings returns up to count recent filings of the given form for
	// a ticker, newest first. includeDocuments controls whether extracted
	// sections are populated.
	FetchFilings(ctx context.Context, ticker, form string, count int, includeDocuments bool) ([]FilingRecord, error)

	// FetchFilingByAccession returns one filing by CIK and accession number.
	FetchFilingByAccession(ctx context.Context, cik, accessionNumber string, includeDocuments bool) (*FilingRecord, error)

	// FetchFinancials returns the reported financial facts for a ticker.
	FetchFinancials(ctx context.Context, ticker string) ([]FinancialRecord, error)
}
