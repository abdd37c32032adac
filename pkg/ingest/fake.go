package ingest

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// FakeSource is an in-memory Source for tests and local development.
// Records are registered up front; fetches look them up by ticker.
type FakeSource struct {
	mu sync.Mutex

	companies  map[string]*CompanyRecord
	filings    map[string][]FilingRecord
	financials map[string][]FinancialRecord

	// FinancialsErr, when set, is returned from FetchFinancials. Lets tests
	// exercise the non-fatal financial sub-step.
	FinancialsErr error
}

// NewFakeSource creates an empty fake.
func NewFakeSource() *FakeSource {
	return &FakeSource{
		companies:  make(map[string]*CompanyRecord),
		filings:    make(map[string][]FilingRecord),
		financials: make(map[string][]FinancialRecord),
	}
}

// AddCompany registers a company record.
func (f *FakeSource) AddCompany(rec CompanyRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.companies[strings.ToUpper(rec.Ticker)] = &rec
}

// AddFiling registers a filing for a ticker. Filings are returned in
// registration order, so register newest first.
func (f *FakeSource) AddFiling(ticker string, rec FilingRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := strings.ToUpper(ticker)
	f.filings[key] = append(f.filings[key], rec)
}

// AddFinancial registers a financial fact for a ticker.
func (f *FakeSource) AddFinancial(ticker string, rec FinancialRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := strings.ToUpper(ticker)
	f.financials[key] = append(f.financials[key], rec)
}

// FetchCompany implements Source.
func (f *FakeSource) FetchCompany(_ context.Context, ticker string) (*CompanyRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.companies[strings.ToUpper(ticker)]
	if !ok {
		return nil, fmt.Errorf("fake source: unknown ticker %q", ticker)
	}
	out := *rec
	return &out, nil
}

// FetchFilings implements Source.
func (f *FakeSource) FetchFilings(_ context.Context, ticker, form string, count int, includeDocuments bool) ([]FilingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]FilingRecord, 0, count)
	for _, rec := range f.filings[strings.ToUpper(ticker)] {
		if form != "" && rec.FormType != form {
			continue
		}
		if !includeDocuments {
			rec.Documents = nil
		}
		out = append(out, rec)
		if count > 0 && len(out) == count {
			break
		}
	}
	return out, nil
}

// FetchFilingByAccession implements Source.
func (f *FakeSource) FetchFilingByAccession(_ context.Context, _, accessionNumber string, includeDocuments bool) (*FilingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, recs := range f.filings {
		for _, rec := range recs {
			if rec.AccessionNumber == accessionNumber {
				if !includeDocuments {
					rec.Documents = nil
				}
				return &rec, nil
			}
		}
	}
	return nil, fmt.Errorf("fake source: unknown accession %q", accessionNumber)
}

// FetchFinancials implements Source.
func (f *FakeSource) FetchFinancials(_ context.Context, ticker string) ([]FinancialRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FinancialsErr != nil {
		return nil, f.FinancialsErr
	}
	recs := f.financials[strings.ToUpper(ticker)]
	out := make([]FinancialRecord, len(recs))
	copy(out, recs)
	return out, nil
}
