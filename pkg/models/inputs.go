package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertCompanyInput carries company metadata from the ingestion source.
type UpsertCompanyInput struct {
	Ticker        string
	Name          string
	Exchanges     []string
	IndustryCode  string
	FiscalYearEnd string
}

// UpsertFilingInput carries one filing from the ingestion source.
type UpsertFilingInput struct {
	CompanyID       string
	AccessionNumber string
	FormType        string
	FilingDate      time.Time
	PeriodOfReport  *time.Time
	SourceURL       string
}

// UpsertDocumentInput carries one extracted filing section.
type UpsertDocumentInput struct {
	FilingID     string
	CompanyID    string
	Title        string
	DocumentType string
	Content      string
}

// UpsertFinancialValueInput carries one extracted financial table cell.
type UpsertFinancialValueInput struct {
	CompanyID   string
	ConceptName string
	Labels      []string
	ValueDate   time.Time
	FilingID    string // empty means no filing association
	Value       decimal.Decimal
}

// CreateContentInput carries everything needed to persist one generated
// artifact, including its provenance.
type CreateContentInput struct {
	Content        string
	CompanyID      string
	GroupID        string
	DocumentType   string
	FormType       string
	ContentStage   string
	Description    string
	SystemPromptID string
	ModelConfigID  string

	// Exactly one of the two source sets must be non-empty.
	SourceDocumentIDs []string
	SourceContentIDs  []string

	TotalDuration float64
	InputTokens   *int
	OutputTokens  *int
	Warning       string
}

// JobListParams filters job listings.
type JobListParams struct {
	Status  string
	JobType string
	Limit   int
}

// RunMetadataStage records per-stage timing in PipelineRun.run_metadata.
type RunMetadataStage struct {
	Stage      string  `json:"stage"`
	DurationMS int64   `json:"duration_ms"`
	New        int     `json:"new"`
	Reused     int     `json:"reused"`
	Failed     int     `json:"failed"`
}
