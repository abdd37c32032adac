// Package models defines request/response types shared by services, handlers,
// and the API surface.
package models

import (
	"encoding/json"
	"fmt"
)

// DecodeParams converts a job's opaque params map into a typed params struct
// via a JSON round-trip. Unknown keys are ignored; type mismatches surface as
// decode errors.
func DecodeParams(params map[string]interface{}, out interface{}) error {
	b, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode params: %w", err)
	}
	return nil
}

// ToResultMap converts a typed result struct into the JSON map stored on the
// job row.
func ToResultMap(v interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("failed to convert result: %w", err)
	}
	return m, nil
}

// TestParams is the schema for TEST jobs.
type TestParams struct {
	SleepSeconds float64 `json:"sleep,omitempty"`
	Fail         bool    `json:"fail,omitempty"`
}

// CompanyIngestionParams is the schema for COMPANY_INGESTION jobs.
type CompanyIngestionParams struct {
	Ticker string `json:"ticker"`
}

// FilingIngestionParams is the schema for FILING_INGESTION jobs.
type FilingIngestionParams struct {
	CompanyID        string `json:"company_id"`
	Ticker           string `json:"ticker"`
	Form             string `json:"form,omitempty"`
	Count            int    `json:"count,omitempty"`
	IncludeDocuments *bool  `json:"include_documents,omitempty"`
}

// ContentGenerationParams is the schema for CONTENT_GENERATION jobs.
type ContentGenerationParams struct {
	SystemPromptHash     string   `json:"system_prompt_hash"`
	ModelConfigHash      string   `json:"model_config_hash"`
	SourceDocumentHashes []string `json:"source_document_hashes,omitempty"`
	SourceContentHashes  []string `json:"source_content_hashes,omitempty"`
	CompanyTicker        string   `json:"company_ticker,omitempty"`
	Description          string   `json:"description,omitempty"`
	DocumentType         string   `json:"document_type,omitempty"`
	FormType             string   `json:"form_type,omitempty"`
	ContentStage         string   `json:"content_stage,omitempty"`
}

// FilingRef identifies one filing in a BULK_INGEST batch.
type FilingRef struct {
	CIK             string `json:"cik"`
	CompanyName     string `json:"company_name"`
	AccessionNumber string `json:"accession_number"`
	Form            string `json:"form"`
}

// BulkIngestParams is the schema for BULK_INGEST jobs.
type BulkIngestParams struct {
	Filings          []FilingRef `json:"filings"`
	IncludeDocuments *bool       `json:"include_documents,omitempty"`
}

// GroupPipelineParams is the schema for COMPANY_GROUP_PIPELINE jobs.
type GroupPipelineParams struct {
	Tickers      []string `json:"tickers"`
	GroupSlug    string   `json:"group_slug,omitempty"`
	MaxPerTicker int      `json:"max_per_ticker,omitempty"`
	PromptsDir   string   `json:"prompts_dir,omitempty"`
}

// IngestPipelineParams is the schema for INGEST_PIPELINE jobs.
type IngestPipelineParams struct {
	Ticker           string `json:"ticker"`
	Form             string `json:"form,omitempty"`
	Count            int    `json:"count,omitempty"`
	IncludeDocuments *bool  `json:"include_documents,omitempty"`
}

// FullPipelineParams is the schema for FULL_PIPELINE jobs.
type FullPipelineParams struct {
	Ticker        string         `json:"ticker"`
	Forms         []string       `json:"forms,omitempty"`
	Counts        map[string]int `json:"counts,omitempty"`
	DocumentTypes []string       `json:"document_types,omitempty"`
	PromptsDir    string         `json:"prompts_dir,omitempty"`
	Trigger       string         `json:"trigger,omitempty"`
	Force         bool           `json:"force,omitempty"`
}

// ContentGenerationResult is returned by the CONTENT_GENERATION handler.
type ContentGenerationResult struct {
	ContentID   string `json:"content_id"`
	ContentHash string `json:"content_hash"`
	WasCreated  bool   `json:"was_created"`
}

// StageOutcome aggregates the per-document results of a pipeline stage.
type StageOutcome struct {
	Hashes  []string `json:"hashes"`
	New     int      `json:"new"`
	Reused  int      `json:"reused"`
	Failed  int      `json:"failed"`
	Skipped int      `json:"skipped"`
}
