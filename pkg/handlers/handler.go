// Package handlers maps job types to their processing logic. Workers claim
// jobs and dispatch them through the Registry; each handler decodes its own
// params schema and returns the result map stored on the job row.
package handlers

import (
	"context"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/pkg/config"
	"github.com/filinglens/filinglens/pkg/ingest"
	"github.com/filinglens/filinglens/pkg/llm"
	"github.com/filinglens/filinglens/pkg/services"
)

// Handler processes one claimed job. A returned error fails the job (and
// re-queues it while retries remain); the result map is persisted on
// completion.
type Handler interface {
	Handle(ctx context.Context, j *ent.Job) (map[string]interface{}, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, j *ent.Job) (map[string]interface{}, error)

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	return f(ctx, j)
}

// Deps bundles everything handlers need. One instance is shared by all
// workers; every field must be safe for concurrent use.
type Deps struct {
	Jobs         *services.JobService
	Companies    *services.CompanyService
	Filings      *services.FilingService
	Financials   *services.FinancialService
	Prompts      *services.PromptService
	ModelConfigs *services.ModelConfigService
	Contents     *services.ContentService
	Runs         *services.RunService
	Groups       *services.GroupService

	Completer llm.ChatCompleter
	Source    ingest.Source
	Pipeline  *config.PipelineConfig
}
