package handlers

import (
	"context"
	"fmt"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/job"
)

// Registry holds the job-type → handler mapping. It is built once at
// startup and read-only afterwards.
type Registry struct {
	handlers map[job.JobType]Handler
}

// NewRegistry wires the built-in handlers. Every job type the schema knows
// must have a handler; a gap is a programming error surfaced at startup.
func NewRegistry(deps *Deps) (*Registry, error) {
	r := &Registry{
		handlers: map[job.JobType]Handler{
			job.JobTypeTest:                 &TestHandler{},
			job.JobTypeCompanyIngestion:     &CompanyIngestionHandler{deps: deps},
			job.JobTypeFilingIngestion:      &FilingIngestionHandler{deps: deps},
			job.JobTypeContentGeneration:    &ContentGenerationHandler{deps: deps},
			job.JobTypeBulkIngest:           &BulkIngestHandler{deps: deps},
			job.JobTypeCompanyGroupPipeline: &GroupPipelineHandler{deps: deps},
			job.JobTypeIngestPipeline:       &IngestPipelineHandler{deps: deps},
			job.JobTypeFullPipeline:         &FullPipelineHandler{deps: deps},
		},
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// allJobTypes is the canonical list the registry must cover. Kept in sync
// with the job schema enum; validate catches drift at startup.
var allJobTypes = []job.JobType{
	job.JobTypeTest,
	job.JobTypeCompanyIngestion,
	job.JobTypeFilingIngestion,
	job.JobTypeContentGeneration,
	job.JobTypeBulkIngest,
	job.JobTypeCompanyGroupPipeline,
	job.JobTypeIngestPipeline,
	job.JobTypeFullPipeline,
}

// validate checks that every schema job type is covered.
func (r *Registry) validate() error {
	for _, jt := range allJobTypes {
		if err := job.JobTypeValidator(jt); err != nil {
			return fmt.Errorf("registry job type %q not in schema: %w", jt, err)
		}
		if _, ok := r.handlers[jt]; !ok {
			return fmt.Errorf("no handler registered for job type %q", jt)
		}
	}
	return nil
}

// Dispatch routes a claimed job to its handler.
func (r *Registry) Dispatch(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	h, ok := r.handlers[j.JobType]
	if !ok {
		return nil, fmt.Errorf("no handler for job type %q", j.JobType)
	}
	return h.Handle(ctx, j)
}
