package main

import (
	"fmt"

	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/pkg/models"
	"github.com/filinglens/filinglens/pkg/services"
)

// PipelineCmd enqueues pipeline jobs for the worker pool to pick up.
type PipelineCmd struct {
	Run    PipelineRunCmd    `cmd:"" help:"Enqueue the full pipeline for a ticker."`
	Ingest PipelineIngestCmd `cmd:"" help:"Enqueue ingestion only for a ticker."`
	Group  PipelineGroupCmd  `cmd:"" help:"Enqueue a cross-company group analysis."`
}

// enqueue creates a job and prints its id.
func enqueue(app *appCtx, jobType job.JobType, params interface{}, priority *int) error {
	paramsMap, err := models.ToResultMap(params)
	if err != nil {
		return err
	}
	j, err := app.jobs.CreateJob(app.ctx, services.CreateJobRequest{
		JobType:  jobType,
		Params:   paramsMap,
		Priority: priority,
	})
	if err != nil {
		return err
	}
	if app.output == "json" {
		return app.printJSON(j)
	}
	fmt.Printf("enqueued %s %s\n", j.JobType, j.ID)
	return nil
}

// PipelineRunCmd enqueues a FULL_PIPELINE job.
type PipelineRunCmd struct {
	Ticker     string   `required:"" help:"Company ticker."`
	Forms      []string `help:"Form types to process (default from server config)."`
	DocTypes   []string `name:"doc-types" help:"Document types to summarize."`
	PromptsDir string   `name:"prompts-dir" help:"Prompt directory root."`
	Force      bool     `help:"Regenerate even when matching content exists."`
	Priority   *int     `help:"Job priority (smaller runs first)."`
}

func (c *PipelineRunCmd) Run(app *appCtx) error {
	return enqueue(app, job.JobTypeFullPipeline, models.FullPipelineParams{
		Ticker:        c.Ticker,
		Forms:         c.Forms,
		DocumentTypes: c.DocTypes,
		PromptsDir:    c.PromptsDir,
		Trigger:       "manual",
		Force:         c.Force,
	}, c.Priority)
}

// PipelineIngestCmd enqueues an INGEST_PIPELINE job.
type PipelineIngestCmd struct {
	Ticker   string `required:"" help:"Company ticker."`
	Form     string `help:"Form type to ingest, e.g. 10-K."`
	Count    int    `help:"How many recent filings."`
	Priority *int   `help:"Job priority (smaller runs first)."`
}

func (c *PipelineIngestCmd) Run(app *appCtx) error {
	return enqueue(app, job.JobTypeIngestPipeline, models.IngestPipelineParams{
		Ticker: c.Ticker,
		Form:   c.Form,
		Count:  c.Count,
	}, c.Priority)
}

// PipelineGroupCmd enqueues a COMPANY_GROUP_PIPELINE job.
type PipelineGroupCmd struct {
	Tickers      []string `help:"Tickers to analyze together."`
	Slug         string   `help:"Group slug; persists the group when tickers are also given."`
	MaxPerTicker int      `name:"max-per-ticker" help:"Aggregates to read per ticker."`
	PromptsDir   string   `name:"prompts-dir" help:"Prompt directory root."`
	Priority     *int     `help:"Job priority (smaller runs first)."`
}

func (c *PipelineGroupCmd) Run(app *appCtx) error {
	if len(c.Tickers) == 0 && c.Slug == "" {
		return fmt.Errorf("either --tickers or --slug is required")
	}
	return enqueue(app, job.JobTypeCompanyGroupPipeline, models.GroupPipelineParams{
		Tickers:      c.Tickers,
		GroupSlug:    c.Slug,
		MaxPerTicker: c.MaxPerTicker,
		PromptsDir:   c.PromptsDir,
	}, c.Priority)
}
