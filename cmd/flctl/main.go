// Command flctl is the operator CLI for FilingLens.
//
// Usage:
//
//	flctl jobs list --status pending
//	flctl pipeline run --ticker AAPL
//	flctl prompts ensure --name single_summary --dir prompts/single_summary
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/filinglens/filinglens/pkg/database"
	"github.com/filinglens/filinglens/pkg/services"
)

// CLI defines the command-line interface.
type CLI struct {
	Companies  CompaniesCmd  `cmd:"" help:"Inspect companies."`
	Filings    FilingsCmd    `cmd:"" help:"Inspect filings."`
	Documents  DocumentsCmd  `cmd:"" help:"Inspect filing documents."`
	Financials FinancialsCmd `cmd:"" help:"Inspect financial values."`
	Prompts    PromptsCmd    `cmd:"" help:"Manage prompts."`
	Content    ContentCmd    `cmd:"" help:"Inspect generated content."`
	Jobs       JobsCmd       `cmd:"" help:"Manage the job queue."`
	Runs       RunsCmd       `cmd:"" help:"Inspect pipeline runs."`
	Pipeline   PipelineCmd   `cmd:"" help:"Enqueue pipeline jobs."`

	Output string `short:"o" help:"Output format (table, json)." enum:"table,json" default:"table"`
}

// appCtx bundles the CLI's runtime dependencies, bound into kong.
type appCtx struct {
	ctx    context.Context
	output string

	db           *database.Client
	jobs         *services.JobService
	companies    *services.CompanyService
	filings      *services.FilingService
	financials   *services.FinancialService
	prompts      *services.PromptService
	modelConfigs *services.ModelConfigService
	contents     *services.ContentService
	runs         *services.RunService
	groups       *services.GroupService
}

// printJSON writes v as indented JSON to stdout.
func (a *appCtx) printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	var cli CLI
	parsed := kong.Parse(&cli,
		kong.Name("flctl"),
		kong.Description("FilingLens operator CLI."),
		kong.UsageOnError(),
	)

	if err := godotenv.Load(); err == nil {
		// .env is optional; loaded silently when present.
		_ = err
	}

	ctx := context.Background()
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer func() { _ = dbClient.Close() }()

	app := &appCtx{
		ctx:          ctx,
		output:       cli.Output,
		db:           dbClient,
		jobs:         services.NewJobService(dbClient.Client),
		companies:    services.NewCompanyService(dbClient.Client),
		filings:      services.NewFilingService(dbClient.Client),
		financials:   services.NewFinancialService(dbClient.Client),
		prompts:      services.NewPromptService(dbClient.Client),
		modelConfigs: services.NewModelConfigService(dbClient.Client),
		contents:     services.NewContentService(dbClient.Client),
		runs:         services.NewRunService(dbClient.Client),
		groups:       services.NewGroupService(dbClient.Client),
	}

	if err := parsed.Run(app); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
